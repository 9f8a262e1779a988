package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mytenu/zaktwi/internal/logger"
)

// ContributionsRemover defines the interface that the service must implement.
type ContributionsRemover interface {
	DeleteContributions(ctx context.Context, username string) (int, error)
}

// DeleteContributionsResponse represents a contribution deletion summary
// swagger:model DeleteContributionsResponse
type DeleteContributionsResponse struct {
	// Username the deletion targeted
	// example: kofi
	Username string `json:"username"`

	// Number of dataset rows deleted
	// example: 12
	DeletedEntries int `json:"deleted_entries"`
}

// NewDeleteContributionsHandler returns an HTTP handler deleting every
// dataset row owned by a username, matched case-insensitively. Zero matches
// succeeds with a zero count.
// @Summary Delete a user's contributions
// @Description Removes every dataset row owned by the username
// @Tags admin
// @Produce json
// @Param username path string true "Username whose entries to delete"
// @Success 200 {object} handlers.DeleteContributionsResponse "Deletion summary"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an administrator"
// @Failure 500 {object} handlers.AdminErrorResponse "Internal server error"
// @Router /admin/contributions/{username} [delete]
// @Security BearerAuth
func NewDeleteContributionsHandler(svc ContributionsRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		username := chi.URLParam(r, "username")

		w.Header().Set("Content-Type", "application/json")

		deleted, err := svc.DeleteContributions(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to delete contributions", "username", username, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteContributionsResponse{
			Username:       username,
			DeletedEntries: deleted,
		})
	}
}
