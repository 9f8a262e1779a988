package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mytenu/zaktwi/internal/logger"
)

// UserRemover defines the interface that the service must implement.
type UserRemover interface {
	DeleteUser(ctx context.Context, username string) (int, error)
	DeleteUserWithContributions(ctx context.Context, username string) (usersDeleted, entriesDeleted int, err error)
}

// DeleteUserResponse represents a user deletion summary
// swagger:model DeleteUserResponse
type DeleteUserResponse struct {
	// Username the deletion targeted
	// example: kofi
	Username string `json:"username"`

	// Number of user rows deleted
	// example: 1
	DeletedUsers int `json:"deleted_users"`

	// Number of dataset rows deleted (combined action only)
	// example: 12
	DeletedEntries int `json:"deleted_entries"`
}

// NewDeleteUserHandler returns an HTTP handler deleting a user by username,
// matched case-insensitively. With ?contributions=true the user's dataset
// rows are removed as well. Zero matches succeeds with zero counts.
// @Summary Delete a user
// @Description Removes the user's rows from the users worksheet; optionally also every dataset row they own
// @Tags admin
// @Produce json
// @Param username path string true "Username to delete"
// @Param contributions query boolean false "Also delete the user's dataset entries"
// @Success 200 {object} handlers.DeleteUserResponse "Deletion summary"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an administrator"
// @Failure 500 {object} handlers.AdminErrorResponse "Internal server error"
// @Router /admin/users/{username} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		username := chi.URLParam(r, "username")

		w.Header().Set("Content-Type", "application/json")

		var usersDeleted, entriesDeleted int
		var err error

		if r.URL.Query().Get("contributions") == "true" {
			usersDeleted, entriesDeleted, err = svc.DeleteUserWithContributions(ctx, username)
		} else {
			usersDeleted, err = svc.DeleteUser(ctx, username)
		}
		if err != nil {
			logger.Log.Errorw("failed to delete user", "username", username, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteUserResponse{
			Username:       username,
			DeletedUsers:   usersDeleted,
			DeletedEntries: entriesDeleted,
		})
	}
}
