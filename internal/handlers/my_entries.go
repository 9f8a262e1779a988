package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mytenu/zaktwi/internal/logger"
	"github.com/mytenu/zaktwi/internal/models"
	"github.com/mytenu/zaktwi/internal/session"
)

// OwnEntriesLister defines the interface that the service must implement.
type OwnEntriesLister interface {
	EntriesFor(ctx context.Context, username string) ([]models.Entry, error)
}

// MyEntriesResponse represents the logged-in user's contributions
// swagger:model MyEntriesResponse
type MyEntriesResponse struct {
	// Logged-in username
	// example: abena
	Username string `json:"username"`

	// Number of entries owned by the user
	// example: 3
	Count int `json:"count"`

	// The user's entries
	Entries []models.Entry `json:"entries"`
}

// MyEntriesErrorResponse represents an error response for listing entries
// swagger:model MyEntriesErrorResponse
type MyEntriesErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewMyEntriesHandler returns an HTTP handler listing the logged-in user's
// entries and their count.
// @Summary List own entries
// @Description Returns the logged-in user's entries and entry count
// @Tags dataset
// @Produce json
// @Success 200 {object} handlers.MyEntriesResponse "Own entries"
// @Failure 401 {object} handlers.MyEntriesErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.MyEntriesErrorResponse "Internal server error"
// @Router /entries [get]
// @Security BearerAuth
func NewMyEntriesHandler(svc OwnEntriesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		s, ok := session.FromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MyEntriesErrorResponse{Error: "Unauthorized"})
			return
		}

		entries, err := svc.EntriesFor(ctx, s.Username)
		if err != nil {
			logger.Log.Errorw("failed to list own entries", "username", s.Username, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MyEntriesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MyEntriesResponse{
			Username: s.Username,
			Count:    len(entries),
			Entries:  entries,
		})
	}
}
