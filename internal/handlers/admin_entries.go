package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mytenu/zaktwi/internal/logger"
	"github.com/mytenu/zaktwi/internal/models"
)

// AdminEntriesLister defines the interface that the service must implement.
type AdminEntriesLister interface {
	ListEntries(ctx context.Context) ([]models.Entry, error)
}

// AdminEntriesResponse represents the admin listing of the whole dataset
// swagger:model AdminEntriesResponse
type AdminEntriesResponse struct {
	// Number of dataset rows
	// example: 42
	Count int `json:"count"`

	// The full dataset
	Entries []models.Entry `json:"entries"`
}

// NewAdminEntriesHandler returns an HTTP handler listing the full dataset.
// @Summary List the full dataset
// @Description Returns every dataset entry for the admin dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AdminEntriesResponse "Full dataset"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an administrator"
// @Failure 500 {object} handlers.AdminErrorResponse "Internal server error"
// @Router /admin/entries [get]
// @Security BearerAuth
func NewAdminEntriesHandler(svc AdminEntriesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		entries, err := svc.ListEntries(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list entries", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminEntriesResponse{
			Count:   len(entries),
			Entries: entries,
		})
	}
}
