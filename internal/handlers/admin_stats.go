package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mytenu/zaktwi/internal/logger"
	"github.com/mytenu/zaktwi/internal/models"
)

// StatsProvider defines the interface that the service must implement.
type StatsProvider interface {
	Stats(ctx context.Context) (models.DatasetStats, error)
}

// NewAdminStatsHandler returns an HTTP handler for dataset statistics.
// @Summary Dataset statistics
// @Description Returns total entries, total users, average entries per user and per-user contribution counts
// @Tags admin
// @Produce json
// @Success 200 {object} models.DatasetStats "Aggregated statistics"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an administrator"
// @Failure 500 {object} handlers.AdminErrorResponse "Internal server error"
// @Router /admin/stats [get]
// @Security BearerAuth
func NewAdminStatsHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to compute stats", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(stats)
	}
}
