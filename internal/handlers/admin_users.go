package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mytenu/zaktwi/internal/logger"
	"github.com/mytenu/zaktwi/internal/models"
)

// AdminUsersLister defines the interface that the service must implement.
type AdminUsersLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// AdminUsersResponse represents the admin listing of all users
// swagger:model AdminUsersResponse
type AdminUsersResponse struct {
	// Number of registered users
	// example: 7
	Count int `json:"count"`

	// All registered users, password hashes omitted
	Users []models.User `json:"users"`
}

// AdminErrorResponse represents an error response on admin routes
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewAdminUsersHandler returns an HTTP handler listing all registered users.
// @Summary List all users
// @Description Returns every registered user for the admin dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AdminUsersResponse "All users"
// @Failure 403 {object} handlers.AdminErrorResponse "Not an administrator"
// @Failure 500 {object} handlers.AdminErrorResponse "Internal server error"
// @Router /admin/users [get]
// @Security BearerAuth
func NewAdminUsersHandler(svc AdminUsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminUsersResponse{
			Count: len(users),
			Users: users,
		})
	}
}
