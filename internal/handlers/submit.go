package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mytenu/zaktwi/internal/logger"
	"github.com/mytenu/zaktwi/internal/models"
	"github.com/mytenu/zaktwi/internal/services"
	"github.com/mytenu/zaktwi/internal/session"
)

// EntrySubmitter defines the interface that the service must implement.
type EntrySubmitter interface {
	Submit(ctx context.Context, username, date, twi, english string) (models.Entry, error)
}

// SubmitRequest represents the JSON body for a manual entry submission
// swagger:model SubmitRequest
type SubmitRequest struct {
	// Submission date, ISO 8601; defaults to today when absent or invalid
	// example: 2026-08-25
	Date string `json:"date"`

	// Twi sentence
	// required: true
	// example: Me da wo ase
	Twi string `json:"twi"`

	// English translation
	// required: true
	// example: Thank you
	English string `json:"english"`
}

// SubmitResponse represents a successful submission response
// swagger:model SubmitResponse
type SubmitResponse struct {
	// Success message
	// example: Entry submitted successfully!
	Message string `json:"message"`

	// The stored entry
	Entry models.Entry `json:"entry"`
}

// SubmitErrorResponse represents an error response for entry submission
// swagger:model SubmitErrorResponse
type SubmitErrorResponse struct {
	// Error message
	// example: This translation pair already exists
	Error string `json:"error"`
}

// NewSubmitHandler returns an HTTP handler for manual entry submission.
// @Summary Submit a sentence pair
// @Description Appends one Twi/English pair owned by the logged-in user. Duplicate pairs by the same user are rejected.
// @Tags dataset
// @Accept json
// @Produce json
// @Param submitRequest body handlers.SubmitRequest true "Entry submission request"
// @Success 201 {object} handlers.SubmitResponse "Entry stored"
// @Failure 400 {object} handlers.SubmitErrorResponse "Missing twi or english text"
// @Failure 401 {object} handlers.SubmitErrorResponse "Unauthorized"
// @Failure 409 {object} handlers.SubmitErrorResponse "Duplicate pair"
// @Router /entries [post]
// @Security BearerAuth
func NewSubmitHandler(svc EntrySubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set("Content-Type", "application/json")

		s, ok := session.FromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SubmitErrorResponse{Error: "Unauthorized"})
			return
		}

		var req SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubmitErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		entry, err := svc.Submit(ctx, s.Username, req.Date, req.Twi, req.English)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyEntry):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SubmitErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrDuplicateEntry):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SubmitErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SubmitErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SubmitResponse{
			Message: "Entry submitted successfully!",
			Entry:   entry,
		})
	}
}
