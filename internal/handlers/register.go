package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mytenu/zaktwi/internal/logger"
	"github.com/mytenu/zaktwi/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in services.RegisterInput) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Full name
	// required: true
	// example: Abena Mensah
	Name string `json:"name"`

	// Username
	// required: true
	// example: abena
	Username string `json:"username"`

	// Password
	// required: true
	// example: pass1234
	Password string `json:"password"`

	// Repeated password
	// required: true
	// example: pass1234
	RepeatPassword string `json:"repeat_password"`

	// Phone number for cash transfer
	// example: 0241234567
	PaymentPhone string `json:"payment_phone"`

	// Network provider of the payment phone number
	// example: MoMo
	PaymentNetwork string `json:"payment_network"`

	// Account name of the payment phone number
	// example: Abena Mensah
	PaymentAccountName string `json:"payment_account_name"`

	// Contact phone number
	// example: 0201234567
	CallContact string `json:"call_contact"`

	// Email
	// example: abena@example.com
	Email string `json:"email"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: Registration successful! Please login.
	Message string `json:"message"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// example: Username already exists
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new contributor account. Usernames are unique case-insensitively.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Validation failure"
// @Failure 409 {object} handlers.RegisterErrorResponse "Username already exists"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		err := svc.Register(r.Context(), services.RegisterInput{
			Name:               req.Name,
			Username:           req.Username,
			Password:           req.Password,
			RepeatPassword:     req.RepeatPassword,
			PaymentPhone:       req.PaymentPhone,
			PaymentNetwork:     req.PaymentNetwork,
			PaymentAccountName: req.PaymentAccountName,
			CallContact:        req.CallContact,
			Email:              req.Email,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrMissingFields),
				errors.Is(err, services.ErrPasswordMismatch),
				errors.Is(err, services.ErrPasswordTooShort):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "Registration successful! Please login.",
		})
	}
}
