package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akozyrev/job-tracker/internal/logger"
	"github.com/akozyrev/job-tracker/internal/models"
	"github.com/akozyrev/job-tracker/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// First name
	// required: true
	// example: John
	FirstName string `json:"firstName"`

	// Last name
	// required: true
	// example: Doe
	LastName string `json:"lastName"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// UserResponse represents a user returned by the API, never including
// the password hash
// swagger:model UserResponse
type UserResponse struct {
	ID        int64          `json:"id"`
	Email     string         `json:"email"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Jobs      []models.JobDB `json:"jobs"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// example: Email already registered
	Error string `json:"error"`
}

func newUserResponse(user *models.UserDB, jobs []models.JobDB) UserResponse {
	if jobs == nil {
		jobs = make([]models.JobDB, 0)
	}
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Jobs:      jobs,
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The email must be unique; the password is hashed before storing.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.UserResponse "Created user"
// @Failure 400 {object} handlers.RegisterErrorResponse "Email already registered / invalid request"
// @Router /users/ [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Email already registered",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(user, nil))
	}
}
