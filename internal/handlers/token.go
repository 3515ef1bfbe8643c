package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akozyrev/job-tracker/internal/logger"
	"github.com/akozyrev/job-tracker/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// TokenResponse represents a successful token response
// swagger:model TokenResponse
type TokenResponse struct {
	// Signed bearer token
	// example: JWT_TOKEN
	AccessToken string `json:"access_token"`

	// Token type, always "bearer"
	// example: bearer
	TokenType string `json:"token_type"`
}

// TokenErrorResponse represents an error response for the token endpoint
// swagger:model TokenErrorResponse
type TokenErrorResponse struct {
	// Error message
	// example: Incorrect email or password
	Error string `json:"error"`
}

// NewTokenHandler returns an HTTP handler exchanging credentials for a
// bearer token. The request is an OAuth2-style password form: the
// username field carries the email.
// @Summary Obtain an access token
// @Description Verifies email and password and returns a signed bearer token.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email used at registration"
// @Param password formData string true "Password"
// @Success 200 {object} handlers.TokenResponse "Token issued"
// @Failure 401 {object} handlers.TokenErrorResponse "Incorrect email or password"
// @Router /token [post]
func NewTokenHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TokenErrorResponse{
				Error: "invalid form body",
			})
			return
		}

		email := r.PostFormValue("username")
		password := r.PostFormValue("password")

		token, err := svc.Login(r.Context(), email, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				w.Header().Set("WWW-Authenticate", "Bearer")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(TokenErrorResponse{
					Error: "Incorrect email or password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TokenErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}
