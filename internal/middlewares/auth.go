package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akozyrev/job-tracker/internal/logger"
	"github.com/akozyrev/job-tracker/internal/models"
)

// Tokener defines the token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetSubject(ctx context.Context, tokenString string) (string, error)
}

// UserResolver resolves a token subject to a stored user.
type UserResolver interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// AuthMiddleware authenticates every request: it extracts the bearer
// token, verifies it, and resolves the subject email to a user record,
// which it stores in the request context. Resolution happens on each
// request; nothing is cached across requests.
func AuthMiddleware(tokener Tokener, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w, "Not authenticated")
				return
			}

			subject, err := tokener.GetSubject(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w, "Could not validate credentials")
				return
			}

			user, err := users.GetByEmail(ctx, subject)
			if err != nil {
				logger.Log.Errorw("failed to resolve token subject", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil {
				logger.Log.Errorw("token subject no longer exists", "email", subject)
				writeUnauthorized(w, "Could not validate credentials")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

type userKeyType struct{}

var userKey = userKeyType{}

// SetUserToContext stores the authenticated user in the context
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if the request did not pass AuthMiddleware.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
