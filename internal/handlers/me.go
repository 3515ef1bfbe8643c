package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akozyrev/job-tracker/internal/logger"
	"github.com/akozyrev/job-tracker/internal/middlewares"
	"github.com/akozyrev/job-tracker/internal/models"
)

// JobLister defines the job listing operation the profile endpoint needs.
type JobLister interface {
	List(ctx context.Context, ownerID int64, status *string, offset, limit int) ([]models.JobDB, error)
}

// NewMeHandler returns an HTTP handler serving the authenticated user's
// profile together with their job applications.
// @Summary Current user profile
// @Description Returns the authenticated user and the jobs they own.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UserResponse "Current user with jobs"
// @Failure 401 "Missing or invalid token"
// @Router /users/me [get]
func NewMeHandler(jobs JobLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		owned, err := jobs.List(r.Context(), user.ID, nil, 0, 0)
		if err != nil {
			logger.Log.Errorw("failed to load user jobs", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(newUserResponse(user, owned))
	}
}
