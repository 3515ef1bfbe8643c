package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akozyrev/job-tracker/internal/logger"
	"github.com/akozyrev/job-tracker/internal/middlewares"
	"github.com/akozyrev/job-tracker/internal/services"
)

// JobDeleter defines the interface that the job deletion service must implement.
type JobDeleter interface {
	Delete(ctx context.Context, ownerID, jobID int64) error
}

// NewJobDeleteHandler returns an HTTP handler deleting the
// authenticated user's job. A job owned by someone else is reported as
// not found.
// @Summary Delete a job application
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 204 "Job deleted"
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} handlers.JobErrorResponse "Job not found"
// @Router /jobs/{id} [delete]
func NewJobDeleteHandler(svc JobDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		jobID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(JobErrorResponse{
				Error: "Job not found",
			})
			return
		}

		if err := svc.Delete(r.Context(), user.ID, jobID); err != nil {
			switch {
			case errors.Is(err, services.ErrJobNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(JobErrorResponse{
					Error: "Job not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(JobErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
