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
	"github.com/akozyrev/job-tracker/internal/models"
	"github.com/akozyrev/job-tracker/internal/services"
)

// JobUpdater defines the interface that the job update service must implement.
type JobUpdater interface {
	Update(ctx context.Context, ownerID, jobID int64, fields models.JobFields) (*models.JobDB, error)
}

// NewJobUpdateHandler returns an HTTP handler replacing all fields of
// the authenticated user's job. A job owned by someone else is reported
// as not found.
// @Summary Update a job application
// @Description Full-record replace: every mutable field must be supplied.
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param jobRequest body handlers.JobRequest true "Replacement job fields"
// @Success 200 {object} models.JobDB "Updated job"
// @Failure 400 {object} handlers.JobErrorResponse "Invalid request body"
// @Failure 401 "Missing or invalid token"
// @Failure 404 {object} handlers.JobErrorResponse "Job not found"
// @Router /jobs/{id} [put]
func NewJobUpdateHandler(svc JobUpdater) http.HandlerFunc {
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

		var req JobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.valid() || req.Status == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(JobErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		job, err := svc.Update(r.Context(), user.ID, jobID, req.fields())
		if err != nil {
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(job)
	}
}
