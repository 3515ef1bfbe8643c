package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akozyrev/job-tracker/internal/logger"
	"github.com/akozyrev/job-tracker/internal/middlewares"
	"github.com/akozyrev/job-tracker/internal/models"
)

// JobCreator defines the interface that the job creation service must implement.
type JobCreator interface {
	Create(ctx context.Context, ownerID int64, fields models.JobFields) (*models.JobDB, error)
}

// JobRequest represents the JSON body for creating or replacing a job
// swagger:model JobRequest
type JobRequest struct {
	// Job title
	// required: true
	// example: SWE
	Title string `json:"title"`

	// Company name
	// required: true
	// example: Acme
	Company string `json:"company"`

	// Location, optional
	// example: Berlin
	Location *string `json:"location"`

	// Application status, defaults to "Applied" on creation
	// example: Applied
	Status string `json:"status"`

	// Date the application was sent, YYYY-MM-DD
	// required: true
	// example: 2024-01-01
	DateApplied models.Date `json:"date_applied"`
}

// JobErrorResponse represents an error response for job endpoints
// swagger:model JobErrorResponse
type JobErrorResponse struct {
	// Error message
	// example: Job not found
	Error string `json:"error"`
}

func (req JobRequest) fields() models.JobFields {
	return models.JobFields{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Status:      req.Status,
		DateApplied: req.DateApplied,
	}
}

func (req JobRequest) valid() bool {
	return req.Title != "" && req.Company != "" && !req.DateApplied.IsZero()
}

// NewJobCreateHandler returns an HTTP handler creating a job owned by
// the authenticated user.
// @Summary Create a job application
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param jobRequest body handlers.JobRequest true "Job fields"
// @Success 201 {object} models.JobDB "Created job"
// @Failure 400 {object} handlers.JobErrorResponse "Invalid request body"
// @Failure 401 "Missing or invalid token"
// @Router /jobs/ [post]
func NewJobCreateHandler(svc JobCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req JobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.valid() {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(JobErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		job, err := svc.Create(r.Context(), user.ID, req.fields())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(JobErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(job)
	}
}
