package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/akozyrev/job-tracker/internal/logger"
	"github.com/akozyrev/job-tracker/internal/middlewares"
)

// NewJobListHandler returns an HTTP handler listing the authenticated
// user's jobs, optionally filtered by exact status and paginated with
// skip/limit.
// @Summary List job applications
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Exact status filter"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows returned" default(100)
// @Success 200 {array} models.JobDB "Owned jobs"
// @Failure 401 "Missing or invalid token"
// @Router /jobs/ [get]
func NewJobListHandler(svc JobLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var status *string
		if s := r.URL.Query().Get("status"); s != "" {
			status = &s
		}

		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		jobs, err := svc.List(r.Context(), user.ID, status, skip, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(JobErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(jobs)
	}
}
