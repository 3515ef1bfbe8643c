package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/akozyrev/job-tracker/internal/middlewares"
	"github.com/akozyrev/job-tracker/internal/models"
	"github.com/akozyrev/job-tracker/internal/services"
)

func TestJobUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.UserDB{ID: 1, Email: "alice@example.com"}

	validBody := `{"title":"SWE II","company":"Acme","status":"Offer","date_applied":"2024-02-01"}`

	serve := func(svc JobUpdater, path, body string, user *models.UserDB) *httptest.ResponseRecorder {
		r := chi.NewRouter()
		r.Put("/jobs/{id}", NewJobUpdateHandler(svc))

		req := httptest.NewRequest(http.MethodPut, path, bytes.NewBufferString(body))
		if user != nil {
			req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		}
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	t.Run("updates owned job", func(t *testing.T) {
		mockSvc := NewMockJobUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), int64(1), int64(5), models.JobFields{
				Title:       "SWE II",
				Company:     "Acme",
				Status:      "Offer",
				DateApplied: models.NewDate(2024, 2, 1),
			}).
			Return(&models.JobDB{
				ID:          5,
				OwnerID:     1,
				Title:       "SWE II",
				Company:     "Acme",
				Status:      "Offer",
				DateApplied: models.NewDate(2024, 2, 1),
			}, nil)

		rr := serve(mockSvc, "/jobs/5", validBody, alice)

		assert.Equal(t, http.StatusOK, rr.Code)

		var job models.JobDB
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &job))
		assert.Equal(t, "SWE II", job.Title)
		assert.Equal(t, "Offer", job.Status)
	})

	t.Run("foreign or missing job yields 404", func(t *testing.T) {
		mockSvc := NewMockJobUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), int64(1), int64(99), gomock.Any()).
			Return(nil, services.ErrJobNotFound)

		rr := serve(mockSvc, "/jobs/99", validBody, alice)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error": "Job not found"}`, rr.Body.String())
	})

	t.Run("non-numeric id yields 404", func(t *testing.T) {
		mockSvc := NewMockJobUpdater(ctrl)

		rr := serve(mockSvc, "/jobs/abc", validBody, alice)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing fields yield 400", func(t *testing.T) {
		mockSvc := NewMockJobUpdater(ctrl)

		rr := serve(mockSvc, "/jobs/5", `{"title":"SWE II"}`, alice)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("no authenticated user", func(t *testing.T) {
		mockSvc := NewMockJobUpdater(ctrl)

		rr := serve(mockSvc, "/jobs/5", validBody, nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockJobUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), int64(1), int64(5), gomock.Any()).
			Return(nil, errors.New("update failed"))

		rr := serve(mockSvc, "/jobs/5", validBody, alice)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
