package handlers

import (
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

func TestJobDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.UserDB{ID: 1, Email: "alice@example.com"}

	serve := func(svc JobDeleter, path string, user *models.UserDB) *httptest.ResponseRecorder {
		r := chi.NewRouter()
		r.Delete("/jobs/{id}", NewJobDeleteHandler(svc))

		req := httptest.NewRequest(http.MethodDelete, path, nil)
		if user != nil {
			req = req.WithContext(middlewares.SetUserToContext(req.Context(), user))
		}
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		return rr
	}

	t.Run("deletes owned job", func(t *testing.T) {
		mockSvc := NewMockJobDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), int64(1), int64(5)).
			Return(nil)

		rr := serve(mockSvc, "/jobs/5", alice)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("foreign or missing job yields 404", func(t *testing.T) {
		mockSvc := NewMockJobDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), int64(1), int64(99)).
			Return(services.ErrJobNotFound)

		rr := serve(mockSvc, "/jobs/99", alice)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error": "Job not found"}`, rr.Body.String())
	})

	t.Run("non-numeric id yields 404", func(t *testing.T) {
		mockSvc := NewMockJobDeleter(ctrl)

		rr := serve(mockSvc, "/jobs/abc", alice)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("no authenticated user", func(t *testing.T) {
		mockSvc := NewMockJobDeleter(ctrl)

		rr := serve(mockSvc, "/jobs/5", nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockJobDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), int64(1), int64(5)).
			Return(errors.New("delete failed"))

		rr := serve(mockSvc, "/jobs/5", alice)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
