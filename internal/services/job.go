package services

import (
	"context"
	"errors"

	"github.com/akozyrev/job-tracker/internal/logger"
	"github.com/akozyrev/job-tracker/internal/models"
)

// ErrJobNotFound is returned when a job does not exist for the
// requesting owner. A job owned by someone else is indistinguishable
// from a missing one.
var ErrJobNotFound = errors.New("job not found")

// JobReader defines read-only operations for jobs.
type JobReader interface {
	List(ctx context.Context, ownerID int64, status *string, offset, limit int) ([]models.JobDB, error)
}

// JobWriter defines write operations for jobs.
type JobWriter interface {
	Save(ctx context.Context, ownerID int64, fields models.JobFields) (*models.JobDB, error)
	Update(ctx context.Context, ownerID, jobID int64, fields models.JobFields) (*models.JobDB, error)
	Delete(ctx context.Context, ownerID, jobID int64) (bool, error)
}

// JobService implements owner-scoped job application CRUD.
type JobService struct {
	reader JobReader
	writer JobWriter
}

// NewJobService creates a new JobService instance.
func NewJobService(reader JobReader, writer JobWriter) *JobService {
	return &JobService{
		reader: reader,
		writer: writer,
	}
}

// Create persists a new job for ownerID, defaulting the status when the
// client leaves it empty.
func (svc *JobService) Create(ctx context.Context, ownerID int64, fields models.JobFields) (*models.JobDB, error) {
	if fields.Status == "" {
		fields.Status = models.DefaultJobStatus
	}

	job, err := svc.writer.Save(ctx, ownerID, fields)
	if err != nil {
		logger.Log.Errorw("failed to save job", "err", err)
		return nil, err
	}

	return job, nil
}

// List returns the caller's jobs, optionally filtered by exact status.
func (svc *JobService) List(ctx context.Context, ownerID int64, status *string, offset, limit int) ([]models.JobDB, error) {
	jobs, err := svc.reader.List(ctx, ownerID, status, offset, limit)
	if err != nil {
		logger.Log.Errorw("failed to list jobs", "err", err)
		return nil, err
	}

	return jobs, nil
}

// Update replaces all mutable fields of the caller's job. Jobs that do
// not exist or belong to another user yield ErrJobNotFound.
func (svc *JobService) Update(ctx context.Context, ownerID, jobID int64, fields models.JobFields) (*models.JobDB, error) {
	job, err := svc.writer.Update(ctx, ownerID, jobID, fields)
	if err != nil {
		logger.Log.Errorw("failed to update job", "err", err)
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	return job, nil
}

// Delete removes the caller's job, yielding ErrJobNotFound when the job
// is absent or owned by another user.
func (svc *JobService) Delete(ctx context.Context, ownerID, jobID int64) error {
	deleted, err := svc.writer.Delete(ctx, ownerID, jobID)
	if err != nil {
		logger.Log.Errorw("failed to delete job", "err", err)
		return err
	}
	if !deleted {
		return ErrJobNotFound
	}

	return nil
}
