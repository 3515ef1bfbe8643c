package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/akozyrev/job-tracker/internal/logger"
	"github.com/akozyrev/job-tracker/internal/models"
)

// DefaultListLimit caps job listings when the caller does not supply a limit.
const DefaultListLimit = 100

// JobReadRepository handles owner-scoped job lookups.
type JobReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewJobReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *JobReadRepository {
	return &JobReadRepository{db: db, txGetter: txGetter}
}

func (r *JobReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// List returns the jobs owned by ownerID, ordered by id. A non-nil
// status restricts results to an exact match. Limit values <= 0 fall
// back to DefaultListLimit.
func (r *JobReadRepository) List(ctx context.Context, ownerID int64, status *string, offset, limit int) ([]models.JobDB, error) {
	const query = `
		SELECT id, owner_id, title, company, location, status, date_applied
		FROM jobs
		WHERE owner_id = $1
		  AND ($2::TEXT IS NULL OR status = $2)
		ORDER BY id
		OFFSET $3 LIMIT $4
	`

	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	args := []any{ownerID, status, offset, limit}

	jobs := make([]models.JobDB, 0)
	err := sqlx.SelectContext(ctx, r.executor(ctx), &jobs, query, args...)

	logger.Log.Infow("job list query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return jobs, nil
}

// JobWriteRepository handles owner-scoped job mutations.
type JobWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewJobWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *JobWriteRepository {
	return &JobWriteRepository{db: db, txGetter: txGetter}
}

func (r *JobWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a job owned by ownerID and returns the stored record.
func (r *JobWriteRepository) Save(ctx context.Context, ownerID int64, fields models.JobFields) (*models.JobDB, error) {
	const query = `
		INSERT INTO jobs (owner_id, title, company, location, status, date_applied)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, title, company, location, status, date_applied
	`
	args := []any{ownerID, fields.Title, fields.Company, fields.Location, fields.Status, fields.DateApplied}

	var job models.JobDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &job, query, args...)

	logger.Log.Infow("job insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &job, nil
}

// Update replaces every mutable field of the job matching (jobID,
// ownerID) and returns the updated record, or nil when no such job
// exists for this owner.
func (r *JobWriteRepository) Update(ctx context.Context, ownerID, jobID int64, fields models.JobFields) (*models.JobDB, error) {
	const query = `
		UPDATE jobs
		SET title = $3, company = $4, location = $5, status = $6, date_applied = $7
		WHERE id = $2 AND owner_id = $1
		RETURNING id, owner_id, title, company, location, status, date_applied
	`
	args := []any{ownerID, jobID, fields.Title, fields.Company, fields.Location, fields.Status, fields.DateApplied}

	var job models.JobDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &job, query, args...)

	logger.Log.Infow("job update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &job, nil
}

// Delete removes the job matching (jobID, ownerID). It reports whether
// a row was actually deleted.
func (r *JobWriteRepository) Delete(ctx context.Context, ownerID, jobID int64) (bool, error) {
	const query = `
		DELETE FROM jobs
		WHERE id = $2 AND owner_id = $1
	`
	args := []any{ownerID, jobID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("job delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
