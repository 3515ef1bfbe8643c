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

// UserReadRepository handles user lookup operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password_hash, first_name, last_name
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user insert operations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored record with its
// generated id. Duplicate emails surface as the driver's unique
// violation error; the users.email unique index is the real guard.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash, firstName, lastName string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, password_hash, first_name, last_name
	`
	args := []any{email, passwordHash, firstName, lastName}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, firstName, lastName},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
