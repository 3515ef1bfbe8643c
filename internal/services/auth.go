package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/akozyrev/job-tracker/internal/logger"
	"github.com/akozyrev/job-tracker/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("email already registered")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, passwordHash, firstName, lastName string) (*models.UserDB, error)
}

// TokenGenerator defines an interface for issuing bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, email string) (string, error)
}

// AuthService handles registration, login and subject resolution.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user with a bcrypt-hashed password. The lookup
// before the insert only makes the error friendlier; the unique index on
// users.email is what actually prevents duplicates, so a unique violation
// from the insert maps to ErrUserAlreadyExists as well.
func (svc *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, email, string(hashedPassword), firstName, lastName)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			logger.Log.Errorw("concurrent duplicate registration", "email", email)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and returns a signed bearer token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}
