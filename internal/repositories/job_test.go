package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/akozyrev/job-tracker/internal/models"
)

func setupJobPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS jobs (
		id BIGSERIAL PRIMARY KEY,
		owner_id BIGINT NOT NULL REFERENCES users (id),
		title TEXT NOT NULL,
		company TEXT NOT NULL,
		location TEXT,
		status TEXT NOT NULL DEFAULT 'Applied',
		date_applied DATE NOT NULL
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func createTestUser(t *testing.T, db *sqlx.DB, email string) int64 {
	t.Helper()

	var id int64
	err := db.Get(&id, "INSERT INTO users (email, password_hash) VALUES ($1, 'hash') RETURNING id", email)
	assert.NoError(t, err)
	return id
}

func TestJobWriteRepository_SaveAndList(t *testing.T) {
	db, teardown := setupJobPostgresContainer(t)
	defer teardown()

	writeRepo := NewJobWriteRepository(db, nil)
	readRepo := NewJobReadRepository(db, nil)
	ctx := context.Background()

	aliceID := createTestUser(t, db, "alice@example.com")

	location := "Berlin"
	fields := models.JobFields{
		Title:       "SWE",
		Company:     "Acme",
		Location:    &location,
		Status:      "Applied",
		DateApplied: models.NewDate(2024, 1, 1),
	}

	job, err := writeRepo.Save(ctx, aliceID, fields)
	assert.NoError(t, err)
	assert.NotZero(t, job.ID)
	assert.Equal(t, aliceID, job.OwnerID)
	assert.Equal(t, "SWE", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.NotNil(t, job.Location)
	assert.Equal(t, "Berlin", *job.Location)
	assert.Equal(t, "Applied", job.Status)
	assert.Equal(t, "2024-01-01", job.DateApplied.String())

	jobs, err := readRepo.List(ctx, aliceID, nil, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, *job, jobs[0])
}

func TestJobReadRepository_List_OwnerScoping(t *testing.T) {
	db, teardown := setupJobPostgresContainer(t)
	defer teardown()

	writeRepo := NewJobWriteRepository(db, nil)
	readRepo := NewJobReadRepository(db, nil)
	ctx := context.Background()

	aliceID := createTestUser(t, db, "alice@example.com")
	bobID := createTestUser(t, db, "bob@example.com")

	_, err := writeRepo.Save(ctx, aliceID, models.JobFields{
		Title: "SWE", Company: "Acme", Status: "Applied", DateApplied: models.NewDate(2024, 1, 1),
	})
	assert.NoError(t, err)

	aliceJobs, err := readRepo.List(ctx, aliceID, nil, 0, 0)
	assert.NoError(t, err)
	assert.Len(t, aliceJobs, 1)

	bobJobs, err := readRepo.List(ctx, bobID, nil, 0, 0)
	assert.NoError(t, err)
	assert.Empty(t, bobJobs)
}

func TestJobReadRepository_List_StatusFilterAndPagination(t *testing.T) {
	db, teardown := setupJobPostgresContainer(t)
	defer teardown()

	writeRepo := NewJobWriteRepository(db, nil)
	readRepo := NewJobReadRepository(db, nil)
	ctx := context.Background()

	aliceID := createTestUser(t, db, "alice@example.com")

	statuses := []string{"Applied", "Interviewing", "Applied", "Rejected"}
	for i, status := range statuses {
		_, err := writeRepo.Save(ctx, aliceID, models.JobFields{
			Title:       fmt.Sprintf("Role %d", i),
			Company:     "Acme",
			Status:      status,
			DateApplied: models.NewDate(2024, 1, 1),
		})
		assert.NoError(t, err)
	}

	t.Run("ExactStatusMatch", func(t *testing.T) {
		applied := "Applied"
		jobs, err := readRepo.List(ctx, aliceID, &applied, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, jobs, 2)
		for _, job := range jobs {
			assert.Equal(t, "Applied", job.Status)
		}
	})

	t.Run("NoMatches", func(t *testing.T) {
		offer := "Offer"
		jobs, err := readRepo.List(ctx, aliceID, &offer, 0, 0)
		assert.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("OffsetLimit", func(t *testing.T) {
		jobs, err := readRepo.List(ctx, aliceID, nil, 1, 2)
		assert.NoError(t, err)
		assert.Len(t, jobs, 2)
		assert.Equal(t, "Role 1", jobs[0].Title)
		assert.Equal(t, "Role 2", jobs[1].Title)
	})
}

func TestJobWriteRepository_Update(t *testing.T) {
	db, teardown := setupJobPostgresContainer(t)
	defer teardown()

	writeRepo := NewJobWriteRepository(db, nil)
	ctx := context.Background()

	aliceID := createTestUser(t, db, "alice@example.com")
	bobID := createTestUser(t, db, "bob@example.com")

	job, err := writeRepo.Save(ctx, aliceID, models.JobFields{
		Title: "SWE", Company: "Acme", Status: "Applied", DateApplied: models.NewDate(2024, 1, 1),
	})
	assert.NoError(t, err)

	newFields := models.JobFields{
		Title:       "SWE II",
		Company:     "Acme Corp",
		Status:      "Interviewing",
		DateApplied: models.NewDate(2024, 2, 1),
	}

	t.Run("OwnerUpdates", func(t *testing.T) {
		updated, err := writeRepo.Update(ctx, aliceID, job.ID, newFields)
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, "SWE II", updated.Title)
		assert.Equal(t, "Acme Corp", updated.Company)
		assert.Nil(t, updated.Location)
		assert.Equal(t, "Interviewing", updated.Status)
		assert.Equal(t, "2024-02-01", updated.DateApplied.String())
	})

	t.Run("OtherUserSeesNothing", func(t *testing.T) {
		updated, err := writeRepo.Update(ctx, bobID, job.ID, newFields)
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("MissingJob", func(t *testing.T) {
		updated, err := writeRepo.Update(ctx, aliceID, 9999, newFields)
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestJobWriteRepository_Delete(t *testing.T) {
	db, teardown := setupJobPostgresContainer(t)
	defer teardown()

	writeRepo := NewJobWriteRepository(db, nil)
	readRepo := NewJobReadRepository(db, nil)
	ctx := context.Background()

	aliceID := createTestUser(t, db, "alice@example.com")
	bobID := createTestUser(t, db, "bob@example.com")

	job, err := writeRepo.Save(ctx, aliceID, models.JobFields{
		Title: "SWE", Company: "Acme", Status: "Applied", DateApplied: models.NewDate(2024, 1, 1),
	})
	assert.NoError(t, err)

	t.Run("OtherUserCannotDelete", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, bobID, job.ID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("OwnerDeletes", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, aliceID, job.ID)
		assert.NoError(t, err)
		assert.True(t, deleted)

		jobs, err := readRepo.List(ctx, aliceID, nil, 0, 0)
		assert.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("SecondDeleteReportsFalse", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, aliceID, job.ID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestJobWriteRepository_WithTransaction(t *testing.T) {
	db, teardown := setupJobPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	aliceID := createTestUser(t, db, "alice@example.com")

	tx, err := db.Beginx()
	assert.NoError(t, err)

	txGetter := func(context.Context) *sqlx.Tx { return tx }
	writeRepo := NewJobWriteRepository(db, txGetter)
	readRepo := NewJobReadRepository(db, nil)

	_, err = writeRepo.Save(ctx, aliceID, models.JobFields{
		Title: "SWE", Company: "Acme", Status: "Applied", DateApplied: models.NewDate(2024, 1, 1),
	})
	assert.NoError(t, err)

	// Rolled back insert must not be visible outside the transaction.
	assert.NoError(t, tx.Rollback())

	jobs, err := readRepo.List(ctx, aliceID, nil, 0, 0)
	assert.NoError(t, err)
	assert.Empty(t, jobs)
}
