package database

import (
	"context"
	"database/sql"
	"fmt" // For error wrapping

	"rent_notification_bot/internal/domain/invoicejob"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// Custom errors
var ErrJobNotFound = fmt.Errorf("invoice job not found")

// PostgresJobRepository persists the invoice job queue.
// Corresponds to the 'invoice_jobs' table:
//
//	CREATE TABLE invoice_jobs (
//	    id         UUID PRIMARY KEY,
//	    task       TEXT NOT NULL,
//	    status     TEXT NOT NULL DEFAULT 'PENDING',
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type PostgresJobRepository struct {
	db *sql.DB
}

func NewPostgresJobRepository(db *sql.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Enqueue(ctx context.Context, j *invoicejob.Job) error {
	query := `INSERT INTO invoice_jobs (id, task, status)
               VALUES ($1, $2, $3)
               RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, j.ID, j.Task, j.Status).Scan(&j.CreatedAt)
	if err != nil {
		return fmt.Errorf("error enqueuing invoice job: %w", err)
	}
	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*invoicejob.Job, error) {
	query := `SELECT id, task, status, created_at
               FROM invoice_jobs WHERE id = $1`
	j := &invoicejob.Job{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&j.ID, &j.Task, &j.Status, &j.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("error getting invoice job by ID: %w", err)
	}
	return j, nil
}

func (r *PostgresJobRepository) ListPending(ctx context.Context) ([]*invoicejob.Job, error) {
	query := `SELECT id, task, status, created_at
               FROM invoice_jobs WHERE status = $1 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, invoicejob.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("error listing pending invoice jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]*invoicejob.Job, 0)
	for rows.Next() {
		j := &invoicejob.Job{}
		if err := rows.Scan(&j.ID, &j.Task, &j.Status, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning pending invoice job: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending invoice jobs: %w", err)
	}
	return jobs, nil
}

func (r *PostgresJobRepository) MarkPickedUp(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE invoice_jobs SET status = $1 WHERE id = $2 RETURNING id`

	var updatedID uuid.UUID
	err := r.db.QueryRowContext(ctx, query, invoicejob.StatusPickedUp, id).Scan(&updatedID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrJobNotFound
		}
		return fmt.Errorf("error marking invoice job picked up: %w", err)
	}
	return nil
}
