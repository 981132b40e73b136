package invoicejob

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence for the invoice job queue.
type Repository interface {
	Enqueue(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*Job, error)
	ListPending(ctx context.Context) ([]*Job, error)
	MarkPickedUp(ctx context.Context, id uuid.UUID) error
}
