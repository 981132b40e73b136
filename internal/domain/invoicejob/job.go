package invoicejob

import (
	"time"

	"github.com/google/uuid"
)

// TaskDescription is the static instruction handed to the downstream invoice
// worker. The job deliberately carries no tenant list: the worker re-derives
// the due-soon set itself, so one job covers the whole batch.
const TaskDescription = "Read the file at operating_system/SEND_INVOICES.md and complete the tasks described there."

// Status of a queued invoice job.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusPickedUp Status = "PICKED_UP"
	StatusDone     Status = "DONE"
)

// Job is a single downstream work item.
// Corresponds to the 'invoice_jobs' table.
type Job struct {
	ID        uuid.UUID
	Task      string
	Status    Status
	CreatedAt time.Time
}
