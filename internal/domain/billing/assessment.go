package billing

import "time"

// Status classifies a contract's position relative to its notification window.
type Status string

const (
	StatusDueSoon  Status = "DUE_SOON"
	StatusUpcoming Status = "UPCOMING"
	StatusSkipped  Status = "SKIPPED"
)

// SkipReason explains why a record was excluded from scheduling.
type SkipReason string

const (
	SkipInactive         SkipReason = "inactive"
	SkipNoEmail          SkipReason = "no_email"
	SkipPassThrough      SkipReason = "pass_through"
	SkipContractExpired  SkipReason = "contract_expired"
	SkipUnsupportedCycle SkipReason = "unsupported_cycle"
	SkipNoDueDate        SkipReason = "no_due_date"
	SkipPastContractEnd  SkipReason = "past_contract_end"
)

// Assessment is the verdict for one contract on one calendar day.
// Produced once per run and never persisted.
type Assessment struct {
	PropertyID   string
	TenantName   string
	ContactEmail string
	NextDue      time.Time // zero when Status is SKIPPED before resolution
	DaysAway     int
	Status       Status
	SkipReason   SkipReason // set only when Status is SKIPPED
}
