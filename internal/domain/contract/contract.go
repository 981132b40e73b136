package contract

import (
	"strconv"
	"strings"
	"time"
)

// BillingCycle is the recurrence rule governing when rent is due.
type BillingCycle string

const (
	CycleFourWeek    BillingCycle = "4-week"
	CycleMonthly     BillingCycle = "monthly"
	CyclePassThrough BillingCycle = "pass-through"
)

// DefaultNotifyDays is used when the Notify_Days cell is absent or zero-like.
const DefaultNotifyDays = 3

// Record is one row of tenant/billing data from the Contracts sheet.
// It is built fresh on every scheduler run and never mutated.
type Record struct {
	PropertyID    string
	TenantName    string
	ContactEmail  string
	BillingCycle  BillingCycle
	Active        bool
	ContractStart *time.Time // nil when absent or unparseable
	ContractEnd   *time.Time
	NotifyDays    int
}

// ParseActive normalizes the sheet's mixed boolean representations into a
// real boolean. Anything outside the allowlist counts as inactive.
func ParseActive(cell any) bool {
	switch v := cell.(type) {
	case bool:
		return v
	case string:
		return v == "TRUE" || v == "true"
	}
	return false
}

// ParseNotifyDays reads the Notify_Days cell, substituting DefaultNotifyDays
// when the cell is absent, empty, or zero. The sheet cannot represent
// "present and zero" distinctly from "absent", so both get the default; this
// is a known limitation of the source data, not something to fix here.
func ParseNotifyDays(cell any) int {
	switch v := cell.(type) {
	case float64:
		if v != 0 {
			return int(v)
		}
	case int:
		if v != 0 {
			return v
		}
	case string:
		s := strings.TrimSpace(v)
		if s != "" {
			if n, err := strconv.Atoi(s); err == nil && n != 0 {
				return n
			}
		}
	}
	return DefaultNotifyDays
}
