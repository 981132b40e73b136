package billing

import (
	"time"

	"rent_notification_bot/internal/domain/contract"
)

// fourWeekCycleDays is the length of one 4-week billing cycle.
const fourWeekCycleDays = 28

// ResolveNextDue computes the next rent-due date for a contract record.
// The boolean is false when the cycle is unsupported or the record's dates
// cannot produce one. Pass-through contracts never reach the resolver; the
// filter short-circuits them first.
func ResolveNextDue(rec contract.Record, today time.Time) (time.Time, bool) {
	today = DateOnly(today)
	switch rec.BillingCycle {
	case contract.CycleFourWeek:
		return nextFourWeekDue(rec.ContractStart, today)
	case contract.CycleMonthly:
		return nextMonthlyDue(today), true
	default:
		return time.Time{}, false
	}
}

// nextFourWeekDue walks 28-day cycles forward from the contract start until
// the candidate lands strictly after today, so a due date never resolves to
// the past.
func nextFourWeekDue(start *time.Time, today time.Time) (time.Time, bool) {
	if start == nil {
		return time.Time{}, false
	}
	due := DateOnly(*start).AddDate(0, 0, fourWeekCycleDays)
	for !due.After(today) {
		due = due.AddDate(0, 0, fourWeekCycleDays)
	}
	return due, true
}

// nextMonthlyDue returns the 1st of the current month when that is still
// strictly ahead of today, otherwise the 1st of the next month. Invoked
// exactly on the 1st it rolls to next month: that cycle has already been
// billed.
func nextMonthlyDue(today time.Time) time.Time {
	first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	if first.After(today) {
		return first
	}
	return first.AddDate(0, 1, 0)
}
