package billing

import (
	"time"

	"rent_notification_bot/internal/domain/contract"
)

// Classify assesses every record against today's date, one assessment per
// record in input order. The result is a pure function of its inputs; calling
// it twice with the same records and date yields identical output.
func Classify(records []contract.Record, today time.Time) []Assessment {
	today = DateOnly(today)
	assessments := make([]Assessment, 0, len(records))
	for _, rec := range records {
		assessments = append(assessments, classifyRecord(rec, today))
	}
	return assessments
}

// AnyDueSoon reports whether at least one assessment requires invoicing.
// When true the caller enqueues exactly one downstream job for the whole
// batch, never one per tenant.
func AnyDueSoon(assessments []Assessment) bool {
	for _, a := range assessments {
		if a.Status == StatusDueSoon {
			return true
		}
	}
	return false
}

// CountDueSoon returns the number of due-soon assessments.
func CountDueSoon(assessments []Assessment) int {
	n := 0
	for _, a := range assessments {
		if a.Status == StatusDueSoon {
			n++
		}
	}
	return n
}

func classifyRecord(rec contract.Record, today time.Time) Assessment {
	a := Assessment{
		PropertyID:   rec.PropertyID,
		TenantName:   rec.TenantName,
		ContactEmail: rec.ContactEmail,
	}

	if !rec.Active {
		return skipped(a, SkipInactive)
	}
	if rec.ContactEmail == "" {
		return skipped(a, SkipNoEmail)
	}
	if rec.BillingCycle == contract.CyclePassThrough {
		return skipped(a, SkipPassThrough)
	}
	if rec.ContractEnd != nil && DateOnly(*rec.ContractEnd).Before(today) {
		return skipped(a, SkipContractExpired)
	}

	nextDue, ok := ResolveNextDue(rec, today)
	if !ok {
		switch rec.BillingCycle {
		case contract.CycleFourWeek, contract.CycleMonthly:
			return skipped(a, SkipNoDueDate)
		default:
			return skipped(a, SkipUnsupportedCycle)
		}
	}
	if rec.ContractEnd != nil && nextDue.After(DateOnly(*rec.ContractEnd)) {
		return skipped(a, SkipPastContractEnd)
	}

	a.NextDue = nextDue
	a.DaysAway = DaysBetween(nextDue, today)
	// days_away of zero still counts as due-soon: same-day notification is
	// allowed even though the resolver never yields a past due date.
	if a.DaysAway >= 0 && a.DaysAway <= rec.NotifyDays {
		a.Status = StatusDueSoon
	} else {
		a.Status = StatusUpcoming
	}
	return a
}

func skipped(a Assessment, reason SkipReason) Assessment {
	a.Status = StatusSkipped
	a.SkipReason = reason
	return a
}
