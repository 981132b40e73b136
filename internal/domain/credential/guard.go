package credential

import (
	"fmt"
	"strings"
	"time"
)

const (
	// MaxLifetimeDays is how long a delegated refresh token stays valid.
	MaxLifetimeDays = 90
	// WarnThresholdDays is how far ahead of expiry the operator is warned.
	WarnThresholdDays = 14
)

// Outcome distinguishes a performed check from the two degenerate inputs.
type Outcome string

const (
	OutcomeChecked       Outcome = "CHECKED"
	OutcomeNotConfigured Outcome = "NOT_CONFIGURED"
	OutcomeInvalidInput  Outcome = "INVALID_INPUT"
)

// Verdict is the guard's view of the credential's remaining lifetime.
type Verdict struct {
	Outcome         Outcome
	IssuedOn        time.Time
	DaysSinceIssue  int
	DaysUntilExpiry int
	NeedsWarning    bool
	Message         string
}

// CheckExpiry evaluates the refresh token's remaining lifetime from its
// issuance date (YYYY-MM-DD).
//
// An empty issuance date yields NOT_CONFIGURED and no warning: absence of
// tracking must not produce false alarms. An unparseable date yields
// INVALID_INPUT, which the caller should log loudly as an operator
// configuration error. Days since issue are truncated toward zero, not
// rounded, so expiry is never declared early.
func CheckExpiry(issuedOn string, now time.Time) Verdict {
	issuedOn = strings.TrimSpace(issuedOn)
	if issuedOn == "" {
		return Verdict{Outcome: OutcomeNotConfigured}
	}

	created, err := time.ParseInLocation("2006-01-02", issuedOn, now.Location())
	if err != nil {
		return Verdict{Outcome: OutcomeInvalidInput}
	}

	daysSince := int(now.Sub(created).Hours() / 24)
	daysUntil := MaxLifetimeDays - daysSince

	v := Verdict{
		Outcome:         OutcomeChecked,
		IssuedOn:        created,
		DaysSinceIssue:  daysSince,
		DaysUntilExpiry: daysUntil,
		NeedsWarning:    daysUntil <= WarnThresholdDays,
	}
	if !v.NeedsWarning {
		return v
	}

	if daysUntil <= 0 {
		v.Message = fmt.Sprintf(
			"⚠️ Azure refresh token has EXPIRED (created %s, %d days ago). Run the graphsetup command to renew immediately.",
			issuedOn, daysSince)
	} else {
		v.Message = fmt.Sprintf(
			"⚠️ Azure refresh token expires in ~%d days (created %s). Run the graphsetup command to renew before it expires.",
			daysUntil, issuedOn)
	}
	return v
}
