package credential

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.September, 1, 10, 30, 0, 0, time.UTC)

func issuedDaysAgo(days int) string {
	return now.AddDate(0, 0, -days).Format("2006-01-02")
}

func TestCheckExpiryInsideWarningWindow(t *testing.T) {
	v := CheckExpiry(issuedDaysAgo(80), now)

	require.Equal(t, OutcomeChecked, v.Outcome)
	assert.Equal(t, 80, v.DaysSinceIssue)
	assert.Equal(t, 10, v.DaysUntilExpiry)
	assert.True(t, v.NeedsWarning)
	assert.Contains(t, v.Message, "expires in ~10 days")
	assert.Contains(t, v.Message, "graphsetup")
}

func TestCheckExpiryAlreadyExpired(t *testing.T) {
	v := CheckExpiry(issuedDaysAgo(100), now)

	require.Equal(t, OutcomeChecked, v.Outcome)
	assert.Equal(t, -10, v.DaysUntilExpiry)
	assert.True(t, v.NeedsWarning)
	assert.Contains(t, v.Message, "EXPIRED")
}

func TestCheckExpiryThresholdBoundary(t *testing.T) {
	// Exactly 14 days left still warns; 15 does not.
	atThreshold := CheckExpiry(issuedDaysAgo(MaxLifetimeDays-WarnThresholdDays), now)
	assert.True(t, atThreshold.NeedsWarning)
	assert.Equal(t, WarnThresholdDays, atThreshold.DaysUntilExpiry)

	outside := CheckExpiry(issuedDaysAgo(MaxLifetimeDays-WarnThresholdDays-1), now)
	assert.False(t, outside.NeedsWarning)
	assert.Empty(t, outside.Message)
}

func TestCheckExpiryTruncatesTowardZero(t *testing.T) {
	// Issued at midnight 10 days ago; the partial 11th day must not count,
	// or expiry would be declared early.
	v := CheckExpiry(issuedDaysAgo(10), now)
	assert.Equal(t, 10, v.DaysSinceIssue)
}

func TestCheckExpiryNotConfigured(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		v := CheckExpiry(raw, now)
		assert.Equal(t, OutcomeNotConfigured, v.Outcome)
		assert.False(t, v.NeedsWarning)
	}
}

func TestCheckExpiryInvalidInput(t *testing.T) {
	v := CheckExpiry("16/02/2026", now)
	assert.Equal(t, OutcomeInvalidInput, v.Outcome)
	assert.False(t, v.NeedsWarning)
}
