package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellToDateSerialEpoch(t *testing.T) {
	// The 1900 epoch carries the Lotus leap-year bug: two days come off the
	// serial before counting from 1900-01-01.
	got, ok := CellToDate(float64(2), time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC), got)

	got, ok = CellToDate(float64(3), time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(1900, time.January, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestCellToDateModernSerial(t *testing.T) {
	// 45658 is the host spreadsheet's serial for 2025-01-01.
	got, ok := CellToDate(float64(45658), time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestCellToDateString(t *testing.T) {
	got, ok := CellToDate("2026-02-24", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.February, 24, 0, 0, 0, 0, time.UTC), got)
}

func TestCellToDateAbsentOrInvalid(t *testing.T) {
	cases := []struct {
		name string
		cell any
	}{
		{"nil cell", nil},
		{"empty string", ""},
		{"whitespace", "   "},
		{"garbage text", "not a date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := CellToDate(tc.cell, time.UTC)
			assert.False(t, ok)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 0, DaysBetween(day(2026, time.March, 1), day(2026, time.March, 1)))
	assert.Equal(t, 27, DaysBetween(day(2026, time.March, 23), day(2026, time.February, 24)))
	assert.Equal(t, -10, DaysBetween(day(2026, time.March, 1), day(2026, time.March, 11)))
}

func TestDaysBetweenStripsTimeOfDay(t *testing.T) {
	a := time.Date(2026, time.March, 2, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, time.March, 1, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(a, b))
}
