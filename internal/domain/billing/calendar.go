package billing

import (
	"math"
	"strings"
	"time"
)

// CellToDate normalizes a raw worksheet cell into a calendar date.
//
// Numeric cells are Excel serial day counts: days since the 1900-01-01 epoch,
// carrying the Lotus 1-2-3 bug that treats 1900 as a leap year. Two days are
// subtracted from the serial before adding whole days to the epoch, which
// reproduces the host spreadsheet's numbering for all modern dates.
// Non-empty string cells are parsed as a plain calendar date at midnight.
// Absent or empty cells yield no date (ok=false), which is not an error.
func CellToDate(cell any, loc *time.Location) (time.Time, bool) {
	switch v := cell.(type) {
	case float64:
		epoch := time.Date(1900, time.January, 1, 0, 0, 0, 0, loc)
		return epoch.AddDate(0, 0, int(v)-2), true
	case int:
		epoch := time.Date(1900, time.January, 1, 0, 0, 0, 0, loc)
		return epoch.AddDate(0, 0, v-2), true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		t, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

// DateOnly strips the time-of-day component, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of whole calendar days from b to a,
// computed on date-only values. Rounding to the nearest integer absorbs
// daylight-saving offsets inside the interval. Negative when a precedes b.
func DaysBetween(a, b time.Time) int {
	diff := DateOnly(a).Sub(DateOnly(b))
	return int(math.Round(diff.Hours() / 24))
}
