package util

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used in query strings and filenames.
const DateLayout = "2006-01-02"

// PreviousMonth returns the year and month for the previous month
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// ClampedDate returns the date for a target day in a given month, handling
// months with fewer days (e.g., day 31 in February returns Feb 28/29)
func ClampedDate(year int, month time.Month, targetDay int) time.Time {
	// Get last day of month by going to day 0 of next month
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	actualDay := targetDay
	if actualDay > lastDay {
		actualDay = lastDay
	}

	return time.Date(year, month, actualDay, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts a calendar date (YYYY-MM-DD) or an RFC3339 timestamp.
// Calendar dates are interpreted as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}

// IsCalendarDate reports whether s is a bare YYYY-MM-DD value.
func IsCalendarDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// StartOfDay truncates t to UTC midnight.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last representable instant of t's UTC day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// DefaultRange returns the window from the same day one month earlier up to
// the end of today.
func DefaultRange(now time.Time) (time.Time, time.Time) {
	u := now.UTC()
	year, month := PreviousMonth(u.Year(), int(u.Month()))
	return ClampedDate(year, time.Month(month), u.Day()), EndOfDay(u)
}
