package datemath

import (
	"fmt"
	"math"
	"time"
)

// DateFormat is the ISO 8601 calendar date layout used on every storage and wire boundary.
const DateFormat = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// StartOfDay returns midnight of t's calendar day in t's own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days and truncates to midnight.
// AddDate keeps the wall clock across DST transitions, so day boundaries stay aligned.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}

// DaysUntil returns the ceiling of the number of calendar days from now to due,
// measured on the wall clock of due's location so 23 and 25 hour days count as one.
// Negative values mean due is in the past.
func DaysUntil(due, now time.Time) int {
	now = now.In(due.Location())
	days := float64(civilDay(due)-civilDay(now)) + wallFraction(due) - wallFraction(now)
	return int(math.Ceil(days))
}

// civilDay numbers t's calendar date, ignoring its offset.
func civilDay(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// wallFraction is the share of a 24 hour day shown on t's wall clock.
func wallFraction(t time.Time) float64 {
	secs := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return (float64(secs) + float64(t.Nanosecond())/1e9) / secondsPerDay
}

// FormatDate renders t as an ISO 8601 date without a time component.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses an ISO 8601 date into midnight of that day in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateFormat, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}
