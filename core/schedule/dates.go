package schedule

import (
	"time"

	"github.com/pkg/errors"
)

const dayLayout = "2006-01-02"

// Day returns the canonical representation of a civil day: midnight UTC.
// All calendar math in this package is done at day granularity on these
// normalized values, so subtracting two of them always yields whole days.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a normalized civil day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parsing day %q", s)
	}
	return Normalize(t), nil
}

// FormatDay renders a normalized day back to YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

// Normalize drops the time-of-day component, keeping the civil date as seen
// in the value's own location, re-anchored at midnight UTC.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return Day(y, m, d)
}

// Today returns the current civil day in the program's reference timezone.
// The cohort calendar is anchored at a fixed UTC offset so that midnight
// boundaries behave the same no matter where the process runs.
func Today(offsetHours int) time.Time {
	zone := time.FixedZone("program", offsetHours*3600)
	return Normalize(time.Now().In(zone))
}

// daysBetween returns the whole number of days from a to b (both normalized).
func daysBetween(a, b time.Time) float64 {
	return b.Sub(a).Hours() / 24
}
