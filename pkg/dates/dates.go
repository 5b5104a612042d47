// Package dates maps day cells within the target year to their canonical
// string keys and back.
package dates

import (
	"errors"
	"fmt"
	"time"
)

// LayoutISO is the canonical key layout, YYYY-MM-DD.
const LayoutISO = "2006-01-02"

// ErrInvalidKey is returned when a date key does not match the canonical
// fixed-width YYYY-MM-DD form or names a date that does not exist.
var ErrInvalidKey = errors.New("dates: invalid date key")

// YearStart returns midnight on January 1 of the given year, UTC.
func YearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// DayCount returns the number of days in the given year.
func DayCount(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

// ForOrdinal returns yearStart advanced by offset whole days. The offset is
// caller-bounded to [0, DayCount).
func ForOrdinal(yearStart time.Time, offset int) time.Time {
	return yearStart.AddDate(0, 0, offset)
}

// Ordinal returns the one-based day-of-year for t, used for "Day N of M"
// style labels.
func Ordinal(t time.Time) int {
	return t.YearDay()
}

// Key formats t as its canonical YYYY-MM-DD key with zero-padded month and
// day. Lexicographic order on keys equals chronological order on days.
func Key(t time.Time) string {
	return t.Format(LayoutISO)
}

// ParseKey is the inverse of Key. Anything other than a fixed-width numeric
// YYYY-MM-DD naming a real calendar date fails with ErrInvalidKey.
func ParseKey(key string) (time.Time, error) {
	if len(key) != len(LayoutISO) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	t, err := time.Parse(LayoutISO, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return t, nil
}
