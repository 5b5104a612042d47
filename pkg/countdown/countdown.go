// Package countdown computes the days left before the target year ends.
package countdown

import (
	"fmt"
	"time"
)

// Zone is the fixed UTC-3 offset all countdown math is evaluated in.
var Zone = time.FixedZone("UTC-3", -3*60*60)

const day = 24 * time.Hour

// YearEnd returns the last instant of the year, 23:59:59 on December 31 in
// Zone.
func YearEnd(year int) time.Time {
	return time.Date(year, time.December, 31, 23, 59, 59, 0, Zone)
}

// DaysRemaining returns the count of whole days between now and yearEnd.
// Partial days round away from zero, so the result is negative as soon as
// the year is over.
func DaysRemaining(now, yearEnd time.Time) int {
	diff := yearEnd.Sub(now)
	days := diff / day
	switch rem := diff % day; {
	case rem > 0:
		days++
	case rem < 0:
		days--
	}
	return int(days)
}

// Message maps a remaining-day count onto its user-facing wording.
func Message(days int) string {
	switch {
	case days > 1:
		return fmt.Sprintf("%d days left in the year", days)
	case days == 1:
		return "Tomorrow is the last day of the year!"
	case days == 0:
		return "Today is the last day of the year!"
	default:
		return "Happy new year!"
	}
}

// Remaining is a convenience joining DaysRemaining and Message for the
// year's final instant.
func Remaining(now time.Time, year int) (int, string) {
	days := DaysRemaining(now.In(Zone), YearEnd(year))
	return days, Message(days)
}
