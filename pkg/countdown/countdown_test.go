package countdown

import (
	"testing"
	"time"
)

func TestDaysRemaining(t *testing.T) {
	end := YearEnd(2026)

	cases := []struct {
		now  time.Time
		want int
	}{
		{time.Date(2026, time.December, 30, 12, 0, 0, 0, Zone), 2},
		{time.Date(2026, time.December, 31, 12, 0, 0, 0, Zone), 1},
		{time.Date(2026, time.December, 31, 23, 59, 59, 0, Zone), 0},
		{time.Date(2026, time.January, 1, 0, 0, 0, 0, Zone), 365},
	}
	for _, c := range cases {
		if got := DaysRemaining(c.now, end); got != c.want {
			t.Fatalf("%s: expected %d, got %d", c.now, c.want, got)
		}
	}

	after := time.Date(2027, time.January, 1, 0, 0, 0, 0, Zone)
	if got := DaysRemaining(after, end); got >= 0 {
		t.Fatalf("past year end should be negative, got %d", got)
	}
}

func TestMessage(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{120, "120 days left in the year"},
		{2, "2 days left in the year"},
		{1, "Tomorrow is the last day of the year!"},
		{0, "Today is the last day of the year!"},
		{-1, "Happy new year!"},
		{-40, "Happy new year!"},
	}
	for _, c := range cases {
		if got := Message(c.days); got != c.want {
			t.Fatalf("%d: expected %q, got %q", c.days, c.want, got)
		}
	}
}

func TestRemainingUsesFixedZone(t *testing.T) {
	// Noon UTC on Dec 30 is 9am Dec 30 in UTC-3: still two days out.
	now := time.Date(2026, time.December, 30, 12, 0, 0, 0, time.UTC)
	days, msg := Remaining(now, 2026)
	if days != 2 {
		t.Fatalf("expected 2 days, got %d", days)
	}
	if msg != "2 days left in the year" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
