package dates

import (
	"errors"
	"testing"
	"time"
)

func TestKeyRoundTrip(t *testing.T) {
	keys := []string{"2026-01-01", "2026-03-05", "2026-12-31", "2024-02-29"}
	for _, k := range keys {
		parsed, err := ParseKey(k)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", k, err)
		}
		if got := Key(parsed); got != k {
			t.Fatalf("round trip failed: %s -> %s", k, got)
		}
	}
}

func TestParseKeyInvalid(t *testing.T) {
	bad := []string{
		"",
		"2026",
		"2026-3-05",
		"2026-03-5",
		"03-05-2026",
		"2026-13-01",
		"2026-02-30",
		"2026-03-05x",
		"yyyy-mm-dd",
	}
	for _, k := range bad {
		if _, err := ParseKey(k); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("%q: expected ErrInvalidKey, got %v", k, err)
		}
	}
}

func TestForOrdinal(t *testing.T) {
	start := YearStart(2026)

	if got := Key(ForOrdinal(start, 0)); got != "2026-01-01" {
		t.Fatalf("offset 0: got %s", got)
	}
	if got := Key(ForOrdinal(start, 63)); got != "2026-03-05" {
		t.Fatalf("offset 63: got %s", got)
	}
	if got := Key(ForOrdinal(start, 364)); got != "2026-12-31" {
		t.Fatalf("offset 364: got %s", got)
	}
}

func TestDayCount(t *testing.T) {
	if got := DayCount(2026); got != 365 {
		t.Fatalf("2026: expected 365 days, got %d", got)
	}
	if got := DayCount(2024); got != 366 {
		t.Fatalf("2024: expected 366 days, got %d", got)
	}
}

func TestOrdinal(t *testing.T) {
	d := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	if got := Ordinal(d); got != 64 {
		t.Fatalf("expected day 64, got %d", got)
	}
}
