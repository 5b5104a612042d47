package calendar

import (
	"testing"
)

type levelMap map[string]int

func (m levelMap) Level(key string) int {
	return m[key]
}

func TestBuildYearShape(t *testing.T) {
	y := BuildYear(2026, nil)

	if len(y.Cells) != 365 {
		t.Fatalf("expected 365 cells, got %d", len(y.Cells))
	}
	if got := y.Cells[0].Key; got != "2026-01-01" {
		t.Fatalf("first cell: %s", got)
	}
	if got := y.Cells[364].Key; got != "2026-12-31" {
		t.Fatalf("last cell: %s", got)
	}

	for i := 1; i < len(y.Cells); i++ {
		if !y.Cells[i].Date.After(y.Cells[i-1].Date) {
			t.Fatalf("dates not strictly increasing at index %d", i)
		}
	}
}

func TestBuildYearLeap(t *testing.T) {
	y := BuildYear(2024, nil)
	if len(y.Cells) != 366 {
		t.Fatalf("expected 366 cells for a leap year, got %d", len(y.Cells))
	}
}

func TestBuildYearMarkers(t *testing.T) {
	y := BuildYear(2026, nil)

	if len(y.Markers) != 12 {
		t.Fatalf("expected 12 month markers, got %d", len(y.Markers))
	}
	if y.Markers[0].Index != 0 || y.Markers[0].Label != "Jan" {
		t.Fatalf("unexpected first marker: %+v", y.Markers[0])
	}
	if y.Markers[2].Index != 59 || y.Markers[2].Label != "Mar" {
		t.Fatalf("unexpected March marker: %+v", y.Markers[2])
	}

	for i := 1; i < len(y.Markers); i++ {
		if y.Markers[i].Index <= y.Markers[i-1].Index {
			t.Fatalf("marker indexes not increasing at %d", i)
		}
		if y.Cells[y.Markers[i].Index].Date.Day() != 1 {
			t.Fatalf("marker %d does not point at a first-of-month cell", i)
		}
	}
}

func TestBuildYearLevels(t *testing.T) {
	src := levelMap{"2026-03-05": 3}
	y := BuildYear(2026, src)

	for _, cell := range y.Cells {
		want := 0
		if cell.Key == "2026-03-05" {
			want = 3
		}
		if cell.Level != want {
			t.Fatalf("%s: expected level %d, got %d", cell.Key, want, cell.Level)
		}
	}
}

func TestBuildYearDeterministic(t *testing.T) {
	src := levelMap{"2026-07-01": 2}
	a := BuildYear(2026, src)
	b := BuildYear(2026, src)

	if len(a.Cells) != len(b.Cells) || !a.Start.Equal(b.Start) {
		t.Fatal("projections differ in shape")
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			t.Fatalf("cell %d differs between calls", i)
		}
	}
	if a.Start.IsZero() {
		t.Fatal("year start should be set")
	}
}
