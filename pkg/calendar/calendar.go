// Package calendar projects the day-record store onto an ordered sequence
// of year cells with month-boundary markers.
package calendar

import (
	"time"

	"tableflip.dev/yeargrid/pkg/dates"
)

// Cell is one day of the year grid. Cells are ephemeral, recomputed on
// demand from the store snapshot and never persisted.
type Cell struct {
	Date  time.Time
	Key   string
	Level int
}

// Marker flags the first cell of a month for layout grouping.
type Marker struct {
	Index int
	Label string
}

// Year is the full projection for one target year.
type Year struct {
	Start   time.Time
	Cells   []Cell
	Markers []Marker
}

// LevelSource answers the current intensity level for a date key, zero when
// nothing is logged. The store satisfies this.
type LevelSource interface {
	Level(key string) int
}

// BuildYear produces the cell sequence for the given year, one cell per
// day, each annotated with its level from src. Month markers carry the
// index of the first cell in each month. For a fixed src snapshot the
// output is identical on every call.
func BuildYear(year int, src LevelSource) Year {
	start := dates.YearStart(year)
	count := dates.DayCount(year)

	y := Year{
		Start:   start,
		Cells:   make([]Cell, 0, count),
		Markers: make([]Marker, 0, 12),
	}

	month := time.Month(0)
	for i := 0; i < count; i++ {
		date := dates.ForOrdinal(start, i)
		key := dates.Key(date)

		if date.Month() != month {
			month = date.Month()
			y.Markers = append(y.Markers, Marker{Index: i, Label: month.String()[:3]})
		}

		level := 0
		if src != nil {
			level = src.Level(key)
		}
		y.Cells = append(y.Cells, Cell{Date: date, Key: key, Level: level})
	}

	return y
}
