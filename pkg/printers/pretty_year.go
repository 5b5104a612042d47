package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/yeargrid/pkg/calendar"
)

// YearGrid prints the whole year as a contribution-style graph: one row
// per weekday, one column per week, cells shaded by intensity level.
func (pp *PrettyPrint) YearGrid(y calendar.Year) {
	if len(y.Cells) == 0 {
		return
	}

	startOffset := int(y.Start.Weekday())
	weeks := (startOffset + len(y.Cells) + 6) / 7

	pp.printMonthLine(y, startOffset, weeks)

	l0 := color.New(color.Faint)
	today := time.Now()

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		f := color.New(color.Faint)
		_, _ = f.Printf("%s ", wd.String()[0:3])

		for week := 0; week < weeks; week++ {
			idx := week*7 + int(wd) - startOffset
			if idx < 0 || idx >= len(y.Cells) {
				fmt.Print("  ")
				continue
			}

			cell := y.Cells[idx]
			switch {
			case sameDay(cell.Date, today):
				b := color.New(color.Bold, color.Underline)
				if cell.Level > 0 {
					b = b.Add(levelAttrs(cell.Level)...)
				}
				_, _ = b.Print("■ ")
			case cell.Level == 0:
				_, _ = l0.Print("· ")
			default:
				_, _ = levelColor(cell.Level).Print("■ ")
			}
		}
		fmt.Print("\n")
	}
	fmt.Print("\n")
}

// printMonthLine renders the month labels above the week columns.
func (pp *PrettyPrint) printMonthLine(y calendar.Year, startOffset, weeks int) {
	line := make([]rune, weeks*2)
	for i := range line {
		line[i] = ' '
	}
	for _, m := range y.Markers {
		col := (m.Index + startOffset) / 7 * 2
		for i, r := range m.Label {
			if col+i < len(line) {
				line[col+i] = r
			}
		}
	}

	tf := color.New(color.FgWhite, color.Italic)
	_, _ = tf.Printf("    %s\n", string(line))
}

func sameDay(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}
