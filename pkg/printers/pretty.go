package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/yeargrid/pkg/dates"
	"tableflip.dev/yeargrid/pkg/record"
	"tableflip.dev/yeargrid/pkg/store"
)

type PrettyPrint struct{}

const layoutLong = "Monday, January 2, 2006"

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Countdown prints the year-end countdown banner.
func (pp *PrettyPrint) Countdown(msg string) {
	b := color.New(color.Bold, color.FgHiCyan)
	_, _ = b.Println(msg)
}

// Day prints the detail view for a single date key.
func (pp *PrettyPrint) Day(key string, total int, r record.Record) {
	t, err := dates.ParseKey(key)
	if err != nil {
		fmt.Println(key)
		return
	}

	pp.Title(t.Format(layoutLong))

	f := color.New(color.Faint)
	_, _ = f.Printf("Day %d of %d\n\n", dates.Ordinal(t), total)

	p := color.New()
	_, _ = p.Printf("level  %s\n", levelBar(r.Level))
	if r.Note != "" {
		_, _ = p.Printf("note   %s\n", r.Note)
	} else {
		n := color.New(color.Faint, color.Italic)
		_, _ = n.Println("note   none")
	}
	fmt.Println("")
}

// History prints the active entries as a table, newest first.
func (pp *PrettyPrint) History(entries []store.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no activity logged yet\n\n")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Level"), bold.Sprint("Note"))
	for _, e := range entries {
		note := e.Record.Note
		if note == "" {
			note = "-"
		}
		tbl.AddRow(e.Key, levelBar(e.Record.Level), note)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func levelBar(level int) string {
	if level == 0 {
		return color.New(color.Faint).Sprint(strings.Repeat("·", record.MaxLevel))
	}
	c := levelColor(level)
	return c.Sprint(strings.Repeat("■", level)) +
		color.New(color.Faint).Sprint(strings.Repeat("·", record.MaxLevel-level))
}

func levelColor(level int) *color.Color {
	return color.New(levelAttrs(level)...)
}

func levelAttrs(level int) []color.Attribute {
	switch level {
	case 1:
		return []color.Attribute{color.FgGreen, color.Faint}
	case 2:
		return []color.Attribute{color.FgGreen}
	case 3:
		return []color.Attribute{color.FgHiGreen}
	case 4:
		return []color.Attribute{color.FgHiGreen, color.Bold}
	default:
		return []color.Attribute{color.Faint}
	}
}
