// Package tuiapp hosts the interactive year-grid browser.
package tuiapp

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/yeargrid/pkg/app"
	"tableflip.dev/yeargrid/pkg/calendar"
	"tableflip.dev/yeargrid/pkg/countdown"
	"tableflip.dev/yeargrid/pkg/dates"
	"tableflip.dev/yeargrid/pkg/record"
	"tableflip.dev/yeargrid/pkg/store"
	"tableflip.dev/yeargrid/pkg/tui/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeEdit
)

type refreshMsg struct{}

// Model contains the UI state for the year-grid browser.
type Model struct {
	svc *app.Service
	ctx context.Context

	grid      calendar.Year
	history   []store.Entry
	countdown string

	cursor int
	mode   mode

	level int
	input textinput.Model

	showHistory bool
	status      string

	theme theme.Theme

	watch <-chan store.Event

	termWidth  int
	termHeight int
}

// Run launches the Bubble Tea UI over the given service.
func Run(svc *app.Service) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m, err := newModel(ctx, svc)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func newModel(ctx context.Context, svc *app.Service) (Model, error) {
	input := textinput.New()
	input.Placeholder = "note"
	input.CharLimit = 280

	m := Model{
		svc:    svc,
		ctx:    ctx,
		input:  input,
		theme:  theme.Default(),
		cursor: 0,
	}
	if err := m.refresh(); err != nil {
		return Model{}, err
	}

	// Start on today when it falls inside the target year.
	today := time.Now().In(countdown.Zone)
	if year, err := svc.Year(); err == nil && today.Year() == year {
		m.cursor = dates.Ordinal(today) - 1
	}

	// Live refresh is best effort; browsing works without a watcher.
	if ch, err := svc.Watch(ctx); err == nil {
		m.watch = ch
	}

	return m, nil
}

func (m *Model) refresh() error {
	grid, err := m.svc.Grid()
	if err != nil {
		return err
	}
	history, err := m.svc.History()
	if err != nil {
		return err
	}
	_, msg, err := m.svc.Countdown(time.Now())
	if err != nil {
		return err
	}
	m.grid = grid
	m.history = history
	m.countdown = msg
	return nil
}

func (m Model) Init() tea.Cmd {
	return m.watchCmd()
}

func (m Model) watchCmd() tea.Cmd {
	if m.watch == nil {
		return nil
	}
	ch := m.watch
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return refreshMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil

	case refreshMsg:
		if err := m.refresh(); err != nil {
			m.status = err.Error()
		}
		return m, m.watchCmd()

	case tea.KeyMsg:
		if m.mode == modeEdit {
			return m.updateEdit(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "left", "h":
		m.moveCursor(-7)
	case "right", "l":
		m.moveCursor(7)
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.grid.Cells) - 1
	case "t":
		today := time.Now().In(countdown.Zone)
		if year, err := m.svc.Year(); err == nil && today.Year() == year {
			m.cursor = dates.Ordinal(today) - 1
		}
	case "H":
		m.showHistory = !m.showHistory
	case "enter", " ":
		return m.openEditor()
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.grid.Cells) {
		return
	}
	m.cursor = next
}

// openEditor loads the selected day into the edit overlay. Opening a new
// target discards any unsaved in-progress edit.
func (m Model) openEditor() (tea.Model, tea.Cmd) {
	cell := m.grid.Cells[m.cursor]
	r, err := m.svc.Day(cell.Key)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.mode = modeEdit
	m.level = r.Level
	m.input.SetValue(r.Note)
	m.input.CursorEnd()
	m.status = ""
	return m, m.input.Focus()
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		m.status = ""
		return m, nil
	case "enter":
		cell := m.grid.Cells[m.cursor]
		if _, err := m.svc.Set(cell.Key, strconv.Itoa(m.level), m.input.Value()); err != nil {
			// Keep the editor open so nothing is silently lost.
			m.status = err.Error()
			return m, nil
		}
		m.mode = modeBrowse
		m.input.Blur()
		m.status = "saved " + cell.Key
		if err := m.refresh(); err != nil {
			m.status = err.Error()
		}
		return m, nil
	case "0", "1", "2", "3", "4":
		if lvl, err := strconv.Atoi(msg.String()); err == nil {
			m.level = record.Clamp(lvl)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	year := "year"
	if y, err := m.svc.Year(); err == nil {
		year = strconv.Itoa(y)
	}
	b.WriteString(m.theme.Title.Render(year))
	b.WriteString("\n\n")

	grid := m.viewGrid()
	if m.showHistory {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", m.viewHistory())
	}
	b.WriteString(grid)
	b.WriteString("\n")

	b.WriteString(m.theme.Countdown.Render(m.countdown))
	b.WriteString("\n\n")

	if m.mode == modeEdit {
		b.WriteString(m.viewEditor())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.theme.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render(m.helpLine()))
	return b.String()
}

func (m Model) helpLine() string {
	if m.mode == modeEdit {
		return "0-4 level · type to edit note · enter save · esc cancel"
	}
	return "arrows move · enter edit · t today · H history · q quit"
}

func (m Model) viewGrid() string {
	if len(m.grid.Cells) == 0 {
		return ""
	}

	startOffset := int(m.grid.Start.Weekday())
	weeks := (startOffset + len(m.grid.Cells) + 6) / 7

	var lines []string
	lines = append(lines, "    "+m.theme.Month.Render(m.monthLine(startOffset, weeks)))

	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		var row strings.Builder
		row.WriteString(m.theme.Weekday.Render(wd.String()[0:3] + " "))
		for week := 0; week < weeks; week++ {
			idx := week*7 + int(wd) - startOffset
			if idx < 0 || idx >= len(m.grid.Cells) {
				row.WriteString("  ")
				continue
			}
			cell := m.grid.Cells[idx]
			glyph := "■ "
			if cell.Level == 0 {
				glyph = "· "
			}
			style := m.theme.Levels[record.Clamp(cell.Level)]
			if idx == m.cursor {
				style = m.theme.Cursor
			}
			row.WriteString(style.Render(glyph))
		}
		lines = append(lines, row.String())
	}

	return strings.Join(lines, "\n")
}

func (m Model) monthLine(startOffset, weeks int) string {
	line := make([]rune, weeks*2)
	for i := range line {
		line[i] = ' '
	}
	for _, marker := range m.grid.Markers {
		col := (marker.Index + startOffset) / 7 * 2
		for i, r := range marker.Label {
			if col+i < len(line) {
				line[col+i] = r
			}
		}
	}
	return string(line)
}

func (m Model) viewHistory() string {
	head := m.theme.PanelHead.Render("History")
	if len(m.history) == 0 {
		return m.theme.Panel.Render(head + "\n" + m.theme.Faint.Render("no activity logged yet"))
	}

	shown := m.history
	if len(shown) > 8 {
		shown = shown[:8]
	}
	var rows []string
	for _, e := range shown {
		note := e.Record.Note
		if note == "" {
			note = m.theme.Faint.Render("no note")
		}
		level := m.theme.Levels[record.Clamp(e.Record.Level)].Render(
			strings.Repeat("■", record.Clamp(e.Record.Level)))
		rows = append(rows, fmt.Sprintf("%s %s %s", e.Key, level, note))
	}
	return m.theme.Panel.Render(head + "\n" + strings.Join(rows, "\n"))
}

func (m Model) viewEditor() string {
	cell := m.grid.Cells[m.cursor]

	head := m.theme.PanelHead.Render(cell.Date.Format("Monday, January 2, 2006"))
	day := m.theme.Faint.Render(
		fmt.Sprintf("Day %d of %d", dates.Ordinal(cell.Date), len(m.grid.Cells)))

	var levels strings.Builder
	for lvl := record.MinLevel; lvl <= record.MaxLevel; lvl++ {
		label := fmt.Sprintf(" %d ", lvl)
		style := m.theme.Levels[lvl]
		if lvl == m.level {
			style = m.theme.Cursor
		}
		levels.WriteString(style.Render(label))
	}

	body := head + "\n" + day + "\n\n" + levels.String() + "\n\n" + m.input.View()
	return m.theme.Panel.Render(body)
}
