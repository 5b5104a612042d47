package theme

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title     lipgloss.Style
	Month     lipgloss.Style
	Weekday   lipgloss.Style
	Levels    [5]lipgloss.Style
	Cursor    lipgloss.Style
	Countdown lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
	Panel     lipgloss.Style
	PanelHead lipgloss.Style
	Note      lipgloss.Style
	Faint     lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Underline(true),
		Month:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Weekday:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Levels: [5]lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		},
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		PanelHead: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Note:      lipgloss.NewStyle(),
		Faint:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
