package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App     lipgloss.Style
	Header  lipgloss.Style
	Section lipgloss.Style

	PlanLine      lipgloss.Style
	PlanScheduled lipgloss.Style
	PlanSkipped   lipgloss.Style
	Conflict      lipgloss.Style
	Counter       lipgloss.Style

	FormLabel   lipgloss.Style
	FormFocused lipgloss.Style

	Error lipgloss.Style
	Help  lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		App:     lipgloss.NewStyle().Padding(1, 2),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Section: lipgloss.NewStyle().Bold(true).Foreground(Colors.Secondary).MarginTop(1),

		PlanLine:      lipgloss.NewStyle(),
		PlanScheduled: lipgloss.NewStyle().Foreground(Colors.Success),
		PlanSkipped:   lipgloss.NewStyle().Foreground(Colors.Muted),
		Conflict:      lipgloss.NewStyle().Foreground(Colors.Warning),
		Counter:       lipgloss.NewStyle().Foreground(Colors.Muted),

		FormLabel:   lipgloss.NewStyle().Foreground(Colors.Muted).Width(12),
		FormFocused: lipgloss.NewStyle().Foreground(Colors.Primary),

		Error: lipgloss.NewStyle().Foreground(Colors.Error),
		Help:  lipgloss.NewStyle().Foreground(Colors.Muted).MarginTop(1),
	}
}
