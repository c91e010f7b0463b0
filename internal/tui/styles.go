package tui

import "github.com/charmbracelet/lipgloss"

var (
	// InfoStyle is used for progress lines (counts resolved/retrieved).
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("35")) // Green

	// MatchStyle is used for matched-pair descriptions.
	MatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")) // Yellow

	// WarnStyle is used for degraded-but-not-fatal conditions.
	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")). // Orange
			Bold(true)

	// ErrorStyle is used for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// PromptStyle is used for the confirmation question.
	PromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")). // Light blue
			Bold(true)

	// DimStyle is used for skipped pairs and help text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")) // Dark gray

	// DoneStyle is used for the final summary line.
	DoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("35")). // Green
			Bold(true)
)
