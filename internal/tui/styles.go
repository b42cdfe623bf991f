package tui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#fab283") // warm peach
	secondaryColor = lipgloss.Color("#5c9cf5") // blue

	errorColor   = lipgloss.Color("#e06c75")
	warningColor = lipgloss.Color("#f5a742")
	successColor = lipgloss.Color("#7fd88f")

	textColor         = lipgloss.Color("#eeeeee")
	textMutedColor    = lipgloss.Color("#808080")
	borderSubtleColor = lipgloss.Color("#3c3c3c")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	statBoxStyle = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(borderSubtleColor)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)

	statValueStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	keyDescStyle = lipgloss.NewStyle().
			Foreground(textMutedColor)

	panelStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(borderSubtleColor)
)

// statusStyle colors a report status badge.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "completed":
		return lipgloss.NewStyle().Foreground(successColor)
	case "on-hold":
		return lipgloss.NewStyle().Foreground(warningColor)
	default:
		return lipgloss.NewStyle().Foreground(secondaryColor)
	}
}
