package tui

import (
	"context"

	"report-srv/internal/dashboard"

	tea "github.com/charmbracelet/bubbletea"
)

var startProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// Run starts the terminal dashboard over d and blocks until the user quits.
func Run(ctx context.Context, d dashboard.Dashboard) error {
	return startProgram(NewModel(ctx, d))
}
