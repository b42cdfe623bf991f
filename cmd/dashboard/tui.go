package main

import (
	"report-srv/internal/tui"

	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the terminal dashboard",
	Long:  `Launch the interactive dashboard. Logs go to a file so they do not garble the screen.`,
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	l := newLogger(defaultTUILogFile, "info")
	defer l.Sync() //nolint:errcheck

	return tui.Run(cmd.Context(), newDashboard(l))
}
