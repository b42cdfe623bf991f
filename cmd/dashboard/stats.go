package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show report totals and average progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := newLogger("stderr", "warn")
		defer l.Sync() //nolint:errcheck

		d := newDashboard(l)
		if err := d.Load(cmd.Context()); err != nil {
			return err
		}

		s := d.Snapshot().Stats
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total:        %d\n", s.Total)
		fmt.Fprintf(out, "Completed:    %d\n", s.Completed)
		fmt.Fprintf(out, "In Progress:  %d\n", s.InProgress)
		fmt.Fprintf(out, "Avg Progress: %d%%\n", s.AverageProgress)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
