package main

import (
	"fmt"
	"text/tabwriter"

	"report-srv/internal/model"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List reports",
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := newLogger("stderr", "warn")
		defer l.Sync() //nolint:errcheck

		d := newDashboard(l)
		if err := d.Load(cmd.Context()); err != nil {
			return err
		}

		reports := d.Snapshot().Reports
		out := cmd.OutOrStdout()
		if len(reports) == 0 {
			fmt.Fprintln(out, "No reports found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPROGRESS\tASSIGNEE\tDUE\tUPDATED")
		for _, r := range reports {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\t%s\t%s\t%s\n",
				r.ID, r.Title, r.Status, r.Progress, r.Assignee, r.DueDate, model.FormatTimestamp(r.UpdatedAt))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
