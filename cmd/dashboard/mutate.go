package main

import (
	"fmt"
	"strings"

	"report-srv/internal/model"
	"report-srv/pkg/reportsrv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := createInputFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		l := newLogger("stderr", "warn")
		defer l.Sync() //nolint:errcheck

		r, err := newClient().Create(cmd.Context(), in)
		if err != nil {
			l.Errorf(cmd.Context(), "dashboard.create: Failed to create report: %v", err)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created report %s (%s).\n", r.ID, r.Title)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <report-id>",
	Short: "Update a report; only the flags given are sent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := updateInputFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		l := newLogger("stderr", "warn")
		defer l.Sync() //nolint:errcheck

		r, err := newClient().Update(cmd.Context(), args[0], in)
		if err != nil {
			l.Errorf(cmd.Context(), "dashboard.update: Failed to update report %s: %v", args[0], err)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated report %s: %s, %d%%.\n", r.ID, r.Status, r.Progress)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <report-id>",
	Short:   "Delete a report",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l := newLogger("stderr", "warn")
		defer l.Sync() //nolint:errcheck

		if err := newClient().Delete(cmd.Context(), args[0]); err != nil {
			l.Errorf(cmd.Context(), "dashboard.delete: Failed to delete report %s: %v", args[0], err)
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report %s deleted.\n", args[0])
		return nil
	},
}

func init() {
	addReportFlags(createCmd.Flags())
	addReportFlags(updateCmd.Flags())
	for _, name := range []string{"title", "description", "assignee", "due-date"} {
		_ = createCmd.MarkFlagRequired(name)
	}

	rootCmd.AddCommand(createCmd, updateCmd, deleteCmd)
}

func addReportFlags(fs *pflag.FlagSet) {
	fs.String("title", "", "report title")
	fs.String("description", "", "report description")
	fs.Int("progress", 0, "percent complete, 0-100")
	fs.String("status", reportsrv.StatusInProgress, "one of "+strings.Join(reportsrv.Statuses, ", "))
	fs.String("assignee", "", "person responsible")
	fs.String("due-date", "", "due date, e.g. 2024-05-01")
}

func createInputFromFlags(fs *pflag.FlagSet) (reportsrv.CreateInput, error) {
	var in reportsrv.CreateInput
	in.Title, _ = fs.GetString("title")
	in.Description, _ = fs.GetString("description")
	in.Progress, _ = fs.GetInt("progress")
	in.Status, _ = fs.GetString("status")
	in.Assignee, _ = fs.GetString("assignee")
	in.DueDate, _ = fs.GetString("due-date")

	return in, checkValues(in.Progress, in.Status)
}

func updateInputFromFlags(fs *pflag.FlagSet) (reportsrv.UpdateInput, error) {
	var in reportsrv.UpdateInput
	str := func(name string) *string {
		if !fs.Changed(name) {
			return nil
		}
		v, _ := fs.GetString(name)
		return &v
	}
	in.Title = str("title")
	in.Description = str("description")
	in.Status = str("status")
	in.Assignee = str("assignee")
	in.DueDate = str("due-date")
	if fs.Changed("progress") {
		p, _ := fs.GetInt("progress")
		in.Progress = &p
	}

	if in == (reportsrv.UpdateInput{}) {
		return in, fmt.Errorf("nothing to update: set at least one field flag")
	}

	progress, status := 0, reportsrv.StatusInProgress
	if in.Progress != nil {
		progress = *in.Progress
	}
	if in.Status != nil {
		status = *in.Status
	}
	return in, checkValues(progress, status)
}

func checkValues(progress int, status string) error {
	if progress < 0 || progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100, got %d", progress)
	}
	if !model.IsValidReportStatus(status) {
		return fmt.Errorf("status must be one of %s, got %q", strings.Join(reportsrv.Statuses, ", "), status)
	}
	return nil
}
