package memory

import (
	"report-srv/internal/model"
	"report-srv/internal/report/repository"
)

// applyPatch returns rpt with the non-nil fields of opts overlaid.
// ID and timestamps are never taken from opts.
func applyPatch(rpt model.Report, opts repository.UpdateReportOptions) model.Report {
	if opts.Title != nil {
		rpt.Title = *opts.Title
	}
	if opts.Description != nil {
		rpt.Description = *opts.Description
	}
	if opts.Progress != nil {
		rpt.Progress = *opts.Progress
	}
	if opts.Status != nil {
		rpt.Status = *opts.Status
	}
	if opts.Assignee != nil {
		rpt.Assignee = *opts.Assignee
	}
	if opts.DueDate != nil {
		rpt.DueDate = *opts.DueDate
	}
	return rpt
}
