package usecase

import (
	"context"
	"errors"

	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
)

// List returns all reports, newest first.
func (uc *implUseCase) List(ctx context.Context) ([]model.Report, error) {
	reports, err := uc.repo.ListReports(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.List: Failed to list reports: %v", err)
		return nil, report.ErrListFailed
	}

	return reports, nil
}

// Create stores a new report. The repository owns id and timestamps.
func (uc *implUseCase) Create(ctx context.Context, input report.CreateInput) (model.Report, error) {
	rpt, err := uc.repo.CreateReport(ctx, toCreateOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Create: Failed to create report: %v", err)
		return model.Report{}, report.ErrCreateFailed
	}

	uc.publish(ctx, report.EventTypeCreated, rpt.ID, &rpt)
	return rpt, nil
}

// Update merges the set fields of input over the stored report.
func (uc *implUseCase) Update(ctx context.Context, input report.UpdateInput) (model.Report, error) {
	rpt, err := uc.repo.UpdateReport(ctx, toUpdateOptions(input))
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return model.Report{}, report.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.Update: Failed to update report %s: %v", input.ID, err)
		return model.Report{}, report.ErrUpdateFailed
	}

	uc.publish(ctx, report.EventTypeUpdated, rpt.ID, &rpt)
	return rpt, nil
}

// Delete removes the report with input.ID.
func (uc *implUseCase) Delete(ctx context.Context, input report.DeleteInput) error {
	if err := uc.repo.DeleteReport(ctx, input.ID); err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return report.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.Delete: Failed to delete report %s: %v", input.ID, err)
		return report.ErrDeleteFailed
	}

	uc.publish(ctx, report.EventTypeDeleted, input.ID, nil)
	return nil
}
