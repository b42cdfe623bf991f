package usecase

import (
	"context"

	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/internal/report/repository"
)

func toCreateOptions(input report.CreateInput) repository.CreateReportOptions {
	return repository.CreateReportOptions{
		Title:       input.Title,
		Description: input.Description,
		Progress:    input.Progress,
		Status:      input.Status,
		Assignee:    input.Assignee,
		DueDate:     input.DueDate,
	}
}

func toUpdateOptions(input report.UpdateInput) repository.UpdateReportOptions {
	return repository.UpdateReportOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Progress:    input.Progress,
		Status:      input.Status,
		Assignee:    input.Assignee,
		DueDate:     input.DueDate,
	}
}

// publish emits a change event off the request path. The request context's values are
// kept but its cancellation is not, so an event outlives a finished request.
// Failures are logged and never returned.
func (uc *implUseCase) publish(ctx context.Context, eventType, reportID string, rpt *model.Report) {
	if uc.producer == nil {
		return
	}

	event := report.ReportEvent{
		Type:       eventType,
		ReportID:   reportID,
		Report:     rpt,
		OccurredAt: uc.now().UTC(),
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.publishTimeout)
	uc.inflight.Add(1)
	go func() {
		defer uc.inflight.Done()
		defer cancel()

		if err := uc.producer.PublishReportEvent(pubCtx, event); err != nil {
			uc.l.Warnf(pubCtx, "report.usecase.publish: Failed to publish %s for report %s: %v", eventType, reportID, err)
		}
	}()
}

// wait blocks until every background publish has returned.
func (uc *implUseCase) wait() {
	uc.inflight.Wait()
}
