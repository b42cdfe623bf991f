package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"report-srv/internal/model"
	"report-srv/internal/report"
	kafkaDelivery "report-srv/internal/report/delivery/kafka"
)

// PublishReportEvent publishes a report change event.
// It returns ctx.Err() if ctx ends before the broker answers; the send itself is not aborted.
func (p *implProducer) PublishReportEvent(ctx context.Context, event report.ReportEvent) error {
	msg := kafkaDelivery.ReportEventMessage{
		Type:       event.Type,
		ReportID:   event.ReportID,
		OccurredAt: event.OccurredAt,
	}
	if event.Report != nil {
		msg.Report = toPayload(*event.Report)
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal report event: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- p.producer.Publish([]byte(event.ReportID), body)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to publish report event: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("failed to publish report event: %w", ctx.Err())
	}

	p.l.Debugf(ctx, "Published %s for report %s", event.Type, event.ReportID)
	return nil
}

func toPayload(r model.Report) *kafkaDelivery.ReportPayload {
	return &kafkaDelivery.ReportPayload{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Progress:    r.Progress,
		Status:      r.Status,
		Assignee:    r.Assignee,
		DueDate:     r.DueDate,
		CreatedAt:   model.FormatTimestamp(r.CreatedAt),
		UpdatedAt:   model.FormatTimestamp(r.UpdatedAt),
	}
}
