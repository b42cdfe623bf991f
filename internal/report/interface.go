package report

import (
	"context"

	"report-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) ([]model.Report, error)
	Create(ctx context.Context, input CreateInput) (model.Report, error)
	Update(ctx context.Context, input UpdateInput) (model.Report, error)
	Delete(ctx context.Context, input DeleteInput) error
}

// Producer publishes report change events. A nil Producer disables publishing.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishReportEvent(ctx context.Context, event ReportEvent) error
}
