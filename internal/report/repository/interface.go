package repository

import (
	"context"

	"report-srv/internal/model"
)

//go:generate mockery --name ReportRepository
type ReportRepository interface {
	ListReports(ctx context.Context) ([]model.Report, error)
	GetReportByID(ctx context.Context, id string) (model.Report, error)
	CreateReport(ctx context.Context, opts CreateReportOptions) (model.Report, error)
	UpdateReport(ctx context.Context, opts UpdateReportOptions) (model.Report, error)
	DeleteReport(ctx context.Context, id string) error
	CountReports(ctx context.Context) (int, error)
}

//go:generate mockery --name MemoryRepository
type MemoryRepository interface {
	ReportRepository
}
