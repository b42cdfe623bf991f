package report

import (
	"time"

	"report-srv/internal/model"
)

const (
	EventTypeCreated = "report.created"
	EventTypeUpdated = "report.updated"
	EventTypeDeleted = "report.deleted"
)

type CreateInput struct {
	Title       string
	Description string
	Progress    int
	Status      string
	Assignee    string
	DueDate     string
}

// UpdateInput is a partial update. Nil fields keep their stored value.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Progress    *int
	Status      *string
	Assignee    *string
	DueDate     *string
}

type DeleteInput struct {
	ID string
}

// ReportEvent describes a change to a single report.
// Report is nil for delete events.
type ReportEvent struct {
	Type       string
	ReportID   string
	Report     *model.Report
	OccurredAt time.Time
}
