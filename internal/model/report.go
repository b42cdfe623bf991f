package model

import "time"

// Report statuses. No transition rules apply between them.
const (
	ReportStatusInProgress = "in-progress"
	ReportStatusCompleted  = "completed"
	ReportStatusOnHold     = "on-hold"
)

// TimestampFormat renders UTC times with millisecond precision, e.g. 2024-01-01T00:00:00.000Z.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Report represents a progress report record.
type Report struct {
	ID string

	Title       string
	Description string
	Progress    int    // 0-100
	Status      string // in-progress | completed | on-hold
	Assignee    string
	DueDate     string // passed through as submitted

	// Timestamps
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidReportStatus reports whether status is one of the known statuses.
func IsValidReportStatus(status string) bool {
	switch status {
	case ReportStatusInProgress, ReportStatusCompleted, ReportStatusOnHold:
		return true
	}
	return false
}

// FormatTimestamp formats t with TimestampFormat in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}
