package kafka

import "time"

// ReportEventMessage - Kafka message for report change events, keyed by report id.
type ReportEventMessage struct {
	Type       string         `json:"type"`
	ReportID   string         `json:"report_id"`
	Report     *ReportPayload `json:"report,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// ReportPayload mirrors the REST representation of a report.
type ReportPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee"`
	DueDate     string `json:"dueDate"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
