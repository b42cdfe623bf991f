package reportsrv

import (
	"time"

	pkghttp "report-srv/pkg/http"
)

// ReportConfig holds configuration for the report API client.
type ReportConfig struct {
	BaseURL    string
	HTTPClient pkghttp.IClient
}

// Report is a report as returned by the API.
type Report struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Progress    int       `json:"progress"`
	Status      string    `json:"status"`
	Assignee    string    `json:"assignee"`
	DueDate     string    `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateInput is the body of a create call.
type CreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Status      string `json:"status"`
	Assignee    string `json:"assignee"`
	DueDate     string `json:"dueDate"`
}

// UpdateInput is the body of an update call. Nil fields are not sent.
type UpdateInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Progress    *int    `json:"progress,omitempty"`
	Status      *string `json:"status,omitempty"`
	Assignee    *string `json:"assignee,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}

// APIError is a non-2xx answer from the report API.
type APIError struct {
	StatusCode int
	Message    string
}

type errorBody struct {
	Error string `json:"error"`
}

// reportImpl implements IReport.
type reportImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}
