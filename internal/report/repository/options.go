package repository

// CreateReportOptions carries the client-owned fields of a new report.
// The repository assigns ID, CreatedAt and UpdatedAt.
type CreateReportOptions struct {
	Title       string
	Description string
	Progress    int
	Status      string
	Assignee    string
	DueDate     string
}

// UpdateReportOptions is a merge-patch: only non-nil fields are applied.
type UpdateReportOptions struct {
	ID          string
	Title       *string
	Description *string
	Progress    *int
	Status      *string
	Assignee    *string
	DueDate     *string
}
