package memory

import (
	"time"

	"report-srv/internal/model"
)

// DefaultSeed returns the reports every process starts with.
func DefaultSeed() []model.Report {
	return []model.Report{
		{
			ID:          "1",
			Title:       "Website Redesign Project",
			Description: "Complete overhaul of company website with modern design and improved UX",
			Progress:    75,
			Status:      model.ReportStatusInProgress,
			Assignee:    "John Doe",
			DueDate:     "2024-02-15",
			CreatedAt:   date(2024, time.January, 1),
			UpdatedAt:   date(2024, time.January, 15),
		},
		{
			ID:          "2",
			Title:       "Mobile App Development",
			Description: "Native iOS and Android app for customer engagement",
			Progress:    45,
			Status:      model.ReportStatusInProgress,
			Assignee:    "Jane Smith",
			DueDate:     "2024-03-01",
			CreatedAt:   date(2024, time.January, 5),
			UpdatedAt:   date(2024, time.January, 20),
		},
		{
			ID:          "3",
			Title:       "Database Migration",
			Description: "Migrate legacy database to cloud infrastructure",
			Progress:    100,
			Status:      model.ReportStatusCompleted,
			Assignee:    "Mike Johnson",
			DueDate:     "2024-01-30",
			CreatedAt:   date(2024, time.January, 10),
			UpdatedAt:   date(2024, time.January, 30),
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
