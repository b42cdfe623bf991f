package reportsrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the report API.
	DefaultTimeout = 10 * time.Second
	// DefaultBaseURL is where a locally started API listens.
	DefaultBaseURL = "http://localhost:8080"
	// UserAgent is sent on every dashboard request.
	UserAgent = "report-dashboard"
)

// PathReports is the collection path of the report API.
const PathReports = "/reports"

// Report statuses.
const (
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusOnHold     = "on-hold"
)

// Statuses lists every status in display order.
var Statuses = []string{StatusInProgress, StatusCompleted, StatusOnHold}
