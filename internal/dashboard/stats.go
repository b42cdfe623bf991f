package dashboard

import (
	"math"

	"report-srv/pkg/reportsrv"
)

// ComputeStats counts completed and in-progress reports and averages progress.
// The average rounds halves up and is 0 for an empty collection.
func ComputeStats(reports []reportsrv.Report) Stats {
	s := Stats{Total: len(reports)}
	if len(reports) == 0 {
		return s
	}

	sum := 0
	for _, r := range reports {
		switch r.Status {
		case reportsrv.StatusCompleted:
			s.Completed++
		case reportsrv.StatusInProgress:
			s.InProgress++
		}
		sum += r.Progress
	}
	s.AverageProgress = int(math.Floor(float64(sum)/float64(len(reports)) + 0.5))
	return s
}
