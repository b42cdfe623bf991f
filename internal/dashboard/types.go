package dashboard

import (
	"sync"

	"report-srv/pkg/log"
	"report-srv/pkg/reportsrv"
)

// Phase is the lifecycle of the view: loading until the first fetch settles, then ready.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
)

func (p Phase) String() string {
	if p == PhaseLoading {
		return "loading"
	}
	return "ready"
}

// State is an immutable copy of the dashboard state.
type State struct {
	Phase   Phase
	Reports []reportsrv.Report
	Stats   Stats
	// LastError is the most recent failed call, cleared by the next successful one.
	LastError error
}

// Stats are derived from the local collection.
type Stats struct {
	Total           int
	Completed       int
	InProgress      int
	AverageProgress int
}

type implDashboard struct {
	l      log.Logger
	client reportsrv.IReport

	mu      sync.RWMutex
	phase   Phase
	reports []reportsrv.Report
	lastErr error
}
