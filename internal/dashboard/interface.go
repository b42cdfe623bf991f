package dashboard

import (
	"context"

	"report-srv/pkg/log"
	"report-srv/pkg/reportsrv"
)

// Dashboard keeps the local copy of the report collection in sync with the API.
// Local state changes only from successful API responses.
// Implementations are safe for concurrent use.
type Dashboard interface {
	Load(ctx context.Context) error
	Create(ctx context.Context, input reportsrv.CreateInput) (reportsrv.Report, error)
	Update(ctx context.Context, id string, input reportsrv.UpdateInput) (reportsrv.Report, error)
	Delete(ctx context.Context, id string) error
	Snapshot() State
}

// New creates a Dashboard in the loading phase. Call Load to fetch the collection.
func New(l log.Logger, client reportsrv.IReport) Dashboard {
	return &implDashboard{
		l:      l,
		client: client,
		phase:  PhaseLoading,
	}
}
