package dashboard

import (
	"context"

	"report-srv/pkg/reportsrv"
)

// Load fetches the collection. A failed first fetch still moves to ready with no
// reports; a failed reload keeps the current reports.
func (d *implDashboard) Load(ctx context.Context) error {
	reports, err := d.client.List(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	if err != nil {
		d.l.Errorf(ctx, "dashboard.Load: Failed to fetch reports: %v", err)
		if d.phase == PhaseLoading {
			d.reports = nil
			d.phase = PhaseReady
		}
		d.lastErr = err
		return err
	}

	d.reports = reports
	d.phase = PhaseReady
	d.lastErr = nil
	return nil
}

// Create prepends the created report returned by the API.
func (d *implDashboard) Create(ctx context.Context, input reportsrv.CreateInput) (reportsrv.Report, error) {
	created, err := d.client.Create(ctx, input)
	if err != nil {
		d.fail(ctx, "dashboard.Create: Failed to create report: %v", err)
		return reportsrv.Report{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	reports := make([]reportsrv.Report, 0, len(d.reports)+1)
	reports = append(reports, created)
	d.reports = append(reports, d.reports...)
	d.lastErr = nil
	return created, nil
}

// Update replaces the local report with the same id by the API response.
func (d *implDashboard) Update(ctx context.Context, id string, input reportsrv.UpdateInput) (reportsrv.Report, error) {
	updated, err := d.client.Update(ctx, id, input)
	if err != nil {
		d.fail(ctx, "dashboard.Update: Failed to update report: %v", err)
		return reportsrv.Report{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	reports := make([]reportsrv.Report, len(d.reports))
	for i, r := range d.reports {
		if r.ID == id {
			r = updated
		}
		reports[i] = r
	}
	d.reports = reports
	d.lastErr = nil
	return updated, nil
}

// Delete drops the local report once the API confirms the delete.
func (d *implDashboard) Delete(ctx context.Context, id string) error {
	if err := d.client.Delete(ctx, id); err != nil {
		d.fail(ctx, "dashboard.Delete: Failed to delete report: %v", err)
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	reports := make([]reportsrv.Report, 0, len(d.reports))
	for _, r := range d.reports {
		if r.ID != id {
			reports = append(reports, r)
		}
	}
	d.reports = reports
	d.lastErr = nil
	return nil
}

// Snapshot returns a copy of the state with freshly derived stats.
func (d *implDashboard) Snapshot() State {
	d.mu.RLock()
	defer d.mu.RUnlock()

	reports := make([]reportsrv.Report, len(d.reports))
	copy(reports, d.reports)

	return State{
		Phase:     d.phase,
		Reports:   reports,
		Stats:     ComputeStats(reports),
		LastError: d.lastErr,
	}
}

// fail logs err and records it without touching the reports.
func (d *implDashboard) fail(ctx context.Context, template string, err error) {
	d.l.Errorf(ctx, template, err)

	d.mu.Lock()
	d.lastErr = err
	d.mu.Unlock()
}
