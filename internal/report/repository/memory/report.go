package memory

import (
	"context"
	"strconv"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/report/repository"
)

// ListReports - Return a snapshot of all reports, newest first.
func (r *implRepository) ListReports(ctx context.Context) ([]model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Report, len(r.reports))
	copy(out, r.reports)
	return out, nil
}

// GetReportByID - Linear scan by id.
func (r *implRepository) GetReportByID(ctx context.Context, id string) (model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Report{}, repository.ErrReportNotFound
	}
	return r.reports[i], nil
}

// CreateReport - Assign id and timestamps, then prepend.
func (r *implRepository) CreateReport(ctx context.Context, opts repository.CreateReportOptions) (model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()
	rpt := model.Report{
		ID:          r.nextID(now),
		Title:       opts.Title,
		Description: opts.Description,
		Progress:    opts.Progress,
		Status:      opts.Status,
		Assignee:    opts.Assignee,
		DueDate:     opts.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.reports = append([]model.Report{rpt}, r.reports...)
	r.l.Debugf(ctx, "report.repository.memory.CreateReport: created report %s", rpt.ID)
	return rpt, nil
}

// UpdateReport - Apply the non-nil fields of opts and refresh UpdatedAt.
func (r *implRepository) UpdateReport(ctx context.Context, opts repository.UpdateReportOptions) (model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(opts.ID)
	if i < 0 {
		return model.Report{}, repository.ErrReportNotFound
	}

	rpt := applyPatch(r.reports[i], opts)
	rpt.UpdatedAt = r.later(rpt.UpdatedAt)
	r.reports[i] = rpt
	return rpt, nil
}

// DeleteReport - Remove the report; order of the rest is kept.
func (r *implRepository) DeleteReport(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return repository.ErrReportNotFound
	}

	r.reports = append(r.reports[:i:i], r.reports[i+1:]...)
	r.l.Debugf(ctx, "report.repository.memory.DeleteReport: deleted report %s", id)
	return nil
}

// CountReports - Number of stored reports.
func (r *implRepository) CountReports(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.reports), nil
}

// indexOf must be called with mu held.
func (r *implRepository) indexOf(id string) int {
	for i := range r.reports {
		if r.reports[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *implRepository) clock() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

// nextID returns now in Unix milliseconds, bumped past the last issued or stored id.
// Must be called with mu held.
func (r *implRepository) nextID(now time.Time) string {
	n := now.UnixMilli()
	if n <= r.lastID {
		n = r.lastID + 1
	}
	for r.indexOf(strconv.FormatInt(n, 10)) >= 0 {
		n++
	}
	r.lastID = n
	return strconv.FormatInt(n, 10)
}

// later returns the current time, or prev+1ms when the clock has not moved past prev.
func (r *implRepository) later(prev time.Time) time.Time {
	now := r.clock()
	if !now.After(prev) {
		return prev.Add(time.Millisecond)
	}
	return now
}
