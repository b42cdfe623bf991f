package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"report-srv/pkg/log"
	"report-srv/pkg/reportsrv"
)

var errAPI = errors.New("api unavailable")

type fakeClient struct {
	reports []reportsrv.Report
	err     error
	nextID  string
}

func (c *fakeClient) List(ctx context.Context) ([]reportsrv.Report, error) {
	if c.err != nil {
		return nil, c.err
	}
	out := make([]reportsrv.Report, len(c.reports))
	copy(out, c.reports)
	return out, nil
}

func (c *fakeClient) Create(ctx context.Context, in reportsrv.CreateInput) (reportsrv.Report, error) {
	if c.err != nil {
		return reportsrv.Report{}, c.err
	}
	return reportsrv.Report{
		ID:       c.nextID,
		Title:    in.Title,
		Progress: in.Progress,
		Status:   in.Status,
	}, nil
}

func (c *fakeClient) Update(ctx context.Context, id string, in reportsrv.UpdateInput) (reportsrv.Report, error) {
	if c.err != nil {
		return reportsrv.Report{}, c.err
	}
	for _, r := range c.reports {
		if r.ID == id {
			if in.Progress != nil {
				r.Progress = *in.Progress
			}
			if in.Status != nil {
				r.Status = *in.Status
			}
			r.UpdatedAt = r.UpdatedAt.Add(time.Hour)
			return r, nil
		}
	}
	return reportsrv.Report{}, reportsrv.ErrNotFound
}

func (c *fakeClient) Delete(ctx context.Context, id string) error {
	return c.err
}

func seed() []reportsrv.Report {
	return []reportsrv.Report{
		{ID: "1", Title: "Website Redesign Project", Progress: 75, Status: reportsrv.StatusInProgress},
		{ID: "2", Title: "Mobile App Development", Progress: 45, Status: reportsrv.StatusInProgress},
		{ID: "3", Title: "Database Migration", Progress: 100, Status: reportsrv.StatusCompleted},
	}
}

func loaded(t *testing.T, c *fakeClient) Dashboard {
	t.Helper()
	d := New(log.NewNop(), c)
	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return d
}

func ids(s State) []string {
	out := make([]string, 0, len(s.Reports))
	for _, r := range s.Reports {
		out = append(out, r.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLoad(t *testing.T) {
	d := New(log.NewNop(), &fakeClient{reports: seed()})
	if got := d.Snapshot().Phase; got != PhaseLoading {
		t.Fatalf("initial phase = %v, want loading", got)
	}

	if err := d.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	s := d.Snapshot()
	if s.Phase != PhaseReady || !equalIDs(ids(s), []string{"1", "2", "3"}) {
		t.Errorf("unexpected state: phase %v ids %v", s.Phase, ids(s))
	}
}

func TestLoadFailureGivesEmptyReady(t *testing.T) {
	d := New(log.NewNop(), &fakeClient{err: errAPI})

	if err := d.Load(context.Background()); !errors.Is(err, errAPI) {
		t.Fatalf("Load err = %v, want %v", err, errAPI)
	}
	s := d.Snapshot()
	if s.Phase != PhaseReady || len(s.Reports) != 0 {
		t.Errorf("state = %v with %d reports, want empty ready", s.Phase, len(s.Reports))
	}
	if s.Stats != (Stats{}) {
		t.Errorf("stats = %+v, want zero", s.Stats)
	}
	if !errors.Is(s.LastError, errAPI) {
		t.Errorf("LastError = %v", s.LastError)
	}
}

func TestReloadFailureKeepsReports(t *testing.T) {
	c := &fakeClient{reports: seed()}
	d := loaded(t, c)

	c.err = errAPI
	_ = d.Load(context.Background())
	if got := ids(d.Snapshot()); len(got) != 3 {
		t.Errorf("ids = %v, want 3 kept", got)
	}
}

func TestCreatePrepends(t *testing.T) {
	c := &fakeClient{reports: seed(), nextID: "1700000000000"}
	d := loaded(t, c)

	created, err := d.Create(context.Background(), reportsrv.CreateInput{Title: "X", Progress: 10, Status: reportsrv.StatusInProgress})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	s := d.Snapshot()
	if !equalIDs(ids(s), []string{created.ID, "1", "2", "3"}) {
		t.Errorf("ids = %v", ids(s))
	}
}

func TestUpdateReplaces(t *testing.T) {
	d := loaded(t, &fakeClient{reports: seed()})

	progress, status := 100, reportsrv.StatusCompleted
	if _, err := d.Update(context.Background(), "2", reportsrv.UpdateInput{Progress: &progress, Status: &status}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	s := d.Snapshot()
	if !equalIDs(ids(s), []string{"1", "2", "3"}) {
		t.Fatalf("order changed: %v", ids(s))
	}
	if r := s.Reports[1]; r.Progress != 100 || r.Status != reportsrv.StatusCompleted || r.Title != "Mobile App Development" {
		t.Errorf("report not replaced: %+v", r)
	}
}

func TestDeleteRemoves(t *testing.T) {
	d := loaded(t, &fakeClient{reports: seed()})

	if err := d.Delete(context.Background(), "1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := ids(d.Snapshot()); !equalIDs(got, []string{"2", "3"}) {
		t.Errorf("ids = %v, want [2 3]", got)
	}
}

func TestFailedMutationsLeaveStateUnchanged(t *testing.T) {
	c := &fakeClient{reports: seed()}
	d := loaded(t, c)
	before := d.Snapshot()
	c.err = errAPI
	ctx := context.Background()
	progress := 5

	mutations := map[string]func() error{
		"create": func() error { _, err := d.Create(ctx, reportsrv.CreateInput{Title: "X"}); return err },
		"update": func() error { _, err := d.Update(ctx, "1", reportsrv.UpdateInput{Progress: &progress}); return err },
		"delete": func() error { return d.Delete(ctx, "1") },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			if err := mutate(); !errors.Is(err, errAPI) {
				t.Fatalf("err = %v, want %v", err, errAPI)
			}
			after := d.Snapshot()
			if !equalIDs(ids(after), ids(before)) || after.Stats != before.Stats {
				t.Errorf("state changed: %v -> %v", ids(before), ids(after))
			}
			if !errors.Is(after.LastError, errAPI) {
				t.Errorf("LastError = %v", after.LastError)
			}
		})
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	d := loaded(t, &fakeClient{reports: seed()})

	s := d.Snapshot()
	s.Reports[0].Title = "changed"
	if d.Snapshot().Reports[0].Title == "changed" {
		t.Error("Snapshot shares its slice")
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name    string
		reports []reportsrv.Report
		want    Stats
	}{
		{"empty", nil, Stats{}},
		{"seed", seed(), Stats{Total: 3, Completed: 1, InProgress: 2, AverageProgress: 73}},
		{"half rounds up", []reportsrv.Report{{Progress: 0}, {Progress: 5}}, Stats{Total: 2, AverageProgress: 3}},
		{"on-hold counted in total only", []reportsrv.Report{{Status: reportsrv.StatusOnHold, Progress: 50}}, Stats{Total: 1, AverageProgress: 50}},
		{"below half rounds down", []reportsrv.Report{{Progress: 10}, {Progress: 10}, {Progress: 11}}, Stats{Total: 3, AverageProgress: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeStats(tt.reports); got != tt.want {
				t.Errorf("ComputeStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
