package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"report-srv/internal/dashboard"
	"report-srv/pkg/log"
	"report-srv/pkg/reportsrv"

	tea "github.com/charmbracelet/bubbletea"
)

type memClient struct {
	reports []reportsrv.Report
	created []reportsrv.CreateInput
	updated map[string]reportsrv.UpdateInput
	deleted []string
	err     error
}

func (c *memClient) List(ctx context.Context) ([]reportsrv.Report, error) {
	return append([]reportsrv.Report(nil), c.reports...), c.err
}

func (c *memClient) Create(ctx context.Context, in reportsrv.CreateInput) (reportsrv.Report, error) {
	if c.err != nil {
		return reportsrv.Report{}, c.err
	}
	c.created = append(c.created, in)
	return reportsrv.Report{ID: "new", Title: in.Title, Progress: in.Progress, Status: in.Status}, nil
}

func (c *memClient) Update(ctx context.Context, id string, in reportsrv.UpdateInput) (reportsrv.Report, error) {
	if c.err != nil {
		return reportsrv.Report{}, c.err
	}
	if c.updated == nil {
		c.updated = map[string]reportsrv.UpdateInput{}
	}
	c.updated[id] = in
	return reportsrv.Report{ID: id, Title: *in.Title, Progress: *in.Progress, Status: *in.Status}, nil
}

func (c *memClient) Delete(ctx context.Context, id string) error {
	if c.err != nil {
		return c.err
	}
	c.deleted = append(c.deleted, id)
	return nil
}

func seedClient() *memClient {
	return &memClient{reports: []reportsrv.Report{
		{ID: "1", Title: "Website Redesign Project", Description: "Complete overhaul of company website with modern design and improved UX", Progress: 75, Status: reportsrv.StatusInProgress, Assignee: "John Doe", DueDate: "2024-02-15"},
		{ID: "3", Title: "Database Migration", Description: "Migrate legacy database to cloud infrastructure", Progress: 100, Status: reportsrv.StatusCompleted, Assignee: "Mike Johnson", DueDate: "2024-01-30"},
	}}
}

// drive feeds msg to m and runs any returned command until it settles.
func drive(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd == nil {
		return m
	}
	if out, ok := cmd().(syncedMsg); ok {
		return drive(t, m, out)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends runes without running the returned commands (cursor blink ticks).
func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func readyModel(t *testing.T, c *memClient) Model {
	t.Helper()
	m := NewModel(context.Background(), dashboard.New(log.NewNop(), c))
	return drive(t, m, m.load()())
}

func TestViewLoading(t *testing.T) {
	m := NewModel(context.Background(), dashboard.New(log.NewNop(), seedClient()))
	if !strings.Contains(m.View(), "Loading reports") {
		t.Errorf("loading view missing spinner text: %q", m.View())
	}
}

func TestViewReady(t *testing.T) {
	m := readyModel(t, seedClient())
	view := m.View()

	for _, want := range []string{"Total", "Completed", "In Progress", "Avg Progress", "88%", "Website Redesign Project", "John Doe"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewLoadFailure(t *testing.T) {
	m := readyModel(t, &memClient{err: errors.New("connection refused")})
	view := m.View()

	if !strings.Contains(view, "No reports yet") || !strings.Contains(view, "connection refused") {
		t.Errorf("unexpected view: %q", view)
	}
}

func TestCreateFlow(t *testing.T) {
	c := seedClient()
	m := readyModel(t, c)

	m = drive(t, m, key("n"))
	if m.mode != modeForm {
		t.Fatalf("mode = %v, want form", m.mode)
	}
	m = typeText(t, m, "X")
	for _, field := range []string{"d", "A", "2024-05-01"} {
		m = drive(t, m, key("tab"))
		m = typeText(t, m, field)
	}
	m = drive(t, m, key("tab"))   // status
	m = drive(t, m, key("right")) // completed
	m = drive(t, m, key("tab"))   // progress
	m = drive(t, m, key("right"))
	m = drive(t, m, key("right"))
	m = drive(t, m, key("enter"))

	if len(c.created) != 1 {
		t.Fatalf("created %d reports, want 1", len(c.created))
	}
	want := reportsrv.CreateInput{Title: "X", Description: "d", Assignee: "A", DueDate: "2024-05-01", Status: reportsrv.StatusCompleted, Progress: 10}
	if c.created[0] != want {
		t.Errorf("create input = %+v, want %+v", c.created[0], want)
	}
	if m.mode != modeList || m.state.Reports[0].ID != "new" || len(m.state.Reports) != 3 {
		t.Errorf("new report not prepended: mode %v, %d reports", m.mode, len(m.state.Reports))
	}
}

func TestCreateRequiresFields(t *testing.T) {
	c := seedClient()
	m := readyModel(t, c)

	m = drive(t, m, key("n"))
	m = drive(t, m, key("enter"))

	if len(c.created) != 0 {
		t.Error("incomplete form was submitted")
	}
	if m.mode != modeForm || !errors.Is(m.state.LastError, errFormIncomplete) {
		t.Errorf("mode %v, err %v", m.mode, m.state.LastError)
	}
}

func TestEditFlow(t *testing.T) {
	c := seedClient()
	m := readyModel(t, c)

	m = drive(t, m, key("e"))
	if !m.form.editing() || m.form.value(fieldTitle) != "Website Redesign Project" || m.form.progress != 75 {
		t.Fatalf("form not prefilled: %+v", m.form.createInput())
	}
	for i := 0; i < fieldProgress; i++ {
		m = drive(t, m, key("tab"))
	}
	for i := 0; i < 10; i++ {
		m = drive(t, m, key("right"))
	}
	m = drive(t, m, key("enter"))

	in, ok := c.updated["1"]
	if !ok {
		t.Fatal("update not sent")
	}
	if *in.Progress != 100 {
		t.Errorf("progress = %d, want clamped 100", *in.Progress)
	}
	if m.state.Reports[0].Progress != 100 {
		t.Errorf("local report not replaced: %+v", m.state.Reports[0])
	}
}

func TestEditRequiresFields(t *testing.T) {
	c := &memClient{reports: []reportsrv.Report{
		{ID: "1", Title: "Website Redesign Project", Progress: 75, Status: reportsrv.StatusInProgress, Assignee: "John Doe", DueDate: "2024-02-15"},
	}}
	m := readyModel(t, c)

	m = drive(t, m, key("e"))
	m = drive(t, m, key("enter"))

	if len(c.updated) != 0 {
		t.Error("form with a blank description was submitted")
	}
	if m.mode != modeForm || !errors.Is(m.state.LastError, errFormIncomplete) {
		t.Errorf("mode %v, err %v", m.mode, m.state.LastError)
	}
	if !strings.Contains(m.View(), errFormIncomplete.Error()) {
		t.Error("incomplete-form error not shown")
	}
}

func TestDeleteConfirm(t *testing.T) {
	c := seedClient()
	m := readyModel(t, c)

	m = drive(t, m, key("d"))
	m = drive(t, m, key("n"))
	if len(c.deleted) != 0 || len(m.state.Reports) != 2 {
		t.Fatal("delete ran without confirmation")
	}

	m = drive(t, m, key("down"))
	m = drive(t, m, key("d"))
	if m.mode != modeConfirmDelete || !strings.Contains(m.View(), "Database Migration") {
		t.Fatalf("confirmation not shown")
	}
	m = drive(t, m, key("y"))

	if len(c.deleted) != 1 || c.deleted[0] != "3" {
		t.Errorf("deleted = %v, want [3]", c.deleted)
	}
	if len(m.state.Reports) != 1 || m.cursor != 0 {
		t.Errorf("reports %d, cursor %d", len(m.state.Reports), m.cursor)
	}
}

func TestFailedMutationShowsError(t *testing.T) {
	c := seedClient()
	m := readyModel(t, c)
	c.err = errors.New("server down")

	m = drive(t, m, key("d"))
	m = drive(t, m, key("y"))

	if len(m.state.Reports) != 2 {
		t.Errorf("reports = %d, want 2", len(m.state.Reports))
	}
	if !strings.Contains(m.View(), "server down") {
		t.Error("error not shown")
	}
}

func TestFormProgressStep(t *testing.T) {
	f := newForm().setFocus(fieldProgress)
	f, _ = f.update(key("left"))
	if f.progress != 0 {
		t.Errorf("progress = %d, want 0", f.progress)
	}
	f, _ = f.update(key("right"))
	if f.progress != progressStep {
		t.Errorf("progress = %d, want %d", f.progress, progressStep)
	}
}

func TestRunUsesStartProgram(t *testing.T) {
	called := false
	original := startProgram
	startProgram = func(model tea.Model) error {
		called = true
		return nil
	}
	defer func() {
		startProgram = original
	}()

	if err := Run(context.Background(), dashboard.New(log.NewNop(), seedClient())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("expected startProgram to be called")
	}
}
