package tui

import (
	"context"

	"report-srv/internal/dashboard"
	"report-srv/pkg/reportsrv"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirmDelete
)

// syncedMsg reports that a dashboard call finished; the view re-reads the snapshot.
type syncedMsg struct {
	err error
}

// Model is the bubbletea model of the report dashboard.
type Model struct {
	ctx  context.Context
	dash dashboard.Dashboard

	state   dashboard.State
	spinner spinner.Model
	bar     progress.Model

	mode   mode
	cursor int
	form   form
	busy   bool
}

// NewModel creates a Model over d. Init starts the first fetch.
func NewModel(ctx context.Context, d dashboard.Dashboard) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = labelStyle

	return Model{
		ctx:     ctx,
		dash:    d,
		state:   d.Snapshot(),
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(20), progress.WithoutPercentage()),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.state.Phase != dashboard.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case syncedMsg:
		m.busy = false
		m.state = m.dash.Snapshot()
		m.cursor = min(m.cursor, max(len(m.state.Reports)-1, 0))
		if msg.err == nil && m.mode == modeForm {
			m.mode = modeList
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state.Phase == dashboard.PhaseLoading {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.state.Reports)-1 {
			m.cursor++
		}
	case "r":
		return m.run(m.load())
	case "n":
		m.form = newForm()
		m.mode = modeForm
	case "e":
		if r, ok := m.selected(); ok {
			m.form = editForm(r)
			m.mode = modeForm
		}
	case "d":
		if _, ok := m.selected(); ok {
			m.mode = modeConfirmDelete
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "enter":
		if err := m.form.validate(); err != nil {
			m.state.LastError = err
			return m, nil
		}
		return m.run(m.submit(m.form))
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeList
	if msg.String() != "y" {
		return m, nil
	}
	r, ok := m.selected()
	if !ok {
		return m, nil
	}
	return m.run(m.remove(r.ID))
}

// run starts cmd unless another call is in flight.
func (m Model) run(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	return m, cmd
}

func (m Model) selected() (r reportsrv.Report, ok bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Reports) {
		return r, false
	}
	return m.state.Reports[m.cursor], true
}

func (m Model) load() tea.Cmd {
	d, ctx := m.dash, m.ctx
	return func() tea.Msg {
		return syncedMsg{err: d.Load(ctx)}
	}
}

func (m Model) submit(f form) tea.Cmd {
	d, ctx := m.dash, m.ctx
	return func() tea.Msg {
		var err error
		if f.editing() {
			_, err = d.Update(ctx, f.editID, f.updateInput())
		} else {
			_, err = d.Create(ctx, f.createInput())
		}
		return syncedMsg{err: err}
	}
}

func (m Model) remove(id string) tea.Cmd {
	d, ctx := m.dash, m.ctx
	return func() tea.Msg {
		return syncedMsg{err: d.Delete(ctx, id)}
	}
}
