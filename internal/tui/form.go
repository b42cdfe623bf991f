package tui

import (
	"errors"
	"strconv"
	"strings"

	"report-srv/pkg/reportsrv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const progressStep = 5

// Form fields in tab order. The first four are text inputs.
const (
	fieldTitle = iota
	fieldDescription
	fieldAssignee
	fieldDueDate
	fieldStatus
	fieldProgress
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Description", "Assignee", "Due Date", "Status", "Progress"}

var errFormIncomplete = errors.New("title, description, assignee and due date are required")

// form edits a single report. editID is empty when creating.
type form struct {
	editID   string
	inputs   [fieldStatus]textinput.Model
	status   int
	progress int
	focus    int
}

func newForm() form {
	f := form{}
	placeholders := [fieldStatus]string{"Website Redesign Project", "What is being delivered", "John Doe", "YYYY-MM-DD"}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 200
		in.Width = 40
		f.inputs[i] = in
	}
	f.inputs[fieldTitle].Focus()
	return f
}

// editForm is a form prefilled from r.
func editForm(r reportsrv.Report) form {
	f := newForm()
	f.editID = r.ID
	f.inputs[fieldTitle].SetValue(r.Title)
	f.inputs[fieldDescription].SetValue(r.Description)
	f.inputs[fieldAssignee].SetValue(r.Assignee)
	f.inputs[fieldDueDate].SetValue(r.DueDate)
	f.status = statusIndex(r.Status)
	f.progress = clampProgress(r.Progress)
	return f
}

func (f form) editing() bool {
	return f.editID != ""
}

func (f form) value(field int) string {
	return strings.TrimSpace(f.inputs[field].Value())
}

func (f form) statusValue() string {
	return reportsrv.Statuses[f.status]
}

// update handles navigation keys and forwards the rest to the focused input.
func (f form) update(msg tea.KeyMsg) (form, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return f.setFocus((f.focus + 1) % fieldCount), nil
	case "shift+tab", "up":
		return f.setFocus((f.focus + fieldCount - 1) % fieldCount), nil
	case "left":
		switch f.focus {
		case fieldStatus:
			f.status = (f.status + len(reportsrv.Statuses) - 1) % len(reportsrv.Statuses)
			return f, nil
		case fieldProgress:
			f.progress = clampProgress(f.progress - progressStep)
			return f, nil
		}
	case "right":
		switch f.focus {
		case fieldStatus:
			f.status = (f.status + 1) % len(reportsrv.Statuses)
			return f, nil
		case fieldProgress:
			f.progress = clampProgress(f.progress + progressStep)
			return f, nil
		}
	}

	if f.focus >= fieldStatus {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f form) setFocus(focus int) form {
	for i := range f.inputs {
		if i == focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	f.focus = focus
	return f
}

func (f form) validate() error {
	for i := range f.inputs {
		if f.value(i) == "" {
			return errFormIncomplete
		}
	}
	return nil
}

func (f form) createInput() reportsrv.CreateInput {
	return reportsrv.CreateInput{
		Title:       f.value(fieldTitle),
		Description: f.value(fieldDescription),
		Progress:    f.progress,
		Status:      f.statusValue(),
		Assignee:    f.value(fieldAssignee),
		DueDate:     f.value(fieldDueDate),
	}
}

// updateInput sends every form field, the same shape the create form submits.
func (f form) updateInput() reportsrv.UpdateInput {
	in := f.createInput()
	return reportsrv.UpdateInput{
		Title:       &in.Title,
		Description: &in.Description,
		Progress:    &in.Progress,
		Status:      &in.Status,
		Assignee:    &in.Assignee,
		DueDate:     &in.DueDate,
	}
}

func statusIndex(status string) int {
	for i, s := range reportsrv.Statuses {
		if s == status {
			return i
		}
	}
	return 0
}

func clampProgress(p int) int {
	return min(max(p, 0), 100)
}

func formatProgress(p int) string {
	return strconv.Itoa(p) + "%"
}
