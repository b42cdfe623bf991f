package tui

import (
	"fmt"
	"strings"

	"report-srv/internal/dashboard"
	"report-srv/pkg/reportsrv"

	"github.com/charmbracelet/lipgloss"
)

const dateLayout = "2006-01-02"

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Progress Reports"))
	b.WriteString("\n\n")

	if m.state.Phase == dashboard.PhaseLoading {
		b.WriteString(m.spinner.View() + " Loading reports...\n")
		return b.String()
	}

	b.WriteString(m.viewStats())
	b.WriteString("\n\n")

	switch m.mode {
	case modeForm:
		b.WriteString(m.viewForm())
	default:
		b.WriteString(m.viewList())
		if m.mode == modeConfirmDelete {
			if r, ok := m.selected(); ok {
				b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Delete %q? (y/n)", r.Title)) + "\n")
			}
		}
	}

	if m.state.LastError != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.state.LastError.Error()) + "\n")
	}

	b.WriteString("\n" + m.viewHelp())
	return b.String()
}

func (m Model) viewStats() string {
	s := m.state.Stats
	box := func(label, value string) string {
		return statBoxStyle.Render(statLabelStyle.Render(label) + "\n" + statValueStyle.Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		box("Total", fmt.Sprint(s.Total)),
		box("Completed", fmt.Sprint(s.Completed)),
		box("In Progress", fmt.Sprint(s.InProgress)),
		box("Avg Progress", formatProgress(s.AverageProgress)),
	)
}

func (m Model) viewList() string {
	if len(m.state.Reports) == 0 {
		return mutedStyle.Render("No reports yet. Press n to create one.") + "\n"
	}

	var b strings.Builder
	for i, r := range m.state.Reports {
		cursor := "  "
		title := r.Title
		if i == m.cursor {
			cursor = selectedStyle.Render("> ")
			title = selectedStyle.Render(title)
		} else {
			title = titleStyle.Render(title)
		}

		fmt.Fprintf(&b, "%s%s  %s\n", cursor, title, statusStyle(r.Status).Render(r.Status))
		fmt.Fprintf(&b, "    %s %s\n", m.bar.ViewAs(float64(r.Progress)/100), formatProgress(r.Progress))
		fmt.Fprintf(&b, "    %s\n", mutedStyle.Render(fmt.Sprintf("%s | due %s | updated %s",
			r.Assignee, r.DueDate, r.UpdatedAt.Format(dateLayout))))
	}
	return b.String()
}

func (m Model) viewForm() string {
	f := m.form
	heading := "New Report"
	if f.editing() {
		heading = "Edit Report"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading) + "\n\n")
	for i := range f.inputs {
		b.WriteString(m.formLabel(i) + "\n" + f.inputs[i].View() + "\n")
	}

	statuses := make([]string, len(reportsrv.Statuses))
	for i, s := range reportsrv.Statuses {
		if i == f.status {
			statuses[i] = statusStyle(s).Bold(true).Render("[" + s + "]")
		} else {
			statuses[i] = mutedStyle.Render(s)
		}
	}
	b.WriteString(m.formLabel(fieldStatus) + "\n" + strings.Join(statuses, "  ") + "\n")
	b.WriteString(m.formLabel(fieldProgress) + "\n" + m.bar.ViewAs(float64(f.progress)/100) + " " + formatProgress(f.progress) + "\n")

	return panelStyle.Render(b.String())
}

func (m Model) formLabel(field int) string {
	if m.form.focus == field {
		return selectedStyle.Render(fieldLabels[field])
	}
	return labelStyle.Render(fieldLabels[field])
}

func (m Model) viewHelp() string {
	var keys [][2]string
	switch m.mode {
	case modeForm:
		keys = [][2]string{{"tab", "next"}, {"←/→", "status/progress"}, {"enter", "save"}, {"esc", "cancel"}}
	case modeConfirmDelete:
		keys = [][2]string{{"y", "delete"}, {"n", "cancel"}}
	default:
		keys = [][2]string{{"↑/↓", "select"}, {"n", "new"}, {"e", "edit"}, {"d", "delete"}, {"r", "reload"}, {"q", "quit"}}
	}

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = keyStyle.Render(k[0]) + " " + keyDescStyle.Render(k[1])
	}
	if m.busy {
		parts = append(parts, mutedStyle.Render("saving..."))
	}
	return strings.Join(parts, "  ")
}
