package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/hellobundle/internal/ui/style"
)

// View renders the step list next to the output of the active step.
func (m *Model) View() string {
	if m.Viewport.Height == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.stepList(),
		m.logPane(),
	)
}

func (m *Model) stepList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("STEPS") + "\n\n")

	for _, step := range m.Steps {
		var st lipgloss.Style
		var icon string

		switch step.Status {
		case StatusRunning:
			st = stepRunningStyle
			icon = m.Spinner.View()
		case StatusDone:
			st = stepDoneStyle
			icon = style.Check
		case StatusError:
			st = stepErrorStyle
			icon = style.Cross
		default:
			st = stepPendingStyle
			icon = "○"
		}

		line := fmt.Sprintf("%s %s", icon, step.Name)
		if step.Name == m.ActiveStep {
			line = "> " + line
		} else {
			line = "  " + line
		}

		s.WriteString(st.Render(line))
		if step.Status == StatusDone || step.Status == StatusError {
			s.WriteString(" " + durationStyle.Render(step.Duration.Round(time.Millisecond).String()))
		}
		s.WriteString("\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) logPane() string {
	header := titleStyle.Render("OUTPUT (Waiting...)")
	if m.ActiveStep != "" {
		header = titleStyle.Render("OUTPUT: " + m.ActiveStep)
	}

	return logStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			m.Viewport.View(),
		),
	)
}
