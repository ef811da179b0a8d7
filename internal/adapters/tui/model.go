package tui

import (
	"bytes"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	stepListWidthRatio = 0.35
	logPaneBorderWidth = 4
	headerHeight       = 2
)

// StepStatus represents the current state of a step.
type StepStatus string

const (
	// StatusPending indicates the step is waiting to start.
	StatusPending StepStatus = "Pending"
	// StatusRunning indicates the step is currently executing.
	StatusRunning StepStatus = "Running"
	// StatusDone indicates the step completed successfully.
	StatusDone StepStatus = "Done"
	// StatusError indicates the step failed.
	StatusError StepStatus = "Error"
)

// StepNode represents a single step in the UI list.
type StepNode struct {
	Name      string
	Status    StepStatus
	Logs      bytes.Buffer
	StartTime time.Time
	Duration  time.Duration
	Err       error
}

// Model represents the TUI state.
type Model struct {
	Steps      []*StepNode
	StepMap    map[string]*StepNode
	SpanMap    map[string]*StepNode
	Spinner    spinner.Model
	Viewport   viewport.Model
	AutoScroll bool
	// ActiveStep is the step whose output is shown in the log pane.
	ActiveStep string
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.Spinner.Tick
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * stepListWidthRatio)
		m.Viewport.Width = max(msg.Width-listWidth-logPaneBorderWidth, 0)
		m.Viewport.Height = max(msg.Height-headerHeight, 0)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case MsgInitSteps:
		m.Steps = make([]*StepNode, len(msg.Steps))
		m.StepMap = make(map[string]*StepNode, len(msg.Steps))
		m.SpanMap = make(map[string]*StepNode)
		m.ActiveStep = ""
		for i, name := range msg.Steps {
			node := &StepNode{Name: name, Status: StatusPending}
			m.Steps[i] = node
			m.StepMap[name] = node
		}
		m.Viewport.SetContent("")

	case MsgStepStart:
		node, ok := m.StepMap[msg.Name]
		if !ok {
			// Steps outside the announced plan are appended.
			node = &StepNode{Name: msg.Name}
			m.Steps = append(m.Steps, node)
			m.StepMap[msg.Name] = node
		}
		node.Status = StatusRunning
		node.StartTime = msg.StartTime
		m.SpanMap[msg.SpanID] = node

		// Focus follows activity.
		m.ActiveStep = node.Name
		m.showLogs(node)

	case MsgStepLog:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			node.Logs.Write(msg.Data)
			if node.Name == m.ActiveStep {
				m.showLogs(node)
			}
		}

	case MsgStepComplete:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			node.Duration = msg.EndTime.Sub(node.StartTime)
			node.Err = msg.Err
			if msg.Err != nil {
				node.Status = StatusError
				node.Logs.WriteString(msg.Err.Error() + "\n")
				m.showLogs(node)
			} else {
				node.Status = StatusDone
			}
		}
	}

	return m, nil
}

func (m *Model) showLogs(node *StepNode) {
	m.Viewport.SetContent(node.Logs.String())
	if m.AutoScroll {
		m.Viewport.GotoBottom()
	}
}
