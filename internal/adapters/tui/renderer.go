package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/hellobundle/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the TUI Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
	once    sync.Once
	started bool
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	r.started = true
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit and waits until the terminal is restored.
func (r *Renderer) Stop() error {
	if !r.started {
		return nil
	}
	var err error
	r.once.Do(func() {
		r.program.Quit()
		err = <-r.errCh
	})
	return err
}

// OnPlanEmit forwards the step list to the TUI.
func (r *Renderer) OnPlanEmit(steps []string) {
	r.program.Send(MsgInitSteps{Steps: steps})
}

// OnTaskStart forwards step start events to the TUI.
func (r *Renderer) OnTaskStart(spanID, _, name string, startTime time.Time) {
	r.program.Send(MsgStepStart{SpanID: spanID, Name: name, StartTime: startTime})
}

// OnTaskLog forwards step output to the TUI.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	// The caller may reuse data after we return.
	r.program.Send(MsgStepLog{SpanID: spanID, Data: append([]byte(nil), data...)})
}

// OnTaskComplete forwards step completion events to the TUI.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.program.Send(MsgStepComplete{SpanID: spanID, EndTime: endTime, Err: err})
}

// Model returns the model driven by the renderer.
func (r *Renderer) Model() *Model {
	return r.model
}
