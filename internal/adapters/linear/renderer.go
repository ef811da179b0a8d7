// Package linear provides a synchronous, line-oriented step renderer.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/hellobundle/internal/core/ports"
	"go.trai.ch/hellobundle/internal/ui/output"
	"go.trai.ch/hellobundle/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer by printing one line per step event.
// Step output is prefixed with the step name and flushed line by line.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	steps   map[string]*stepState
	buffers map[string]*bytes.Buffer
}

type stepState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a new Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  output.New(stderr),
		steps:   make(map[string]*stepState),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// Start is a no-op; the renderer is synchronous.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes all remaining buffers.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID := range r.buffers {
		r.flushBufferLocked(spanID)
	}
	return nil
}

// OnPlanEmit prints the planned steps.
func (r *Renderer) OnPlanEmit(steps []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Planning %d step(s): %s\n", len(steps), strings.Join(steps, ", "))
}

// OnTaskStart prints a step start message.
func (r *Renderer) OnTaskStart(spanID, _, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.steps[spanID] = &stepState{name: name, startTime: startTime}
	r.buffers[spanID] = new(bytes.Buffer)

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnTaskLog buffers data and prints complete lines with the step prefix.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step, ok := r.steps[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	buf.Write(data)

	for {
		idx := bytes.IndexByte(buf.Bytes(), '\n')
		if idx < 0 {
			break
		}
		line := buf.Next(idx + 1)
		r.printLineLocked(step.name, line)
	}
}

// OnTaskComplete flushes the step's buffer and prints its outcome.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step, ok := r.steps[spanID]
	if !ok {
		return
	}

	r.flushBufferLocked(spanID)

	duration := endTime.Sub(step.startTime)
	prefix := fmt.Sprintf("[%s]", step.name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
	} else {
		symbol := r.output.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
	}

	delete(r.steps, spanID)
	delete(r.buffers, spanID)
}

// flushBufferLocked prints any partial line left for a step.
// Must be called with r.mu held.
func (r *Renderer) flushBufferLocked(spanID string) {
	step, ok := r.steps[spanID]
	if !ok {
		return
	}

	buf := r.buffers[spanID]
	if buf.Len() > 0 {
		r.printLineLocked(step.name, buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked prints a line with the step name prefix.
// Must be called with r.mu held.
func (r *Renderer) printLineLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", name, line)
}
