// Package tui provides an interactive step view for the bundling pipeline.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/hellobundle/internal/ui/style"
)

// NewModel creates a new TUI model with default settings.
func NewModel() *Model {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	s.Style = lipgloss.NewStyle().Foreground(style.Iris)

	return &Model{
		Steps:      make([]*StepNode, 0),
		StepMap:    make(map[string]*StepNode),
		SpanMap:    make(map[string]*StepNode),
		Spinner:    s,
		Viewport:   viewport.New(0, 0),
		AutoScroll: true,
	}
}
