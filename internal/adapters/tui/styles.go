package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/hellobundle/internal/ui/style"
)

var (
	colorWhite = lipgloss.Color("#FFFFFF")

	// Pane Styles.
	listStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(style.Slate).
			MarginRight(1).
			PaddingRight(1)

	logStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	// Step Status Styles.
	stepPendingStyle = lipgloss.NewStyle().
				Foreground(style.Slate)

	stepRunningStyle = lipgloss.NewStyle().
				Foreground(style.Iris).
				Bold(true)

	stepDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	stepErrorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	durationStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	// Header Styles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(colorWhite)
)
