// Package detector provides environment detection for output mode selection.
package detector

import (
	"os"

	"go.trai.ch/hellobundle/internal/core/domain"
	"golang.org/x/term"
)

// DetectEnvironment returns the recommended output mode based on the environment.
// The TUI draws on stderr, so it is only chosen when stderr is a terminal and
// no CI environment variable is set.
func DetectEnvironment() string {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return domain.OutputModeLinear
	}
	return domain.OutputModeTUI
}

// ResolveMode applies the user's output mode to the auto-detected one.
// Only "auto" and the empty string defer to detection.
func ResolveMode(autoDetected, userMode string) string {
	switch userMode {
	case domain.OutputModeTUI, domain.OutputModeLinear, domain.OutputModeQuiet:
		return userMode
	default:
		return autoDetected
	}
}
