// Package output builds termenv outputs with a consistent color profile.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorProfile returns the profile for interactive output.
// NO_COLOR forces Ascii; otherwise the terminal capabilities are detected.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ProfileFor returns the profile for w. Files that are not terminals, such as
// redirected stderr in CI, get Ascii so escape codes never reach log files.
func ProfileFor(w io.Writer) termenv.Profile {
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		return termenv.Ascii
	}
	return ColorProfile()
}

// New creates a termenv.Output for w using ProfileFor.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return NewWithProfile(w, func() termenv.Profile { return ProfileFor(w) }, opts...)
}

// NewWithProfile creates a termenv.Output with a custom profile selector.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
