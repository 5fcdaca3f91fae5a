// Package output provides utilities for creating termenv.Output with consistent
// color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Colors and icons used in command output.
const (
	Green = "#22A06B"
	Red   = "#D93025"
	Slate = "#667085"

	Check  = "✓"
	Cross  = "✗"
	Circle = "○"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// ColorProfile returns the color profile for w. NO_COLOR and non-terminal
// writers get the Ascii profile; terminals are detected from the environment.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" || !IsTerminal(w) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output for w, defaulting to stdout.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stdout
	}
	return termenv.NewOutput(w,
		termenv.WithProfile(ColorProfile(w)),
		termenv.WithTTY(IsTerminal(w)),
	)
}
