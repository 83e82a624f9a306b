// Package term probes terminal capabilities of the process's standard
// streams.
package term

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Term holds the detected capabilities of one output stream.
type Term struct {
	isTTY        bool
	colorEnabled bool
	width        int
}

// FromEnv probes stderr, the stream interactive status output is
// written to.
func FromEnv() *Term {
	return ForFile(os.Stderr)
}

// ForFile probes an arbitrary open file.
func ForFile(f *os.File) *Term {
	t := &Term{}
	t.isTTY = term.IsTerminal(int(f.Fd()))

	// Width stays zero when the stream has no reportable size; callers
	// treat zero as "do not truncate".
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		t.width = w
	}

	// NO_COLOR and CLICOLOR conventions, plus dumb terminals, disable
	// color even on a TTY.
	t.colorEnabled = t.isTTY &&
		!termenv.EnvNoColor() &&
		termenv.EnvColorProfile() != termenv.Ascii

	return t
}

// IsTTY reports whether the stream is an interactive terminal.
func (t *Term) IsTTY() bool {
	return t.isTTY
}

// IsColorEnabled reports whether ANSI color output is appropriate.
func (t *Term) IsColorEnabled() bool {
	return t.colorEnabled
}

// Width returns the stream's column width, zero when unknown.
func (t *Term) Width() int {
	return t.width
}
