// Package terminal wraps the terminal queries the TUI front-end needs:
// size detection and raw-mode switching.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Size returns the current terminal dimensions, falling back to the
// defaults when stdout is not a terminal.
func Size() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// MakeRaw puts stdin into raw mode so single key presses are readable
// without line buffering. The returned restore function must be called
// before the process exits.
func MakeRaw() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() {
		term.Restore(fd, oldState)
	}, nil
}

// IsTerminal reports whether stdin is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
