// Package tui runs the developer console directly in a terminal, without
// a game window. It is mainly useful headless: same command registry,
// same editor, rendered with ANSI colors.
package tui

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"devcon/pkg/engine/console"
	"devcon/pkg/engine/terminal"
	"devcon/pkg/game/renderer"
)

// Frontend drives a console from raw-mode stdin.
type Frontend struct {
	console *console.Console
}

// New creates a terminal front-end for c.
func New(c *console.Console) *Frontend {
	return &Frontend{console: c}
}

// readByte reads a single byte from stdin in raw mode.
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// readArrow consumes the rest of an ESC sequence and reports which arrow
// it was, if any. Both CSI (ESC [) and SS3 (ESC O) sequences are handled;
// unknown sequences are discarded.
func readArrow() (up, down, left, right bool) {
	b2, err := readByte()
	if err != nil || (b2 != '[' && b2 != 'O') {
		return
	}
	b3, err := readByte()
	if err != nil {
		return
	}
	switch b3 {
	case 'A':
		up = true
	case 'B':
		down = true
	case 'C':
		right = true
	case 'D':
		left = true
	}
	return
}

// Run owns the terminal until the user presses Ctrl+C or Ctrl+D. The
// console starts open; the backquote key slides it away just as it does
// in-game.
func (f *Frontend) Run() error {
	restore, err := terminal.MakeRaw()
	if err != nil {
		return fmt.Errorf("cannot enter raw mode: %w", err)
	}
	defer restore()

	// The slide animation is pointless without a frame loop; open fully.
	f.console.Update(console.InputFrame{Toggle: true})

	f.render()
	for {
		b, err := readByte()
		if err != nil {
			return err
		}

		var in console.InputFrame
		switch b {
		case 3, 4: // Ctrl+C, Ctrl+D
			fmt.Print("\r\n")
			return nil
		case 0x1b:
			in.Up, in.Down, in.Left, in.Right = readArrow()
		case '`':
			in.Toggle = true
		default:
			in.Chars = append(in.Chars, rune(b))
		}

		f.console.Update(in)
		f.render()
	}
}

// render redraws the whole screen. One terminal row per log line, prompt
// on the bottom row, hardware cursor placed at the edit cursor's column.
func (f *Frontend) render() {
	width, height := terminal.Size()

	frame, ok := f.console.Frame(height-1, 1, func(s string) float64 {
		return float64(len([]rune(s)))
	})

	fmt.Print("\x1b[2J\x1b[H")
	if !ok {
		fmt.Print(renderer.ColorSubtle.Sprint(gotext.Get("console hidden - press ` to open")) + "\r\n")
		return
	}

	for _, line := range frame.Lines {
		fmt.Print(renderer.StyleFor(line.Kind).Sprint(clip(line.Text, width)) + "\r\n")
	}
	fmt.Printf("\x1b[%d;1H", height)
	fmt.Print(renderer.ColorPrompt.Sprint(clip(frame.Prompt, width)))
	fmt.Printf("\x1b[%d;%dH", height, int(frame.CursorX)+1)
}

// clip truncates a line to the terminal width.
func clip(s string, width int) string {
	runes := []rune(color.ClearCode(s))
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
