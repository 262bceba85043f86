// Package ebiten provides the Ebiten front-end for the developer console:
// a drop-down overlay drawn over the host game, fed from Ebiten's keyboard
// state each frame.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"devcon/pkg/engine/console"
)

const (
	// panelFraction is how much of the screen height the open panel covers.
	panelFraction = 0.4

	paddingX = 10
	paddingY = 10

	defaultFontSize = 14
)

// Overlay binds a console to an Ebiten game. The host calls Update from
// its Update and Draw from its Draw, both on the game goroutine.
type Overlay struct {
	console *console.Console

	// Monospace font for console text.
	fontSource *text.GoTextFaceSource
	fontSize   float64

	cachedFace     *text.GoTextFace
	cachedFaceSize float64

	charBuf []rune
}

// NewOverlay creates an overlay for c rendering with the given monospace
// font source.
func NewOverlay(c *console.Console, fontSource *text.GoTextFaceSource) *Overlay {
	return &Overlay{
		console:    c,
		fontSource: fontSource,
		fontSize:   defaultFontSize,
	}
}

// Console returns the wrapped console.
func (o *Overlay) Console() *console.Console {
	return o.console
}

// SetFontSize changes the console font size in points.
func (o *Overlay) SetFontSize(size float64) {
	if size < 8 {
		size = 8
	}
	o.fontSize = size
}

// Active reports whether the console is open or mid-slide; the host
// should suppress its own keyboard handling while it is.
func (o *Overlay) Active() bool {
	return !o.console.Hidden()
}

// Update collects this frame's keyboard input and advances the console.
func (o *Overlay) Update() {
	o.console.Update(o.readInput())
}

// readInput assembles one InputFrame from Ebiten's keyboard state:
// printable runes from the system text input, control codes from
// edge-triggered key queries.
func (o *Overlay) readInput() console.InputFrame {
	var in console.InputFrame

	in.Toggle = inpututil.IsKeyJustPressed(ebiten.KeyBackquote)
	in.Up = inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
	in.Down = inpututil.IsKeyJustPressed(ebiten.KeyArrowDown)
	in.Left = inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft)
	in.Right = inpututil.IsKeyJustPressed(ebiten.KeyArrowRight)

	o.charBuf = ebiten.AppendInputChars(o.charBuf[:0])
	for _, r := range o.charBuf {
		// The toggle key press also arrives as a character; keep it out
		// of the edit buffer.
		if in.Toggle && (r == '`' || r == '~') {
			continue
		}
		in.Chars = append(in.Chars, r)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		in.Chars = append(in.Chars, '\b')
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyW) {
		in.Chars = append(in.Chars, 0x17)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		in.Chars = append(in.Chars, '\n')
	}

	return in
}

// face returns a cached font face for the current font size.
func (o *Overlay) face() *text.GoTextFace {
	if o.cachedFace == nil || o.cachedFaceSize != o.fontSize {
		o.cachedFaceSize = o.fontSize
		o.cachedFace = &text.GoTextFace{
			Source: o.fontSource,
			Size:   o.fontSize,
		}
	}
	return o.cachedFace
}
