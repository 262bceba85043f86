package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"devcon/pkg/engine/console"
)

var (
	colorPanelBackground = color.RGBA{0, 0, 0, 220}
	colorPanelBorder     = color.RGBA{100, 100, 150, 255}
	colorTextInfo        = color.RGBA{200, 200, 200, 255}
	colorTextInput       = color.RGBA{255, 255, 255, 255}
	colorTextError       = color.RGBA{255, 100, 100, 255}
)

// textColorFor maps a log entry kind to its draw color.
func textColorFor(kind console.Kind) color.RGBA {
	switch kind {
	case console.KindUserInput:
		return colorTextInput
	case console.KindError:
		return colorTextError
	default:
		return colorTextInfo
	}
}

// withAlpha scales a color's alpha by the slide visibility so the panel
// fades in as it drops down.
func withAlpha(c color.RGBA, visibility float64) color.RGBA {
	c.A = uint8(float64(c.A) * visibility)
	return c
}

// Draw renders the console over screen. No draw calls happen while the
// console is fully hidden.
func (o *Overlay) Draw(screen *ebiten.Image) {
	screenW := screen.Bounds().Dx()
	screenH := screen.Bounds().Dy()

	face := o.face()
	lineHeight := int(o.fontSize) + 6
	panelHeight := int(float64(screenH) * panelFraction)

	frame, ok := o.console.Frame(panelHeight-paddingY*2, lineHeight, func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	})
	if !ok {
		return
	}

	// The panel slides down from the top edge: fully shown it occupies
	// the top panelFraction of the screen, hidden it sits above it.
	panelY := float64(panelHeight) * (frame.Visibility - 1)

	vector.DrawFilledRect(screen, 0, float32(panelY), float32(screenW), float32(panelHeight),
		withAlpha(colorPanelBackground, frame.Visibility), false)
	vector.DrawFilledRect(screen, 0, float32(panelY)+float32(panelHeight)-2, float32(screenW), 2,
		withAlpha(colorPanelBorder, frame.Visibility), false)

	// Scrollback above the prompt: oldest of the window at top.
	y := panelY + paddingY
	for _, line := range frame.Lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(paddingX, y)
		op.ColorScale.ScaleWithColor(withAlpha(textColorFor(line.Kind), frame.Visibility))
		text.Draw(screen, line.Text, face, op)
		y += float64(lineHeight)
	}

	// Prompt line at the bottom of the panel.
	promptY := panelY + float64(panelHeight) - paddingY - float64(lineHeight)
	op := &text.DrawOptions{}
	op.GeoM.Translate(paddingX, promptY)
	op.ColorScale.ScaleWithColor(withAlpha(colorTextInput, frame.Visibility))
	text.Draw(screen, frame.Prompt, face, op)

	// Blinking cursor glyph at the pixel offset of the cursor position.
	if int(time.Now().UnixMilli()/500)%2 == 0 {
		cursorOp := &text.DrawOptions{}
		cursorOp.GeoM.Translate(paddingX+frame.CursorX, promptY)
		cursorOp.ColorScale.ScaleWithColor(withAlpha(colorTextInput, frame.Visibility))
		text.Draw(screen, "_", face, cursorOp)
	}
}
