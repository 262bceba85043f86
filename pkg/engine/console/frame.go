package console

import "fmt"

// Line is one renderable row of scrollback.
type Line struct {
	Kind Kind
	Text string
}

// Frame describes everything an adapter needs to draw the console for
// one frame: the slide visibility, the visible scrollback window (oldest
// line first), the prompt, and the cursor's pixel offset into it.
type Frame struct {
	Visibility float64 // 0 = hidden, 1 = fully shown
	Lines      []Line  // oldest first, newest just above the prompt
	Prompt     string  // "> " plus the current edit buffer
	CursorX    float64 // pixel offset of the cursor within the prompt line
}

const promptPrefix = "> "

// Frame composes the renderable frame description. panelHeight and
// lineHeight are in pixels; measure returns the pixel width of a string
// under the console font. Returns ok = false when the console is fully
// hidden and nothing should be drawn.
//
// A panic during composition (a malformed edit state, a measure failure)
// is caught: the fault is logged with the buffer contents and cursor
// value, the edit state is reset, and an empty-prompt frame is returned.
func (c *Console) Frame(panelHeight, lineHeight int, measure func(string) float64) (frame Frame, ok bool) {
	now := c.now()
	if c.anim.Hidden(now) {
		return Frame{}, false
	}

	defer func() {
		if r := recover(); r != nil {
			c.Errorf("render fault: %v (buffer=%q cursor=%d)", r, c.editor.Buffer(), c.editor.Cursor())
			c.editor.Reset()
			frame = Frame{
				Visibility: c.anim.Visibility(now),
				Prompt:     promptPrefix,
				CursorX:    measureSafe(measure, promptPrefix),
			}
			ok = true
		}
	}()

	frame.Visibility = c.anim.Visibility(now)

	visible := 0
	if lineHeight > 0 {
		visible = panelHeight/lineHeight - 1
	}
	if visible > c.log.Len() {
		visible = c.log.Len()
	}
	// Ring index 0 is the newest entry; emit oldest-first.
	for i := visible - 1; i >= 0; i-- {
		entry, err := c.log.Get(i)
		if err != nil {
			panic(fmt.Sprintf("log window index %d: %v", i, err))
		}
		frame.Lines = append(frame.Lines, Line{Kind: entry.Kind, Text: entry.Text})
	}

	buffer := []rune(c.editor.Buffer())
	cursor := c.editor.Cursor()
	if cursor < 0 || cursor > len(buffer) {
		panic(fmt.Sprintf("cursor %d outside buffer of %d runes", cursor, len(buffer)))
	}
	frame.Prompt = promptPrefix + string(buffer)
	frame.CursorX = measure(promptPrefix + string(buffer[:cursor]))
	return frame, true
}

// measureSafe guards the fallback path in the render-fault handler, where
// measure itself may be the function that just panicked.
func measureSafe(measure func(string) float64, s string) (w float64) {
	defer func() {
		if recover() != nil {
			w = 0
		}
	}()
	return measure(s)
}
