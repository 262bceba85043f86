package console

import (
	"strings"
	"unicode"
)

// Control runes accepted by the editor alongside printable input.
// Backspace arrives as either BS or DEL depending on the host platform.
const (
	runeBackspace = 0x08
	runeDelete    = 0x7f
	runeWordErase = 0x17 // Ctrl+W
)

// Editor owns the command line being typed: the rune buffer, the cursor,
// and the history-browsing cursor. It consumes one raw character or
// control code at a time, in arrival order.
type Editor struct {
	buffer       []rune
	cursor       int
	historyIndex int // -1 = not browsing history
	history      *Ring[string]
}

// NewEditor creates an editor with a command history of the given capacity.
func NewEditor(historyCapacity int) *Editor {
	return &Editor{
		historyIndex: -1,
		history:      NewRing[string](historyCapacity),
	}
}

// Buffer returns the current line as a string.
func (e *Editor) Buffer() string {
	return string(e.buffer)
}

// Cursor returns the cursor position in runes, in [0, len(buffer)].
func (e *Editor) Cursor() int {
	return e.cursor
}

// History exposes the command-history ring (0 = most recent command).
func (e *Editor) History() *Ring[string] {
	return e.history
}

// Feed consumes one raw character. Printable runes are inserted at the
// cursor; backspace and word-erase mutate the buffer; anything else is
// ignored. Submit (CR/LF) is handled by the controller, not here.
func (e *Editor) Feed(r rune) {
	switch r {
	case runeBackspace, runeDelete:
		e.backspace()
	case runeWordErase:
		e.eraseWord()
	default:
		if unicode.IsPrint(r) {
			e.insert(r)
		}
	}
}

func (e *Editor) insert(r rune) {
	e.buffer = append(e.buffer, 0)
	copy(e.buffer[e.cursor+1:], e.buffer[e.cursor:])
	e.buffer[e.cursor] = r
	e.cursor++
}

func (e *Editor) backspace() {
	if e.cursor == 0 {
		return
	}
	e.buffer = append(e.buffer[:e.cursor-1], e.buffer[e.cursor:]...)
	e.cursor--
}

// eraseWord deletes backward through the run of alphanumeric characters
// preceding the cursor. When the character immediately before the cursor
// is not alphanumeric, exactly one character is deleted instead, so the
// operation always makes progress.
func (e *Editor) eraseWord() {
	if e.cursor == 0 {
		return
	}
	i := e.cursor
	for i > 0 && isWordRune(e.buffer[i-1]) {
		i--
	}
	if i == e.cursor {
		i = e.cursor - 1
	}
	e.buffer = append(e.buffer[:i], e.buffer[e.cursor:]...)
	e.cursor = i
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// MoveLeft moves the cursor one rune left, clamped at the start.
func (e *Editor) MoveLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

// MoveRight moves the cursor one rune right, clamped at the end.
func (e *Editor) MoveRight() {
	if e.cursor < len(e.buffer) {
		e.cursor++
	}
}

// HistoryUp recalls the next older history entry into the buffer.
func (e *Editor) HistoryUp() {
	if e.historyIndex+1 >= e.history.Len() {
		return
	}
	e.historyIndex++
	line, err := e.history.Get(e.historyIndex)
	if err != nil {
		return
	}
	e.setBuffer(line)
}

// HistoryDown recalls the next newer history entry, or clears the buffer
// when stepping past the most recent one.
func (e *Editor) HistoryDown() {
	if e.historyIndex == -1 {
		return
	}
	e.historyIndex--
	if e.historyIndex == -1 {
		e.setBuffer("")
		return
	}
	line, err := e.history.Get(e.historyIndex)
	if err != nil {
		return
	}
	e.setBuffer(line)
}

func (e *Editor) setBuffer(s string) {
	e.buffer = []rune(s)
	e.cursor = len(e.buffer)
}

// Submit finishes the current line. When the trimmed buffer is non-empty
// the raw line is pushed onto history and returned with ok = true. The
// edit state is always reset, even for empty input.
func (e *Editor) Submit() (line string, ok bool) {
	line = string(e.buffer)
	if strings.TrimSpace(line) != "" {
		e.history.Push(line)
		ok = true
	}
	e.Reset()
	return line, ok
}

// Reset clears the buffer, cursor, and history-browsing state.
func (e *Editor) Reset() {
	e.buffer = e.buffer[:0]
	e.cursor = 0
	e.historyIndex = -1
}
