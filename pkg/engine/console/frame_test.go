// Package console tests frame composition: the visible log window, the
// prompt line, cursor pixel offsets, and render-fault recovery.
package console

import (
	"strings"
	"testing"
	"time"
)

// measureMono is a text-measure stand-in: 7 pixels per rune.
func measureMono(s string) float64 {
	return float64(7 * len([]rune(s)))
}

func TestFrame_HiddenProducesNoFrame(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := New(Config{Clock: clock.Now})
	if _, ok := c.Frame(400, 20, measureMono); ok {
		t.Error("hidden console composed a frame")
	}
}

func TestFrame_WindowAndPrompt(t *testing.T) {
	c, _ := newTestConsole(t)
	for i := 0; i < 10; i++ {
		c.Logf("line %d", i)
	}
	c.Update(InputFrame{Chars: []rune("get x")})

	// panelHeight 80 / lineHeight 20 = 4 rows, one reserved for the prompt.
	frame, ok := c.Frame(80, 20, measureMono)
	if !ok {
		t.Fatal("visible console produced no frame")
	}
	if len(frame.Lines) != 3 {
		t.Fatalf("frame has %d lines, want 3", len(frame.Lines))
	}
	// Oldest of the visible window first, newest last.
	want := []string{"line 7", "line 8", "line 9"}
	for i, w := range want {
		if frame.Lines[i].Text != w {
			t.Errorf("Lines[%d] = %q, want %q", i, frame.Lines[i].Text, w)
		}
	}
	if frame.Prompt != "> get x" {
		t.Errorf("Prompt = %q, want %q", frame.Prompt, "> get x")
	}
	if frame.Visibility != 1 {
		t.Errorf("Visibility = %v, want 1", frame.Visibility)
	}
}

func TestFrame_CursorOffset(t *testing.T) {
	c, _ := newTestConsole(t)
	c.Update(InputFrame{Chars: []rune("abcd")})
	c.Update(InputFrame{Left: true})

	frame, ok := c.Frame(400, 20, measureMono)
	if !ok {
		t.Fatal("no frame")
	}
	// Cursor sits after "> abc": 5 runes at 7px each.
	if frame.CursorX != 35 {
		t.Errorf("CursorX = %v, want 35", frame.CursorX)
	}
}

func TestFrame_WindowSmallerThanLog(t *testing.T) {
	c, _ := newTestConsole(t)
	c.Log("only entry")
	frame, ok := c.Frame(400, 20, measureMono)
	if !ok {
		t.Fatal("no frame")
	}
	if len(frame.Lines) != 1 || frame.Lines[0].Text != "only entry" {
		t.Errorf("Lines = %+v, want the single log entry", frame.Lines)
	}
}

func TestFrame_RenderFaultResetsEditState(t *testing.T) {
	c, _ := newTestConsole(t)
	c.Update(InputFrame{Chars: []rune("abc")})

	broken := func(s string) float64 {
		if strings.Contains(s, "abc") {
			panic("measure exploded")
		}
		return 0
	}
	frame, ok := c.Frame(400, 20, broken)
	if !ok {
		t.Fatal("fault path produced no frame")
	}
	if frame.Prompt != "> " {
		t.Errorf("fault frame prompt = %q, want bare prompt", frame.Prompt)
	}
	if c.Editor().Buffer() != "" || c.Editor().Cursor() != 0 {
		t.Error("edit state not reset after render fault")
	}
	entry, found := findEntry(c, "render fault")
	if !found {
		t.Fatal("render fault was not logged")
	}
	if entry.Kind != KindError {
		t.Errorf("render fault entry kind = %v, want KindError", entry.Kind)
	}
	if !strings.Contains(entry.Text, `buffer="abc"`) || !strings.Contains(entry.Text, "cursor=3") {
		t.Errorf("render fault entry missing buffer/cursor context: %q", entry.Text)
	}

	// Subsequent frames are healthy again.
	if _, ok := c.Frame(400, 20, broken); !ok {
		t.Error("console did not recover after render fault")
	}
}
