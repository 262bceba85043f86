// Package console implements an in-process drop-down developer console:
// an editable command line with history, a bounded scrollback log, a
// pluggable command registry, a variable store, and a time-based show/hide
// slide. The host drives it with exactly two calls per frame, Update then
// Frame, on a single goroutine.
package console

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Kind classifies a log entry.
type Kind int

const (
	KindInfo Kind = iota
	KindUserInput
	KindError
)

// Entry is one line of console scrollback. Text never contains newlines;
// multi-line messages are split before they reach the log.
type Entry struct {
	Kind Kind
	Text string
}

const (
	logCapacity     = 100
	historyCapacity = 100
)

// ModuleLister reports the externally loaded modules for lsmod.
type ModuleLister interface {
	Modules() []string
}

// Config carries the host collaborators the console needs.
type Config struct {
	// Clock supplies monotonic time for the slide animation.
	// Defaults to time.Now.
	Clock func() time.Time

	// Modules backs the lsmod built-in. May be nil.
	Modules ModuleLister

	// OnVisibility is called when a toggle changes the target state, so
	// the host can release or re-capture the mouse. May be nil.
	OnVisibility func(shown bool)
}

// Console is the controller tying editor, parser, registry, log, and
// animation together. Create one with New and keep it for the process
// lifetime. Not safe for concurrent use.
type Console struct {
	log      *Ring[Entry]
	registry *Registry
	vars     *Vars
	editor   *Editor
	anim     anim

	now          func() time.Time
	modules      ModuleLister
	onVisibility func(bool)
}

// InputFrame is one frame's worth of raw input, assembled by a front-end
// adapter. Chars carries printable runes and control codes (CR/LF submit,
// BS/DEL backspace, Ctrl+W word erase) in arrival order; the booleans are
// edge-triggered key presses.
type InputFrame struct {
	Chars  []rune
	Toggle bool
	Up     bool
	Down   bool
	Left   bool
	Right  bool
}

// New creates a console with the built-in commands registered.
func New(cfg Config) *Console {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	c := &Console{
		log:          NewRing[Entry](logCapacity),
		registry:     NewRegistry(),
		vars:         NewVars(),
		editor:       NewEditor(historyCapacity),
		now:          cfg.Clock,
		modules:      cfg.Modules,
		onVisibility: cfg.OnVisibility,
	}
	registerBuiltins(c)
	return c
}

// Update consumes one frame of input and advances the editor and the
// animation clock. While fully hidden, only the toggle key is honored.
func (c *Console) Update(in InputFrame) {
	now := c.now()
	if in.Toggle {
		c.anim.Toggle(now)
		if c.onVisibility != nil {
			c.onVisibility(c.anim.Shown())
		}
	}
	if c.anim.Hidden(now) {
		return
	}
	for _, r := range in.Chars {
		if r == '\r' || r == '\n' {
			c.submit()
			continue
		}
		c.editor.Feed(r)
	}
	if in.Up {
		c.editor.HistoryUp()
	}
	if in.Down {
		c.editor.HistoryDown()
	}
	if in.Left {
		c.editor.MoveLeft()
	}
	if in.Right {
		c.editor.MoveRight()
	}
}

// submit finishes the current line: echo it, record it in history, and
// dispatch it. The edit state is reset even for blank input.
func (c *Console) submit() {
	line, ok := c.editor.Submit()
	if !ok {
		return
	}
	c.LogKind(KindUserInput, "> "+line)
	c.dispatch(line)
}

// dispatch parses a submitted line and runs the matching command. All
// failures end up in the log; none propagate.
func (c *Console) dispatch(line string) {
	verb, args, err := Parse(line)
	if err != nil {
		c.Errorf("Invalid command: %v", err)
		return
	}
	if verb == "" {
		return
	}
	cmd, ok := c.registry.Lookup(verb)
	if !ok {
		c.Errorf("Unknown command: %s (type 'help' for commands)", verb)
		return
	}
	if err := c.execute(cmd, args); err != nil {
		c.Error(err.Error())
	}
}

// execute runs a command handler, converting a panic into an error so a
// faulty command cannot take the console down with it.
func (c *Console) execute(cmd Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("command %q panicked: %v\n%s", cmd.Name(), r, debug.Stack())
		}
	}()
	return cmd.Execute(c, args)
}

// RegisterCommand adds cmd to the registry. Returns false if the name is
// already taken; the existing command is kept.
func (c *Console) RegisterCommand(cmd Command) bool {
	return c.registry.Register(cmd)
}

// UnregisterCommand removes the named command, reporting whether one was
// registered.
func (c *Console) UnregisterCommand(name string) bool {
	return c.registry.Unregister(name)
}

// RegisterNew constructs a zero value of T and registers it. Convenient
// for stateless command types:
//
//	console.RegisterNew[myCommand](c)
func RegisterNew[T any, P interface {
	*T
	Command
}](c *Console) bool {
	var v T
	return c.RegisterCommand(P(&v))
}

// Log appends an info entry.
func (c *Console) Log(msg string) {
	c.LogKind(KindInfo, msg)
}

// Logf appends a formatted info entry.
func (c *Console) Logf(format string, a ...any) {
	c.LogKind(KindInfo, fmt.Sprintf(format, a...))
}

// Error appends an error entry.
func (c *Console) Error(msg string) {
	c.LogKind(KindError, msg)
}

// Errorf appends a formatted error entry.
func (c *Console) Errorf(format string, a ...any) {
	c.LogKind(KindError, fmt.Sprintf(format, a...))
}

// LogKind appends msg to the scrollback, splitting multi-line messages
// into one entry per line, all with the same kind.
func (c *Console) LogKind(kind Kind, msg string) {
	for _, line := range strings.Split(msg, "\n") {
		c.log.Push(Entry{Kind: kind, Text: line})
	}
}

// SetVariable writes a console variable, overwriting any previous value.
func (c *Console) SetVariable(name, value string) {
	c.vars.Set(name, value)
}

// GetVariable reads a console variable. ok is false when the name was
// never set, which is distinct from an empty value.
func (c *Console) GetVariable(name string) (value string, ok bool) {
	return c.vars.Get(name)
}

// LogEntries exposes the scrollback ring (0 = most recent entry).
func (c *Console) LogEntries() *Ring[Entry] {
	return c.log
}

// Editor exposes the input editor, mainly for tests and adapters.
func (c *Console) Editor() *Editor {
	return c.editor
}

// Visibility returns the current interpolated panel visibility in [0,1].
func (c *Console) Visibility() float64 {
	return c.anim.Visibility(c.now())
}

// Hidden reports whether the console is fully hidden; the host should
// skip drawing entirely when it is.
func (c *Console) Hidden() bool {
	return c.anim.Hidden(c.now())
}

// Shown reports whether the console is targeting the open state.
func (c *Console) Shown() bool {
	return c.anim.Shown()
}
