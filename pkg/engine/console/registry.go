package console

import "sort"

// Command is a console command handler. Identity is the (unique) name.
// Execute receives the console so it can log output and read variables;
// a non-nil error (or a panic, which the dispatcher recovers) is reported
// to the log as an error entry without affecting console state.
type Command interface {
	Name() string
	Usage() string
	Description() string
	Execute(c *Console, args []string) error
}

// Registry maps command names to handlers.
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd under its name. Returns false (and leaves the existing
// entry untouched) if the name is already taken; first registration wins.
func (r *Registry) Register(cmd Command) bool {
	if _, exists := r.commands[cmd.Name()]; exists {
		return false
	}
	r.commands[cmd.Name()] = cmd
	return true
}

// Unregister removes the command with the given name, reporting whether
// an entry was actually removed.
func (r *Registry) Unregister(name string) bool {
	if _, exists := r.commands[name]; !exists {
		return false
	}
	delete(r.commands, name)
	return true
}

// Lookup returns the command registered under verb.
func (r *Registry) Lookup(verb string) (Command, bool) {
	cmd, ok := r.commands[verb]
	return cmd, ok
}

// Names returns all registered command names in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
