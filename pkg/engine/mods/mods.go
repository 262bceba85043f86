// Package mods tracks externally loaded modules so the console's lsmod
// command can report them. Modules register themselves once at startup;
// the loader lives for the process lifetime.
package mods

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Module describes one loaded external module.
type Module struct {
	Name    string
	Version string
}

// Loader is a name-unique module registry.
type Loader struct {
	names   mapset.Set[string]
	modules []Module
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{names: mapset.New[string]()}
}

// Register records a module. Returns false if a module with the same
// name is already registered; the first registration wins.
func (l *Loader) Register(m Module) bool {
	if l.names.Has(m.Name) {
		return false
	}
	l.names.Put(m.Name)
	l.modules = append(l.modules, m)
	return true
}

// Modules returns "name version" lines sorted by module name. It
// satisfies the console's ModuleLister interface.
func (l *Loader) Modules() []string {
	lines := make([]string, 0, len(l.modules))
	for _, m := range l.modules {
		if m.Version == "" {
			lines = append(lines, m.Name)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s", m.Name, m.Version))
	}
	sort.Strings(lines)
	return lines
}

// Len returns the number of registered modules.
func (l *Loader) Len() int {
	return len(l.modules)
}
