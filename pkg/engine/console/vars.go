package console

import "sort"

// Vars is the console's string-keyed variable store. Last write wins,
// nothing is ever evicted. An unset name is distinct from an empty value.
type Vars struct {
	values map[string]string
}

// NewVars creates an empty variable store.
func NewVars() *Vars {
	return &Vars{values: make(map[string]string)}
}

// Set unconditionally overwrites the value stored under name.
func (v *Vars) Set(name, value string) {
	v.values[name] = value
}

// Get returns the stored value and whether the name has ever been set.
func (v *Vars) Get(name string) (string, bool) {
	value, ok := v.values[name]
	return value, ok
}

// Names returns all set variable names in alphabetical order.
func (v *Vars) Names() []string {
	names := make([]string, 0, len(v.values))
	for name := range v.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
