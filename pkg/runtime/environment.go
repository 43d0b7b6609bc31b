package runtime

import "sort"

// Environment is the single flat variable store shared by a whole run.
// Bodies of if and while statements bind into it directly.
type Environment struct {
	values map[string]Integer
}

// NewEnvironment creates an empty store.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Integer)}
}

// Snapshot returns a copy of the current bindings.
func (e *Environment) Snapshot() map[string]Integer {
	out := make(map[string]Integer, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Define binds or overwrites name.
func (e *Environment) Define(name string, value Integer) {
	e.values[name] = value
}

// Lookup returns the last value assigned to name.
func (e *Environment) Lookup(name string) (Integer, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Keys returns the bound names in sorted order (useful for determinism in tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e *Environment) Len() int {
	return len(e.values)
}
