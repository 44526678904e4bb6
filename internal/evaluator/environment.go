package evaluator

import (
	"sort"
)

// Environment is the single flat variable table of a run. There are no
// nested scopes: blocks and if bodies write straight into it.
type Environment struct {
	variables map[string]Value
}

func NewEnvironment() *Environment {
	return &Environment{
		variables: make(map[string]Value),
	}
}

func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.variables[name]
	return v, ok
}

func (e *Environment) Set(name string, v Value) {
	e.variables[name] = v
}

func (e *Environment) Has(name string) bool {
	_, ok := e.variables[name]
	return ok
}

func (e *Environment) Len() int {
	return len(e.variables)
}

// Names returns the variable names in sorted order.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.variables))
	for name := range e.variables {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Snapshot copies the table into plain Go values.
func (e *Environment) Snapshot() map[string]any {
	out := make(map[string]any, len(e.variables))
	for name, v := range e.variables {
		out[name] = ToNative(v)
	}

	return out
}
