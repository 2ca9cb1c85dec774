// Package environment implements the lexically-scoped variable chain the
// evaluator binds and looks up names against.
package environment

import (
	"fmt"

	"github.com/mprice/ownpy/value"
)

// Environment is a mapping from identifier to Value, plus an optional link
// to an enclosing Environment. A Block statement pushes a fresh, empty
// child Environment whose enclosing link is the currently active one.
//
// The chain is a singly-linked, acyclic list from innermost to global,
// built from heap-allocated *Environment values linked by pointer — not by
// copying a snapshot of the parent — so that Assign on an inner scope can
// mutate an outer scope's binding in place rather than updating a throwaway
// copy.
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// New creates an Environment enclosed by parent. Pass nil to create the
// global environment, which has no enclosing scope.
func New(parent *Environment) *Environment {
	return &Environment{
		values:    make(map[string]value.Value),
		enclosing: parent,
	}
}

// UndefinedVariableError reports a read or assignment against a name with
// no binding anywhere in the enclosing chain.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// Define unconditionally binds (or rebinds) name in the current scope.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get returns the value bound to name in the nearest enclosing scope that
// binds it. It fails with *UndefinedVariableError if no scope in the chain
// binds name.
func (e *Environment) Get(name string) (value.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return value.Nil, &UndefinedVariableError{Name: name}
}

// Assign updates the binding for name in the nearest enclosing scope that
// already contains it. It fails with *UndefinedVariableError if no scope in
// the chain binds name; it never creates a new binding.
func (e *Environment) Assign(name string, v value.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return &UndefinedVariableError{Name: name}
}
