// Package environment implements golox's lexical scope chain. It mirrors
// the teacher repo's scope.Scope (a map plus a parent pointer) but drops
// Scope.Copy(): closures in golox capture the *Environment pointer itself,
// the way the original Rust source shares Rc<RefCell<Scope>> across a
// function value and its defining scope, so a later assignment through one
// reference is visible through every other reference to the same scope.
package environment

import (
	"fmt"

	"github.com/golox-lang/golox/value"
)

// Environment is one link in the scope chain. The zero value is not
// useful; construct with New or Append.
type Environment struct {
	values map[string]value.Value
	parent *Environment
}

// New creates a top-level environment with no parent, e.g. the one backing
// a REPL session or a freshly loaded script.
func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// Append creates a new child scope whose parent is e. Every block
// statement and function call opens one of these; the parent link is a
// pointer, never a copy, so mutations made by an inner scope's Assign are
// visible to anything else holding the same outer *Environment.
func (e *Environment) Append() *Environment {
	return &Environment{values: make(map[string]value.Value), parent: e}
}

// Declare binds name to val in this scope only, shadowing (not erroring
// on) any binding of the same name in an enclosing scope. Re-declaring an
// existing name in the same scope simply overwrites it, matching golox's
// permissive `var` semantics (no redeclaration error).
func (e *Environment) Declare(name string, val value.Value) {
	e.values[name] = val
}

// Get looks up name starting in e and walking outward through parents. The
// error message matches the original Rust source's environment.rs exactly.
func (e *Environment) Get(name string) (value.Value, error) {
	for scope := e; scope != nil; scope = scope.parent {
		if v, ok := scope.values[name]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%s not defined", name)
}

// Assign mutates the nearest existing binding of name in the scope chain.
// It does not create a new binding: assigning to an undeclared name fails,
// matching environment.rs's assign().
func (e *Environment) Assign(name string, val value.Value) error {
	for scope := e; scope != nil; scope = scope.parent {
		if _, ok := scope.values[name]; ok {
			scope.values[name] = val
			return nil
		}
	}
	return fmt.Errorf("Variable '%s' not declared", name)
}
