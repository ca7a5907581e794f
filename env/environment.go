// Package env implements rlox's lexical-scope chain: a linked sequence
// of name-to-value bindings, each optionally pointing at a parent scope.
package env

import "github.com/rlox-go/rlox/value"

// uninitializedMarker is the value.Value installed by Declare for a
// binding that has no initializer yet. Reading it back is a runtime
// error; the evaluator checks for this exact value before returning a
// variable's value.
type uninitializedMarker struct{}

func (uninitializedMarker) Type() string   { return "uninitialized" }
func (uninitializedMarker) String() string { return "" }

// Uninitialized is the sentinel value a declared-but-not-yet-assigned
// binding holds.
var Uninitialized value.Value = uninitializedMarker{}

// Environment is one scope in the lexical chain. The global scope has a
// nil Parent.
type Environment struct {
	bindings map[string]value.Value
	Parent   *Environment
}

// New creates a scope with the given parent (nil for the global scope).
func New(parent *Environment) *Environment {
	return &Environment{bindings: make(map[string]value.Value), Parent: parent}
}

// Child creates a new scope linked to env as parent.
func (e *Environment) Child() *Environment {
	return New(e)
}

// Declare installs name with the Uninitialized marker in the current
// scope, shadowing any outer binding of the same name.
func (e *Environment) Declare(name string) {
	e.bindings[name] = Uninitialized
}

// DeclareInit installs name with val in the current scope, shadowing
// any outer binding of the same name.
func (e *Environment) DeclareInit(name string, val value.Value) {
	e.bindings[name] = val
}

// IsBound reports whether name resolves anywhere in the scope chain,
// from this scope outward.
func (e *Environment) IsBound(name string) bool {
	for scope := e; scope != nil; scope = scope.Parent {
		if _, ok := scope.bindings[name]; ok {
			return true
		}
	}
	return false
}

// Get returns the value of the innermost binding of name, walking the
// chain outward. ok is false if no scope in the chain binds name.
func (e *Environment) Get(name string) (val value.Value, ok bool) {
	for scope := e; scope != nil; scope = scope.Parent {
		if v, found := scope.bindings[name]; found {
			return v, true
		}
	}
	return nil, false
}

// Assign mutates the nearest binding of name in the chain, walking
// outward from this scope. It never creates a new binding; ok is false
// if name is not bound anywhere in the chain.
func (e *Environment) Assign(name string, val value.Value) (ok bool) {
	for scope := e; scope != nil; scope = scope.Parent {
		if _, found := scope.bindings[name]; found {
			scope.bindings[name] = val
			return true
		}
	}
	return false
}
