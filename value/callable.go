package value

import "fmt"

// Callable is anything invocable from a Call expression: user-defined
// closures (see the function package) and native builtins like clock().
type Callable interface {
	Value
	// Arity is the number of arguments the callable expects.
	Arity() int
}

// Native wraps a Go function as a zero/low-arity rlox builtin. It is
// used for clock() and any future host-provided function that needs no
// access to the evaluator's environment chain.
type Native struct {
	Name string
	Fn   func(args []Value) (Value, error)
	Argc int
}

func (n *Native) Type() string   { return "callable" }
func (n *Native) String() string { return fmt.Sprintf("<native fn %s>", n.Name) }
func (n *Native) Arity() int     { return n.Argc }

// Call invokes the wrapped Go function.
func (n *Native) Call(args []Value) (Value, error) {
	return n.Fn(args)
}
