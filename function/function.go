// Package function implements rlox's callable user-defined functions:
// closures that pair a function's declaration with the environment
// visible at the point it was declared.
package function

import (
	"fmt"

	"github.com/rlox-go/rlox/env"
	"github.com/rlox-go/rlox/lexer"
	"github.com/rlox-go/rlox/parser"
	"github.com/rlox-go/rlox/value"
)

// Closure is a user-defined function value. It captures the function's
// name, parameters, body, and the environment in which it was declared
// (Env), which is what makes nested functions returned from an outer
// call keep access to that call's locals.
type Closure struct {
	Name   string
	Params []lexer.Token
	Body   *parser.Block
	Env    *env.Environment
}

func (c *Closure) Type() string { return "callable" }

func (c *Closure) String() string {
	args := ""
	for i, p := range c.Params {
		if i > 0 {
			args += ", "
		}
		args += p.Lexeme
	}
	return fmt.Sprintf("<fn %s(%s)>", c.Name, args)
}

// Arity is the number of parameters the closure was declared with.
func (c *Closure) Arity() int {
	return len(c.Params)
}

var _ value.Callable = (*Closure)(nil)
