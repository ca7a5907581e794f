// Package eval walks the AST the parser package produces and executes
// it against a chained environment, producing rlox runtime values.
package eval

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rlox-go/rlox/env"
	"github.com/rlox-go/rlox/parser"
	"github.com/rlox-go/rlox/value"
)

// Evaluator holds the single mutable environment chain and output sink
// a program runs against. A program's top-level declarations share one
// global scope; each call and block pushes and pops child scopes of it.
type Evaluator struct {
	Globals *env.Environment
	out     io.Writer
}

// NewEvaluator creates an Evaluator writing print output to stdout,
// with the global scope pre-populated with rlox's builtins.
func NewEvaluator() *Evaluator {
	e := &Evaluator{Globals: env.New(nil), out: os.Stdout}
	e.defineBuiltins()
	return e
}

// SetWriter redirects print output, letting callers (tests, the REPL,
// the file runner) capture or route it independently of stdout.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.out = w
}

// defineBuiltins installs rlox's native functions into the global
// scope. clock() is currently the only one.
func (e *Evaluator) defineBuiltins() {
	e.Globals.DeclareInit("clock", &value.Native{
		Name: "clock",
		Argc: 0,
		Fn: func(args []value.Value) (value.Value, error) {
			return value.Number{Val: float64(time.Now().UnixNano()) / 1e9}, nil
		},
	})
}

// Interpret runs decls in order against the global scope and returns
// the value of the last declaration executed, mirroring a REPL's
// "print the final value" behavior. A Break or Return sentinel
// surviving to this level is a runtime error (break/return outside
// any loop or function).
func (e *Evaluator) Interpret(decls []parser.Decl) (value.Value, error) {
	var result value.Value = value.NilValue
	for _, decl := range decls {
		v, err := e.evalDecl(decl, e.Globals)
		if err != nil {
			return nil, err
		}
		switch v.(type) {
		case value.Break:
			return nil, &RuntimeError{Message: "break outside of loop"}
		case value.Return:
			return nil, &RuntimeError{Message: "return outside of function"}
		}
		result = v
	}
	return result, nil
}

// RuntimeError is a single-message evaluator failure, tagged with the
// source line when one is known. Lexing and parsing report their
// failures separately (a *lexer.LexError and the parser's collected
// diagnostic strings), not as a RuntimeError.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	if e.Line == 0 {
		return "runtime error: " + e.Message
	}
	return "[line " + strconv.Itoa(e.Line) + "] runtime error: " + e.Message
}
