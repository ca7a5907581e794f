package eval

import (
	"fmt"

	"github.com/rlox-go/rlox/env"
	"github.com/rlox-go/rlox/function"
	"github.com/rlox-go/rlox/parser"
	"github.com/rlox-go/rlox/value"
)

// evalIfStmt requires Cond to evaluate to Bool, runs Then on true and
// Else (if present) otherwise, and returns whatever that branch
// produces unchanged (including Break/Return sentinels).
func (e *Evaluator) evalIfStmt(s *parser.IfStmt, scope *env.Environment) (value.Value, error) {
	cond, err := e.evalExpr(s.Cond, scope)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return nil, &RuntimeError{Message: "if condition must be a bool"}
	}
	if b.Val {
		return e.evalStmt(s.Then, scope)
	}
	if s.Else != nil {
		return e.evalStmt(s.Else, scope)
	}
	return value.NilValue, nil
}

// evalWhileStmt requires Cond to evaluate to Bool on every iteration.
// A Break from the body stops the loop; a Return propagates past it
// to whatever invoked the enclosing function.
func (e *Evaluator) evalWhileStmt(s *parser.WhileStmt, scope *env.Environment) (value.Value, error) {
	for {
		cond, err := e.evalExpr(s.Cond, scope)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(value.Bool)
		if !ok {
			return nil, &RuntimeError{Message: "while condition must be a bool"}
		}
		if !b.Val {
			return value.NilValue, nil
		}

		v, err := e.evalBlock(s.Body, scope.Child())
		if err != nil {
			return nil, err
		}
		switch v.(type) {
		case value.Break:
			return value.NilValue, nil
		case value.Return:
			return v, nil
		}
	}
}

// evalReturnStmt evaluates Expr (or yields Nil for a bare "return;")
// and wraps the result as a Return sentinel.
func (e *Evaluator) evalReturnStmt(s *parser.ReturnStmt, scope *env.Environment) (value.Value, error) {
	if s.Expr == nil {
		return value.Return{Val: value.NilValue}, nil
	}
	v, err := e.evalExpr(s.Expr, scope)
	if err != nil {
		return nil, err
	}
	return value.Return{Val: v}, nil
}

// callFunction invokes closure with args: a fresh child scope of its
// captured definition environment, with parameters bound positionally,
// running the body directly in that scope (not a further nested
// child — the body's own block-scoping rules apply only to blocks
// nested inside it). A Return sentinel unwraps to its value; a Break
// escaping the body is a runtime error, since it means `break` was
// used outside any loop.
func (e *Evaluator) callFunction(closure *function.Closure, args []value.Value) (value.Value, error) {
	if len(args) != closure.Arity() {
		return nil, &RuntimeError{Message: fmt.Sprintf(
			"expected %d arguments but got %d", closure.Arity(), len(args))}
	}

	callScope := closure.Env.Child()
	for i, param := range closure.Params {
		callScope.DeclareInit(param.Lexeme, args[i])
	}

	for _, decl := range closure.Body.Decls {
		v, err := e.evalDecl(decl, callScope)
		if err != nil {
			return nil, err
		}
		switch r := v.(type) {
		case value.Return:
			return r.Val, nil
		case value.Break:
			return nil, &RuntimeError{Message: "break outside of loop"}
		}
	}
	return value.NilValue, nil
}
