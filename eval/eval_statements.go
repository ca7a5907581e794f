package eval

import (
	"fmt"

	"github.com/rlox-go/rlox/env"
	"github.com/rlox-go/rlox/function"
	"github.com/rlox-go/rlox/parser"
	"github.com/rlox-go/rlox/value"
)

// evalDecl dispatches a declaration to its concrete handler.
func (e *Evaluator) evalDecl(decl parser.Decl, scope *env.Environment) (value.Value, error) {
	switch d := decl.(type) {
	case *parser.VarDecl:
		return e.evalVarDecl(d, scope)
	case *parser.FunDecl:
		return e.evalFunDecl(d, scope)
	case *parser.StmtDecl:
		return e.evalStmt(d.Stmt, scope)
	default:
		return nil, &RuntimeError{Message: fmt.Sprintf("unhandled declaration %T", decl)}
	}
}

// evalStmt dispatches a statement to its concrete handler.
func (e *Evaluator) evalStmt(stmt parser.Stmt, scope *env.Environment) (value.Value, error) {
	switch s := stmt.(type) {
	case *parser.ExprStmt:
		return e.evalExpr(s.Expr, scope)
	case *parser.PrintStmt:
		return e.evalPrintStmt(s, scope)
	case *parser.Block:
		return e.evalBlock(s, scope.Child())
	case *parser.IfStmt:
		return e.evalIfStmt(s, scope)
	case *parser.WhileStmt:
		return e.evalWhileStmt(s, scope)
	case *parser.BreakStmt:
		return value.Break{}, nil
	case *parser.ReturnStmt:
		return e.evalReturnStmt(s, scope)
	default:
		return nil, &RuntimeError{Message: fmt.Sprintf("unhandled statement %T", stmt)}
	}
}

// evalVarDecl evaluates the initializer (if any) in scope, then
// declares name in scope: with the result if initialized, or with the
// uninitialized marker otherwise.
func (e *Evaluator) evalVarDecl(d *parser.VarDecl, scope *env.Environment) (value.Value, error) {
	if d.Init == nil {
		scope.Declare(d.Name.Lexeme)
		return value.NilValue, nil
	}
	v, err := e.evalExpr(d.Init, scope)
	if err != nil {
		return nil, err
	}
	scope.DeclareInit(d.Name.Lexeme, v)
	return value.NilValue, nil
}

// evalFunDecl builds a closure capturing scope (the environment
// visible at the point of declaration) and binds the function's name
// to it in that same scope.
func (e *Evaluator) evalFunDecl(d *parser.FunDecl, scope *env.Environment) (value.Value, error) {
	closure := &function.Closure{
		Name:   d.Name.Lexeme,
		Params: d.Params,
		Body:   d.Body,
		Env:    scope,
	}
	scope.DeclareInit(d.Name.Lexeme, closure)
	return value.NilValue, nil
}

// evalPrintStmt evaluates Expr and writes its textual form plus a
// trailing newline to the evaluator's output sink.
func (e *Evaluator) evalPrintStmt(s *parser.PrintStmt, scope *env.Environment) (value.Value, error) {
	v, err := e.evalExpr(s.Expr, scope)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(e.out, v.String())
	return value.NilValue, nil
}

// evalBlock runs decls in scope (already a fresh child scope supplied
// by the caller) in order. A Break or Return sentinel from any
// declaration stops the block immediately and propagates unchanged;
// otherwise the block yields Nil once every declaration has run.
func (e *Evaluator) evalBlock(block *parser.Block, scope *env.Environment) (value.Value, error) {
	for _, decl := range block.Decls {
		v, err := e.evalDecl(decl, scope)
		if err != nil {
			return nil, err
		}
		if value.IsSentinel(v) {
			return v, nil
		}
	}
	return value.NilValue, nil
}
