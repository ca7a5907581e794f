package eval

import (
	"fmt"
	"strconv"

	"github.com/rlox-go/rlox/env"
	"github.com/rlox-go/rlox/function"
	"github.com/rlox-go/rlox/lexer"
	"github.com/rlox-go/rlox/parser"
	"github.com/rlox-go/rlox/value"
)

// evalExpr dispatches an expression to its concrete handler.
func (e *Evaluator) evalExpr(expr parser.Expr, scope *env.Environment) (value.Value, error) {
	switch ex := expr.(type) {
	case *parser.Literal:
		return e.evalLiteral(ex, scope)
	case *parser.Grouping:
		return e.evalExpr(ex.Expr, scope)
	case *parser.Unary:
		return e.evalUnary(ex, scope)
	case *parser.Binary:
		return e.evalBinary(ex, scope)
	case *parser.Logical:
		return e.evalLogical(ex, scope)
	case *parser.Assign:
		return e.evalAssign(ex, scope)
	case *parser.Call:
		return e.evalCall(ex, scope)
	default:
		return nil, &RuntimeError{Message: fmt.Sprintf("unhandled expression %T", expr)}
	}
}

// evalLiteral decodes a scanned literal token, or — since the grammar
// reuses Literal for variable references rather than a dedicated node
// — looks an identifier up in scope.
func (e *Evaluator) evalLiteral(lit *parser.Literal, scope *env.Environment) (value.Value, error) {
	tok := lit.Token
	switch tok.Type {
	case lexer.NUMBER:
		n, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, &RuntimeError{Line: tok.Line, Message: "invalid number literal '" + tok.Lexeme + "'"}
		}
		return value.Number{Val: n}, nil
	case lexer.STRING:
		return value.String{Val: tok.Lexeme}, nil
	case lexer.TRUE:
		return value.Bool{Val: true}, nil
	case lexer.FALSE:
		return value.Bool{Val: false}, nil
	case lexer.NIL:
		return value.NilValue, nil
	case lexer.IDENTIFIER:
		v, ok := scope.Get(tok.Lexeme)
		if !ok {
			return nil, &RuntimeError{Line: tok.Line, Message: "undefined variable '" + tok.Lexeme + "'"}
		}
		if v == env.Uninitialized {
			return nil, &RuntimeError{Line: tok.Line, Message: "uninitialized variable '" + tok.Lexeme + "'"}
		}
		return v, nil
	default:
		return nil, &RuntimeError{Line: tok.Line, Message: "invalid token found; expected literal"}
	}
}

// evalUnary applies a prefix operator: "-"/"+" require Number, "!"
// requires Bool.
func (e *Evaluator) evalUnary(u *parser.Unary, scope *env.Environment) (value.Value, error) {
	operand, err := e.evalExpr(u.Expr, scope)
	if err != nil {
		return nil, err
	}
	switch u.Op.Type {
	case lexer.MINUS, lexer.PLUS:
		n, ok := operand.(value.Number)
		if !ok {
			return nil, &RuntimeError{Line: u.Op.Line, Message: "invalid operand for plus/minus operator"}
		}
		if u.Op.Type == lexer.MINUS {
			return value.Number{Val: -n.Val}, nil
		}
		return n, nil
	case lexer.BANG:
		b, ok := operand.(value.Bool)
		if !ok {
			return nil, &RuntimeError{Line: u.Op.Line, Message: "invalid operand for bang operator"}
		}
		return value.Bool{Val: !b.Val}, nil
	default:
		return nil, &RuntimeError{Line: u.Op.Line, Message: "invalid token found; expected unary operator"}
	}
}

// evalBinary applies an infix arithmetic, concatenation, comparison,
// or equality operator.
func (e *Evaluator) evalBinary(b *parser.Binary, scope *env.Environment) (value.Value, error) {
	left, err := e.evalExpr(b.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(b.Right, scope)
	if err != nil {
		return nil, err
	}

	switch b.Op.Type {
	case lexer.PLUS:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return value.Number{Val: ln.Val + rn.Val}, nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return value.String{Val: ls.Val + rs.Val}, nil
			}
		}
		return nil, &RuntimeError{Line: b.Op.Line, Message: "invalid operands for plus operator"}
	case lexer.MINUS:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, &RuntimeError{Line: b.Op.Line, Message: "invalid operands for minus operator"}
		}
		return value.Number{Val: ln.Val - rn.Val}, nil
	case lexer.STAR:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, &RuntimeError{Line: b.Op.Line, Message: "invalid operands for star operator"}
		}
		return value.Number{Val: ln.Val * rn.Val}, nil
	case lexer.SLASH:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, &RuntimeError{Line: b.Op.Line, Message: "invalid operands for slash operator"}
		}
		return value.Number{Val: ln.Val / rn.Val}, nil
	case lexer.GREATER:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, &RuntimeError{Line: b.Op.Line, Message: "invalid operands for greater operator"}
		}
		return value.Bool{Val: ln.Val > rn.Val}, nil
	case lexer.GREATER_EQUAL:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, &RuntimeError{Line: b.Op.Line, Message: "invalid operands for greater-equal operator"}
		}
		return value.Bool{Val: ln.Val >= rn.Val}, nil
	case lexer.LESS:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, &RuntimeError{Line: b.Op.Line, Message: "invalid operands for less operator"}
		}
		return value.Bool{Val: ln.Val < rn.Val}, nil
	case lexer.LESS_EQUAL:
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, &RuntimeError{Line: b.Op.Line, Message: "invalid operands for less-equal operator"}
		}
		return value.Bool{Val: ln.Val <= rn.Val}, nil
	case lexer.EQUAL_EQUAL:
		return value.Bool{Val: valuesEqual(left, right)}, nil
	case lexer.BANG_EQUAL:
		return value.Bool{Val: !valuesEqual(left, right)}, nil
	default:
		return nil, &RuntimeError{Line: b.Op.Line, Message: "invalid binary operator"}
	}
}

// evalLogical short-circuits "or"/"and": the right operand is
// evaluated only when the left does not already determine the result.
// Both operands must be Bool.
func (e *Evaluator) evalLogical(l *parser.Logical, scope *env.Environment) (value.Value, error) {
	left, err := e.evalExpr(l.Left, scope)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(value.Bool)
	if !ok {
		return nil, &RuntimeError{Line: l.Op.Line, Message: "left operand of logical operator must be a bool"}
	}
	if l.Op.Type == lexer.OR && lb.Val {
		return lb, nil
	}
	if l.Op.Type == lexer.AND && !lb.Val {
		return lb, nil
	}

	right, err := e.evalExpr(l.Right, scope)
	if err != nil {
		return nil, err
	}
	if _, ok := right.(value.Bool); !ok {
		return nil, &RuntimeError{Line: l.Op.Line, Message: "right operand of logical operator must be a bool"}
	}
	return right, nil
}

// evalAssign requires Name to already be bound somewhere in scope's
// chain, then mutates the nearest such binding.
func (e *Evaluator) evalAssign(a *parser.Assign, scope *env.Environment) (value.Value, error) {
	v, err := e.evalExpr(a.Value, scope)
	if err != nil {
		return nil, err
	}
	if !scope.Assign(a.Name.Lexeme, v) {
		return nil, &RuntimeError{Line: a.Name.Line, Message: "assignment to unbound name '" + a.Name.Lexeme + "'"}
	}
	return v, nil
}

// evalCall evaluates the callee and arguments left to right, checks
// that the callee is a Callable of matching arity, and invokes it.
func (e *Evaluator) evalCall(c *parser.Call, scope *env.Environment) (value.Value, error) {
	callee, err := e.evalExpr(c.Callee, scope)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, 0, len(c.Args))
	for _, argExpr := range c.Args {
		arg, err := e.evalExpr(argExpr, scope)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	switch callable := callee.(type) {
	case *function.Closure:
		return e.callFunction(callable, args)
	case *value.Native:
		if len(args) != callable.Arity() {
			return nil, &RuntimeError{Line: c.Paren.Line, Message: fmt.Sprintf(
				"expected %d arguments but got %d", callable.Arity(), len(args))}
		}
		v, err := callable.Call(args)
		if err != nil {
			return nil, &RuntimeError{Line: c.Paren.Line, Message: err.Error()}
		}
		return v, nil
	default:
		return nil, &RuntimeError{Line: c.Paren.Line, Message: "call target is not callable"}
	}
}

// valuesEqual implements structural value equality: distinct variants
// always compare unequal, and callables compare by identity.
func valuesEqual(a, b value.Value) bool {
	switch av := a.(type) {
	case value.Number:
		bv, ok := b.(value.Number)
		return ok && av.Val == bv.Val
	case value.String:
		bv, ok := b.(value.String)
		return ok && av.Val == bv.Val
	case value.Bool:
		bv, ok := b.(value.Bool)
		return ok && av.Val == bv.Val
	case value.Nil:
		_, ok := b.(value.Nil)
		return ok
	default:
		return a == b
	}
}
