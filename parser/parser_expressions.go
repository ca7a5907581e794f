package parser

import "github.com/rlox-go/rlox/lexer"

// expression → assignment
func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment → IDENT "=" assignment | logic_or
//
// Parsed by lookahead: an identifier immediately followed by "=" is
// committed as an Assign node whose RHS recurses into assignment
// (right-associative); any other shape retreats and falls through to
// logic_or.
func (p *Parser) assignment() Expr {
	if p.check(lexer.IDENTIFIER) {
		mark := p.current
		name := p.advance()
		if p.match(lexer.EQUAL) {
			value := p.assignment()
			return &Assign{Name: name, Value: value}
		}
		p.current = mark
	}
	return p.logicOr()
}

// logic_or → logic_and ( "or" logic_and )*
func (p *Parser) logicOr() Expr {
	expr := p.logicAnd()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.logicAnd()
		expr = &Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// logic_and → equality ( "and" equality )*
func (p *Parser) logicAnd() Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.equality()
		expr = &Logical{Left: expr, Op: op, Right: right}
	}
	return expr
}

// equality → comparison ( ("==" | "!=") comparison )*
func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.EQUAL_EQUAL, lexer.BANG_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison → term ( (">" | ">=" | "<" | "<=") term )*
func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// term → factor ( ("-" | "+") factor )*
func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor → unary ( ("/" | "*") unary )*
func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &Binary{Left: expr, Op: op, Right: right}
	}
	return expr
}

// unary → ("!" | "-" | "+") unary | call
//
// "+" is accepted alongside "-" and "!" since unary plus on a Number
// is valid (a no-op sign), matching unary minus's grammar shape.
func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right := p.unary()
		return &Unary{Op: op, Expr: right}
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" )?
func (p *Parser) call() Expr {
	expr := p.primary()
	if p.match(lexer.LEFT_PAREN) {
		args := p.arguments()
		paren, _ := p.expectAdvance(lexer.RIGHT_PAREN, "expected ')' after arguments")
		expr = &Call{Callee: expr, Paren: paren, Args: args}
	}
	return expr
}

// arguments → expression ( "," expression )*   // ≤ 255
func (p *Parser) arguments() []Expr {
	var args []Expr
	if p.check(lexer.RIGHT_PAREN) {
		return args
	}
	for {
		if len(args) >= maxArgs {
			p.addError("cannot have more than 255 arguments")
		}
		args = append(args, p.expression())
		if !p.match(lexer.COMMA) {
			break
		}
	}
	return args
}

// primary → "false" | "true" | "nil" | NUMBER | STRING
//         | IDENT | "(" expression ")"
func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE, lexer.TRUE, lexer.NIL, lexer.NUMBER, lexer.STRING, lexer.IDENTIFIER):
		return &Literal{Token: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.expectAdvance(lexer.RIGHT_PAREN, "expected ')' after expression")
		return &Grouping{Expr: expr}
	default:
		tok := p.peek()
		p.addError("expected expression")
		// Consume the offending token so the parser always makes
		// forward progress, even for a token with no expression form
		// at all (a reserved word with no expression use, a stray
		// closing delimiter, a binary operator at statement start).
		p.advance()
		return &Literal{Token: lexer.NewToken(lexer.NIL, "nil", tok.Line)}
	}
}
