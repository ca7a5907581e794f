package parser

import "github.com/rlox-go/rlox/lexer"

// statement → printStmt | block | ifStmt | whileStmt | breakStmt
//           | returnStmt | exprStmt
func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStmt()
	case p.match(lexer.LEFT_BRACE):
		return &Block{Decls: p.blockDecls()}
	case p.match(lexer.IF):
		return p.ifStmt()
	case p.match(lexer.WHILE):
		return p.whileStmt()
	case p.match(lexer.BREAK):
		return p.breakStmt()
	case p.match(lexer.RETURN):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

// blockDecls scans declaration* up to (and consuming) the closing "}".
// The opening "{" must already be consumed by the caller.
func (p *Parser) blockDecls() []Decl {
	var decls []Decl
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		decls = append(decls, p.declaration())
	}
	p.expectAdvance(lexer.RIGHT_BRACE, "expected '}' after block")
	return decls
}

// blockBody is blockDecls wrapped as a *Block, used where the grammar
// names `block` directly (funDecl, whileStmt). The opening "{" must
// already be consumed.
func (p *Parser) blockBody() *Block {
	return &Block{Decls: p.blockDecls()}
}

// ifStmt → "if" expression statement ( "else" statement )?
func (p *Parser) ifStmt() Stmt {
	cond := p.expression()
	then := p.statement()
	var elseBranch Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &IfStmt{Cond: cond, Then: then, Else: elseBranch}
}

// whileStmt → "while" expression block
func (p *Parser) whileStmt() Stmt {
	cond := p.expression()
	if _, ok := p.expectAdvance(lexer.LEFT_BRACE, "expected '{' to start while body"); !ok {
		p.synchronize()
		return &WhileStmt{Cond: cond, Body: &Block{}}
	}
	body := p.blockBody()
	return &WhileStmt{Cond: cond, Body: body}
}

// breakStmt → "break" ";"
func (p *Parser) breakStmt() Stmt {
	line := p.previous().Line
	if _, ok := p.expectAdvance(lexer.SEMICOLON, "expected ';' after 'break'"); !ok {
		p.synchronize()
	}
	return &BreakStmt{Line: line}
}

// returnStmt → "return" expression? ";"
func (p *Parser) returnStmt() Stmt {
	line := p.previous().Line
	var value Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	if _, ok := p.expectAdvance(lexer.SEMICOLON, "expected ';' after return value"); !ok {
		p.synchronize()
	}
	return &ReturnStmt{Line: line, Expr: value}
}

// printStmt → "print" expression ";"
func (p *Parser) printStmt() Stmt {
	value := p.expression()
	if _, ok := p.expectAdvance(lexer.SEMICOLON, "expected ';' after value"); !ok {
		p.synchronize()
	}
	return &PrintStmt{Expr: value}
}

// exprStmt → expression ";"
func (p *Parser) exprStmt() Stmt {
	value := p.expression()
	if _, ok := p.expectAdvance(lexer.SEMICOLON, "expected ';' after expression"); !ok {
		p.synchronize()
	}
	return &ExprStmt{Expr: value}
}
