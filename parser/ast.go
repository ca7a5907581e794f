package parser

import "github.com/rlox-go/rlox/lexer"

// Decl is a top-level or block-level declaration: a var/fun declaration,
// or a plain statement lifted into declaration position.
type Decl interface {
	declNode()
}

// Stmt is an executable statement that produces no binding of its own.
type Stmt interface {
	Decl
	stmtNode()
}

// Expr is anything that evaluates to a Value.
type Expr interface {
	exprNode()
}

// VarDecl declares a name, optionally initialized by Init.
// var IDENT ( "=" expression )? ";"
type VarDecl struct {
	Name lexer.Token
	Init Expr // nil if uninitialized
}

func (*VarDecl) declNode() {}

// FunDecl declares a named function.
// fun IDENT "(" params? ")" block
type FunDecl struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   *Block
}

func (*FunDecl) declNode() {}

// StmtDecl lifts a bare statement into declaration position, so that
// declaration* can appear anywhere a statement list is expected.
type StmtDecl struct {
	Stmt Stmt
}

func (*StmtDecl) declNode() {}

// ExprStmt evaluates Expr and yields its value as the statement's
// result, which is how a top-level expression's value reaches the REPL.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) declNode() {}
func (*ExprStmt) stmtNode() {}

// PrintStmt evaluates Expr and writes its textual form plus a newline
// to the evaluator's output sink.
type PrintStmt struct {
	Expr Expr
}

func (*PrintStmt) declNode() {}
func (*PrintStmt) stmtNode() {}

// Block is a brace-delimited sequence of declarations run in a fresh
// child scope.
// "{" declaration* "}"
type Block struct {
	Decls []Decl
}

func (*Block) declNode() {}
func (*Block) stmtNode() {}

// IfStmt runs Then when Cond is true, else Else (which may be nil).
// Both branches may be any statement, not only a block.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if no else clause
}

func (*IfStmt) declNode() {}
func (*IfStmt) stmtNode() {}

// WhileStmt runs Body while Cond evaluates true. Body is always a Block;
// the grammar does not allow a bare statement as a while body.
type WhileStmt struct {
	Cond Expr
	Body *Block
}

func (*WhileStmt) declNode() {}
func (*WhileStmt) stmtNode() {}

// BreakStmt terminates the innermost enclosing while loop.
type BreakStmt struct {
	Line int
}

func (*BreakStmt) declNode() {}
func (*BreakStmt) stmtNode() {}

// ReturnStmt terminates the current function call, yielding Expr's
// value (or nil if the return carries no expression).
type ReturnStmt struct {
	Line int
	Expr Expr // nil for a bare "return;"
}

func (*ReturnStmt) declNode() {}
func (*ReturnStmt) stmtNode() {}

// Literal wraps a scanned token whose lexeme/type alone determines its
// value: a number, string, true/false/nil literal, or a variable
// reference (an IDENTIFIER token, per the grammar's reuse of Literal
// for identifiers rather than a dedicated reference node).
type Literal struct {
	Token lexer.Token
}

func (*Literal) exprNode() {}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression only to preserve source structure; it evaluates to the
// same value as Expr.
type Grouping struct {
	Expr Expr
}

func (*Grouping) exprNode() {}

// Unary is a prefix operator application: "!", "-" or "+" applied to Expr.
type Unary struct {
	Op   lexer.Token
	Expr Expr
}

func (*Unary) exprNode() {}

// Binary is an infix arithmetic or comparison operator application.
type Binary struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (*Binary) exprNode() {}

// Logical is "and"/"or", evaluated with short-circuiting rather than
// the strict-both-sides evaluation Binary uses.
type Logical struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (*Logical) exprNode() {}

// Assign mutates the nearest existing binding of Name to Value's
// result, and itself evaluates to that result.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (*Assign) exprNode() {}

// Call invokes Callee with Args, evaluated left to right. Callee is
// whatever primary expression preceded the "(" — in practice always a
// variable reference, since rlox has no other way to produce a
// Callable, but the grammar does not special-case that.
type Call struct {
	Callee Expr
	Paren  lexer.Token // closing ")", for error line reporting
	Args   []Expr
}

func (*Call) exprNode() {}
