// Package ast defines the syntax tree produced by package parser and
// consumed by package eval. Nodes are plain structs dispatched by type
// switch, not a Visitor hierarchy: the evaluator's one big switch over
// concrete types is cheaper to read and extend than a method per node type
// per visitor.
package ast

import "github.com/golox-lang/golox/lexer"

// Expr is any node that evaluates to a value.
type Expr interface {
	exprNode()
}

// Stmt is any node that executes for effect.
type Stmt interface {
	stmtNode()
}

// Program is the root of a parsed source file or REPL entry: a sequence of
// top-level statements.
type Program struct {
	Statements []Stmt
}

// --- Expressions ---

// Literal is a constant number, string, boolean, or nil value fixed at
// parse time.
type Literal struct {
	Value interface{} // float64, string, bool, or nil
}

// Variable is a reference to a named binding, resolved against the
// environment chain at evaluation time.
type Variable struct {
	Name lexer.Token
}

// Assign stores a new value into an already-declared variable. It is
// itself an expression (it evaluates to the assigned value), matching the
// grammar's `assignment -> IDENTIFIER "=" assignment | logic_or`.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

// Unary is a prefix operator applied to a single operand: `-` or `!`.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

// Binary is an infix arithmetic or comparison operator.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Logical is `and`/`or`. It is kept distinct from Binary because both
// operators short-circuit: the right operand must not be evaluated when
// the left already decides the result.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Grouping is a parenthesized expression, kept as its own node (rather than
// collapsed away) so the AST dump (Print) reflects what was actually
// written.
type Grouping struct {
	Expression Expr
}

// Call is a function invocation. Callee is almost always a Variable, but
// the grammar allows any expression that evaluates to a callable.
type Call struct {
	Callee    Expr
	Paren     lexer.Token // closing ')', used for error position
	Arguments []Expr
}

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Call) exprNode()     {}

// --- Statements ---

// ExprStmt evaluates an expression and discards the result, e.g. a bare
// call used for its side effects.
type ExprStmt struct {
	Expression Expr
}

// PrintStmt evaluates an expression and writes its textual form to the
// interpreter's output stream.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares a new binding in the current scope. Initializer may be
// nil, in which case the variable is bound to nil.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

// Block introduces a new child scope and executes its statements within
// it.
type Block struct {
	Statements []Stmt
}

// IfStmt executes Then when Condition is truthy, otherwise Else (which may
// be nil).
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// WhileStmt repeatedly executes Body while Condition is truthy. The
// parser desugars `for` loops into a Block wrapping a WhileStmt, so this is
// the only looping construct the evaluator needs to handle.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunctionStmt declares a named function. Executing it binds Name to a
// function.Function value that wraps this declaration together with the
// current environment; golox has no anonymous function literals.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// ReturnStmt exits the nearest enclosing function call with an optional
// value. It is implemented as a distinct eval.Completion, not a Go error
// or panic/recover pair.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr // nil means "return nil"
}

func (*ExprStmt) stmtNode()     {}
func (*PrintStmt) stmtNode()    {}
func (*VarStmt) stmtNode()      {}
func (*Block) stmtNode()        {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*FunctionStmt) stmtNode() {}
func (*ReturnStmt) stmtNode()   {}
