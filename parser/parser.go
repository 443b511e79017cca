// Package parser turns a token stream into an *ast.Program using
// recursive descent for statements and precedence climbing (a trimmed
// version of the teacher's Pratt-parsing scaffold in
// parser/parser_precedence.go) for expressions. Unlike the teacher, it
// performs no evaluation during parsing: parsing and execution are
// strictly separate passes, as spec'd.
package parser

import (
	"fmt"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/lexer"
)

// Parser consumes a fixed token slice produced by the lexer and builds an
// ast.Program, collecting one error string per malformed statement rather
// than stopping at the first.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []string
}

// New creates a Parser over a complete token stream (normally the first
// return value of lexer.Lexer.Tokenize).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Errors returns every parse diagnostic collected during Parse, formatted
// "L{line}:{col} {message}".
func (p *Parser) Errors() []string {
	return p.errors
}

// Parse consumes the whole token stream and returns the resulting
// program. Check Errors() after calling; a non-empty error list means the
// program is malformed and should not be evaluated, though Parse still
// returns as complete a tree as it could recover.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.errors = append(p.errors, err.Error())
			p.synchronize()
			continue
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog
}

// --- token stream helpers ---

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.atEnd() {
		return t == lexer.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) matchAny(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has type t, otherwise returns a
// diagnostic positioned at the offending token.
func (p *Parser) expect(t lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) errorAt(tok lexer.Token, message string) error {
	return fmt.Errorf("L%d:%d %s", tok.Line, tok.Column, message)
}

// synchronize discards tokens until it reaches a point likely to begin a
// new statement, so one malformed statement doesn't cascade into bogus
// errors for everything after it. Grounded on original_source's
// parser/mod.rs synchronize(): skip until a statement-starting keyword, or
// consume a semicolon and stop. The token the error was reported at is
// always discarded first, so recovery makes progress even when the error
// sits at the very start of a statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == lexer.Semicolon {
			return
		}
		switch p.peek().Type {
		case lexer.Class, lexer.Fun, lexer.Var, lexer.For, lexer.If, lexer.While, lexer.Print, lexer.Return:
			return
		}
		p.advance()
	}
}
