package parser

import (
	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/lexer"
)

// declaration -> varDecl | funDecl | statement
func (p *Parser) declaration() (ast.Stmt, error) {
	switch {
	case p.matchAny(lexer.Var):
		return p.varDeclaration()
	case p.matchAny(lexer.Fun):
		return p.function("function")
	default:
		return p.statement()
	}
}

// varDecl -> "var" IDENTIFIER ( "=" expression )? ";"
func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.expect(lexer.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var initializer ast.Expr
	if p.matchAny(lexer.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}, nil
}

// function -> IDENTIFIER "(" parameters? ")" block
func (p *Parser) function(kind string) (ast.Stmt, error) {
	name, err := p.expect(lexer.Identifier, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LeftParen, "Expect '(' after "+kind+" name."); err != nil {
		return nil, err
	}
	var params []lexer.Token
	if !p.check(lexer.RightParen) {
		for {
			param, err := p.expect(lexer.Identifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.matchAny(lexer.Comma) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LeftBrace, "Expect '{' before "+kind+" body."); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}

// statement -> exprStmt | printStmt | block | ifStmt | whileStmt | forStmt
//            | returnStmt
func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.matchAny(lexer.Print):
		return p.printStatement()
	case p.matchAny(lexer.LeftBrace):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Statements: stmts}, nil
	case p.matchAny(lexer.If):
		return p.ifStatement()
	case p.matchAny(lexer.While):
		return p.whileStatement()
	case p.matchAny(lexer.For):
		return p.forStatement()
	case p.matchAny(lexer.Return):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: value}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expression: expr}, nil
}

// block -> "{" declaration* "}" ; the opening brace has already been
// consumed by the caller.
func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(lexer.RightBrace) && !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.errors = append(p.errors, err.Error())
			p.synchronize()
			continue
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(lexer.RightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

// ifStmt -> "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.expect(lexer.LeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.matchAny(lexer.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Condition: cond, Then: thenBranch, Else: elseBranch}, nil
}

// whileStmt -> "while" "(" expression ")" statement
func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.expect(lexer.LeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: cond, Body: body}, nil
}

// forStmt -> "for" "(" (varDecl | exprStmt | ";") expression? ";" expression? ")" statement
//
// Desugared at parse time into Block[init, While(cond, Block[body, increment])],
// the same reduction the teacher's parser_loops.go performs for its
// (considerably richer) C-style for loop, trimmed to a single
// initializer/condition/increment triple.
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.expect(lexer.LeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err error
	switch {
	case p.matchAny(lexer.Semicolon):
		initializer = nil
	case p.matchAny(lexer.Var):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition ast.Expr
	if !p.check(lexer.Semicolon) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.Semicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(lexer.RightParen) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.ExprStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}
	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}
	return body, nil
}

// returnStmt -> "return" expression? ";"
func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous()
	var value ast.Expr
	var err error
	if !p.check(lexer.Semicolon) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.Semicolon, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}
