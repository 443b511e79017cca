package parser

import (
	"strconv"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/lexer"
)

// expression -> assignment
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment -> IDENTIFIER "=" assignment | logicOr
//
// Parsed by first parsing the left side as a normal (precedence-climbing)
// expression, then checking for a trailing '='. This matches the standard
// recursive-descent trick for right-associative assignment: the left side
// is reinterpreted as an assignment target only if it turns out to be a
// bare Variable, so a malformed target is a parse error rather than
// silently accepted and discarded mid-parse (unlike a panic that would
// abort parsing of later statements).
func (p *Parser) assignment() (ast.Expr, error) {
	left, err := p.orExpr()
	if err != nil {
		return nil, err
	}

	if p.matchAny(lexer.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := left.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}, nil
		}
		return nil, p.errorAt(equals, "Invalid assignment target.")
	}
	return left, nil
}

func (p *Parser) orExpr() (ast.Expr, error) {
	return p.logicalBinary(lexer.Or, p.andExpr)
}

func (p *Parser) andExpr() (ast.Expr, error) {
	return p.logicalBinary(lexer.And, p.equality)
}

func (p *Parser) logicalBinary(op lexer.TokenType, next func() (ast.Expr, error)) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.matchAny(op) {
		operator := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.Logical{Left: left, Operator: operator, Right: right}
	}
	return left, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.binary(p.comparison, lexer.BangEqual, lexer.EqualEqual)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binary(p.term, lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.binary(p.factor, lexer.Plus, lexer.Minus)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.binary(p.unary, lexer.Star, lexer.Slash)
}

// binary implements one level of the precedence-climbing table (the
// teacher's registerBinaryFuncs, collapsed from a per-operator function map
// into a shared helper parameterized by the operator set at each level).
func (p *Parser) binary(next func() (ast.Expr, error), ops ...lexer.TokenType) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.matchAny(ops...) {
		operator := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Operator: operator, Right: right}
	}
	return left, nil
}

// unary -> ("!" | "-") unary | call
func (p *Parser) unary() (ast.Expr, error) {
	if p.matchAny(lexer.Bang, lexer.Minus) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: operator, Right: right}, nil
	}
	return p.call()
}

// call -> primary ( "(" arguments? ")" )*
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.matchAny(lexer.LeftParen) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(lexer.RightParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.matchAny(lexer.Comma) {
				break
			}
		}
	}
	paren, err := p.expect(lexer.RightParen, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}, nil
}

// primary -> NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")" | IDENTIFIER
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.matchAny(lexer.False):
		return &ast.Literal{Value: false}, nil
	case p.matchAny(lexer.True):
		return &ast.Literal{Value: true}, nil
	case p.matchAny(lexer.Nil):
		return &ast.Literal{Value: nil}, nil
	case p.matchAny(lexer.Number):
		n, err := strconv.ParseFloat(p.previous().Lexeme, 64)
		if err != nil {
			return nil, p.errorAt(p.previous(), "Invalid number literal.")
		}
		return &ast.Literal{Value: n}, nil
	case p.matchAny(lexer.String):
		return &ast.Literal{Value: p.previous().Lexeme}, nil
	case p.matchAny(lexer.Identifier):
		return &ast.Variable{Name: p.previous()}, nil
	case p.matchAny(lexer.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expression: expr}, nil
	default:
		return nil, p.errorAt(p.peek(), "Expect expression.")
	}
}
