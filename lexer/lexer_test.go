package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextToken_SingleCharacters(t *testing.T) {
	l := New("(){},.-+;*")
	want := []TokenType{
		LeftParen, RightParen, LeftBrace, RightBrace, Comma, Dot, Minus, Plus,
		Semicolon, Star, EOF,
	}
	for _, wantType := range want {
		tok := l.NextToken()
		assert.Equal(t, wantType, tok.Type)
	}
}

func TestNextToken_OneOrTwoCharOperators(t *testing.T) {
	l := New("! != = == < <= > >=")
	want := []TokenType{Bang, BangEqual, Equal, EqualEqual, Less, LessEqual, Greater, GreaterEqual, EOF}
	for _, wantType := range want {
		assert.Equal(t, wantType, l.NextToken().Type)
	}
}

func TestNextToken_StringLiteral(t *testing.T) {
	l := New(`"hello world"`)
	tok := l.NextToken()
	assert.Equal(t, String, tok.Type)
	assert.Equal(t, "hello world", tok.Lexeme)
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New(`"hello`)
	tok := l.NextToken()
	assert.Equal(t, EOF, tok.Type)
	assert.Len(t, l.Errors(), 1)
	assert.Equal(t, "L1:1 Unterminated string.", l.Errors()[0])
}

func TestNextToken_StringSpanningLines(t *testing.T) {
	l := New("\"a\nb\"")
	tok := l.NextToken()
	assert.Equal(t, String, tok.Type)
	assert.Equal(t, "a\nb", tok.Lexeme)
	next := l.NextToken()
	assert.Equal(t, EOF, next.Type)
	assert.Equal(t, 2, next.Line)
}

func TestNextToken_Numbers(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"123", "123"},
		{"1.5", "1.5"},
		{"2.", "2"},
	}
	for _, c := range cases {
		l := New(c.src)
		tok := l.NextToken()
		assert.Equal(t, Number, tok.Type)
		assert.Equal(t, c.want, tok.Lexeme)
	}
}

func TestNextToken_TrailingDotIsSeparateToken(t *testing.T) {
	l := New("2.")
	num := l.NextToken()
	assert.Equal(t, Number, num.Type)
	assert.Equal(t, "2", num.Lexeme)
	dot := l.NextToken()
	assert.Equal(t, Dot, dot.Type)
}

func TestNextToken_IdentifiersAndKeywords(t *testing.T) {
	l := New("var x = foo and bar or nil")
	want := []TokenType{Var, Identifier, Equal, Identifier, And, Identifier, Or, Nil, EOF}
	for _, wantType := range want {
		assert.Equal(t, wantType, l.NextToken().Type)
	}
}

func TestNextToken_LineCommentIgnored(t *testing.T) {
	l := New("1 // this is a comment\n2")
	first := l.NextToken()
	assert.Equal(t, Number, first.Type)
	assert.Equal(t, "1", first.Lexeme)
	second := l.NextToken()
	assert.Equal(t, Number, second.Type)
	assert.Equal(t, 2, second.Line)
}

func TestNextToken_PositionsTrackLineAndColumn(t *testing.T) {
	l := New("var\nx")
	varTok := l.NextToken()
	assert.Equal(t, 1, varTok.Line)
	assert.Equal(t, 1, varTok.Column)
	xTok := l.NextToken()
	assert.Equal(t, 2, xTok.Line)
	assert.Equal(t, 1, xTok.Column)
}

func TestNextToken_UnexpectedCharacterRecovers(t *testing.T) {
	l := New("1 @ 2")
	first := l.NextToken()
	assert.Equal(t, Number, first.Type)
	second := l.NextToken()
	assert.Equal(t, Number, second.Type)
	assert.Equal(t, "2", second.Lexeme)
	assert.Equal(t, EOF, l.NextToken().Type)
	assert.Len(t, l.Errors(), 1)
	assert.Contains(t, l.Errors()[0], "Unknown token: '@'")
}

func TestTokenize_AccumulatesAllTokensAndErrors(t *testing.T) {
	tokens, errs := New("1 + 2 @ 3").Tokenize()
	assert.Len(t, errs, 1)
	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []TokenType{Number, Plus, Number, Number, EOF}, types)

	_, errs = New("\"unterminated").Tokenize()
	assert.Len(t, errs, 1)
}
