package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/environment"
	"github.com/golox-lang/golox/lexer"
)

func TestFunction_StringAndTruthy(t *testing.T) {
	decl := &ast.FunctionStmt{Name: lexer.NewToken(lexer.Identifier, "greet", 1, 1)}
	fn := New(decl, environment.New())
	assert.Equal(t, "<function greet>", fn.String())
	assert.True(t, fn.Truthy())
}

func TestFunction_EqualIsIdentityNotStructural(t *testing.T) {
	declA := &ast.FunctionStmt{Name: lexer.NewToken(lexer.Identifier, "f", 1, 1)}
	envA := environment.New()
	envB := environment.New()

	fn1 := New(declA, envA)
	fn2 := New(declA, envA)
	fn3 := New(declA, envB)

	assert.True(t, fn1.Equal(fn2), "same declaration and same closure are equal")
	assert.False(t, fn1.Equal(fn3), "same declaration but different closure are not equal")
}
