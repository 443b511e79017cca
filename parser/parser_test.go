package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/lexer"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	tokens, lexErrs := lexer.New(src).Tokenize()
	require.Empty(t, lexErrs)
	p := New(tokens)
	prog := p.Parse()
	return prog
}

func TestParse_NumberExpressionStatement(t *testing.T) {
	prog := parse(t, "1 + 2;")
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*ast.ExprStmt)
	require.True(t, ok)
	bin, ok := stmt.Expression.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.Plus, bin.Operator.Type)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3), not (1 + 2) * 3.
	prog := parse(t, "1 + 2 * 3;")
	stmt := prog.Statements[0].(*ast.ExprStmt)
	top, ok := stmt.Expression.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.Plus, top.Operator.Type)
	_, leftIsLiteral := top.Left.(*ast.Literal)
	assert.True(t, leftIsLiteral)
	right, ok := top.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.Star, right.Operator.Type)
}

func TestParse_VarDeclarationWithInitializer(t *testing.T) {
	prog := parse(t, "var x = 5;")
	require.Len(t, prog.Statements, 1)
	v, ok := prog.Statements[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	lit, ok := v.Initializer.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, 5.0, lit.Value)
}

func TestParse_IfElse(t *testing.T) {
	prog := parse(t, `if (x) print 1; else print 2;`)
	ifStmt, ok := prog.Statements[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_WhileLoop(t *testing.T) {
	prog := parse(t, `while (x) { x = x - 1; }`)
	w, ok := prog.Statements[0].(*ast.WhileStmt)
	require.True(t, ok)
	_, bodyIsBlock := w.Body.(*ast.Block)
	assert.True(t, bodyIsBlock)
}

func TestParse_ForLoopDesugarsToWhile(t *testing.T) {
	prog := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	outer, ok := prog.Statements[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, outer.Statements, 2)
	_, initIsVar := outer.Statements[0].(*ast.VarStmt)
	assert.True(t, initIsVar)
	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	require.True(t, ok)
	innerBlock, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, innerBlock.Statements, 2, "body followed by desugared increment")
}

func TestParse_FunctionDeclaration(t *testing.T) {
	prog := parse(t, `fun add(a, b) { return a + b; }`)
	fn, ok := prog.Statements[0].(*ast.FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
}

func TestParse_CallExpression(t *testing.T) {
	prog := parse(t, `add(1, 2);`)
	stmt := prog.Statements[0].(*ast.ExprStmt)
	call, ok := stmt.Expression.(*ast.Call)
	require.True(t, ok)
	assert.Len(t, call.Arguments, 2)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	prog := parse(t, `x = y = 1;`)
	stmt := prog.Statements[0].(*ast.ExprStmt)
	outer, ok := stmt.Expression.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", outer.Name.Lexeme)
	inner, ok := outer.Value.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "y", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetRecordsErrorAndContinues(t *testing.T) {
	tokens, _ := lexer.New(`1 = 2; var x = 3;`).Tokenize()
	p := New(tokens)
	prog := p.Parse()
	require.NotEmpty(t, p.Errors())
	// Parsing must not abort: the well-formed statement after the bad one
	// is still recovered via synchronize().
	require.Len(t, prog.Statements, 1)
	_, ok := prog.Statements[0].(*ast.VarStmt)
	assert.True(t, ok)
}

func TestParse_MissingSemicolonReportsPositionalError(t *testing.T) {
	tokens, _ := lexer.New("var x = 1").Tokenize()
	p := New(tokens)
	p.Parse()
	require.NotEmpty(t, p.Errors())
	assert.Contains(t, p.Errors()[0], "L1:")
}

func TestParse_LogicalAndOrParseAsLogicalNode(t *testing.T) {
	prog := parse(t, `print true and false or true;`)
	printStmt := prog.Statements[0].(*ast.PrintStmt)
	top, ok := printStmt.Expression.(*ast.Logical)
	require.True(t, ok)
	assert.Equal(t, lexer.Or, top.Operator.Type)
	_, leftIsAnd := top.Left.(*ast.Logical)
	assert.True(t, leftIsAnd)
}
