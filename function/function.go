// Package function implements golox's callable values. A Function
// captures the *environment.Environment active at its declaration, by
// pointer, not by snapshot, the same way the teacher's evaluator comments
// "reference the current scope directly, not a copy" when registering a
// function object, so closures observe later mutation of variables from
// their defining scope.
package function

import (
	"fmt"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/environment"
	"github.com/golox-lang/golox/value"
)

// Function is a callable golox value produced by evaluating a
// FunctionStmt. It implements value.Value via String/Truthy below.
type Function struct {
	Decl    *ast.FunctionStmt
	Closure *environment.Environment
}

// New wraps a parsed function declaration together with the environment
// it was declared in.
func New(decl *ast.FunctionStmt, closure *environment.Environment) *Function {
	return &Function{Decl: decl, Closure: closure}
}

func (f *Function) String() string {
	return fmt.Sprintf("<function %s>", f.Decl.Name.Lexeme)
}

func (f *Function) Truthy() bool { return true }

// Equal compares functions by identity: same declaration node and same
// captured environment. This is stricter than the original Rust source's
// derived structural equality, which compares two Function values with
// identical source as equal regardless of environment; golox treats two
// closures over independent calls as distinct values even when their
// bodies are textually identical.
func (f *Function) Equal(other value.Value) bool {
	o, ok := other.(*Function)
	if !ok {
		return false
	}
	return f.Decl == o.Decl && f.Closure == o.Closure
}
