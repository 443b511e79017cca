// Package eval walks an *ast.Program and produces side effects (print) and
// runtime errors. Dispatch is a type switch over concrete ast node types,
// mirroring the teacher's eval/eval_expressions.go Eval(n parser.Node)
// function rather than its separate (and, on inspection, never used for
// this purpose) parser.NodeVisitor interface: a type switch is less
// ceremony than a visitor method per node type when there is exactly one
// evaluator.
package eval

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/environment"
	"github.com/golox-lang/golox/function"
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/value"
)

// Evaluator holds the interpreter's output sink; everything else
// (variable state) lives in the *environment.Environment threaded through
// every call, so a single Evaluator can safely run multiple independent
// environments (e.g. one per --watch re-run).
type Evaluator struct {
	Out io.Writer
}

// New creates an Evaluator that writes `print` output to os.Stdout.
func New() *Evaluator {
	return &Evaluator{Out: os.Stdout}
}

// Run executes every statement in prog against env in order, stopping at
// the first runtime error (matching spec: a runtime error aborts the
// remainder of the program). A `return` reaching this level (outside any
// function call) is itself an error, matching
// original_source/src/lib/runner/mod.rs's Program::run, which rejects a
// stray Return the same way.
func (e *Evaluator) Run(prog *ast.Program, env *environment.Environment) error {
	for _, stmt := range prog.Statements {
		c, err := e.Execute(stmt, env)
		if err != nil {
			return err
		}
		if c.IsReturn() {
			return errors.New("Cannot have return outside a function")
		}
	}
	return nil
}

// Execute runs one statement, returning a Completion so `return` can
// unwind through nested blocks/loops without Go-level panics.
func (e *Evaluator) Execute(stmt ast.Stmt, env *environment.Environment) (Completion, error) {
	switch n := stmt.(type) {
	case *ast.ExprStmt:
		_, err := e.Evaluate(n.Expression, env)
		if err != nil {
			return normalCompletion, err
		}
		return normalCompletion, nil

	case *ast.PrintStmt:
		v, err := e.Evaluate(n.Expression, env)
		if err != nil {
			return normalCompletion, err
		}
		fmt.Fprintln(e.Out, v.String())
		return normalCompletion, nil

	case *ast.VarStmt:
		var v value.Value = value.NilValue
		if n.Initializer != nil {
			var err error
			v, err = e.Evaluate(n.Initializer, env)
			if err != nil {
				return normalCompletion, err
			}
		}
		env.Declare(n.Name.Lexeme, v)
		return normalCompletion, nil

	case *ast.Block:
		return e.executeBlock(n.Statements, env.Append())

	case *ast.IfStmt:
		cond, err := e.Evaluate(n.Condition, env)
		if err != nil {
			return normalCompletion, err
		}
		if cond.Truthy() {
			return e.Execute(n.Then, env)
		}
		if n.Else != nil {
			return e.Execute(n.Else, env)
		}
		return normalCompletion, nil

	case *ast.WhileStmt:
		for {
			cond, err := e.Evaluate(n.Condition, env)
			if err != nil {
				return normalCompletion, err
			}
			if !cond.Truthy() {
				return normalCompletion, nil
			}
			c, err := e.Execute(n.Body, env)
			if err != nil {
				return normalCompletion, err
			}
			if c.IsReturn() {
				return c, nil
			}
		}

	case *ast.FunctionStmt:
		fn := function.New(n, env)
		env.Declare(n.Name.Lexeme, fn)
		return normalCompletion, nil

	case *ast.ReturnStmt:
		var v value.Value = value.NilValue
		if n.Value != nil {
			var err error
			v, err = e.Evaluate(n.Value, env)
			if err != nil {
				return normalCompletion, err
			}
		}
		return returnCompletion(v), nil

	default:
		return normalCompletion, fmt.Errorf("eval: unhandled statement type %T", n)
	}
}

// executeBlock runs a sequence of statements in env, stopping and
// propagating the first Return completion or error it encounters.
func (e *Evaluator) executeBlock(stmts []ast.Stmt, env *environment.Environment) (Completion, error) {
	for _, stmt := range stmts {
		c, err := e.Execute(stmt, env)
		if err != nil {
			return normalCompletion, err
		}
		if c.IsReturn() {
			return c, nil
		}
	}
	return normalCompletion, nil
}

// Evaluate computes the value of an expression.
func (e *Evaluator) Evaluate(expr ast.Expr, env *environment.Environment) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil

	case *ast.Grouping:
		return e.Evaluate(n.Expression, env)

	case *ast.Variable:
		v, err := env.Get(n.Name.Lexeme)
		if err != nil {
			return nil, newRuntimeError(n.Name, "%s", err.Error())
		}
		return v, nil

	case *ast.Assign:
		v, err := e.Evaluate(n.Value, env)
		if err != nil {
			return nil, err
		}
		if err := env.Assign(n.Name.Lexeme, v); err != nil {
			return nil, newRuntimeError(n.Name, "%s", err.Error())
		}
		return v, nil

	case *ast.Unary:
		return e.evalUnary(n, env)

	case *ast.Binary:
		return e.evalBinary(n, env)

	case *ast.Logical:
		return e.evalLogical(n, env)

	case *ast.Call:
		return e.evalCall(n, env)

	default:
		return nil, fmt.Errorf("eval: unhandled expression type %T", n)
	}
}

// literalValue converts a parser-time Go literal (float64/string/bool/nil)
// into a runtime value.Value.
func literalValue(v interface{}) value.Value {
	switch lv := v.(type) {
	case float64:
		return value.Number(lv)
	case string:
		return value.String(lv)
	case bool:
		return value.Bool(lv)
	case nil:
		return value.NilValue
	default:
		return value.NilValue
	}
}

func (e *Evaluator) evalUnary(n *ast.Unary, env *environment.Environment) (value.Value, error) {
	right, err := e.Evaluate(n.Right, env)
	if err != nil {
		return nil, err
	}
	switch n.Operator.Type {
	case lexer.Minus:
		num, ok := right.(value.Number)
		if !ok {
			return nil, newRuntimeError(n.Operator, "Can't apply unary operator '-' to %s", right.String())
		}
		return -num, nil
	case lexer.Bang:
		return value.Bool(!right.Truthy()), nil
	default:
		return nil, newRuntimeError(n.Operator, "Unknown unary operator '%s'", n.Operator.Lexeme)
	}
}

func (e *Evaluator) evalLogical(n *ast.Logical, env *environment.Environment) (value.Value, error) {
	left, err := e.Evaluate(n.Left, env)
	if err != nil {
		return nil, err
	}
	// Short-circuit: the right operand is only evaluated when the left
	// side doesn't already decide the result.
	if n.Operator.Type == lexer.Or {
		if left.Truthy() {
			return left, nil
		}
	} else {
		if !left.Truthy() {
			return left, nil
		}
	}
	return e.Evaluate(n.Right, env)
}

func (e *Evaluator) evalBinary(n *ast.Binary, env *environment.Environment) (value.Value, error) {
	left, err := e.Evaluate(n.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := e.Evaluate(n.Right, env)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Type {
	case lexer.EqualEqual:
		return value.Bool(value.Equal(left, right)), nil
	case lexer.BangEqual:
		return value.Bool(!value.Equal(left, right)), nil
	}

	switch l := left.(type) {
	case value.Number:
		r, ok := right.(value.Number)
		if !ok {
			return nil, notDefinedError(n.Operator, left, right)
		}
		return e.evalNumberBinary(n.Operator, l, r)
	case value.String:
		if n.Operator.Type == lexer.Plus {
			r, ok := right.(value.String)
			if !ok {
				return nil, notDefinedError(n.Operator, left, right)
			}
			return l + r, nil
		}
		return nil, notDefinedError(n.Operator, left, right)
	default:
		return nil, notDefinedError(n.Operator, left, right)
	}
}

// evalNumberBinary implements arithmetic/comparison operators over two
// numbers. Division by zero is never an error: it yields IEEE-754
// +/-Inf or NaN, matching Go's native float64 division and the original
// Rust source's unchecked `l / r`.
func (e *Evaluator) evalNumberBinary(op lexer.Token, l, r value.Number) (value.Value, error) {
	switch op.Type {
	case lexer.Plus:
		return l + r, nil
	case lexer.Minus:
		return l - r, nil
	case lexer.Star:
		return l * r, nil
	case lexer.Slash:
		return value.Number(float64(l) / float64(r)), nil
	case lexer.Greater:
		return value.Bool(l > r), nil
	case lexer.GreaterEqual:
		return value.Bool(l >= r), nil
	case lexer.Less:
		return value.Bool(l < r), nil
	case lexer.LessEqual:
		return value.Bool(l <= r), nil
	default:
		return nil, newRuntimeError(op, "Unknown binary operator '%s'", op.Lexeme)
	}
}

func notDefinedError(op lexer.Token, l, r value.Value) error {
	return newRuntimeError(op, "'%s' operator is not defined for %s and %s", op.Lexeme, l.String(), r.String())
}

// evalCall resolves the callee, then binds arguments to parameters
// positionally. Arity is never checked: extra arguments are dropped and
// missing parameters are simply never declared in the call scope (any
// later reference to one produces the ordinary "not defined" runtime
// error), matching original_source's Call::evaluate zip-based binding
// rather than the teacher's strict arity check in eval/eval_controls.go.
func (e *Evaluator) evalCall(n *ast.Call, env *environment.Environment) (value.Value, error) {
	calleeVal, err := e.Evaluate(n.Callee, env)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(*function.Function)
	if !ok {
		return nil, newRuntimeError(n.Paren, "%s is not callable", calleeVal.String())
	}

	// Zip params with arguments exactly like original_source's
	// Call::evaluate: only the arguments that will actually be bound are
	// evaluated, so a surplus argument with a side effect or error (e.g.
	// f(1, boom()) where f takes one parameter) is never evaluated at all,
	// not merely discarded after evaluation.
	bound := len(fn.Decl.Params)
	if len(n.Arguments) < bound {
		bound = len(n.Arguments)
	}

	callScope := fn.Closure.Append()
	for i := 0; i < bound; i++ {
		v, err := e.Evaluate(n.Arguments[i], env)
		if err != nil {
			return nil, err
		}
		callScope.Declare(fn.Decl.Params[i].Lexeme, v)
	}

	c, err := e.executeBlock(fn.Decl.Body, callScope)
	if err != nil {
		return nil, err
	}
	if c.IsReturn() {
		return c.Value(), nil
	}
	return value.NilValue, nil
}
