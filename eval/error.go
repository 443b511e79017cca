package eval

import (
	"fmt"

	"github.com/golox-lang/golox/lexer"
)

// RuntimeError is golox's third diagnostic class (alongside lexical and
// parse errors), formatted identically: "L{line}:{col} {message}". Unlike
// Completion, a RuntimeError genuinely aborts evaluation of the current
// statement/expression tree; it is a Go error because, unlike `return`, it
// is never meant to be caught by golox code itself (the language has no
// try/catch).
type RuntimeError struct {
	Line    int
	Column  int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("L%d:%d %s", e.Line, e.Column, e.Message)
}

func newRuntimeError(tok lexer.Token, format string, args ...interface{}) error {
	return &RuntimeError{Line: tok.Line, Column: tok.Column, Message: fmt.Sprintf(format, args...)}
}
