package eval

import "github.com/golox-lang/golox/value"

// Completion is how Execute reports non-local control flow: a `return`
// statement unwinds to the nearest enclosing call without going through
// Go's error type, mirroring the original Rust source's RetErr enum
// (runner/statement.rs) rather than the teacher's objects.ReturnValue
// wrapper-object trick. Ordinary statements produce completionNormal.
type completionKind int

const (
	completionNormal completionKind = iota
	completionReturn
)

// Completion threads through Execute the way a Go error threads through a
// fallible function, except "returning" is not a failure: it is valid
// control flow that must unwind through every enclosing block and loop
// until it reaches the call that started the current function.
type Completion struct {
	kind  completionKind
	value value.Value
}

var normalCompletion = Completion{kind: completionNormal}

func returnCompletion(v value.Value) Completion {
	return Completion{kind: completionReturn, value: v}
}

// IsReturn reports whether this completion is unwinding a `return`.
func (c Completion) IsReturn() bool { return c.kind == completionReturn }

// Value returns the value being returned; only meaningful when IsReturn()
// is true.
func (c Completion) Value() value.Value { return c.value }
