package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golox-lang/golox/config"
	"github.com/golox-lang/golox/environment"
	"github.com/golox-lang/golox/eval"
)

func TestEvalLine_PersistsStateAcrossCalls(t *testing.T) {
	r := New(config.Default())
	env := environment.New()
	var out bytes.Buffer
	e := &eval.Evaluator{Out: &out}

	r.evalLine("var x = 1;", env, e, &out)
	r.evalLine("x = x + 1;", env, e, &out)
	r.evalLine("print x;", env, e, &out)

	assert.Equal(t, "2\n", out.String())
}

func TestEvalLine_ParseErrorIsReportedNotFatal(t *testing.T) {
	r := New(config.Default())
	env := environment.New()
	var out bytes.Buffer
	e := &eval.Evaluator{Out: &out}

	r.evalLine("var;", env, e, &out)
	assert.Contains(t, out.String(), "L1:")

	out.Reset()
	r.evalLine("print 1;", env, e, &out)
	assert.Equal(t, "1\n", out.String())
}
