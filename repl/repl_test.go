package repl

import (
	"bytes"
	"testing"

	"github.com/rlox-go/rlox/eval"
	"github.com/stretchr/testify/assert"
)

func TestExecuteLine_PrintsResultValue(t *testing.T) {
	var out bytes.Buffer
	r := NewRepl("", "", "", "")
	ev := eval.NewEvaluator()
	ev.SetWriter(&out)

	r.executeLine(&out, `1 + 1;`, ev)
	assert.Contains(t, out.String(), "2")
}

func TestExecuteLine_StatePersistsAcrossLines(t *testing.T) {
	var out bytes.Buffer
	r := NewRepl("", "", "", "")
	ev := eval.NewEvaluator()
	ev.SetWriter(&out)

	r.executeLine(&out, `var x = 10;`, ev)
	out.Reset()
	r.executeLine(&out, `print x;`, ev)
	assert.Equal(t, "10\n", out.String())
}

func TestExecuteLine_ReportsRuntimeErrorAndContinues(t *testing.T) {
	var out bytes.Buffer
	r := NewRepl("", "", "", "")
	ev := eval.NewEvaluator()
	ev.SetWriter(&out)

	r.executeLine(&out, `print undefined_name;`, ev)
	assert.Contains(t, out.String(), "undefined variable")

	out.Reset()
	r.executeLine(&out, `print 1;`, ev)
	assert.Equal(t, "1\n", out.String())
}

func TestExecuteLine_ReportsParseError(t *testing.T) {
	var out bytes.Buffer
	r := NewRepl("", "", "", "")
	ev := eval.NewEvaluator()
	ev.SetWriter(&out)

	r.executeLine(&out, `var ;`, ev)
	assert.Contains(t, out.String(), "parse error")
}
