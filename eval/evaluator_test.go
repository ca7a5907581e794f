package eval

import (
	"bytes"
	"testing"

	"github.com/rlox-go/rlox/lexer"
	"github.com/rlox-go/rlox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run lexes, parses, and evaluates src against a fresh Evaluator,
// returning everything the program printed.
func run(t *testing.T, src string) string {
	t.Helper()
	lex := lexer.NewLexer(src)
	var tokens []lexer.Token
	for {
		tok, err := lex.NextToken()
		require.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.Type == lexer.EOF {
			break
		}
	}
	p := parser.NewParser(tokens)
	decls := p.Parse()
	require.Empty(t, p.Errors)

	var out bytes.Buffer
	ev := NewEvaluator()
	ev.SetWriter(&out)
	_, err := ev.Interpret(decls)
	require.NoError(t, err)
	return out.String()
}

func runErr(t *testing.T, src string) error {
	t.Helper()
	lex := lexer.NewLexer(src)
	var tokens []lexer.Token
	for {
		tok, err := lex.NextToken()
		require.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.Type == lexer.EOF {
			break
		}
	}
	p := parser.NewParser(tokens)
	decls := p.Parse()
	require.Empty(t, p.Errors)

	var out bytes.Buffer
	ev := NewEvaluator()
	ev.SetWriter(&out)
	_, err := ev.Interpret(decls)
	return err
}

func TestScenario_Arithmetic(t *testing.T) {
	assert.Equal(t, "3\n", run(t, `var a = 1; var b = 2; print a + b;`))
}

func TestScenario_Shadowing(t *testing.T) {
	assert.Equal(t, "lo\nhi\n", run(t, `var a = "hi"; { var a = "lo"; print a; } print a;`))
}

func TestScenario_WhileLoop(t *testing.T) {
	assert.Equal(t, "0\n1\n2\n", run(t, `var i = 0; while (i < 3) { print i; i = i + 1; }`))
}

func TestScenario_ClosureCapture(t *testing.T) {
	src := `fun make(n) { fun inner() { return n; } return inner; } var f = make(42); print f();`
	assert.Equal(t, "42\n", run(t, src))
}

func TestScenario_ShortCircuitOr(t *testing.T) {
	src := `if (true or crash) print "ok"; else print "no";`
	assert.Equal(t, "ok\n", run(t, src))
}

func TestScenario_BreakLocality(t *testing.T) {
	src := `var i = 0; while (i < 10) { if (i == 3) break; print i; i = i + 1; }`
	assert.Equal(t, "0\n1\n2\n", run(t, src))
}

func TestScenario_PlusTypeMismatch(t *testing.T) {
	err := runErr(t, `print 1 + "a";`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid operands for plus operator")
}

func TestP1_ScopeIsolation(t *testing.T) {
	err := runErr(t, `{ var x = 1; } print x;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable")
}

func TestP2_ShadowingLeavesOuterUnchanged(t *testing.T) {
	assert.Equal(t, "1\n", run(t, `var x = 1; { var x = 2; } print x;`))
}

func TestP3_NearestMutation(t *testing.T) {
	src := `var x = 1; { x = 2; } print x;`
	assert.Equal(t, "2\n", run(t, src))
}

func TestP3_NearestMutationDoesNotLeakIntoNewBinding(t *testing.T) {
	src := `var x = "outer"; fun f() { var x = "inner"; x = "changed"; } f(); print x;`
	assert.Equal(t, "outer\n", run(t, src))
}

func TestP4_ClosureMutationObservedAcrossCalls(t *testing.T) {
	src := `fun counter() {
  var n = 0;
  fun inc() { n = n + 1; return n; }
  return inc;
}
var c = counter();
print c();
print c();
print c();`
	assert.Equal(t, "1\n2\n3\n", run(t, src))
}

func TestP5_AndShortCircuits(t *testing.T) {
	src := `if (false and crash) print "unreachable"; else print "ok";`
	assert.Equal(t, "ok\n", run(t, src))
}

func TestP6_BreakOutsideLoopIsError(t *testing.T) {
	err := runErr(t, `break;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "break outside of loop")
}

func TestP7_ReturnTerminatesThroughNestedBlocks(t *testing.T) {
	src := `fun f() {
  var i = 0;
  while (i < 10) {
    if (i == 2) { return i; }
    i = i + 1;
  }
  return -1;
}
print f();`
	assert.Equal(t, "2\n", run(t, src))
}

func TestP8_ArityMismatchIsError(t *testing.T) {
	err := runErr(t, `fun add(a, b) { return a + b; } add(1);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 arguments but got 1")
}

func TestUninitializedReadIsError(t *testing.T) {
	err := runErr(t, `var x; print x;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uninitialized variable")
}

func TestAssignToUnboundNameIsError(t *testing.T) {
	err := runErr(t, `x = 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assignment to unbound name")
}

func TestDivisionByZeroIsNotAnError(t *testing.T) {
	assert.Equal(t, "+Inf\n", run(t, `print 1 / 0;`))
}

func TestClockBuiltinReturnsNumber(t *testing.T) {
	out := run(t, `print clock() >= 0;`)
	assert.Equal(t, "true\n", out)
}

func TestEqualityAcrossVariants(t *testing.T) {
	assert.Equal(t, "false\n", run(t, `print 1 == "1";`))
	assert.Equal(t, "true\n", run(t, `print nil == nil;`))
	assert.Equal(t, "true\n", run(t, `print "a" == "a";`))
}
