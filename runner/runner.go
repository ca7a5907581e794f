// Package runner executes an rlox source file: read, lex, parse,
// evaluate, stopping at the first stage that fails and reporting its
// errors (the lex or runtime error, or every collected parse error) to
// a caller-supplied writer.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/rlox-go/rlox/eval"
	"github.com/rlox-go/rlox/lexer"
	"github.com/rlox-go/rlox/parser"
)

// RunFile reads path, runs it through the lexer, parser, and
// evaluator, and writes `print` output to out and errors to errOut.
// It returns false if any stage failed, so callers can choose a
// non-zero process exit code.
func RunFile(path string, out, errOut io.Writer) bool {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "could not read file '%s': %v\n", path, err)
		return false
	}
	return Run(string(src), out, errOut)
}

// Run lexes, parses, and evaluates src in a fresh Evaluator. A panic
// escaping the lexer, parser, or evaluator (an interpreter bug, not a
// user-level error) is caught and reported the same way as any other
// failure, so the caller still gets a clean false return instead of a
// crash.
func Run(src string, out, errOut io.Writer) (ok bool) {
	defer func() {
		if recovered := recover(); recovered != nil {
			fmt.Fprintf(errOut, "[runtime error] %v\n", recovered)
			ok = false
		}
	}()

	lex := lexer.NewLexer(src)
	var tokens []lexer.Token
	for {
		tok, err := lex.NextToken()
		if err != nil {
			fmt.Fprintln(errOut, err)
			return false
		}
		tokens = append(tokens, tok)
		if tok.Type == lexer.EOF {
			break
		}
	}

	par := parser.NewParser(tokens)
	decls := par.Parse()
	if len(par.Errors) > 0 {
		for _, msg := range par.Errors {
			fmt.Fprintln(errOut, msg)
		}
		return false
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(out)
	if _, err := evaluator.Interpret(decls); err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	return true
}
