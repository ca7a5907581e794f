// Package repl implements the interactive read-eval-print loop for
// rlox. It provides line editing and history via readline and colored
// feedback for results and errors.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/rlox-go/rlox/eval"
	"github.com/rlox-go/rlox/lexer"
	"github.com/rlox-go/rlox/parser"
	"github.com/rlox-go/rlox/value"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session: banner text plus the
// prompt readline displays.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// NewRepl creates a Repl ready to Start.
func NewRepl(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and short usage help.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until the user exits or readline hits EOF.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		r.executeLine(writer, line, evaluator)
	}
}

// executeLine lexes, parses, and evaluates a single line of input,
// printing the result (if any) or the error, and leaving evaluator's
// global scope intact for the next line. A panic escaping the lexer,
// parser, or evaluator (an interpreter bug, not a user-level error) is
// caught here so one bad line cannot take down the whole session.
func (r *Repl) executeLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", recovered)
		}
	}()

	lex := lexer.NewLexer(line)
	var tokens []lexer.Token
	for {
		tok, err := lex.NextToken()
		if err != nil {
			redColor.Fprintf(writer, "%s\n", err)
			return
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
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result, err := evaluator.Interpret(decls)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	if _, isNil := result.(value.Nil); !isNil {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
