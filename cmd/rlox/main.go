// Command rlox is the rlox interpreter's entry point: with no
// arguments it starts the interactive REPL, with one argument it
// prints help (--help, -h) or version (--version, -v) information or
// otherwise executes that file, and with any other argument count it
// prints a usage error.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rlox-go/rlox/repl"
	"github.com/rlox-go/rlox/runner"
)

const version = "v0.1.0"

const banner = `          ___
   _____ / / _____  _  __
  / ___// / / __ \| |/_/
 / /   / /_/ /_/ />  <
/_/   /_/\____/_/|_|
`

const line = "----------------------------------------------------------------"

const prompt = "rlox >>> "

var (
	cyanColor = color.New(color.FgCyan)
	redColor  = color.New(color.FgRed)
)

func main() {
	switch len(os.Args) {
	case 1:
		repler := repl.NewRepl(banner, version, line, prompt)
		repler.Start(os.Stdout)
	case 2:
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
		case "--version", "-v":
			showVersion()
		default:
			if !runner.RunFile(os.Args[1], os.Stdout, os.Stderr) {
				os.Exit(1)
			}
		}
	default:
		redColor.Fprintln(os.Stderr, "usage: rlox [script]")
		os.Exit(64)
	}
}

func showHelp() {
	cyanColor.Println("rlox - a small tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  rlox                 Start the interactive REPL")
	fmt.Println("  rlox <path>          Execute an rlox source file")
	fmt.Println("  rlox --help          Display this help message")
	fmt.Println("  rlox --version       Display version information")
}

func showVersion() {
	cyanColor.Printf("rlox %s\n", version)
}
