// Command kaynat is the interpreter's command-line entry point: run a
// script file or inline expression, inspect lexer/parser output for
// debugging, or fall back to the interactive shell when given no file.
package main

import (
	"fmt"
	"os"

	"github.com/kaynat-lang/kaynat/cmd/kaynat/cmd"
	"github.com/kaynat-lang/kaynat/internal/repl"
)

func main() {
	if len(os.Args) == 1 {
		r := repl.New(os.Stdin, os.Stdout)
		if err := r.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
