// Package repl implements the interactive shell that cmd/kaynat falls back
// to when invoked with no file argument. It is grounded on
// original_source/kaynat/repl.py: a line-buffered read-eval-print loop that
// runs each line ending in "." through the same lexer/parser/interpreter
// pipeline as the CLI's run subcommand, sharing one Interpreter (and so one
// global environment) across the whole session. A line containing "then.",
// "do." or "times." opens a block, and lines are buffered until the next
// line equal to "end.". Other block headers (while without then, function
// and blueprint definitions, for each, loop) do not open a block and run on
// their own, and nested blocks are not tracked: the first "end." closes the
// buffer.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kaynat-lang/kaynat/internal/builtins"
	"github.com/kaynat-lang/kaynat/internal/interp"
	"github.com/kaynat-lang/kaynat/internal/kerrors"
	"github.com/kaynat-lang/kaynat/internal/parser"
)

const banner = `╔═══════════════════════════════════════════════════════════╗
║                                                             ║
║              Kaynat Programming Language                    ║
║                                                             ║
║         Code that reads like poetry                        ║
║                                                             ║
║  Type 'exit.' to quit                                       ║
║  Type 'help.' for help                                      ║
║                                                             ║
╚═══════════════════════════════════════════════════════════╝
`

const help = `
Kaynat Quick Reference:
  Variables:    set x to 5.
  Print:        say hello, world.
  Input:        ask the user for name.
  If:           if x is greater than 5 then. ... end.
  While:        while x is less than 10. ... end.
  Repeat:       repeat 5 times. ... end.
  For each:     for each item in items. ... end.
  Function:     define a function called greet that takes name. ... end.
  Call:         call greet with John.
  Lists:        set items to a list containing 1, 2, 3.
  Arithmetic:   add 5 to x.
  Comments:     note.
`

// blockOpeners are substrings that mark a line as opening a multi-line
// block; the block stays open until a line equal to "end." is seen.
var blockOpeners = []string{"then.", "do.", "times."}

// REPL runs an interactive session reading from in and writing prompts,
// output, and errors to out. Trace, when non-nil, is wired into the
// interpreter's execution trace writer.
type REPL struct {
	in    *bufio.Scanner
	out   io.Writer
	trace io.Writer

	interpreter *interp.Interpreter
	buffer      []string
	inBlock     bool
}

// New builds a REPL sharing a single Interpreter across the session, with
// every built-in registered the same way the run subcommand registers them.
func New(in io.Reader, out io.Writer) *REPL {
	it := interp.New("", "<repl>")
	it.Stdout = out
	builtins.RegisterAll(it.Global)

	return &REPL{
		in:          bufio.NewScanner(in),
		out:         out,
		interpreter: it,
	}
}

// SetTrace wires an execution trace writer into the underlying interpreter.
func (r *REPL) SetTrace(w io.Writer) {
	r.trace = w
	r.interpreter.Trace = w
}

// Run executes the read-eval-print loop until EOF or an exit command.
func (r *REPL) Run() error {
	fmt.Fprint(r.out, banner)

	for {
		fmt.Fprint(r.out, r.prompt())

		if !r.in.Scan() {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return nil
		}
		line := r.in.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		trimmed := strings.ToLower(strings.TrimSpace(line))
		if trimmed == "exit." || trimmed == "quit." || trimmed == "bye." {
			fmt.Fprintln(r.out, "Goodbye!")
			return nil
		}
		if trimmed == "help." {
			fmt.Fprint(r.out, help)
			continue
		}

		r.buffer = append(r.buffer, line)

		if containsAny(trimmed, blockOpeners) {
			r.inBlock = true
			continue
		}
		if trimmed == "end." {
			r.inBlock = false
		}

		if !r.inBlock && strings.HasSuffix(strings.TrimSpace(line), ".") {
			r.execute()
		}
	}
}

func (r *REPL) prompt() string {
	if r.inBlock {
		return "...  "
	}
	return ">>>  "
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// execute runs the buffered source through the same pipeline as the CLI's
// run subcommand and reports lexer/parser/runtime errors without killing
// the session.
func (r *REPL) execute() {
	source := strings.Join(r.buffer, "\n")
	r.buffer = nil

	program, errs := parser.Parse(source, "<repl>")
	if len(errs) > 0 {
		fmt.Fprint(r.out, kerrors.FormatErrors(errs, false))
		return
	}

	if err := r.interpreter.Run(program); err != nil {
		if pe, ok := err.(*kerrors.PositionedError); ok {
			fmt.Fprintln(r.out, pe.Format(false))
			return
		}
		fmt.Fprintf(r.out, "Error: %v\n", err)
	}
}
