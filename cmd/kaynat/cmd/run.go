package cmd

import (
	"fmt"
	"os"

	"github.com/kaynat-lang/kaynat/internal/builtins"
	"github.com/kaynat-lang/kaynat/internal/interp"
	"github.com/kaynat-lang/kaynat/internal/kerrors"
	"github.com/kaynat-lang/kaynat/internal/parser"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Kaynat file or expression",
	Long: `Execute a Kaynat program from a file or inline expression.

Examples:
  # Run a script file
  kaynat run greet.kaynat

  # Evaluate inline code
  kaynat run -e "say hello, world."

  # Run with AST dump (for debugging)
  kaynat run --dump-ast greet.kaynat

  # Run with an execution trace
  kaynat run --trace greet.kaynat`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace statement execution (for debugging)")
}

func runScript(cmd *cobra.Command, args []string) error {
	var input string
	var filename string

	if evalExpr != "" {
		input = evalExpr
		filename = "<eval>"
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	program, errs := parser.Parse(input, filename)
	if len(errs) > 0 {
		fmt.Fprint(os.Stderr, kerrors.FormatErrors(errs, true))
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println("====")
		dumpASTNode(program, 0)
		fmt.Println()
	}

	interpreter := interp.New(input, filename)
	builtins.RegisterAll(interpreter.Global)

	if trace {
		interpreter.Trace = os.Stderr
	}

	if err := interpreter.Run(program); err != nil {
		if pe, ok := err.(*kerrors.PositionedError); ok {
			fmt.Fprint(os.Stderr, pe.Format(true))
			fmt.Fprintln(os.Stderr)
			return fmt.Errorf("execution failed")
		}
		return err
	}

	return nil
}
