package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kaynat-lang/kaynat/internal/ast"
	"github.com/kaynat-lang/kaynat/internal/kerrors"
	"github.com/kaynat-lang/kaynat/internal/parser"
	"github.com/spf13/cobra"
)

var parseExpression bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Kaynat source and display the AST",
	Long: `Parse Kaynat source code and display its Abstract Syntax Tree.

If no file is provided, reads from stdin.
Use -e to parse a single inline statement.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an inline statement from the command line")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input string
	filename := "<stdin>"

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
		filename = "<eval>"
	case len(args) > 0:
		filename = args[0]
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	program, errs := parser.Parse(input, filename)
	if len(errs) > 0 {
		fmt.Fprint(os.Stderr, kerrors.FormatErrors(errs, true))
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	fmt.Println("Abstract Syntax Tree:")
	fmt.Println("======================")
	dumpASTNode(program, 0)

	return nil
}

func dumpASTNode(node ast.Node, indent int) {
	prefix := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *ast.Program:
		fmt.Printf("%sProgram (%d statements)\n", prefix, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}

	case *ast.VarDecl:
		fmt.Printf("%sVarDecl %s (constant=%v)\n", prefix, n.Name, n.IsConstant)
		dumpASTNode(n.Value, indent+1)

	case *ast.Assignment:
		fmt.Printf("%sAssignment %s\n", prefix, n.Target)
		dumpASTNode(n.Value, indent+1)

	case *ast.Print:
		fmt.Printf("%sPrint (%d values)\n", prefix, len(n.Values))
		for _, v := range n.Values {
			dumpASTNode(v, indent+1)
		}

	case *ast.Input:
		fmt.Printf("%sInput %s\n", prefix, n.Variable)

	case *ast.Comment:
		fmt.Printf("%sComment\n", prefix)

	case *ast.If:
		fmt.Printf("%sIf\n", prefix)
		fmt.Printf("%s  Condition:\n", prefix)
		dumpASTNode(n.Condition, indent+2)
		fmt.Printf("%s  Then (%d statements):\n", prefix, len(n.Then))
		for _, s := range n.Then {
			dumpASTNode(s, indent+2)
		}
		for i, elif := range n.Elifs {
			fmt.Printf("%s  Elif[%d]:\n", prefix, i)
			dumpASTNode(elif.Condition, indent+2)
			for _, s := range elif.Body {
				dumpASTNode(s, indent+2)
			}
		}
		if n.Else != nil {
			fmt.Printf("%s  Else (%d statements):\n", prefix, len(n.Else))
			for _, s := range n.Else {
				dumpASTNode(s, indent+2)
			}
		}

	case *ast.While:
		fmt.Printf("%sWhile\n", prefix)
		dumpASTNode(n.Condition, indent+1)
		for _, s := range n.Body {
			dumpASTNode(s, indent+1)
		}

	case *ast.Repeat:
		fmt.Printf("%sRepeat\n", prefix)
		dumpASTNode(n.Count, indent+1)
		for _, s := range n.Body {
			dumpASTNode(s, indent+1)
		}

	case *ast.ForEach:
		fmt.Printf("%sForEach %s\n", prefix, n.Variable)
		dumpASTNode(n.Iterable, indent+1)
		for _, s := range n.Body {
			dumpASTNode(s, indent+1)
		}

	case *ast.Loop:
		fmt.Printf("%sLoop\n", prefix)
		dumpASTNode(n.Start, indent+1)
		dumpASTNode(n.End, indent+1)
		if n.Step != nil {
			dumpASTNode(n.Step, indent+1)
		}
		for _, s := range n.Body {
			dumpASTNode(s, indent+1)
		}

	case *ast.Break:
		fmt.Printf("%sBreak\n", prefix)

	case *ast.Continue:
		fmt.Printf("%sContinue\n", prefix)

	case *ast.Return:
		fmt.Printf("%sReturn\n", prefix)
		if n.Value != nil {
			dumpASTNode(n.Value, indent+1)
		}

	case *ast.FunctionDef:
		fmt.Printf("%sFunctionDef %s(%s)\n", prefix, n.Name, strings.Join(n.Parameters, ", "))
		for _, s := range n.Body {
			dumpASTNode(s, indent+1)
		}

	case *ast.FunctionCall:
		fmt.Printf("%sFunctionCall %s (%d args)\n", prefix, n.Name, len(n.Arguments))
		for _, a := range n.Arguments {
			dumpASTNode(a, indent+1)
		}

	case *ast.ClassDef:
		fmt.Printf("%sClassDef %s (parent=%q abstract=%v)\n", prefix, n.Name, n.Parent, n.IsAbstract)
		for _, m := range n.Methods {
			dumpASTNode(m, indent+1)
		}

	case *ast.ContractDef:
		fmt.Printf("%sContractDef %s (requires %v)\n", prefix, n.Name, n.RequiredMethods)

	case *ast.CreateInstance:
		fmt.Printf("%sCreateInstance %s as %s (%d args)\n", prefix, n.ClassName, n.BoundName, len(n.Arguments))
		for _, a := range n.Arguments {
			dumpASTNode(a, indent+1)
		}

	case *ast.MethodCall:
		fmt.Printf("%sMethodCall %s on %s (%d args)\n", prefix, n.Method, n.Object, len(n.Arguments))
		for _, a := range n.Arguments {
			dumpASTNode(a, indent+1)
		}

	case *ast.NumberLiteral:
		fmt.Printf("%sNumberLiteral: %g\n", prefix, n.Value)

	case *ast.StringLiteral:
		fmt.Printf("%sStringLiteral: %q\n", prefix, n.Value)

	case *ast.BooleanLiteral:
		fmt.Printf("%sBooleanLiteral: %v\n", prefix, n.Value)

	case *ast.NullLiteral:
		fmt.Printf("%sNullLiteral\n", prefix)

	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", prefix, n.Name)

	case *ast.PropertyAccess:
		fmt.Printf("%sPropertyAccess: %s %s\n", prefix, n.Receiver, n.Property)

	case *ast.ListLiteral:
		fmt.Printf("%sListLiteral (%d elements)\n", prefix, len(n.Elements))
		for _, e := range n.Elements {
			dumpASTNode(e, indent+1)
		}

	case *ast.MapLiteral:
		fmt.Printf("%sMapLiteral (%d pairs)\n", prefix, len(n.Pairs))
		for _, p := range n.Pairs {
			dumpASTNode(p.Key, indent+1)
			dumpASTNode(p.Value, indent+1)
		}

	case *ast.BinaryOp:
		fmt.Printf("%sBinaryOp (%s)\n", prefix, n.Operator)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)

	case *ast.UnaryOp:
		fmt.Printf("%sUnaryOp (%s)\n", prefix, n.Operator)
		dumpASTNode(n.Operand, indent+1)

	case *ast.Comparison:
		fmt.Printf("%sComparison (%s)\n", prefix, n.Operator)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)

	case *ast.LogicalOp:
		fmt.Printf("%sLogicalOp (%s)\n", prefix, n.Operator)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)

	default:
		fmt.Printf("%s%T\n", prefix, node)
	}
}
