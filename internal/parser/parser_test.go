package parser

import (
	"testing"

	"github.com/kaynat-lang/kaynat/internal/ast"
)

func parseOK(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, errs := Parse(source, "<test>")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", source, errs)
	}
	return program
}

func TestParseVarDecl(t *testing.T) {
	program := parseOK(t, "set x to 5.")
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	decl, ok := program.Statements[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected *ast.VarDecl, got %T", program.Statements[0])
	}
	if decl.Name != "x" || decl.IsConstant {
		t.Errorf("got VarDecl %+v", decl)
	}
	num, ok := decl.Value.(*ast.NumberLiteral)
	if !ok || num.Value != 5 {
		t.Errorf("expected NumberLiteral(5), got %#v", decl.Value)
	}
}

func TestParseConstantDecl(t *testing.T) {
	program := parseOK(t, "always set pi as 3.14.")
	decl, ok := program.Statements[0].(*ast.VarDecl)
	if !ok || !decl.IsConstant || decl.Name != "pi" {
		t.Fatalf("got %#v", program.Statements[0])
	}
}

func TestParseAssignment(t *testing.T) {
	program := parseOK(t, "change x to 10.")
	assign, ok := program.Statements[0].(*ast.Assignment)
	if !ok || assign.Target != "x" {
		t.Fatalf("got %#v", program.Statements[0])
	}
}

func TestParsePropertyAssignment(t *testing.T) {
	program := parseOK(t, "set my age to 30.")
	assign, ok := program.Statements[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("got %#v", program.Statements[0])
	}
	receiver, prop, ok := ast.PropertyTarget(assign.Target)
	if !ok || receiver != "my" || prop != "age" {
		t.Errorf("PropertyTarget(%q) = %q, %q, %v", assign.Target, receiver, prop, ok)
	}
}

func TestParsePrint(t *testing.T) {
	program := parseOK(t, "say hello, world.")
	print, ok := program.Statements[0].(*ast.Print)
	if !ok || len(print.Values) != 2 {
		t.Fatalf("got %#v", program.Statements[0])
	}
}

func TestParseArithmeticStatement(t *testing.T) {
	program := parseOK(t, "add 5 to x.")
	assign, ok := program.Statements[0].(*ast.Assignment)
	if !ok || assign.Target != "x" {
		t.Fatalf("got %#v", program.Statements[0])
	}
	bin, ok := assign.Value.(*ast.BinaryOp)
	if !ok || bin.Operator != "+" {
		t.Fatalf("expected + BinaryOp, got %#v", assign.Value)
	}
}

func TestParseIfThenOtherwiseEnd(t *testing.T) {
	source := `if x is greater than 5 then.
say big.
otherwise.
say small.
end.`
	program := parseOK(t, source)
	ifStmt, ok := program.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("got %#v", program.Statements[0])
	}
	cmp, ok := ifStmt.Condition.(*ast.Comparison)
	if !ok || cmp.Operator != ">" {
		t.Fatalf("expected > comparison, got %#v", ifStmt.Condition)
	}
	if len(ifStmt.Then) != 1 || len(ifStmt.Else) != 1 {
		t.Errorf("expected 1 then and 1 else statement, got then=%d else=%d",
			len(ifStmt.Then), len(ifStmt.Else))
	}
}

func TestParseWhileLoop(t *testing.T) {
	source := `while x is less than 10.
add 1 to x.
end.`
	program := parseOK(t, source)
	while, ok := program.Statements[0].(*ast.While)
	if !ok || len(while.Body) != 1 {
		t.Fatalf("got %#v", program.Statements[0])
	}
}

func TestParseRepeatLoop(t *testing.T) {
	source := `repeat 3 times.
say hi.
end.`
	program := parseOK(t, source)
	repeat, ok := program.Statements[0].(*ast.Repeat)
	if !ok || len(repeat.Body) != 1 {
		t.Fatalf("got %#v", program.Statements[0])
	}
}

func TestParseForEach(t *testing.T) {
	source := `create a list called items.
for each item in items.
say item.
end.`
	program := parseOK(t, source)
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	forEach, ok := program.Statements[1].(*ast.ForEach)
	if !ok || forEach.Variable != "item" {
		t.Fatalf("got %#v", program.Statements[1])
	}
}

func TestParseLoopWithStepping(t *testing.T) {
	source := `loop from 1 to 10 stepping by 2.
say current.
end.`
	program := parseOK(t, source)
	loop, ok := program.Statements[0].(*ast.Loop)
	if !ok || loop.Step == nil {
		t.Fatalf("got %#v", program.Statements[0])
	}
}

func TestParseFunctionDefAndCall(t *testing.T) {
	source := `define a function called greet that takes name.
say name.
end.
call greet with World.`
	program := parseOK(t, source)
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	fn, ok := program.Statements[0].(*ast.FunctionDef)
	if !ok || fn.Name != "greet" || len(fn.Parameters) != 1 {
		t.Fatalf("got %#v", program.Statements[0])
	}
}

func TestParseCreateInstance(t *testing.T) {
	source := `define a blueprint called Dog.
it has name.
end.
create a new Dog called rex with Rex.`
	program := parseOK(t, source)
	create, ok := program.Statements[1].(*ast.CreateInstance)
	if !ok || create.ClassName != "Dog" || create.BoundName != "rex" {
		t.Fatalf("got %#v", program.Statements[1])
	}
}

func TestParseListLiteral(t *testing.T) {
	program := parseOK(t, "set items to a list containing 1, 2, 3.")
	decl := program.Statements[0].(*ast.VarDecl)
	list, ok := decl.Value.(*ast.ListLiteral)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("got %#v", decl.Value)
	}
}

func TestParseBreakAndContinue(t *testing.T) {
	source := `repeat 3 times.
stop.
skip.
end.`
	program := parseOK(t, source)
	repeat := program.Statements[0].(*ast.Repeat)
	if _, ok := repeat.Body[0].(*ast.Break); !ok {
		t.Errorf("expected Break, got %#v", repeat.Body[0])
	}
	if _, ok := repeat.Body[1].(*ast.Continue); !ok {
		t.Errorf("expected Continue, got %#v", repeat.Body[1])
	}
}

func TestParseNotEqualComparison(t *testing.T) {
	program := parseOK(t, "if x is not equal to 5 then.\nsay different.\nend.")
	ifStmt := program.Statements[0].(*ast.If)
	cmp, ok := ifStmt.Condition.(*ast.Comparison)
	if !ok || cmp.Operator != "!=" {
		t.Fatalf("expected != comparison, got %#v", ifStmt.Condition)
	}
}

func TestParseNotGreaterThanIsUngrammared(t *testing.T) {
	_, errs := Parse("if x is not greater than 5 then.\nsay big.\nend.", "<test>")
	if len(errs) == 0 {
		t.Fatal("expected a parser error for 'is not greater than', which has no grammar")
	}
}

func TestParseReservedKeywordProducesError(t *testing.T) {
	_, errs := Parse("open a window.", "<test>")
	if len(errs) == 0 {
		t.Fatal("expected a parser error for a reserved-only keyword")
	}
}

func TestParseUnexpectedTokenReportsError(t *testing.T) {
	_, errs := Parse(", , ,.", "<test>")
	if len(errs) == 0 {
		t.Fatal("expected a parser error for malformed input")
	}
}
