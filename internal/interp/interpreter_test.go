package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kaynat-lang/kaynat/internal/kerrors"
	"github.com/kaynat-lang/kaynat/internal/parser"
)

// run lexes, parses, and executes source against a fresh Interpreter,
// returning everything written to Stdout. Parse errors fail the test
// immediately since they're not what these tests exercise.
func run(t *testing.T, source string) string {
	t.Helper()

	program, errs := parser.Parse(source, "<test>")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", source, errs)
	}

	var out bytes.Buffer
	it := New(source, "<test>")
	it.Stdout = &out

	if err := it.Run(program); err != nil {
		t.Fatalf("unexpected runtime error for %q: %v", source, err)
	}

	return out.String()
}

func TestRunPrintLiteral(t *testing.T) {
	got := run(t, "say hello, world.")
	want := "hello world\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunVarDeclAndPrint(t *testing.T) {
	got := run(t, "set x to 5.\nsay x.\n")
	if strings.TrimSpace(got) != "5" {
		t.Errorf("got %q", got)
	}
}

func TestRunArithmeticStatement(t *testing.T) {
	got := run(t, "set x to 5.\nadd 3 to x.\nsay x.\n")
	if strings.TrimSpace(got) != "8" {
		t.Errorf("got %q", got)
	}
}

func TestRunIfElseBranch(t *testing.T) {
	source := `set x to 3.
if x is greater than 5 then.
say big.
otherwise.
say small.
end.`
	got := run(t, source)
	if strings.TrimSpace(got) != "small" {
		t.Errorf("got %q", got)
	}
}

func TestRunWhileLoop(t *testing.T) {
	source := `set x to 0.
while x is less than 3.
say x.
add 1 to x.
end.`
	got := run(t, source)
	want := "0\n1\n2\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunRepeatLoop(t *testing.T) {
	got := run(t, "repeat 3 times.\nsay hi.\nend.")
	want := "hi\nhi\nhi\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunLoopFromToStepping(t *testing.T) {
	got := run(t, "loop from 1 to 5 stepping by 2.\nsay current.\nend.")
	want := "1\n3\n5\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunForEachList(t *testing.T) {
	source := `set items to a list containing 1, 2, 3.
for each item in items.
say item.
end.`
	got := run(t, source)
	want := "1\n2\n3\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunFunctionDefAndCall(t *testing.T) {
	source := `define a function called greet that takes name.
say name.
end.
call greet with World.`
	got := run(t, source)
	if strings.TrimSpace(got) != "World" {
		t.Errorf("got %q", got)
	}
}

func TestRunFunctionReturnAndStore(t *testing.T) {
	source := `define a function called double that takes n.
give back n plus n.
end.
call double with 21 and store as result.
say result.`
	got := run(t, source)
	if strings.TrimSpace(got) != "42" {
		t.Errorf("got %q", got)
	}
}

func TestRunBreakExitsLoop(t *testing.T) {
	source := `set x to 0.
while x is less than 10.
if x is equal to 2 then.
stop.
end.
say x.
add 1 to x.
end.`
	got := run(t, source)
	want := "0\n1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunSkipContinuesLoop(t *testing.T) {
	source := `set x to 0.
while x is less than 3.
add 1 to x.
if x is equal to 2 then.
skip.
end.
say x.
end.`
	got := run(t, source)
	want := "1\n3\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunBlueprintInstanceAndMethod(t *testing.T) {
	source := `define a blueprint called Dog.
it has name.
to initialize, take name, do.
set my name to name.
end.
to bark, do.
say my name.
end.
end.
create a new Dog called rex with Rex.
call bark on rex.`
	got := run(t, source)
	if strings.TrimSpace(got) != "Rex" {
		t.Errorf("got %q", got)
	}
}

func TestRunAssignmentToUndefinedNameIsNameError(t *testing.T) {
	program, errs := parser.Parse("change missing to 1.", "<test>")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	var out bytes.Buffer
	it := New("change missing to 1.", "<test>")
	it.Stdout = &out

	if err := it.Run(program); err == nil {
		t.Fatal("expected a name error assigning to an undefined variable")
	}
}

func TestRunConstantReassignmentIsNameError(t *testing.T) {
	program, errs := parser.Parse("always set x as 1.\nchange x to 2.", "<test>")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	var out bytes.Buffer
	it := New("", "<test>")
	it.Stdout = &out

	err := it.Run(program)
	if err == nil {
		t.Fatal("expected a name error reassigning a constant")
	}
	pe, ok := err.(*kerrors.PositionedError)
	if !ok || pe.Kind != kerrors.NameError {
		t.Errorf("expected a kerrors.NameError, got %#v", err)
	}
}

func TestPreloadedConstants(t *testing.T) {
	got := run(t, "say pi.")
	if strings.TrimSpace(got) == "" {
		t.Error("expected pi to print a nonzero value")
	}
}
