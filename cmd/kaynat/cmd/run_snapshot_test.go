package cmd

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/kaynat-lang/kaynat/internal/builtins"
	"github.com/kaynat-lang/kaynat/internal/interp"
	"github.com/kaynat-lang/kaynat/internal/kerrors"
	"github.com/kaynat-lang/kaynat/internal/parser"
)

// runForSnapshot mirrors runScript's parse-then-execute path without
// touching os.Stdin/Stdout, so the CLI's actual output can be captured
// and compared against a golden snapshot.
func runForSnapshot(t *testing.T, source string) string {
	t.Helper()

	program, errs := parser.Parse(source, "<snapshot>")
	if len(errs) != 0 {
		return kerrors.FormatErrors(errs, false)
	}

	var out bytes.Buffer
	interpreter := interp.New(source, "<snapshot>")
	interpreter.Stdout = &out
	builtins.RegisterAll(interpreter.Global)

	if err := interpreter.Run(program); err != nil {
		if pe, ok := err.(*kerrors.PositionedError); ok {
			return out.String() + pe.Format(false)
		}
		return out.String() + err.Error()
	}

	return out.String()
}

func TestCLIGreetingScript(t *testing.T) {
	source := `define a function called greet that takes name.
say hello, name.
end.
call greet with friend.`

	snaps.MatchSnapshot(t, runForSnapshot(t, source))
}

func TestCLICountdownScript(t *testing.T) {
	source := `set x to 5.
while x is greater than 0.
if x is equal to 3 then.
say halfway.
otherwise.
say x.
end.
subtract 1 from x.
end.
say liftoff.`

	snaps.MatchSnapshot(t, runForSnapshot(t, source))
}

func TestCLIBlueprintScript(t *testing.T) {
	source := `define a blueprint called Counter.
it has count.
to initialize, do.
set my count to 0.
end.
to increment, do.
add 1 to my count.
say my count.
end.
end.
create a new Counter called c.
call increment on c.
call increment on c.
call increment on c.`

	snaps.MatchSnapshot(t, runForSnapshot(t, source))
}

func TestCLIParseErrorFormatting(t *testing.T) {
	snaps.MatchSnapshot(t, runForSnapshot(t, "open a window."))
}

func TestCLIMissingFileProducesFileError(t *testing.T) {
	source := `call read_file with nonexistent_kaynat_fixture_missing and store as contents.
say contents.`

	program, errs := parser.Parse(source, "<test>")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	var out bytes.Buffer
	interpreter := interp.New(source, "<test>")
	interpreter.Stdout = &out
	builtins.RegisterAll(interpreter.Global)

	err := interpreter.Run(program)
	if err == nil {
		t.Fatal("expected an error reading a nonexistent file")
	}
	pe, ok := err.(*kerrors.PositionedError)
	if !ok || pe.Kind != kerrors.FileError {
		t.Errorf("expected a kerrors.FileError, got %#v", err)
	}
}
