package kerrors

import (
	"strings"
	"testing"

	"github.com/kaynat-lang/kaynat/internal/token"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LexerError, "LexerError"},
		{ParserError, "ParserError"},
		{RuntimeError, "RuntimeError"},
		{TypeError, "TypeError"},
		{NameError, "NameError"},
		{ValueError, "ValueError"},
		{FileError, "FileError"},
		{ImportError, "ImportError"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestFormatIncludesPositionAndMessage(t *testing.T) {
	err := NewNameError(token.Position{Line: 2, Column: 5}, "'x' is not defined", "set y to 1.\nsay x.", "greet.kaynat")
	got := err.Format(false)

	if !strings.Contains(got, "NameError in greet.kaynat:2:5") {
		t.Errorf("Format() missing header, got %q", got)
	}
	if !strings.Contains(got, "say x.") {
		t.Errorf("Format() missing source line, got %q", got)
	}
	if !strings.Contains(got, "'x' is not defined") {
		t.Errorf("Format() missing message, got %q", got)
	}
}

func TestFormatWithoutFileOmitsInClause(t *testing.T) {
	err := NewParserError(token.Position{Line: 1, Column: 1}, "unexpected token", "", "")
	got := err.Format(false)

	if !strings.HasPrefix(got, "ParserError at 1:1") {
		t.Errorf("Format() = %q, want prefix %q", got, "ParserError at 1:1")
	}
}

func TestFormatCaretAlignsUnderColumn(t *testing.T) {
	err := NewTypeError(token.Position{Line: 1, Column: 5}, "type mismatch", "add x to y.", "<test>")
	got := err.Format(false)

	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d: %q", len(lines), got)
	}
	caretLine := lines[2]
	if want := len("   1 | ") + 4; strings.Index(caretLine, "^") != want {
		t.Errorf("expected caret at index %d under column 5, got %q", want, caretLine)
	}
}

func TestFormatColorWrapsMessageAndCaret(t *testing.T) {
	err := NewValueError(token.Position{Line: 1, Column: 1}, "bad value", "set x to 1.", "<test>")
	got := err.Format(true)

	if !strings.Contains(got, "\033[1;31m") || !strings.Contains(got, "\033[1m") {
		t.Errorf("expected ANSI color codes in colored output, got %q", got)
	}
}

func TestErrorImplementsErrorInterface(t *testing.T) {
	var err error = NewRuntimeErrorForTest()
	if err.Error() == "" {
		t.Error("expected a non-empty error string")
	}
}

func NewRuntimeErrorForTest() *PositionedError {
	return New(RuntimeError, token.Position{Line: 1, Column: 1}, "boom", "", "<test>")
}

func TestFormatErrorsEmpty(t *testing.T) {
	if got := FormatErrors(nil, false); got != "" {
		t.Errorf("FormatErrors(nil) = %q, want empty", got)
	}
}

func TestFormatErrorsSingleMatchesFormat(t *testing.T) {
	err := NewSyntaxErrorForTest()
	errs := []*PositionedError{err}

	if got, want := FormatErrors(errs, false), err.Format(false); got != want {
		t.Errorf("FormatErrors single = %q, want %q", got, want)
	}
}

func NewSyntaxErrorForTest() *PositionedError {
	return NewParserError(token.Position{Line: 1, Column: 1}, "unexpected token", "open a window.", "<test>")
}

func TestFormatErrorsBatchNumbersEachEntry(t *testing.T) {
	errs := []*PositionedError{
		NewParserError(token.Position{Line: 1, Column: 1}, "first problem", "", "<test>"),
		NewParserError(token.Position{Line: 2, Column: 1}, "second problem", "", "<test>"),
	}

	got := FormatErrors(errs, false)
	if !strings.Contains(got, "2 error(s):") {
		t.Errorf("expected a count header, got %q", got)
	}
	if !strings.Contains(got, "[1 of 2]") || !strings.Contains(got, "[2 of 2]") {
		t.Errorf("expected numbered entries, got %q", got)
	}
	if !strings.Contains(got, "first problem") || !strings.Contains(got, "second problem") {
		t.Errorf("expected both messages present, got %q", got)
	}
}
