package repl

import (
	"bytes"
	"strings"
	"testing"
)

func TestREPLEvaluatesStatementsAcrossLines(t *testing.T) {
	in := strings.NewReader("set x to 5.\nsay x.\nexit.\n")
	var out bytes.Buffer

	if err := New(in, &out).Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "5") {
		t.Errorf("expected output to contain %q, got %q", "5", out.String())
	}
}

func TestREPLBuffersMultiLineBlocks(t *testing.T) {
	in := strings.NewReader("if 1 is equal to 1 then.\nsay yes.\nend.\nexit.\n")
	var out bytes.Buffer

	if err := New(in, &out).Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "true") {
		t.Errorf("expected output to contain %q, got %q", "true", out.String())
	}
}

func TestREPLReportsParseErrorsWithoutExiting(t *testing.T) {
	in := strings.NewReader("open a window.\nsay hello.\nexit.\n")
	var out bytes.Buffer

	if err := New(in, &out).Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "ParserError") {
		t.Errorf("expected a ParserError report, got %q", out.String())
	}
	if !strings.Contains(out.String(), "hello") {
		t.Errorf("expected the REPL to keep running after the error, got %q", out.String())
	}
}

func TestREPLHelpCommand(t *testing.T) {
	in := strings.NewReader("help.\nexit.\n")
	var out bytes.Buffer

	if err := New(in, &out).Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Quick Reference") {
		t.Errorf("expected help text, got %q", out.String())
	}
}

func TestREPLEndOfInputExitsCleanly(t *testing.T) {
	in := strings.NewReader("say bye.\n")
	var out bytes.Buffer

	if err := New(in, &out).Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("expected a goodbye message on EOF, got %q", out.String())
	}
}
