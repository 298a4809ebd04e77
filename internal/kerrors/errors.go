// Package kerrors formats Kaynat errors with source context, line/column
// information, and a caret pointing at the offending token, in the style of
// a compiler diagnostic.
package kerrors

import (
	"fmt"
	"strings"

	"github.com/kaynat-lang/kaynat/internal/token"
)

// Kind distinguishes the closed set of error categories a Kaynat program can
// raise, mirroring the taxonomy original_source/kaynat draws from Python's
// exception hierarchy (LexerError, ParserError, NameError, TypeError,
// ValueError, FileError, ImportError all descend from RuntimeError there;
// here they are sentinel Kind values on one carrier type instead).
type Kind int

const (
	LexerError Kind = iota
	ParserError
	RuntimeError
	TypeError
	NameError
	ValueError
	FileError
	ImportError
)

func (k Kind) String() string {
	switch k {
	case LexerError:
		return "LexerError"
	case ParserError:
		return "ParserError"
	case RuntimeError:
		return "RuntimeError"
	case TypeError:
		return "TypeError"
	case NameError:
		return "NameError"
	case ValueError:
		return "ValueError"
	case FileError:
		return "FileError"
	case ImportError:
		return "ImportError"
	default:
		return "Error"
	}
}

// PositionedError is a single Kaynat error with position and source context.
type PositionedError struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New creates a PositionedError of the given kind.
func New(kind Kind, pos token.Position, message, source, file string) *PositionedError {
	return &PositionedError{Kind: kind, Pos: pos, Message: message, Source: source, File: file}
}

// Convenience constructors for the kinds the interpreter raises most often.
func NewNameError(pos token.Position, message, source, file string) *PositionedError {
	return New(NameError, pos, message, source, file)
}

func NewTypeError(pos token.Position, message, source, file string) *PositionedError {
	return New(TypeError, pos, message, source, file)
}

func NewValueError(pos token.Position, message, source, file string) *PositionedError {
	return New(ValueError, pos, message, source, file)
}

func NewFileError(pos token.Position, message, source, file string) *PositionedError {
	return New(FileError, pos, message, source, file)
}

func NewParserError(pos token.Position, message, source, file string) *PositionedError {
	return New(ParserError, pos, message, source, file)
}

func NewLexerError(pos token.Position, message, source, file string) *PositionedError {
	return New(LexerError, pos, message, source, file)
}

// Error implements the error interface.
func (e *PositionedError) Error() string {
	return e.Format(false)
}

// Format renders the error with a single line of source context.
// If color is true, ANSI escapes highlight the message and caret.
func (e *PositionedError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("%s in %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s at %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column))
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+max(e.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *PositionedError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FormatErrors renders a batch of errors, numbering them when there is more
// than one.
func FormatErrors(errs []*PositionedError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s):\n\n", len(errs)))
	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("[%d of %d]\n", i+1, len(errs)))
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
