package lexer

import (
	"testing"

	"github.com/kaynat-lang/kaynat/internal/token"
)

func TestNextTokenBasicStatement(t *testing.T) {
	input := `set x to 5.`

	tests := []struct {
		wantType    token.Type
		wantLiteral string
	}{
		{token.SET, "set"},
		{token.IDENT, "x"},
		{token.TO, "to"},
		{token.NUMBER, "5"},
		{token.PERIOD, "."},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s", i, tt.wantType, tok.Type)
		}
		if tok.Literal != tt.wantLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.wantLiteral, tok.Literal)
		}
	}
}

func TestNextTokenKeywordsAreCaseInsensitive(t *testing.T) {
	input := `SET X TO 5.`

	l := New(input)
	tok := l.NextToken()
	if tok.Type != token.SET {
		t.Fatalf("expected SET, got %s", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "X" {
		t.Fatalf("expected identifier X with its spelling kept, got %s %q", tok.Type, tok.Literal)
	}
}

func TestNextTokenBooleanWords(t *testing.T) {
	input := `yes no true false`

	l := New(input)
	for _, want := range []bool{true, false, true, false} {
		tok := l.NextToken()
		if tok.Type != token.BOOLEAN {
			t.Fatalf("expected BOOLEAN, got %s", tok.Type)
		}
		if tok.Bool != want {
			t.Fatalf("expected bool=%v, got %v", want, tok.Bool)
		}
	}
}

func TestNextTokenDecimalNumber(t *testing.T) {
	l := New("3.14")
	tok := l.NextToken()
	if tok.Type != token.NUMBER || tok.Number != 3.14 {
		t.Fatalf("expected NUMBER 3.14, got %s %v", tok.Type, tok.Number)
	}
}

func TestNextTokenIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexer error, got %d", len(l.Errors()))
	}
}

func TestNextTokenTracksLineAndColumn(t *testing.T) {
	l := New("set x to 5.\nsay x.")

	var lastPos token.Position
	for {
		tok := l.NextToken()
		if tok.Literal == "say" {
			lastPos = tok.Pos
			break
		}
		if tok.Type == token.EOF {
			t.Fatal("ran out of tokens before finding 'say'")
		}
	}

	if lastPos.Line != 2 {
		t.Errorf("expected 'say' on line 2, got line %d", lastPos.Line)
	}
}

func TestTokenizeEndsWithEOF(t *testing.T) {
	tokens := New("say hi.").Tokenize()
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		t.Fatalf("expected token stream to end with EOF, got %+v", tokens)
	}
}

func TestNextTokenUnicodeIdentifier(t *testing.T) {
	l := New("set café to 5.")
	tok := l.NextToken()
	if tok.Type != token.SET {
		t.Fatalf("expected SET, got %s", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "café" {
		t.Fatalf("expected identifier café, got %s %q", tok.Type, tok.Literal)
	}
}
