// Package parser implements a recursive-descent parser for Kaynat source,
// consuming the token stream produced by internal/lexer and emitting an
// internal/ast.Program.
package parser

import (
	"fmt"

	"github.com/kaynat-lang/kaynat/internal/ast"
	"github.com/kaynat-lang/kaynat/internal/kerrors"
	"github.com/kaynat-lang/kaynat/internal/lexer"
	"github.com/kaynat-lang/kaynat/internal/token"
)

// Parser consumes a fixed token slice and accumulates structured errors
// rather than failing on the first one, so a single pass can report several
// mistakes in a source file.
type Parser struct {
	tokens []token.Token
	pos    int
	source string
	file   string
	errors []*kerrors.PositionedError
}

// New builds a Parser over an already-lexed token stream.
func New(tokens []token.Token, source, file string) *Parser {
	if len(tokens) == 0 {
		tokens = []token.Token{token.New(token.EOF, "", token.Position{Line: 1, Column: 1})}
	}
	return &Parser{tokens: tokens, source: source, file: file}
}

// Parse lexes and parses source in one step, merging lexer and parser errors.
func Parse(source, file string) (*ast.Program, []*kerrors.PositionedError) {
	lx := lexer.New(source)
	toks := lx.Tokenize()

	p := New(toks, source, file)
	program := p.ParseProgram()

	var errs []*kerrors.PositionedError
	for _, le := range lx.Errors() {
		errs = append(errs, kerrors.NewLexerError(le.Pos, le.Message, source, file))
	}
	errs = append(errs, p.errors...)
	return program, errs
}

// Errors returns every parser error accumulated while parsing.
func (p *Parser) Errors() []*kerrors.PositionedError { return p.errors }

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

// peekAt returns the token n positions ahead of the current one; peekAt(0)
// is the current token itself. Requests past EOF saturate at EOF.
func (p *Parser) peekAt(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) peek() token.Token { return p.peekAt(1) }

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur().Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek().Type == t }
func (p *Parser) atEnd() bool              { return p.curIs(token.EOF) }

// expect consumes the current token if it matches t, otherwise records an
// error and leaves the cursor in place.
func (p *Parser) expect(t token.Type) (token.Token, bool) {
	if p.curIs(t) {
		return p.advance(), true
	}
	p.errorf(p.cur().Pos, "expected %s, found %s", t, p.cur().Type)
	return token.Token{}, false
}

// expectIdent consumes an IDENT token and returns its spelling.
func (p *Parser) expectIdent() (string, bool) {
	tok, ok := p.expect(token.IDENT)
	return tok.Literal, ok
}

// matchSeq reports whether the upcoming tokens, starting at the current one,
// match types in order; on success it consumes them all, on failure it
// consumes nothing.
func (p *Parser) matchSeq(types ...token.Type) bool {
	for i, t := range types {
		if p.peekAt(i).Type != t {
			return false
		}
	}
	for range types {
		p.advance()
	}
	return true
}

func (p *Parser) errorf(pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, kerrors.NewParserError(pos, fmt.Sprintf(format, args...), p.source, p.file))
}

// ParseProgram parses an optional `begin program .` header, a sequence of
// period-terminated statements, and an optional `end program .` trailer.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	p.matchSeq(token.BEGIN, token.PROGRAM, token.PERIOD)

	for !p.atEnd() {
		if p.matchSeq(token.END, token.PROGRAM, token.PERIOD) {
			break
		}
		startPos := p.pos
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		if p.pos == startPos && !p.atEnd() {
			// parseStatement made no progress; avoid looping forever on
			// unrecoverable input.
			p.advance()
		}
	}

	return program
}

// parseBlock parses statements until one of the given terminator token types
// is seen (without consuming it) or EOF is reached.
func (p *Parser) parseBlock(terminators ...token.Type) []ast.Statement {
	var stmts []ast.Statement
	for !p.atEnd() && !p.curIsAny(terminators...) {
		startPos := p.pos
		if stmt := p.parseStatement(); stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.pos == startPos {
			p.advance()
		}
	}
	return stmts
}

func (p *Parser) curIsAny(types ...token.Type) bool {
	for _, t := range types {
		if p.curIs(t) {
			return true
		}
	}
	return false
}

// parseStatement dispatches on the current token to the production it
// introduces, per the statement table in the language specification.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Type {
	case token.SET, token.LET:
		return p.parseVarDecl()
	case token.DEFINE:
		return p.parseDefine()
	case token.ALWAYS:
		return p.parseConstantDecl()
	case token.CHANGE:
		return p.parseAssignment()
	case token.SAY, token.PRINT, token.SHOW:
		return p.parsePrint()
	case token.ASK:
		return p.parseInput()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.REPEAT:
		return p.parseRepeat()
	case token.FOR:
		return p.parseForEach()
	case token.LOOP:
		return p.parseLoop()
	case token.GIVE:
		return p.parseReturn()
	case token.CALL:
		return p.parseCallStatement()
	case token.STOP:
		pos := p.advance().Pos
		p.expect(token.PERIOD)
		return ast.NewBreak(pos)
	case token.SKIP:
		pos := p.advance().Pos
		p.expect(token.PERIOD)
		return ast.NewContinue(pos)
	case token.ADD, token.SUBTRACT:
		return p.parseArithmeticStatement()
	case token.NOTE:
		pos := p.advance().Pos
		p.expect(token.PERIOD)
		return ast.NewComment(pos)
	case token.CREATE:
		return p.parseCreate()
	case token.EOF:
		return nil
	default:
		tok := p.advance()
		if token.IsReservedOnly(tok.Type) {
			p.errorf(tok.Pos, "%s is reserved but has no statement form", tok.Type)
		} else {
			p.errorf(tok.Pos, "unexpected token %s", tok.Type)
		}
		return nil
	}
}
