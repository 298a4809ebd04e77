package parser

import (
	"github.com/kaynat-lang/kaynat/internal/ast"
	"github.com/kaynat-lang/kaynat/internal/token"
)

// parseVarDecl handles `set`/`let` NAME `to` expr `.` and the property form
// `set`/`let my` NAME `to` expr `.`.
func (p *Parser) parseVarDecl() ast.Statement {
	pos := p.advance().Pos // SET or LET

	if p.curIs(token.MY) || p.curIs(token.THIS) {
		return p.parsePropertyAssignment(pos)
	}

	name, ok := p.expectIdent()
	if !ok {
		return nil
	}
	p.expect(token.TO)
	value := p.parseExpression()
	p.expect(token.PERIOD)
	return ast.NewVarDecl(pos, name, value, false)
}

// parseConstantDecl handles `always set` NAME `as` expr `.`.
func (p *Parser) parseConstantDecl() ast.Statement {
	pos := p.advance().Pos // ALWAYS
	p.expect(token.SET)
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}
	p.expect(token.AS)
	value := p.parseExpression()
	p.expect(token.PERIOD)
	return ast.NewVarDecl(pos, name, value, true)
}

// parseAssignment handles `change` NAME `to` expr `.` and the property form
// `change my` NAME `to` expr `.`.
func (p *Parser) parseAssignment() ast.Statement {
	pos := p.advance().Pos // CHANGE

	if p.curIs(token.MY) || p.curIs(token.THIS) {
		return p.parsePropertyAssignment(pos)
	}

	name, ok := p.expectIdent()
	if !ok {
		return nil
	}
	p.expect(token.TO)
	value := p.parseExpression()
	p.expect(token.PERIOD)
	return ast.NewAssignment(pos, name, value)
}

func (p *Parser) parsePropertyAssignment(pos token.Position) ast.Statement {
	receiver := p.advance().Literal // "my" or "this"
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}
	p.expect(token.TO)
	value := p.parseExpression()
	p.expect(token.PERIOD)
	return ast.NewAssignment(pos, receiver+" "+name, value)
}

// parseDefine disambiguates the `define` family: a function, a blueprint, a
// contract, or (when none of those follow) a plain variable declaration, per
// the original grammar's fallback.
func (p *Parser) parseDefine() ast.Statement {
	switch {
	case p.peekIs(token.A) && p.peekAt(2).Type == token.BLUEPRINT:
		return p.parseClassDef()
	case p.peekIs(token.A) && p.peekAt(2).Type == token.ABSTRACT:
		return p.parseClassDef()
	case p.peekIs(token.A) && p.peekAt(2).Type == token.CONTRACT:
		return p.parseContractDef()
	case p.peekIs(token.A) && p.peekAt(2).Type == token.FUNCTION:
		return p.parseFunctionDef()
	case p.peekIs(token.FUNCTION):
		return p.parseFunctionDef()
	default:
		pos := p.advance().Pos // DEFINE
		name, ok := p.expectIdent()
		if !ok {
			return nil
		}
		p.expect(token.TO)
		value := p.parseExpression()
		p.expect(token.PERIOD)
		return ast.NewVarDecl(pos, name, value, false)
	}
}

// parsePrint handles `say`/`print`/`show` expr-seq `.`. Each comma-separated
// item is parsed as a full expression; a bare word with no other production
// (a reserved keyword appearing in prose) falls back to its own spelling as
// a string literal, since it has no other AST representation.
func (p *Parser) parsePrint() ast.Statement {
	pos := p.advance().Pos // SAY/PRINT/SHOW

	var values []ast.Expression
	for !p.curIs(token.PERIOD) && !p.atEnd() {
		values = append(values, p.parsePrintItem())
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	p.expect(token.PERIOD)
	return ast.NewPrint(pos, values)
}

func (p *Parser) parsePrintItem() ast.Expression {
	tok := p.cur()
	switch {
	case tok.Type == token.NUMBER || tok.Type == token.BOOLEAN || tok.Type == token.NOTHING ||
		tok.Type == token.IDENT || tok.Type == token.MY || tok.Type == token.THIS:
		return p.parseExpression()
	default:
		p.advance()
		return ast.NewStringLiteral(tok.Pos, tok.Literal)
	}
}

// parseInput handles `ask the user for` NAME `.`.
func (p *Parser) parseInput() ast.Statement {
	pos := p.advance().Pos // ASK
	p.expect(token.THE)
	p.expect(token.USER)
	p.expect(token.FOR)
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}
	p.expect(token.PERIOD)
	return ast.NewInput(pos, name)
}

// parseArithmeticStatement desugars `add`/`subtract` expr `to`/`from` NAME
// `.` into an Assignment wrapping a BinaryOp over the current value.
func (p *Parser) parseArithmeticStatement() ast.Statement {
	tok := p.advance() // ADD or SUBTRACT
	op := "+"
	expected := token.TO
	if tok.Type == token.SUBTRACT {
		op = "-"
		expected = token.FROM
	}
	amount := p.parseExpression()
	p.expect(expected)
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}
	p.expect(token.PERIOD)

	current := ast.NewIdentifier(tok.Pos, name)
	return ast.NewAssignment(tok.Pos, name, ast.NewBinaryOp(tok.Pos, op, current, amount))
}

// parseCreate handles `create a list called` NAME `.`, `create a map
// called` NAME `.`, and `create a new` CLASS `called` NAME [`with` args] `.`.
func (p *Parser) parseCreate() ast.Statement {
	pos := p.advance().Pos // CREATE
	p.expect(token.A)

	switch {
	case p.curIs(token.NEW):
		p.advance()
		className, ok := p.expectIdent()
		if !ok {
			return nil
		}
		p.expect(token.CALLED)
		name, ok := p.expectIdent()
		if !ok {
			return nil
		}
		args := p.parseInstanceArgumentList()
		p.expect(token.PERIOD)
		return ast.NewCreateInstance(pos, className, args, name)

	case p.curIs(token.LIST):
		p.advance()
		p.expect(token.CALLED)
		name, ok := p.expectIdent()
		if !ok {
			return nil
		}
		p.expect(token.PERIOD)
		return ast.NewVarDecl(pos, name, ast.NewListLiteral(pos, nil), false)

	case p.curIs(token.MAP):
		p.advance()
		p.expect(token.CALLED)
		name, ok := p.expectIdent()
		if !ok {
			return nil
		}
		p.expect(token.PERIOD)
		return ast.NewVarDecl(pos, name, ast.NewMapLiteral(pos, nil), false)

	default:
		p.errorf(pos, "expected 'new', 'list', or 'map' after 'create a', found %s", p.cur().Type)
		return nil
	}
}
