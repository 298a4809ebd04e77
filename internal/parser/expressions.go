package parser

import (
	"github.com/kaynat-lang/kaynat/internal/ast"
	"github.com/kaynat-lang/kaynat/internal/token"
)

// parseExpression is the entry point into the precedence chain: logical-or
// -> logical-and -> comparison -> additive -> multiplicative -> unary ->
// primary, per §4.2 of the language specification.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expression {
	left := p.parseAnd()
	for p.curIs(token.OR) {
		pos := p.advance().Pos
		right := p.parseAnd()
		left = ast.NewLogicalOp(pos, "or", left, right)
	}
	return left
}

func (p *Parser) parseAnd() ast.Expression {
	left := p.parseComparison()
	for p.curIs(token.AND) && !p.peekIs(token.STORE) {
		pos := p.advance().Pos
		right := p.parseComparison()
		left = ast.NewLogicalOp(pos, "and", left, right)
	}
	return left
}

// parseComparison handles `is greater than`, `is less than`, `is equal to`,
// `is not equal to`, and their `or equal to` variants for >= and <=.
func (p *Parser) parseComparison() ast.Expression {
	left := p.parseAdditive()
	for p.curIs(token.IS) {
		pos := p.cur().Pos
		op, ok := p.parseComparisonOperator()
		if !ok {
			break
		}
		right := p.parseAdditive()
		left = ast.NewComparison(pos, op, left, right)
	}
	return left
}

func (p *Parser) parseComparisonOperator() (string, bool) {
	pos := p.advance().Pos // IS

	switch {
	case p.curIs(token.GREATER):
		p.advance()
		p.expect(token.THAN)
		if p.curIs(token.OR) && p.peekIs(token.EQUAL) {
			p.advance()
			p.advance()
			p.expect(token.TO)
			return ">=", true
		}
		return ">", true

	case p.curIs(token.LESS):
		p.advance()
		p.expect(token.THAN)
		if p.curIs(token.OR) && p.peekIs(token.EQUAL) {
			p.advance()
			p.advance()
			p.expect(token.TO)
			return "<=", true
		}
		return "<", true

	case p.curIs(token.EQUAL):
		p.advance()
		p.expect(token.TO)
		return "==", true

	case p.curIs(token.NOT):
		// only `is not equal to` is grammared; `is not greater/less than`
		// has no representation, matching the original parser.
		p.advance()
		p.expect(token.EQUAL)
		p.expect(token.TO)
		return "!=", true

	default:
		p.errorf(pos, "expected a comparison after 'is', found %s", p.cur().Type)
		return "", false
	}
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.curIs(token.PLUS) || p.curIs(token.MINUS) {
		tok := p.advance()
		op := "+"
		if tok.Type == token.MINUS {
			op = "-"
		}
		right := p.parseMultiplicative()
		left = ast.NewBinaryOp(tok.Pos, op, left, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseUnary()
	for {
		switch {
		case p.curIs(token.MULTIPLIED):
			pos := p.advance().Pos
			p.expect(token.BY)
			right := p.parseUnary()
			left = ast.NewBinaryOp(pos, "*", left, right)
		case p.curIs(token.DIVIDE) && p.peekIs(token.BY):
			pos := p.advance().Pos
			p.advance() // BY
			right := p.parseUnary()
			left = ast.NewBinaryOp(pos, "/", left, right)
		default:
			return left
		}
	}
}

func (p *Parser) parseUnary() ast.Expression {
	switch {
	case p.curIs(token.NEGATIVE):
		pos := p.advance().Pos
		return ast.NewUnaryOp(pos, "negative", p.parseUnary())
	case p.curIs(token.NOT):
		pos := p.advance().Pos
		return ast.NewUnaryOp(pos, "not", p.parseUnary())
	default:
		return p.parsePrimary()
	}
}

// parsePrimary handles numbers, booleans, nothing, property access, bare
// identifiers, and list literals. A bare identifier always becomes an
// ast.Identifier; the decision to render it as its own spelling (when
// unbound) happens in the interpreter, per the identifier-evaluation policy.
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur()

	switch tok.Type {
	case token.NUMBER:
		p.advance()
		return ast.NewNumberLiteral(tok.Pos, tok.Number)

	case token.BOOLEAN:
		p.advance()
		return ast.NewBooleanLiteral(tok.Pos, tok.Bool)

	case token.NOTHING:
		p.advance()
		return ast.NewNullLiteral(tok.Pos)

	case token.MY, token.THIS:
		receiver := p.advance().Literal
		name, ok := p.expectIdent()
		if !ok {
			return ast.NewNullLiteral(tok.Pos)
		}
		return ast.NewPropertyAccess(tok.Pos, receiver, name)

	case token.IDENT:
		p.advance()
		return ast.NewIdentifier(tok.Pos, tok.Literal)

	case token.A:
		if p.peekIs(token.LIST) {
			return p.parseListLiteral()
		}
		p.advance()
		return p.parsePrimary()

	default:
		p.advance()
		p.errorf(tok.Pos, "unexpected token %s in expression", tok.Type)
		return ast.NewNullLiteral(tok.Pos)
	}
}

// parseListLiteral handles `a list containing e1, e2, ...`.
func (p *Parser) parseListLiteral() ast.Expression {
	pos := p.cur().Pos
	p.advance() // A
	p.advance() // LIST
	p.expect(token.CONTAINING)

	elements := []ast.Expression{p.parseExpression()}
	for p.curIs(token.COMMA) {
		p.advance()
		elements = append(elements, p.parseExpression())
	}
	return ast.NewListLiteral(pos, elements)
}

// parseCallArgumentList parses a comma-separated argument list for a
// `call name with ...` statement, stopping before an `and store as` clause
// without consuming it.
func (p *Parser) parseCallArgumentList() []ast.Expression {
	var args []ast.Expression
	if !p.curIs(token.WITH) {
		return args
	}
	p.advance()
	args = append(args, p.parseExpression())
	for p.curIs(token.COMMA) {
		p.advance()
		args = append(args, p.parseExpression())
	}
	return args
}

// parseInstanceArgumentList parses the argument list of `create a new X
// called y with a1, a2 .`. Items are separated by commas. Each item is a full
// expression, so an `and` between two items is read as the logical `and`
// operator inside that item, not as a separator.
func (p *Parser) parseInstanceArgumentList() []ast.Expression {
	var args []ast.Expression
	if !p.curIs(token.WITH) {
		return args
	}
	p.advance()
	args = append(args, p.parseExpression())
	for p.curIs(token.COMMA) || p.curIs(token.AND) {
		p.advance()
		args = append(args, p.parseExpression())
	}
	return args
}

// parseStoreAs parses an optional trailing `and store as NAME` clause,
// reporting whether one was present and the bound name if so.
func (p *Parser) parseStoreAs() (string, bool) {
	if !p.curIs(token.AND) {
		return "", false
	}
	if !(p.peekIs(token.STORE) && p.peekAt(2).Type == token.AS) {
		return "", false
	}
	p.advance() // AND
	p.advance() // STORE
	p.advance() // AS
	name, _ := p.expectIdent()
	return name, true
}

// parseNameList parses a comma/and-separated list of parameter or method
// names, as used by `that takes`, `take`, and `it requires`.
func (p *Parser) parseNameList() []string {
	var names []string
	if !p.curIs(token.IDENT) {
		return names
	}
	names = append(names, p.advance().Literal)
	for p.curIs(token.COMMA) || p.curIs(token.AND) {
		p.advance()
		if p.curIs(token.IDENT) {
			names = append(names, p.advance().Literal)
		}
	}
	return names
}
