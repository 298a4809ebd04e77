package parser

import (
	"github.com/kaynat-lang/kaynat/internal/ast"
	"github.com/kaynat-lang/kaynat/internal/token"
)

// parseIf handles `if cond then .` body (`otherwise if ... then .` body)*
// (`otherwise .` body)? `end .`.
func (p *Parser) parseIf() ast.Statement {
	pos := p.advance().Pos // IF
	cond := p.parseExpression()
	p.expect(token.THEN)
	p.expect(token.PERIOD)

	thenBody := p.parseBlock(token.OTHERWISE, token.END)

	var elifs []ast.ElifBranch
	var elseBody []ast.Statement

	for p.curIs(token.OTHERWISE) {
		p.advance()
		if p.curIs(token.IF) {
			p.advance()
			elifCond := p.parseExpression()
			p.expect(token.THEN)
			p.expect(token.PERIOD)
			elifs = append(elifs, ast.ElifBranch{
				Condition: elifCond,
				Body:      p.parseBlock(token.OTHERWISE, token.END),
			})
			continue
		}
		p.expect(token.PERIOD)
		elseBody = p.parseBlock(token.END)
		break
	}

	p.expect(token.END)
	p.expect(token.PERIOD)
	return ast.NewIf(pos, cond, thenBody, elifs, elseBody)
}

// parseWhile handles `while cond [then] .` body `end .`.
func (p *Parser) parseWhile() ast.Statement {
	pos := p.advance().Pos // WHILE
	cond := p.parseExpression()
	if p.curIs(token.THEN) {
		p.advance()
	}
	p.expect(token.PERIOD)
	body := p.parseBlock(token.END)
	p.expect(token.END)
	p.expect(token.PERIOD)
	return ast.NewWhile(pos, cond, body)
}

// parseRepeat handles `repeat` expr `times .` body `end .`.
func (p *Parser) parseRepeat() ast.Statement {
	pos := p.advance().Pos // REPEAT
	count := p.parseExpression()
	p.expect(token.TIMES)
	p.expect(token.PERIOD)
	body := p.parseBlock(token.END)
	p.expect(token.END)
	p.expect(token.PERIOD)
	return ast.NewRepeat(pos, count, body)
}

// parseForEach handles `for each` NAME `in` NAME `.` body `end .`.
func (p *Parser) parseForEach() ast.Statement {
	pos := p.advance().Pos // FOR
	p.expect(token.EACH)
	variable, ok := p.expectIdent()
	if !ok {
		return nil
	}
	p.expect(token.IN)
	iterTok, ok := p.expect(token.IDENT)
	if !ok {
		return nil
	}
	iterable := ast.NewIdentifier(iterTok.Pos, iterTok.Literal)
	p.expect(token.PERIOD)
	body := p.parseBlock(token.END)
	p.expect(token.END)
	p.expect(token.PERIOD)
	return ast.NewForEach(pos, variable, iterable, body)
}

// parseLoop handles `loop from` expr `to` expr [`stepping by` expr] `.`
// body `end .`. The loop variable is always named "current".
func (p *Parser) parseLoop() ast.Statement {
	pos := p.advance().Pos // LOOP
	p.expect(token.FROM)
	start := p.parseExpression()
	p.expect(token.TO)
	end := p.parseExpression()

	var step ast.Expression
	if p.curIs(token.STEPPING) {
		p.advance()
		p.expect(token.BY)
		step = p.parseExpression()
	}

	p.expect(token.PERIOD)
	body := p.parseBlock(token.END)
	p.expect(token.END)
	p.expect(token.PERIOD)
	return ast.NewLoop(pos, start, end, step, body)
}

// parseReturn handles `give back` expr `.`.
func (p *Parser) parseReturn() ast.Statement {
	pos := p.advance().Pos // GIVE
	p.expect(token.BACK)
	value := p.parseExpression()
	p.expect(token.PERIOD)
	return ast.NewReturn(pos, value)
}
