package parser

import (
	"github.com/kaynat-lang/kaynat/internal/ast"
	"github.com/kaynat-lang/kaynat/internal/token"
)

// parseFunctionDef handles `define [a] function called` NAME [`that takes`
// params] `.` body `end .`.
func (p *Parser) parseFunctionDef() ast.Statement {
	pos := p.advance().Pos // DEFINE
	if p.curIs(token.A) {
		p.advance()
	}
	p.expect(token.FUNCTION)
	p.expect(token.CALLED)
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}

	var params []string
	if p.curIs(token.THAT) {
		p.advance()
		p.expect(token.TAKES)
		params = p.parseNameList()
	}

	p.expect(token.PERIOD)
	body := p.parseBlock(token.END)
	p.expect(token.END)
	p.expect(token.PERIOD)
	return ast.NewFunctionDef(pos, name, params, body)
}

// parseCallStatement handles `call` NAME [`with` args] [`and store as`
// NAME] `.` and, when the name is followed by `on`, dispatches to a method
// call instead: `call` METHOD `on` OBJ [`with` args] [`and store as` NAME]
// `.`.
func (p *Parser) parseCallStatement() ast.Statement {
	if p.peekAt(2).Type == token.ON {
		return p.parseMethodCallStatement()
	}

	pos := p.advance().Pos // CALL
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}
	args := p.parseCallArgumentList()

	if storeName, hasStore := p.parseStoreAs(); hasStore {
		p.expect(token.PERIOD)
		return ast.NewVarDecl(pos, storeName, ast.NewFunctionCall(pos, name, args), false)
	}

	p.expect(token.PERIOD)
	return ast.NewFunctionCall(pos, name, args)
}
