package parser

import (
	"github.com/kaynat-lang/kaynat/internal/ast"
	"github.com/kaynat-lang/kaynat/internal/token"
)

// parseClassDef handles `define a [abstract] blueprint called` NAME
// [`extends` NAME] `.` members `end .`.
func (p *Parser) parseClassDef() ast.Statement {
	pos := p.advance().Pos // DEFINE
	p.expect(token.A)

	isAbstract := false
	if p.curIs(token.ABSTRACT) {
		isAbstract = true
		p.advance()
	}

	p.expect(token.BLUEPRINT)
	p.expect(token.CALLED)
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}

	parent := ""
	if p.curIs(token.EXTENDS) {
		p.advance()
		parent, _ = p.expectIdent()
	}
	p.expect(token.PERIOD)

	var properties []string
	var methods []*ast.FunctionDef

	for !p.curIs(token.END) && !p.atEnd() {
		switch {
		case p.curIs(token.IT):
			p.advance()
			p.expect(token.HAS)
			propName, ok := p.expectIdent()
			if !ok {
				return nil
			}
			p.expect(token.PERIOD)
			properties = append(properties, propName)

		case p.curIs(token.TO):
			methods = append(methods, p.parseMethod())

		default:
			p.errorf(p.cur().Pos, "expected a property or method inside blueprint %s, found %s", name, p.cur().Type)
			p.advance()
		}
	}

	p.expect(token.END)
	p.expect(token.PERIOD)
	return ast.NewClassDef(pos, name, parent, properties, methods, isAbstract)
}

// parseMethod handles `to` NAME [`, take` params] [`, do`] `.` body
// `end .`. The method name `initialize` is the constructor.
func (p *Parser) parseMethod() *ast.FunctionDef {
	pos := p.advance().Pos // TO

	var name string
	switch {
	case p.curIs(token.IDENT):
		name = p.advance().Literal
	case p.curIs(token.INITIALIZE):
		name = "initialize"
		p.advance()
	default:
		p.errorf(p.cur().Pos, "expected a method name, found %s", p.cur().Type)
		return ast.NewFunctionDef(pos, "", nil, nil)
	}

	var params []string
	if p.curIs(token.COMMA) {
		p.advance()
		if p.curIs(token.TAKE) {
			p.advance()
			params = p.parseNameList()
		}
	}

	if p.curIs(token.COMMA) {
		p.advance()
	}
	if p.curIs(token.DO) {
		p.advance()
	}
	p.expect(token.PERIOD)

	body := p.parseBlock(token.END)
	p.expect(token.END)
	p.expect(token.PERIOD)
	return ast.NewFunctionDef(pos, name, params, body)
}

// parseContractDef handles `define a contract called` NAME `.` (`it
// requires` NAME `.`)* `end .`.
func (p *Parser) parseContractDef() ast.Statement {
	pos := p.advance().Pos // DEFINE
	p.expect(token.A)
	p.expect(token.CONTRACT)
	p.expect(token.CALLED)
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}
	p.expect(token.PERIOD)

	var required []string
	for p.curIs(token.IT) {
		p.advance()
		p.expect(token.REQUIRES)
		methodName, ok := p.expectIdent()
		if !ok {
			break
		}
		p.expect(token.PERIOD)
		required = append(required, methodName)
	}

	p.expect(token.END)
	p.expect(token.PERIOD)
	return ast.NewContractDef(pos, name, required)
}

// parseMethodCallStatement handles `call` METHOD `on` OBJ [`with` args]
// [`and store as` NAME] `.`.
func (p *Parser) parseMethodCallStatement() ast.Statement {
	pos := p.advance().Pos // CALL
	method, ok := p.expectIdent()
	if !ok {
		return nil
	}
	p.expect(token.ON)
	object, ok := p.expectIdent()
	if !ok {
		return nil
	}
	args := p.parseCallArgumentList()

	if storeName, hasStore := p.parseStoreAs(); hasStore {
		p.expect(token.PERIOD)
		return ast.NewVarDecl(pos, storeName, ast.NewMethodCall(pos, object, method, args), false)
	}

	p.expect(token.PERIOD)
	return ast.NewMethodCall(pos, object, method, args)
}
