// Package ast defines the syntax tree produced by the parser.
package ast

import "github.com/kaynat-lang/kaynat/internal/token"

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Position
	node()
}

// Statement is a Node that appears directly in a statement list.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: an ordered list of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) == 0 {
		return token.Position{Line: 1, Column: 1}
	}
	return p.Statements[0].Pos()
}
func (p *Program) node() {}

// base embeds a source position into every node without repeating the field.
type base struct {
	position token.Position
}

func (b base) Pos() token.Position { return b.position }
func (b base) node()               {}

func newBase(pos token.Position) base { return base{position: pos} }
