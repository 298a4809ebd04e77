package ast

import "github.com/kaynat-lang/kaynat/internal/token"

// FunctionDef is `define a function called name [that takes p1, p2]. body end.`
type FunctionDef struct {
	base
	Name       string
	Parameters []string
	Body       []Statement
}

func NewFunctionDef(pos token.Position, name string, params []string, body []Statement) *FunctionDef {
	return &FunctionDef{base: newBase(pos), Name: name, Parameters: params, Body: body}
}
func (*FunctionDef) statementNode() {}

// FunctionCall is `call name [with a1, a2] [and store as result].` As a
// statement it discards its value unless wrapped by the parser in a VarDecl
// for the "and store as" form, where it serves as that VarDecl's value
// Expression. No other expression production yields a FunctionCall.
type FunctionCall struct {
	base
	Name      string
	Arguments []Expression
}

func NewFunctionCall(pos token.Position, name string, args []Expression) *FunctionCall {
	return &FunctionCall{base: newBase(pos), Name: name, Arguments: args}
}
func (*FunctionCall) statementNode()  {}
func (*FunctionCall) expressionNode() {}
