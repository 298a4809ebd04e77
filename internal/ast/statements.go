package ast

import "github.com/kaynat-lang/kaynat/internal/token"

// Print is `say/print/show v1, v2, ... .`
type Print struct {
	base
	Values []Expression
}

func NewPrint(pos token.Position, values []Expression) *Print {
	return &Print{base: newBase(pos), Values: values}
}
func (*Print) statementNode() {}

// Input is `ask the user for name.`
type Input struct {
	base
	Variable string
}

func NewInput(pos token.Position, variable string) *Input {
	return &Input{base: newBase(pos), Variable: variable}
}
func (*Input) statementNode() {}

// Comment is `note.`; it has no runtime effect.
type Comment struct{ base }

func NewComment(pos token.Position) *Comment { return &Comment{base: newBase(pos)} }
func (*Comment) statementNode()               {}
