package ast

import "github.com/kaynat-lang/kaynat/internal/token"

// VarDecl introduces a new binding: `set x to v.`, `let x to v.`, or the
// constant form `always set x as v.`.
type VarDecl struct {
	base
	Name       string
	Value      Expression
	IsConstant bool
}

func NewVarDecl(pos token.Position, name string, value Expression, isConstant bool) *VarDecl {
	return &VarDecl{base: newBase(pos), Name: name, Value: value, IsConstant: isConstant}
}
func (*VarDecl) statementNode() {}

// Assignment rebinds an existing name (`change x to v.`) or a property on
// the implicit receiver (`change my x to v.` / `set my x to v.`).
// Target is either a bare variable name, or "my <prop>"/"this <prop>" for
// property assignment.
type Assignment struct {
	base
	Target string
	Value  Expression
}

func NewAssignment(pos token.Position, target string, value Expression) *Assignment {
	return &Assignment{base: newBase(pos), Target: target, Value: value}
}
func (*Assignment) statementNode() {}

// PropertyTarget reports whether an Assignment.Target names a property
// assignment ("my x" / "this x"), returning the receiver pseudo-name and
// property name when it does.
func PropertyTarget(target string) (receiver, property string, ok bool) {
	for _, prefix := range []string{"my ", "this "} {
		if len(target) > len(prefix) && target[:len(prefix)] == prefix {
			return target[:len(prefix)-1], target[len(prefix):], true
		}
	}
	return "", "", false
}
