package ast

import "github.com/kaynat-lang/kaynat/internal/token"

// NumberLiteral is a numeric constant.
type NumberLiteral struct {
	base
	Value float64
}

func NewNumberLiteral(pos token.Position, value float64) *NumberLiteral {
	return &NumberLiteral{base: newBase(pos), Value: value}
}
func (*NumberLiteral) expressionNode() {}

// StringLiteral is a bare word rendered as a string (see Identifier for the
// print-context ambiguity this complements).
type StringLiteral struct {
	base
	Value string
}

func NewStringLiteral(pos token.Position, value string) *StringLiteral {
	return &StringLiteral{base: newBase(pos), Value: value}
}
func (*StringLiteral) expressionNode() {}

// BooleanLiteral is `true`/`yes` or `false`/`no`.
type BooleanLiteral struct {
	base
	Value bool
}

func NewBooleanLiteral(pos token.Position, value bool) *BooleanLiteral {
	return &BooleanLiteral{base: newBase(pos), Value: value}
}
func (*BooleanLiteral) expressionNode() {}

// NullLiteral is `nothing`.
type NullLiteral struct{ base }

func NewNullLiteral(pos token.Position) *NullLiteral {
	return &NullLiteral{base: newBase(pos)}
}
func (*NullLiteral) expressionNode() {}

// Identifier is a bare name reference. The interpreter resolves it against
// the environment and, if unbound, renders it as its own spelling.
type Identifier struct {
	base
	Name string
}

func NewIdentifier(pos token.Position, name string) *Identifier {
	return &Identifier{base: newBase(pos), Name: name}
}
func (*Identifier) expressionNode() {}

// PropertyAccess reads `my <property>` or `this <property>` on the current
// method receiver.
type PropertyAccess struct {
	base
	Receiver string // "my" or "this"
	Property string
}

func NewPropertyAccess(pos token.Position, receiver, property string) *PropertyAccess {
	return &PropertyAccess{base: newBase(pos), Receiver: receiver, Property: property}
}
func (*PropertyAccess) expressionNode() {}

// ListLiteral is `a list containing e1, e2, ...`.
type ListLiteral struct {
	base
	Elements []Expression
}

func NewListLiteral(pos token.Position, elements []Expression) *ListLiteral {
	return &ListLiteral{base: newBase(pos), Elements: elements}
}
func (*ListLiteral) expressionNode() {}

// MapPair is one key/value entry of a MapLiteral.
type MapPair struct {
	Key   Expression
	Value Expression
}

// MapLiteral is a map constructed from key/value pairs.
type MapLiteral struct {
	base
	Pairs []MapPair
}

func NewMapLiteral(pos token.Position, pairs []MapPair) *MapLiteral {
	return &MapLiteral{base: newBase(pos), Pairs: pairs}
}
func (*MapLiteral) expressionNode() {}
