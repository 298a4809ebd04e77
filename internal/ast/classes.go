package ast

import "github.com/kaynat-lang/kaynat/internal/token"

// ClassDef is `define a [abstract] blueprint called Name [extends Parent].
// members end.`
type ClassDef struct {
	base
	Name       string
	Parent     string // "" when absent
	Properties []string
	Methods    []*FunctionDef
	IsAbstract bool
}

func NewClassDef(pos token.Position, name, parent string, properties []string, methods []*FunctionDef, isAbstract bool) *ClassDef {
	return &ClassDef{base: newBase(pos), Name: name, Parent: parent, Properties: properties, Methods: methods, IsAbstract: isAbstract}
}
func (*ClassDef) statementNode() {}

// ContractDef is `define a contract called Name. (it requires M.)* end.`
type ContractDef struct {
	base
	Name             string
	RequiredMethods  []string
}

func NewContractDef(pos token.Position, name string, required []string) *ContractDef {
	return &ContractDef{base: newBase(pos), Name: name, RequiredMethods: required}
}
func (*ContractDef) statementNode() {}

// CreateInstance is `create a new Class called name [with a1, a2].`
type CreateInstance struct {
	base
	ClassName  string
	Arguments  []Expression
	BoundName  string
}

func NewCreateInstance(pos token.Position, className string, args []Expression, boundName string) *CreateInstance {
	return &CreateInstance{base: newBase(pos), ClassName: className, Arguments: args, BoundName: boundName}
}
func (*CreateInstance) statementNode() {}

// MethodCall is `call method on object [with a1, a2] [and store as result].`
// As with FunctionCall, it doubles as an Expression when embedded.
type MethodCall struct {
	base
	Object     string
	Method     string
	Arguments  []Expression
}

func NewMethodCall(pos token.Position, object, method string, args []Expression) *MethodCall {
	return &MethodCall{base: newBase(pos), Object: object, Method: method, Arguments: args}
}
func (*MethodCall) statementNode()  {}
func (*MethodCall) expressionNode() {}
