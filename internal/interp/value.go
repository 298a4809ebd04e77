package interp

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kaynat-lang/kaynat/internal/ast"
)

// Value is a Kaynat runtime value. The closed set of implementations below
// mirrors the tagged sum type in the language specification; there is no
// interface{} payload anywhere in the runtime.
type Value interface {
	Type() string
	String() string
	Truthy() bool
}

// Number is the language's only numeric kind (no separate integer type).
type Number struct{ Value float64 }

func (n *Number) Type() string { return "Number" }

// String renders without a trailing ".0" for integral values, per the
// integral-rendering invariant.
func (n *Number) String() string {
	if !math.IsInf(n.Value, 0) && n.Value == math.Trunc(n.Value) && math.Abs(n.Value) < 1e15 {
		return strconv.FormatInt(int64(n.Value), 10)
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}
func (n *Number) Truthy() bool { return n.Value != 0 }

// String is a Kaynat text value.
type String struct{ Value string }

func (s *String) Type() string   { return "String" }
func (s *String) String() string { return s.Value }
func (s *String) Truthy() bool   { return len(s.Value) > 0 }

// Boolean is `true`/`yes` or `false`/`no`.
type Boolean struct{ Value bool }

func (b *Boolean) Type() string { return "Boolean" }
func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b *Boolean) Truthy() bool { return b.Value }

// Null is `nothing`.
type Null struct{}

func (*Null) Type() string   { return "Null" }
func (*Null) String() string { return "nothing" }
func (*Null) Truthy() bool   { return false }

// List is an ordered, mutable sequence of values.
type List struct{ Elements []Value }

func NewList(elements []Value) *List { return &List{Elements: elements} }

func (l *List) Type() string { return "List" }
func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (l *List) Truthy() bool { return len(l.Elements) > 0 }

// Map is a string-keyed mapping. Insertion order is tracked only so Print
// rendering is deterministic; the specification does not assign it meaning.
type Map struct {
	keys   []string
	values map[string]Value
}

func NewMap() *Map { return &Map{values: make(map[string]Value)} }

func (m *Map) Type() string { return "Map" }

func (m *Map) String() string {
	parts := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, m.values[k].String()))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
func (m *Map) Truthy() bool { return len(m.keys) > 0 }

func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Map) Set(key string, v Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

func (m *Map) Delete(key string) {
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

func (m *Map) Keys() []string { return m.keys }
func (m *Map) Len() int       { return len(m.keys) }

// Function is a user-defined closure: a parameter list, a body, and a
// handle to the environment live at its definition site.
type Function struct {
	Name    string
	Params  []string
	Body    []ast.Statement
	Closure *Environment
}

func (f *Function) Type() string   { return "Function" }
func (f *Function) String() string { return fmt.Sprintf("<function %s>", f.Name) }
func (f *Function) Truthy() bool   { return true }

// BuiltinFunc is the host-side signature every built-in callable implements,
// per the §4.5 registry contract: evaluated arguments in, a lifted value or
// error out.
type BuiltinFunc func(args []Value) (Value, error)

// Builtin wraps a host function under a stable name.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (b *Builtin) Type() string   { return "Builtin" }
func (b *Builtin) String() string { return fmt.Sprintf("<builtin %s>", b.Name) }
func (b *Builtin) Truthy() bool   { return true }

// Blueprint is a user-defined class: own properties and methods plus an
// optional parent for single inheritance.
type Blueprint struct {
	Name       string
	Parent     *Blueprint
	Properties []string
	Methods    map[string]*ast.FunctionDef
	IsAbstract bool
}

func NewBlueprint(name string, parent *Blueprint, properties []string, isAbstract bool) *Blueprint {
	return &Blueprint{Name: name, Parent: parent, Properties: properties, Methods: make(map[string]*ast.FunctionDef), IsAbstract: isAbstract}
}

func (b *Blueprint) Type() string   { return "Blueprint" }
func (b *Blueprint) String() string { return fmt.Sprintf("<blueprint %s>", b.Name) }
func (b *Blueprint) Truthy() bool   { return true }

// AllProperties returns every property name declared by b or any ancestor,
// parent-first so a child's own declarations naturally shadow nothing (a
// property name is expected to appear once across the chain).
func (b *Blueprint) AllProperties() []string {
	var chain []*Blueprint
	for cur := b; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	var props []string
	for i := len(chain) - 1; i >= 0; i-- {
		props = append(props, chain[i].Properties...)
	}
	return props
}

// LookupMethod walks the inheritance chain from b upward, returning the
// first method found by name and the blueprint that declares it.
func (b *Blueprint) LookupMethod(name string) (*ast.FunctionDef, *Blueprint) {
	for cur := b; cur != nil; cur = cur.Parent {
		if m, ok := cur.Methods[name]; ok {
			return m, cur
		}
	}
	return nil, nil
}

// Instance is a concrete object created from a Blueprint.
type Instance struct {
	Blueprint  *Blueprint
	Properties map[string]Value
}

func (i *Instance) Type() string   { return "Instance" }
func (i *Instance) String() string { return fmt.Sprintf("<%s instance>", i.Blueprint.Name) }
func (i *Instance) Truthy() bool   { return true }

// Contract records a set of method names a conforming blueprint must
// implement. The specification makes runtime conformance checking optional;
// Kaynat records contracts but does not enforce them automatically.
type Contract struct {
	Name            string
	RequiredMethods []string
}

func (c *Contract) Type() string   { return "Contract" }
func (c *Contract) String() string { return fmt.Sprintf("<contract %s>", c.Name) }
func (c *Contract) Truthy() bool   { return true }

// Equals implements the primitive-equality rule used by `==`/`!=`: numbers,
// strings, and booleans compare by value; Null equals only Null; every
// other pair (including two distinct composite values) compares by
// reference.
func Equals(a, b Value) bool {
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Null:
		_, ok := b.(*Null)
		return ok
	default:
		return a == b
	}
}
