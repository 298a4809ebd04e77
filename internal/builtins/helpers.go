// Package builtins implements the host functions exposed to Kaynat
// programs: math, string, list, file, date, random, JSON, crypto, pattern,
// and network tools. Each function is grounded one-for-one on the matching
// original_source/kaynat/stdlib/*.py module, adapted from Python's duck
// typing to Go's explicit Value type switches.
package builtins

import (
	"fmt"

	"github.com/kaynat-lang/kaynat/internal/interp"
)

func wrongArgCount(name string, want, got int) error {
	return fmt.Errorf("%s expects %d argument(s), got %d", name, want, got)
}

func numArg(name string, args []interp.Value, i int) (float64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%s: missing argument %d", name, i+1)
	}
	n, ok := args[i].(*interp.Number)
	if !ok {
		return 0, fmt.Errorf("%s requires a number, got %s", name, args[i].Type())
	}
	return n.Value, nil
}

func strArg(name string, args []interp.Value, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("%s: missing argument %d", name, i+1)
	}
	if s, ok := args[i].(*interp.String); ok {
		return s.Value, nil
	}
	return args[i].String(), nil
}

func listArg(name string, args []interp.Value, i int) (*interp.List, error) {
	if i >= len(args) {
		return nil, fmt.Errorf("%s: missing argument %d", name, i+1)
	}
	l, ok := args[i].(*interp.List)
	if !ok {
		return nil, fmt.Errorf("%s requires a list, got %s", name, args[i].Type())
	}
	return l, nil
}

// optNum returns args[i] as a number if present, or def otherwise.
func optNum(args []interp.Value, i int, def float64) float64 {
	if i >= len(args) {
		return def
	}
	if n, ok := args[i].(*interp.Number); ok {
		return n.Value
	}
	return def
}

// optStr returns args[i] as a string if present, or def otherwise.
func optStr(args []interp.Value, i int, def string) string {
	if i >= len(args) {
		return def
	}
	if s, ok := args[i].(*interp.String); ok {
		return s.Value
	}
	return args[i].String()
}

func boolVal(v bool) *interp.Boolean { return &interp.Boolean{Value: v} }
func numVal(v float64) *interp.Number { return &interp.Number{Value: v} }
func strVal(v string) *interp.String  { return &interp.String{Value: v} }

// registration is the shape every tool file uses to hand its functions to
// RegisterAll.
type registration struct {
	name string
	fn   interp.BuiltinFunc
}

// RegisterAll defines every built-in callable from every tool file into
// env, wrapped as interp.Builtin values per the §4.5 registry contract.
// Called once by the CLI/REPL against the interpreter's global
// environment, mirroring the teacher's builtins_*.go registration
// pattern adapted to a standalone package (this package imports interp,
// so interp itself cannot import builtins back).
func RegisterAll(env *interp.Environment) {
	var all []registration
	all = append(all, mathTools()...)
	all = append(all, stringTools()...)
	all = append(all, listTools()...)
	all = append(all, mapTools()...)
	all = append(all, fileTools()...)
	all = append(all, dateTools()...)
	all = append(all, randomTools()...)
	all = append(all, jsonTools()...)
	all = append(all, cryptoTools()...)
	all = append(all, patternTools()...)
	all = append(all, networkTools()...)

	for _, r := range all {
		env.Define(r.name, &interp.Builtin{Name: r.name, Fn: r.fn}, false)
	}
}
