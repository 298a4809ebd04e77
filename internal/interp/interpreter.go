// Package interp evaluates a parsed Kaynat program by walking the syntax
// tree directly, without a separate compilation step.
package interp

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/kaynat-lang/kaynat/internal/ast"
	"github.com/kaynat-lang/kaynat/internal/kerrors"
	"github.com/kaynat-lang/kaynat/internal/token"
)

// Interpreter walks an ast.Program against a chain of Environments. Control
// flow (return/break/continue) is modeled as distinct error values that
// propagate up through Exec and are caught at the appropriate boundary,
// rather than as panics.
type Interpreter struct {
	Global  *Environment
	current *Environment

	Stdout io.Writer
	Stdin  *bufio.Reader

	// Trace, when non-nil, receives one line per statement executed,
	// nested statements included. Left nil by New; the CLI wires it in behind --trace.
	Trace io.Writer

	source string
	file   string
}

// New builds an Interpreter with the global constants preloaded. source and
// file are used only to annotate error messages with position context.
func New(source, file string) *Interpreter {
	global := NewEnvironment()
	in := &Interpreter{
		Global:  global,
		current: global,
		Stdout:  os.Stdout,
		Stdin:   bufio.NewReader(os.Stdin),
		source:  source,
		file:    file,
	}
	in.preload()
	return in
}

// preload defines the constants every Kaynat program starts with.
func (in *Interpreter) preload() {
	in.Global.Define("pi", &Number{Value: math.Pi}, true)
	in.Global.Define("e", &Number{Value: math.E}, true)
	in.Global.Define("tau", &Number{Value: 2 * math.Pi}, true)
	in.Global.Define("infinity", &Number{Value: math.Inf(1)}, true)
}

// returnSignal, breakSignal, and continueSignal are the Go values used to
// unwind the call stack for non-local control flow. They satisfy the error
// interface so they can travel through the same return channel as real
// errors, but callers must type-switch on them before treating them as
// failures.
type returnSignal struct{ Value Value }

func (*returnSignal) Error() string { return "return outside a function" }

type breakSignal struct{}

func (*breakSignal) Error() string { return "break outside a loop" }

type continueSignal struct{}

func (*continueSignal) Error() string { return "continue outside a loop" }

func (in *Interpreter) errf(kind kerrors.Kind, pos token.Position, format string, args ...any) error {
	return kerrors.New(kind, pos, fmt.Sprintf(format, args...), in.source, in.file)
}

// Run executes every top-level statement of program in order.
func (in *Interpreter) Run(program *ast.Program) error {
	return in.execBlock(program.Statements)
}

func (in *Interpreter) execBlock(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		if err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// withEnv runs fn with current temporarily set to env, always restoring the
// previous environment afterward (even when fn returns a control signal).
func (in *Interpreter) withEnv(env *Environment, fn func() error) error {
	prev := in.current
	in.current = env
	defer func() { in.current = prev }()
	return fn()
}

func (in *Interpreter) exec(stmt ast.Statement) error {
	if in.Trace != nil {
		pos := stmt.Pos()
		fmt.Fprintf(in.Trace, "%T @%d:%d\n", stmt, pos.Line, pos.Column)
	}

	switch s := stmt.(type) {
	case *ast.VarDecl:
		value, err := in.eval(s.Value)
		if err != nil {
			return err
		}
		in.current.Define(s.Name, value, s.IsConstant)
		return nil

	case *ast.Assignment:
		return in.execAssignment(s)

	case *ast.Print:
		return in.execPrint(s)

	case *ast.Input:
		return in.execInput(s)

	case *ast.Comment:
		return nil

	case *ast.If:
		return in.execIf(s)

	case *ast.While:
		return in.execWhile(s)

	case *ast.Repeat:
		return in.execRepeat(s)

	case *ast.ForEach:
		return in.execForEach(s)

	case *ast.Loop:
		return in.execLoop(s)

	case *ast.Break:
		return &breakSignal{}

	case *ast.Continue:
		return &continueSignal{}

	case *ast.Return:
		var value Value = &Null{}
		if s.Value != nil {
			v, err := in.eval(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{Value: value}

	case *ast.FunctionDef:
		in.current.Define(s.Name, &Function{Name: s.Name, Params: s.Parameters, Body: s.Body, Closure: in.current}, false)
		return nil

	case *ast.FunctionCall:
		_, err := in.evalFunctionCall(s)
		return err

	case *ast.ClassDef:
		return in.execClassDef(s)

	case *ast.ContractDef:
		in.current.Define(s.Name, &Contract{Name: s.Name, RequiredMethods: s.RequiredMethods}, false)
		return nil

	case *ast.CreateInstance:
		return in.execCreateInstance(s)

	case *ast.MethodCall:
		_, err := in.evalMethodCall(s)
		return err

	default:
		return in.errf(kerrors.RuntimeError, stmt.Pos(), "no evaluation rule for %T", stmt)
	}
}

func (in *Interpreter) execAssignment(s *ast.Assignment) error {
	value, err := in.eval(s.Value)
	if err != nil {
		return err
	}

	if receiver, property, ok := ast.PropertyTarget(s.Target); ok {
		inst, err := in.receiverInstance(receiver, s.Pos())
		if err != nil {
			return err
		}
		if _, declared := inst.Properties[property]; !declared {
			return in.errf(kerrors.RuntimeError, s.Pos(), "object of type '%s' has no property '%s'", inst.Blueprint.Name, property)
		}
		inst.Properties[property] = value
		return nil
	}

	found, constant := in.current.Set(s.Target, value)
	if !found {
		return in.errf(kerrors.NameError, s.Pos(), "'%s' is not defined", s.Target)
	}
	if constant {
		return in.errf(kerrors.NameError, s.Pos(), "'%s' is constant and cannot be reassigned", s.Target)
	}
	return nil
}

func (in *Interpreter) execPrint(s *ast.Print) error {
	parts := make([]string, len(s.Values))
	for i, expr := range s.Values {
		v, err := in.eval(expr)
		if err != nil {
			return err
		}
		parts[i] = v.String()
	}
	for i, p := range parts {
		if i > 0 {
			fmt.Fprint(in.Stdout, " ")
		}
		fmt.Fprint(in.Stdout, p)
	}
	fmt.Fprintln(in.Stdout)
	return nil
}

func (in *Interpreter) execInput(s *ast.Input) error {
	fmt.Fprintf(in.Stdout, "Enter %s: ", s.Variable)
	line, _ := in.Stdin.ReadString('\n')
	in.current.Define(s.Variable, &String{Value: trimNewline(line)}, false)
	return nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

func (in *Interpreter) execIf(s *ast.If) error {
	cond, err := in.eval(s.Condition)
	if err != nil {
		return err
	}
	if cond.Truthy() {
		return in.execBlock(s.Then)
	}
	for _, elif := range s.Elifs {
		v, err := in.eval(elif.Condition)
		if err != nil {
			return err
		}
		if v.Truthy() {
			return in.execBlock(elif.Body)
		}
	}
	return in.execBlock(s.Else)
}

func (in *Interpreter) execWhile(s *ast.While) error {
	for {
		cond, err := in.eval(s.Condition)
		if err != nil {
			return err
		}
		if !cond.Truthy() {
			return nil
		}
		if err := in.execBlock(s.Body); err != nil {
			if _, ok := err.(*continueSignal); ok {
				continue
			}
			if _, ok := err.(*breakSignal); ok {
				return nil
			}
			return err
		}
	}
}

func (in *Interpreter) execRepeat(s *ast.Repeat) error {
	countVal, err := in.eval(s.Count)
	if err != nil {
		return err
	}
	n, ok := countVal.(*Number)
	if !ok {
		return in.errf(kerrors.TypeError, s.Pos(), "repeat count must be a number, got %s", countVal.Type())
	}
	count := int(n.Value)
	for i := 0; i < count; i++ {
		if err := in.execBlock(s.Body); err != nil {
			if _, ok := err.(*continueSignal); ok {
				continue
			}
			if _, ok := err.(*breakSignal); ok {
				return nil
			}
			return err
		}
	}
	return nil
}

func (in *Interpreter) execForEach(s *ast.ForEach) error {
	iterVal, err := in.eval(s.Iterable)
	if err != nil {
		return err
	}
	list, ok := iterVal.(*List)
	if !ok {
		return in.errf(kerrors.TypeError, s.Pos(), "can only iterate over lists, got %s", iterVal.Type())
	}

	loopEnv := NewChildEnvironment(in.current)
	return in.withEnv(loopEnv, func() error {
		for _, elem := range list.Elements {
			loopEnv.Define(s.Variable, elem, false)
			if err := in.execBlock(s.Body); err != nil {
				if _, ok := err.(*continueSignal); ok {
					continue
				}
				if _, ok := err.(*breakSignal); ok {
					return nil
				}
				return err
			}
		}
		return nil
	})
}

func (in *Interpreter) execLoop(s *ast.Loop) error {
	startVal, err := in.eval(s.Start)
	if err != nil {
		return err
	}
	endVal, err := in.eval(s.End)
	if err != nil {
		return err
	}
	startNum, ok1 := startVal.(*Number)
	endNum, ok2 := endVal.(*Number)
	if !ok1 || !ok2 {
		return in.errf(kerrors.TypeError, s.Pos(), "loop bounds must be numbers")
	}

	step := 1
	if s.Step != nil {
		stepVal, err := in.eval(s.Step)
		if err != nil {
			return err
		}
		stepNum, ok := stepVal.(*Number)
		if !ok {
			return in.errf(kerrors.TypeError, s.Pos(), "loop step must be a number")
		}
		step = int(stepNum.Value)
	}
	if step == 0 {
		return in.errf(kerrors.ValueError, s.Pos(), "loop step cannot be zero")
	}

	start, end := int(startNum.Value), int(endNum.Value)
	loopEnv := NewChildEnvironment(in.current)
	return in.withEnv(loopEnv, func() error {
		for current := start; (step > 0 && current <= end) || (step < 0 && current >= end); current += step {
			loopEnv.Define("current", &Number{Value: float64(current)}, false)
			if err := in.execBlock(s.Body); err != nil {
				if _, ok := err.(*continueSignal); ok {
					continue
				}
				if _, ok := err.(*breakSignal); ok {
					return nil
				}
				return err
			}
		}
		return nil
	})
}

func (in *Interpreter) execClassDef(s *ast.ClassDef) error {
	var parent *Blueprint
	if s.Parent != "" {
		parentVal, ok := in.current.Get(s.Parent)
		if !ok {
			return in.errf(kerrors.NameError, s.Pos(), "'%s' is not defined", s.Parent)
		}
		bp, ok := parentVal.(*Blueprint)
		if !ok {
			return in.errf(kerrors.TypeError, s.Pos(), "'%s' is not a blueprint", s.Parent)
		}
		parent = bp
	}

	blueprint := NewBlueprint(s.Name, parent, s.Properties, s.IsAbstract)
	for _, m := range s.Methods {
		blueprint.Methods[m.Name] = m
	}
	in.current.Define(s.Name, blueprint, false)
	return nil
}

func (in *Interpreter) execCreateInstance(s *ast.CreateInstance) error {
	bpVal, ok := in.current.Get(s.ClassName)
	if !ok {
		return in.errf(kerrors.NameError, s.Pos(), "'%s' is not defined", s.ClassName)
	}
	blueprint, ok := bpVal.(*Blueprint)
	if !ok {
		return in.errf(kerrors.TypeError, s.Pos(), "'%s' is not a blueprint", s.ClassName)
	}
	if blueprint.IsAbstract {
		return in.errf(kerrors.RuntimeError, s.Pos(), "cannot create an instance of abstract blueprint '%s'", s.ClassName)
	}

	instance := &Instance{Blueprint: blueprint, Properties: make(map[string]Value)}
	for _, prop := range blueprint.AllProperties() {
		instance.Properties[prop] = &Null{}
	}

	args := make([]Value, len(s.Arguments))
	for i, a := range s.Arguments {
		v, err := in.eval(a)
		if err != nil {
			return err
		}
		args[i] = v
	}

	if initMethod, _ := blueprint.LookupMethod("initialize"); initMethod != nil {
		if len(args) != len(initMethod.Parameters) {
			return in.errf(kerrors.RuntimeError, s.Pos(), "constructor expects %d arguments, got %d", len(initMethod.Parameters), len(args))
		}
		initEnv := NewChildEnvironment(in.current)
		initEnv.Define("my", instance, false)
		initEnv.Define("this", instance, false)
		for i, p := range initMethod.Parameters {
			initEnv.Define(p, args[i], false)
		}
		err := in.withEnv(initEnv, func() error { return in.execBlock(initMethod.Body) })
		if _, isReturn := err.(*returnSignal); err != nil && !isReturn {
			return err
		}
	}

	in.current.Define(s.BoundName, instance, false)
	return nil
}

func (in *Interpreter) receiverInstance(receiver string, pos token.Position) (*Instance, error) {
	v, ok := in.current.Get(receiver)
	if !ok {
		return nil, in.errf(kerrors.RuntimeError, pos, "'%s' has no enclosing instance here", receiver)
	}
	inst, ok := v.(*Instance)
	if !ok {
		return nil, in.errf(kerrors.TypeError, pos, "'%s' is not an object instance", receiver)
	}
	return inst, nil
}

// eval evaluates an expression to a Value.
func (in *Interpreter) eval(expr ast.Expression) (Value, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		return &Number{Value: e.Value}, nil

	case *ast.StringLiteral:
		return &String{Value: e.Value}, nil

	case *ast.BooleanLiteral:
		return &Boolean{Value: e.Value}, nil

	case *ast.NullLiteral:
		return &Null{}, nil

	case *ast.Identifier:
		if v, ok := in.current.Get(e.Name); ok {
			return v, nil
		}
		return &String{Value: e.Name}, nil

	case *ast.PropertyAccess:
		inst, err := in.receiverInstance(e.Receiver, e.Pos())
		if err != nil {
			return nil, err
		}
		v, ok := inst.Properties[e.Property]
		if !ok {
			return nil, in.errf(kerrors.RuntimeError, e.Pos(), "object of type '%s' has no property '%s'", inst.Blueprint.Name, e.Property)
		}
		return v, nil

	case *ast.ListLiteral:
		elements := make([]Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := in.eval(el)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return NewList(elements), nil

	case *ast.MapLiteral:
		m := NewMap()
		for _, pair := range e.Pairs {
			k, err := in.eval(pair.Key)
			if err != nil {
				return nil, err
			}
			v, err := in.eval(pair.Value)
			if err != nil {
				return nil, err
			}
			m.Set(k.String(), v)
		}
		return m, nil

	case *ast.BinaryOp:
		return in.evalBinaryOp(e)

	case *ast.UnaryOp:
		return in.evalUnaryOp(e)

	case *ast.Comparison:
		return in.evalComparison(e)

	case *ast.LogicalOp:
		return in.evalLogicalOp(e)

	case *ast.FunctionCall:
		return in.evalFunctionCall(e)

	case *ast.MethodCall:
		return in.evalMethodCall(e)

	default:
		return nil, in.errf(kerrors.RuntimeError, expr.Pos(), "no evaluation rule for %T", expr)
	}
}

func (in *Interpreter) evalBinaryOp(e *ast.BinaryOp) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	ln, lIsNum := left.(*Number)
	rn, rIsNum := right.(*Number)

	switch e.Operator {
	case "+":
		if lIsNum && rIsNum {
			return &Number{Value: ln.Value + rn.Value}, nil
		}
		if _, ok := left.(*String); ok {
			return &String{Value: left.String() + right.String()}, nil
		}
		if _, ok := right.(*String); ok {
			return &String{Value: left.String() + right.String()}, nil
		}
		return nil, in.errf(kerrors.TypeError, e.Pos(), "cannot add %s and %s", left.Type(), right.Type())

	case "-":
		if lIsNum && rIsNum {
			return &Number{Value: ln.Value - rn.Value}, nil
		}
		return nil, in.errf(kerrors.TypeError, e.Pos(), "cannot subtract %s from %s", right.Type(), left.Type())

	case "*":
		if lIsNum && rIsNum {
			return &Number{Value: ln.Value * rn.Value}, nil
		}
		return nil, in.errf(kerrors.TypeError, e.Pos(), "cannot multiply %s and %s", left.Type(), right.Type())

	case "/":
		if lIsNum && rIsNum {
			if rn.Value == 0 {
				return nil, in.errf(kerrors.RuntimeError, e.Pos(), "cannot divide by zero")
			}
			return &Number{Value: ln.Value / rn.Value}, nil
		}
		return nil, in.errf(kerrors.TypeError, e.Pos(), "cannot divide %s by %s", left.Type(), right.Type())

	default:
		return nil, in.errf(kerrors.RuntimeError, e.Pos(), "unknown binary operator %q", e.Operator)
	}
}

func (in *Interpreter) evalUnaryOp(e *ast.UnaryOp) (Value, error) {
	operand, err := in.eval(e.Operand)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case "negative":
		n, ok := operand.(*Number)
		if !ok {
			return nil, in.errf(kerrors.TypeError, e.Pos(), "cannot negate %s", operand.Type())
		}
		return &Number{Value: -n.Value}, nil
	case "not":
		return &Boolean{Value: !operand.Truthy()}, nil
	default:
		return nil, in.errf(kerrors.RuntimeError, e.Pos(), "unknown unary operator %q", e.Operator)
	}
}

func (in *Interpreter) evalComparison(e *ast.Comparison) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	if e.Operator == "==" {
		return &Boolean{Value: Equals(left, right)}, nil
	}
	if e.Operator == "!=" {
		return &Boolean{Value: !Equals(left, right)}, nil
	}

	ln, lok := left.(*Number)
	rn, rok := right.(*Number)
	if !lok || !rok {
		return nil, in.errf(kerrors.TypeError, e.Pos(), "cannot compare %s and %s", left.Type(), right.Type())
	}
	switch e.Operator {
	case ">":
		return &Boolean{Value: ln.Value > rn.Value}, nil
	case "<":
		return &Boolean{Value: ln.Value < rn.Value}, nil
	case ">=":
		return &Boolean{Value: ln.Value >= rn.Value}, nil
	case "<=":
		return &Boolean{Value: ln.Value <= rn.Value}, nil
	default:
		return nil, in.errf(kerrors.RuntimeError, e.Pos(), "unknown comparison operator %q", e.Operator)
	}
}

func (in *Interpreter) evalLogicalOp(e *ast.LogicalOp) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Operator {
	case "and":
		if !left.Truthy() {
			return &Boolean{Value: false}, nil
		}
		right, err := in.eval(e.Right)
		if err != nil {
			return nil, err
		}
		return &Boolean{Value: right.Truthy()}, nil
	case "or":
		if left.Truthy() {
			return &Boolean{Value: true}, nil
		}
		right, err := in.eval(e.Right)
		if err != nil {
			return nil, err
		}
		return &Boolean{Value: right.Truthy()}, nil
	default:
		return nil, in.errf(kerrors.RuntimeError, e.Pos(), "unknown logical operator %q", e.Operator)
	}
}

// fileBuiltins names every host function that touches the filesystem
// (mirroring internal/builtins/files.go's registration list), so their
// failures surface as a FileError rather than a generic RuntimeError.
var fileBuiltins = map[string]bool{
	"read_file":        true,
	"read_lines":       true,
	"write_file":       true,
	"append_file":      true,
	"file_exists":      true,
	"delete_file":      true,
	"copy_file":        true,
	"move_file":        true,
	"create_directory": true,
	"delete_directory": true,
	"directory_exists": true,
	"list_directory":   true,
}

func (in *Interpreter) evalFunctionCall(e *ast.FunctionCall) (Value, error) {
	callee, ok := in.current.Get(e.Name)
	if !ok {
		return nil, in.errf(kerrors.NameError, e.Pos(), "'%s' is not defined", e.Name)
	}

	args := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *Builtin:
		result, err := fn.Fn(args)
		if err != nil {
			if fileBuiltins[e.Name] {
				return nil, kerrors.NewFileError(e.Pos(), err.Error(), in.source, in.file)
			}
			return nil, in.errf(kerrors.RuntimeError, e.Pos(), "error calling built-in function '%s': %s", e.Name, err)
		}
		return result, nil

	case *Function:
		if len(args) != len(fn.Params) {
			return nil, in.errf(kerrors.RuntimeError, e.Pos(), "function '%s' expects %d arguments, got %d", e.Name, len(fn.Params), len(args))
		}
		callEnv := NewChildEnvironment(fn.Closure)
		for i, p := range fn.Params {
			callEnv.Define(p, args[i], false)
		}
		var result Value = &Null{}
		err := in.withEnv(callEnv, func() error { return in.execBlock(fn.Body) })
		if ret, ok := err.(*returnSignal); ok {
			result = ret.Value
		} else if err != nil {
			return nil, err
		}
		return result, nil

	default:
		return nil, in.errf(kerrors.TypeError, e.Pos(), "'%s' is not a function", e.Name)
	}
}

func (in *Interpreter) evalMethodCall(e *ast.MethodCall) (Value, error) {
	objVal, ok := in.current.Get(e.Object)
	if !ok {
		return nil, in.errf(kerrors.NameError, e.Pos(), "'%s' is not defined", e.Object)
	}
	inst, ok := objVal.(*Instance)
	if !ok {
		return nil, in.errf(kerrors.TypeError, e.Pos(), "'%s' is not an object instance", e.Object)
	}

	method, _ := inst.Blueprint.LookupMethod(e.Method)
	if method == nil {
		return nil, in.errf(kerrors.RuntimeError, e.Pos(), "object of type '%s' has no method '%s'", inst.Blueprint.Name, e.Method)
	}

	args := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	if len(args) != len(method.Parameters) {
		return nil, in.errf(kerrors.RuntimeError, e.Pos(), "method '%s' expects %d arguments, got %d", e.Method, len(method.Parameters), len(args))
	}

	methodEnv := NewChildEnvironment(in.current)
	methodEnv.Define("my", inst, false)
	methodEnv.Define("this", inst, false)
	for i, p := range method.Parameters {
		methodEnv.Define(p, args[i], false)
	}

	var result Value = &Null{}
	err := in.withEnv(methodEnv, func() error { return in.execBlock(method.Body) })
	if ret, ok := err.(*returnSignal); ok {
		result = ret.Value
	} else if err != nil {
		return nil, err
	}
	return result, nil
}
