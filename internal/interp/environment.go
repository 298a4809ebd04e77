package interp

// Environment is one frame of the lexical scope chain. Frames are shared by
// reference: a Function value holds a handle to the frame active at its
// definition site, which is how closures observe later mutations to their
// captured bindings.
type Environment struct {
	parent    *Environment
	variables map[string]Value
	constants map[string]bool
}

// NewEnvironment creates a root environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{variables: make(map[string]Value)}
}

// NewChildEnvironment creates a new frame scoped beneath parent.
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, variables: make(map[string]Value)}
}

// Define inserts name into the current frame, optionally marking it
// constant. A redefinition in the same frame replaces the prior binding and
// its constant mark.
func (e *Environment) Define(name string, value Value, isConstant bool) {
	e.variables[name] = value
	if isConstant {
		if e.constants == nil {
			e.constants = make(map[string]bool)
		}
		e.constants[name] = true
	} else if e.constants != nil {
		delete(e.constants, name)
	}
}

// Get walks the chain outward and returns the first bound value found.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.variables[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Exists reports whether name is bound anywhere along the chain.
func (e *Environment) Exists(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// Set updates the innermost frame that already binds name. It reports
// whether the name was found and whether it is constant there (in which
// case the value is left unchanged).
func (e *Environment) Set(name string, value Value) (found, constant bool) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.variables[name]; ok {
			if env.constants[name] {
				return true, true
			}
			env.variables[name] = value
			return true, false
		}
	}
	return false, false
}

// Delete removes name from the innermost frame that binds it. It reports
// whether the name was found and whether it is constant there (in which
// case nothing is removed).
func (e *Environment) Delete(name string) (found, constant bool) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.variables[name]; ok {
			if env.constants[name] {
				return true, true
			}
			delete(env.variables, name)
			return true, false
		}
	}
	return false, false
}
