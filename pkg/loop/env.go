package loop

// Env is a scoped environment for variable bindings.
// It supports parent-chained lookup for lexical scoping; each loop
// iteration binds the loop variable in a fresh child scope.
type Env struct {
	bindings map[string]Value
	parent   *Env
}

// NewEnv creates a new environment with an optional parent scope.
func NewEnv(parent *Env) *Env {
	return &Env{
		bindings: make(map[string]Value),
		parent:   parent,
	}
}

// Child creates a new child scope whose parent is this environment.
func (e *Env) Child() *Env {
	return NewEnv(e)
}

// Get looks up a variable by name, traversing parent scopes.
func (e *Env) Get(name string) (Value, bool) {
	if val, ok := e.bindings[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Set binds a variable in this scope, shadowing any outer binding.
func (e *Env) Set(name string, val Value) {
	e.bindings[name] = val
}

// Assign updates a variable in the scope where it is defined, traversing
// parent scopes. It reports whether the variable was found. This is what
// body assignments like `x = x + 1` inside a while loop go through.
func (e *Env) Assign(name string, val Value) bool {
	if _, ok := e.bindings[name]; ok {
		e.bindings[name] = val
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, val)
	}
	return false
}

// Has checks whether a variable is defined in this scope or any parent.
func (e *Env) Has(name string) bool {
	if _, ok := e.bindings[name]; ok {
		return true
	}
	if e.parent != nil {
		return e.parent.Has(name)
	}
	return false
}
