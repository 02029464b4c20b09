package evaluator

import "sort"

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// Environment is one scope in the lexical chain. The outer link is
// non-owning; whoever built the chain manages the ancestors' lifetimes.
type Environment struct {
	store    map[string]Object
	outer    *Environment
	readOnly bool
}

// Outer returns the parent scope, or nil at the root.
func (e *Environment) Outer() *Environment { return e.outer }

// SetOuter rebinds the parent scope. Function application uses it to graft a
// lambda's closure scope onto the calling chain.
func (e *Environment) SetOuter(outer *Environment) { e.outer = outer }

// MarkReadOnly freezes existing bindings in this scope: DefineLocal refuses
// to overwrite them from now on.
func (e *Environment) MarkReadOnly() { e.readOnly = true }

// Lookup walks outward from this scope and returns a copy of the first
// binding for name. A miss yields an Error value, not an out-of-band failure.
func (e *Environment) Lookup(name string) Object {
	if obj, ok := e.store[name]; ok {
		return CopyObject(obj)
	}
	if e.outer != nil {
		return e.outer.Lookup(name)
	}
	return newError("unbound symbol '%s'", name)
}

// DefineLocal inserts or overwrites the binding in this scope only, storing
// a copy of val. The returned flag reports refusal: true when the scope is
// read-only and already binds name. Callers map refusals to user-facing
// Errors themselves.
func (e *Environment) DefineLocal(name string, val Object) bool {
	if e.readOnly {
		if _, ok := e.store[name]; ok {
			return true
		}
	}
	e.store[name] = CopyObject(val)
	return false
}

// DefineGlobal binds name in the outermost mutable scope, regardless of
// current lexical depth. The write is refused when a read-only ancestor
// beyond that scope already binds name, so builtins stay fixed while user
// globals remain rebindable.
func (e *Environment) DefineGlobal(name string, val Object) bool {
	target := e
	for target.outer != nil && !target.outer.readOnly {
		target = target.outer
	}
	for ancestor := target.outer; ancestor != nil; ancestor = ancestor.outer {
		if ancestor.readOnly {
			if _, ok := ancestor.store[name]; ok {
				return true
			}
		}
	}
	return target.DefineLocal(name, val)
}

// Copy produces an independent environment with the same outer link and
// read-only flag and a deep copy of every binding.
func (e *Environment) Copy() *Environment {
	rv := &Environment{
		store:    make(map[string]Object, len(e.store)),
		outer:    e.outer,
		readOnly: e.readOnly,
	}
	for k, v := range e.store {
		rv.store[k] = CopyObject(v)
	}
	return rv
}

// Snapshot reifies the bindings of this scope only, not its ancestors, as a
// Qexpr of {name value} pairs. Names are sorted so the result is stable.
func (e *Environment) Snapshot() *Qexpr {
	names := make([]string, 0, len(e.store))
	for name := range e.store {
		names = append(names, name)
	}
	sort.Strings(names)

	rv := &Qexpr{}
	for _, name := range names {
		pair := &Qexpr{}
		pair.Add(&String{Value: name})
		pair.Add(CopyObject(e.store[name]))
		rv.Add(pair)
	}
	return rv
}

// Release drops every binding in this scope. Teardown walks the chain with
// it so long-lived embedders stop referencing interned values promptly.
func (e *Environment) Release() {
	e.store = make(map[string]Object)
}
