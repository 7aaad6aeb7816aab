package interp

import (
	"github.com/frugurt-lang/frugurt/pkg/ident"
)

// Scope is a lexical variable frame chained to a parent. Object and
// type frames additionally forward lookups to the injected object's
// or type's properties before continuing up the chain.
//
// Scopes form a DAG: closures keep a reference to their defining
// scope, so a scope may outlive the call that created it.
type Scope struct {
	variables map[ident.Ident]Value
	parent    *Scope
	object    *FruObject
	typeOwner *FruType
	interp    *Interpreter
	uid       uint64
}

// NewChildScope creates an empty frame whose parent is parent.
func NewChildScope(parent *Scope) *Scope {
	return &Scope{
		variables: map[ident.Ident]Value{},
		parent:    parent,
		interp:    parent.interp,
		uid:       nextUID(),
	}
}

// NewObjectScope creates a frame that injects an object. Lookups
// consult the object's props first; the parent is the scope the
// object's type was declared in.
func NewObjectScope(object *FruObject) *Scope {
	parent := object.FruType().scope
	return &Scope{
		variables: map[ident.Ident]Value{},
		parent:    parent,
		object:    object,
		interp:    parent.interp,
		uid:       nextUID(),
	}
}

// NewTypeScope creates a frame that injects a type, for static
// methods and static property accessors.
func NewTypeScope(t *FruType) *Scope {
	parent := t.scope
	return &Scope{
		variables: map[ident.Ident]Value{},
		parent:    parent,
		typeOwner: t,
		interp:    parent.interp,
		uid:       nextUID(),
	}
}

// UID returns the scope's identity token. The reflective Scope value
// exposes it, and debugging output uses it.
func (s *Scope) UID() uint64 { return s.uid }

// Get resolves a variable by walking the scope chain. Object and
// type frames try their injected value's props before deferring to
// the parent.
func (s *Scope) Get(id ident.Ident) (Value, error) {
	if v, ok := s.variables[id]; ok {
		return v, nil
	}
	switch {
	case s.object != nil:
		if v, err := s.object.GetProp(id); err == nil {
			return v, nil
		}
	case s.typeOwner != nil:
		if v, err := s.typeOwner.GetProp(id); err == nil {
			return v, nil
		}
	}
	if s.parent != nil {
		return s.parent.Get(id)
	}
	return nil, newError("variable `%s` does not exist", id.String())
}

// Let installs a new variable in this frame. It fails if the frame
// already defines the name.
func (s *Scope) Let(id ident.Ident, v Value) error {
	if _, exists := s.variables[id]; exists {
		return newError("variable `%s` already exists", id.String())
	}
	s.variables[id] = v
	return nil
}

// Set rewrites the nearest binding of id, walking parents. Object and
// type frames attempt a prop write first.
func (s *Scope) Set(id ident.Ident, v Value) error {
	if _, exists := s.variables[id]; exists {
		s.variables[id] = v
		return nil
	}
	switch {
	case s.object != nil:
		if err := s.object.SetProp(id, v); err == nil {
			return nil
		}
	case s.typeOwner != nil:
		if err := s.typeOwner.SetProp(id, v); err == nil {
			return nil
		}
	}
	if s.parent != nil {
		return s.parent.Set(id, v)
	}
	return newError("variable `%s` does not exist", id.String())
}

// Has reports whether this frame itself defines id.
func (s *Scope) Has(id ident.Ident) bool {
	_, ok := s.variables[id]
	return ok
}

// LetSet unconditionally installs id in this frame, shadowing or
// overwriting. The reflective Scope wrapper assigns through it.
func (s *Scope) LetSet(id ident.Ident, v Value) {
	s.variables[id] = v
}
