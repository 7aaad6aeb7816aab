package interp

import (
	"github.com/frugurt-lang/frugurt/pkg/ident"

	"github.com/frugurt-lang/frugurt/internal/ast"
)

// FruType is a user-defined type descriptor. The shape (fields,
// properties, methods) is immutable after declaration; static fields
// are the one mutable slot. The descriptor is shared by reference:
// two *FruType pointers are the same type exactly when they are
// equal.
type FruType struct {
	operatorTable

	ident            ident.Ident
	flavor           ast.Flavor
	fields           []ast.Field
	staticFields     map[ident.Ident]Value
	properties       map[ident.Ident]ast.Property
	staticProperties map[ident.Ident]ast.Property
	methods          map[ident.Ident]ast.Method
	staticMethods    map[ident.Ident]ast.Method
	scope            *Scope
	uid              uint64
}

// Type returns "Type".
func (*FruType) Type() string { return "Type" }

// String returns the type's declared name.
func (t *FruType) String() string { return t.ident.String() }

// Ident returns the declared name of the type.
func (t *FruType) Ident() ident.Ident { return t.ident }

// Flavor returns the type's mutation/copy stance.
func (t *FruType) Flavor() ast.Flavor { return t.flavor }

// Fields returns the declared instance fields, in declaration order.
func (t *FruType) Fields() []ast.Field { return t.fields }

// fieldIndex resolves a field name to its slot in the field vector.
func (t *FruType) fieldIndex(id ident.Ident) (int, bool) {
	for i, f := range t.fields {
		if f.Ident == id {
			return i, true
		}
	}
	return 0, false
}

// GetProp resolves a static member: static field, then static
// property getter, then static method (rebound to a fresh type
// frame).
func (t *FruType) GetProp(id ident.Ident) (Value, error) {
	if v, ok := t.staticFields[id]; ok {
		return v, nil
	}

	if prop, ok := t.staticProperties[id]; ok {
		if prop.Getter == nil {
			return nil, newError("property `%s` has no getter", id.String())
		}
		return evalGetter(prop.Getter, NewTypeScope(t))
	}

	if m, ok := t.staticMethods[id]; ok {
		return &FunctionValue{Params: m.Params, Body: m.Body, Scope: NewTypeScope(t)}, nil
	}

	return nil, newError("prop `%s` not found", id.String())
}

// SetProp writes a static member: static field, then static property
// setter.
func (t *FruType) SetProp(id ident.Ident, v Value) error {
	if _, ok := t.staticFields[id]; ok {
		t.staticFields[id] = v
		return nil
	}

	if prop, ok := t.staticProperties[id]; ok {
		if prop.Setter == nil {
			return newError("property `%s` has no setter", id.String())
		}
		sc := NewTypeScope(t)
		if err := sc.Let(prop.Setter.ValueIdent, v); err != nil {
			return err
		}
		return returnedNothing(execStatement(prop.Setter.Body, sc))
	}

	return newError("prop `%s` not found", id.String())
}

// Instantiate builds an object from an argument list that is either
// all positional (one value per field, declaration order) or all
// named (every field exactly once).
func (t *FruType) Instantiate(args EvaluatedArgs) (Value, error) {
	if len(args) > 0 && args[0].Name != nil {
		return t.instantiateNamed(args)
	}
	return t.instantiatePositional(args)
}

func (t *FruType) instantiatePositional(args EvaluatedArgs) (Value, error) {
	if len(args) != len(t.fields) {
		return nil, newError("expected %d fields, got %d", len(t.fields), len(args))
	}
	fields := make([]Value, len(args))
	for i, arg := range args {
		if arg.Name != nil {
			return nil, newError("instantiation arguments must be all positional or all named")
		}
		fields[i] = arg.Value
	}
	return newObject(t, fields), nil
}

func (t *FruType) instantiateNamed(args EvaluatedArgs) (Value, error) {
	fields := make([]Value, len(t.fields))
	seen := make(map[ident.Ident]bool, len(args))

	for _, arg := range args {
		if arg.Name == nil {
			return nil, newError("instantiation arguments must be all positional or all named")
		}
		name := *arg.Name
		k, ok := t.fieldIndex(name)
		if !ok {
			return nil, newError("field `%s` does not exist in type `%s`", name.String(), t.ident.String())
		}
		if seen[name] {
			return nil, newError("field `%s` is set twice", name.String())
		}
		seen[name] = true
		fields[k] = arg.Value
	}

	for _, f := range t.fields {
		if !seen[f.Ident] {
			return nil, newError("field `%s` is not set", f.Ident.String())
		}
	}

	return newObject(t, fields), nil
}

// evalGetter evaluates a property getter. A Return signal escaping
// the getter carries the result, the same way a function body does.
func evalGetter(e ast.Expression, sc *Scope) (Value, error) {
	v, err := evalExpression(e, sc)
	if err == nil {
		return v, nil
	}
	return returned(err)
}
