package interp

import (
	"strings"

	"github.com/frugurt-lang/frugurt/pkg/ident"

	"github.com/frugurt-lang/frugurt/internal/ast"
)

// FruObject is an instance of a user-defined type. Fields are
// addressed by the type's field order; the vector length always
// equals the type's field count.
type FruObject struct {
	typ    *FruType
	fields []Value
	uid    uint64
}

func newObject(t *FruType, fields []Value) *FruObject {
	return &FruObject{typ: t, fields: fields, uid: nextUID()}
}

// Type returns the declared name of the object's type.
func (o *FruObject) Type() string { return o.typ.ident.String() }

// String renders the object as Type{field=value, ...}.
func (o *FruObject) String() string {
	var sb strings.Builder
	sb.WriteString(o.typ.ident.String())
	sb.WriteString("{")
	for i, f := range o.typ.fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Ident.String())
		sb.WriteString("=")
		sb.WriteString(o.fields[i].String())
	}
	sb.WriteString("}")
	return sb.String()
}

// FruType returns the object's type descriptor.
func (o *FruObject) FruType() *FruType { return o.typ }

// UID returns the object's identity token.
func (o *FruObject) UID() uint64 { return o.uid }

// GetProp resolves a member in order: declared field, property
// getter, method (rebound to a fresh object frame), then the type's
// static members.
func (o *FruObject) GetProp(id ident.Ident) (Value, error) {
	if k, ok := o.typ.fieldIndex(id); ok {
		return o.fields[k], nil
	}

	if prop, ok := o.typ.properties[id]; ok {
		if prop.Getter == nil {
			return nil, newError("property `%s` has no getter", id.String())
		}
		return evalGetter(prop.Getter, NewObjectScope(o))
	}

	if m, ok := o.typ.methods[id]; ok {
		return &FunctionValue{Params: m.Params, Body: m.Body, Scope: NewObjectScope(o)}, nil
	}

	if v, err := o.typ.GetProp(id); err == nil {
		return v, nil
	}

	return nil, newError("prop `%s` not found", id.String())
}

// SetProp writes a member in order: declared field (rejected for
// data-flavored types), property setter, then the type's static
// members.
func (o *FruObject) SetProp(id ident.Ident, v Value) error {
	if k, ok := o.typ.fieldIndex(id); ok {
		if o.typ.flavor == ast.Data {
			return newError("cannot set field `%s` in `data` type `%s`",
				id.String(), o.typ.ident.String())
		}
		o.fields[k] = v
		return nil
	}

	if prop, ok := o.typ.properties[id]; ok {
		if prop.Setter == nil {
			return newError("property `%s` has no setter", id.String())
		}
		sc := NewObjectScope(o)
		if err := sc.Let(prop.Setter.ValueIdent, v); err != nil {
			return err
		}
		return returnedNothing(execStatement(prop.Setter.Body, sc))
	}

	if err := o.typ.SetProp(id, v); err == nil {
		return nil
	}

	return newError("prop `%s` not found", id.String())
}

// FruClone implements assignment semantics by flavor: struct objects
// copy deeply, class and data objects share.
func (o *FruObject) FruClone() Value {
	if o.typ.flavor != ast.Struct {
		return o
	}
	fields := make([]Value, len(o.fields))
	for i, f := range o.fields {
		fields[i] = FruClone(f)
	}
	return newObject(o.typ, fields)
}
