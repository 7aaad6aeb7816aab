// Package interp provides the tree-walking interpreter and runtime
// for Frugurt.
package interp

import (
	"strconv"
	"sync/atomic"

	"github.com/frugurt-lang/frugurt/pkg/ident"
)

// Value represents a runtime value in the Frugurt interpreter.
// All runtime values must implement this interface.
type Value interface {
	// Type returns the type name of the value (e.g. "Number").
	Type() string
	// String returns the debug form of the value, used by print and
	// error messages.
	String() string
}

// uidCounter hands out identity tokens for scopes, types, objects,
// and native values. Operator keys and reflection rely on them.
var uidCounter uint64

func nextUID() uint64 {
	return atomic.AddUint64(&uidCounter, 1)
}

// NahValue is the unit value. There is exactly one instance, Nah.
type NahValue struct{}

// Nah is the sole unit value.
var Nah Value = &NahValue{}

// Type returns "Nah".
func (*NahValue) Type() string { return "Nah" }

// String returns "nah".
func (*NahValue) String() string { return "nah" }

// NumberValue is an IEEE-754 double.
type NumberValue struct {
	Value float64
}

// Type returns "Number".
func (*NumberValue) Type() string { return "Number" }

// String formats the number the shortest way that round-trips.
func (n *NumberValue) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// BoolValue is a boolean.
type BoolValue struct {
	Value bool
}

// Type returns "Bool".
func (*BoolValue) Type() string { return "Bool" }

// String returns "true" or "false".
func (b *BoolValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NewNumber creates a NumberValue.
func NewNumber(v float64) Value { return &NumberValue{Value: v} }

// NewBool creates a BoolValue.
func NewBool(v bool) Value { return &BoolValue{Value: v} }

// GoNumber converts a Value to a Go float64. Errors if the value is
// not a Number.
func GoNumber(v Value) (float64, error) {
	if n, ok := v.(*NumberValue); ok {
		return n.Value, nil
	}
	return 0, newError("value is not a number: `%s`", v.Type())
}

// GoBool converts a Value to a Go bool. Errors if the value is not a
// Bool.
func GoBool(v Value) (bool, error) {
	if b, ok := v.(*BoolValue); ok {
		return b.Value, nil
	}
	return false, newError("value is not a bool: `%s`", v.Type())
}

// GoString converts a Value to a Go string. Errors if the value is
// not a String.
func GoString(v Value) (string, error) {
	if s, ok := v.(*StringValue); ok {
		return s.Value, nil
	}
	return "", newError("value is not a string: `%s`", v.Type())
}

// TypeOf returns the type of a value: the FruType of an object, the
// native type of a native value, or the builtin singleton otherwise.
func TypeOf(v Value) Value {
	switch v := v.(type) {
	case *NahValue:
		return NahType
	case *NumberValue:
		return NumberType
	case *BoolValue:
		return BoolType
	case *FunctionValue, *BuiltinFunctionValue, *CurriedValue:
		return FunctionType
	case *FruType:
		return TypeType
	case *FruObject:
		return v.FruType()
	case Native:
		return v.NativeType()
	default:
		return NahType
	}
}

// typeUID returns the identity token of a type value, for use in
// operator keys.
func typeUID(v Value) (uint64, error) {
	switch v := v.(type) {
	case *FruType:
		return v.uid, nil
	case Native:
		return v.UID(), nil
	default:
		return 0, newError("`%s` is not a type", v.String())
	}
}

// Equals reports whether two values are equal: structural for
// primitives, identity for types, type identity plus field-wise
// equality for objects. Native values dispatch to the `==` operator
// registered on the left type and compare unequal when none exists.
func Equals(a, b Value) bool {
	switch av := a.(type) {
	case *NahValue:
		_, ok := b.(*NahValue)
		return ok
	case *NumberValue:
		bv, ok := b.(*NumberValue)
		return ok && av.Value == bv.Value
	case *BoolValue:
		bv, ok := b.(*BoolValue)
		return ok && av.Value == bv.Value
	case *FruType:
		bv, ok := b.(*FruType)
		return ok && av == bv
	case *BuiltinType:
		bv, ok := b.(*BuiltinType)
		return ok && av == bv
	case *FruObject:
		bv, ok := b.(*FruObject)
		if !ok || av.FruType() != bv.FruType() {
			return false
		}
		for k := range av.fields {
			if !Equals(av.fields[k], bv.fields[k]) {
				return false
			}
		}
		return true
	case Native:
		return nativeEquals(av, b)
	default:
		return false
	}
}

func nativeEquals(a Native, b Value) bool {
	op, err := lookupOperator(ident.Eq, TypeOf(a), TypeOf(b))
	if err != nil {
		return false
	}
	res, err := op.Operate(a, b)
	if err != nil {
		return false
	}
	eq, ok := res.(*BoolValue)
	return ok && eq.Value
}

// FruClone returns the value stored on assignment: a deep copy for
// Struct-flavored objects, the value itself for everything else.
func FruClone(v Value) Value {
	switch v := v.(type) {
	case *FruObject:
		return v.FruClone()
	case Cloner:
		return v.FruClone()
	default:
		return v
	}
}

// Call invokes a value with an evaluated argument list.
func Call(v Value, args EvaluatedArgs) (Value, error) {
	switch v := v.(type) {
	case *FunctionValue:
		return v.Call(args)
	case *BuiltinFunctionValue:
		return v.Call(args)
	case *CurriedValue:
		return v.Call(args)
	default:
		if c, ok := v.(Callable); ok {
			return c.Call(args)
		}
		return nil, newError("`%s` is not invokable", v.Type())
	}
}

// CurryCall partially applies arguments to an invokable value.
// Currying a curried value merges the argument lists instead of
// nesting wrappers.
func CurryCall(v Value, args EvaluatedArgs) (Value, error) {
	switch v := v.(type) {
	case *CurriedValue:
		return v.Curry(args), nil
	case *FunctionValue, *BuiltinFunctionValue:
		return &CurriedValue{What: v, Saved: args}, nil
	default:
		if _, ok := v.(Callable); ok {
			return &CurriedValue{What: v, Saved: args}, nil
		}
		return nil, newError("`%s` is not invokable", v.Type())
	}
}

// Instantiate constructs an instance of a type value.
func Instantiate(v Value, args EvaluatedArgs) (Value, error) {
	switch v := v.(type) {
	case *FruType:
		return v.Instantiate(args)
	default:
		if n, ok := v.(Instantiable); ok {
			return n.Instantiate(args)
		}
		return nil, newError("`%s` is not instantiatable", v.Type())
	}
}

// GetProp reads a field, property, method, or static member of a
// value.
func GetProp(v Value, id ident.Ident) (Value, error) {
	switch v := v.(type) {
	case *FruType:
		return v.GetProp(id)
	case *FruObject:
		return v.GetProp(id)
	default:
		if n, ok := v.(PropGetter); ok {
			return n.GetProp(id)
		}
		return nil, newError("cannot access prop of `%s`", v.Type())
	}
}

// SetProp writes a field, property, or static member of a value.
func SetProp(v Value, id ident.Ident, value Value) error {
	switch v := v.(type) {
	case *FruType:
		return v.SetProp(id, value)
	case *FruObject:
		return v.SetProp(id, value)
	default:
		if n, ok := v.(PropSetter); ok {
			return n.SetProp(id, value)
		}
		return newError("cannot set prop of `%s`", v.Type())
	}
}
