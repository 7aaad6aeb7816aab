package interp

import (
	"math"
	"strings"

	"github.com/frugurt-lang/frugurt/pkg/ident"
)

var (
	idLength = ident.New("Length")
	idPush   = ident.New("Push")
	idAt     = ident.New("At")
)

// VecValue is the builtin growable collection. Members: Length,
// Push(value), At(index). Elements are shared on assignment.
type VecValue struct {
	elements []Value
	uid      uint64

	push Value
	at   Value
}

// NewVec creates a Vec holding the given elements.
func NewVec(elements []Value) *VecValue {
	v := &VecValue{elements: elements, uid: nextUID()}
	v.push = newBoundMethod(idPush, v, vecPush)
	v.at = newBoundMethod(idAt, v, vecAt)
	return v
}

// Type returns "Vec".
func (*VecValue) Type() string { return "Vec" }

// String renders the vector as [e1, e2, ...].
func (v *VecValue) String() string {
	parts := make([]string, len(v.elements))
	for i, e := range v.elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// UID returns the value's identity token.
func (v *VecValue) UID() uint64 { return v.uid }

// NativeType returns the Vec type singleton.
func (*VecValue) NativeType() Value { return VecType }

// GetProp exposes Length and the Push/At methods.
func (v *VecValue) GetProp(id ident.Ident) (Value, error) {
	switch id {
	case idLength:
		return NewNumber(float64(len(v.elements))), nil
	case idPush:
		return v.push, nil
	case idAt:
		return v.at, nil
	default:
		return nil, newError("`Vec` has no prop `%s`", id.String())
	}
}

// instantiateVec backs `Vec:{...}`: arguments are positional only.
func instantiateVec(args EvaluatedArgs) (Value, error) {
	elements := make([]Value, len(args))
	for i, arg := range args {
		if arg.Name != nil {
			return nil, newError("vector item `%s` can not be named", arg.Name.String())
		}
		elements[i] = arg.Value
	}
	return NewVec(elements), nil
}

func vecPush(v *VecValue, args EvaluatedArgs) (Value, error) {
	if len(args) != 1 {
		return nil, newError("`Push` takes exactly one argument")
	}
	v.elements = append(v.elements, args[0].Value)
	return NewNumber(float64(len(v.elements) - 1)), nil
}

func vecAt(v *VecValue, args EvaluatedArgs) (Value, error) {
	if len(args) != 1 {
		return nil, newError("`At` takes exactly one argument")
	}
	n, err := GoNumber(args[0].Value)
	if err != nil {
		return nil, err
	}
	if n != math.Trunc(n) {
		return nil, newError("index must be an integer, not `%s`", args[0].Value.String())
	}
	if n < 0 || n >= float64(len(v.elements)) {
		return nil, newError("index out of bounds")
	}
	return v.elements[int(n)], nil
}
