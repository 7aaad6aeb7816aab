package interp

import (
	"github.com/frugurt-lang/frugurt/pkg/ident"
)

// The native-object protocol is how host-implemented values take part
// in the language as first-class citizens. A native value implements
// Native plus whichever optional capabilities it supports; dispatch
// in value.go falls back to a typed error when a capability is
// missing. String, Vec, the reflective Scope wrapper, and the builtin
// type singletons all go through this protocol.

// Native is the core of the protocol: every host object has an
// identity token and a type.
type Native interface {
	Value
	// UID returns the value's identity token. Type singletons use it
	// as the operator-key component.
	UID() uint64
	// NativeType returns the type singleton this value belongs to.
	NativeType() Value
}

// Callable is implemented by native values that can be invoked.
type Callable interface {
	Call(args EvaluatedArgs) (Value, error)
}

// Instantiable is implemented by native type singletons that can
// construct instances.
type Instantiable interface {
	Instantiate(args EvaluatedArgs) (Value, error)
}

// PropGetter is implemented by native values with readable members.
type PropGetter interface {
	GetProp(id ident.Ident) (Value, error)
}

// PropSetter is implemented by native values with writable members.
type PropSetter interface {
	SetProp(id ident.Ident, v Value) error
}

// OperatorCarrier is implemented by type values that own an operator
// table. Lookup for a binary expression asks the left operand's type.
type OperatorCarrier interface {
	Operator(op ident.Ident, rightUID uint64) (Operator, bool)
	SetOperator(op ident.Ident, rightUID uint64, o Operator) error
}

// Cloner is implemented by native values whose assignment semantics
// differ from sharing.
type Cloner interface {
	FruClone() Value
}

// methodFn is a host method bound to a native receiver.
type methodFn[T Native] func(this T, args EvaluatedArgs) (Value, error)

// boundMethod adapts a host function and its receiver into a callable
// native value, so natives can expose methods like `v.Push`.
type boundMethod[T Native] struct {
	name  ident.Ident
	owner T
	fn    methodFn[T]
	uid   uint64
}

func newBoundMethod[T Native](name ident.Ident, owner T, fn methodFn[T]) *boundMethod[T] {
	return &boundMethod[T]{name: name, owner: owner, fn: fn, uid: nextUID()}
}

func (m *boundMethod[T]) Type() string { return "Function" }

func (m *boundMethod[T]) String() string {
	return m.owner.Type() + "." + m.name.String()
}

func (m *boundMethod[T]) UID() uint64 { return m.uid }

func (m *boundMethod[T]) NativeType() Value { return FunctionType }

func (m *boundMethod[T]) Call(args EvaluatedArgs) (Value, error) {
	return m.fn(m.owner, args)
}
