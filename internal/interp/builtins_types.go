package interp

// BuiltinType is the type singleton for a primitive or native kind.
// Each singleton owns an operator table, so user code can extend
// builtin types through the same registry user types use.
type BuiltinType struct {
	operatorTable

	name      string
	uid       uint64
	construct func(args EvaluatedArgs) (Value, error)
}

// Type singletons for the builtin value kinds. All but Scope are
// bound in every global scope under their names.
var (
	NahType      = &BuiltinType{name: "Nah", uid: nextUID()}
	NumberType   = &BuiltinType{name: "Number", uid: nextUID()}
	BoolType     = &BuiltinType{name: "Bool", uid: nextUID()}
	FunctionType = &BuiltinType{name: "Function", uid: nextUID()}
	TypeType     = &BuiltinType{name: "Type", uid: nextUID()}
	StringType   = &BuiltinType{name: "String", uid: nextUID()}
	ScopeType    = &BuiltinType{name: "Scope", uid: nextUID()}
	VecType      = &BuiltinType{name: "Vec", uid: nextUID(), construct: instantiateVec}
)

// Type returns "Type".
func (*BuiltinType) Type() string { return "Type" }

// String returns the type's name.
func (t *BuiltinType) String() string { return t.name }

// UID returns the singleton's identity token.
func (t *BuiltinType) UID() uint64 { return t.uid }

// NativeType returns the Type singleton.
func (t *BuiltinType) NativeType() Value { return TypeType }

// Instantiate constructs an instance when the type supports it.
func (t *BuiltinType) Instantiate(args EvaluatedArgs) (Value, error) {
	if t.construct == nil {
		return nil, newError("`%s` is not instantiatable", t.name)
	}
	return t.construct(args)
}
