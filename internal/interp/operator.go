package interp

import (
	"github.com/frugurt-lang/frugurt/pkg/ident"

	"github.com/frugurt-lang/frugurt/internal/ast"
)

// Operator is a binary operator implementation. User declarations
// produce closure-backed operators; the prelude registers host
// functions.
type Operator interface {
	Operate(left, right Value) (Value, error)
}

// BuiltinOperator is a host-implemented operator.
type BuiltinOperator func(left, right Value) (Value, error)

// Operate calls the host function.
func (f BuiltinOperator) Operate(left, right Value) (Value, error) {
	return f(left, right)
}

// userOperator is an operator declared in the language: a body
// executed with the two operands bound in a child of the declaring
// scope.
type userOperator struct {
	leftIdent  ident.Ident
	rightIdent ident.Ident
	body       ast.Statement
	scope      *Scope
}

func (o *userOperator) Operate(left, right Value) (Value, error) {
	sc := NewChildScope(o.scope)
	if err := sc.Let(o.leftIdent, left); err != nil {
		return nil, err
	}
	if err := sc.Let(o.rightIdent, right); err != nil {
		return nil, err
	}
	return returned(execStatement(o.body, sc))
}

// opKey is the per-table part of the operator key. The owning (left)
// type's identity completes the (op, left, right) triple.
type opKey struct {
	op    ident.Ident
	right uint64
}

// operatorTable is the operator registry a type owns. Installation is
// exclusive: a second install of the same key fails.
type operatorTable struct {
	ops map[opKey]Operator
}

// Operator looks up an operator for the given name and right-operand
// type identity.
func (t *operatorTable) Operator(op ident.Ident, rightUID uint64) (Operator, bool) {
	o, ok := t.ops[opKey{op: op, right: rightUID}]
	return o, ok
}

// SetOperator installs an operator. It fails when the key is already
// taken.
func (t *operatorTable) SetOperator(op ident.Ident, rightUID uint64, o Operator) error {
	key := opKey{op: op, right: rightUID}
	if _, exists := t.ops[key]; exists {
		return newError("operator `%s` is already set", op.String())
	}
	if t.ops == nil {
		t.ops = map[opKey]Operator{}
	}
	t.ops[key] = o
	return nil
}

// lookupOperator resolves the operator for a binary expression by
// asking the left operand's type.
func lookupOperator(op ident.Ident, leftType, rightType Value) (Operator, error) {
	notFound := func() error {
		return newError("operator `%s` between `%s` and `%s` does not exist",
			op.String(), leftType.String(), rightType.String())
	}

	carrier, ok := leftType.(OperatorCarrier)
	if !ok {
		return nil, notFound()
	}
	rightUID, err := typeUID(rightType)
	if err != nil {
		return nil, err
	}
	o, ok := carrier.Operator(op, rightUID)
	if !ok {
		return nil, notFound()
	}
	return o, nil
}
