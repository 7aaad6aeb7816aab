package interp

import (
	"math"
	"strings"
	"sync"

	"github.com/frugurt-lang/frugurt/pkg/ident"
)

// The builtin operator tables live on the type singletons, so user
// code can query (and extend) the same registry its own operators go
// through. Registration happens once per process, at prelude time.

var registerBuiltins sync.Once

func registerBuiltinOperators() {
	registerBuiltins.Do(func() {
		numNum := []struct {
			op ident.Ident
			fn BuiltinOperator
		}{
			{ident.Plus, numOp(func(l, r float64) float64 { return l + r })},
			{ident.Minus, numOp(func(l, r float64) float64 { return l - r })},
			{ident.Multiply, numOp(func(l, r float64) float64 { return l * r })},
			{ident.Divide, numDiv},
			{ident.Mod, numMod},
			{ident.Pow, numOp(math.Pow)},
			{ident.Less, numCmp(func(l, r float64) bool { return l < r })},
			{ident.LessEq, numCmp(func(l, r float64) bool { return l <= r })},
			{ident.Greater, numCmp(func(l, r float64) bool { return l > r })},
			{ident.GreaterEq, numCmp(func(l, r float64) bool { return l >= r })},
			{ident.Eq, numCmp(func(l, r float64) bool { return l == r })},
			{ident.NotEq, numCmp(func(l, r float64) bool { return l != r })},
		}
		for _, e := range numNum {
			mustSetOperator(NumberType, e.op, NumberType.uid, e.fn)
		}

		mustSetOperator(BoolType, ident.And, BoolType.uid, boolOp(func(l, r bool) bool { return l && r }))
		mustSetOperator(BoolType, ident.Or, BoolType.uid, boolOp(func(l, r bool) bool { return l || r }))

		strStr := []struct {
			op ident.Ident
			fn BuiltinOperator
		}{
			{ident.Combine, strConcat},
			{ident.Less, strCmp(func(l, r string) bool { return l < r })},
			{ident.LessEq, strCmp(func(l, r string) bool { return l <= r })},
			{ident.Greater, strCmp(func(l, r string) bool { return l > r })},
			{ident.GreaterEq, strCmp(func(l, r string) bool { return l >= r })},
			{ident.Eq, strCmp(func(l, r string) bool { return l == r })},
			{ident.NotEq, strCmp(func(l, r string) bool { return l != r })},
		}
		for _, e := range strStr {
			mustSetOperator(StringType, e.op, StringType.uid, e.fn)
		}

		mustSetOperator(StringType, ident.Multiply, NumberType.uid, BuiltinOperator(strMulNum))
		mustSetOperator(NumberType, ident.Multiply, StringType.uid, BuiltinOperator(numMulStr))
	})
}

func mustSetOperator(t *BuiltinType, op ident.Ident, rightUID uint64, o Operator) {
	if err := t.SetOperator(op, rightUID, o); err != nil {
		panic(err)
	}
}

func numOp(fn func(l, r float64) float64) BuiltinOperator {
	return func(left, right Value) (Value, error) {
		l, err := GoNumber(left)
		if err != nil {
			return nil, err
		}
		r, err := GoNumber(right)
		if err != nil {
			return nil, err
		}
		return NewNumber(fn(l, r)), nil
	}
}

func numCmp(fn func(l, r float64) bool) BuiltinOperator {
	return func(left, right Value) (Value, error) {
		l, err := GoNumber(left)
		if err != nil {
			return nil, err
		}
		r, err := GoNumber(right)
		if err != nil {
			return nil, err
		}
		return NewBool(fn(l, r)), nil
	}
}

func boolOp(fn func(l, r bool) bool) BuiltinOperator {
	return func(left, right Value) (Value, error) {
		l, err := GoBool(left)
		if err != nil {
			return nil, err
		}
		r, err := GoBool(right)
		if err != nil {
			return nil, err
		}
		return NewBool(fn(l, r)), nil
	}
}

func strCmp(fn func(l, r string) bool) BuiltinOperator {
	return func(left, right Value) (Value, error) {
		l, err := GoString(left)
		if err != nil {
			return nil, err
		}
		r, err := GoString(right)
		if err != nil {
			return nil, err
		}
		return NewBool(fn(l, r)), nil
	}
}

func numDiv(left, right Value) (Value, error) {
	l, err := GoNumber(left)
	if err != nil {
		return nil, err
	}
	r, err := GoNumber(right)
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, newError("division by zero")
	}
	return NewNumber(l / r), nil
}

// numMod is the Euclidean remainder: the result has the sign of the
// divisor's magnitude, never negative.
func numMod(left, right Value) (Value, error) {
	l, err := GoNumber(left)
	if err != nil {
		return nil, err
	}
	r, err := GoNumber(right)
	if err != nil {
		return nil, err
	}
	if r == 0 {
		return nil, newError("division by zero")
	}
	m := math.Mod(l, r)
	if m < 0 {
		m += math.Abs(r)
	}
	return NewNumber(m), nil
}

func strConcat(left, right Value) (Value, error) {
	l, err := GoString(left)
	if err != nil {
		return nil, err
	}
	r, err := GoString(right)
	if err != nil {
		return nil, err
	}
	return NewString(l + r), nil
}

func strMulNum(left, right Value) (Value, error) {
	l, err := GoString(left)
	if err != nil {
		return nil, err
	}
	r, err := GoNumber(right)
	if err != nil {
		return nil, err
	}
	if r != math.Trunc(r) || r < 0 {
		return nil, newError("string repeat count must be a non-negative integer")
	}
	return NewString(strings.Repeat(l, int(r))), nil
}

func numMulStr(left, right Value) (Value, error) {
	return strMulNum(right, left)
}
