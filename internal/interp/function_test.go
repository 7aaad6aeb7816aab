package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frugurt-lang/frugurt/internal/ast"
)

func TestFunctionCallPositional(t *testing.T) {
	mustRun(t,
		let("add", fnExpr([]ast.Param{param("a"), param("b")},
			binary("+", variable("a"), variable("b")))),
		assertEq(call(variable("add"), pos(num(2)), pos(num(3))), num(5)),
	)
}

func TestFunctionCallNamed(t *testing.T) {
	mustRun(t,
		let("sub", fnExpr([]ast.Param{param("a"), param("b")},
			binary("-", variable("a"), variable("b")))),
		assertEq(call(variable("sub"), named("b", num(3)), named("a", num(10))), num(7)),
	)
}

func TestFunctionCleanEndYieldsNah(t *testing.T) {
	mustRun(t,
		let("noop", fn(nil, block())),
		assertEq(call(variable("noop")), nah()),
	)
}

func TestFunctionDefaultsSeeEarlierParameters(t *testing.T) {
	// fn(a, b = a + 1) — the default evaluates in the call scope.
	mustRun(t,
		let("f", fnExpr(
			[]ast.Param{param("a"), paramDefault("b", binary("+", variable("a"), num(1)))},
			binary("*", variable("a"), variable("b")))),
		assertEq(call(variable("f"), pos(num(4))), num(20)),
		assertEq(call(variable("f"), pos(num(4)), pos(num(10))), num(40)),
	)
}

func TestFunctionArgumentErrors(t *testing.T) {
	makeF := let("f", fnExpr([]ast.Param{param("a"), param("b")},
		binary("+", variable("a"), variable("b"))))

	tests := []struct {
		name    string
		callF   ast.Expression
		wantErr string
	}{
		{
			"too many arguments",
			call(variable("f"), pos(num(1)), pos(num(2)), pos(num(3))),
			"too many arguments",
		},
		{
			"unknown argument name",
			call(variable("f"), named("c", num(1))),
			"argument `c` does not exist",
		},
		{
			"argument set twice",
			call(variable("f"), pos(num(1)), named("a", num(2))),
			"argument `a` is set twice",
		},
		{
			"missing argument without default",
			call(variable("f"), pos(num(1))),
			"positional argument `b` is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runProgram(t, makeF, exprStmt(tt.callF))
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCurrying(t *testing.T) {
	// let f = fn(a, b, c) { a + b + c }
	// let g = f$(1); g(2, 3) == 6; g$(2)(5) == 8
	mustRun(t,
		let("f", fnExpr([]ast.Param{param("a"), param("b"), param("c")},
			binary("+", binary("+", variable("a"), variable("b")), variable("c")))),
		let("g", curry(variable("f"), pos(num(1)))),
		assertEq(call(variable("g"), pos(num(2)), pos(num(3))), num(6)),
		assertEq(call(curry(variable("g"), pos(num(2))), pos(num(5))), num(8)),
	)
}

func TestCurryingMergesInsteadOfNesting(t *testing.T) {
	i, _ := newTestInterpreter()
	sc := i.NewGlobalScope()

	f := &FunctionValue{
		Params: []ast.Param{param("a"), param("b")},
		Body:   &ast.Return{Value: variable("a")},
		Scope:  sc,
	}

	once, err := CurryCall(f, EvaluatedArgs{{Value: NewNumber(1)}})
	require.NoError(t, err)
	twice, err := CurryCall(once, EvaluatedArgs{{Value: NewNumber(2)}})
	require.NoError(t, err)

	curried := twice.(*CurriedValue)
	require.Same(t, f, curried.What)
	require.Len(t, curried.Saved, 2)
}

func TestCurryAssociativity(t *testing.T) {
	// (f $ (a, b))(c) == f(a, b, c) == f$(a)$(b)(c)
	sum := fnExpr([]ast.Param{param("a"), param("b"), param("c")},
		binary("+", binary("+", variable("a"), variable("b")), variable("c")))

	mustRun(t,
		let("f", sum),
		assertEq(
			call(curry(variable("f"), pos(num(1)), pos(num(2))), pos(num(3))),
			call(variable("f"), pos(num(1)), pos(num(2)), pos(num(3))),
		),
		assertEq(
			call(curry(curry(variable("f"), pos(num(1))), pos(num(2))), pos(num(3))),
			num(6),
		),
	)
}

func TestCurryingBuiltin(t *testing.T) {
	mustRun(t,
		let("check", curry(variable("assert_eq"), pos(num(5)))),
		exprStmt(call(variable("check"), pos(num(5)))),
	)
}

func TestCurryNonInvokable(t *testing.T) {
	_, err := CurryCall(NewNumber(1), nil)
	require.EqualError(t, err, "`Number` is not invokable")
}

func TestBuiltinFunctionReceivesArgsVerbatim(t *testing.T) {
	var got EvaluatedArgs
	b := &BuiltinFunctionValue{Name: "spy", Fn: func(args EvaluatedArgs) (Value, error) {
		got = args
		return Nah, nil
	}}

	name := id("x")
	args := EvaluatedArgs{{Value: NewNumber(1)}, {Name: &name, Value: NewNumber(2)}}
	_, err := Call(b, args)
	require.NoError(t, err)
	require.Equal(t, args, got)
}
