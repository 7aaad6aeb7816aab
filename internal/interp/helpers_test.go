package interp

import (
	"bytes"
	"testing"

	"github.com/frugurt-lang/frugurt/pkg/ident"

	"github.com/frugurt-lang/frugurt/internal/ast"
)

// AST construction helpers shared by the interpreter tests. Programs
// are built directly as trees; the parser has its own tests.

func id(name string) ident.Ident { return ident.New(name) }

func num(v float64) ast.Expression   { return &ast.NumberLiteral{Value: v} }
func str(v string) ast.Expression    { return &ast.StringLiteral{Value: v} }
func boolean(v bool) ast.Expression  { return &ast.BoolLiteral{Value: v} }
func nah() ast.Expression            { return &ast.NahLiteral{} }
func variable(name string) ast.Expression {
	return &ast.Variable{Ident: id(name)}
}

func binary(op string, left, right ast.Expression) ast.Expression {
	return &ast.Binary{Operator: id(op), Left: left, Right: right}
}

func pos(e ast.Expression) ast.Arg { return ast.Arg{Value: e} }

func named(name string, e ast.Expression) ast.Arg {
	n := id(name)
	return ast.Arg{Name: &n, Value: e}
}

func call(what ast.Expression, args ...ast.Arg) ast.Expression {
	return &ast.Call{What: what, Args: args}
}

func curry(what ast.Expression, args ...ast.Arg) ast.Expression {
	return &ast.CurryCall{What: what, Args: args}
}

func instantiate(what ast.Expression, args ...ast.Arg) ast.Expression {
	return &ast.Instantiation{What: what, Args: args}
}

func prop(what ast.Expression, name string) ast.Expression {
	return &ast.PropAccess{What: what, Ident: id(name)}
}

func param(name string) ast.Param { return ast.Param{Name: id(name)} }

func paramDefault(name string, def ast.Expression) ast.Param {
	return ast.Param{Name: id(name), Default: def}
}

func fn(params []ast.Param, body ast.Statement) ast.Expression {
	return &ast.FunctionExpr{Params: params, Body: body}
}

// fnExpr builds an expression-bodied function: the body returns the
// expression.
func fnExpr(params []ast.Param, body ast.Expression) ast.Expression {
	return fn(params, &ast.Return{Value: body})
}

func let(name string, e ast.Expression) ast.Statement {
	return &ast.Let{Ident: id(name), Value: e}
}

func assign(name string, e ast.Expression) ast.Statement {
	return &ast.Set{Ident: id(name), Value: e}
}

func setProp(what ast.Expression, name string, e ast.Expression) ast.Statement {
	return &ast.SetProp{What: what, Ident: id(name), Value: e}
}

func exprStmt(e ast.Expression) ast.Statement {
	return &ast.ExpressionStmt{Value: e}
}

func block(body ...ast.Statement) ast.Statement {
	return &ast.Block{Body: body}
}

func blockExpr(body []ast.Statement, tail ast.Expression) ast.Expression {
	return &ast.BlockExpr{Body: body, Expr: tail}
}

func assertEq(a, b ast.Expression) ast.Statement {
	return exprStmt(call(variable("assert_eq"), pos(a), pos(b)))
}

// newTestInterpreter creates an interpreter writing to a buffer.
func newTestInterpreter() (*Interpreter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(&out), &out
}

// runProgram executes statements as a program in a fresh global
// scope and returns the scope and the terminating error.
func runProgram(t *testing.T, body ...ast.Statement) (*Scope, error) {
	t.Helper()
	i, _ := newTestInterpreter()
	return i.Run(&ast.SourceCode{Body: body})
}

// mustRun executes statements and fails the test on any error.
func mustRun(t *testing.T, body ...ast.Statement) *Scope {
	t.Helper()
	sc, err := runProgram(t, body...)
	if err != nil {
		t.Fatalf("program failed: %v", err)
	}
	return sc
}
