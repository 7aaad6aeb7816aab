package interp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frugurt-lang/frugurt/internal/ast"
)

func TestBlockExpressionYieldsTail(t *testing.T) {
	// let a = 1; let y = { let x = a + 7; x * x }; assert_eq(y, 64)
	mustRun(t,
		let("a", num(1)),
		let("y", blockExpr(
			[]ast.Statement{let("x", binary("+", variable("a"), num(7)))},
			binary("*", variable("x"), variable("x")),
		)),
		assertEq(variable("y"), num(64)),
	)
}

func TestBlockStatementOpensScope(t *testing.T) {
	// A block's let does not leak into the outer scope.
	_, err := runProgram(t,
		block(let("hidden", num(1))),
		exprStmt(variable("hidden")),
	)
	require.ErrorContains(t, err, "variable `hidden` does not exist")
}

func TestIfExpression(t *testing.T) {
	mustRun(t,
		assertEq(&ast.IfExpr{Condition: boolean(true), Then: num(1), Else: num(2)}, num(1)),
		assertEq(&ast.IfExpr{Condition: boolean(false), Then: num(1), Else: num(2)}, num(2)),
	)

	_, err := runProgram(t,
		exprStmt(&ast.IfExpr{Condition: num(3), Then: num(1), Else: num(2)}),
	)
	require.ErrorContains(t, err, "Expected `Bool` in if condition, got `Number`")
}

func TestScopeReflection(t *testing.T) {
	// let f1 = fn() { let a = 5; scope() }
	// let s = f1()
	// scope s { let c = a + 1 }
	// assert_eq(s.c, 6)
	mustRun(t,
		let("f1", fn(nil, &ast.Block{Body: []ast.Statement{
			let("a", num(5)),
			&ast.Return{Value: &ast.ScopeAccessor{}},
		}})),
		let("s", call(variable("f1"))),
		&ast.ScopeModifier{
			What: variable("s"),
			Body: []ast.Statement{let("c", binary("+", variable("a"), num(1)))},
		},
		assertEq(prop(variable("s"), "c"), num(6)),
	)
}

func TestScopeModifierExpression(t *testing.T) {
	// assert_eq(scope s { c = c * c; c + 1 }, 26) with s.c == 5
	mustRun(t,
		let("f1", fn(nil, &ast.Block{Body: []ast.Statement{
			let("c", num(5)),
			&ast.Return{Value: &ast.ScopeAccessor{}},
		}})),
		let("s", call(variable("f1"))),
		assertEq(
			&ast.ScopeModifierExpr{
				What: variable("s"),
				Body: []ast.Statement{assign("c", binary("*", variable("c"), variable("c")))},
				Expr: binary("+", variable("c"), num(1)),
			},
			num(26),
		),
		assertEq(prop(variable("s"), "c"), num(25)),
	)
}

func TestScopeValueAssignsThroughSetProp(t *testing.T) {
	// s.w = 1; s.w = s.w + 1 installs and updates via let-or-set.
	mustRun(t,
		let("s", &ast.ScopeAccessor{}),
		setProp(variable("s"), "w", num(1)),
		setProp(variable("s"), "w", binary("+", prop(variable("s"), "w"), num(1))),
		assertEq(variable("w"), num(2)),
	)
}

func TestScopeModifierRequiresScope(t *testing.T) {
	_, err := runProgram(t,
		&ast.ScopeModifier{What: num(1)},
	)
	require.EqualError(t, err, "Expected `Scope` in scope modifier statement, got `Number`")

	_, err = runProgram(t,
		exprStmt(&ast.ScopeModifierExpr{What: num(1), Expr: nah()}),
	)
	require.EqualError(t, err, "Expected `Scope` in scope modifier expression, got `Number`")
}

func TestScopeModifierPropagatesErrors(t *testing.T) {
	_, err := runProgram(t,
		&ast.ScopeModifier{What: binary("/", num(1), num(0))},
	)
	require.EqualError(t, err, "division by zero")
}

func TestAssignmentClonesStructs(t *testing.T) {
	// Cloning applies on let, set, and set-prop stores.
	mustRun(t,
		typeDecl(ast.Struct, "P", "f"),
		typeDecl(ast.Class, "Holder", "p"),
		let("a", instantiate(variable("P"), pos(num(1)))),
		let("h", instantiate(variable("Holder"), pos(instantiate(variable("P"), pos(num(0)))))),
		setProp(variable("h"), "p", variable("a")),
		setProp(variable("a"), "f", num(99)),
		assertEq(prop(prop(variable("h"), "p"), "f"), num(1)),
	)
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib.fru.json")
	require.NoError(t, os.WriteFile(lib, []byte(`{
		"node": "source_code",
		"body": [
			{"node": "let", "ident": "answer", "value": {"node": "literal", "value": 42}}
		]
	}`), 0o644))

	mustRun(t,
		let("lib", &ast.Import{Path: str(lib)}),
		assertEq(prop(variable("lib"), "answer"), num(42)),
	)
}

func TestImportRequiresString(t *testing.T) {
	_, err := runProgram(t,
		exprStmt(&ast.Import{Path: num(1)}),
	)
	require.ErrorContains(t, err, "Expected `String` in import path, got `Number`")
}

func TestImportMissingFile(t *testing.T) {
	_, err := runProgram(t,
		exprStmt(&ast.Import{Path: str(filepath.Join(t.TempDir(), "absent.fru.json"))}),
	)
	require.ErrorContains(t, err, "import of")
}

func TestExecuteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.fru.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"node": "source_code",
		"body": [
			{"node": "expression", "value": {
				"node": "call",
				"what": {"node": "variable", "ident": "print"},
				"args": [{"value": {"node": "binaries",
					"first": {"node": "literal", "value": 1},
					"rest": [
						{"op": "+", "expr": {"node": "literal", "value": 2}},
						{"op": "*", "expr": {"node": "literal", "value": 3}},
						{"op": "+", "expr": {"node": "literal", "value": 4}}
					]}}]
			}}
		]
	}`), 0o644))

	i, out := newTestInterpreter()
	_, err := i.ExecuteFile(path)
	require.NoError(t, err)
	require.Equal(t, "11\n", out.String())
}

func TestRunReturnsGlobalScope(t *testing.T) {
	i, _ := newTestInterpreter()
	sc, err := i.Run(&ast.SourceCode{Body: []ast.Statement{
		let("x", num(3)),
	}})
	require.NoError(t, err)

	v, err := sc.Get(id("x"))
	require.NoError(t, err)
	require.True(t, Equals(NewNumber(3), v))
}

func TestSourceCodeDoesNotOpenScope(t *testing.T) {
	// Top-level lets land in the global scope, which import relies
	// on; runProgram surfaces them through the returned scope.
	sc := mustRun(t, let("visible", num(1)))
	_, err := sc.Get(id("visible"))
	require.NoError(t, err)
}

func TestPrecedenceEndToEnd(t *testing.T) {
	// The spec's precedence identities, expressed as folded trees.
	mustRun(t,
		assertEq(
			binary("+", binary("+", num(1), binary("*", num(2), num(3))), num(4)),
			num(11)),
		assertEq(
			binary("*", binary("*", num(2), binary("**", num(3), num(3))), num(5)),
			num(270)),
		assertEq(
			binary("||", boolean(true), binary("&&", boolean(false), boolean(false))),
			boolean(true)),
		assertEq(
			binary("<", binary("+", num(3), num(4)), binary("*", num(5), num(3))),
			boolean(true)),
	)
}

func TestStringRepeatScenario(t *testing.T) {
	mustRun(t,
		assertEq(binary("*", str("hi mom"), num(4)), str("hi momhi momhi momhi mom")),
	)

	_, err := runProgram(t, exprStmt(binary("*", str("asd"), num(-4))))
	require.ErrorContains(t, err, "integer")
}
