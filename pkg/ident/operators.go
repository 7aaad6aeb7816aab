package ident

// Well-known identifiers for the builtin operator names. They are
// materialized at startup so the prelude and the evaluator can refer
// to them without re-interning.
var (
	Plus      Ident
	Minus     Ident
	Multiply  Ident
	Divide    Ident
	Mod       Ident
	Pow       Ident
	And       Ident
	Or        Ident
	Combine   Ident
	Less      Ident
	LessEq    Ident
	Greater   Ident
	GreaterEq Ident
	Eq        Ident
	NotEq     Ident
)

func registerOperators() {
	Plus = New("+")
	Minus = New("-")
	Multiply = New("*")
	Divide = New("/")
	Mod = New("%")
	Pow = New("**")
	And = New("&&")
	Or = New("||")
	Combine = New("<>")
	Less = New("<")
	LessEq = New("<=")
	Greater = New(">")
	GreaterEq = New(">=")
	Eq = New("==")
	NotEq = New("!=")
}

func init() {
	registerOperators()
}
