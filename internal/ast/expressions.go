package ast

import (
	"strconv"
	"strings"

	"github.com/frugurt-lang/frugurt/pkg/ident"
)

// NahLiteral is the unit literal `nah`.
type NahLiteral struct{}

func (*NahLiteral) expressionNode() {}
func (*NahLiteral) String() string  { return "nah" }

// NumberLiteral is an IEEE-754 double literal.
type NumberLiteral struct {
	Value float64
}

func (n *NumberLiteral) expressionNode() {}
func (n *NumberLiteral) String() string  { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Value bool
}

func (b *BoolLiteral) expressionNode() {}
func (b *BoolLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// StringLiteral is a string literal, already unescaped by the parser.
type StringLiteral struct {
	Value string
}

func (s *StringLiteral) expressionNode() {}
func (s *StringLiteral) String() string  { return strconv.Quote(s.Value) }

// Variable reads an identifier from the current scope.
type Variable struct {
	Ident ident.Ident
}

func (v *Variable) expressionNode() {}
func (v *Variable) String() string  { return v.Ident.String() }

// ScopeAccessor is the `scope()` expression: it reifies the current
// scope as a first-class value.
type ScopeAccessor struct{}

func (*ScopeAccessor) expressionNode() {}
func (*ScopeAccessor) String() string  { return "scope()" }

// FunctionExpr is a function literal. The resulting value closes over
// the scope the expression is evaluated in.
type FunctionExpr struct {
	Params []Param
	Body   Statement
}

func (f *FunctionExpr) expressionNode() {}
func (f *FunctionExpr) String() string {
	return "fn(" + paramsString(f.Params) + ") " + f.Body.String()
}

// BlockExpr runs statements in a fresh child scope and yields the
// tail expression evaluated in that same scope.
type BlockExpr struct {
	Body []Statement
	Expr Expression
}

func (b *BlockExpr) expressionNode() {}
func (b *BlockExpr) String() string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, stmt := range b.Body {
		sb.WriteString(stmt.String())
		sb.WriteString("; ")
	}
	sb.WriteString(b.Expr.String())
	sb.WriteString(" }")
	return sb.String()
}

// ScopeModifierExpr runs statements inside the scope produced by
// What, then yields the tail expression evaluated there.
type ScopeModifierExpr struct {
	What Expression
	Body []Statement
	Expr Expression
}

func (s *ScopeModifierExpr) expressionNode() {}
func (s *ScopeModifierExpr) String() string {
	var sb strings.Builder
	sb.WriteString("scope ")
	sb.WriteString(s.What.String())
	sb.WriteString(" { ")
	for _, stmt := range s.Body {
		sb.WriteString(stmt.String())
		sb.WriteString("; ")
	}
	sb.WriteString(s.Expr.String())
	sb.WriteString(" }")
	return sb.String()
}

// Call invokes the target with an argument list.
type Call struct {
	What Expression
	Args []Arg
}

func (c *Call) expressionNode() {}
func (c *Call) String() string  { return c.What.String() + "(" + argsString(c.Args) + ")" }

// CurryCall partially applies arguments to the target, producing a
// curried value.
type CurryCall struct {
	What Expression
	Args []Arg
}

func (c *CurryCall) expressionNode() {}
func (c *CurryCall) String() string  { return c.What.String() + "$(" + argsString(c.Args) + ")" }

// Instantiation constructs an instance of the target type.
type Instantiation struct {
	What Expression
	Args []Arg
}

func (i *Instantiation) expressionNode() {}
func (i *Instantiation) String() string  { return i.What.String() + ":{" + argsString(i.Args) + "}" }

// PropAccess reads a property, field, or method of the target.
type PropAccess struct {
	What  Expression
	Ident ident.Ident
}

func (p *PropAccess) expressionNode() {}
func (p *PropAccess) String() string  { return p.What.String() + "." + p.Ident.String() }

// Binary applies a binary operator. The parser has already folded
// operator chains using the precedence table, so Left and Right are
// final.
type Binary struct {
	Operator ident.Ident
	Left     Expression
	Right    Expression
}

func (b *Binary) expressionNode() {}
func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Operator.String() + " " + b.Right.String() + ")"
}

// IfExpr is the expression form of if; both branches are mandatory.
type IfExpr struct {
	Condition Expression
	Then      Expression
	Else      Expression
}

func (i *IfExpr) expressionNode() {}
func (i *IfExpr) String() string {
	return "if " + i.Condition.String() + " " + i.Then.String() + " else " + i.Else.String()
}

// Import evaluates the path expression, executes the file it names in
// a fresh global scope, and yields that scope as a value.
type Import struct {
	Path Expression
}

func (i *Import) expressionNode() {}
func (i *Import) String() string  { return "import " + i.Path.String() }
