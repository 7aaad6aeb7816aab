// Package parser builds the Frugurt AST from the JSON document the
// external tree-sitter-frugurt grammar tool emits.
//
// The concrete grammar and tokenizer live in that tool; this package
// owns the AST contract and the parse-time validation: argument and
// parameter ordering, instantiation argument shape, property and
// operator well-formedness, and the folding of operator chains by the
// fixed precedence table. Every node may carry a "pos" field with its
// source range; validation failures surface as ParseError values
// rendered "<message> at L:C-L:C".
package parser

import (
	"github.com/tidwall/gjson"

	"github.com/frugurt-lang/frugurt/internal/ast"
	"github.com/frugurt-lang/frugurt/pkg/ident"
)

// Parse decodes an AST JSON document into a program. The root node
// must be a source_code statement.
func Parse(data []byte) (stmt *ast.SourceCode, err error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Message: "invalid AST document"}
	}

	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*ParseError); ok {
				stmt, err = nil, pe
				return
			}
			panic(r)
		}
	}()

	root := gjson.ParseBytes(data)
	if root.Get("node").String() != "source_code" {
		fail(root, "root node must be source_code, got `%s`", root.Get("node").String())
	}

	return &ast.SourceCode{Body: parseBody(root)}, nil
}

func parseBody(node gjson.Result) []ast.Statement {
	var body []ast.Statement
	for _, child := range node.Get("body").Array() {
		body = append(body, parseStatement(child))
	}
	return body
}

func parseIdent(node gjson.Result, field string) ident.Ident {
	v := node.Get(field)
	if !v.Exists() || v.String() == "" {
		fail(node, "missing identifier field `%s`", field)
	}
	return ident.New(v.String())
}

func parseStatement(node gjson.Result) ast.Statement {
	switch tag := node.Get("node").String(); tag {
	case "block":
		return &ast.Block{Body: parseBody(node)}

	case "scope_modifier":
		return &ast.ScopeModifier{
			What: parseExpression(node.Get("what")),
			Body: parseBody(node),
		}

	case "expression":
		return &ast.ExpressionStmt{Value: parseExpression(node.Get("value"))}

	case "let":
		return &ast.Let{
			Ident: parseIdent(node, "ident"),
			Value: parseExpression(node.Get("value")),
		}

	case "set":
		return &ast.Set{
			Ident: parseIdent(node, "ident"),
			Value: parseExpression(node.Get("value")),
		}

	case "set_prop":
		return &ast.SetProp{
			What:  parseExpression(node.Get("what")),
			Ident: parseIdent(node, "ident"),
			Value: parseExpression(node.Get("value")),
		}

	case "if":
		stmt := &ast.If{
			Condition: parseExpression(node.Get("cond")),
			Then:      parseStatement(node.Get("then")),
		}
		if elseNode := node.Get("else"); elseNode.Exists() {
			stmt.Else = parseStatement(elseNode)
		}
		return stmt

	case "while":
		return &ast.While{
			Condition: parseExpression(node.Get("cond")),
			Body:      parseStatement(node.Get("body")),
		}

	case "return":
		stmt := &ast.Return{}
		if v := node.Get("value"); v.Exists() {
			stmt.Value = parseExpression(v)
		}
		return stmt

	case "break":
		return &ast.Break{}

	case "continue":
		return &ast.Continue{}

	case "operator":
		return parseOperatorDecl(node)

	case "type":
		return parseTypeDecl(node)

	default:
		fail(node, "`%s` is not a statement", tag)
		return nil
	}
}

func parseOperatorDecl(node gjson.Result) ast.Statement {
	decl := &ast.OperatorDecl{
		Ident:          parseIdent(node, "ident"),
		Commutative:    node.Get("commutative").Bool(),
		LeftIdent:      parseIdent(node, "left_ident"),
		LeftTypeIdent:  parseIdent(node, "left_type_ident"),
		RightIdent:     parseIdent(node, "right_ident"),
		RightTypeIdent: parseIdent(node, "right_type_ident"),
		Body:           parseStatement(node.Get("body")),
	}
	if decl.Commutative && decl.LeftTypeIdent == decl.RightTypeIdent {
		fail(node, "commutative operator `%s` requires different operand types", decl.Ident)
	}
	return decl
}

func parseTypeDecl(node gjson.Result) ast.Statement {
	flavor := ast.Struct
	switch f := node.Get("flavor").String(); f {
	case "struct":
		flavor = ast.Struct
	case "class":
		flavor = ast.Class
	case "data":
		flavor = ast.Data
	default:
		fail(node, "`%s` is not a type flavor", f)
	}

	decl := &ast.TypeDecl{
		Flavor: flavor,
		Ident:  parseIdent(node, "ident"),
	}

	for _, f := range node.Get("fields").Array() {
		field := ast.Field{
			Ident:    parseIdent(f, "ident"),
			IsPublic: f.Get("pub").Bool(),
		}
		if t := f.Get("type_ident"); t.Exists() {
			ti := ident.New(t.String())
			field.TypeIdent = &ti
		}
		value := f.Get("value")
		if f.Get("static").Bool() {
			static := ast.StaticField{Field: field}
			if value.Exists() {
				static.Value = parseExpression(value)
			}
			decl.StaticFields = append(decl.StaticFields, static)
		} else {
			if value.Exists() {
				fail(f, "non-static field `%s` cannot have a default value", field.Ident)
			}
			decl.Fields = append(decl.Fields, field)
		}
	}

	seen := map[ident.Ident]bool{}
	seenStatic := map[ident.Ident]bool{}
	for _, p := range node.Get("properties").Array() {
		prop := ast.Property{Ident: parseIdent(p, "ident")}
		if g := p.Get("getter"); g.Exists() {
			prop.Getter = parseExpression(g)
		}
		if s := p.Get("setter"); s.Exists() {
			prop.Setter = &ast.Setter{
				ValueIdent: parseIdent(s, "value_ident"),
				Body:       parseStatement(s.Get("body")),
			}
		}
		if p.Get("static").Bool() {
			if seenStatic[prop.Ident] {
				fail(p, "static property `%s` is defined twice", prop.Ident)
			}
			seenStatic[prop.Ident] = true
			decl.StaticProperties = append(decl.StaticProperties, prop)
		} else {
			if seen[prop.Ident] {
				fail(p, "property `%s` is defined twice", prop.Ident)
			}
			seen[prop.Ident] = true
			decl.Properties = append(decl.Properties, prop)
		}
	}

	seenMethod := map[ident.Ident]bool{}
	seenStaticMethod := map[ident.Ident]bool{}
	for _, m := range node.Get("methods").Array() {
		method := ast.Method{
			Ident:  parseIdent(m, "ident"),
			Params: parseParams(m),
			Body:   parseStatement(m.Get("body")),
		}
		if m.Get("static").Bool() {
			if seenStaticMethod[method.Ident] {
				fail(m, "static method `%s` is defined twice", method.Ident)
			}
			seenStaticMethod[method.Ident] = true
			decl.StaticMethods = append(decl.StaticMethods, method)
		} else {
			if seenMethod[method.Ident] {
				fail(m, "method `%s` is defined twice", method.Ident)
			}
			seenMethod[method.Ident] = true
			decl.Methods = append(decl.Methods, method)
		}
	}

	return decl
}

func parseExpression(node gjson.Result) ast.Expression {
	switch tag := node.Get("node").String(); tag {
	case "literal":
		return parseLiteral(node)

	case "variable":
		return &ast.Variable{Ident: parseIdent(node, "ident")}

	case "scope_accessor":
		return &ast.ScopeAccessor{}

	case "function":
		return &ast.FunctionExpr{
			Params: parseParams(node),
			Body:   parseStatement(node.Get("body")),
		}

	case "block":
		return &ast.BlockExpr{
			Body: parseBody(node),
			Expr: parseExpression(node.Get("expr")),
		}

	case "scope_modifier":
		return &ast.ScopeModifierExpr{
			What: parseExpression(node.Get("what")),
			Body: parseBody(node),
			Expr: parseExpression(node.Get("expr")),
		}

	case "call":
		return &ast.Call{
			What: parseExpression(node.Get("what")),
			Args: parseArgs(node, false),
		}

	case "curry":
		return &ast.CurryCall{
			What: parseExpression(node.Get("what")),
			Args: parseArgs(node, false),
		}

	case "instantiation":
		return &ast.Instantiation{
			What: parseExpression(node.Get("what")),
			Args: parseArgs(node, true),
		}

	case "prop_access":
		return &ast.PropAccess{
			What:  parseExpression(node.Get("what")),
			Ident: parseIdent(node, "ident"),
		}

	case "binary":
		return &ast.Binary{
			Operator: parseIdent(node, "operator"),
			Left:     parseExpression(node.Get("left")),
			Right:    parseExpression(node.Get("right")),
		}

	case "binaries":
		return parseBinaries(node)

	case "if_expr":
		return &ast.IfExpr{
			Condition: parseExpression(node.Get("cond")),
			Then:      parseExpression(node.Get("then")),
			Else:      parseExpression(node.Get("else")),
		}

	case "import":
		return &ast.Import{Path: parseExpression(node.Get("path"))}

	default:
		fail(node, "`%s` is not an expression", tag)
		return nil
	}
}

func parseLiteral(node gjson.Result) ast.Expression {
	value := node.Get("value")
	switch value.Type {
	case gjson.Null:
		return &ast.NahLiteral{}
	case gjson.Number:
		return &ast.NumberLiteral{Value: value.Float()}
	case gjson.True, gjson.False:
		return &ast.BoolLiteral{Value: value.Bool()}
	case gjson.String:
		return &ast.StringLiteral{Value: value.String()}
	default:
		fail(node, "`%s` is not a literal", value.Raw)
		return nil
	}
}

// parseParams reads a formal parameter list and checks that default
// parameters follow purely positional ones.
func parseParams(node gjson.Result) []ast.Param {
	var params []ast.Param
	sawDefault := false
	for _, p := range node.Get("args").Array() {
		param := ast.Param{Name: parseIdent(p, "ident")}
		if d := p.Get("default"); d.Exists() {
			param.Default = parseExpression(d)
			sawDefault = true
		} else if sawDefault {
			fail(p, "parameter `%s` without a default follows a default parameter", param.Name)
		}
		params = append(params, param)
	}
	return params
}

// parseArgs reads a call argument list. Named arguments must follow
// positional ones; instantiation argument lists must additionally be
// all positional or all named.
func parseArgs(node gjson.Result, instantiation bool) []ast.Arg {
	var args []ast.Arg
	sawNamed := false
	for _, a := range node.Get("args").Array() {
		arg := ast.Arg{Value: parseExpression(a.Get("value"))}
		if n := a.Get("name"); n.Exists() {
			name := ident.New(n.String())
			arg.Name = &name
			sawNamed = true
		} else if sawNamed {
			if instantiation {
				fail(a, "instantiation arguments must be all positional or all named")
			}
			fail(a, "positional argument follows a named argument")
		}
		args = append(args, arg)
	}
	if instantiation && sawNamed && args[0].Name == nil {
		fail(node, "instantiation arguments must be all positional or all named")
	}
	return args
}

// binItem is one (operator, operand) link of an unfolded operator
// chain.
type binItem struct {
	op   ident.Ident
	expr ast.Expression
}

// parseBinaries folds an operator chain into a Binary tree using the
// fixed precedence table. Lower numbers bind tighter; operators of
// equal precedence associate left.
func parseBinaries(node gjson.Result) ast.Expression {
	first := parseExpression(node.Get("first"))

	var items []binItem
	for _, r := range node.Get("rest").Array() {
		items = append(items, binItem{
			op:   parseIdent(r, "op"),
			expr: parseExpression(r.Get("expr")),
		})
	}

	pos := 0
	var parse func(lhs ast.Expression, limit int) ast.Expression
	parse = func(lhs ast.Expression, limit int) ast.Expression {
		for pos < len(items) && precedence(items[pos].op) <= limit {
			op := items[pos].op
			p := precedence(op)
			rhs := items[pos].expr
			pos++
			for pos < len(items) && precedence(items[pos].op) < p {
				rhs = parse(rhs, precedence(items[pos].op))
			}
			lhs = &ast.Binary{Operator: op, Left: lhs, Right: rhs}
		}
		return lhs
	}
	return parse(first, userPrecedence)
}

// userPrecedence is the binding strength of operators outside the
// builtin table: looser than everything builtin.
const userPrecedence = 100

func precedence(op ident.Ident) int {
	switch op {
	case ident.Pow:
		return 1
	case ident.Multiply, ident.Divide, ident.Mod:
		return 2
	case ident.Plus, ident.Minus:
		return 3
	case ident.Less, ident.LessEq, ident.Greater, ident.GreaterEq, ident.Eq, ident.NotEq:
		return 4
	case ident.And:
		return 5
	case ident.Or:
		return 6
	default:
		return userPrecedence
	}
}
