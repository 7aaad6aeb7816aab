package interp

import (
	"github.com/frugurt-lang/frugurt/internal/ast"
)

// evalExpression evaluates an expression to a value, or propagates a
// control signal. Argument and operand evaluation is left-to-right
// and short-circuits on the first signal.
func evalExpression(e ast.Expression, sc *Scope) (Value, error) {
	switch e := e.(type) {
	case *ast.NahLiteral:
		return Nah, nil

	case *ast.NumberLiteral:
		return NewNumber(e.Value), nil

	case *ast.BoolLiteral:
		return NewBool(e.Value), nil

	case *ast.StringLiteral:
		return NewString(e.Value), nil

	case *ast.Variable:
		return sc.Get(e.Ident)

	case *ast.ScopeAccessor:
		return NewScopeValue(sc), nil

	case *ast.FunctionExpr:
		return &FunctionValue{Params: e.Params, Body: e.Body, Scope: sc}, nil

	case *ast.BlockExpr:
		child := NewChildScope(sc)
		for _, stmt := range e.Body {
			if err := execStatement(stmt, child); err != nil {
				return nil, err
			}
		}
		return evalExpression(e.Expr, child)

	case *ast.ScopeModifierExpr:
		target, err := evalExpression(e.What, sc)
		if err != nil {
			return nil, err
		}
		inner, ok := ScopeOf(target)
		if !ok {
			return nil, newError("Expected `Scope` in scope modifier expression, got `%s`",
				TypeOf(target).String())
		}
		for _, stmt := range e.Body {
			if err := execStatement(stmt, inner); err != nil {
				return nil, err
			}
		}
		return evalExpression(e.Expr, inner)

	case *ast.Call:
		callee, err := evalExpression(e.What, sc)
		if err != nil {
			return nil, err
		}
		args, err := evalArgs(e.Args, sc)
		if err != nil {
			return nil, err
		}
		return Call(callee, args)

	case *ast.CurryCall:
		callee, err := evalExpression(e.What, sc)
		if err != nil {
			return nil, err
		}
		args, err := evalArgs(e.Args, sc)
		if err != nil {
			return nil, err
		}
		return CurryCall(callee, args)

	case *ast.Instantiation:
		target, err := evalExpression(e.What, sc)
		if err != nil {
			return nil, err
		}
		args, err := evalArgs(e.Args, sc)
		if err != nil {
			return nil, err
		}
		return Instantiate(target, args)

	case *ast.PropAccess:
		target, err := evalExpression(e.What, sc)
		if err != nil {
			return nil, err
		}
		return GetProp(target, e.Ident)

	case *ast.Binary:
		left, err := evalExpression(e.Left, sc)
		if err != nil {
			return nil, err
		}
		right, err := evalExpression(e.Right, sc)
		if err != nil {
			return nil, err
		}
		op, err := lookupOperator(e.Operator, TypeOf(left), TypeOf(right))
		if err != nil {
			return nil, err
		}
		return op.Operate(left, right)

	case *ast.IfExpr:
		cond, err := evalExpression(e.Condition, sc)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(*BoolValue)
		if !ok {
			return nil, newError("Expected `Bool` in if condition, got `%s`", TypeOf(cond).String())
		}
		if b.Value {
			return evalExpression(e.Then, sc)
		}
		return evalExpression(e.Else, sc)

	case *ast.Import:
		pathVal, err := evalExpression(e.Path, sc)
		if err != nil {
			return nil, err
		}
		path, ok := pathVal.(*StringValue)
		if !ok {
			return nil, newError("Expected `String` in import path, got `%s`", TypeOf(pathVal).String())
		}
		imported, err := sc.interp.ExecuteFile(path.Value)
		if err != nil {
			if _, ok := err.(*RuntimeError); ok {
				return nil, err
			}
			return nil, newError("import of `%s` failed: %s", path.Value, err.Error())
		}
		return NewScopeValue(imported), nil

	default:
		return nil, newError("unknown expression node `%s`", e.String())
	}
}

func evalArgs(args []ast.Arg, sc *Scope) (EvaluatedArgs, error) {
	out := make(EvaluatedArgs, 0, len(args))
	for _, arg := range args {
		v, err := evalExpression(arg.Value, sc)
		if err != nil {
			return nil, err
		}
		out = append(out, EvaluatedArg{Name: arg.Name, Value: v})
	}
	return out, nil
}
