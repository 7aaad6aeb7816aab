package interp

import (
	"github.com/frugurt-lang/frugurt/pkg/ident"

	"github.com/frugurt-lang/frugurt/internal/ast"
)

// execStatement executes a statement, returning nil or a control
// signal. SourceCode runs at the caller's scope; Block opens a child.
func execStatement(s ast.Statement, sc *Scope) error {
	if sc.interp != nil && sc.interp.logger.IsTrace() {
		sc.interp.logger.Trace("exec", "stmt", s.String(), "scope", sc.uid)
	}

	switch s := s.(type) {
	case *ast.SourceCode:
		for _, stmt := range s.Body {
			if err := execStatement(stmt, sc); err != nil {
				return err
			}
		}
		return nil

	case *ast.Block:
		child := NewChildScope(sc)
		for _, stmt := range s.Body {
			if err := execStatement(stmt, child); err != nil {
				return err
			}
		}
		return nil

	case *ast.ScopeModifier:
		target, err := evalExpression(s.What, sc)
		if err != nil {
			return err
		}
		inner, ok := ScopeOf(target)
		if !ok {
			return newError("Expected `Scope` in scope modifier statement, got `%s`",
				TypeOf(target).String())
		}
		for _, stmt := range s.Body {
			if err := execStatement(stmt, inner); err != nil {
				return err
			}
		}
		return nil

	case *ast.ExpressionStmt:
		_, err := evalExpression(s.Value, sc)
		return err

	case *ast.Let:
		v, err := evalExpression(s.Value, sc)
		if err != nil {
			return err
		}
		return sc.Let(s.Ident, FruClone(v))

	case *ast.Set:
		v, err := evalExpression(s.Value, sc)
		if err != nil {
			return err
		}
		return sc.Set(s.Ident, FruClone(v))

	case *ast.SetProp:
		target, err := evalExpression(s.What, sc)
		if err != nil {
			return err
		}
		v, err := evalExpression(s.Value, sc)
		if err != nil {
			return err
		}
		return SetProp(target, s.Ident, FruClone(v))

	case *ast.If:
		cond, err := evalExpression(s.Condition, sc)
		if err != nil {
			return err
		}
		b, ok := cond.(*BoolValue)
		if !ok {
			return newError("Expected `Bool` in if condition, got `%s`", TypeOf(cond).String())
		}
		if b.Value {
			return execStatement(s.Then, sc)
		}
		if s.Else != nil {
			return execStatement(s.Else, sc)
		}
		return nil

	case *ast.While:
		for {
			cond, err := evalExpression(s.Condition, sc)
			if err != nil {
				return err
			}
			b, ok := cond.(*BoolValue)
			if !ok {
				return newError("Expected `Bool` in while condition, got `%s`", TypeOf(cond).String())
			}
			if !b.Value {
				return nil
			}
			switch err := execStatement(s.Body, sc).(type) {
			case nil, ContinueSignal:
			case BreakSignal:
				return nil
			default:
				return err
			}
		}

	case *ast.Return:
		if s.Value == nil {
			return ReturnSignal{Value: Nah}
		}
		v, err := evalExpression(s.Value, sc)
		if err != nil {
			return err
		}
		return ReturnSignal{Value: v}

	case *ast.Break:
		return BreakSignal{}

	case *ast.Continue:
		return ContinueSignal{}

	case *ast.OperatorDecl:
		return execOperatorDecl(s, sc)

	case *ast.TypeDecl:
		return execTypeDecl(s, sc)

	default:
		return newError("unknown statement node `%s`", s.String())
	}
}

// execOperatorDecl resolves the operand type identifiers in scope and
// installs the operator on the left type; commutative declarations
// also install the swapped form on the right type.
func execOperatorDecl(s *ast.OperatorDecl, sc *Scope) error {
	leftType, err := sc.Get(s.LeftTypeIdent)
	if err != nil {
		return err
	}
	rightType, err := sc.Get(s.RightTypeIdent)
	if err != nil {
		return err
	}

	leftCarrier, ok := leftType.(OperatorCarrier)
	if !ok {
		return newError("`%s` is not a type", leftType.String())
	}
	rightUID, err := typeUID(rightType)
	if err != nil {
		return err
	}

	if s.Commutative {
		rightCarrier, ok := rightType.(OperatorCarrier)
		if !ok {
			return newError("`%s` is not a type", rightType.String())
		}
		leftUID, err := typeUID(leftType)
		if err != nil {
			return err
		}
		swapped := &userOperator{
			leftIdent:  s.RightIdent,
			rightIdent: s.LeftIdent,
			body:       s.Body,
			scope:      sc,
		}
		if err := rightCarrier.SetOperator(s.Ident, leftUID, swapped); err != nil {
			return err
		}
	}

	op := &userOperator{
		leftIdent:  s.LeftIdent,
		rightIdent: s.RightIdent,
		body:       s.Body,
		scope:      sc,
	}
	return leftCarrier.SetOperator(s.Ident, rightUID, op)
}

// execTypeDecl evaluates static-field defaults in the declaring
// scope, builds the descriptor, and binds the type value.
func execTypeDecl(s *ast.TypeDecl, sc *Scope) error {
	staticFields := make(map[ident.Ident]Value, len(s.StaticFields))
	for _, f := range s.StaticFields {
		v := Nah
		if f.Value != nil {
			var err error
			if v, err = evalExpression(f.Value, sc); err != nil {
				return err
			}
		}
		staticFields[f.Ident] = v
	}

	properties := make(map[ident.Ident]ast.Property, len(s.Properties))
	for _, p := range s.Properties {
		properties[p.Ident] = p
	}
	staticProperties := make(map[ident.Ident]ast.Property, len(s.StaticProperties))
	for _, p := range s.StaticProperties {
		staticProperties[p.Ident] = p
	}
	methods := make(map[ident.Ident]ast.Method, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Ident] = m
	}
	staticMethods := make(map[ident.Ident]ast.Method, len(s.StaticMethods))
	for _, m := range s.StaticMethods {
		staticMethods[m.Ident] = m
	}

	t := &FruType{
		ident:            s.Ident,
		flavor:           s.Flavor,
		fields:           s.Fields,
		staticFields:     staticFields,
		properties:       properties,
		staticProperties: staticProperties,
		methods:          methods,
		staticMethods:    staticMethods,
		scope:            sc,
		uid:              nextUID(),
	}

	return sc.Let(s.Ident, t)
}
