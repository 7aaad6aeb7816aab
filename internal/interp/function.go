package interp

import (
	"fmt"

	"github.com/frugurt-lang/frugurt/pkg/ident"

	"github.com/frugurt-lang/frugurt/internal/ast"
)

// EvaluatedArg is a call argument after evaluation: an optional name
// and the value.
type EvaluatedArg struct {
	Name  *ident.Ident
	Value Value
}

// EvaluatedArgs is an evaluated argument list, in call order.
type EvaluatedArgs []EvaluatedArg

// FunctionValue is a user-defined closure: formal parameters, a body,
// and the scope captured at construction time.
type FunctionValue struct {
	Params []ast.Param
	Body   ast.Statement
	Scope  *Scope
}

// Type returns "Function".
func (*FunctionValue) Type() string { return "Function" }

// String returns "function".
func (*FunctionValue) String() string { return "function" }

// Call binds the arguments in a fresh child of the captured scope and
// executes the body. A clean end yields nah; Return(v) yields v.
func (f *FunctionValue) Call(args EvaluatedArgs) (Value, error) {
	sc := NewChildScope(f.Scope)
	if err := bindParams(f.Params, args, sc); err != nil {
		return nil, err
	}
	return returned(execStatement(f.Body, sc))
}

// bindParams applies an evaluated argument list to formal parameters
// inside the call scope. Positional arguments bind left to right,
// named arguments bind by name, and leftover parameters evaluate
// their defaults in the call scope (so defaults can refer to earlier
// parameters).
func bindParams(params []ast.Param, args EvaluatedArgs, sc *Scope) error {
	nextPositional := 0

	for _, arg := range args {
		var name ident.Ident
		if arg.Name != nil {
			name = *arg.Name
			if !paramDeclared(params, name) {
				return newError("argument `%s` does not exist", name.String())
			}
		} else {
			if nextPositional >= len(params) {
				return newError("too many arguments")
			}
			name = params[nextPositional].Name
			nextPositional++
		}
		if err := sc.Let(name, arg.Value); err != nil {
			return newError("argument `%s` is set twice", name.String())
		}
	}

	for _, p := range params[nextPositional:] {
		if sc.Has(p.Name) {
			continue
		}
		if p.Default == nil {
			return newError("positional argument `%s` is not set", p.Name.String())
		}
		def, err := evalExpression(p.Default, sc)
		if err != nil {
			if _, ok := err.(*RuntimeError); ok {
				return err
			}
			return newError("unexpected signal: %s", signalName(err))
		}
		if err := sc.Let(p.Name, def); err != nil {
			return err
		}
	}

	return nil
}

func paramDeclared(params []ast.Param, name ident.Ident) bool {
	for _, p := range params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// BuiltinFn is the signature of a host function: it receives the
// evaluated argument list verbatim.
type BuiltinFn func(args EvaluatedArgs) (Value, error)

// BuiltinFunctionValue wraps a host function as a value.
type BuiltinFunctionValue struct {
	Name string
	Fn   BuiltinFn
}

// Type returns "Function".
func (*BuiltinFunctionValue) Type() string { return "Function" }

// String returns "function".
func (*BuiltinFunctionValue) String() string { return "function" }

// Call invokes the host function.
func (b *BuiltinFunctionValue) Call(args EvaluatedArgs) (Value, error) {
	return b.Fn(args)
}

// CurriedValue wraps an invokable target together with the arguments
// already supplied. Calling concatenates saved and new arguments and
// delegates; further currying merges into one wrapper.
type CurriedValue struct {
	What  Value
	Saved EvaluatedArgs
}

// Type returns "Function".
func (*CurriedValue) Type() string { return "Function" }

// String describes the wrapper and its saved argument count.
func (c *CurriedValue) String() string {
	return fmt.Sprintf("curried(%d)", len(c.Saved))
}

// Call delegates to the wrapped value with saved plus new arguments.
func (c *CurriedValue) Call(args EvaluatedArgs) (Value, error) {
	return Call(c.What, c.merged(args))
}

// Curry extends the saved arguments without nesting wrappers.
func (c *CurriedValue) Curry(args EvaluatedArgs) Value {
	return &CurriedValue{What: c.What, Saved: c.merged(args)}
}

func (c *CurriedValue) merged(args EvaluatedArgs) EvaluatedArgs {
	merged := make(EvaluatedArgs, 0, len(c.Saved)+len(args))
	merged = append(merged, c.Saved...)
	merged = append(merged, args...)
	return merged
}
