package interp

import (
	"strings"

	"github.com/frugurt-lang/frugurt/pkg/ident"
)

// builtinFunctions returns the prelude functions, bound to the
// interpreter's streams.
func builtinFunctions(i *Interpreter) map[ident.Ident]Value {
	entries := []struct {
		name string
		fn   BuiltinFn
	}{
		{"print", i.builtinPrint},
		{"input", i.builtinInput},
		{"assert_eq", builtinAssertEq},
	}

	out := make(map[ident.Ident]Value, len(entries))
	for _, e := range entries {
		out[ident.New(e.name)] = &BuiltinFunctionValue{Name: e.name, Fn: e.fn}
	}
	return out
}

// builtinPrint prints each argument's debug form separated by
// spaces, then a newline.
func (i *Interpreter) builtinPrint(args EvaluatedArgs) (Value, error) {
	parts := make([]string, len(args))
	for k, arg := range args {
		parts[k] = arg.Value.String()
	}
	if _, err := i.out.Write([]byte(strings.Join(parts, " ") + "\n")); err != nil {
		return nil, newError("print failed: %s", err.Error())
	}
	return Nah, nil
}

// builtinInput optionally prints a prompt without a newline, reads
// one line, and returns it trimmed.
func (i *Interpreter) builtinInput(args EvaluatedArgs) (Value, error) {
	if len(args) > 1 {
		return nil, newError("input takes at most one argument")
	}
	if len(args) == 1 {
		if _, err := i.out.Write([]byte(args[0].Value.String())); err != nil {
			return nil, newError("input failed: %s", err.Error())
		}
		i.flush()
	}

	line, err := i.in.ReadString('\n')
	if err != nil && line == "" {
		return nil, newError("input failed: %s", err.Error())
	}
	return NewString(strings.TrimSpace(line)), nil
}

// builtinAssertEq yields true when both arguments are equal and an
// error otherwise.
func builtinAssertEq(args EvaluatedArgs) (Value, error) {
	if len(args) != 2 {
		return nil, newError("assert_eq takes exactly two arguments")
	}
	a, b := args[0].Value, args[1].Value
	if Equals(a, b) {
		return NewBool(true), nil
	}
	return nil, newError("assertion failed: %s != %s", a.String(), b.String())
}
