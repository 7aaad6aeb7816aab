package interp

import (
	"bufio"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	pkgerrors "github.com/pkg/errors"

	"github.com/frugurt-lang/frugurt/internal/ast"
	"github.com/frugurt-lang/frugurt/internal/parser"
	"github.com/frugurt-lang/frugurt/pkg/ident"
)

// Interpreter drives program execution. It owns the streams the
// prelude builtins print to and read from, and an optional trace
// logger. The interpreter itself is stateless between runs: every Run
// builds a fresh global scope.
type Interpreter struct {
	out    io.Writer
	in     *bufio.Reader
	logger hclog.Logger
}

// New creates an interpreter writing to out and reading from stdin.
func New(out io.Writer) *Interpreter {
	registerBuiltinOperators()
	return &Interpreter{
		out:    out,
		in:     bufio.NewReader(os.Stdin),
		logger: hclog.NewNullLogger(),
	}
}

// SetInput redirects the reader the input builtin consumes.
func (i *Interpreter) SetInput(r io.Reader) {
	i.in = bufio.NewReader(r)
}

// SetLogger installs a trace logger. Statement execution is logged at
// Trace level.
func (i *Interpreter) SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	i.logger = l
}

type flusher interface {
	Flush() error
}

func (i *Interpreter) flush() {
	if f, ok := i.out.(flusher); ok {
		_ = f.Flush()
	}
}

// NewGlobalScope builds a fresh global scope seeded with the prelude:
// the builtin type singletons and functions.
func (i *Interpreter) NewGlobalScope() *Scope {
	sc := &Scope{
		variables: builtinFunctions(i),
		interp:    i,
		uid:       nextUID(),
	}

	types := map[string]Value{
		"Nah":      NahType,
		"Number":   NumberType,
		"Bool":     BoolType,
		"String":   StringType,
		"Function": FunctionType,
		"Type":     TypeType,
		"Vec":      VecType,
	}
	for name, t := range types {
		sc.LetSet(ident.New(name), t)
	}

	return sc
}

// Run executes a parsed program in a fresh global scope and returns
// that scope, so callers (the CLI, import, tests) can inspect it.
// Any signal other than an orderly end becomes a runtime error.
func (i *Interpreter) Run(program ast.Statement) (*Scope, error) {
	sc := i.NewGlobalScope()
	if err := topLevel(execStatement(program, sc)); err != nil {
		return sc, err
	}
	return sc, nil
}

// ExecuteFile reads, parses, and executes a program file. The import
// expression and the CLI both enter here.
func (i *Interpreter) ExecuteFile(path string) (*Scope, error) {
	program, err := parser.ParseFile(path)
	if err != nil {
		return nil, pkgerrors.WithMessage(err, path)
	}
	return i.Run(program)
}
