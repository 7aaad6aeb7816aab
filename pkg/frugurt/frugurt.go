// Package frugurt is the public embedding API for the Frugurt
// interpreter: host programs use it to run scripts without touching
// the runtime internals.
package frugurt

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/frugurt-lang/frugurt/internal/interp"
	"github.com/frugurt-lang/frugurt/internal/parser"
)

// Engine runs Frugurt programs. A zero-configured engine writes to
// stdout and reads from stdin.
type Engine struct {
	out    io.Writer
	in     io.Reader
	logger hclog.Logger

	interpreter *interp.Interpreter
}

// Option configures an Engine.
type Option func(*Engine)

// WithOutput redirects the print builtin.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.out = w }
}

// WithInput redirects the input builtin.
func WithInput(r io.Reader) Option {
	return func(e *Engine) { e.in = r }
}

// WithLogger installs an execution trace logger.
func WithLogger(l hclog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{out: os.Stdout}
	for _, opt := range opts {
		opt(e)
	}

	e.interpreter = interp.New(e.out)
	if e.in != nil {
		e.interpreter.SetInput(e.in)
	}
	if e.logger != nil {
		e.interpreter.SetLogger(e.logger)
	}
	return e
}

// Run parses and executes an AST document.
func (e *Engine) Run(data []byte) error {
	program, err := parser.Parse(data)
	if err != nil {
		return err
	}
	_, err = e.interpreter.Run(program)
	return err
}

// RunFile parses and executes a program file.
func (e *Engine) RunFile(path string) error {
	_, err := e.interpreter.ExecuteFile(path)
	return err
}
