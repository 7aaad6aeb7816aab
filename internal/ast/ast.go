// Package ast defines the Abstract Syntax Tree node types for Frugurt.
//
// The tree is produced by the parser and consumed by the interpreter.
// Nodes are immutable after construction; the interpreter shares them
// freely (a method body, for example, is referenced by every function
// value derived from it).
package ast

import (
	"strings"

	"github.com/frugurt-lang/frugurt/pkg/ident"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// String returns a string representation of the node for
	// debugging and testing.
	String() string
}

// Expression represents any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement represents a node that performs an action and signals
// control flow instead of producing a value.
type Statement interface {
	Node
	statementNode()
}

// Arg is a single call argument: an optional name and the expression
// producing its value. Positional arguments have no name.
type Arg struct {
	Name  *ident.Ident
	Value Expression
}

func (a Arg) String() string {
	if a.Name != nil {
		return a.Name.String() + ": " + a.Value.String()
	}
	return a.Value.String()
}

// Param is a formal parameter: its name and an optional default
// expression. Parameters with defaults follow purely positional ones.
type Param struct {
	Name    ident.Ident
	Default Expression
}

func (p Param) String() string {
	if p.Default != nil {
		return p.Name.String() + " = " + p.Default.String()
	}
	return p.Name.String()
}

func argsString(args []Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

func paramsString(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

func bodyString(body []Statement) string {
	var sb strings.Builder
	sb.WriteString("{ ")
	for _, stmt := range body {
		sb.WriteString(stmt.String())
		sb.WriteString("; ")
	}
	sb.WriteString("}")
	return sb.String()
}
