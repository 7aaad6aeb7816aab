package parser

import (
	"os"

	"github.com/pkg/errors"

	"github.com/frugurt-lang/frugurt/internal/ast"
)

// ParseFile reads and parses a program file.
func ParseFile(path string) (*ast.SourceCode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return Parse(data)
}
