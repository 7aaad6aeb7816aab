package parser

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// SourceRange is a half-open span in the original source file,
// carried through the AST document by the grammar tool.
type SourceRange struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

func (r SourceRange) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.StartLine, r.StartCol, r.EndLine, r.EndCol)
}

// ParseError is a parse-time validation failure with the source range
// of the offending node.
type ParseError struct {
	Message string
	Range   SourceRange
}

func (e *ParseError) Error() string {
	if e.Range == (SourceRange{}) {
		return e.Message
	}
	return fmt.Sprintf("%s at %s", e.Message, e.Range)
}

// fail aborts the conversion with a ParseError anchored at node.
// Parse recovers it at the package boundary.
func fail(node gjson.Result, format string, args ...any) {
	panic(&ParseError{
		Message: fmt.Sprintf(format, args...),
		Range:   rangeOf(node),
	})
}

// rangeOf reads the optional "pos" field: [startLine, startCol,
// endLine, endCol].
func rangeOf(node gjson.Result) SourceRange {
	pos := node.Get("pos").Array()
	if len(pos) != 4 {
		return SourceRange{}
	}
	return SourceRange{
		StartLine: int(pos[0].Int()),
		StartCol:  int(pos[1].Int()),
		EndLine:   int(pos[2].Int()),
		EndCol:    int(pos[3].Int()),
	}
}
