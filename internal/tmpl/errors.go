package tmpl

import (
	"fmt"
	"strings"
)

// MissingBindingError reports a placeholder that had no binding during
// strict substitution.
type MissingBindingError struct {
	Name string
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("missing binding for placeholder %q", e.Name)
}

// InvalidPlaceholderError reports a "$" that starts no valid placeholder.
// Line and Column are 1-based.
type InvalidPlaceholderError struct {
	Offset int
	Line   int
	Column int
}

func (e *InvalidPlaceholderError) Error() string {
	return fmt.Sprintf("invalid placeholder at line %d, col %d", e.Line, e.Column)
}

func newInvalidPlaceholderError(pattern string, offset int) *InvalidPlaceholderError {
	before := pattern[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset + 1
	if nl := strings.LastIndexByte(before, '\n'); nl >= 0 {
		col = offset - nl
	}
	return &InvalidPlaceholderError{Offset: offset, Line: line, Column: col}
}
