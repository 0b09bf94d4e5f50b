package template

import (
	"errors"
	"fmt"
)

// Sentinel errors for template compilation.
var (
	// ErrSyntax is matched by every template compilation failure.
	ErrSyntax = errors.New("template syntax error")

	// ErrMissingClosingBrace is returned when a placeholder is not closed by '}'.
	ErrMissingClosingBrace = errors.New("missing closing brace")

	// ErrInvalidSpecifier is returned when the character after '%' is not one of d, u, s, f.
	ErrInvalidSpecifier = errors.New("invalid specifier")

	// ErrUnmatchedBrace is returned for a '}' that does not close a placeholder.
	ErrUnmatchedBrace = errors.New("unmatched closing brace")
)

// SyntaxError describes why a template failed to compile.
// It matches both ErrSyntax and the specific sentinel under errors.Is.
type SyntaxError struct {
	Template string // Template text that failed
	Offset   int    // Byte offset of the offending character
	Err      error  // Specific sentinel
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d in %q: %v", ErrSyntax, e.Offset, e.Template, e.Err)
}

// Unwrap returns both the category and the specific cause.
func (e *SyntaxError) Unwrap() []error {
	return []error{ErrSyntax, e.Err}
}

func syntaxError(text string, offset int, err error) *SyntaxError {
	return &SyntaxError{Template: text, Offset: offset, Err: err}
}
