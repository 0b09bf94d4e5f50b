package scan

import (
	"errors"
	"fmt"
)

// Sentinel errors for scan operations.
var (
	// ErrUsage is matched by every error caused by calling the scanner
	// incorrectly, as opposed to a source text that does not decode.
	ErrUsage = errors.New("scan usage error")

	// ErrArity is returned when the number of requested kinds or destinations
	// differs from the template's placeholder count.
	ErrArity = errors.New("wrong number of requested values")

	// ErrIndex is returned for a placeholder index outside the template.
	ErrIndex = errors.New("placeholder index out of range")

	// ErrUnsupportedDestination is returned when an Into destination is not a
	// non-nil pointer to a supported type.
	ErrUnsupportedDestination = errors.New("unsupported destination")

	// ErrNilTemplate is returned when no compiled template is supplied.
	ErrNilTemplate = errors.New("nil template")
)

// Error reports the placeholder whose value failed to decode or check.
type Error struct {
	Index int   // Placeholder index
	Span  Span  // Resolved span in the source
	Err   error // Underlying decode or mismatch error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("placeholder %d at [%d:%d]: %v", e.Index, e.Span.Start, e.Span.End, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// usageError wraps err so it matches both ErrUsage and err.
func usageError(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrUsage, err, fmt.Sprintf(format, args...))
}
