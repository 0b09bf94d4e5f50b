package decode

import (
	"errors"
	"fmt"
)

// Sentinel errors for decoding.
var (
	// ErrInvalidNumber is returned when a numeric literal does not follow the grammar.
	ErrInvalidNumber = errors.New("invalid number format")

	// ErrOverflow is returned when a value exceeds the maximum of the target type.
	ErrOverflow = errors.New("overflow")

	// ErrUnderflow is returned when a value is below the minimum of the target
	// type, or a non-zero float rounds to zero.
	ErrUnderflow = errors.New("underflow")

	// ErrTypeMismatch is returned when a placeholder's specifier does not
	// allow the requested kind.
	ErrTypeMismatch = errors.New("type-format mismatch")

	// ErrUnsupportedKind is returned for a kind outside the supported set.
	ErrUnsupportedKind = errors.New("unsupported kind")
)

// Error wraps a decoding failure with the input and target kind.
type Error struct {
	Kind  Kind   // Requested kind
	Input string // Text that failed to decode
	Err   error  // Underlying sentinel
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("decode %q as %s: %v", e.Input, e.Kind, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(k Kind, input string, err error) *Error {
	return &Error{Kind: k, Input: input, Err: err}
}

// IsRangeError reports whether err is an overflow or underflow.
func IsRangeError(err error) bool {
	return errors.Is(err, ErrOverflow) || errors.Is(err, ErrUnderflow)
}
