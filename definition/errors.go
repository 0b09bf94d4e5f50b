package definition

import (
	"errors"
	"fmt"
)

// Sentinel errors for loading and compiling definitions.
var (
	// ErrNotFound is returned by Set.Lookup for an unknown name.
	ErrNotFound = errors.New("definition not found")

	// ErrDuplicate is returned when two definitions share a name.
	ErrDuplicate = errors.New("duplicate definition name")

	// ErrEmptyName is returned for a definition without a name.
	ErrEmptyName = errors.New("definition name is empty")

	// ErrUnknownType is returned for a type name that is not a supported kind.
	ErrUnknownType = errors.New("unknown type")

	// ErrArity is returned when the number of types differs from the number
	// of placeholders in the template.
	ErrArity = errors.New("type count does not match placeholders")

	// ErrUnknownFormat is returned for a file extension or format name that
	// is not yaml, toml or json.
	ErrUnknownFormat = errors.New("unknown definition format")
)

// Error reports a failure tied to one named definition.
type Error struct {
	Name string // Definition name, empty if the definition has none
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("definition: %v", e.Err)
	}
	return fmt.Sprintf("definition %q: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
