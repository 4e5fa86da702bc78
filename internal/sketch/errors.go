package sketch

import (
	"errors"
	"fmt"
)

// Registry errors.
var (
	// ErrNotFound indicates an animation id with no registered descriptor.
	ErrNotFound = errors.New("sketch: animation not found")

	// ErrDuplicateID indicates a second registration under an existing id.
	ErrDuplicateID = errors.New("sketch: duplicate animation id")

	// ErrInvalid indicates a descriptor or renderer that cannot be registered.
	ErrInvalid = errors.New("sketch: invalid registration")
)

// RegistryError wraps a registry error with the operation and id involved.
type RegistryError struct {
	Op      string
	ID      string
	Wrapped error
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.ID, e.Wrapped)
}

func (e *RegistryError) Unwrap() error {
	return e.Wrapped
}
