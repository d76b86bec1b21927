package transaction

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no transaction exists for the given id.
	ErrNotFound = errors.New("transaction not found")

	// ErrUnauthorized is returned when the requester does not own the
	// targeted transaction. It is always reported distinctly from ErrNotFound.
	ErrUnauthorized = errors.New("not authorized")
)

// ValidationError reports the first field constraint a payload failed to meet.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
