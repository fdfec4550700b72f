package entities

import (
	"errors"
	"fmt"
)

// Calculator rejections. Callers wrap these with item context where useful.
var (
	ErrInvalidItem     = errors.New("invalid order item")
	ErrInvalidDiscount = errors.New("invalid discount")
)

// ValidationError reports the first creation/update precondition that a
// draft payload fails. It is raised before any call to the persistence
// layer; a payload that fails validation is never partially applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidTransitionError reports a status transition that the adjacency
// rules do not permit. Like ValidationError it is raised before any call
// to the persistence layer.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition: %s -> %s", e.Entity, e.From, e.To)
}
