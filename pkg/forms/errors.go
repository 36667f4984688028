package forms

import (
	"errors"
	"fmt"
)

// ErrValidation matches every ValidationError through errors.Is.
var ErrValidation = errors.New("forms: validation failed")

// ErrNoRenderer is returned by Element.Render when no renderer is configured.
var ErrNoRenderer = errors.New("forms: element has no renderer")

// ValidationError reports an element configuration error such as a missing
// validator list or attribute mapping. The loaders also use it for bad names.
type ValidationError struct {
	Op      string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Op == "" {
		return "forms: " + e.Message
	}
	return fmt.Sprintf("forms: %s: %s", e.Op, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError for the named operation.
func NewValidationError(op, message string) error {
	return &ValidationError{Op: op, Message: message}
}
