package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every client-facing validation failure.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError carries a message that is safe to return to the caller.
type InvalidInputError struct {
	Message string
}

// Invalidf builds an InvalidInputError with a formatted message.
func Invalidf(format string, args ...any) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

func (e *InvalidInputError) Error() string { return e.Message }

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }
