package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownProgram is returned when a slug or code is outside the
	// closed program enumeration.
	ErrUnknownProgram = errors.New("unknown program")
)

// ValidationError names the record field that broke an invariant.
type ValidationError struct {
	Field   string
	Message string
	// Cause, when set, is a more specific sentinel such as ErrUnknownProgram.
	Cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap exposes ErrInvalidInput and, if present, Cause.
func (e *ValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrInvalidInput, e.Cause}
	}
	return []error{ErrInvalidInput}
}
