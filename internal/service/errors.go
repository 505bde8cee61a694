package service

import (
	"errors"
	"fmt"
)

var (
	ErrIDRequired          = errors.New("id is required")
	ErrNotFound            = errors.New("archive record not found")
	ErrUnitNotFound        = errors.New("unit not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrLocationUnavailable = errors.New("storage location cannot be determined for this unit")
	ErrAlreadyInactive     = errors.New("archive record already moved to inactive storage")
)

// ValidationError reports which field of the input was rejected.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Unwrap lets callers match any validation failure with errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
