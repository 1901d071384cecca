package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidValue      = errors.New("invalid value")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrCapacityExceeded  = errors.New("station is full")
	ErrAlreadyDocked     = errors.New("vehicle already docked")
	ErrNotFound          = errors.New("not found")
	ErrUnknownVariant    = errors.New("unknown variant")
)

// ValueError reports a numeric or enumerated field outside its allowed bound.
type ValueError struct {
	Field string
	Value any
	Bound string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s must be %s, got %v", e.Field, e.Bound, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidValue.
func (e *ValueError) Unwrap() error {
	return ErrInvalidValue
}

func invalidValue(field string, value any, bound string) error {
	return &ValueError{Field: field, Value: value, Bound: bound}
}
