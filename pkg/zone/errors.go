package zone

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrPrecondition     = errors.New("precondition failed")
	ErrEmptyCatalog     = errors.New("catalog has no ranges")
)

// ValidationError is returned when a Code or Range is constructed from
// values outside the valid domain.
type ValidationError struct {
	Field  string
	Value  int
	Reason string
}

func (err ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", err.Field, err.Value, err.Reason)
}

func (err ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var _ error = ValidationError{}

// InvalidOperationError is returned when Merge is called on two ranges that
// share no point.
type InvalidOperationError struct {
	Op string
	A  Range
	B  Range
}

func (err InvalidOperationError) Error() string {
	return fmt.Sprintf("cannot %s %s with %s: ranges do not overlap", err.Op, err.A, err.B)
}

func (err InvalidOperationError) Is(target error) bool {
	return target == ErrInvalidOperation
}

var _ error = InvalidOperationError{}
