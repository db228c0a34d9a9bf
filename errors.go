package pureguard

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *ValidationError) by Predicate.Check.
// Match them with errors.Is.
var (
	// ErrNotNumber is reported when a value is not a mathematical number.
	ErrNotNumber = errors.New("pureguard: not a mathematical number")

	// ErrUndefined is reported for nil values.
	ErrUndefined = errors.New("pureguard: value is undefined")

	// ErrEmpty is reported for empty slices or arrays.
	ErrEmpty = errors.New("pureguard: array is empty")

	// ErrNotEnum is reported when a value is not a member of an enum.
	ErrNotEnum = errors.New("pureguard: not an enum member")

	// ErrPredicate is the default for predicates built without a sentinel.
	ErrPredicate = errors.New("pureguard: predicate failed")
)

// Error codes carried by ValidationError.
const (
	CodeInvalid     = 400
	CodeUnprocessed = 422
)

// ValidationError is an error with an associated code, the rejected value
// and the sentinel that classifies it.
type ValidationError struct {
	Value any
	code  int
	err   error
}

// NewValidationError returns a ValidationError for value. A nil err is
// replaced by ErrPredicate.
func NewValidationError(value any, code int, err error) *ValidationError {
	if err == nil {
		err = ErrPredicate
	}
	return &ValidationError{Value: value, code: code, err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%d] %v: %#v", e.code, e.err, e.Value)
}

// Code returns the error code.
func (e *ValidationError) Code() int {
	return e.code
}

// Unwrap returns the sentinel.
func (e *ValidationError) Unwrap() error {
	return e.err
}
