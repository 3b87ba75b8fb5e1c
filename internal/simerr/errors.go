package simerr

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies failures surfaced at the simulator's boundaries.
// The engine itself never errors; these cover config, validation and storage.
type ErrorCategory string

const (
	ErrorCategoryValidation    ErrorCategory = "VALIDATION"
	ErrorCategoryConfiguration ErrorCategory = "CONFIG"
	ErrorCategoryStorage       ErrorCategory = "STORAGE"
)

// SimError is a categorized error with component and operation context.
type SimError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *SimError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *SimError) Unwrap() error {
	return e.Underlying
}

// New creates a categorized error.
func New(category ErrorCategory, component, operation, message string) *SimError {
	return &SimError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
	}
}

// Newf creates a categorized error with a formatted message.
func Newf(category ErrorCategory, component, operation, format string, args ...interface{}) *SimError {
	return New(category, component, operation, fmt.Sprintf(format, args...))
}

// Wrap attaches category and context to an existing error.
func Wrap(err error, category ErrorCategory, component, operation string) *SimError {
	return &SimError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
	}
}

// IsValidation reports whether err is, or wraps, a validation error.
func IsValidation(err error) bool {
	var se *SimError
	return errors.As(err, &se) && se.Category == ErrorCategoryValidation
}
