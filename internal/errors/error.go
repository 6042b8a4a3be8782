package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryRuntime    Category = "runtime"
	CategoryConfig     Category = "config"
	CategoryScenario   Category = "scenario"
	CategoryCLI        Category = "cli"
)

// GateError is a structured error with a code, explanation and suggestion.
type GateError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *GateError) Error() string {
	msg := e.headline()
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *GateError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a GateError with the same code, so that
// errors.Is(err, errors.New("E101")) matches any E101.
func (e *GateError) Is(target error) bool {
	t, ok := target.(*GateError)
	if !ok {
		return false
	}
	return e.Code != "" && e.Code == t.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *GateError) WithSuggestion(s string) *GateError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation of the error.
func (e *GateError) WithDetail(d string) *GateError {
	e.Detail = d
	return e
}

// WithDetailf formats the detailed explanation of the error.
func (e *GateError) WithDetailf(format string, args ...any) *GateError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *GateError) Wrap(err error) *GateError {
	e.Wrapped = err
	return e
}

// New creates a GateError from a registered error code.
func New(code string) *GateError {
	template, ok := registry[code]
	if !ok {
		return &GateError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &GateError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new GateError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *GateError {
	return &GateError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a GateError.
func FromError(err error, code string) *GateError {
	if err == nil {
		return nil
	}
	var ge *GateError
	if stderrors.As(err, &ge) {
		return ge
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err, or any error it wraps, is a GateError
// with the given code.
func HasCode(err error, code string) bool {
	var ge *GateError
	for err != nil {
		if !stderrors.As(err, &ge) {
			return false
		}
		if ge.Code == code {
			return true
		}
		err = ge.Wrapped
	}
	return false
}
