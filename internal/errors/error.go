package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime  Category = "runtime"
	CategoryUsage    Category = "usage"
	CategoryProtocol Category = "protocol"
	CategoryConfig   Category = "config"
)

// PulseError is a structured error with a stable code, a fix suggestion,
// and a documentation link.
type PulseError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (runtime, usage, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *PulseError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[PULSE %s] %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *PulseError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *PulseError) WithSuggestion(s string) *PulseError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *PulseError) WithDetail(d string) *PulseError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *PulseError) Wrap(err error) *PulseError {
	e.Wrapped = err
	return e
}

// New creates a PulseError from a registered error code.
func New(code string) *PulseError {
	template, ok := registry[code]
	if !ok {
		return &PulseError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &PulseError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new PulseError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *PulseError {
	return &PulseError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a PulseError.
func FromError(err error, code string) *PulseError {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*PulseError); ok {
		return pe
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err or any error it wraps carries the given code.
func HasCode(err error, code string) bool {
	for err != nil {
		if pe, ok := err.(*PulseError); ok && pe.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
