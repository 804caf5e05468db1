package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRender Category = "render"
	CategoryConfig Category = "config"
	CategoryExport Category = "export"
	CategoryServe  Category = "serve"
	CategoryCLI    Category = "cli"
)

// VelumError is a structured error with a stable code, suggestions, and
// documentation links.
type VelumError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (render, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *VelumError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *VelumError) Unwrap() error {
	return e.Wrapped
}

// WithSuggestion adds a fix suggestion to the error.
func (e *VelumError) WithSuggestion(s string) *VelumError {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *VelumError) WithExample(ex string) *VelumError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *VelumError) WithDetail(d string) *VelumError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted detailed explanation to the error.
func (e *VelumError) WithDetailf(format string, args ...any) *VelumError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *VelumError) Wrap(err error) *VelumError {
	e.Wrapped = err
	return e
}

// New creates a VelumError from a registered error code.
func New(code string) *VelumError {
	template, ok := registry[code]
	if !ok {
		return &VelumError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &VelumError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new VelumError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *VelumError {
	return &VelumError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a VelumError.
func FromError(err error, code string) *VelumError {
	if err == nil {
		return nil
	}
	if ve, ok := err.(*VelumError); ok {
		return ve
	}
	return New(code).Wrap(err)
}

// IsCode reports whether err is (or wraps) a VelumError with the given code.
func IsCode(err error, code string) bool {
	for err != nil {
		if ve, ok := err.(*VelumError); ok && ve.Code == code {
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
