package errors

import (
	"errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryRoutes   Category = "routes"
	CategoryGenerate Category = "generate"
	CategoryStorage  Category = "storage"
	CategoryCLI      Category = "cli"
)

// RoutegenError is a structured error with a code, hints and documentation.
type RoutegenError struct {
	// Code is a unique error identifier (e.g., "E201").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// File is the file the error relates to, if any.
	File string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *RoutegenError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *RoutegenError) Unwrap() error {
	return e.Wrapped
}

// WithFile records the file the error relates to.
func (e *RoutegenError) WithFile(file string) *RoutegenError {
	e.File = file
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *RoutegenError) WithSuggestion(s string) *RoutegenError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *RoutegenError) WithDetail(d string) *RoutegenError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *RoutegenError) Wrap(err error) *RoutegenError {
	e.Wrapped = err
	return e
}

// New creates a RoutegenError from a registered error code.
func New(code string) *RoutegenError {
	template, ok := registry[code]
	if !ok {
		return &RoutegenError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &RoutegenError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new RoutegenError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *RoutegenError {
	return &RoutegenError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a RoutegenError. Errors that already
// are (or wrap) a RoutegenError are returned as that error.
func FromError(err error, code string) *RoutegenError {
	if err == nil {
		return nil
	}
	var re *RoutegenError
	if errors.As(err, &re) {
		return re
	}
	return New(code).Wrap(err)
}
