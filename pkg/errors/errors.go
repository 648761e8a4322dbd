// Package errors provides structured error types for gridpad.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the core, CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Declaration and input validation failures
//   - UNBOUNDED_*: Constraints that cannot be laid out
//   - NOT_FOUND*: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// # Configuration Errors
//
// A grid definition that can never be laid out (a non-positive cell size, a
// span below one, an infinite container) is a configuration error. These abort
// the layout pass. Use [IsConfiguration] to tell them apart from ordinary
// failures. Items that merely fall outside the grid are not errors at all;
// they are reported as skip events by the registry.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidSpan, "row span must be >= 1, got %d", span)
//	if errors.Is(err, errors.ErrCodeInvalidSpan) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidDeclaration, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Declaration errors
	ErrCodeInvalidCellSize    Code = "INVALID_CELL_SIZE"
	ErrCodeInvalidSpan        Code = "INVALID_SPAN"
	ErrCodeInvalidDeclaration Code = "INVALID_DECLARATION"
	ErrCodeInvalidPolicy      Code = "INVALID_POLICY"

	// Constraint errors
	ErrCodeUnboundedConstraint Code = "UNBOUNDED_CONSTRAINT"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// configurationCodes are the codes that describe an invalid grid definition.
var configurationCodes = map[Code]bool{
	ErrCodeInvalidCellSize:     true,
	ErrCodeInvalidSpan:         true,
	ErrCodeInvalidDeclaration:  true,
	ErrCodeInvalidPolicy:       true,
	ErrCodeUnboundedConstraint: true,
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsConfiguration reports whether err describes an invalid grid definition
// (bad cell size, bad span, unbounded container, malformed declaration).
func IsConfiguration(err error) bool {
	return configurationCodes[GetCode(err)]
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
