// Package errors provides structured error types for tempo.
//
// Errors carry a machine-readable [Code] next to the message. The CLI prints
// the message, the playground API maps the code to an HTTP status.
//
// # Error Codes
//
// Codes are grouped by prefix: INVALID_* for rejected input, MISSING_* for
// configuration mistakes, NOT_FOUND and FILE_NOT_FOUND, NETWORK_ERROR and
// friends for transport failures, INTERNAL_ERROR for everything else.
//
// # Configuration errors
//
// The core never returns MISSING_* errors. Asking for geometry or a component
// that was never registered is a programming mistake, so the core panics with
// an *Error carrying one of these codes. Use [Fatal] to raise them.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid tile: %s", name)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to fetch %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidTile     Code = "INVALID_TILE"
	ErrCodeInvalidGrid     Code = "INVALID_GRID"
	ErrCodeInvalidSnapshot Code = "INVALID_SNAPSHOT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Configuration errors (fatal)
	ErrCodeMissingComponent Code = "MISSING_COMPONENT"
	ErrCodeMissingHeader    Code = "MISSING_HEADER"
	ErrCodeMissingItem      Code = "MISSING_ITEM"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Network errors
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeRateLimited Code = "RATE_LIMITED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

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

// Fatal panics with a new Error. It is reserved for configuration mistakes
// that have no meaningful runtime recovery.
func Fatal(code Code, format string, args ...any) {
	panic(New(code, format, args...))
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message of the first *Error in err's chain
// without its code, or err.Error() for other errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
