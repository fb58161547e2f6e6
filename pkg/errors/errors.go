// Package errors provides structured error types for mffmt.
//
// Per-file failures and run-level failures both carry a [Code]. The CLI
// prints [UserMessage] next to the file name and derives its exit status
// from the code with [ExitCode]:
//
//   - INVALID_*: the input is not something mffmt can format
//   - *_FAILED: reading or writing the file failed
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotObject, "top-level value is an array")
//	if errors.Is(err, errors.ErrCodeNotObject) {
//	    // Handle non-object document
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeReadFailed, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidJSON    Code = "INVALID_JSON"
	ErrCodeNotObject      Code = "NOT_OBJECT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidPattern Code = "INVALID_PATTERN"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	// File system errors
	ErrCodeReadFailed  Code = "READ_FAILED"
	ErrCodeWriteFailed Code = "WRITE_FAILED"
	ErrCodeNotFound    Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

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

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message and its cause without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Exit statuses returned by [ExitCode].
const (
	ExitFailure = 1 // files need formatting or could not be formatted
	ExitUsage   = 2 // the run itself was misconfigured
)

// ExitCode maps err to a process exit status. Configuration and argument
// problems exit with [ExitUsage] so scripts can tell them apart from
// formatting failures; everything else exits with [ExitFailure].
func ExitCode(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidConfig, ErrCodeInvalidPattern, ErrCodeInvalidPath:
		return ExitUsage
	}
	return ExitFailure
}
