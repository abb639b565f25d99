// Package errors provides structured error types for the mvnsrc application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Resource not found
//   - PROCESS_*/TIMEOUT: Subprocess failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodePomNotFound, "no pom.xml in %s", dir)
//	if errors.Is(err, errors.ErrCodePomNotFound) {
//	    // Handle missing build descriptor
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeProcess, origErr, "failed to run %s", cmd)
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
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodePomNotFound      Code = "POM_NOT_FOUND"
	ErrCodeCommandNotFound  Code = "COMMAND_NOT_FOUND"
	ErrCodeArtifactNotFound Code = "ARTIFACT_NOT_FOUND"

	// Subprocess errors
	ErrCodeProcess Code = "PROCESS_ERROR"
	ErrCodeTimeout Code = "TIMEOUT"

	// Extraction errors
	ErrCodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	ErrCodeExtraction        Code = "EXTRACTION_FAILED"
	ErrCodeDecompile         Code = "DECOMPILE_FAILED"

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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// ExitError provides additional information for subprocesses that ran but
// exited with a non-zero status.
type ExitError struct {
	ExitCode int    // Exit code reported by the child process
	Stderr   string // Captured stderr, possibly truncated
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("exit code %d: %s", e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("exit code %d", e.ExitCode)
}

// Code returns the error code for this error type.
func (e *ExitError) Code() Code {
	return ErrCodeProcess
}
