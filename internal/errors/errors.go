package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig = "CONFIG"
	ErrGdctl  = "GDCTL"
	ErrParse  = "PARSE"
	ErrBackup = "BACKUP"
	ErrExec   = "EXEC"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrGdctl code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrGdctl,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewGdctlFailure creates an error for a failed gdctl invocation, carrying the
// tool's raw stderr text so the user sees exactly what gdctl complained about.
func NewGdctlFailure(action, stderr string) *Error {
	detail := strings.TrimSpace(stderr)
	var cause error
	if detail != "" {
		cause = fmt.Errorf("%s", detail)
	}
	return &Error{
		Code:       ErrGdctl,
		Message:    action + " failed",
		Suggestion: "Run 'gdctl show' to verify your display setup.",
		Cause:      cause,
	}
}

// Error implements the error interface with formatted output.
func (e *Error) Error() string {
	var b strings.Builder

	// First line: failure symbol + main message
	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	// Include cause if present (why it failed)
	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	// Include suggestion if present (how to fix)
	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var gmsErr *Error
	if errors.As(err, &gmsErr) {
		return gmsErr.Code == code
	}
	return false
}
