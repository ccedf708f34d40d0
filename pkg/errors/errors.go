package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"
	ErrFileAccess     ErrorCode = "FILE_ACCESS"

	// Syntax errors: the user wrote something in a theme or pattern
	// file that dye cannot make sense of. Fatal by contract; a missing
	// key is never a syntax error.
	ErrSyntax ErrorCode = "SYNTAX"

	// Theme and pattern file errors
	ErrThemeLoad    ErrorCode = "THEME_LOAD"
	ErrThemeParse   ErrorCode = "THEME_PARSE"
	ErrPatternLoad  ErrorCode = "PATTERN_LOAD"
	ErrPatternParse ErrorCode = "PATTERN_PARSE"
	ErrVersionCheck ErrorCode = "VERSION_CHECK"

	// Scope and agent errors
	ErrScopeNotFound ErrorCode = "SCOPE_NOT_FOUND"
	ErrUnknownAgent  ErrorCode = "UNKNOWN_AGENT"
	ErrAgentRun      ErrorCode = "AGENT_RUN"
)

// DyeError represents a structured error with code and details
type DyeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DyeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DyeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DyeError) Is(target error) bool {
	var targetErr *DyeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DyeError with the given code and message
func New(code ErrorCode, message string) *DyeError {
	return &DyeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DyeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DyeError {
	return &DyeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DyeError
func Wrap(err error, code ErrorCode, message string) *DyeError {
	if err == nil {
		return nil
	}
	return &DyeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DyeError {
	if err == nil {
		return nil
	}
	return &DyeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Syntaxf creates a syntax error with a formatted message. Agents use
// this for malformed scope values; the message is shown to the user
// verbatim, so it must name the offending style or key and the scope.
func Syntaxf(format string, args ...interface{}) *DyeError {
	return Newf(ErrSyntax, format, args...)
}

// WithDetail adds a detail to the error
func (e *DyeError) WithDetail(key string, value interface{}) *DyeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *DyeError) WithDetails(details map[string]interface{}) *DyeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dyeErr *DyeError
	if errors.As(err, &dyeErr) {
		return dyeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DyeError
func GetErrorCode(err error) ErrorCode {
	var dyeErr *DyeError
	if errors.As(err, &dyeErr) {
		return dyeErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DyeError
func GetErrorDetails(err error) map[string]interface{} {
	var dyeErr *DyeError
	if errors.As(err, &dyeErr) {
		return dyeErr.Details
	}
	return nil
}

// UserMessage renders an error chain for end users: DyeError codes are
// dropped and messages join with ": ", so the CLI prints
// "dye: unable to read pattern file 'x.toml': no such file" instead of
// the bracketed codes Error() carries for logs and tests.
func UserMessage(err error) string {
	var parts []string
	for err != nil {
		var dyeErr *DyeError
		if !errors.As(err, &dyeErr) {
			parts = append(parts, err.Error())
			break
		}
		parts = append(parts, dyeErr.Message)
		err = dyeErr.Wrapped
	}
	return strings.Join(parts, ": ")
}
