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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Package errors
	ErrPackageNotFound      ErrorCode = "PACKAGE_NOT_FOUND"
	ErrPackageNotADirectory ErrorCode = "PACKAGE_NOT_A_DIRECTORY"
	ErrDescriptorRead       ErrorCode = "DESCRIPTOR_READ"
	ErrDescriptorParse      ErrorCode = "DESCRIPTOR_PARSE"
	ErrSettingsLoad         ErrorCode = "SETTINGS_LOAD"

	// Enumeration errors
	ErrOverrideBuild      ErrorCode = "OVERRIDE_BUILD"
	ErrWalk               ErrorCode = "WALK"
	ErrPathRelativization ErrorCode = "PATH_RELATIVIZATION"
	ErrShellExpansion     ErrorCode = "SHELL_EXPANSION"

	// Symlink errors
	ErrTargetExists ErrorCode = "TARGET_EXISTS"
	ErrNotASymlink  ErrorCode = "NOT_A_SYMLINK"
	ErrLinkCreate   ErrorCode = "LINK_CREATE"
	ErrLinkRemove   ErrorCode = "LINK_REMOVE"

	// Hook errors
	ErrHookCommand ErrorCode = "HOOK_COMMAND"
)

// ScrubjayError represents a structured error with code and details
type ScrubjayError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ScrubjayError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ScrubjayError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ScrubjayError) Is(target error) bool {
	var targetErr *ScrubjayError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Kind is the lower-cased code used in user facing messages.
func (c ErrorCode) Kind() string {
	return strings.ToLower(string(c))
}

// New creates a new ScrubjayError with the given code and message
func New(code ErrorCode, message string) *ScrubjayError {
	return &ScrubjayError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ScrubjayError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ScrubjayError {
	return &ScrubjayError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ScrubjayError
func Wrap(err error, code ErrorCode, message string) *ScrubjayError {
	if err == nil {
		return nil
	}
	return &ScrubjayError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ScrubjayError {
	if err == nil {
		return nil
	}
	return &ScrubjayError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ScrubjayError) WithDetail(key string, value interface{}) *ScrubjayError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sjErr *ScrubjayError
	if errors.As(err, &sjErr) {
		return sjErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ScrubjayError
func GetErrorCode(err error) ErrorCode {
	var sjErr *ScrubjayError
	if errors.As(err, &sjErr) {
		return sjErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ScrubjayError
func GetErrorDetails(err error) map[string]interface{} {
	var sjErr *ScrubjayError
	if errors.As(err, &sjErr) {
		return sjErr.Details
	}
	return nil
}

// Line renders err as a single "kind: detail" line.
func Line(err error) string {
	if err == nil {
		return ""
	}
	var sjErr *ScrubjayError
	if !errors.As(err, &sjErr) {
		return fmt.Sprintf("%s: %s", ErrUnknown.Kind(), oneLine(err.Error()))
	}
	detail := sjErr.Message
	if sjErr.Wrapped != nil {
		detail = fmt.Sprintf("%s: %s", detail, causeText(sjErr.Wrapped))
	}
	return fmt.Sprintf("%s: %s", sjErr.Code.Kind(), oneLine(detail))
}

// causeText drops the "[CODE]" prefix of nested errors so Line stays readable.
func causeText(err error) string {
	var sjErr *ScrubjayError
	if errors.As(err, &sjErr) && sjErr == err {
		if sjErr.Wrapped != nil {
			return fmt.Sprintf("%s: %s", sjErr.Message, causeText(sjErr.Wrapped))
		}
		return sjErr.Message
	}
	return err.Error()
}

func oneLine(s string) string {
	s = strings.TrimSpace(s)
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}
