// Package errors provides coded errors for anchorgraph.
//
// Libraries return an [*Error] when a caller may want to react to the kind of
// failure rather than its text: a scene that does not decode, a ratio that
// does not parse, a connection naming a widget the scene lacks. The CLI maps
// codes to exit statuses with [ExitCode].
//
// # Error Codes
//
//   - INVALID_*: the input (scene file, flag value, ratio string) is malformed
//   - *_NOT_FOUND: a named file or widget does not exist
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidRatio, "invalid ratio %q", s)
//	if errors.Is(err, errors.ErrCodeInvalidRatio) {
//	    // fall back to no ratio
//	}
//
//	err = errors.Wrap(errors.ErrCodeInvalidFormat, jsonErr, "decode scene")
//
// [Is] looks at the outermost coded error only, so wrapping a coded error in
// another one changes its code.
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// Malformed input
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidRatio    Code = "INVALID_RATIO"
	ErrCodeInvalidWidgetID Code = "INVALID_WIDGET_ID"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Missing resources
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"
	ErrCodeWidgetNotFound Code = "WIDGET_NOT_FOUND"
)

// Process exit statuses used by the anchorgraph command.
const (
	ExitFailure = 1
	ExitInvalid = 2
	ExitMissing = 3
)

// Error is an error with a code and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the cause, so errors.Is and errors.As see through e.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an error with code and a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error with code that wraps cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost coded error in err's chain has code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost coded error in err's chain, or
// "" when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// ExitCode returns the process exit status for err: ExitInvalid for
// malformed input, ExitMissing for missing files and widgets, ExitFailure
// otherwise.
func ExitCode(err error) int {
	switch GetCode(err) {
	case ErrCodeInvalidFormat, ErrCodeInvalidRatio, ErrCodeInvalidWidgetID, ErrCodeInvalidPath:
		return ExitInvalid
	case ErrCodeFileNotFound, ErrCodeWidgetNotFound:
		return ExitMissing
	}
	return ExitFailure
}
