package errors

import "fmt"

// ErrorCode represents an exporter error code.
type ErrorCode string

const (
	ErrSourceUnavailable ErrorCode = "SOURCE_UNAVAILABLE" // curriculum database missing or unopenable
	ErrSinkUnwritable    ErrorCode = "SINK_UNWRITABLE"    // output path cannot be created or written
	ErrInvalidRequest    ErrorCode = "INVALID_REQUEST"    // bad input (config, CLI arguments)
	ErrInternal          ErrorCode = "INTERNAL"           // unexpected failure (query, scan, encode)
)

// ExportError represents a structured error with a code and details.
type ExportError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *ExportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the recorded cause, if any.
func (e *ExportError) Unwrap() error {
	if cause, ok := e.Details["cause"].(error); ok {
		return cause
	}
	return nil
}

// NewSourceUnavailable creates an error for an unreadable curriculum database.
func NewSourceUnavailable(path string, cause error) *ExportError {
	msg := fmt.Sprintf("curriculum database unavailable: %s", path)
	if cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, cause)
	}
	return &ExportError{
		Code:    ErrSourceUnavailable,
		Message: msg,
		Details: map[string]any{"path": path, "cause": cause},
	}
}

// NewSinkUnwritable creates an error for an output path that cannot be written.
func NewSinkUnwritable(path string, cause error) *ExportError {
	msg := fmt.Sprintf("cannot write export to: %s", path)
	if cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, cause)
	}
	return &ExportError{
		Code:    ErrSinkUnwritable,
		Message: msg,
		Details: map[string]any{"path": path, "cause": cause},
	}
}

// NewInvalidRequest creates an error for invalid input parameters.
func NewInvalidRequest(msg string) *ExportError {
	return &ExportError{
		Code:    ErrInvalidRequest,
		Message: msg,
	}
}

// NewInternal creates an error for unexpected internal failures.
func NewInternal(err error) *ExportError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &ExportError{
		Code:    ErrInternal,
		Message: msg,
		Details: map[string]any{"cause": err},
	}
}

// Is checks if an error is an ExportError with the given code.
func Is(err error, code ErrorCode) bool {
	if eErr, ok := err.(*ExportError); ok {
		return eErr.Code == code
	}
	return false
}
