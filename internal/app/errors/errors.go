package errors

import (
	"fmt"
)

// Common error types
var (
	// Configuration errors
	ErrMissingAPIKey = New("API key is required")
	ErrInvalidConfig = New("invalid configuration")

	// Intake errors
	ErrRejected   = New("upload rejected")
	ErrUnreadable = New("upload unreadable")

	// Transcription errors
	ErrTranscriptionFailed = New("transcription failed")
	ErrEmptyTranscription  = New("no transcription text in response")

	// Export errors
	ErrNothingToExport     = New("no transcriptions to export")
	ErrUnsupportedFormat   = New("unsupported export format")
	ErrSerializationFailed = New("export serialization failed")

	// File errors
	ErrFileReadFailed  = New("file read failed")
	ErrFileWriteFailed = New("file write failed")
)

// Error represents a standardized error
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Mark attaches a sentinel to err so that errors.Is matches both.
func Mark(err error, sentinel *Error) error {
	if err == nil {
		return nil
	}
	return &marked{sentinel: sentinel, cause: err}
}

type marked struct {
	sentinel *Error
	cause    error
}

func (m *marked) Error() string {
	return fmt.Sprintf("%s: %v", m.sentinel.message, m.cause)
}

func (m *marked) Unwrap() []error {
	return []error{m.sentinel, m.cause}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// RequiredField returns an error for missing required fields
func RequiredField(field string) error {
	return Newf("%s is required", field)
}

// InvalidField returns an error for invalid field values
func InvalidField(field string, reason string) error {
	return Newf("%s is invalid: %s", field, reason)
}
