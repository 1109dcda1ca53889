package tracker

import (
	"errors"
	"fmt"
)

// Error is returned by every Service operation that fails.
//
// Code identifies the category; callers branch on it with the Is* helpers
// rather than comparing messages.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// ID is the application the operation referred to, if any.
	ID int64

	// Line is the 1-based CSV line number (import only).
	Line int

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes tracker errors.
type ErrorCode string

const (
	// ErrCodeValidation indicates rejected input; nothing was written.
	ErrCodeValidation ErrorCode = "VALIDATION"

	// ErrCodeNotFound indicates the referenced ID does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeStorage indicates the database failed.
	ErrCodeStorage ErrorCode = "STORAGE"

	// ErrCodeMalformedLine indicates a CSV line without enough fields.
	ErrCodeMalformedLine ErrorCode = "MALFORMED_CSV_LINE"

	// ErrCodeFileIO indicates an export/import file could not be opened, read or written.
	ErrCodeFileIO ErrorCode = "FILE_IO"
)

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsValidationError returns true if err is a validation error.
// Uses errors.As to handle wrapped errors.
func IsValidationError(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsNotFoundError returns true if err reports a missing application.
func IsNotFoundError(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}

// IsStorageError returns true if err is a database failure.
func IsStorageError(err error) bool {
	return hasCode(err, ErrCodeStorage)
}

// IsMalformedLineError returns true if err reports a malformed CSV line.
func IsMalformedLineError(err error) bool {
	return hasCode(err, ErrCodeMalformedLine)
}

// IsFileIOError returns true if err is an export/import file failure.
func IsFileIOError(err error) bool {
	return hasCode(err, ErrCodeFileIO)
}

func hasCode(err error, code ErrorCode) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.Code == code
	}
	return false
}

// NewValidationError creates an Error for rejected input.
func NewValidationError(message string) *Error {
	return &Error{Code: ErrCodeValidation, Message: message}
}

// NewNotFoundError creates an Error for a missing application.
func NewNotFoundError(id int64, err error) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("job application with ID %d does not exist", id),
		ID:      id,
		Err:     err,
	}
}

// NewStorageError wraps a database failure.
func NewStorageError(op string, err error) *Error {
	return &Error{Code: ErrCodeStorage, Message: op, Err: err}
}

// NewMalformedLineError creates an Error for a CSV line with too few fields.
func NewMalformedLineError(line int, content string) *Error {
	return &Error{
		Code:    ErrCodeMalformedLine,
		Message: fmt.Sprintf("invalid CSV format: %q", content),
		Line:    line,
	}
}

// NewFileIOError wraps a file open/read/write failure.
func NewFileIOError(op, path string, err error) *Error {
	return &Error{
		Code:    ErrCodeFileIO,
		Message: fmt.Sprintf("could not %s %s", op, path),
		Err:     err,
	}
}
