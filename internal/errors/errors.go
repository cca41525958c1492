package errors

import (
	"errors"
	"fmt"
)

// Error codes for the validation taxonomy.
const (
	CodeContentNotFound = "CONTENT_NOT_FOUND"
	CodeTooFewLines     = "TOO_FEW_LINES"
	CodeTooManyLines    = "TOO_MANY_LINES"
	CodeInvalidLine     = "INVALID_LINE"
)

// Error represents an errdemo failure with a code, a message and the
// payload of its variant. Count is set for the line-count variants, Index
// and Line for INVALID_LINE. An Error never carries an underlying cause.
type Error struct {
	Code    string
	Message string
	Count   int
	Index   int
	Line    string
}

// Error returns the error message, implementing the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates a new errdemo error with the given code and message.
func New(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Code extracts the error code from an error.
// Returns an empty string if the error is not an errdemo error.
func Code(err error) string {
	if err == nil {
		return ""
	}
	var demoErr *Error
	if errors.As(err, &demoErr) {
		return demoErr.Code
	}
	return ""
}

// Is checks if an error has a specific error code.
func Is(err error, code string) bool {
	return Code(err) == code
}

// As is errors.As from the standard library, re-exported so callers
// importing this package under the name errors keep access to it.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Convenience constructors for each variant

// ContentNotFound creates a CONTENT_NOT_FOUND error.
func ContentNotFound() *Error {
	return New(CodeContentNotFound, "content not found")
}

// TooFewLines creates a TOO_FEW_LINES error.
func TooFewLines(count int) *Error {
	err := New(CodeTooFewLines, fmt.Sprintf("too few lines, found %d lines", count))
	err.Count = count
	return err
}

// TooManyLines creates a TOO_MANY_LINES error.
func TooManyLines(count int) *Error {
	err := New(CodeTooManyLines, fmt.Sprintf("too many lines, found %d lines", count))
	err.Count = count
	return err
}

// InvalidLine creates an INVALID_LINE error for the zero-based line index.
func InvalidLine(index int, line string) *Error {
	err := New(CodeInvalidLine, fmt.Sprintf("invalid line %d: %q", index, line))
	err.Index = index
	err.Line = line
	return err
}
