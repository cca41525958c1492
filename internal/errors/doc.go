// Package errors provides the typed failures produced by errdemo's
// validation layer.
//
// The taxonomy is closed: a failing validation yields exactly one of
// CONTENT_NOT_FOUND, TOO_FEW_LINES, TOO_MANY_LINES or INVALID_LINE, each
// carrying its own payload fields.
//
// Example usage:
//
//	// Creating errors
//	err := errors.TooFewLines(2)
//	err := errors.InvalidLine(1, "a bad line")
//
//	// Checking error codes
//	if errors.Is(err, errors.CodeTooFewLines) {
//	    // handle short content
//	}
//
//	// Reading the payload
//	var failure *errors.Error
//	if errors.As(err, &failure) {
//	    fmt.Println(failure.Code, failure.Index, failure.Line)
//	}
package errors
