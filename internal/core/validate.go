package core

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Fuabioo/errdemo/internal/errors"
)

const (
	// ExpectedLines is the exact line count Validate accepts.
	ExpectedLines = 3

	// ForbiddenSubstring marks a line as invalid.
	ForbiddenSubstring = "bad"
)

// Validate reads FileName and checks its shape. It returns the content
// unchanged on success, or exactly one *errors.Error:
//
//   - CONTENT_NOT_FOUND if the file cannot be read as UTF-8 text, for any reason
//   - TOO_FEW_LINES or TOO_MANY_LINES if it does not hold ExpectedLines lines
//   - INVALID_LINE for the first line containing ForbiddenSubstring
//
// The read error is not attached to CONTENT_NOT_FOUND.
func Validate() (string, error) {
	data, err := os.ReadFile(FileName)
	if err != nil || !utf8.Valid(data) {
		return "", errors.ContentNotFound()
	}
	contents := string(data)

	lines := splitLines(contents)
	switch count := len(lines); {
	case count < ExpectedLines:
		return "", errors.TooFewLines(count)
	case count > ExpectedLines:
		return "", errors.TooManyLines(count)
	}

	for index, line := range lines {
		if strings.Contains(line, ForbiddenSubstring) {
			return "", errors.InvalidLine(index, line)
		}
	}

	return contents, nil
}

// splitLines splits s on "\n", dropping one trailing "\r" from each line.
// A final terminator does not start an extra empty line and empty input
// has no lines.
func splitLines(s string) []string {
	var lines []string
	for line := range strings.Lines(s) {
		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}
		lines = append(lines, line)
	}
	return lines
}
