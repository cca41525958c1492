package core

import (
	"fmt"
	"os"
)

// Unrecoverable failures. None of these return normally unless
// MissingFileName happens to exist.

// Crash panics unconditionally.
func Crash() {
	panic("crash and burn")
}

// OpenOrPanic matches on the open result and panics with a formatted
// message on failure.
func OpenOrPanic() *os.File {
	f, err := os.Open(MissingFileName)
	if err != nil {
		panic(fmt.Sprintf("problem opening the file: %v", err))
	}
	return f
}

// MustOpen panics with the open error itself.
func MustOpen() *os.File {
	f, err := os.Open(MissingFileName)
	if err != nil {
		panic(err)
	}
	return f
}

// OpenOrExpect panics with a fixed message, dropping the open error.
func OpenOrExpect() *os.File {
	f, err := os.Open(MissingFileName)
	if err != nil {
		panic("crashed here")
	}
	return f
}
