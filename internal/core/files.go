// Package core holds the error-handling demonstrations. Each one works on a
// fixed file name relative to the working directory.
package core

const (
	// FileName is the file every recoverable and optional demonstration opens.
	FileName = "hello.txt"

	// MissingFileName is opened by the panicking demonstrations.
	MissingFileName = "hello_not_there.txt"
)
