package core

import (
	"os"

	"github.com/Fuabioo/errdemo/internal/option"
)

// OpenOptional opens FileName and reports only whether it worked. The
// caller has to handle both branches and cannot learn why it failed.
func OpenOptional() option.Option[*os.File] {
	f, err := os.Open(FileName)
	if err != nil {
		return option.None[*os.File]()
	}
	return option.Some(f)
}

// TryOpen is OpenOptional written through option.FromResult.
func TryOpen() option.Option[*os.File] {
	return option.FromResult(os.Open(FileName))
}
