package core

import (
	"os"

	"github.com/rs/zerolog"
)

// Run is the demonstration sequence. The recoverable open is performed and
// its result ignored. The optional open decides the outcome: absence panics
// with "no file", presence returns nil.
func Run(log zerolog.Logger) error {
	log.Debug().Str("file", FileName).Msg("recoverable open")
	f, err := Open()
	if err != nil {
		log.Debug().Err(err).Msg("recoverable open failed, ignoring")
	} else {
		closeQuietly(log, f)
	}

	log.Debug().Str("file", FileName).Msg("optional open")
	if first, ok := OpenOptional().Get(); ok {
		closeQuietly(log, first)
	}

	opened, ok := TryOpen().Get()
	if !ok {
		log.Error().Str("file", FileName).Msg("optional open came back empty")
		panic("no file")
	}
	closeQuietly(log, opened)

	log.Debug().Msg("demonstration finished")
	return nil
}

func closeQuietly(log zerolog.Logger, f *os.File) {
	if err := f.Close(); err != nil {
		log.Warn().Err(err).Str("file", f.Name()).Msg("failed to close file")
	}
}
