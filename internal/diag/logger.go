// Package diag builds the process logger.
package diag

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures NewLogger.
type Options struct {
	// Level is a zerolog level name such as "debug" or "warn".
	Level string
	// File enables a rotating log file when non-empty.
	File string
	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int
	// Color allows ANSI colours on the console when it is a terminal.
	Color bool
}

// NewLogger returns a logger writing human-readable lines to console and,
// if opts.File is set, JSON lines to a rotating file. Every entry carries
// the same run_id. The returned closer releases the file sink.
func NewLogger(console io.Writer, opts Options) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.RFC3339,
		NoColor:    !opts.Color || !IsTerminal(console),
	}

	var (
		out    io.Writer = consoleWriter
		closer io.Closer = nopCloser{}
	)
	if opts.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:  opts.File,
			MaxSize:   opts.MaxSizeMB,
			LocalTime: true,
		}
		out = zerolog.MultiLevelWriter(consoleWriter, fileWriter)
		closer = fileWriter
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()

	return logger, closer, nil
}

// IsTerminal reports whether w is a file attached to a TTY.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
