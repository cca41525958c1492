package diag

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, _, err := NewLogger(&bytes.Buffer{}, Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewLogger(&buf, Options{Level: "warn", Color: true})
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "run_id=")
}

func TestNewLogger_NoColorOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := NewLogger(&buf, Options{Level: "info", Color: true})
	require.NoError(t, err)
	defer closer.Close()

	logger.Info().Msg("plain")
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestNewLogger_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errdemo.log")

	var buf bytes.Buffer
	logger, closer, err := NewLogger(&buf, Options{Level: "debug", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	logger.Debug().Str("file", "hello.txt").Msg("to both sinks")
	require.NoError(t, closer.Close())

	assert.Contains(t, buf.String(), "to both sinks")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "to both sinks", entry["message"])
	assert.Equal(t, "hello.txt", entry["file"])
	assert.Equal(t, "debug", entry["level"])
	assert.NotEmpty(t, entry["run_id"])
}

func TestNewLogger_RunIDPerLogger(t *testing.T) {
	var a, b bytes.Buffer
	la, _, err := NewLogger(&a, Options{Level: "info"})
	require.NoError(t, err)
	lb, _, err := NewLogger(&b, Options{Level: "info"})
	require.NoError(t, err)

	la.Info().Msg("x")
	lb.Info().Msg("x")

	assert.NotEqual(t, runID(t, a.String()), runID(t, b.String()))
}

func runID(t *testing.T, line string) string {
	t.Helper()
	_, after, ok := strings.Cut(line, "run_id=")
	require.True(t, ok, "no run_id in %q", line)
	return strings.Fields(after)[0]
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
