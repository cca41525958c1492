package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// inTempDir switches the working directory to a fresh temp dir for the
// rest of the test.
func inTempDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

// writeHello writes content to FileName in the current working directory.
func writeHello(t *testing.T, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(FileName, []byte(content), 0644))
}

// makeUnreadable replaces FileName with a directory so reads fail with
// something other than "not exist".
func makeUnreadable(t *testing.T, dir string) {
	t.Helper()

	require.NoError(t, os.Mkdir(filepath.Join(dir, FileName), 0755))
}
