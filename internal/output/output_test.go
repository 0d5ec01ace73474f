package output

import (
	"os"
	"path/filepath"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCreatesFileAndDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src", "data", "cv.ts")

	result, err := Write(path, []byte("export const cvData = {};\n"))
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, 26, result.Bytes)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export const cvData = {};\n", string(data))
}

func TestWriteSkipsIdenticalContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.ts")
	require.NoError(t, os.WriteFile(path, []byte("same"), 0o644))

	before, err := os.Stat(path)
	require.NoError(t, err)

	result, err := Write(path, []byte("same"))
	require.NoError(t, err)
	assert.False(t, result.Changed)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, os.SameFile(before, after), "unchanged output must not be replaced")
}

func TestWriteReplacesChangedContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.ts")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	result, err := Write(path, []byte("new"))
	require.NoError(t, err)
	assert.True(t, result.Changed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must be cleaned up")
}

func TestWriteErrors(t *testing.T) {
	_, err := Write("", []byte("x"))
	require.Error(t, err)
	assert.True(t, goerrors.IsCategory(err, goerrors.CategoryCommand))

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err = Write(filepath.Join(blocker, "cv.ts"), []byte("x"))
	require.Error(t, err)
	assert.True(t, goerrors.IsCategory(err, goerrors.CategoryCommand))
}
