package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/scribe/internal/adapters/config"
)

func TestOSFS(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("b"), 0o644))

	fsys := config.NewOSFS()

	isDir, err := fsys.IsDir(dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	isDir, err = fsys.IsDir(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.False(t, isDir)

	_, err = fsys.IsDir(filepath.Join(dir, "missing"))
	require.Error(t, err)

	data, err := fsys.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), data)

	files, err := fsys.ListFiles(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "sub", "b.txt"),
	}, files)
}

func TestMapFSAdapter(t *testing.T) {
	files := fstest.MapFS{
		"a.txt":     &fstest.MapFile{Data: []byte("a")},
		"sub/b.txt": &fstest.MapFile{Data: []byte("b")},
	}
	fsys := config.NewMapFSAdapter("/work", files)

	t.Run("absolute paths are rebased onto the simulated root", func(t *testing.T) {
		data, err := fsys.ReadFile("/work/a.txt")
		require.NoError(t, err)
		assert.Equal(t, []byte("a"), data)

		listed, err := fsys.ListFiles("/work/sub")
		require.NoError(t, err)
		assert.Equal(t, []string{"/work/sub/b.txt"}, listed)
	})

	t.Run("the root itself lists everything", func(t *testing.T) {
		listed, err := fsys.ListFiles("/work")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"/work/a.txt", "/work/sub/b.txt"}, listed)
	})

	t.Run("paths outside the root fail cleanly", func(t *testing.T) {
		_, err := fsys.ReadFile("/elsewhere/a.txt")
		require.Error(t, err)
	})
}
