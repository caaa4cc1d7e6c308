package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicWriteFile(t *testing.T) {
	t.Run("writes file with requested permissions", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.json")

		err := AtomicWriteFile(path, []byte("hello"), 0600)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("replaces existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.json")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

		require.NoError(t, AtomicWriteFile(path, []byte("new"), 0600))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("refuses to write through a symlink", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "target.json")
		link := filepath.Join(dir, "link.json")
		require.NoError(t, os.WriteFile(target, []byte("x"), 0600))
		require.NoError(t, os.Symlink(target, link))

		err := AtomicWriteFile(link, []byte("y"), 0600)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")
	})

	t.Run("creates missing parent directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "nested", "out.json")

		require.NoError(t, AtomicWriteFile(path, []byte("x"), 0600))
		assert.FileExists(t, path)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.json")
		require.NoError(t, AtomicWriteFile(path, []byte("x"), 0600))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
