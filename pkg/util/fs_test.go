package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")

	require.NoError(t, AtomicWrite(path, []byte("1")))
	require.NoError(t, AtomicWrite(path, []byte("2")))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "2", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	err = AtomicWrite(filepath.Join(dir, "not-exist", "result.json"), []byte("1"))
	require.Error(t, err)
}
