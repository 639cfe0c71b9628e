package event

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStreamFiresSubscriberOnContentChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	fs, err := NewFileStream(path, nil)
	require.NoError(t, err)

	var seen []string
	fs.Subscribe(func(p string) { seen = append(seen, p) })

	fs.Tick()
	require.Empty(t, seen, "no change yet, no callback")

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	fs.Tick()
	require.Len(t, seen, 1)
	require.Equal(t, path, seen[0])

	fs.Tick()
	require.Len(t, seen, 1, "unchanged content fires nothing on the following tick")
}

func TestFileStreamToleratesMissingFile(t *testing.T) {
	fs, err := NewFileStream(filepath.Join(t.TempDir(), "missing.txt"), nil)
	require.NoError(t, err)
	require.NotPanics(t, func() { fs.Tick() })
}
