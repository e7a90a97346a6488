package embedfs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/embedfs/internal/testutil"
)

func TestPackFileUnpackFile(t *testing.T) {
	t.Parallel()

	tree := map[string]string{
		"index.html":    "<html></html>",
		"static/app.js": "run()",
		"static/empty/": "",
	}
	src := t.TempDir()
	testutil.WriteTree(t, src, tree)

	out := filepath.Join(t.TempDir(), "build", "fs.bin")
	require.NoError(t, PackFile(context.Background(), src, out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	want, err := Pack(context.Background(), src)
	require.NoError(t, err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	dest := t.TempDir()
	require.NoError(t, UnpackFile(context.Background(), out, dest))
	assert.Equal(t, testutil.WithDirs(tree), testutil.ReadTree(t, dest))
}

func TestPackFileReplacesExisting(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	testutil.WriteTree(t, src, map[string]string{"a": "1"})

	dir := t.TempDir()
	out := filepath.Join(dir, "fs.bin")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o600))

	require.NoError(t, PackFile(context.Background(), src, out))
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.NotEqual(t, []byte("previous"), got)

	// No temp files left behind.
	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "fs.bin", names[0].Name())
}

func TestPackFileMissingSource(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "fs.bin")
	err := PackFile(context.Background(), filepath.Join(t.TempDir(), "missing"), out)
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, statErr := os.Stat(out)
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestUnpackFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	err := UnpackFile(context.Background(), filepath.Join(dir, "missing.bin"), t.TempDir())
	require.ErrorIs(t, err, fs.ErrNotExist)

	bad := filepath.Join(dir, "bad.bin")
	require.NoError(t, os.WriteFile(bad, []byte("not a container"), 0o600))
	err = UnpackFile(context.Background(), bad, t.TempDir())
	require.ErrorIs(t, err, ErrBadMagic)
	assert.Contains(t, err.Error(), bad)
}
