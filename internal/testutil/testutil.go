// Package testutil provides helpers shared by the embedfs tests.
package testutil

import (
	"encoding/binary"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteTree creates the files and directories described by tree under dir.
// Keys are slash paths; a key ending in "/" creates an (empty) directory,
// any other key creates a file with the value as content.
func WriteTree(t testing.TB, dir string, tree map[string]string) {
	t.Helper()
	for name, content := range tree {
		p := filepath.Join(dir, filepath.FromSlash(strings.TrimSuffix(name, "/")))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(p, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

// ReadTree returns the tree under dir in the form accepted by WriteTree.
// Every directory below dir is listed with a trailing slash, so empty and
// non-empty directories can be compared alike.
func ReadTree(t testing.TB, dir string) map[string]string {
	t.Helper()
	tree := make(map[string]string)
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			tree[rel+"/"] = ""
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		tree[rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return tree
}

// WithDirs returns a copy of tree with an entry added for every parent
// directory of every key, matching what ReadTree reports.
func WithDirs(tree map[string]string) map[string]string {
	out := make(map[string]string, len(tree))
	for name, content := range tree {
		out[name] = content
		parts := strings.Split(strings.TrimSuffix(name, "/"), "/")
		for i := 1; i < len(parts); i++ {
			out[strings.Join(parts[:i], "/")+"/"] = ""
		}
	}
	return out
}

// Words encodes little-endian uint32 values, for building containers by hand.
func Words(ws ...uint32) []byte {
	buf := make([]byte, 0, 4*len(ws))
	for _, w := range ws {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return buf
}

// Concat joins byte slices.
func Concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// Symlink creates link pointing at target, skipping the test where the
// platform or file system does not allow symbolic links.
func Symlink(t testing.TB, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}
