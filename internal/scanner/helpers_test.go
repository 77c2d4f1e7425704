package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ─── Test Helpers ───────────────────────────────────────────────────────────

// writeTree creates files under root from a map of slash-separated relative
// paths to contents.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// scanTree writes files into a fresh directory and scans it.
func scanTree(t *testing.T, files map[string]string) (*Profile, *Scanner) {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, files)
	s := New(root)
	p, err := s.Scan()
	require.NoError(t, err)
	return p, s
}
