//go:build unix

package scanner

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_NamedPipesAreNotRead(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"Dockerfile": "FROM node:20"})
	for _, name := range []string{"package.json", ".env.example", "README.md", "docker-compose.yml", "pyproject.toml"} {
		require.NoError(t, syscall.Mkfifo(filepath.Join(root, name), 0o644))
	}

	type scanResult struct {
		p   *Profile
		err error
	}
	done := make(chan scanResult, 1)
	go func() {
		p, err := New(root).Scan()
		done <- scanResult{p, err}
	}()

	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.True(t, res.p.Docker.HasDocker)
		assert.False(t, res.p.Docker.HasCompose)
		assert.Empty(t, res.p.Dependencies)
		assert.Empty(t, res.p.EnvVars)
		assert.Empty(t, res.p.Description)
	case <-time.After(5 * time.Second):
		t.Fatal("Scan blocked on a named pipe")
	}
}

func TestFileExists_RegularOnly(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"plain.txt": "x"})
	require.NoError(t, syscall.Mkfifo(filepath.Join(root, "pipe"), 0o644))

	assert.True(t, fileExists(filepath.Join(root, "plain.txt")))
	assert.False(t, fileExists(filepath.Join(root, "pipe")))
	assert.False(t, fileExists(root))
	assert.False(t, fileExists(filepath.Join(root, "missing")))
}

func TestScan_BrokenLinksAndMisplacedEntries(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app/page.tsx":           "export default function Home() {}",
		"app/api/users/route.ts": "export function GET() {}",
		"app/api/orders":         "a file where a route directory belongs",
		"prisma":                 "a file where the schema directory belongs",
		".env.example/README":    "a directory where the env file belongs",
	})
	missing := filepath.Join(root, "does-not-exist")
	require.NoError(t, os.Symlink(missing, filepath.Join(root, "package.json")))
	require.NoError(t, os.Symlink(missing, filepath.Join(root, "app", "api", "ghost")))
	require.NoError(t, os.Symlink(missing, filepath.Join(root, "app", "broken")))
	require.NoError(t, os.Symlink("README.md", filepath.Join(root, "README.md")))

	s := New(root)
	p, err := s.Scan()
	require.NoError(t, err)

	assert.Empty(t, s.Issues())
	assert.Empty(t, p.Dependencies)
	assert.False(t, p.Database.HasSchemaFile)
	assert.Empty(t, p.EnvVars)
	assert.Empty(t, p.Description)
	assert.Equal(t, []string{"/api/users"}, p.API.Routes)
	assert.Equal(t, []string{"/"}, p.Pages)
	assert.Contains(t, p.SourceStructure, "package.json")
}
