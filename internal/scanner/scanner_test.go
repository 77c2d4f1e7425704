package scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_EmptyDirectory(t *testing.T) {
	p, s := scanTree(t, nil)

	assert.False(t, p.HasExistingCode)
	assert.Empty(t, p.TechStack)
	assert.Empty(t, p.Framework)
	assert.Empty(t, p.Docker.Services)
	assert.False(t, p.Database.HasSchemaFile)
	assert.Empty(t, p.API.Routes)
	assert.Empty(t, p.Pages)
	assert.Empty(t, p.EnvVars)
	assert.Empty(t, s.Issues())
}

func TestScan_NextPrismaManifest(t *testing.T) {
	p, _ := scanTree(t, map[string]string{
		"package.json": `{"name":"acme","dependencies":{"next":"14.0.0","prisma":"5.0.0"}}`,
	})

	assert.Contains(t, p.TechStack, "Next.js")
	assert.Contains(t, p.TechStack, "Prisma")
	assert.Equal(t, "Next.js", p.Framework)
	assert.Equal(t, "acme", p.Name)
	assert.True(t, p.HasExistingCode)
}

func TestScan_MalformedInputsAreSkipped(t *testing.T) {
	p, s := scanTree(t, map[string]string{
		"package.json":         `{"name": "broken",`,
		"pyproject.toml":       "[project\nname = \"svc\"\n",
		"docker-compose.yml":   "\x00\x01 not yaml at all",
		"prisma/schema.prisma": "model {{{",
		".env.example":         "=\n==\nNO_EQUALS\n",
		"README.md":            "no heading here",
	})

	assert.Empty(t, p.Dependencies)
	assert.True(t, p.Docker.HasCompose, "compose presence is recorded even when nothing parses")
	assert.Empty(t, p.Docker.Services)
	assert.True(t, p.Database.HasSchemaFile)
	assert.Empty(t, p.Database.Models)
	assert.Empty(t, p.EnvVars)
	assert.Equal(t, "svc", p.Name, "pyproject falls back to line patterns")

	require.Len(t, s.Issues(), 1)
	assert.Equal(t, "manifest", s.Issues()[0].Scanner)
	assert.Contains(t, s.Issues()[0].Path, "package.json")
}

func TestScan_InvalidEncodingIsSkipped(t *testing.T) {
	p, s := scanTree(t, map[string]string{
		"README.md": "# Title\n\xff\xfe broken bytes\n",
	})

	assert.Empty(t, p.Description)
	require.Len(t, s.Issues(), 1)
	assert.Equal(t, "readme", s.Issues()[0].Scanner)
	assert.ErrorIs(t, s.Issues()[0], errEncoding)
}

func TestScan_UnreadableSubdirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"app/page.tsx":            "export default function Home() {}",
		"app/secret/page.tsx":     "export default function Secret() {}",
		"app/api/users/route.ts":  "export function GET() {}",
		"src/users.controller.ts": "",
	})
	locked := filepath.Join(root, "app", "secret")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	p, err := New(root).Scan()
	require.NoError(t, err)
	assert.Equal(t, []string{"/"}, p.Pages)
	assert.Equal(t, []string{"/api/users"}, p.API.Routes)
}

func TestScan_RootErrors(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing")).Scan()
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err = New(file).Scan()
	assert.Error(t, err)
}

func TestScan_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"package.json":            `{"name":"shop","dependencies":{"react":"18","express":"4"},"devDependencies":{"typescript":"5"}}`,
		"Dockerfile":              "FROM node:20",
		"docker-compose.yml":      "services:\n  api:\n    ports:\n      - \"8901:3000\"\n",
		"prisma/schema.prisma":    "datasource db {\n  provider = \"postgresql\"\n}\nmodel Order {\n  id Int @id\n}\n",
		".env.example":            "DATABASE_URL=postgres://x\n",
		"app/page.tsx":            "",
		"app/api/orders/route.ts": "",
		"README.md":               "# Shop\nSells things.\n",
	})

	first, err := New(root).Scan()
	require.NoError(t, err)
	second, err := New(root).Scan()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScan_HasExistingCode(t *testing.T) {
	cases := []struct {
		name  string
		files map[string]string
		want  bool
	}{
		{"nothing", map[string]string{"notes.txt": "hi"}, false},
		{"readme only", map[string]string{"README.md": "# X\nabout\n"}, false},
		{"dockerfile", map[string]string{"Dockerfile": "FROM scratch"}, true},
		{"untagged dependency", map[string]string{"package.json": `{"dependencies":{"left-pad":"1"}}`}, true},
		{"pyproject", map[string]string{"pyproject.toml": "[project]\nname = \"x\"\n"}, true},
		{"compose without dockerfile", map[string]string{"compose.yaml": "services:\n  web:\n"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := scanTree(t, tc.files)
			assert.Equal(t, tc.want, p.HasExistingCode)
			want := len(p.TechStack) > 0 || len(p.Dependencies) > 0 || p.Docker.HasDocker
			assert.Equal(t, want, p.HasExistingCode)
		})
	}
}

func TestScan_FrameworkPrecedence(t *testing.T) {
	cases := []struct {
		deps string
		want string
	}{
		{`{"react":"18","next":"14"}`, "Next.js"},
		{`{"express":"4","@nestjs/core":"10"}`, "NestJS"},
		{`{"express":"4","react":"18"}`, "Express.js"},
		{`{"vue":"3"}`, "Vue.js"},
		{`{"lodash":"4"}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			p, _ := scanTree(t, map[string]string{
				"package.json": `{"dependencies":` + tc.deps + `}`,
			})
			assert.Equal(t, tc.want, p.Framework)
		})
	}
}

func TestScan_SetsHaveNoDuplicates(t *testing.T) {
	p, _ := scanTree(t, map[string]string{
		"package.json":        `{"dependencies":{"pg":"8","postgres":"3"}}`,
		"docker-compose.yml":  "services:\n  web:\n    ports:\n      - 80:80\n      - 80:80\n  web:\n",
		".env.example":        "A=1\nA=2\nB=3\n",
		"app/page.tsx":        "",
		"app/(shop)/page.tsx": "",
	})

	for name, set := range map[string][]string{
		"tech":     p.TechStack,
		"services": p.Docker.Services,
		"ports":    p.Docker.Ports,
		"env":      p.EnvVars,
		"pages":    p.Pages,
	} {
		seen := map[string]bool{}
		for _, v := range set {
			assert.False(t, seen[v], "%s contains duplicate %q", name, v)
			seen[v] = true
		}
	}
	assert.Equal(t, []string{"web: 80:80"}, p.Docker.Ports)
	assert.Equal(t, []string{"A", "B"}, p.EnvVars)
}
