package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackageJSON_Fields(t *testing.T) {
	p, _ := scanTree(t, map[string]string{
		"package.json": `{
  "name": "storefront",
  "version": "2.1.0",
  "description": "Online store",
  "scripts": {"dev": "next dev", "build": "next build"},
  "dependencies": {"next": "14.2.0", "@prisma/client": "5.1.0", "ioredis": "5"},
  "devDependencies": {"typescript": "5.4.0", "tailwindcss": "3.4.0"}
}`,
	})

	assert.Equal(t, "storefront", p.Name)
	assert.Equal(t, "2.1.0", p.Version)
	assert.Equal(t, "Online store", p.Description)
	assert.Equal(t, "next build", p.Scripts["build"])
	assert.Equal(t, "5.4.0", p.DevDependencies["typescript"])
	assert.Equal(t, []string{"Next.js", "Prisma", "TypeScript", "TailwindCSS", "Redis"}, p.TechStack)
	assert.Equal(t, "TypeScript", p.Language)
}

func TestPackageJSON_Language(t *testing.T) {
	cases := []struct {
		name string
		pkg  string
		want string
	}{
		{"plain", `{"dependencies":{"express":"4"}}`, "JavaScript"},
		{"typescript dev", `{"devDependencies":{"typescript":"5"}}`, "TypeScript"},
		{"ts-node", `{"devDependencies":{"ts-node":"10"}}`, "TypeScript"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := scanTree(t, map[string]string{"package.json": tc.pkg})
			assert.Equal(t, tc.want, p.Language)
		})
	}
}

func TestPackageJSON_PackageManager(t *testing.T) {
	cases := []struct {
		name     string
		lockfile string
		want     string
	}{
		{"pnpm", "pnpm-lock.yaml", "pnpm"},
		{"yarn", "yarn.lock", "yarn"},
		{"bun", "bun.lockb", "bun"},
		{"default", "package-lock.json", "npm"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := scanTree(t, map[string]string{
				"package.json": `{"name":"x"}`,
				tc.lockfile:    "",
			})
			assert.Equal(t, tc.want, p.PackageManager)
		})
	}
}

func TestPackageJSON_PnpmWinsOverYarn(t *testing.T) {
	p, _ := scanTree(t, map[string]string{
		"package.json":   `{}`,
		"yarn.lock":      "",
		"pnpm-lock.yaml": "",
	})
	assert.Equal(t, "pnpm", p.PackageManager)
}

func TestPackageJSON_NoManifestNoPackageManager(t *testing.T) {
	p, _ := scanTree(t, map[string]string{"yarn.lock": ""})
	assert.Empty(t, p.PackageManager)
	assert.Empty(t, p.Language)
}

func TestPyproject_TOML(t *testing.T) {
	p, _ := scanTree(t, map[string]string{
		"pyproject.toml": `[project]
name = "billing"
version = "0.3.0"
description = "Billing service"
dependencies = ["fastapi>=0.110", "Django==5.0"]
`,
	})

	assert.Equal(t, "billing", p.Name)
	assert.Equal(t, "0.3.0", p.Version)
	assert.Equal(t, "Billing service", p.Description)
	assert.Equal(t, "Python", p.Language)
	assert.Equal(t, []string{"Python", "Django", "FastAPI"}, p.TechStack)
	assert.Equal(t, "Django", p.Framework)
}

func TestPyproject_Poetry(t *testing.T) {
	p, _ := scanTree(t, map[string]string{
		"pyproject.toml": `[tool.poetry]
name = "worker"
version = "1.0.0"

[tool.poetry.dependencies]
flask = "^3.0"
`,
	})

	assert.Equal(t, "worker", p.Name)
	assert.Equal(t, "1.0.0", p.Version)
	assert.Contains(t, p.TechStack, "Flask")
}

func TestPyproject_ManifestTakesPrecedence(t *testing.T) {
	p, _ := scanTree(t, map[string]string{
		"package.json":   `{"name":"web","description":"Frontend"}`,
		"pyproject.toml": "[project]\nname = \"api\"\ndescription = \"Backend\"\n",
	})

	assert.Equal(t, "web", p.Name)
	assert.Equal(t, "Frontend", p.Description)
	assert.Equal(t, "JavaScript", p.Language)
	assert.Contains(t, p.TechStack, "Python")
}

func TestPyproject_KeywordMatchedOnce(t *testing.T) {
	p, _ := scanTree(t, map[string]string{
		"pyproject.toml": "[project]\nname = \"x\"\n# flask Flask FLASK\ndependencies = [\"flask\"]\n",
	})
	count := 0
	for _, tech := range p.TechStack {
		if tech == "Flask" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
