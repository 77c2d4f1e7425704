//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir    string // HOME, holds ~/.wb-agent/config.yaml
	ProjectDir string // a mock project directory
}

// setupTestEnv creates isolated temp directories and points HOME at one of
// them so user config never leaks in. The env vars are restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("USERPROFILE", env.HomeDir)
	return env
}

// setupNextProject writes a Next.js + Prisma + Docker project into dir.
func setupNextProject(t *testing.T, dir string) {
	t.Helper()

	writeFile(t, filepath.Join(dir, "package.json"), `{
  "name": "storefront",
  "version": "2.1.0",
  "description": "Online store for handmade goods",
  "scripts": {"dev": "next dev", "build": "next build"},
  "dependencies": {"next": "14.2.0", "react": "18.3.0", "@prisma/client": "5.10.0", "zod": "3.22.0"},
  "devDependencies": {"typescript": "5.4.0", "tailwindcss": "3.4.0"}
}`)
	writeFile(t, filepath.Join(dir, "pnpm-lock.yaml"), "lockfileVersion: '9.0'\n")
	writeFile(t, filepath.Join(dir, "Dockerfile"), "FROM node:20-alpine\n")
	writeFile(t, filepath.Join(dir, "docker-compose.yml"), `services:
  web:
    build: .
    ports:
      - "8900:3000"
  db:
    image: postgres:16
    ports:
      - "8901:5432"
`)
	writeFile(t, filepath.Join(dir, "prisma", "schema.prisma"), `datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

model Product {
  id    String @id @default(cuid())
  // display name
  name  String
  price Int
  @@index([name])
}

model Order {
  id        String   @id
  createdAt DateTime @default(now())
}
`)
	writeFile(t, filepath.Join(dir, ".env.example"), "DATABASE_URL=postgres://user:hunter2@db/shop\nexport STRIPE_KEY=sk_live_x\n# comment\n")
	writeFile(t, filepath.Join(dir, "src", "app", "page.tsx"), "export default function Home() {}\n")
	writeFile(t, filepath.Join(dir, "src", "app", "(shop)", "products", "[id]", "page.tsx"), "export default function P() {}\n")
	writeFile(t, filepath.Join(dir, "src", "app", "api", "products", "route.ts"), "export async function GET() {}\n")
	writeFile(t, filepath.Join(dir, "src", "app", "api", "products", "[id]", "route.ts"), "export async function GET() {}\n")
	writeFile(t, filepath.Join(dir, "README.md"), "# Storefront\n\nIgnored because package.json has a description.\n")
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertFileNotContains fails if the file contains substr.
func assertFileNotContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if strings.Contains(string(data), substr) {
		t.Errorf("file %s unexpectedly contains %q", path, substr)
	}
}
