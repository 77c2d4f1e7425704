package scanner

import (
	"encoding/json"
	"path/filepath"
)

// packageJSON holds the package.json keys the profile uses.
type packageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// techRule maps dependency names to a tech-stack label.
type techRule struct {
	deps  []string
	label string
}

// techTable is ordered; its order is the insertion order of detected labels.
var techTable = []techRule{
	{[]string{"next"}, "Next.js"},
	{[]string{"react"}, "React"},
	{[]string{"vue"}, "Vue.js"},
	{[]string{"express"}, "Express.js"},
	{[]string{"nestjs", "@nestjs/core"}, "NestJS"},
	{[]string{"prisma", "@prisma/client"}, "Prisma"},
	{[]string{"typescript"}, "TypeScript"},
	{[]string{"tailwindcss", "@tailwindcss/postcss"}, "TailwindCSS"},
	{[]string{"pg", "postgres"}, "PostgreSQL"},
	{[]string{"mysql2"}, "MySQL"},
	{[]string{"mongodb", "mongoose"}, "MongoDB"},
	{[]string{"redis", "ioredis"}, "Redis"},
}

// lockfiles infer the package manager; first match wins, npm otherwise.
var lockfiles = []struct {
	file    string
	manager string
}{
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"bun.lockb", "bun"},
}

func scanPackageJSON(root string, p *Profile) error {
	path := filepath.Join(root, "package.json")
	if !fileExists(path) {
		return nil
	}
	text, err := readText(path)
	if err != nil {
		return ignoreMissing(err)
	}

	var pkg packageJSON
	if err := json.Unmarshal([]byte(text), &pkg); err != nil {
		return skipFile(path, err)
	}

	p.Name = pkg.Name
	p.Version = pkg.Version
	p.Description = pkg.Description
	for k, v := range pkg.Dependencies {
		p.Dependencies[k] = v
	}
	for k, v := range pkg.DevDependencies {
		p.DevDependencies[k] = v
	}
	for k, v := range pkg.Scripts {
		p.Scripts[k] = v
	}

	detectTech(p)

	p.Language = "JavaScript"
	if hasDependency(p, "typescript") || hasDependency(p, "ts-node") {
		p.Language = "TypeScript"
	}

	p.PackageManager = "npm"
	for _, lf := range lockfiles {
		if fileExists(filepath.Join(root, lf.file)) {
			p.PackageManager = lf.manager
			break
		}
	}
	return nil
}

// detectTech adds a label for every tech-table rule matched by a direct or
// development dependency name.
func detectTech(p *Profile) {
	for _, rule := range techTable {
		for _, dep := range rule.deps {
			if hasDependency(p, dep) {
				p.AddTech(rule.label)
				break
			}
		}
	}
}

func hasDependency(p *Profile, name string) bool {
	if _, ok := p.Dependencies[name]; ok {
		return true
	}
	_, ok := p.DevDependencies[name]
	return ok
}
