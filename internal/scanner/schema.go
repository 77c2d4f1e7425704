package scanner

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxModelFields caps the fields kept per model.
const MaxModelFields = 10

// maxSchemaExcerpt bounds RawSchemaExcerpt, in bytes.
const maxSchemaExcerpt = 3000

// schemaFiles are probed in order to support monorepo layouts.
var schemaFiles = []string{
	"prisma/schema.prisma",
	"packages/database/prisma/schema.prisma",
	"apps/api/prisma/schema.prisma",
}

var (
	schemaProviderRe = regexp.MustCompile(`provider\s*=\s*"(postgresql|mysql|sqlite)"`)
	schemaModelRe    = regexp.MustCompile(`model\s+(\w+)\s*\{([^}]+)\}`)
)

var providerTypes = map[string]DatabaseType{
	"postgresql": PostgreSQL,
	"mysql":      MySQL,
	"sqlite":     SQLite,
}

func scanSchema(root string, p *Profile) error {
	path := firstFile(root, schemaFiles)
	if path == "" {
		return nil
	}
	text, err := readText(path)
	if err != nil {
		return ignoreMissing(err)
	}

	p.Database.HasSchemaFile = true
	p.AddTech("Prisma")

	p.Database.Type = DetectDatabaseType(text)
	if p.Database.Type != Unknown {
		p.AddTech(string(p.Database.Type))
	}

	p.Database.Models = ParseModels(text)
	p.Database.RawSchemaExcerpt = truncate(text, maxSchemaExcerpt)
	return nil
}

// DetectDatabaseType returns the engine of the first recognised provider
// declaration, or Unknown.
func DetectDatabaseType(text string) DatabaseType {
	m := schemaProviderRe.FindStringSubmatch(text)
	if m == nil {
		return Unknown
	}
	return providerTypes[m[1]]
}

// ParseModels extracts "model Name { ... }" blocks. A body ends at the
// first closing brace, so nested braces are not supported.
func ParseModels(text string) []Model {
	models := []Model{}
	for _, m := range schemaModelRe.FindAllStringSubmatch(text, -1) {
		models = append(models, Model{Name: m[1], Fields: parseFields(m[2])})
	}
	return models
}

func parseFields(body string) []string {
	fields := []string{}
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "@@") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		fields = append(fields, parts[0]+": "+parts[1])
		if len(fields) == MaxModelFields {
			break
		}
	}
	return fields
}

// truncate returns at most n bytes of s without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
