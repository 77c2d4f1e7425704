package scanner

import (
	"regexp"
	"strings"
)

// envFiles are probed in order; only the first one found is read.
var envFiles = []string{
	".env.example",
	".env.local.example",
	".env.development",
}

var envKeyRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

func scanEnv(root string, p *Profile) error {
	path := firstFile(root, envFiles)
	if path == "" {
		return nil
	}
	text, err := readText(path)
	if err != nil {
		return ignoreMissing(err)
	}
	for _, key := range ParseEnvKeys(text) {
		p.EnvVars = appendUnique(p.EnvVars, key)
	}
	return nil
}

// ParseEnvKeys returns the variable names declared in env file content, in
// first-seen order without duplicates. Values are cut off and dropped.
// Lines without "=" and keys that are not identifiers are ignored.
func ParseEnvKeys(text string) []string {
	keys := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, _, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !envKeyRe.MatchString(key) {
			continue
		}
		keys = appendUnique(keys, key)
	}
	return keys
}
