package scanner

import "strings"

var readmeFiles = []string{"README.md", "readme.md", "README"}

// maxReadmeLines bounds the description taken from a README.
const maxReadmeLines = 3

func scanReadme(root string, p *Profile) error {
	if p.Description != "" {
		return nil
	}
	path := firstFile(root, readmeFiles)
	if path == "" {
		return nil
	}
	text, err := readText(path)
	if err != nil {
		return ignoreMissing(err)
	}
	p.Description = ReadmeDescription(text)
	return nil
}

// ReadmeDescription returns the prose following the first top-level
// heading, up to the first second-level heading or three lines. Badge and
// image lines are skipped.
func ReadmeDescription(text string) string {
	var lines []string
	afterTitle := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !afterTitle {
			if strings.HasPrefix(line, "# ") {
				afterTitle = true
			}
			continue
		}
		if strings.HasPrefix(line, "## ") {
			break
		}
		if line == "" || strings.HasPrefix(line, "[") || strings.HasPrefix(line, "!") {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxReadmeLines {
			break
		}
	}
	return strings.Join(lines, " ")
}
