package scanner

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// pyproject covers PEP 621 [project] and Poetry [tool.poetry] metadata.
type pyproject struct {
	Project pyprojectMeta `toml:"project"`
	Tool    struct {
		Poetry pyprojectMeta `toml:"poetry"`
	} `toml:"tool"`
}

type pyprojectMeta struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description"`
}

var (
	pyNameRe        = regexp.MustCompile(`name\s*=\s*"([^"]+)"`)
	pyVersionRe     = regexp.MustCompile(`version\s*=\s*"([^"]+)"`)
	pyDescriptionRe = regexp.MustCompile(`description\s*=\s*"([^"]+)"`)
)

// pythonFrameworks are matched case-insensitively anywhere in the file.
var pythonFrameworks = []struct {
	keyword string
	label   string
}{
	{"django", "Django"},
	{"fastapi", "FastAPI"},
	{"flask", "Flask"},
}

func scanPyproject(root string, p *Profile) error {
	path := filepath.Join(root, "pyproject.toml")
	if !fileExists(path) {
		return nil
	}
	text, err := readText(path)
	if err != nil {
		return ignoreMissing(err)
	}

	if p.Language == "" {
		p.Language = "Python"
	}
	p.AddTech("Python")

	meta := decodePyproject(text)
	fillEmpty(&p.Name, meta.Name)
	fillEmpty(&p.Version, meta.Version)
	fillEmpty(&p.Description, meta.Description)

	lower := strings.ToLower(text)
	for _, fw := range pythonFrameworks {
		if strings.Contains(lower, fw.keyword) {
			p.AddTech(fw.label)
		}
	}
	return nil
}

// decodePyproject reads metadata through the TOML decoder and falls back to
// line patterns when the file is not valid TOML.
func decodePyproject(text string) pyprojectMeta {
	var doc pyproject
	if _, err := toml.Decode(text, &doc); err == nil {
		meta := doc.Project
		fillEmpty(&meta.Name, doc.Tool.Poetry.Name)
		fillEmpty(&meta.Version, doc.Tool.Poetry.Version)
		fillEmpty(&meta.Description, doc.Tool.Poetry.Description)
		return meta
	}
	return pyprojectMeta{
		Name:        firstSubmatch(pyNameRe, text),
		Version:     firstSubmatch(pyVersionRe, text),
		Description: firstSubmatch(pyDescriptionRe, text),
	}
}

func firstSubmatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

func fillEmpty(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
