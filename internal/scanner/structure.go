package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ignoredEntries are build, cache and dependency directories left out of
// the structure listing.
var ignoredEntries = map[string]bool{
	"node_modules": true,
	".git":         true,
	".next":        true,
	"__pycache__":  true,
	"dist":         true,
	"build":        true,
	".cache":       true,
	".turbo":       true,
	"coverage":     true,
	".venv":        true,
	"venv":         true,
	"vendor":       true,
	"out":          true,
	"test-output":  true,
}

// allowedDotfiles are listed even though they start with a dot.
var allowedDotfiles = map[string]bool{
	".env.example": true,
	".agent":       true,
}

func scanStructure(root string, p *Profile) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return skipFile(root, err)
	}
	p.SourceStructure = structureListing(root, entries)
	return nil
}

// structureListing renders the depth-1 listing of root. Directories carry
// their own visible child count; the agent directory is labelled instead.
func structureListing(root string, entries []os.DirEntry) []string {
	visible := visibleEntries(entries)
	sort.Slice(visible, func(i, j int) bool { return visible[i].Name() < visible[j].Name() })

	out := make([]string, 0, len(visible))
	for _, e := range visible {
		name := e.Name()
		switch {
		case name == ".agent":
			out = append(out, ".agent/ (agent config)")
		case e.IsDir():
			out = append(out, fmt.Sprintf("%s/ (%d items)", name, countChildren(filepath.Join(root, name))))
		default:
			out = append(out, name)
		}
	}
	return out
}

func visibleEntries(entries []os.DirEntry) []os.DirEntry {
	var visible []os.DirEntry
	for _, e := range entries {
		name := e.Name()
		if ignoredEntries[name] {
			continue
		}
		if strings.HasPrefix(name, ".") && !allowedDotfiles[name] {
			continue
		}
		visible = append(visible, e)
	}
	return visible
}

// countChildren counts non-ignored, non-dot entries of dir. An unreadable
// directory counts as empty.
func countChildren(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if ignoredEntries[e.Name()] || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		n++
	}
	return n
}
