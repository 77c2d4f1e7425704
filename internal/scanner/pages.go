package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

var pageRoots = []string{"app", "src/app"}

var pageMarkers = map[string]bool{
	"page.tsx": true,
	"page.jsx": true,
	"page.ts":  true,
	"page.js":  true,
}

func scanPages(root string, p *Profile) error {
	pageRoot := firstDir(root, pageRoots)
	if pageRoot == "" {
		return nil
	}
	for _, page := range collectPages(pageRoot) {
		p.Pages = appendUnique(p.Pages, page)
	}
	return nil
}

// collectPages walks a pages root, skipping the top-level api directory
// and private (underscore-prefixed) directories.
func collectPages(pageRoot string) []string {
	var pages []string
	_ = filepath.WalkDir(pageRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path == pageRoot {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, "_") || walkSkipDirs[name] {
				return filepath.SkipDir
			}
			if name == "api" && filepath.Dir(path) == pageRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if !pageMarkers[d.Name()] {
			return nil
		}
		rel, err := filepath.Rel(pageRoot, filepath.Dir(path))
		if err != nil {
			return nil
		}
		pages = appendUnique(pages, PagePath(rel))
		return nil
	})
	return pages
}

// PagePath converts a directory path relative to the pages root into a
// URL path. Group parentheses are stripped from segments: "(marketing)/about"
// becomes "/marketing/about". The root itself is "/".
func PagePath(rel string) string {
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == "" {
		return "/"
	}
	rel = strings.NewReplacer("(", "", ")", "").Replace(rel)
	return "/" + rel
}
