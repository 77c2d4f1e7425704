package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

var apiRoots = []string{"app/api", "src/app/api"}

var routeMarkers = map[string]bool{
	"route.ts": true,
	"route.js": true,
}

var controllerSuffixes = []string{".controller.ts", ".controller.js"}

// walkSkipDirs are never descended into by the route and page walks.
var walkSkipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".next":        true,
	"dist":         true,
	"build":        true,
}

func scanRoutes(root string, p *Profile) error {
	if apiRoot := firstDir(root, apiRoots); apiRoot != "" {
		p.API.HasAPIDir = true
		for _, route := range collectRoutes(apiRoot) {
			p.API.Routes = appendUnique(p.API.Routes, route)
		}
	}

	if src := filepath.Join(root, "src"); dirExists(src) {
		for _, route := range collectControllers(src) {
			p.API.Routes = appendUnique(p.API.Routes, route)
		}
	}
	return nil
}

// collectRoutes walks an API root for route marker files. Unreadable
// entries are skipped.
func collectRoutes(apiRoot string) []string {
	var routes []string
	_ = filepath.WalkDir(apiRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != apiRoot && walkSkipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !routeMarkers[d.Name()] {
			return nil
		}
		rel, err := filepath.Rel(apiRoot, filepath.Dir(path))
		if err != nil {
			return nil
		}
		routes = appendUnique(routes, RoutePath(rel))
		return nil
	})
	return routes
}

// RoutePath converts a directory path relative to the API root into a
// route: "users/[id]" becomes "/api/users/:id" and "files/[...path]"
// becomes "/api/files/:path*". The API root itself is "/api".
func RoutePath(rel string) string {
	rel = filepath.ToSlash(rel)
	if rel == "." || rel == "" {
		return "/api"
	}
	segments := strings.Split(rel, "/")
	for i, seg := range segments {
		segments[i] = dynamicSegment(seg)
	}
	return "/api/" + strings.Join(segments, "/")
}

// dynamicSegment rewrites bracketed segments to colon form.
func dynamicSegment(seg string) string {
	if !strings.HasPrefix(seg, "[") || !strings.HasSuffix(seg, "]") {
		return seg
	}
	name := strings.TrimSuffix(strings.TrimPrefix(seg, "["), "]")
	// Optional catch-all: [[...slug]].
	name = strings.TrimSuffix(strings.TrimPrefix(name, "["), "]")
	if rest, ok := strings.CutPrefix(name, "..."); ok {
		return ":" + rest + "*"
	}
	return ":" + name
}

// collectControllers derives one route per *.controller.ts|js file found
// under src, named after the file stem.
func collectControllers(src string) []string {
	var routes []string
	_ = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != src && walkSkipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		for _, suffix := range controllerSuffixes {
			if stem, ok := strings.CutSuffix(d.Name(), suffix); ok && stem != "" {
				routes = appendUnique(routes, "/api/"+stem)
				break
			}
		}
		return nil
	})
	return routes
}
