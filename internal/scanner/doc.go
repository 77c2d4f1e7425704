// Package scanner inspects an existing project directory and builds a
// Profile from its manifests, compose files, schema file, env declaration
// file, route and page trees, README and top-level layout.
//
// Scanning is advisory. Missing files leave profile fields at their zero
// values, and malformed files are recorded as an Issue and skipped. Only a
// root that cannot be read makes Scan fail.
package scanner
