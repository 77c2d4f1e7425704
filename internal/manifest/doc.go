// Package manifest reads, writes and validates project.json, the small
// config file recorded in a generated agent directory. It carries the
// project identity, the selected project type and tools, and the CLI version
// that produced the tree, and checks files against an embedded JSON Schema.
package manifest
