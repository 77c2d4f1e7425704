// Package registry holds the skills, workflows and project types that
// generation draws from. The tables are embedded as YAML, decoded once into
// a read-only Registry, and passed by pointer to the generator, validator
// and CLI.
package registry
