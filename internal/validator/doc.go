// Package validator checks a generated agent directory: required
// directories, one SKILL.md per skill and one file per workflow for the
// recorded project type, document templates, scripts, constitution, README,
// frontmatter, the project.json schema, and that every script parses as bash.
package validator
