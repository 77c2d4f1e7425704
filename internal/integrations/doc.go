// Package integrations maps each supported AI coding tool to the rule file it
// reads. The table is fixed: every tool has exactly one path, relative to the
// project root, and an optional frontmatter header the tool expects.
package integrations
