// Package scaffold renders the static documents written into a project's
// agent directory: identity, skills, workflows, document templates, bash
// scripts, IDE rule files and the README. Bodies live in embedded
// text/template files under scaffolds/, grouped by set (agent, docs, scripts).
package scaffold
