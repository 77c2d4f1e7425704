// Package generator writes the agent directory for a project: identity,
// knowledge base, skills, workflows, templates, memory, scripts, IDE rule
// files, project.json and a README. Knowledge-base bodies are derived from a
// scanner.Profile; everything else comes from the scaffold templates filtered
// by project type through the registry.
//
// All writes go through a Writer so a dry run can report the file list
// without touching disk.
package generator
