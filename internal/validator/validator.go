package validator

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
	"mvdan.cc/sh/v3/syntax"

	"github.com/wbagent-labs/wbagent/internal/manifest"
	"github.com/wbagent-labs/wbagent/internal/registry"
)

// MinSkillSize is the smallest SKILL.md, in bytes, that passes the content check.
const MinSkillSize = 100

var (
	coreDirs = []string{"skills", "workflows", "templates", "scripts", "memory"}

	docTemplates = []string{
		"spec-template.md",
		"plan-template.md",
		"tasks-template.md",
		"constitution-template.md",
	}

	scripts = []string{
		"create-new-feature.sh",
		"setup-plan.sh",
		"check-prerequisites.sh",
		"update-agent-context.sh",
	}
)

// Check is the outcome of one validation rule.
type Check struct {
	Name    string   `json:"name"`
	Passed  bool     `json:"passed"`
	Details []string `json:"details,omitempty"`
}

func newCheck(name string, details []string) Check {
	return Check{Name: name, Passed: len(details) == 0, Details: details}
}

// Passed reports whether every check passed.
func Passed(checks []Check) bool {
	for _, c := range checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

type validator struct {
	agentDir  string
	skills    []registry.Skill
	workflows []registry.Workflow
}

// Validate runs every check against agentDir. When agentDir does not exist
// only the first check is returned.
func Validate(agentDir string, reg *registry.Registry) []Check {
	if info, err := os.Stat(agentDir); err != nil || !info.IsDir() {
		return []Check{newCheck("Agent directory exists", []string{"not found: " + agentDir})}
	}

	v := &validator{agentDir: agentDir}
	v.selectEntries(reg)

	return []Check{
		newCheck("Agent directory exists", nil),
		v.checkCoreDirs(),
		v.checkSkills(),
		v.checkWorkflows(),
		v.checkFiles(fmt.Sprintf("Templates (%d templates)", len(docTemplates)), "templates", docTemplates),
		v.checkFiles(fmt.Sprintf("Scripts (%d scripts)", len(scripts)), filepath.Join("scripts", "bash"), scripts),
		v.checkFiles("Constitution (memory/constitution.md)", "memory", []string{"constitution.md"}),
		v.checkFiles("README.md", "", []string{"README.md"}),
		v.checkSkillContent(),
		v.checkWorkflowFrontmatter(),
		v.checkProjectConfig(),
		v.checkScriptSyntax(),
	}
}

// selectEntries picks the skills and workflows expected for the project type
// recorded in project.json, or all of them when it cannot be read.
func (v *validator) selectEntries(reg *registry.Registry) {
	v.skills = reg.Skills()
	v.workflows = reg.Workflows()

	cfg, err := manifest.Load(v.agentDir)
	if err != nil {
		return
	}
	skills, err := reg.SkillsFor(cfg.ProjectType)
	if err != nil {
		return
	}
	workflows, err := reg.WorkflowsFor(cfg.ProjectType)
	if err != nil {
		return
	}
	v.skills, v.workflows = skills, workflows
}

func (v *validator) path(elem ...string) string {
	return filepath.Join(append([]string{v.agentDir}, elem...)...)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (v *validator) checkCoreDirs() Check {
	var details []string
	for _, d := range coreDirs {
		if !isDir(v.path(d)) {
			details = append(details, "missing: "+d)
		}
	}
	return newCheck(fmt.Sprintf("Core directories (%d dirs)", len(coreDirs)), details)
}

func (v *validator) checkSkills() Check {
	var missing, incomplete []string
	for _, s := range v.skills {
		switch {
		case !isDir(v.path("skills", s.Name)):
			missing = append(missing, "missing directory: "+s.Name)
		case !isFile(v.path("skills", s.Name, "SKILL.md")):
			incomplete = append(incomplete, "missing SKILL.md: "+s.Name)
		}
	}
	return newCheck(fmt.Sprintf("Skills (%d skills)", len(v.skills)), append(missing, incomplete...))
}

func (v *validator) checkWorkflows() Check {
	var details []string
	for _, w := range v.workflows {
		if !isFile(v.path("workflows", w.Command+".md")) {
			details = append(details, "missing: "+w.Command+".md")
		}
	}
	return newCheck(fmt.Sprintf("Workflows (%d workflows)", len(v.workflows)), details)
}

func (v *validator) checkFiles(name, dir string, files []string) Check {
	var details []string
	for _, f := range files {
		if !isFile(v.path(dir, f)) {
			details = append(details, "missing: "+f)
		}
	}
	return newCheck(name, details)
}

func (v *validator) checkSkillContent() Check {
	var details []string
	for _, s := range v.skills {
		path := v.path("skills", s.Name, "SKILL.md")
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if len(data) < MinSkillSize {
			details = append(details, fmt.Sprintf("too short: %s (%d bytes)", s.Name, len(data)))
			continue
		}
		fm, err := frontmatter(data)
		if err != nil {
			details = append(details, fmt.Sprintf("bad frontmatter: %s: %v", s.Name, err))
			continue
		}
		if name, _ := fm["name"].(string); name == "" {
			details = append(details, "frontmatter has no name: "+s.Name)
		}
	}
	return newCheck(fmt.Sprintf("SKILL.md content (>=%d bytes, named frontmatter)", MinSkillSize), details)
}

func (v *validator) checkWorkflowFrontmatter() Check {
	var details []string
	entries, err := os.ReadDir(v.path("workflows"))
	if err == nil {
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
				continue
			}
			data, err := os.ReadFile(v.path("workflows", e.Name()))
			if err != nil || !bytes.HasPrefix(data, []byte("---")) {
				details = append(details, "missing frontmatter: "+e.Name())
			}
		}
	}
	sort.Strings(details)
	return newCheck("Workflow frontmatter (YAML header)", details)
}

func (v *validator) checkProjectConfig() Check {
	const name = "Project config (project.json schema)"
	result, err := manifest.ValidateFile(v.agentDir)
	if errors.Is(err, manifest.ErrNotFound) {
		return newCheck(name, []string{"missing: " + manifest.FileName})
	}
	if err != nil {
		return newCheck(name, []string{err.Error()})
	}
	var details []string
	for _, issue := range result.Issues {
		details = append(details, issue.String())
	}
	return newCheck(name, details)
}

func (v *validator) checkScriptSyntax() Check {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	var details []string
	for _, s := range scripts {
		data, err := os.ReadFile(v.path("scripts", "bash", s))
		if err != nil {
			continue
		}
		if _, err := parser.Parse(bytes.NewReader(data), s); err != nil {
			details = append(details, err.Error())
		}
	}
	return newCheck("Script syntax (bash)", details)
}

// frontmatter decodes the YAML block between the leading "---" lines.
func frontmatter(data []byte) (map[string]any, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return nil, errors.New("no frontmatter")
	}
	body, _, ok := strings.Cut(text[len("---\n"):], "\n---")
	if !ok {
		return nil, errors.New("unterminated frontmatter")
	}
	var fm map[string]any
	if err := yaml.Unmarshal([]byte(body), &fm); err != nil {
		return nil, err
	}
	return fm, nil
}
