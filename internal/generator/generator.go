package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/wbagent-labs/wbagent/internal/branding"
	"github.com/wbagent-labs/wbagent/internal/content"
	"github.com/wbagent-labs/wbagent/internal/integrations"
	"github.com/wbagent-labs/wbagent/internal/logger"
	"github.com/wbagent-labs/wbagent/internal/manifest"
	"github.com/wbagent-labs/wbagent/internal/registry"
	"github.com/wbagent-labs/wbagent/internal/scaffold"
	"github.com/wbagent-labs/wbagent/internal/scanner"
)

// DefaultProjectType is used when Options.ProjectType is empty.
const DefaultProjectType = "fullstack"

// ErrAgentDirExists is returned when the agent directory already exists and
// Options.Force is not set.
var ErrAgentDirExists = errors.New("agent directory already exists")

// StandardDirs are the subdirectories of the agent directory, in creation order.
var StandardDirs = []string{
	"identity",
	"knowledge_base",
	"skills",
	"workflows",
	"scripts/bash",
	"templates",
	"memory",
	"rules",
}

const seoTemplate = "seo-standards-template.md"

// Options configures a Generator.
type Options struct {
	Target      string // project root
	Name        string // defaults to the base name of Target
	ProjectType string // defaults to DefaultProjectType
	Tools       []integrations.ToolName
	Profile     *scanner.Profile // nil for a project that was not scanned
	Registry    *registry.Registry
	Version     string
	Now         func() time.Time
	Writer      Writer
	Force       bool
	Logger      *slog.Logger
}

// Stats counts generated files per category.
type Stats struct {
	Directories int `json:"directories"`
	Identity    int `json:"identity"`
	Knowledge   int `json:"knowledge"`
	Skills      int `json:"skills"`
	Workflows   int `json:"workflows"`
	Templates   int `json:"templates"`
	Scripts     int `json:"scripts"`
	Rules       int `json:"rules"`
}

// Result holds the outcome of a generation.
type Result struct {
	AgentDir string   `json:"agent_dir"`
	Files    []string `json:"files"` // relative to Target, slash-separated
	Stats    Stats    `json:"stats"`
	Warnings []string `json:"warnings,omitempty"`
}

// Generator writes one agent directory.
type Generator struct {
	opts        Options
	projectType registry.ProjectType
	agentDir    string
	date        string
	log         *slog.Logger
	result      *Result
}

// New validates opts, fills defaults and returns a Generator.
func New(opts Options) (*Generator, error) {
	if opts.Target == "" {
		return nil, errors.New("target directory is required")
	}
	target, err := filepath.Abs(opts.Target)
	if err != nil {
		return nil, fmt.Errorf("resolving target %s: %w", opts.Target, err)
	}
	opts.Target = target

	if opts.Name == "" {
		opts.Name = filepath.Base(target)
	}
	if opts.ProjectType == "" {
		opts.ProjectType = DefaultProjectType
	}
	if opts.Registry == nil {
		opts.Registry = registry.Default()
	}
	if opts.Tools == nil {
		opts.Tools = integrations.AllTools()
	}
	if opts.Profile == nil {
		opts.Profile = scanner.NewProfile()
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Writer == nil {
		opts.Writer = FSWriter{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	pt, err := opts.Registry.ProjectType(opts.ProjectType)
	if err != nil {
		return nil, err
	}
	for _, tool := range opts.Tools {
		if _, err := integrations.Lookup(tool); err != nil {
			return nil, err
		}
	}

	return &Generator{
		opts:        opts,
		projectType: pt,
		agentDir:    filepath.Join(target, branding.AgentDir()),
		log:         opts.Logger,
	}, nil
}

// AgentDir returns the directory the generator writes into.
func (g *Generator) AgentDir() string { return g.agentDir }

// Generate writes the full agent directory.
func (g *Generator) Generate() (*Result, error) {
	if !g.opts.Force {
		if _, err := os.Stat(g.agentDir); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrAgentDirExists, g.agentDir)
		}
	}

	now := g.opts.Now()
	g.date = now.Format(time.DateOnly)
	g.result = &Result{AgentDir: g.agentDir}

	steps := []struct {
		name string
		run  func() error
	}{
		{"directories", g.createDirectories},
		{"identity", g.createIdentity},
		{"knowledge base", g.createKnowledgeBase},
		{"skills", g.createSkills},
		{"workflows", g.createWorkflows},
		{"templates", g.createTemplates},
		{"memory", g.createMemory},
		{"scripts", g.createScripts},
		{"rules", g.createRules},
		{"project config", func() error { return g.createProjectConfig(now) }},
		{"readme", g.createReadme},
	}
	for _, s := range steps {
		g.log.Debug("generating", "step", s.name)
		if err := s.run(); err != nil {
			return nil, fmt.Errorf("generating %s: %w", s.name, err)
		}
	}
	return g.result, nil
}

func (g *Generator) data() *scaffold.Data {
	return scaffold.NewData(g.opts.Name, g.projectType, g.date, g.opts.Version)
}

// agentPath joins slash-separated elements under the agent directory.
func (g *Generator) agentPath(elem ...string) string {
	return filepath.Join(g.agentDir, filepath.FromSlash(path.Join(elem...)))
}

func (g *Generator) write(abs string, body string, perm os.FileMode) error {
	if err := g.opts.Writer.WriteFile(abs, []byte(body), perm); err != nil {
		return err
	}
	rel, err := filepath.Rel(g.opts.Target, abs)
	if err != nil {
		rel = abs
	}
	g.result.Files = append(g.result.Files, filepath.ToSlash(rel))
	return nil
}

func (g *Generator) render(name string, data *scaffold.Data, abs string, perm os.FileMode) error {
	body, err := scaffold.Render(name, data)
	if err != nil {
		return err
	}
	return g.write(abs, body, perm)
}

func (g *Generator) createDirectories() error {
	for _, d := range StandardDirs {
		if err := g.opts.Writer.MkdirAll(g.agentPath(d)); err != nil {
			return err
		}
		g.result.Stats.Directories++
	}
	return nil
}

func (g *Generator) createIdentity() error {
	data := g.data()
	if g.opts.Profile.HasExistingCode {
		data.Context = content.IdentityContext(g.opts.Profile)
	}
	if err := g.render("agent/identity.md", data, g.agentPath("identity", "master-identity.md"), 0644); err != nil {
		return err
	}
	g.result.Stats.Identity++
	return nil
}

// createKnowledgeBase always derives from the profile; an empty profile
// yields the fallback text of each document.
func (g *Generator) createKnowledgeBase() error {
	for _, doc := range content.Documents {
		body := doc.Render(g.opts.Profile)
		if err := g.write(g.agentPath("knowledge_base", doc.FileName), body, 0644); err != nil {
			return err
		}
		g.result.Stats.Knowledge++
	}

	if g.projectType.SEO {
		if err := g.render("docs/"+seoTemplate, g.data(), g.agentPath("knowledge_base", "seo_standards.md"), 0644); err != nil {
			return err
		}
		g.result.Stats.Knowledge++
	}
	return nil
}

func (g *Generator) createSkills() error {
	skills, err := g.opts.Registry.SkillsFor(g.projectType.Name)
	if err != nil {
		return err
	}
	for _, skill := range skills {
		prereqs, err := g.opts.Registry.Prerequisites(skill.Name)
		if err != nil {
			return err
		}
		data := g.data()
		data.Skill = skill
		data.Prerequisites = prereqs
		if err := g.render("agent/skill.md", data, g.agentPath("skills", skill.Name, "SKILL.md"), 0644); err != nil {
			return err
		}
		g.result.Stats.Skills++
	}
	return nil
}

func (g *Generator) createWorkflows() error {
	workflows, err := g.opts.Registry.WorkflowsFor(g.projectType.Name)
	if err != nil {
		return err
	}
	for _, wf := range workflows {
		data := g.data()
		data.Workflow = wf
		if err := g.render("agent/workflow.md", data, g.agentPath("workflows", wf.Command+".md"), 0644); err != nil {
			return err
		}
		g.result.Stats.Workflows++
	}
	return nil
}

func (g *Generator) createTemplates() error {
	names, err := scaffold.Names(scaffold.SetDocs)
	if err != nil {
		return err
	}
	for _, name := range names {
		if name == seoTemplate && !g.projectType.SEO {
			continue
		}
		if err := g.render("docs/"+name, g.data(), g.agentPath("templates", name), 0644); err != nil {
			return err
		}
		g.result.Stats.Templates++
	}
	return nil
}

func (g *Generator) createMemory() error {
	return g.render("docs/constitution-template.md", g.data(), g.agentPath("memory", "constitution.md"), 0644)
}

func (g *Generator) createScripts() error {
	names, err := scaffold.Names(scaffold.SetScripts)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := g.render("scripts/"+name, g.data(), g.agentPath("scripts", "bash", name), 0755); err != nil {
			return err
		}
		g.result.Stats.Scripts++
	}
	return nil
}

func (g *Generator) createRules() error {
	for _, tool := range g.opts.Tools {
		cfg, err := integrations.Lookup(tool)
		if err != nil {
			return err
		}
		abs := filepath.Join(g.opts.Target, filepath.FromSlash(cfg.Path))
		if _, err := os.Stat(abs); err == nil && !isUnder(abs, g.agentDir) {
			g.result.Warnings = append(g.result.Warnings, fmt.Sprintf("replacing existing %s", cfg.Path))
		}

		data := g.data()
		data.Tool = cfg.Label
		data.Frontmatter = cfg.Frontmatter
		if err := g.render("agent/rules.md", data, abs, 0644); err != nil {
			return err
		}
		g.log.Debug("wrote rules", "tool", tool, "path", cfg.Path)
		g.result.Stats.Rules++
	}
	return nil
}

func (g *Generator) createProjectConfig(now time.Time) error {
	cfg := manifest.New(g.opts.Name, g.projectType.Name, g.opts.Version, now)
	cfg.SkillsCount = g.result.Stats.Skills
	cfg.WorkflowsCount = g.result.Stats.Workflows
	cfg.Tools = integrations.Strings(g.opts.Tools)

	data, err := manifest.Marshal(cfg)
	if err != nil {
		return err
	}
	return g.write(g.agentPath(manifest.FileName), string(data), 0644)
}

func (g *Generator) createReadme() error {
	return g.render("agent/readme.md", g.data(), g.agentPath("README.md"), 0644)
}

func isUnder(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	return err == nil && !strings.HasPrefix(rel, "..")
}
