package registry

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed registry.yaml
var rawRegistry []byte

// CategoryCore is assigned to skills that declare no category.
const CategoryCore = "core"

// ErrUnknownProjectType is returned for a project type not in the registry.
var ErrUnknownProjectType = errors.New("unknown project type")

// Skill is one @-mentionable agent skill.
type Skill struct {
	Name        string    `yaml:"name" json:"name"`
	Role        string    `yaml:"role" json:"role"`
	Description string    `yaml:"description" json:"description"`
	Version     string    `yaml:"version" json:"version"`
	Category    string    `yaml:"category" json:"category"`
	DependsOn   []string  `yaml:"depends_on" json:"depends_on,omitempty"`
	Handoffs    []Handoff `yaml:"handoffs" json:"handoffs,omitempty"`
}

// Handoff suggests the next skill to invoke after this one.
type Handoff struct {
	Label  string `yaml:"label" json:"label"`
	Agent  string `yaml:"agent" json:"agent"`
	Prompt string `yaml:"prompt" json:"prompt"`
}

// Workflow is one /-command that drives one or more skills.
type Workflow struct {
	Command     string   `yaml:"command" json:"command"`
	Description string   `yaml:"description" json:"description"`
	Skills      []string `yaml:"skills" json:"skills"`
}

// ProjectType selects which skill categories a project receives.
type ProjectType struct {
	Name       string   `yaml:"name" json:"name"`
	Label      string   `yaml:"label" json:"label"`
	Categories []string `yaml:"categories" json:"categories"`
	SEO        bool     `yaml:"seo" json:"seo"`
}

// Registry is the read-only set of skills, workflows and project types.
// Accessors return copies of the underlying slices.
type Registry struct {
	skills       []Skill
	workflows    []Workflow
	projectTypes []ProjectType
	skillIndex   map[string]int
}

type document struct {
	ProjectTypes []ProjectType `yaml:"project_types"`
	Skills       []Skill       `yaml:"skills"`
	Workflows    []Workflow    `yaml:"workflows"`
}

// Load decodes and checks a registry document.
func Load(data []byte) (*Registry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}

	r := &Registry{
		skills:       doc.Skills,
		workflows:    doc.Workflows,
		projectTypes: doc.ProjectTypes,
		skillIndex:   make(map[string]int, len(doc.Skills)),
	}
	for i := range r.skills {
		s := &r.skills[i]
		if s.Name == "" {
			return nil, fmt.Errorf("skill %d has no name", i)
		}
		if _, dup := r.skillIndex[s.Name]; dup {
			return nil, fmt.Errorf("duplicate skill %q", s.Name)
		}
		if s.Version == "" {
			s.Version = "1.0.0"
		}
		if s.Category == "" {
			s.Category = CategoryCore
		}
		r.skillIndex[s.Name] = i
	}

	if err := r.Check(); err != nil {
		return nil, err
	}
	return r, nil
}

var loadDefault = sync.OnceValues(func() (*Registry, error) {
	return Load(rawRegistry)
})

// Default returns the embedded registry. It panics if the embedded document
// is invalid, which the package tests rule out.
func Default() *Registry {
	r, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("embedded registry: %v", err))
	}
	return r
}

// Check verifies that every skill referenced by a dependency, handoff or
// workflow exists, that workflow commands are unique, and that skill
// dependencies have no cycles.
func (r *Registry) Check() error {
	var errs []error
	for _, s := range r.skills {
		for _, dep := range s.DependsOn {
			if _, ok := r.skillIndex[dep]; !ok {
				errs = append(errs, fmt.Errorf("skill %s depends on unknown skill %s", s.Name, dep))
			}
		}
		for _, h := range s.Handoffs {
			if _, ok := r.skillIndex[h.Agent]; !ok {
				errs = append(errs, fmt.Errorf("skill %s hands off to unknown skill %s", s.Name, h.Agent))
			}
		}
	}

	commands := make(map[string]bool, len(r.workflows))
	for _, w := range r.workflows {
		if commands[w.Command] {
			errs = append(errs, fmt.Errorf("duplicate workflow %s", w.Command))
		}
		commands[w.Command] = true
		if len(w.Skills) == 0 {
			errs = append(errs, fmt.Errorf("workflow %s lists no skills", w.Command))
		}
		for _, name := range w.Skills {
			if _, ok := r.skillIndex[name]; !ok {
				errs = append(errs, fmt.Errorf("workflow %s uses unknown skill %s", w.Command, name))
			}
		}
	}

	if len(errs) == 0 {
		for _, s := range r.skills {
			if err := r.checkCycle(s.Name, nil); err != nil {
				errs = append(errs, err)
				break
			}
		}
	}
	return errors.Join(errs...)
}

// Skills returns every skill in registry order.
func (r *Registry) Skills() []Skill { return slices.Clone(r.skills) }

// Workflows returns every workflow in registry order.
func (r *Registry) Workflows() []Workflow { return slices.Clone(r.workflows) }

// ProjectTypes returns every project type in registry order.
func (r *Registry) ProjectTypes() []ProjectType { return slices.Clone(r.projectTypes) }

// Skill looks up a skill by name.
func (r *Registry) Skill(name string) (Skill, bool) {
	i, ok := r.skillIndex[name]
	if !ok {
		return Skill{}, false
	}
	return r.skills[i], true
}

// ProjectType looks up a project type by name.
func (r *Registry) ProjectType(name string) (ProjectType, error) {
	for _, pt := range r.projectTypes {
		if pt.Name == name {
			return pt, nil
		}
	}
	return ProjectType{}, fmt.Errorf("%w: %q", ErrUnknownProjectType, name)
}

// SkillsFor returns the skills whose category the project type includes.
func (r *Registry) SkillsFor(projectType string) ([]Skill, error) {
	pt, err := r.ProjectType(projectType)
	if err != nil {
		return nil, err
	}
	var out []Skill
	for _, s := range r.skills {
		if slices.Contains(pt.Categories, s.Category) {
			out = append(out, s)
		}
	}
	return out, nil
}

// WorkflowsFor returns the workflows whose skills are all included for the
// project type.
func (r *Registry) WorkflowsFor(projectType string) ([]Workflow, error) {
	skills, err := r.SkillsFor(projectType)
	if err != nil {
		return nil, err
	}
	included := make(map[string]bool, len(skills))
	for _, s := range skills {
		included[s.Name] = true
	}

	var out []Workflow
	for _, w := range r.workflows {
		ok := true
		for _, name := range w.Skills {
			if !included[name] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, w)
		}
	}
	return out, nil
}
