package scanner

import "slices"

// DatabaseType identifies the storage engine declared by a schema file.
type DatabaseType string

const (
	PostgreSQL DatabaseType = "PostgreSQL"
	MySQL      DatabaseType = "MySQL"
	SQLite     DatabaseType = "SQLite"
	Unknown    DatabaseType = "Unknown"
)

// Profile is the aggregate every sub-scanner writes into. It is created
// empty, filled in a fixed order by Scan, and read-only afterwards.
type Profile struct {
	HasExistingCode bool              `json:"has_existing_code"`
	Name            string            `json:"name,omitempty"`
	Version         string            `json:"version,omitempty"`
	Description     string            `json:"description,omitempty"`
	TechStack       []string          `json:"tech_stack"`
	Framework       string            `json:"framework,omitempty"`
	Language        string            `json:"language,omitempty"`
	PackageManager  string            `json:"package_manager,omitempty"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"dev_dependencies"`
	Scripts         map[string]string `json:"scripts"`
	Docker          DockerProfile     `json:"docker"`
	Database        DatabaseProfile   `json:"database"`
	API             APIProfile        `json:"api"`
	Pages           []string          `json:"pages"`
	EnvVars         []string          `json:"env_vars"`
	SourceStructure []string          `json:"source_structure"`
}

// DockerProfile describes container usage. Parsing is best-effort and may
// under-report services and ports.
type DockerProfile struct {
	HasDocker      bool     `json:"has_docker"`
	HasCompose     bool     `json:"has_compose"`
	HasProdCompose bool     `json:"has_prod_compose"`
	Services       []string `json:"services"`
	Ports          []string `json:"ports"` // "service: host:container"
}

// DatabaseProfile describes the first schema file found.
type DatabaseProfile struct {
	Type             DatabaseType `json:"type,omitempty"`
	HasSchemaFile    bool         `json:"has_schema_file"`
	Models           []Model      `json:"models"`
	RawSchemaExcerpt string       `json:"raw_schema_excerpt,omitempty"`
}

// Model is one data-model block with at most MaxModelFields fields.
type Model struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"` // "name: type"
}

// APIProfile holds discovered API routes, with dynamic segments as ":name".
type APIProfile struct {
	Routes    []string `json:"routes"`
	HasAPIDir bool     `json:"has_api_dir"`
}

// NewProfile returns an empty profile with non-nil collections so that
// JSON output and equality checks are stable.
func NewProfile() *Profile {
	return &Profile{
		TechStack:       []string{},
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
		Scripts:         map[string]string{},
		Docker:          DockerProfile{Services: []string{}, Ports: []string{}},
		Database:        DatabaseProfile{Models: []Model{}},
		API:             APIProfile{Routes: []string{}},
		Pages:           []string{},
		EnvVars:         []string{},
		SourceStructure: []string{},
	}
}

// AddTech appends a tech-stack label unless it is already present.
func (p *Profile) AddTech(label string) {
	p.TechStack = appendUnique(p.TechStack, label)
}

// HasTech reports whether label is in the tech stack.
func (p *Profile) HasTech(label string) bool {
	return slices.Contains(p.TechStack, label)
}

// computeHasExistingCode sets HasExistingCode from the final profile state.
func (p *Profile) computeHasExistingCode() {
	p.HasExistingCode = len(p.TechStack) > 0 || len(p.Dependencies) > 0 || p.Docker.HasDocker
}

// frameworkPrecedence orders the labels considered the project's framework.
var frameworkPrecedence = []string{
	"Next.js",
	"NestJS",
	"Django",
	"FastAPI",
	"Express.js",
	"Vue.js",
	"React",
}

func (p *Profile) detectFramework() {
	for _, fw := range frameworkPrecedence {
		if p.HasTech(fw) {
			p.Framework = fw
			return
		}
	}
}

// appendUnique appends s to list unless present, preserving first-seen order.
func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}
