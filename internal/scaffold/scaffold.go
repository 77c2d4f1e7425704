package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"

	"go.yaml.in/yaml/v3"

	"github.com/wbagent-labs/wbagent/internal/branding"
	"github.com/wbagent-labs/wbagent/internal/content"
	"github.com/wbagent-labs/wbagent/internal/registry"
)

// Template sets under scaffolds/.
const (
	SetAgent   = "agent"
	SetDocs    = "docs"
	SetScripts = "scripts"
)

// Data holds all template variables available to scaffold templates.
type Data struct {
	ProjectName string
	TypeLabel   string
	SEO         bool
	Date        string // YYYY-MM-DD
	Version     string // CLI version that generated the files

	Skill         registry.Skill
	Prerequisites []string
	Workflow      registry.Workflow

	Tool        string // IDE label, rules.md only
	Frontmatter string // IDE header, rules.md only
	Context     string // auto-detected project context, identity.md only

	AgentDir    string
	CLIName     string
	DisplayName string
	ASFVersion  string
	PortRange   string
}

// NewData creates a Data with the branded fields populated.
func NewData(projectName string, pt registry.ProjectType, date, version string) *Data {
	label := pt.Label
	if label == "" {
		label = pt.Name
	}
	return &Data{
		ProjectName: projectName,
		TypeLabel:   label,
		SEO:         pt.SEO,
		Date:        date,
		Version:     version,
		AgentDir:    branding.AgentDir(),
		CLIName:     branding.CLIName(),
		DisplayName: branding.DisplayName(),
		ASFVersion:  branding.ASFVersion(),
		PortRange:   content.PortRange,
	}
}

var funcs = template.FuncMap{
	"yaml": yamlScalar,
	"inc":  func(i int) int { return i + 1 },
}

// yamlScalar renders s as a single-line YAML scalar, quoting when needed.
func yamlScalar(s string) (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

// Render executes the named template, e.g. "docs/spec-template.md".
func Render(name string, data *Data) (string, error) {
	tmplPath := path.Join("scaffolds", name+".tmpl")
	tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
	if err != nil {
		return "", fmt.Errorf("template %q not found: %w", name, err)
	}

	tmpl, err := template.New(path.Base(name)).
		Funcs(funcs).
		Option("missingkey=error").
		Parse(string(tmplBytes))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Names lists the templates in a set, without the .tmpl extension, sorted.
func Names(set string) ([]string, error) {
	entries, err := fs.ReadDir(scaffoldFS, path.Join("scaffolds", set))
	if err != nil {
		return nil, fmt.Errorf("template set %q not found: %w", set, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".tmpl"))
	}
	sort.Strings(names)
	return names, nil
}
