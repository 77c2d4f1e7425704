package integrations

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/wbagent-labs/wbagent/internal/branding"
)

// ToolName identifies a supported AI tool integration.
type ToolName string

const (
	Antigravity ToolName = "antigravity"
	Cursor      ToolName = "cursor"
	Windsurf    ToolName = "windsurf"
	Copilot     ToolName = "copilot"
	JetBrains   ToolName = "jetbrains"
	Kiro        ToolName = "kiro"
	Claude      ToolName = "claude"
	Agents      ToolName = "agents"
)

// ErrUnknownTool is returned when a tool name is not in the table.
var ErrUnknownTool = errors.New("unknown tool")

// ToolConfig describes where a tool reads its rules from.
type ToolConfig struct {
	Label       string
	Path        string // slash-separated, relative to the project root
	Frontmatter string
}

// AllTools returns all supported tool names in generation order.
func AllTools() []ToolName {
	return []ToolName{Antigravity, Cursor, Windsurf, Copilot, JetBrains, Kiro, Claude, Agents}
}

// toolRegistry is filled by init so paths pick up the branded names.
var toolRegistry map[ToolName]ToolConfig

func init() {
	rules := branding.RulesFile()
	toolRegistry = map[ToolName]ToolConfig{
		Antigravity: {
			Label: "Antigravity",
			Path:  path.Join(branding.AgentDir(), "rules", rules+".md"),
		},
		Cursor: {
			Label:       "Cursor",
			Path:        path.Join(".cursor", "rules", rules+".mdc"),
			Frontmatter: fmt.Sprintf("---\ndescription: %s project rules\nglobs:\nalwaysApply: true\n---\n", branding.DisplayName()),
		},
		Windsurf: {
			Label:       "Windsurf",
			Path:        path.Join(".windsurf", "rules", rules+".md"),
			Frontmatter: "---\ntrigger: always_on\n---\n",
		},
		Copilot: {
			Label: "VS Code (Copilot)",
			Path:  path.Join(".github", "copilot-instructions.md"),
		},
		JetBrains: {
			Label: "JetBrains AI Assistant",
			Path:  path.Join(".aiassistant", "rules", rules+".md"),
		},
		Kiro: {
			Label:       "Kiro",
			Path:        path.Join(".kiro", "steering", "tech.md"),
			Frontmatter: "---\ninclusion: always\n---\n",
		},
		Claude: {
			Label: "Claude Code",
			Path:  "CLAUDE.md",
		},
		Agents: {
			Label: "GitHub Copilot Agent",
			Path:  "AGENTS.md",
		},
	}
}

// ParseToolName converts a string to a ToolName, returning false if invalid.
func ParseToolName(s string) (ToolName, bool) {
	name := ToolName(s)
	if _, ok := toolRegistry[name]; !ok {
		return "", false
	}
	return name, true
}

// ParseToolList parses a comma-separated tool list. "all" or an empty string
// selects every tool. Duplicates are dropped, order is preserved.
func ParseToolList(s string) ([]ToolName, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return AllTools(), nil
	}

	var out []ToolName
	seen := make(map[ToolName]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, ok := ParseToolName(part)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTool, part)
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty tool list", ErrUnknownTool)
	}
	return out, nil
}

// Lookup returns the configuration for a tool.
func Lookup(name ToolName) (ToolConfig, error) {
	cfg, ok := toolRegistry[name]
	if !ok {
		return ToolConfig{}, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return cfg, nil
}

// RulePath returns the rule file path for a tool, relative to the project root.
func RulePath(name ToolName) (string, error) {
	cfg, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return cfg.Path, nil
}

// Frontmatter returns the header a tool expects at the top of its rule file,
// or "" when it takes plain Markdown.
func Frontmatter(name ToolName) string {
	return toolRegistry[name].Frontmatter
}

// Strings converts tool names for serialization.
func Strings(tools []ToolName) []string {
	out := make([]string, len(tools))
	for i, t := range tools {
		out[i] = string(t)
	}
	return out
}
