// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	AgentDir    string `yaml:"agent_dir"`
	RulesFile   string `yaml:"rules_file"`
	ASFVersion  string `yaml:"asf_version"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "wb-agent",
			DisplayName: "WB-Agent",
			Description: "Spec-driven agent workflow scaffolding",
			HomeDir:     ".wb-agent",
			EnvPrefix:   "WBAGENT",
			GoModule:    "github.com/wbagent-labs/wbagent",
			GitHubRepo:  "wbagent-labs/wbagent",
			AgentDir:    ".agent",
			RulesFile:   "wb-agent",
			ASFVersion:  "3.3",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "wb-agent").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "WB-Agent").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".wb-agent").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "WBAGENT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// AgentDir returns the name of the generated convention directory (".agent").
func AgentDir() string { load(); return defaults.AgentDir }

// RulesFile returns the base name used for generated IDE rule files.
func RulesFile() string { load(); return defaults.RulesFile }

// ASFVersion returns the version of the agent structure format written to project.json.
func ASFVersion() string { load(); return defaults.ASFVersion }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("log_level") → "WBAGENT_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
