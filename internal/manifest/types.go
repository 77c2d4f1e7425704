package manifest

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/wbagent-labs/wbagent/internal/branding"
)

// FileName is the config file name inside the agent directory.
const FileName = "project.json"

// ErrNotFound is returned by Load when project.json does not exist.
var ErrNotFound = errors.New("project.json not found")

// ProjectConfig is the content of project.json.
type ProjectConfig struct {
	ProjectID      string   `json:"project_id,omitempty"`
	ProjectName    string   `json:"project_name"`
	ProjectType    string   `json:"project_type"`
	ASFVersion     string   `json:"asf_version"`
	WBAgentVersion string   `json:"wb_agent_version"`
	CreatedAt      string   `json:"created_at"`
	SkillsCount    int      `json:"skills_count"`
	WorkflowsCount int      `json:"workflows_count"`
	Tools          []string `json:"tools,omitempty"`
}

// New creates a config with a fresh project ID and the current ASF version.
func New(name, projectType, version string, now time.Time) *ProjectConfig {
	return &ProjectConfig{
		ProjectID:      uuid.NewString(),
		ProjectName:    name,
		ProjectType:    projectType,
		ASFVersion:     branding.ASFVersion(),
		WBAgentVersion: version,
		CreatedAt:      now.Format(time.RFC3339),
	}
}
