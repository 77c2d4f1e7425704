package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/wbagent-labs/wbagent/internal/manifest"
)

// AuditReport describes an existing agent directory before it is replaced.
type AuditReport struct {
	AgentDir string                  `json:"agent_dir"`
	Present  []string                `json:"present"`
	Missing  []string                `json:"missing"`
	Extra    []string                `json:"extra"` // top-level entries not produced by the generator
	Config   *manifest.ProjectConfig `json:"config,omitempty"`
	Legacy   bool                    `json:"legacy"` // no project.json
	Outdated bool                    `json:"outdated"`
	Note     string                  `json:"note,omitempty"`
}

// Audit inspects agentDir and compares the version recorded in its
// project.json against currentVersion. It fails only when agentDir cannot be
// read.
func Audit(agentDir, currentVersion string) (*AuditReport, error) {
	entries, err := os.ReadDir(agentDir)
	if err != nil {
		return nil, fmt.Errorf("auditing %s: %w", agentDir, err)
	}

	r := &AuditReport{AgentDir: agentDir}
	for _, d := range StandardDirs {
		if info, err := os.Stat(filepath.Join(agentDir, filepath.FromSlash(d))); err == nil && info.IsDir() {
			r.Present = append(r.Present, d)
		} else {
			r.Missing = append(r.Missing, d)
		}
	}

	known := map[string]bool{manifest.FileName: true, "README.md": true}
	for _, d := range StandardDirs {
		known[strings.SplitN(d, "/", 2)[0]] = true
	}
	for _, e := range entries {
		if !known[e.Name()] {
			r.Extra = append(r.Extra, e.Name())
		}
	}
	slices.Sort(r.Extra)

	cfg, err := manifest.Load(agentDir)
	switch {
	case errors.Is(err, manifest.ErrNotFound):
		r.Legacy = true
		r.Note = "no project.json; generated by an older release"
		return r, nil
	case err != nil:
		r.Note = err.Error()
		return r, nil
	}
	r.Config = cfg

	outdated, err := cfg.IsOutdated(currentVersion)
	if err != nil {
		r.Note = fmt.Sprintf("cannot compare versions: %v", err)
		return r, nil
	}
	r.Outdated = outdated
	if outdated {
		r.Note = fmt.Sprintf("generated by %s, current is %s", cfg.WBAgentVersion, currentVersion)
	}
	return r, nil
}
