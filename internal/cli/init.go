package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/wbagent-labs/wbagent/internal/branding"
	"github.com/wbagent-labs/wbagent/internal/config"
	"github.com/wbagent-labs/wbagent/internal/generator"
	"github.com/wbagent-labs/wbagent/internal/integrations"
	"github.com/wbagent-labs/wbagent/internal/registry"
	"github.com/wbagent-labs/wbagent/internal/scanner"
)

var (
	initTarget string
	initName   string
	initType   string
	initTools  string
	initForce  bool
	initDryRun bool
	initNoScan bool
)

func init() {
	initCmd.Flags().StringVarP(&initTarget, "target", "t", ".", "Project directory")
	initCmd.Flags().StringVarP(&initName, "name", "n", "", "Project name (default: directory name)")
	initCmd.Flags().StringVar(&initType, "type", "", "Project type (web_public, web_saas, mobile_app, desktop_cli, fullstack)")
	initCmd.Flags().StringVar(&initTools, "tools", "", `Comma-separated AI tools to write rules for, or "all"`)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Regenerate an existing agent directory")
	initCmd.Flags().BoolVar(&initDryRun, "dry-run", false, "List the files that would be written without writing them")
	initCmd.Flags().BoolVar(&initNoScan, "no-scan", false, "Skip scanning the existing codebase")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate the agent directory for a project",
	Long: fmt.Sprintf(`Generate %s/ in the target project.

Unless --no-scan is given, the project is scanned first and the knowledge base
is filled from what the scan finds. An existing %s/ is audited and left alone
unless --force is given.

Project type and tools default to the values in ~/%s/config.yaml.`,
		branding.AgentDir(), branding.AgentDir(), branding.HomeDir()),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectType := initType
		if projectType == "" {
			projectType = config.ProjectType()
		}
		tools := initTools
		if tools == "" {
			tools = config.Tools()
		}
		return runInit(cmd.OutOrStdout(), initOptions{
			Target:      initTarget,
			Name:        initName,
			ProjectType: projectType,
			Tools:       tools,
			Force:       initForce,
			DryRun:      initDryRun,
			NoScan:      initNoScan,
			Version:     buildVersion,
		})
	},
}

type initOptions struct {
	Target      string
	Name        string
	ProjectType string
	Tools       string
	Force       bool
	DryRun      bool
	NoScan      bool
	Version     string
}

func runInit(out io.Writer, opts initOptions) error {
	target, err := filepath.Abs(opts.Target)
	if err != nil {
		return fmt.Errorf("resolving target %s: %w", opts.Target, err)
	}
	if info, err := os.Stat(target); err != nil || !info.IsDir() {
		return fmt.Errorf("target %s is not a directory", target)
	}

	tools, err := integrations.ParseToolList(opts.Tools)
	if err != nil {
		return err
	}

	reg := registry.Default()
	agentDir := filepath.Join(target, branding.AgentDir())
	if _, err := os.Stat(agentDir); err == nil && !opts.Force {
		report, err := generator.Audit(agentDir, opts.Version)
		if err != nil {
			return err
		}
		printAudit(out, report)
		return fmt.Errorf("%w: %s (re-run with --force to regenerate)", generator.ErrAgentDirExists, agentDir)
	}

	name := opts.Name
	if name == "" {
		name = filepath.Base(target)
	}
	fmt.Fprintf(out, "%s %s\n", branding.DisplayName(), opts.Version)
	fmt.Fprintf(out, "  Target:  %s\n", target)
	fmt.Fprintf(out, "  Project: %s\n\n", name)

	var profile *scanner.Profile
	if !opts.NoScan {
		s := scanner.New(target, scanner.WithLogger(log))
		profile, err = s.Scan()
		if err != nil {
			return fmt.Errorf("scanning %s: %w", target, err)
		}
		for _, issue := range s.Issues() {
			printSkip(out, "%v", issue)
		}
		if profile.HasExistingCode {
			printOK(out, "Existing code detected: %s", summarizeProfile(profile))
		} else {
			printOK(out, "No existing code detected; using placeholders")
		}
	}

	gopts := generator.Options{
		Target:      target,
		Name:        name,
		ProjectType: opts.ProjectType,
		Tools:       tools,
		Profile:     profile,
		Registry:    reg,
		Version:     opts.Version,
		Now:         time.Now,
		Force:       opts.Force,
		Logger:      log,
	}
	var dry *generator.DryRunWriter
	if opts.DryRun {
		dry = &generator.DryRunWriter{}
		gopts.Writer = dry
	}

	g, err := generator.New(gopts)
	if err != nil {
		return err
	}
	result, err := g.Generate()
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		printWarn(out, "%s", w)
	}
	if dry != nil {
		fmt.Fprintln(out, "\nDry run, nothing written. Would write:")
		for _, f := range result.Files {
			fmt.Fprintf(out, "  %s\n", f)
		}
		return nil
	}

	printStats(out, result)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Review %s/identity/master-identity.md\n", branding.AgentDir())
	fmt.Fprintln(out, "  2. Run /01-speckit.constitution to record the tech stack and ports")
	fmt.Fprintln(out, "  3. Run /02-speckit.specify to start a feature")
	return nil
}

func summarizeProfile(p *scanner.Profile) string {
	parts := []string{}
	if p.Framework != "" {
		parts = append(parts, p.Framework)
	}
	if len(p.TechStack) > 0 {
		parts = append(parts, fmt.Sprintf("%d technologies", len(p.TechStack)))
	}
	if len(p.Database.Models) > 0 {
		parts = append(parts, fmt.Sprintf("%d models", len(p.Database.Models)))
	}
	if len(p.API.Routes) > 0 {
		parts = append(parts, fmt.Sprintf("%d routes", len(p.API.Routes)))
	}
	if len(parts) == 0 {
		return "dependencies only"
	}
	return strings.Join(parts, ", ")
}

func printStats(out io.Writer, r *generator.Result) {
	fmt.Fprintf(out, "\nGenerated %s (%d files)\n", r.AgentDir, len(r.Files))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Identity\t%d\n", r.Stats.Identity)
	fmt.Fprintf(w, "  Knowledge\t%d\n", r.Stats.Knowledge)
	fmt.Fprintf(w, "  Skills\t%d\n", r.Stats.Skills)
	fmt.Fprintf(w, "  Workflows\t%d\n", r.Stats.Workflows)
	fmt.Fprintf(w, "  Templates\t%d\n", r.Stats.Templates)
	fmt.Fprintf(w, "  Scripts\t%d\n", r.Stats.Scripts)
	fmt.Fprintf(w, "  Rules\t%d\n", r.Stats.Rules)
	w.Flush()
}

func printAudit(out io.Writer, r *generator.AuditReport) {
	fmt.Fprintf(out, "Existing %s found:\n\n", r.AgentDir)
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ENTRY\tSTATUS\tACTION")
	for _, d := range r.Present {
		fmt.Fprintf(w, "%s\tok\tkeep\n", d)
	}
	for _, d := range r.Missing {
		fmt.Fprintf(w, "%s\tmissing\tcreate\n", d)
	}
	for _, e := range r.Extra {
		fmt.Fprintf(w, "%s\tnon-standard\tback up and move\n", e)
	}
	w.Flush()

	switch {
	case r.Legacy:
		fmt.Fprintln(out, "\nLegacy layout: no project.json.")
	case r.Outdated:
		fmt.Fprintf(out, "\nOutdated: %s.\n", r.Note)
	case r.Note != "":
		fmt.Fprintf(out, "\n%s\n", r.Note)
	}
	fmt.Fprintln(out)
}
