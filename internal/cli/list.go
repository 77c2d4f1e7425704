package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wbagent-labs/wbagent/internal/registry"
)

var (
	listTypeFilter string
	listJSON       bool
	listDeps       bool
)

var listSkillsCmd = &cobra.Command{
	Use:   "list-skills",
	Short: "List the skills in the registry",
	Long:  `List the @-mentionable skills. With --type, only the skills generated for that project type.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListSkills(cmd.OutOrStdout(), registry.Default(), listTypeFilter, listJSON, listDeps)
	},
}

var listWorkflowsCmd = &cobra.Command{
	Use:   "list-workflows",
	Short: "List the workflows in the registry",
	Long:  `List the /-command workflows. With --type, only the workflows generated for that project type.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListWorkflows(cmd.OutOrStdout(), registry.Default(), listTypeFilter, listJSON)
	},
}

func init() {
	for _, c := range []*cobra.Command{listSkillsCmd, listWorkflowsCmd} {
		c.Flags().StringVar(&listTypeFilter, "type", "", "Filter by project type")
		c.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
		rootCmd.AddCommand(c)
	}
	listSkillsCmd.Flags().BoolVar(&listDeps, "deps", false, "Show the prerequisite skills of each skill")
}

func runListSkills(out io.Writer, reg *registry.Registry, projectType string, asJSON, deps bool) error {
	skills := reg.Skills()
	if projectType != "" {
		var err error
		if skills, err = reg.SkillsFor(projectType); err != nil {
			return err
		}
	}

	if asJSON {
		return printJSON(out, skills)
	}

	fmt.Fprintf(out, "Skills (%d)\n\n", len(skills))
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	if deps {
		fmt.Fprintln(w, "SKILL\tCATEGORY\tPREREQUISITES")
	} else {
		fmt.Fprintln(w, "SKILL\tCATEGORY\tDESCRIPTION")
	}
	for _, s := range skills {
		last := s.Description
		if deps {
			prereqs, err := reg.Prerequisites(s.Name)
			if err != nil {
				return err
			}
			last = "-"
			if len(prereqs) > 0 {
				last = strings.Join(prereqs, " -> ")
			}
		}
		fmt.Fprintf(w, "@%s\t%s\t%s\n", s.Name, s.Category, last)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nMention a skill as @<name> in your AI tool.")
	return nil
}

func runListWorkflows(out io.Writer, reg *registry.Registry, projectType string, asJSON bool) error {
	workflows := reg.Workflows()
	if projectType != "" {
		var err error
		if workflows, err = reg.WorkflowsFor(projectType); err != nil {
			return err
		}
	}

	if asJSON {
		return printJSON(out, workflows)
	}

	fmt.Fprintf(out, "Workflows (%d)\n\n", len(workflows))
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "COMMAND\tSKILLS\tDESCRIPTION")
	for _, wf := range workflows {
		fmt.Fprintf(w, "/%s\t%d\t%s\n", wf.Command, len(wf.Skills), wf.Description)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nRun a workflow as /<command> in your AI tool.")
	return nil
}
