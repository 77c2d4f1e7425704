package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wbagent-labs/wbagent/internal/branding"
	"github.com/wbagent-labs/wbagent/internal/registry"
	"github.com/wbagent-labs/wbagent/internal/validator"
)

var validateTarget string

// errValidationFailed is returned so the process exits non-zero after the
// checks have been printed.
var errValidationFailed = errors.New("validation failed")

func init() {
	validateCmd.Flags().StringVarP(&validateTarget, "target", "t", ".", "Project directory")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the structure of a generated agent directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), validateTarget)
	},
}

func runValidate(out io.Writer, target string) error {
	target, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("resolving target: %w", err)
	}
	agentDir := filepath.Join(target, branding.AgentDir())
	fmt.Fprintf(out, "Validating %s\n\n", agentDir)

	checks := validator.Validate(agentDir, registry.Default())
	for _, c := range checks {
		if c.Passed {
			printOK(out, "%s", c.Name)
			continue
		}
		printMiss(out, "%s", c.Name)
		for _, d := range c.Details {
			fmt.Fprintf(out, "         %s\n", d)
		}
	}

	fmt.Fprintln(out)
	if !validator.Passed(checks) {
		if len(checks) == 1 {
			fmt.Fprintf(out, "Run '%s init' to create it.\n", branding.CLIName())
		}
		return errValidationFailed
	}
	fmt.Fprintf(out, "All %d checks passed.\n", len(checks))
	return nil
}
