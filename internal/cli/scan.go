package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wbagent-labs/wbagent/internal/scanner"
)

var (
	scanTarget  string
	scanJSON    bool
	scanVerbose bool
)

func init() {
	scanCmd.Flags().StringVarP(&scanTarget, "target", "t", ".", "Project directory")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Print the profile as JSON")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "List inputs that were skipped")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a project and print what was detected",
	Long: `Scan the target project the same way init does and print the resulting profile.
Nothing is written. Environment files are read for variable names only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd.OutOrStdout(), scanTarget, scanJSON, scanVerbose)
	},
}

func runScan(out io.Writer, target string, asJSON, verbose bool) error {
	s := scanner.New(target, scanner.WithLogger(log))
	profile, err := s.Scan()
	if err != nil {
		return fmt.Errorf("scanning %s: %w", target, err)
	}

	if asJSON {
		return printJSON(out, profile)
	}

	scanner.Report(out, profile)
	if verbose {
		issues := s.Issues()
		if len(issues) > 0 {
			fmt.Fprintln(out)
		}
		for _, issue := range issues {
			printSkip(out, "%v", issue)
		}
	}
	return nil
}
