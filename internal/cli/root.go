package cli

import (
	"github.com/spf13/cobra"

	"github.com/wbagent-labs/wbagent/internal/branding"
	"github.com/wbagent-labs/wbagent/internal/config"
	"github.com/wbagent-labs/wbagent/internal/logger"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	logLevel string
	log      = logger.Discard()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a spec-driven agent workflow into a project: skills,
workflows, identity, a knowledge base derived from the existing codebase, and
rule files for each supported AI coding tool.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		level := config.LogLevel()
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		log = logger.New(logger.Config{Level: level, Format: config.LogFormat()}, cmd.ErrOrStderr())
		log.Debug("starting", "command", cmd.CommandPath(), "version", buildVersion)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
