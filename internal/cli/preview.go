package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wbagent-labs/wbagent/internal/content"
	"github.com/wbagent-labs/wbagent/internal/scanner"
)

const defaultPreviewWidth = 100

var (
	previewTarget string
	previewRaw    bool
)

func init() {
	previewCmd.Flags().StringVarP(&previewTarget, "target", "t", ".", "Project directory")
	previewCmd.Flags().BoolVar(&previewRaw, "raw", false, "Print Markdown without terminal styling")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:       "preview <infrastructure|data-schema|api|business|identity>",
	Short:     "Render one derived knowledge-base document without writing it",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"infrastructure", "data-schema", "api", "business", "identity"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		return runPreview(out, previewTarget, args[0], previewRaw || !isTerminal(out))
	},
}

func runPreview(out io.Writer, target, doc string, raw bool) error {
	render, err := content.Lookup(doc)
	if err != nil {
		return err
	}

	profile, err := scanner.New(target, scanner.WithLogger(log)).Scan()
	if err != nil {
		return fmt.Errorf("scanning %s: %w", target, err)
	}

	md := render(profile)
	if raw {
		_, err := io.WriteString(out, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(terminalWidth(out)),
	)
	if err != nil {
		return fmt.Errorf("creating glamour renderer: %w", err)
	}
	styled, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", doc, err)
	}
	_, err = io.WriteString(out, styled)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultPreviewWidth
}
