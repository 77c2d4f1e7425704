package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen)
	missColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
)

func printOK(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s %s\n", okColor.Sprint("[ OK ]"), fmt.Sprintf(format, args...))
}

func printMiss(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s %s\n", missColor.Sprint("[MISS]"), fmt.Sprintf(format, args...))
}

func printWarn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s %s\n", warnColor.Sprint("[WARN]"), fmt.Sprintf(format, args...))
}

func printSkip(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s %s\n", warnColor.Sprint("[SKIP]"), fmt.Sprintf(format, args...))
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
