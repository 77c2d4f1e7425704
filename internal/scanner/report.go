package scanner

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Report writes a human-readable summary of p to w. Headings are styled
// only when w is a terminal.
func Report(w io.Writer, p *Profile) {
	r := lipgloss.NewRenderer(w)
	heading := r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FAFFF"})
	muted := r.NewStyle().Faint(true)

	section := func(title string) {
		fmt.Fprintf(w, "\n%s\n", heading.Render(title))
	}
	line := func(label, value string) {
		if value == "" {
			value = muted.Render("-")
		}
		fmt.Fprintf(w, "  %-16s %s\n", label+":", value)
	}

	if !p.HasExistingCode {
		fmt.Fprintln(w, "No existing code detected (new project).")
	}

	section("Project")
	line("Name", p.Name)
	line("Version", p.Version)
	line("Description", p.Description)

	section("Stack")
	line("Framework", p.Framework)
	line("Language", p.Language)
	line("Package manager", p.PackageManager)
	line("Tech stack", strings.Join(p.TechStack, ", "))
	line("Dependencies", countLabel(len(p.Dependencies)+len(p.DevDependencies), "package"))

	section("Docker")
	line("Dockerfile", yesNo(p.Docker.HasDocker))
	line("Compose", yesNo(p.Docker.HasCompose))
	line("Prod compose", yesNo(p.Docker.HasProdCompose))
	line("Services", strings.Join(p.Docker.Services, ", "))
	line("Ports", strings.Join(p.Docker.Ports, ", "))

	section("Database")
	if p.Database.HasSchemaFile {
		line("Type", string(p.Database.Type))
		names := make([]string, 0, len(p.Database.Models))
		for _, m := range p.Database.Models {
			names = append(names, m.Name)
		}
		line("Models", strings.Join(names, ", "))
	} else {
		line("Schema", "not found")
	}

	section("Surface")
	line("API routes", countLabel(len(p.API.Routes), "route"))
	for _, route := range p.API.Routes {
		fmt.Fprintf(w, "    %s\n", route)
	}
	line("Pages", countLabel(len(p.Pages), "page"))
	for _, page := range p.Pages {
		fmt.Fprintf(w, "    %s\n", page)
	}
	line("Env vars", countLabel(len(p.EnvVars), "variable"))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func countLabel(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
