package content

import (
	"fmt"
	"strings"

	"github.com/wbagent-labs/wbagent/internal/scanner"
)

// Fallback phrases written when the profile has nothing for a section.
const (
	NoTechStack   = "No technologies detected."
	NoDocker      = "Docker: not configured"
	NoServices    = "No services detected."
	NoPorts       = "No port mappings detected."
	NoEnvVars     = "No environment variables detected."
	NoSchema      = "No database schema detected."
	NoRoutes      = "No API routes detected."
	NoDescription = "No project description detected."
	NoStructure   = "No source structure detected."
	NoPages       = "No pages detected."
	NoContext     = "No existing code detected (new project)."
)

// PortRange is the host port range reserved for project containers.
const PortRange = "8900-8999"

// Infrastructure renders infrastructure.md.
func Infrastructure(p *scanner.Profile) string {
	var b strings.Builder
	b.WriteString("# Infrastructure & Docker Standards\n\n")

	b.WriteString("## Tech Stack\n")
	writeList(&b, p.TechStack, NoTechStack)
	if p.PackageManager != "" {
		fmt.Fprintf(&b, "\nPackage manager: `%s`\n", p.PackageManager)
	}

	b.WriteString("\n## Environment Mapping\n")
	switch {
	case p.Docker.HasCompose || p.Docker.HasProdCompose:
		local := "not configured"
		if p.Docker.HasCompose {
			local = "`docker-compose.yml` (hot reload, dev tools)"
		}
		prod := "not configured (create `docker-compose.prod.yml` before the first release)"
		if p.Docker.HasProdCompose {
			prod = "`docker-compose.prod.yml` (standalone, hardened)"
		}
		fmt.Fprintf(&b, "- **Local**: %s\n- **Production**: %s\n", local, prod)
	case p.Docker.HasDocker:
		b.WriteString("- **Local**: `Dockerfile` only, no compose file\n- **Production**: not configured\n")
	default:
		fmt.Fprintf(&b, "- %s\n", NoDocker)
	}
	fmt.Fprintf(&b, "- **Port range**: %s\n", PortRange)

	b.WriteString("\n## Services\n")
	writeList(&b, p.Docker.Services, NoServices)

	b.WriteString("\n## Port Mapping\n")
	writeCodeList(&b, p.Docker.Ports, NoPorts)

	b.WriteString("\n## Environment Variables\n")
	writeCodeList(&b, p.EnvVars, NoEnvVars)

	b.WriteString(`
## Security Protocol
- Declare every sensitive variable in ` + "`.env.example`" + ` without a value.
- Production images use Alpine or slim bases and multi-stage builds.
- Production containers do not run as root.
- Only mapped ports in the ` + PortRange + ` range are exposed.
`)
	return b.String()
}

// DataSchema renders data_schema.md.
func DataSchema(p *scanner.Profile) string {
	var b strings.Builder
	b.WriteString("# Data Schema\n\n")

	db := p.Database
	if !db.HasSchemaFile {
		fmt.Fprintf(&b, "%s\n\nDescribe entities, relations and constraints here once a schema exists.\n", NoSchema)
		return b.String()
	}

	dbType := db.Type
	if dbType == "" {
		dbType = scanner.Unknown
	}
	fmt.Fprintf(&b, "Database: **%s**\n", dbType)

	if len(db.Models) == 0 {
		b.WriteString("\nThe schema file declares no models.\n")
		return b.String()
	}

	b.WriteString("\n## Models\n")
	for _, m := range db.Models {
		fmt.Fprintf(&b, "\n### %s\n", m.Name)
		writeCodeList(&b, m.Fields, "No fields.")
	}
	return b.String()
}

// APIStandards renders api_standards.md.
func APIStandards(p *scanner.Profile) string {
	var b strings.Builder
	b.WriteString("# API Standards\n\n")

	b.WriteString("## Discovered Routes\n")
	writeCodeList(&b, p.API.Routes, NoRoutes)

	b.WriteString(`
## Conventions
- **Base URL**: ` + "`/api/v1/`" + `
- **Auth**: ` + "`Authorization: Bearer <token>`" + `
- **Error format**: ` + "`{ \"error\": { \"code\": \"STRING_CODE\", \"message\": \"...\" } }`" + `
- **Pagination**: ` + "`?page=1&limit=20`" + `, response carries ` + "`meta.total`" + `
- **Response envelope**: ` + "`{ \"data\": ..., \"meta\": ... }`" + `
`)
	return b.String()
}

// BusinessLogic renders business_logic.md.
func BusinessLogic(p *scanner.Profile) string {
	var b strings.Builder
	b.WriteString("# Business Logic\n\n")

	b.WriteString("## Project Description\n")
	if p.Description != "" {
		fmt.Fprintf(&b, "%s\n", p.Description)
	} else {
		fmt.Fprintf(&b, "%s\n", NoDescription)
	}

	b.WriteString("\n## Source Structure\n")
	if len(p.SourceStructure) == 0 {
		fmt.Fprintf(&b, "%s\n", NoStructure)
	} else {
		b.WriteString("```\n")
		for _, entry := range p.SourceStructure {
			fmt.Fprintf(&b, "%s\n", entry)
		}
		b.WriteString("```\n")
	}

	b.WriteString("\n## Pages\n")
	writeCodeList(&b, p.Pages, NoPages)

	b.WriteString(`
## Core Business Rules
<!-- Fill in the rules the code must never break. -->
- [ ] Rule 1:
`)
	return b.String()
}

// IdentityContext renders the one-line project summary appended to the
// master identity document. Unknown parts are left out.
func IdentityContext(p *scanner.Profile) string {
	var parts []string
	if p.Framework != "" {
		parts = append(parts, "Framework: "+p.Framework)
	}
	if p.Language != "" {
		parts = append(parts, "Language: "+p.Language)
	}
	if len(p.TechStack) > 0 {
		parts = append(parts, "Tech: "+strings.Join(p.TechStack, ", "))
	}
	if p.Database.HasSchemaFile && p.Database.Type != "" {
		parts = append(parts, "DB: "+string(p.Database.Type))
	}
	if p.Docker.HasDocker || p.Docker.HasCompose {
		parts = append(parts, fmt.Sprintf("Docker: %d services", len(p.Docker.Services)))
	}
	if len(parts) == 0 {
		return NoContext
	}
	return strings.Join(parts, " | ")
}

func writeList(b *strings.Builder, items []string, fallback string) {
	if len(items) == 0 {
		fmt.Fprintf(b, "%s\n", fallback)
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

func writeCodeList(b *strings.Builder, items []string, fallback string) {
	if len(items) == 0 {
		fmt.Fprintf(b, "%s\n", fallback)
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- `%s`\n", item)
	}
}
