package content

import (
	"fmt"
	"strings"

	"github.com/wbagent-labs/wbagent/internal/scanner"
)

// Document names one derived knowledge-base file.
type Document struct {
	Key      string // short name used by the preview command
	FileName string // file name under knowledge_base/
	Render   func(*scanner.Profile) string
}

// Documents lists the knowledge-base files derived from a profile, in
// generation order.
var Documents = []Document{
	{Key: "infrastructure", FileName: "infrastructure.md", Render: Infrastructure},
	{Key: "data-schema", FileName: "data_schema.md", Render: DataSchema},
	{Key: "api", FileName: "api_standards.md", Render: APIStandards},
	{Key: "business", FileName: "business_logic.md", Render: BusinessLogic},
}

// Lookup returns the renderer for key. "identity" renders the identity
// context as a standalone section.
func Lookup(key string) (func(*scanner.Profile) string, error) {
	if key == "identity" {
		return func(p *scanner.Profile) string {
			return "# Project Context\n\n" + IdentityContext(p) + "\n"
		}, nil
	}
	keys := make([]string, 0, len(Documents)+1)
	for _, d := range Documents {
		if d.Key == key {
			return d.Render, nil
		}
		keys = append(keys, d.Key)
	}
	keys = append(keys, "identity")
	return nil, fmt.Errorf("unknown document %q (valid: %s)", key, strings.Join(keys, ", "))
}
