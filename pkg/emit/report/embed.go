package report

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded report templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
