package tzgen

import (
	"io/fs"

	"github.com/goliatone/go-tzgen/pkg/emit/report"
)

// EmbeddedTemplates exposes the built-in report templates so callers can
// reuse or extend them without importing the emitter package directly.
func EmbeddedTemplates() fs.FS {
	fsys := report.TemplatesFS()
	return fsys
}
