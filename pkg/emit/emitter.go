// Package emit defines the contract for turning an assembled table into an
// output artifact, and a registry for looking emitters up by name.
package emit

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tzgen/pkg/table"
)

// Emitter serializes a table into one output format. Implementations live in
// subpackages (gosrc, report) and register under a stable name.
type Emitter interface {
	// Name identifies the emitter inside a Registry.
	Name() string
	// ContentType describes the output, e.g. "text/x-go" or "text/html".
	ContentType() string
	// Emit renders the table. Implementations must be deterministic: equal
	// tables and options produce byte-identical output.
	Emit(ctx context.Context, t *table.Table, opts Options) ([]byte, error)
}

// Options carries per-emission instructions. Emitters ignore fields that do
// not apply to their format.
type Options struct {
	// PackageName is the package clause of generated Go source. Empty
	// selects the emitter default.
	PackageName string

	// Header is an extra comment line placed under the generated-code
	// marker, typically naming the tzdata release the table came from.
	Header string

	// CaseInsensitive makes the generated lookup accept any casing of a
	// zone name while returning the canonical spelling.
	CaseInsensitive bool

	// Theme styles HTML output; tokens become CSS custom properties.
	Theme *theme.RendererConfig

	// Annotations attaches free-text notes to zone names in report output.
	// Values are sanitized before rendering.
	Annotations map[string]string
}
