// Package gosrc emits a table as a standalone Go source file: static,
// sorted lookup tables a consumer compiles straight into its binary.
package gosrc

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"github.com/goliatone/go-tzgen/pkg/emit"
	"github.com/goliatone/go-tzgen/pkg/table"
)

const defaultPackageName = "tzdata"

// Emitter writes the generated Go source. The zero value is usable; New
// exists for symmetry with the other emitters.
type Emitter struct{}

// Ensure the implementation satisfies the public interface.
var _ emit.Emitter = (*Emitter)(nil)

// New constructs the Go source emitter.
func New() *Emitter {
	return &Emitter{}
}

func (e *Emitter) Name() string {
	return "gosrc"
}

func (e *Emitter) ContentType() string {
	return "text/x-go; charset=utf-8"
}

// Emit renders the table as a self-contained Go file: the timespan types,
// a sorted name list, the zone map, the link map, and a Lookup helper. The
// output is gofmt-clean and byte-stable for a given table.
func (e *Emitter) Emit(ctx context.Context, t *table.Table, opts emit.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("gosrc: table is nil")
	}

	pkg := opts.PackageName
	if pkg == "" {
		pkg = defaultPackageName
	}

	zoneNames := t.ZoneNames()
	linkNames := t.LinkNames()
	allNames := t.Names()

	var buf bytes.Buffer
	buf.WriteString("// Code generated by tzgen. DO NOT EDIT.\n")
	if opts.Header != "" {
		fmt.Fprintf(&buf, "// %s\n", opts.Header)
	}
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	if opts.CaseInsensitive {
		buf.WriteString("import \"strings\"\n\n")
	}

	buf.WriteString(`// FixedTimespan is one stretch of time with a constant offset.
type FixedTimespan struct {
	UTCOffset int64
	DSTOffset int64
	Name      string
}

// Transition marks the instant a new fixed timespan takes effect.
type Transition struct {
	Start int64
	Span  FixedTimespan
}

// FixedTimespanSet is the complete transition data for one zone.
type FixedTimespanSet struct {
	First FixedTimespan
	Rest  []Transition
}

`)

	buf.WriteString("// ZoneNames lists every zone and link name, sorted.\n")
	buf.WriteString("var ZoneNames = []string{\n")
	for _, name := range allNames {
		fmt.Fprintf(&buf, "\t%s,\n", strconv.Quote(name))
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var zones = map[string]FixedTimespanSet{\n")
	for _, name := range zoneNames {
		set, err := t.Timespans(name)
		if err != nil {
			return nil, fmt.Errorf("gosrc: zone %q: %w", name, err)
		}
		fmt.Fprintf(&buf, "\t%s: {\n", strconv.Quote(name))
		fmt.Fprintf(&buf, "\t\tFirst: %s,\n", timespanLiteral(set.First))
		if len(set.Rest) == 0 {
			buf.WriteString("\t},\n")
			continue
		}
		buf.WriteString("\t\tRest: []Transition{\n")
		for _, tr := range set.Rest {
			fmt.Fprintf(&buf, "\t\t\t{Start: %d, Span: %s},\n", tr.Start, timespanLiteral(tr.Span))
		}
		buf.WriteString("\t\t},\n\t},\n")
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var links = map[string]string{\n")
	for _, alias := range linkNames {
		fmt.Fprintf(&buf, "\t%s: %s,\n", strconv.Quote(alias), strconv.Quote(t.Links[alias]))
	}
	buf.WriteString("}\n\n")

	if opts.CaseInsensitive {
		buf.WriteString("var namesByLower = map[string]string{\n")
		for _, name := range allNames {
			fmt.Fprintf(&buf, "\t%s: %s,\n", strconv.Quote(strings.ToLower(name)), strconv.Quote(name))
		}
		buf.WriteString("}\n\n")
	}

	buf.WriteString("// Lookup returns the transition data for a zone or link name.\n")
	buf.WriteString("func Lookup(name string) (FixedTimespanSet, bool) {\n")
	if opts.CaseInsensitive {
		buf.WriteString("\tif canonical, ok := namesByLower[strings.ToLower(name)]; ok {\n")
		buf.WriteString("\t\tname = canonical\n")
		buf.WriteString("\t}\n")
	}
	buf.WriteString("\tif target, ok := links[name]; ok {\n")
	buf.WriteString("\t\tname = target\n")
	buf.WriteString("\t}\n")
	buf.WriteString("\tset, ok := zones[name]\n")
	buf.WriteString("\treturn set, ok\n")
	buf.WriteString("}\n")

	// The writer does not column-align map entries; gofmt does when adjacent
	// keys differ in length. Format the finished buffer so the output is
	// canonical for any zone set.
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gosrc: format output: %w", err)
	}
	return src, nil
}

func timespanLiteral(span table.FixedTimespan) string {
	return fmt.Sprintf("FixedTimespan{UTCOffset: %d, DSTOffset: %d, Name: %s}",
		span.UTCOffset, span.DSTOffset, strconv.Quote(span.Name))
}
