package table

import (
	"fmt"

	"github.com/goliatone/go-tzgen/pkg/zoneinfo"
)

// Builder accumulates parsed lines into a Table. Zone continuation lines
// attach to the most recent Zone line, so lines must be added in input order.
type Builder struct {
	table   *Table
	current string
}

// NewBuilder returns a Builder with an empty table.
func NewBuilder() *Builder {
	return &Builder{table: New()}
}

// Add folds one parsed line into the table. Any line that is not a
// continuation closes the currently open zone.
func (b *Builder) Add(line zoneinfo.Line) error {
	switch l := line.(type) {
	case zoneinfo.Space:
		return nil

	case zoneinfo.Zone:
		if _, exists := b.table.Zonesets[l.Name]; exists {
			return fmt.Errorf("table: duplicate zone %q", l.Name)
		}
		if _, exists := b.table.Links[l.Name]; exists {
			return fmt.Errorf("table: zone %q shadows a link", l.Name)
		}
		b.table.Zonesets[l.Name] = []zoneinfo.ZoneInfo{l.Info}
		b.current = l.Name
		return nil

	case zoneinfo.Continuation:
		if b.current == "" {
			return fmt.Errorf("table: continuation line with no open zone")
		}
		b.table.Zonesets[b.current] = append(b.table.Zonesets[b.current], l.Info)
		return nil

	case zoneinfo.Rule:
		b.current = ""
		b.table.Rulesets[l.Name] = append(b.table.Rulesets[l.Name], l)
		return nil

	case zoneinfo.Link:
		b.current = ""
		if _, exists := b.table.Links[l.New]; exists {
			return fmt.Errorf("table: duplicate link %q", l.New)
		}
		if _, exists := b.table.Zonesets[l.New]; exists {
			return fmt.Errorf("table: link %q shadows a zone", l.New)
		}
		b.table.Links[l.New] = l.Existing
		return nil

	default:
		return fmt.Errorf("table: unsupported line type %T", line)
	}
}

// AddAll folds a sequence of lines, stopping at the first failure.
func (b *Builder) AddAll(lines []zoneinfo.Line) error {
	for _, line := range lines {
		if err := b.Add(line); err != nil {
			return err
		}
	}
	return nil
}

// Table finishes the build and returns the assembled table. The builder must
// not be reused afterwards.
func (b *Builder) Table() (*Table, error) {
	for name, eras := range b.table.Zonesets {
		for i, era := range eras {
			last := i == len(eras)-1
			if last && era.Until != nil {
				return nil, fmt.Errorf("table: zone %q: final era has an UNTIL column", name)
			}
			if !last && era.Until == nil {
				return nil, fmt.Errorf("table: zone %q: era %d has no UNTIL column", name, i)
			}
		}
	}
	for alias, target := range b.table.Links {
		if _, ok := b.table.Zonesets[target]; !ok {
			return nil, fmt.Errorf("table: link %q points at unknown zone %q", alias, target)
		}
	}
	return b.table, nil
}

// Build is a convenience that assembles a table straight from parsed lines.
func Build(lines []zoneinfo.Line) (*Table, error) {
	b := NewBuilder()
	if err := b.AddAll(lines); err != nil {
		return nil, err
	}
	return b.Table()
}
