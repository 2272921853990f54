// Package table assembles parsed zoneinfo lines into a queryable Table and
// computes per-zone transition data from it. A Table is the in-memory shape
// of one tzdata build: rulesets keyed by name, zone eras keyed by zone name,
// and link aliases.
package table

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-tzgen/pkg/zoneinfo"
)

// Table holds the structured contents of one or more zoneinfo documents.
type Table struct {
	// Rulesets maps a ruleset name to its rules, in input order.
	Rulesets map[string][]zoneinfo.Rule
	// Zonesets maps a zone name to its eras, ordered by their UNTIL column.
	Zonesets map[string][]zoneinfo.ZoneInfo
	// Links maps an alias to the name of the zone it points at.
	Links map[string]string
}

// New returns an empty table.
func New() *Table {
	return &Table{
		Rulesets: make(map[string][]zoneinfo.Rule),
		Zonesets: make(map[string][]zoneinfo.ZoneInfo),
		Links:    make(map[string]string),
	}
}

// ZoneNames returns the sorted names of all zones with their own definitions.
func (t *Table) ZoneNames() []string {
	names := make([]string, 0, len(t.Zonesets))
	for name := range t.Zonesets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LinkNames returns the sorted alias names.
func (t *Table) LinkNames() []string {
	names := make([]string, 0, len(t.Links))
	for name := range t.Links {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Names returns the sorted union of zone and link names.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.Zonesets)+len(t.Links))
	for name := range t.Zonesets {
		names = append(names, name)
	}
	for name := range t.Links {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve follows link aliases to a canonical zone name. It reports whether
// the name (or its target) has a zone definition.
func (t *Table) Resolve(name string) (string, bool) {
	if _, ok := t.Zonesets[name]; ok {
		return name, true
	}
	if target, ok := t.Links[name]; ok {
		if _, ok := t.Zonesets[target]; ok {
			return target, true
		}
	}
	return "", false
}

// zoneset returns the eras for a name, following links.
func (t *Table) zoneset(name string) ([]zoneinfo.ZoneInfo, error) {
	canonical, ok := t.Resolve(name)
	if !ok {
		return nil, fmt.Errorf("table: unknown zone %q", name)
	}
	return t.Zonesets[canonical], nil
}
