// Package filter narrows a table to the zones a build actually needs.
// Consumers embedding generated tables rarely want all ~600 zones; filtering
// before emission keeps the generated artifact small.
package filter

import (
	"fmt"
	"regexp"

	"github.com/goliatone/go-tzgen/pkg/table"
	"github.com/goliatone/go-tzgen/pkg/zoneinfo"
)

// ZoneFilter selects zones by name. A zone survives when it matches at least
// one include pattern; with no patterns every zone survives.
type ZoneFilter struct {
	includes []*regexp.Regexp
}

// New compiles the include patterns into a filter. Patterns use Go regexp
// syntax and match anywhere in the zone name; anchor explicitly for
// whole-name matches.
func New(patterns ...string) (*ZoneFilter, error) {
	f := &ZoneFilter{}
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("filter: compile pattern %q: %w", pattern, err)
		}
		f.includes = append(f.includes, re)
	}
	return f, nil
}

// MustNew panics on invalid patterns. Useful for static configuration.
func MustNew(patterns ...string) *ZoneFilter {
	f, err := New(patterns...)
	if err != nil {
		panic(err)
	}
	return f
}

// Empty reports whether the filter passes everything through.
func (f *ZoneFilter) Empty() bool {
	return f == nil || len(f.includes) == 0
}

// Matches reports whether a zone name survives the filter.
func (f *ZoneFilter) Matches(name string) bool {
	if f.Empty() {
		return true
	}
	for _, re := range f.includes {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Apply returns a new table containing only matching zones. A link survives
// when its alias or its target matches; the target zone is retained either
// way so the link stays resolvable. Rulesets no surviving zone references
// are dropped.
func (f *ZoneFilter) Apply(t *table.Table) *table.Table {
	if f.Empty() {
		return t
	}

	out := table.New()

	for name, eras := range t.Zonesets {
		if f.Matches(name) {
			out.Zonesets[name] = eras
		}
	}
	for alias, target := range t.Links {
		if !f.Matches(alias) && !f.Matches(target) {
			continue
		}
		out.Links[alias] = target
		if eras, ok := t.Zonesets[target]; ok {
			out.Zonesets[target] = eras
		}
	}

	for _, eras := range out.Zonesets {
		for _, era := range eras {
			if era.Saving.Kind != zoneinfo.SavingNamed {
				continue
			}
			if rules, ok := t.Rulesets[era.Saving.Rules]; ok {
				out.Rulesets[era.Saving.Rules] = rules
			}
		}
	}

	return out
}
