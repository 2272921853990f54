package zonenames

import (
	"sort"
	"strings"
)

// Index resolves zone names to their canonical generated spelling. With
// case-insensitivity enabled, any casing of a known name resolves; the
// canonical spelling is always what comes back.
type Index struct {
	names           []string
	byLower         map[string]string
	caseInsensitive bool
}

// NewIndex builds an index over the given names. Duplicates are dropped and
// the name set is sorted.
func NewIndex(names []string, fns ...OptionFn) *Index {
	opts := NewOptions(fns...)

	seen := make(map[string]struct{}, len(names))
	idx := &Index{caseInsensitive: opts.CaseInsensitive}
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		idx.names = append(idx.names, name)
	}
	sort.Strings(idx.names)

	if idx.caseInsensitive {
		idx.byLower = make(map[string]string, len(idx.names))
		for _, name := range idx.names {
			idx.byLower[strings.ToLower(name)] = name
		}
	}
	return idx
}

// Resolve returns the canonical spelling of name and whether it is known.
func (i *Index) Resolve(name string) (string, bool) {
	if i == nil {
		return "", false
	}
	if i.caseInsensitive {
		canonical, ok := i.byLower[strings.ToLower(name)]
		return canonical, ok
	}
	pos := sort.SearchStrings(i.names, name)
	if pos < len(i.names) && i.names[pos] == name {
		return name, true
	}
	return "", false
}

// Names returns a copy of the sorted name set.
func (i *Index) Names() []string {
	if i == nil {
		return nil
	}
	return append([]string{}, i.names...)
}

// Len returns the number of indexed names.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.names)
}
