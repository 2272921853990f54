package zonenames

import (
	"sort"
	"strings"
)

// Search returns the names matching the query, prefix matches first, capped
// at limit. Matching is always case-insensitive; only Resolve distinguishes
// exact from tolerant lookup.
func Search(names []string, query string, limit int, opts Options) []string {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(names) <= limit {
				return append([]string{}, names...)
			}
			return append([]string{}, names[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedName, 0, 32)
	for _, name := range names {
		lower := strings.ToLower(name)
		if !strings.Contains(lower, q) {
			continue
		}
		matches = append(matches, matchedName{
			name:     name,
			isPrefix: strings.HasPrefix(lower, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].name < matches[j].name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.name)
	}
	return out
}

type matchedName struct {
	name     string
	isPrefix bool
}
