package report

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// sanitizeNote strips any markup an annotation may carry. Notes often come
// straight out of tzdata comment text, which is untrusted as HTML.
func sanitizeNote(note string) string {
	if strings.TrimSpace(note) == "" {
		return ""
	}
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(policy.Sanitize(note))
}
