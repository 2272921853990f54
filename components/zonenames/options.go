package zonenames

import "net/http"

// EmptySearchMode says what an empty query returns.
type EmptySearchMode string

const (
	// EmptySearchNone returns nothing for an empty query.
	EmptySearchNone EmptySearchMode = "none"
	// EmptySearchTop returns the first names up to the limit.
	EmptySearchTop EmptySearchMode = "top"
)

// GuardFunc can reject a request before any search runs.
type GuardFunc func(r *http.Request) error

// Options configures the component: routing, limits, and the backing name
// set.
type Options struct {
	RoutePath       string
	SearchParam     string
	LimitParam      string
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	CaseInsensitive bool
	Guard           GuardFunc

	// Names is the zone-name set served by the handler. Typically the
	// ZoneNames slice of a generated table.
	Names []string
}

// OptionFn mutates Options prior to construction.
type OptionFn func(*Options)

// DefaultOptions returns the component defaults.
func DefaultOptions() Options {
	return Options{
		RoutePath:       "/api/zones",
		SearchParam:     "q",
		LimitParam:      "limit",
		DefaultLimit:    50,
		MaxLimit:        200,
		EmptySearchMode: EmptySearchNone,
	}
}

// NewOptions applies overrides on top of the defaults and clamps the result.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 50
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 200
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchNone
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/zones"
	}
	if opts.SearchParam == "" {
		opts.SearchParam = "q"
	}
	if opts.LimitParam == "" {
		opts.LimitParam = "limit"
	}
	if opts.Names != nil {
		opts.Names = append([]string{}, opts.Names...)
	}
	return opts
}

// WithNames sets the backing zone-name set.
func WithNames(names []string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Names = names
	}
}

// WithCaseInsensitive makes index resolution casing-tolerant.
func WithCaseInsensitive() OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.CaseInsensitive = true
	}
}

// WithRoutePath overrides the handler mount path.
func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

// WithSearchParam overrides the query parameter name.
func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.SearchParam = name
	}
}

// WithLimitParam overrides the limit parameter name.
func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

// WithDefaultLimit overrides the limit applied when requests omit one.
func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

// WithMaxLimit caps the limit requests can ask for.
func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

// WithEmptySearchMode controls what an empty query returns.
func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptySearchMode = mode
	}
}

// WithGuard installs a request guard on the handler.
func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
