package zoneinfo

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader fetches zoneinfo documents from different sources (filesystem,
// fs.FS, HTTP). Implementations live under internal/zoneinfo but satisfy this
// contract.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources. Loading stays
// offline-first: HTTP is only attempted when explicitly enabled.
type LoaderOptions struct {
	// FileSystem enables loading from an abstract filesystem; defaults to
	// the operating system if nil.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour (timeouts,
	// proxies). Nil means HTTP sources are disabled unless
	// AllowHTTPFallback is true.
	HTTPClient *http.Client

	// AllowHTTPFallback toggles the default HTTP loader using
	// http.DefaultClient semantics when no client is supplied.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations when HTTP is enabled.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for relative paths.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote documents.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading and assigns an optional timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Parser turns a loaded document into the ordered line sequence the table
// builder consumes. The implementation lives under internal/zoneinfo.
type Parser interface {
	Lines(ctx context.Context, doc Document) ([]Line, error)
}

// ParserOptions configures parsing behaviour.
type ParserOptions struct {
	// SkipInvalidLines drops unparseable lines instead of failing the whole
	// document. Off by default: a malformed database is a build error.
	SkipInvalidLines bool
}

// ParserOption mutates ParserOptions prior to construction.
type ParserOption func(*ParserOptions)

// WithSkipInvalidLines tolerates malformed lines, keeping whatever parses.
func WithSkipInvalidLines() ParserOption {
	return func(opts *ParserOptions) {
		opts.SkipInvalidLines = true
	}
}

// NewParserOptions applies a set of ParserOption values and returns the
// resulting configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
