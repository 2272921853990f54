// Package generator coordinates the full pipeline from zoneinfo source to
// emitted artifact: load, parse, build table, filter, emit. It applies
// sensible defaults (gosrc emitter, offline loader) while remaining open to
// dependency injection.
package generator

import (
	"context"
	"errors"
	"fmt"

	internalLoader "github.com/goliatone/go-tzgen/internal/zoneinfo/loader"
	internalParser "github.com/goliatone/go-tzgen/internal/zoneinfo/parser"
	"github.com/goliatone/go-tzgen/pkg/emit"
	"github.com/goliatone/go-tzgen/pkg/emit/gosrc"
	"github.com/goliatone/go-tzgen/pkg/emit/report"
	"github.com/goliatone/go-tzgen/pkg/filter"
	"github.com/goliatone/go-tzgen/pkg/table"
	"github.com/goliatone/go-tzgen/pkg/zoneinfo"
)

const defaultEmitterName = "gosrc"

// Transformer mutates the assembled table between filtering and emission.
// Implementations can rename zones, inject synthetic links, or prune eras.
type Transformer interface {
	Transform(ctx context.Context, t *table.Table) error
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(ctx context.Context, t *table.Table) error

// Transform calls the wrapped function.
func (f TransformerFunc) Transform(ctx context.Context, t *table.Table) error {
	return f(ctx, t)
}

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom document loader.
func WithLoader(loader zoneinfo.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithParser injects a custom line parser.
func WithParser(parser zoneinfo.Parser) Option {
	return func(g *Generator) {
		g.parser = parser
	}
}

// WithFilter restricts emission to zones matching the filter.
func WithFilter(f *filter.ZoneFilter) Option {
	return func(g *Generator) {
		g.filter = f
	}
}

// WithRegistry injects an emitter registry.
func WithRegistry(registry *emit.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultEmitter overrides the emitter used when a request omits an
// explicit Emitter field.
func WithDefaultEmitter(name string) Option {
	return func(g *Generator) {
		g.defaultEmitter = name
	}
}

// WithTransformer registers a Transformer that runs after filtering but
// before emission.
func WithTransformer(t Transformer) Option {
	return func(g *Generator) {
		g.transformer = t
	}
}

// Generator coordinates the loader → parser → table builder → filter →
// emitter sequence.
type Generator struct {
	loader          zoneinfo.Loader
	parser          zoneinfo.Parser
	filter          *filter.ZoneFilter
	registry        *emit.Registry
	defaultEmitter  string
	transformer     Transformer
	initialiseErr   error
	defaultsApplied bool
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultEmitter: defaultEmitterName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

// Request describes the inputs required to emit tables from a zoneinfo
// source.
type Request struct {
	// Source identifies where the zoneinfo document lives. Optional when
	// Document is supplied.
	Source zoneinfo.Source

	// Document allows callers to bypass the loader when they already have
	// the payload.
	Document *zoneinfo.Document

	// Emitter names the emitter to use. If empty, the generator falls back
	// to the configured default.
	Emitter string

	// EmitOptions carries per-request instructions such as the generated
	// package name or report annotations.
	EmitOptions emit.Options
}

// Generate executes the pipeline and returns the emitted bytes (Go source
// for the default gosrc emitter).
func (g *Generator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("generator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.initialiseErr; err != nil {
		return nil, err
	}
	if !g.defaultsApplied {
		g.applyDefaults()
		if err := g.initialiseErr; err != nil {
			return nil, err
		}
	}

	tbl, err := g.Table(ctx, req)
	if err != nil {
		return nil, err
	}

	emitter, err := g.emitterFor(req.Emitter)
	if err != nil {
		return nil, err
	}

	output, err := emitter.Emit(ctx, tbl, req.EmitOptions)
	if err != nil {
		return nil, fmt.Errorf("generator: emit output: %w", err)
	}
	return output, nil
}

// Table runs the pipeline up to (and including) filtering and transforming,
// returning the assembled table without emitting it.
func (g *Generator) Table(ctx context.Context, req Request) (*table.Table, error) {
	doc, err := g.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	lines, err := g.parser.Lines(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("generator: parse lines: %w", err)
	}

	tbl, err := table.Build(lines)
	if err != nil {
		return nil, fmt.Errorf("generator: build table: %w", err)
	}

	if g.filter != nil {
		tbl = g.filter.Apply(tbl)
	}

	if g.transformer != nil {
		if err := g.transformer.Transform(ctx, tbl); err != nil {
			return nil, fmt.Errorf("generator: transform table: %w", err)
		}
	}

	return tbl, nil
}

func (g *Generator) resolveDocument(ctx context.Context, req Request) (zoneinfo.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return zoneinfo.Document{}, errors.New("generator: source or document is required")
	}
	doc, err := g.loader.Load(ctx, req.Source)
	if err != nil {
		return zoneinfo.Document{}, fmt.Errorf("generator: load document: %w", err)
	}
	return doc, nil
}

func (g *Generator) emitterFor(name string) (emit.Emitter, error) {
	if g.registry == nil {
		return nil, errors.New("generator: emitter registry is nil")
	}

	target := name
	if target == "" {
		target = g.defaultEmitter
	}

	emitter, err := g.registry.Get(target)
	if err != nil {
		return nil, fmt.Errorf("generator: emitter %q: %w", target, err)
	}
	return emitter, nil
}

func (g *Generator) applyDefaults() {
	if g.defaultsApplied {
		return
	}

	if g.loader == nil {
		g.loader = internalLoader.New(zoneinfo.NewLoaderOptions())
	}
	if g.parser == nil {
		g.parser = internalParser.New(zoneinfo.NewParserOptions())
	}
	if g.registry == nil {
		g.registry = emit.NewRegistry()
		g.registry.MustRegister(gosrc.New())
		reporter, err := report.New()
		if err != nil {
			g.initialiseErr = fmt.Errorf("generator: default report emitter: %w", err)
		} else {
			g.registry.MustRegister(reporter)
		}
	}
	if g.defaultEmitter == "" {
		g.defaultEmitter = defaultEmitterName
	}

	g.defaultsApplied = true
}
