package tzgen

import (
	"context"

	theme "github.com/goliatone/go-theme"
	internalLoader "github.com/goliatone/go-tzgen/internal/zoneinfo/loader"
	internalParser "github.com/goliatone/go-tzgen/internal/zoneinfo/parser"
	"github.com/goliatone/go-tzgen/pkg/emit"
	"github.com/goliatone/go-tzgen/pkg/generator"
	"github.com/goliatone/go-tzgen/pkg/zoneinfo"
)

// Request mirrors the generator request; alias exported via the root package
// for convenience.
type Request = generator.Request

// EmitOptions carries per-request emitter instructions such as the generated
// package name.
type EmitOptions = emit.Options

// Config is the YAML-backed build configuration consumed by the CLI.
type Config = generator.Config

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// Generate loads the zoneinfo source, assembles the transition table, and
// emits it with the named emitter. It is the simplest entry point for callers
// that just want generated output.
func Generate(ctx context.Context, source zoneinfo.Source, emitterName string, emitOpts emit.Options, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		Source:      source,
		Emitter:     emitterName,
		EmitOptions: emitOpts,
	})
}

// GenerateFromDocument emits output from a pre-loaded document, bypassing the
// loader stage while still delegating to the generator.
func GenerateFromDocument(ctx context.Context, doc zoneinfo.Document, emitterName string, emitOpts emit.Options, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	return gen.Generate(ctx, generator.Request{
		Document:    &doc,
		Emitter:     emitterName,
		EmitOptions: emitOpts,
	})
}

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...zoneinfo.LoaderOption) zoneinfo.Loader {
	cfg := zoneinfo.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...zoneinfo.ParserOption) zoneinfo.Parser {
	cfg := zoneinfo.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// WithReportTheme builds emit options carrying a go-theme renderer
// configuration so report output picks up resolved tokens and CSS variables.
func WithReportTheme(opts emit.Options, cfg *theme.RendererConfig) emit.Options {
	opts.Theme = cfg
	return opts
}
