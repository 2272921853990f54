// Package report emits a table as a human-readable HTML page: zone counts,
// per-zone offset summaries, and optional annotations. It is a diagnostic
// surface for reviewing what a build will embed, not a consumer artifact.
package report

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-tzgen/pkg/emit"
	"github.com/goliatone/go-tzgen/pkg/table"
)

const templateName = "templates/report.html.tpl"

// Option configures the report emitter before construction.
type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// Emitter renders the HTML report through a pongo2 template set.
type Emitter struct {
	templates *pongo2.TemplateSet
}

// Ensure the implementation satisfies the public interface.
var _ emit.Emitter = (*Emitter)(nil)

// New constructs the report emitter applying any provided options.
func New(options ...Option) (*Emitter, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	set := pongo2.NewSet("tzgen-report", pongo2.NewFSLoader(cfg.templateFS))
	if _, err := set.FromFile(templateName); err != nil {
		return nil, fmt.Errorf("report: load template: %w", err)
	}

	return &Emitter{templates: set}, nil
}

func (e *Emitter) Name() string {
	return "report"
}

func (e *Emitter) ContentType() string {
	return "text/html; charset=utf-8"
}

// Emit renders the report page. Annotations pass through the sanitizer so
// notes sourced from tzdata comments cannot inject markup.
func (e *Emitter) Emit(ctx context.Context, t *table.Table, opts emit.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("report: table is nil")
	}

	zones := make([]map[string]any, 0, len(t.Zonesets))
	for _, name := range t.ZoneNames() {
		set, err := t.Timespans(name)
		if err != nil {
			return nil, fmt.Errorf("report: zone %q: %w", name, err)
		}

		current := set.First
		if len(set.Rest) > 0 {
			current = set.Rest[len(set.Rest)-1].Span
		}

		zones = append(zones, map[string]any{
			"name":        name,
			"abbrev":      current.Name,
			"offset":      offsetString(current.TotalOffset()),
			"transitions": len(set.Rest),
			"note":        sanitizeNote(opts.Annotations[name]),
		})
	}

	links := make([]map[string]any, 0, len(t.Links))
	for _, alias := range t.LinkNames() {
		links = append(links, map[string]any{
			"alias":  alias,
			"target": t.Links[alias],
		})
	}

	tmpl, err := e.templates.FromFile(templateName)
	if err != nil {
		return nil, fmt.Errorf("report: load template: %w", err)
	}

	out, err := tmpl.ExecuteBytes(pongo2.Context{
		"title":        "Time zone table report",
		"header":       opts.Header,
		"zones":        zones,
		"links":        links,
		"rulesetCount": len(t.Rulesets),
		"theme":        buildThemeContext(opts.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("report: execute template: %w", err)
	}
	return out, nil
}

// offsetString renders a total offset as ±hh:mm[:ss].
func offsetString(offset int64) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	seconds := offset % 60
	if seconds != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, hours, minutes, seconds)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}
