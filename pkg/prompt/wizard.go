package prompt

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-tzgen/pkg/generator"
)

// Wizard collects a build configuration through an interactive prompt flow.
type Wizard struct {
	driver   Driver
	emitters []string
}

// NewWizard builds a wizard over the given prompt driver. The emitter names
// are offered as choices; the first one is the default.
func NewWizard(driver Driver, emitters []string) (*Wizard, error) {
	if driver == nil {
		return nil, fmt.Errorf("prompt: missing driver")
	}
	if len(emitters) == 0 {
		return nil, fmt.Errorf("prompt: no emitters to offer")
	}
	return &Wizard{
		driver:   driver,
		emitters: append([]string{}, emitters...),
	}, nil
}

// Run walks through the prompt flow and returns a validated configuration.
func (w *Wizard) Run(ctx context.Context) (generator.Config, error) {
	var cfg generator.Config

	source, err := w.driver.Input(ctx, InputConfig{
		Message:   "Zoneinfo source (file path or URL):",
		Help:      "A tzdata text file such as europe, or an http(s) URL serving one.",
		Validator: requireNonEmpty("source"),
	})
	if err != nil {
		return cfg, err
	}
	cfg.Source = strings.TrimSpace(source)

	include, err := w.driver.Input(ctx, InputConfig{
		Message:   "Include patterns (comma separated regexes, empty for all):",
		Help:      "Zones whose name matches any pattern are kept, e.g. ^Europe/,^Etc/UTC$",
		Validator: validPatternList,
	})
	if err != nil {
		return cfg, err
	}
	cfg.Include = splitPatterns(include)

	choice, err := w.driver.Select(ctx, SelectConfig{
		Message:      "Output format:",
		Options:      w.emitters,
		DefaultIndex: 0,
	})
	if err != nil {
		return cfg, err
	}
	if choice >= 0 && choice < len(w.emitters) {
		cfg.Emitter = w.emitters[choice]
	}

	output, err := w.driver.Input(ctx, InputConfig{
		Message: "Output file (empty for stdout):",
	})
	if err != nil {
		return cfg, err
	}
	cfg.Output = strings.TrimSpace(output)

	pkg, err := w.driver.Input(ctx, InputConfig{
		Message: "Package name for generated code:",
		Default: "tzdata",
	})
	if err != nil {
		return cfg, err
	}
	cfg.PackageName = strings.TrimSpace(pkg)

	caseInsensitive, err := w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Generate a case-insensitive lookup?",
		Help:    "Adds a lowercase index so Lookup accepts any casing.",
	})
	if err != nil {
		return cfg, err
	}
	cfg.CaseInsensitive = caseInsensitive

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func requireNonEmpty(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validPatternList(value string) error {
	for _, pattern := range splitPatterns(value) {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("invalid pattern %q: %v", pattern, err)
		}
	}
	return nil
}

func splitPatterns(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
