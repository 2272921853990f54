package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tzgen "github.com/goliatone/go-tzgen"
	"github.com/goliatone/go-tzgen/pkg/emit"
	"github.com/goliatone/go-tzgen/pkg/filter"
	"github.com/goliatone/go-tzgen/pkg/generator"
	"github.com/goliatone/go-tzgen/pkg/prompt"
	"github.com/goliatone/go-tzgen/pkg/zoneinfo"
)

type patternList []string

func (p *patternList) String() string { return strings.Join(*p, ",") }

func (p *patternList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			*p = append(*p, part)
		}
	}
	return nil
}

func main() {
	var includes patternList

	source := flag.String("source", "", "zoneinfo file path or URL")
	emitter := flag.String("emitter", "gosrc", "emitter to use (gosrc, report)")
	output := flag.String("output", "", "output file (stdout if empty)")
	configPath := flag.String("config", "", "YAML build configuration file")
	pkgName := flag.String("package", "", "package name for generated Go source")
	header := flag.String("header", "", "extra header comment for generated output")
	caseInsensitive := flag.Bool("case-insensitive", false, "generate a case-insensitive lookup")
	skipInvalid := flag.Bool("skip-invalid", false, "skip unparseable lines instead of failing")
	interactive := flag.Bool("interactive", false, "collect configuration through prompts")
	flag.Var(&includes, "include", "zone name regex to keep (repeatable, comma separated)")
	flag.Parse()

	ctx := context.Background()

	cfg := generator.Config{
		Source:          *source,
		Include:         includes,
		Emitter:         *emitter,
		Output:          *output,
		PackageName:     *pkgName,
		Header:          *header,
		CaseInsensitive: *caseInsensitive,
	}

	if *configPath != "" {
		loaded, err := generator.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = mergeConfig(loaded, cfg)
	}

	if *interactive {
		wizard, err := prompt.NewWizard(prompt.NewSurveyDriver(), []string{"gosrc", "report"})
		if err != nil {
			log.Fatalf("Failed to start prompt: %v", err)
		}
		cfg, err = wizard.Run(ctx)
		if err != nil {
			log.Fatalf("Prompt aborted: %v", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	src := parseSource(cfg.Source)
	if src == nil {
		log.Fatalf("invalid source: %q", cfg.Source)
	}

	var genOpts []generator.Option
	if len(cfg.Include) > 0 {
		zoneFilter, err := filter.New(cfg.Include...)
		if err != nil {
			log.Fatalf("Invalid include pattern: %v", err)
		}
		genOpts = append(genOpts, generator.WithFilter(zoneFilter))
	}
	if *skipInvalid {
		genOpts = append(genOpts, generator.WithParser(newTolerantParser()))
	}
	if isRemote(cfg.Source) {
		loader := tzgen.NewLoader(zoneinfo.WithHTTPFallback(30 * time.Second))
		genOpts = append(genOpts, generator.WithLoader(loader))
	}

	gen := generator.New(genOpts...)

	req := generator.Request{
		Source:  src,
		Emitter: cfg.Emitter,
		EmitOptions: emit.Options{
			PackageName:     cfg.PackageName,
			Header:          cfg.Header,
			CaseInsensitive: cfg.CaseInsensitive,
		},
	}

	outputBytes, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate tables: %v", err)
	}

	if cfg.Output != "" {
		if err := os.WriteFile(cfg.Output, outputBytes, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Tables written to %s\n", cfg.Output)
	} else {
		fmt.Println(string(outputBytes))
	}
}

func parseSource(raw string) zoneinfo.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if isRemote(path) {
		return zoneinfo.SourceFromURL(path)
	}
	return zoneinfo.SourceFromFile(path)
}

func isRemote(raw string) bool {
	path := strings.TrimSpace(raw)
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

func newTolerantParser() zoneinfo.Parser {
	return tzgen.NewParser(zoneinfo.WithSkipInvalidLines())
}

// mergeConfig overlays explicitly provided flag values on top of a loaded
// configuration file.
func mergeConfig(base, flags generator.Config) generator.Config {
	if flags.Source != "" {
		base.Source = flags.Source
	}
	if len(flags.Include) > 0 {
		base.Include = flags.Include
	}
	if flags.Emitter != "" && flags.Emitter != "gosrc" {
		base.Emitter = flags.Emitter
	}
	if base.Emitter == "" {
		base.Emitter = flags.Emitter
	}
	if flags.Output != "" {
		base.Output = flags.Output
	}
	if flags.PackageName != "" {
		base.PackageName = flags.PackageName
	}
	if flags.Header != "" {
		base.Header = flags.Header
	}
	if flags.CaseInsensitive {
		base.CaseInsensitive = true
	}
	return base
}
