package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tzgen "github.com/goliatone/go-tzgen"
	"github.com/goliatone/go-tzgen/pkg/generator"
	"github.com/goliatone/go-tzgen/pkg/zoneinfo"
)

func main() {
	var (
		sourceName = flag.String("source", "europe", "sample database file to render")
		outputPath = flag.String("output", "docs/sample-report.html", "output path for the rendered report")
	)
	flag.Parse()

	ctx := context.Background()

	loader := tzgen.NewLoader(zoneinfo.WithFileSystem(tzgen.SampleDatabaseFS()))
	html, err := tzgen.Generate(
		ctx,
		zoneinfo.SourceFromFS(*sourceName),
		"report",
		tzgen.EmitOptions{Header: "Rendered from the bundled sample database."},
		generator.WithLoader(loader),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate report: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputPath, html, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Generated sample report (%d bytes) → %s\n", len(html), *outputPath)
}
