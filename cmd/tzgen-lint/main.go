package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	tzgen "github.com/goliatone/go-tzgen"
	"github.com/goliatone/go-tzgen/pkg/table"
	"github.com/goliatone/go-tzgen/pkg/zoneinfo"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint zoneinfo files for malformed lines and dangling references.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{
			"sample/europe",
			"sample/australasia",
		}
	}

	ctx := context.Background()
	parser := tzgen.NewParser(zoneinfo.WithSkipInvalidLines())

	var violations []violation
	for _, path := range paths {
		linted, err := lintFile(ctx, parser, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func lintFile(ctx context.Context, parser zoneinfo.Parser, path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	doc, err := zoneinfo.NewDocument(zoneinfo.SourceFromFile(path), raw)
	if err != nil {
		return nil, fmt.Errorf("construct document: %w", err)
	}

	var result []violation

	strict := tzgen.NewParser()
	if _, err := strict.Lines(ctx, doc); err != nil {
		result = append(result, violation{
			file:     path,
			location: "parse",
			message:  err.Error(),
		})
	}

	lines, err := parser.Lines(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("parse lines: %w", err)
	}

	tbl, err := table.Build(lines)
	if err != nil {
		result = append(result, violation{
			file:     path,
			location: "table",
			message:  err.Error(),
		})
		return result, nil
	}

	result = append(result, lintReferences(path, tbl)...)
	return result, nil
}

// lintReferences reports rulesets that are referenced but never defined, and
// rulesets that are defined but never used by any zone era.
func lintReferences(file string, tbl *table.Table) []violation {
	used := map[string]bool{}
	var result []violation

	names := tbl.ZoneNames()
	for _, name := range names {
		for _, era := range tbl.Zonesets[name] {
			if era.Saving.Kind != zoneinfo.SavingNamed {
				continue
			}
			ruleset := era.Saving.Rules
			used[ruleset] = true
			if _, ok := tbl.Rulesets[ruleset]; !ok {
				result = append(result, violation{
					file:     file,
					location: "zone " + name,
					message:  fmt.Sprintf("references undefined ruleset %q", ruleset),
				})
			}
		}
	}

	rulesets := make([]string, 0, len(tbl.Rulesets))
	for name := range tbl.Rulesets {
		rulesets = append(rulesets, name)
	}
	sort.Strings(rulesets)
	for _, name := range rulesets {
		if !used[name] {
			result = append(result, violation{
				file:     file,
				location: "ruleset " + name,
				message:  "defined but never used",
			})
		}
	}

	return result
}
