package gosrc

import (
	"bytes"
	"context"
	"go/format"
	"regexp"
	"strings"
	"testing"

	"github.com/goliatone/go-tzgen/pkg/emit"
	"github.com/goliatone/go-tzgen/pkg/table"
	"github.com/goliatone/go-tzgen/pkg/testsupport"
)

func fixtureTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.Build(testsupport.MustParseLines(t, testsupport.DatabaseFixture))
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return tbl
}

func TestEmit_DefaultPackage(t *testing.T) {
	out, err := New().Emit(context.Background(), fixtureTable(t), emit.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src := string(out)

	if !strings.HasPrefix(src, "// Code generated by tzgen. DO NOT EDIT.\n") {
		t.Fatalf("missing generated header:\n%s", src[:120])
	}
	if !strings.Contains(src, "package tzdata\n") {
		t.Fatal("expected default package name")
	}
	for _, want := range []string{
		`"Etc/UTC",`,
		`"Etc/Universal",`,
		`"Europe/Jersey",`,
		`"Europe/London",`,
		`"Etc/Universal": "Etc/UTC",`,
		"func Lookup(name string) (FixedTimespanSet, bool) {",
		`Name: "LMT"`,
		`Name: "BST"`,
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}

	// No case-insensitive machinery unless asked for.
	if strings.Contains(src, "namesByLower") || strings.Contains(src, `import "strings"`) {
		t.Fatal("unexpected case-insensitive lookup in default output")
	}
}

func TestEmit_PackageAndHeader(t *testing.T) {
	out, err := New().Emit(context.Background(), fixtureTable(t), emit.Options{
		PackageName: "tztables",
		Header:      "Source: tzdata 2024a.",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src := string(out)

	if !strings.Contains(src, "package tztables\n") {
		t.Fatal("expected custom package name")
	}
	if !strings.Contains(src, "// Source: tzdata 2024a.\n") {
		t.Fatal("expected header comment")
	}
}

func TestEmit_CaseInsensitiveLookup(t *testing.T) {
	out, err := New().Emit(context.Background(), fixtureTable(t), emit.Options{
		CaseInsensitive: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src := string(out)

	for _, want := range []string{
		`import "strings"`,
		"var namesByLower = map[string]string{",
		"if canonical, ok := namesByLower[strings.ToLower(name)]; ok {",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}

	// Entry padding depends on the longest key in the map, so match the
	// lowered entries with the alignment left open.
	for _, want := range []*regexp.Regexp{
		regexp.MustCompile(`"etc/utc":\s+"Etc/UTC",`),
		regexp.MustCompile(`"europe/london":\s+"Europe/London",`),
	} {
		if !want.MatchString(src) {
			t.Fatalf("expected output to match %q", want)
		}
	}
}

func TestEmit_GofmtClean(t *testing.T) {
	// Keys of unequal length force gofmt's column alignment in both the link
	// and lowered-name maps.
	for name, opts := range map[string]emit.Options{
		"default":          {},
		"case-insensitive": {CaseInsensitive: true},
	} {
		t.Run(name, func(t *testing.T) {
			out, err := New().Emit(context.Background(), fixtureTable(t), opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			formatted, err := format.Source(out)
			if err != nil {
				t.Fatalf("output does not parse: %v", err)
			}
			if !bytes.Equal(out, formatted) {
				t.Fatalf("output is not gofmt-clean:\n%s", out)
			}
		})
	}
}

func TestEmit_Deterministic(t *testing.T) {
	tbl := fixtureTable(t)

	first, err := New().Emit(context.Background(), tbl, emit.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := New().Emit(context.Background(), tbl, emit.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first) != string(second) {
		t.Fatal("expected byte-stable output")
	}
}

func TestEmit_NilTable(t *testing.T) {
	if _, err := New().Emit(context.Background(), nil, emit.Options{}); err == nil {
		t.Fatal("expected error for nil table")
	}
}
