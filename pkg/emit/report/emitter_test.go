package report

import (
	"context"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"

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

func TestNew_LoadsEmbeddedTemplates(t *testing.T) {
	if _, err := New(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEmit_RendersZonesAndLinks(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := e.Emit(context.Background(), fixtureTable(t), emit.Options{
		Header: "tzdata 2024a",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"Europe/London",
		"Etc/UTC",
		"Etc/Universal",
		"tzdata 2024a",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected report to contain %q", want)
		}
	}
}

func TestEmit_SanitizesAnnotations(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := e.Emit(context.Background(), fixtureTable(t), emit.Options{
		Annotations: map[string]string{
			"Europe/London": `clock changed in 1847 <script>alert("x")</script>`,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(out)

	if strings.Contains(html, "<script>") {
		t.Fatal("expected script tags to be stripped")
	}
	if !strings.Contains(html, "clock changed in 1847") {
		t.Fatal("expected note text to survive sanitization")
	}
}

func TestEmit_AppliesThemeTokens(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := e.Emit(context.Background(), fixtureTable(t), emit.Options{
		Theme: &theme.RendererConfig{
			Theme:   "midnight",
			Variant: "dark",
			Tokens:  map[string]string{"accent": "#3fb950"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "--accent: #3fb950;") {
		t.Fatalf("expected theme token as CSS variable, got:\n%s", html)
	}
}

func TestEmit_NilTable(t *testing.T) {
	e, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.Emit(context.Background(), nil, emit.Options{}); err == nil {
		t.Fatal("expected error for nil table")
	}
}

func TestOffsetString(t *testing.T) {
	cases := map[int64]string{
		0:     "+00:00",
		3600:  "+01:00",
		-75:   "-00:01:15",
		34200: "+09:30",
	}
	for offset, want := range cases {
		if got := offsetString(offset); got != want {
			t.Fatalf("offsetString(%d) = %q, want %q", offset, got, want)
		}
	}
}
