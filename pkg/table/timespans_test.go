package table

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tzgen/pkg/testsupport"
)

func buildFromFixture(t *testing.T, fixture string) *Table {
	t.Helper()
	tbl, err := Build(testsupport.MustParseLines(t, fixture))
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return tbl
}

func TestTimespans_FixedZone(t *testing.T) {
	tbl := buildFromFixture(t, "Zone\tEtc/UTC\t0:00\t-\tUTC\n")

	set, err := tbl.Timespans("Etc/UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &FixedTimespanSet{First: FixedTimespan{Name: "UTC"}}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Fatalf("unexpected timespans (-want +got):\n%s", diff)
	}
}

func TestTimespans_OneOffSavingEras(t *testing.T) {
	fixture := strings.Join([]string{
		"Zone\tTest/Simple\t1:00\t-\tCET\t1980",
		"\t\t\t1:00\t1:00\tCEST\t1981",
		"\t\t\t1:00\t-\tCET",
		"",
	}, "\n")
	tbl := buildFromFixture(t, fixture)

	set, err := tbl.Timespans("Test/Simple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &FixedTimespanSet{
		First: FixedTimespan{UTCOffset: 3600, Name: "CET"},
		Rest: []Transition{
			// 1980-01-01 00:00 wall, one hour ahead of UTC.
			{Start: 315529200, Span: FixedTimespan{UTCOffset: 3600, DSTOffset: 3600, Name: "CEST"}},
			// 1981-01-01 00:00 wall, two hours ahead of UTC.
			{Start: 347148000, Span: FixedTimespan{UTCOffset: 3600, Name: "CET"}},
		},
	}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Fatalf("unexpected timespans (-want +got):\n%s", diff)
	}
}

func TestTimespans_NamedRules(t *testing.T) {
	fixture := strings.Join([]string{
		"Rule\tEU\t1981\tmax\t-\tMar\tlastSun\t1:00u\t1:00\tS",
		"Rule\tEU\t1996\tmax\t-\tOct\tlastSun\t1:00u\t0\t-",
		"Zone\tTest/Europe\t1:00\tEU\tCE%sT",
		"",
	}, "\n")
	tbl := buildFromFixture(t, fixture)

	set, err := tbl.Timespans("Test/Europe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := (FixedTimespan{UTCOffset: 3600, Name: "CET"}); set.First != want {
		t.Fatalf("unexpected first span: %#v", set.First)
	}
	if len(set.Rest) == 0 {
		t.Fatal("expected transitions")
	}

	// The first DST start: last Sunday of March 1981 at 01:00 UTC.
	first := Transition{
		Start: 354675600,
		Span:  FixedTimespan{UTCOffset: 3600, DSTOffset: 3600, Name: "CEST"},
	}
	if diff := cmp.Diff(first, set.Rest[0]); diff != "" {
		t.Fatalf("unexpected first transition (-want +got):\n%s", diff)
	}

	// DST runs continuously until the first fall-back rule year: last Sunday
	// of October 1996 at 01:00 UTC.
	second := Transition{
		Start: 846378000,
		Span:  FixedTimespan{UTCOffset: 3600, Name: "CET"},
	}
	if diff := cmp.Diff(second, set.Rest[1]); diff != "" {
		t.Fatalf("unexpected second transition (-want +got):\n%s", diff)
	}

	// From there on transitions alternate between summer and winter states
	// in strictly increasing order up to the evaluation horizon.
	for i := 1; i < len(set.Rest); i++ {
		if set.Rest[i].Start <= set.Rest[i-1].Start {
			t.Fatalf("transitions out of order at %d: %d <= %d", i, set.Rest[i].Start, set.Rest[i-1].Start)
		}
		if set.Rest[i].Span == set.Rest[i-1].Span {
			t.Fatalf("adjacent transitions share state at %d: %#v", i, set.Rest[i].Span)
		}
	}
	last := set.Rest[len(set.Rest)-1]
	if last.Start > 4133980800 { // 2101-01-01
		t.Fatalf("transition beyond evaluation horizon: %d", last.Start)
	}
}

func TestTimespans_EraStartFoldsPriorRules(t *testing.T) {
	tbl := buildFromFixture(t, testsupport.DatabaseFixture)

	set, err := tbl.Timespans("Europe/London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The LMT era runs until 1847, so the first recorded state is local mean
	// time and the first transition flips to GMT.
	if want := (FixedTimespan{UTCOffset: -75, Name: "LMT"}); set.First != want {
		t.Fatalf("unexpected first span: %#v", set.First)
	}
	if len(set.Rest) == 0 {
		t.Fatal("expected transitions")
	}
	if got := set.Rest[0].Span; got != (FixedTimespan{Name: "GMT"}) {
		t.Fatalf("unexpected span after LMT era: %#v", got)
	}

	// Summer time alternates GMT/BST with the slash format.
	seenBST := false
	for _, tr := range set.Rest[1:] {
		switch tr.Span.Name {
		case "BST":
			seenBST = true
			if tr.Span.DSTOffset != 3600 {
				t.Fatalf("BST span without saving: %#v", tr.Span)
			}
		case "GMT":
			if tr.Span.DSTOffset != 0 {
				t.Fatalf("GMT span with saving: %#v", tr.Span)
			}
		default:
			t.Fatalf("unexpected abbreviation %q", tr.Span.Name)
		}
	}
	if !seenBST {
		t.Fatal("expected at least one BST span")
	}
}

func TestTimespans_SouthernHemisphere(t *testing.T) {
	tbl := buildFromFixture(t, testsupport.SouthernFixture)

	set, err := tbl.Timespans("Australia/Adelaide")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set.Rest) == 0 {
		t.Fatal("expected transitions")
	}

	seen := map[string]bool{}
	for _, tr := range set.Rest {
		seen[tr.Span.Name] = true
		if tr.Span.UTCOffset != 34200 {
			t.Fatalf("unexpected standard offset: %#v", tr.Span)
		}
		switch tr.Span.Name {
		case "ACDT":
			if tr.Span.DSTOffset != 3600 {
				t.Fatalf("ACDT span without saving: %#v", tr.Span)
			}
		case "ACST":
			if tr.Span.DSTOffset != 0 {
				t.Fatalf("ACST span with saving: %#v", tr.Span)
			}
		default:
			t.Fatalf("unexpected abbreviation %q", tr.Span.Name)
		}
	}
	if !seen["ACDT"] || !seen["ACST"] {
		t.Fatalf("expected both summer and standard spans, got %v", seen)
	}
}

func TestTimespans_FollowsLinks(t *testing.T) {
	tbl := buildFromFixture(t, testsupport.DatabaseFixture)

	direct, err := tbl.Timespans("Etc/UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	linked, err := tbl.Timespans("Etc/Universal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(direct, linked); diff != "" {
		t.Fatalf("linked zone diverges (-direct +linked):\n%s", diff)
	}
}

func TestTimespans_Errors(t *testing.T) {
	tbl := buildFromFixture(t, "Zone\tEtc/UTC\t0:00\t-\tUTC\n")
	if _, err := tbl.Timespans("No/Such"); err == nil {
		t.Fatal("expected error for unknown zone")
	}

	tbl = buildFromFixture(t, "Zone\tTest/Dangling\t1:00\tGhost\tCE%sT\n")
	if _, err := tbl.Timespans("Test/Dangling"); err == nil {
		t.Fatal("expected error for unknown ruleset")
	}
}

func TestNormalize(t *testing.T) {
	set := &FixedTimespanSet{
		First: FixedTimespan{UTCOffset: 3600, Name: "CET"},
		Rest: []Transition{
			{Start: 100, Span: FixedTimespan{UTCOffset: 3600, Name: "CET"}},
			{Start: 200, Span: FixedTimespan{UTCOffset: 3600, DSTOffset: 3600, Name: "CEST"}},
			{Start: 200, Span: FixedTimespan{UTCOffset: 7200, Name: "EET"}},
			{Start: 300, Span: FixedTimespan{UTCOffset: 7200, Name: "EET"}},
		},
	}

	set.normalize()

	want := []Transition{
		{Start: 200, Span: FixedTimespan{UTCOffset: 7200, Name: "EET"}},
	}
	if diff := cmp.Diff(want, set.Rest); diff != "" {
		t.Fatalf("unexpected normalized transitions (-want +got):\n%s", diff)
	}
}
