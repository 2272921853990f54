package testsupport

import (
	"strings"
	"testing"

	pkgzoneinfo "github.com/goliatone/go-tzgen/pkg/zoneinfo"
)

// DatabaseFixture is a small zoneinfo database exercising rules, multiple
// eras, named savings, slash and %s formats, and links. Tests share it so
// expectations stay consistent across packages.
const DatabaseFixture = `# Rule	NAME	FROM	TO	TYPE	IN	ON	AT	SAVE	LETTER/S
Rule	EU	1981	max	-	Mar	lastSun	1:00u	1:00	S
Rule	EU	1996	max	-	Oct	lastSun	1:00u	0	-

# Zone	NAME		STDOFF	RULES	FORMAT	[UNTIL]
Zone	Europe/London	-0:01:15 -	LMT	1847 Dec 1 0:00s
			0:00	EU	GMT/BST

Zone	Etc/UTC		0:00	-	UTC

Link	Etc/UTC		Etc/Universal
Link	Europe/London	Europe/Jersey
`

// SouthernFixture covers a southern-hemisphere zone with a half-hour offset
// and an %s abbreviation format.
const SouthernFixture = `Rule	AS	1987	max	-	Oct	lastSun	2:00s	1:00	D
Rule	AS	2008	max	-	Apr	Sun>=1	2:00s	0	S

Zone	Australia/Adelaide	9:30	AS	AC%sT
`

// FixtureDocument wraps the shared database fixture in a Document.
func FixtureDocument(t *testing.T) pkgzoneinfo.Document {
	t.Helper()
	return DocumentFromString(t, "fixtures/database", DatabaseFixture)
}

// DocumentFromString builds a Document from inline fixture text.
func DocumentFromString(t *testing.T, name, raw string) pkgzoneinfo.Document {
	t.Helper()

	doc, err := pkgzoneinfo.NewDocument(pkgzoneinfo.SourceFromFile(name), []byte(raw))
	if err != nil {
		t.Fatalf("build fixture document: %v", err)
	}
	return doc
}

// MustParseLines parses fixture text into lines, failing the test on error.
func MustParseLines(t *testing.T, raw string) []pkgzoneinfo.Line {
	t.Helper()

	var out []pkgzoneinfo.Line
	for i, lineText := range strings.Split(raw, "\n") {
		line, err := pkgzoneinfo.ParseLine(lineText)
		if err != nil {
			t.Fatalf("parse fixture line %d: %v", i+1, err)
		}
		if _, ok := line.(pkgzoneinfo.Space); ok {
			continue
		}
		out = append(out, line)
	}
	return out
}
