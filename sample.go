package tzgen

import (
	"embed"
	"io/fs"
)

//go:embed sample/*
var embeddedSample embed.FS

// SampleDatabaseFS exposes a small bundled zoneinfo database (committed under
// sample/) so examples and quick starts can run without downloading tzdata.
//
// Typical use:
//
//	loader := tzgen.NewLoader(zoneinfo.WithFileSystem(tzgen.SampleDatabaseFS()))
//	out, err := tzgen.Generate(ctx, zoneinfo.SourceFromFS("europe"), "gosrc",
//		tzgen.EmitOptions{}, generator.WithLoader(loader))
func SampleDatabaseFS() fs.FS {
	sub, err := fs.Sub(embeddedSample, "sample")
	if err != nil {
		return embeddedSample
	}
	return sub
}
