package tzgen

import (
	"io/fs"
	"strings"
	"testing"
)

func TestSampleDatabaseFSContainsEurope(t *testing.T) {
	fsys := SampleDatabaseFS()
	data, err := fs.ReadFile(fsys, "europe")
	if err != nil {
		t.Fatalf("expected sample database to be readable: %v", err)
	}
	if !strings.Contains(string(data), "Europe/London") {
		t.Fatalf("expected sample database to mention Europe/London")
	}
}

func TestSampleDatabaseFSContainsAustralasia(t *testing.T) {
	fsys := SampleDatabaseFS()
	data, err := fs.ReadFile(fsys, "australasia")
	if err != nil {
		t.Fatalf("expected sample database to be readable: %v", err)
	}
	if !strings.Contains(string(data), "Australia/Adelaide") {
		t.Fatalf("expected sample database to mention Australia/Adelaide")
	}
}
