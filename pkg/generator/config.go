package generator

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the YAML build configuration consumed by the CLI. Every field
// maps onto a generator or emitter option.
type Config struct {
	// Source is the zoneinfo file to read.
	Source string `yaml:"source"`
	// Include holds zone-name regex patterns; empty keeps every zone.
	Include []string `yaml:"include"`
	// Emitter names the output format; empty selects the default.
	Emitter string `yaml:"emitter"`
	// Output is the path the artifact is written to; empty means stdout.
	Output string `yaml:"output"`
	// PackageName overrides the generated Go package clause.
	PackageName string `yaml:"package"`
	// Header is an extra comment for the generated artifact, typically the
	// tzdata release name.
	Header string `yaml:"header"`
	// CaseInsensitive makes the generated lookup casing-tolerant.
	CaseInsensitive bool `yaml:"caseInsensitive"`
}

// Validate checks the config for the mistakes a YAML round-trip cannot
// catch.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("generator config: source is required")
	}
	return nil
}

// LoadConfig reads and parses a YAML config file from disk.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("generator config: read %s: %w", path, err)
	}
	return parseConfig(data, path)
}

// LoadConfigFS reads a config file from an fs.FS, mainly for tests and
// embedded defaults.
func LoadConfigFS(fsys fs.FS, path string) (Config, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Config{}, fmt.Errorf("generator config: read %s: %w", path, err)
	}
	return parseConfig(data, path)
}

func parseConfig(data []byte, path string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("generator config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
