// Package config loads and writes the optional .mdvalidate.yml file that
// carries CLI defaults. Grounded on the teacher's internal/schema/loader.go
// (Load/FindSchema) and cmd/mdschema/commands/init.go (runInit/
// CreateDefaultFile), repurposed from "load the YAML validation schema"
// to "load CLI default flags", since the validation schema itself is now a
// Markdown document (internal/mdtree), not YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	yamlcomment "github.com/zijiren233/yaml-comment"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the CLI defaults file discovered by Find.
const FileName = ".mdvalidate.yml"

// Config holds CLI defaults that would otherwise have to be repeated as
// flags on every invocation.
type Config struct {
	// FastFail stops at the first SchemaViolation/SchemaError instead of
	// collecting every error (spec.md §7).
	FastFail bool `yaml:"fast_fail" comment:"stop at the first violation instead of collecting every one"`

	// Quiet suppresses the text reporter's success line.
	Quiet bool `yaml:"quiet" comment:"suppress the \"no violations found\" success line"`

	// Output selects the report format: "text" or "json".
	Output string `yaml:"output" comment:"report format: text or json"`

	// Select is an expr-lang expression (internal/policy.Select) that
	// filters which captures appear in the report.
	Select string `yaml:"select,omitempty" comment:"expr-lang expression filtering which captures are reported"`
}

// Load reads and parses a CLI defaults file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	return &cfg, nil
}

// Find discovers a .mdvalidate.yml by walking up from startPath, the same
// directory-hierarchy walk as the teacher's schema.FindSchema.
func Find(startPath string) (string, error) {
	dir := startPath
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no %s found in directory hierarchy", FileName)
}

// WriteDefault writes a commented default Config to path, for `mdvalidate
// init`. Unlike the teacher, which declared yaml-comment in go.mod but
// never imported it (its CreateDefaultFile wrote a hand-authored string
// literal instead), this actually renders the comments from the Config
// struct's `comment` tags.
func WriteDefault(path string) error {
	defaults := Config{
		FastFail: false,
		Quiet:    false,
		Output:   "text",
	}
	data, err := yamlcomment.Marshal(&defaults)
	if err != nil {
		return fmt.Errorf("rendering default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
