package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fixturegen/fixture"
	"fixturegen/internal/gen"
	"fixturegen/primitive"
)

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config and applies defaults. The result is
// not validated.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}

	if cfg.Length.Min == 0 && cfg.Length.Max == 0 {
		cfg.Length = LengthRange{Min: fixture.DefaultMinLength, Max: fixture.DefaultMaxLength}
	}

	if cfg.StringLength == 0 {
		cfg.StringLength = primitive.DefaultStringLength
	}

	defaults := gen.DefaultGeneratorConfig()
	if cfg.Catalog.Package == "" {
		cfg.Catalog.Package = defaults.PackageName
	}

	if cfg.Catalog.Output == "" {
		cfg.Catalog.Output = defaults.OutputDir
	}

	if cfg.Catalog.Filename == "" {
		cfg.Catalog.Filename = defaults.Filename
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
