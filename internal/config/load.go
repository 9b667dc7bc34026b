package config

import (
	"fmt"
	"os"
)

// Load reads, parses, normalizes, and validates a config file.
// Relative paths in the file are resolved against the repository root.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	ResolvePaths(&cfg, RepoRootFromConfigPath(path))
	return cfg, nil
}
