package cli

import (
	"io"

	"snaketest/internal/config"
)

// loadConfig resolves the config file, falling back to defaults when none exists.
func loadConfig(configPath string, verbose func(format string, args ...any), stderr io.Writer) (config.Config, bool) {
	cfg, path, err := config.Resolve(configPath)
	if err != nil {
		printError(stderr, "Failed to load config: %v", err)
		return config.Config{}, false
	}
	if verbose != nil {
		if path == "" {
			verbose("no %s found, using defaults", config.ConfigFileName)
		} else {
			verbose("using config %s", path)
		}
	}
	return cfg, true
}
