package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `# snaketest report configuration
report:
  input: "reports/cucumber-report.json"
  output: "reports/test-report.html"
  title: "Snake Game Test Report"

history:
  # db: "reports/history.duckdb"
  limit: 10

serve:
  addr: "127.0.0.1:5050"
`

// Scaffold writes the default config file, refusing to overwrite an existing one.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
