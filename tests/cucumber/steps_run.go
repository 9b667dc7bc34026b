//go:build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"snaketest/internal/cli"
	"snaketest/internal/config"
)

// aRunDocument writes the doc string to the default input location.
func (s *featureState) aRunDocument(doc *godog.DocString) error {
	path := filepath.Join(s.workDir, config.DefaultInputPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc.Content), 0o644); err != nil {
		return fmt.Errorf("write run document: %w", err)
	}
	return nil
}

func (s *featureState) noRunDocumentExists() error {
	path := filepath.Join(s.workDir, config.DefaultInputPath)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return fmt.Errorf("expected %s to be absent", path)
	}
	return nil
}

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "snaketest" {
		args = args[1:]
	}
	args = append(args, "--no-color")
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

// reportHTML reads the generated report from the default output path.
func (s *featureState) reportHTML() (string, error) {
	data, err := os.ReadFile(filepath.Join(s.workDir, config.DefaultOutputPath))
	if err != nil {
		return "", fmt.Errorf("read report: %w", err)
	}
	return string(data), nil
}
