//go:build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"snaketest/internal/config"
)

func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr: %s)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected %q in output, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected %q in error output, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) theReportContains(text string) error {
	html, err := s.reportHTML()
	if err != nil {
		return err
	}
	if !strings.Contains(html, text) {
		return fmt.Errorf("expected %q in report", text)
	}
	return nil
}

func (s *featureState) theReportDoesNotContain(text string) error {
	html, err := s.reportHTML()
	if err != nil {
		return err
	}
	if strings.Contains(html, text) {
		return fmt.Errorf("unexpected %q in report", text)
	}
	return nil
}

// noReportIsWritten asserts the default output path does not exist.
func (s *featureState) noReportIsWritten() error {
	path := filepath.Join(s.workDir, config.DefaultOutputPath)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return fmt.Errorf("expected no report at %s", path)
	}
	return nil
}
