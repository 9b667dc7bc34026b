package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"snaketest/internal/config"
)

func TestInitCommandCreatesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	var out, errOut bytes.Buffer
	code := Run([]string{"init"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), "Created") {
		t.Fatalf("unexpected output %q", out.String())
	}
	if _, err := config.Load(config.ConfigPath(dir)); err != nil {
		t.Fatalf("scaffolded config should load: %v", err)
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := config.ConfigPath(dir)
	if err := os.MkdirAll(config.ConfigDir(dir), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("report: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var out, errOut bytes.Buffer
	code := Run([]string{"init"}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "already exists") {
		t.Fatalf("expected overwrite warning, got %q", errOut.String())
	}
}
