package config

import (
	"path/filepath"
	"strings"
)

// Normalize trims values and fills defaults for unset fields.
func Normalize(cfg *Config) {
	cfg.Report.Input = strings.TrimSpace(cfg.Report.Input)
	cfg.Report.Output = strings.TrimSpace(cfg.Report.Output)
	cfg.Report.Title = strings.TrimSpace(cfg.Report.Title)
	cfg.History.DB = strings.TrimSpace(cfg.History.DB)
	cfg.Serve.Addr = strings.TrimSpace(cfg.Serve.Addr)

	if cfg.Report.Input == "" {
		cfg.Report.Input = DefaultInputPath
	}
	if cfg.Report.Output == "" {
		cfg.Report.Output = DefaultOutputPath
	}
	if cfg.History.Limit == 0 {
		cfg.History.Limit = DefaultHistoryLimit
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = DefaultServeAddr
	}
}

// ResolvePaths makes relative file paths absolute against root.
func ResolvePaths(cfg *Config, root string) {
	if root == "" {
		return
	}
	cfg.Report.Input = resolvePath(root, cfg.Report.Input)
	cfg.Report.Output = resolvePath(root, cfg.Report.Output)
	cfg.History.DB = resolvePath(root, cfg.History.DB)
}

func resolvePath(root, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
