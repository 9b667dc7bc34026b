package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if filepath.Clean(cfg.Report.Input) == filepath.Clean(cfg.Report.Output) {
		add("report.output", "must differ from report.input")
	}
	if ext := strings.ToLower(filepath.Ext(cfg.Report.Output)); ext != ".html" && ext != ".htm" {
		add("report.output", "must be an .html file")
	}
	if cfg.History.Limit < 0 {
		add("history.limit", "must not be negative")
	}
	if cfg.History.DB != "" && filepath.Clean(cfg.History.DB) == filepath.Clean(cfg.Report.Output) {
		add("history.db", "must differ from report.output")
	}
	if !strings.Contains(cfg.Serve.Addr, ":") {
		add("serve.addr", "must be host:port")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
