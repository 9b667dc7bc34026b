package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RenderHTML renders the report page into a string.
func RenderHTML(ctx context.Context, result Result, opts RenderOptions) (string, error) {
	var builder strings.Builder
	if err := ReportPage(result, opts).Render(ctx, &builder); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return builder.String(), nil
}

// WriteHTML renders the report and writes it to path, replacing any previous report.
// Nothing is written when rendering fails.
func WriteHTML(ctx context.Context, path string, result Result, opts RenderOptions) error {
	html, err := RenderHTML(ctx, result, opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
