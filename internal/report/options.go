package report

import (
	"strings"
	"time"
)

// DefaultTitle is the report heading when none is configured.
const DefaultTitle = "Snake Game Test Report"

// RenderOptions controls presentation details that are not derived from the run.
type RenderOptions struct {
	Title       string
	GeneratedAt time.Time
}

func pageTitle(opts RenderOptions) string {
	if title := strings.TrimSpace(opts.Title); title != "" {
		return title
	}
	return DefaultTitle
}
