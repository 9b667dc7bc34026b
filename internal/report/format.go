package report

import (
	"fmt"
	"time"

	"snaketest/internal/cucumber"
)

// timestampLayout is used for the generation time shown in the report.
const timestampLayout = "2006-01-02 15:04:05 MST"

// FormatPassRate returns a percentage string for report output.
func FormatPassRate(rate float64) string {
	return fmt.Sprintf("%.2f", rate*100)
}

// formatSeconds renders a millisecond duration as seconds with two decimals.
func formatSeconds(ms float64) string {
	return fmt.Sprintf("%.2fs", ms/1000)
}

// formatTimestamp renders the report generation time.
func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format(timestampLayout)
}

// statusClass maps a status to a CSS class name, never echoing arbitrary input.
func statusClass(status string) string {
	switch status {
	case cucumber.StatusPassed,
		cucumber.StatusFailed,
		cucumber.StatusSkipped,
		cucumber.StatusPending,
		cucumber.StatusUndefined,
		cucumber.StatusAmbiguous:
		return status
	default:
		return "unknown"
	}
}
