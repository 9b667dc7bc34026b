package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorHeading = lipgloss.Color("33")
	colorPassed  = lipgloss.Color("42")
	colorFailed  = lipgloss.Color("196")
	colorSkipped = lipgloss.Color("214")
	colorMuted   = lipgloss.Color("244")
)

// PrintSummary writes the fixed-shape console summary for a generated report.
func PrintSummary(w io.Writer, summary Summary, reportPath string, noColor bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, stylize("Test Report Generated Successfully!", noColor, colorHeading))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "   Total Scenarios: %d\n", summary.TotalScenarios)
	fmt.Fprintf(w, "   %s\n", stylize("Passed: "+strconv.Itoa(summary.PassedScenarios), noColor, colorPassed))
	fmt.Fprintf(w, "   %s\n", stylize("Failed: "+strconv.Itoa(summary.FailedScenarios), noColor, colorFailed))
	fmt.Fprintf(w, "   %s\n", stylize("Skipped: "+strconv.Itoa(summary.SkippedScenarios), noColor, colorSkipped))
	fmt.Fprintf(w, "   Pass Rate: %s%%\n", summary.PassRateText())
	fmt.Fprintf(w, "   Duration: %s\n", formatSeconds(summary.DurationMs))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Report Location: %s\n", reportPath)
	fmt.Fprintln(w, stylize("Open in browser: "+fileURL(reportPath), noColor, colorMuted))
}

// fileURL returns a file:// URL for a local path.
func fileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	abs = filepath.ToSlash(abs)
	if len(abs) > 0 && abs[0] != '/' {
		abs = "/" + abs
	}
	return "file://" + abs
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
