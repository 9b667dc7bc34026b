package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const verbosePrefix = "[verbose]"

// verboseLogger returns a printf-style logger that writes to w when enabled.
func verboseLogger(enabled bool, w io.Writer, color bool) func(format string, args ...any) {
	if !enabled || w == nil {
		return nil
	}
	prefix := verbosePrefix
	if color {
		prefix = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render(verbosePrefix)
	}
	return func(format string, args ...any) {
		fmt.Fprintf(w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
	}
}
