package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// useColor decides whether console output should be styled.
func useColor(noColor bool, w io.Writer) bool {
	if noColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isTerminal(w)
}

// defaultIsTerminal inspects a writer for TTY support.
func defaultIsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
