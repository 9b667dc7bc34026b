package cli

import (
	"errors"
	"fmt"
	"io"

	"snaketest/internal/cucumber"
)

// printError writes a single diagnostic line to stderr.
func printError(stderr io.Writer, format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
}

// reportLoadError prints a diagnostic for pipeline failures.
func reportLoadError(stderr io.Writer, err error) {
	var missing *cucumber.MissingInputError
	var malformed *cucumber.MalformedInputError
	switch {
	case errors.As(err, &missing):
		printError(stderr, "No report found at %s. Run tests first.", missing.Path)
	case errors.As(err, &malformed):
		printError(stderr, "Invalid run document %s: %v", malformed.Path, malformed.Err)
	default:
		printError(stderr, "Failed to generate report: %v", err)
	}
}
