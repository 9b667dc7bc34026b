package main

import (
	"encoding/json"
	"fmt"
	"os"

	"snaketest/internal/cucumber"
)

// gotest-cucumber reads `go test -json` from stdin and writes a cucumber
// run document to stdout so unit test results can be rendered by snaketest.
func main() {
	doc, err := cucumber.FromGoTestEvents(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}
}
