package cli

import (
	"fmt"
	"io"
	"os"

	"snaketest/internal/config"
)

func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		if len(args) > 0 {
			fmt.Fprintln(stderr, "init takes no arguments")
			return ExitUsage
		}
		cwd, err := os.Getwd()
		if err != nil {
			printError(stderr, "Failed to resolve working directory: %v", err)
			return ExitError
		}
		path := config.ConfigPath(cwd)
		if err := config.Scaffold(path); err != nil {
			printError(stderr, "Init failed: %v", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Created %s\n", path)
		return ExitOK
	}
}
