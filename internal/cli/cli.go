package cli

import (
	"fmt"
	"io"
	"strings"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// defaultCommand runs when no subcommand is named.
const defaultCommand = "generate"

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches args to a command. With no arguments, or only flags,
// the report is generated from the default locations.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	name := defaultCommand
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name = args[0]
		args = args[1:]
	}

	cmd := findCommand(name)
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", name)
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args, stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  snaketest [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintf(w, "\nWithout a command, %q runs with default options.\n", defaultCommand)
	fmt.Fprintln(w, "Use \"snaketest <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("generate", "Render the HTML test report from cucumber JSON", []string{
		"snaketest [generate] [--input <json>] [--output <html>] [--title <text>]",
		"          [--config <path>] [--history <db.duckdb>] [--no-color] [--verbose]",
	}, runGenerate),
	command("history", "List recorded report runs", []string{
		"snaketest history [--db <db.duckdb>] [--limit <n>] [--config <path>]",
	}, runHistory),
	command("serve", "Serve the generated report over HTTP", []string{
		"snaketest serve [--addr <host:port>] [--report <html>] [--config <path>]",
	}, runServe),
	command("init", "Scaffold .snaketest/config.yml", []string{
		"snaketest init",
	}, runInit),
}
