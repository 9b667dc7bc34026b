package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"snaketest/internal/history"
	"snaketest/internal/report"
)

// Test seams.
var (
	generateReport = report.Generate
	now            = time.Now
)

// runGenerate loads the run document, writes the HTML report and prints a summary.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		inputPath := fs.String("input", "", "Cucumber JSON run document (default: reports/cucumber-report.json)")
		outputPath := fs.String("output", "", "HTML report path (default: reports/test-report.html)")
		title := fs.String("title", "", "Report title")
		configPath := fs.String("config", "", "Path to config file (default: search for .snaketest/config.yml)")
		historyPath := fs.String("history", "", "Record the run in this DuckDB file")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		verbose := fs.Bool("verbose", false, "Print progress to stderr")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "Unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			return ExitUsage
		}

		logf := verboseLogger(*verbose, stderr, useColor(*noColor, stderr))
		cfg, ok := loadConfig(*configPath, logf, stderr)
		if !ok {
			return ExitError
		}
		if *inputPath != "" {
			cfg.Report.Input = *inputPath
		}
		if *outputPath != "" {
			cfg.Report.Output = *outputPath
		}
		if strings.TrimSpace(*title) != "" {
			cfg.Report.Title = strings.TrimSpace(*title)
		}
		if *historyPath != "" {
			cfg.History.DB = *historyPath
		}

		if filepath.Clean(cfg.Report.Input) == filepath.Clean(cfg.Report.Output) {
			fmt.Fprintln(stderr, "--output must differ from --input")
			return ExitUsage
		}

		ctx := context.Background()
		outcome, err := generateReport(ctx, report.GenerateOptions{
			InputPath:  cfg.Report.Input,
			OutputPath: cfg.Report.Output,
			Title:      cfg.Report.Title,
			Now:        now,
			Logf:       logf,
		})
		if err != nil {
			reportLoadError(stderr, err)
			return ExitError
		}

		report.PrintSummary(stdout, outcome.Result.Summary, outcome.OutputPath, !useColor(*noColor, stdout))

		if cfg.History.DB == "" {
			return ExitOK
		}
		runID, err := recordHistory(ctx, cfg.History.DB, outcome, cfg.Report.Input)
		if err != nil {
			printError(stderr, "Failed to record history: %v", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Recorded run %s in %s\n", runID, cfg.History.DB)
		return ExitOK
	}
}

// recordHistory appends the generated run to the history database.
func recordHistory(ctx context.Context, dbPath string, outcome report.Outcome, inputPath string) (string, error) {
	db, err := history.Open(ctx, dbPath)
	if err != nil {
		return "", err
	}
	defer db.Close()
	return history.Record(ctx, db, outcome.Result, history.RunMeta{
		InputPath:   inputPath,
		ReportPath:  outcome.OutputPath,
		GeneratedAt: outcome.GeneratedAt,
	})
}
