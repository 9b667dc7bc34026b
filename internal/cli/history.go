package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"snaketest/internal/history"
	"snaketest/internal/report"
)

// runHistory lists recent runs recorded in the history database.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		dbPath := fs.String("db", "", "History DuckDB file (default: history.db from config)")
		limit := fs.Int("limit", 0, "Number of runs to list (default: history.limit from config)")
		configPath := fs.String("config", "", "Path to config file (default: search for .snaketest/config.yml)")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, ok := loadConfig(*configPath, nil, stderr)
		if !ok {
			return ExitError
		}
		if *dbPath != "" {
			cfg.History.DB = *dbPath
		}
		if *limit != 0 {
			cfg.History.Limit = *limit
		}
		if cfg.History.DB == "" {
			fmt.Fprintln(stderr, "Missing --db (or history.db in config)")
			return ExitUsage
		}
		if cfg.History.Limit <= 0 {
			fmt.Fprintln(stderr, "--limit must be positive")
			return ExitUsage
		}
		if _, err := os.Stat(cfg.History.DB); err != nil {
			printError(stderr, "History database not found: %v", err)
			return ExitError
		}

		ctx := context.Background()
		db, err := history.Open(ctx, cfg.History.DB)
		if err != nil {
			printError(stderr, "Failed to open history: %v", err)
			return ExitError
		}
		defer db.Close()

		records, err := history.Recent(ctx, db, cfg.History.Limit)
		if err != nil {
			printError(stderr, "Failed to read history: %v", err)
			return ExitError
		}
		if len(records) == 0 {
			fmt.Fprintln(stdout, "No runs recorded yet.")
			return ExitOK
		}
		fmt.Fprintln(stdout, renderHistoryTable(records, !useColor(*noColor, stdout)))
		return ExitOK
	}
}

// historyColumns defines the history table layout.
func historyColumns() []table.Column {
	return []table.Column{
		{Title: "Run", Width: 8},
		{Title: "Generated", Width: 20},
		{Title: "Scenarios", Width: 9},
		{Title: "Passed", Width: 6},
		{Title: "Failed", Width: 6},
		{Title: "Skipped", Width: 7},
		{Title: "Pass Rate", Width: 9},
		{Title: "Duration", Width: 9},
	}
}

// historyRows converts run records into table rows.
func historyRows(records []history.RunRecord) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, table.Row{
			shortID(record.RunID),
			record.GeneratedAt.UTC().Format("2006-01-02 15:04:05"),
			strconv.Itoa(record.TotalScenarios),
			strconv.Itoa(record.PassedScenarios),
			strconv.Itoa(record.FailedScenarios),
			strconv.Itoa(record.SkippedScenarios),
			report.FormatPassRate(record.PassRate) + "%",
			fmt.Sprintf("%.2fs", record.DurationMs/1000),
		})
	}
	return rows
}

// renderHistoryTable renders a static table of runs.
func renderHistoryTable(records []history.RunRecord, noColor bool) string {
	rows := historyRows(records)
	t := table.New(
		table.WithColumns(historyColumns()),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
		table.WithStyles(historyTableStyles(noColor)),
	)
	return t.View()
}

// historyTableStyles returns table styles; no row is highlighted in a static listing.
func historyTableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	if noColor {
		styles.Header = lipgloss.NewStyle().Padding(0, 1)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// shortID abbreviates a run id for display.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
