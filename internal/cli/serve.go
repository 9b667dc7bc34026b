package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"snaketest/internal/reportserver"
)

var serveReport = reportserver.Serve

// signalContext is replaced in tests so serve returns without a signal.
var signalContext = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		addr := fs.String("addr", "", "Listen address (default: 127.0.0.1:5050)")
		reportPath := fs.String("report", "", "HTML report to serve (default: report.output from config)")
		configPath := fs.String("config", "", "Path to config file (default: search for .snaketest/config.yml)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "serve takes no positional arguments")
			return ExitUsage
		}

		cfg, ok := loadConfig(*configPath, nil, stderr)
		if !ok {
			return ExitError
		}
		if *addr != "" {
			cfg.Serve.Addr = *addr
		}
		if *reportPath != "" {
			cfg.Report.Output = *reportPath
		}

		info, err := os.Stat(cfg.Report.Output)
		if err != nil || info.IsDir() {
			printError(stderr, "No report found at %s. Run tests first.", cfg.Report.Output)
			return ExitError
		}
		historyDB := cfg.History.DB
		if historyDB != "" {
			if _, err := os.Stat(historyDB); err != nil {
				historyDB = ""
			}
		}

		ctx, stop := signalContext()
		defer stop()
		fmt.Fprintf(stdout, "Serving %s at http://%s/\n", cfg.Report.Output, cfg.Serve.Addr)
		if err := serveReport(ctx, reportserver.Config{
			Addr:          cfg.Serve.Addr,
			ReportPath:    cfg.Report.Output,
			HistoryDBPath: historyDB,
		}); err != nil {
			printError(stderr, "Server failed: %v", err)
			return ExitError
		}
		return ExitOK
	}
}
