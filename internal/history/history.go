package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"snaketest/internal/report"
)

// RunMeta describes where a recorded run came from.
type RunMeta struct {
	InputPath   string
	ReportPath  string
	GeneratedAt time.Time
}

// RunRecord is a run row read back from the history database.
type RunRecord struct {
	RunID            string
	GeneratedAt      time.Time
	InputPath        string
	ReportPath       string
	TotalScenarios   int
	PassedScenarios  int
	FailedScenarios  int
	SkippedScenarios int
	TotalSteps       int
	DurationMs       float64
	PassRate         float64
}

// Open opens or creates a DuckDB history file and applies the schema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if ctx == nil {
		return nil, errors.New("history: context is nil")
	}
	if path == "" {
		return nil, errors.New("history: db path is required")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("history: create db dir: %w", err)
		}
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: ping %s: %w", path, err)
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: apply schema: %w", err)
	}
	return db, nil
}

// Record stores a run summary and its scenarios in one transaction.
func Record(ctx context.Context, db *sql.DB, result report.Result, meta RunMeta) (string, error) {
	if ctx == nil {
		return "", errors.New("history: context is nil")
	}
	if db == nil {
		return "", errors.New("history: db is nil")
	}
	generatedAt := meta.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	runID := uuid.NewString()
	summary := result.Summary

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("history: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO runs (
		  run_id, generated_at, input_path, report_path,
		  total_scenarios, passed_scenarios, failed_scenarios, skipped_scenarios,
		  total_steps, passed_steps, failed_steps, skipped_steps,
		  duration_ms, pass_rate
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		generatedAt.UTC(),
		meta.InputPath,
		meta.ReportPath,
		summary.TotalScenarios,
		summary.PassedScenarios,
		summary.FailedScenarios,
		summary.SkippedScenarios,
		summary.TotalSteps,
		summary.PassedSteps,
		summary.FailedSteps,
		summary.SkippedSteps,
		summary.DurationMs,
		summary.PassRate,
	); err != nil {
		return "", fmt.Errorf("history: insert run: %w", err)
	}

	for i, scenario := range result.Scenarios {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO scenario_results (run_id, position, feature, name, status, duration_ms)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID,
			i,
			scenario.Feature,
			scenario.Name,
			scenario.Status,
			scenario.DurationMs,
		); err != nil {
			return "", fmt.Errorf("history: insert scenario %q: %w", scenario.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("history: commit: %w", err)
	}
	return runID, nil
}

// Recent returns up to limit runs, newest first.
func Recent(ctx context.Context, db *sql.DB, limit int) ([]RunRecord, error) {
	if ctx == nil {
		return nil, errors.New("history: context is nil")
	}
	if db == nil {
		return nil, errors.New("history: db is nil")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("history: limit must be positive, got %d", limit)
	}
	query := fmt.Sprintf(
		`SELECT CAST(run_id AS VARCHAR), generated_at, input_path, report_path,
		  total_scenarios, passed_scenarios, failed_scenarios, skipped_scenarios,
		  total_steps, duration_ms, pass_rate
		 FROM runs
		 ORDER BY generated_at DESC, run_id
		 LIMIT %d`,
		limit,
	)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("history: query runs: %w", err)
	}
	defer rows.Close()

	records := make([]RunRecord, 0, limit)
	for rows.Next() {
		var record RunRecord
		if err := rows.Scan(
			&record.RunID,
			&record.GeneratedAt,
			&record.InputPath,
			&record.ReportPath,
			&record.TotalScenarios,
			&record.PassedScenarios,
			&record.FailedScenarios,
			&record.SkippedScenarios,
			&record.TotalSteps,
			&record.DurationMs,
			&record.PassRate,
		); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: read runs: %w", err)
	}
	return records, nil
}

// ScenarioStatuses returns the recorded scenario statuses of a run in document order.
func ScenarioStatuses(ctx context.Context, db *sql.DB, runID string) ([]string, error) {
	if db == nil {
		return nil, errors.New("history: db is nil")
	}
	rows, err := db.QueryContext(
		ctx,
		`SELECT status FROM scenario_results WHERE CAST(run_id AS VARCHAR) = ? ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query scenarios: %w", err)
	}
	defer rows.Close()
	statuses := make([]string, 0)
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return nil, fmt.Errorf("history: scan scenario: %w", err)
		}
		statuses = append(statuses, status)
	}
	return statuses, rows.Err()
}
