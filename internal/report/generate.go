package report

import (
	"context"
	"time"

	"snaketest/internal/cucumber"
)

// GenerateOptions configures a single load, aggregate and render pass.
type GenerateOptions struct {
	InputPath  string
	OutputPath string
	Title      string
	// Now supplies the generation timestamp; defaults to time.Now.
	Now func() time.Time
	// Logf receives progress messages when set.
	Logf func(format string, args ...any)
}

// Outcome describes a generated report.
type Outcome struct {
	Result      Result
	OutputPath  string
	GeneratedAt time.Time
}

// Generate loads the run document, aggregates it and writes the HTML report.
// Load errors are returned unchanged so callers can match
// *cucumber.MissingInputError and *cucumber.MalformedInputError.
func Generate(ctx context.Context, opts GenerateOptions) (Outcome, error) {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	logf("loading run document %s", opts.InputPath)
	doc, err := cucumber.LoadRunDocument(opts.InputPath)
	if err != nil {
		return Outcome{}, err
	}
	logf("loaded %d features with %d scenarios", len(doc), doc.ScenarioCount())

	result := Aggregate(doc)
	logf("aggregated %d steps (%d passed, %d failed, %d skipped, %d other)",
		result.Summary.TotalSteps, result.Summary.PassedSteps, result.Summary.FailedSteps,
		result.Summary.SkippedSteps, result.Summary.OtherSteps)

	generatedAt := now()
	if err := WriteHTML(ctx, opts.OutputPath, result, RenderOptions{Title: opts.Title, GeneratedAt: generatedAt}); err != nil {
		return Outcome{}, err
	}
	logf("wrote report %s", opts.OutputPath)
	return Outcome{Result: result, OutputPath: opts.OutputPath, GeneratedAt: generatedAt}, nil
}
