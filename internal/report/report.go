package report

import "snaketest/internal/cucumber"

// nsPerMillisecond converts cucumber step durations to milliseconds.
const nsPerMillisecond = 1_000_000

// Summary aggregates scenario and step outcomes for a run document.
type Summary struct {
	TotalScenarios   int
	PassedScenarios  int
	FailedScenarios  int
	SkippedScenarios int
	TotalSteps       int
	PassedSteps      int
	FailedSteps      int
	SkippedSteps     int
	// OtherSteps counts pending, undefined and unrecognized step statuses.
	OtherSteps int
	DurationMs float64
	// PassRate is PassedScenarios/TotalScenarios, zero when there are no scenarios.
	PassRate float64
}

// PassRateText returns the pass rate as a percentage with two decimals.
func (s Summary) PassRateText() string {
	return FormatPassRate(s.PassRate)
}

// ScenarioView is the per-scenario record shown in the report.
type ScenarioView struct {
	Feature    string
	Name       string
	Status     string
	DurationMs float64
	Steps      []StepView
}

// StepView is a single step row within a scenario.
type StepView struct {
	Keyword      string
	Name         string
	Status       string
	DurationMs   float64
	ErrorMessage string
}

// Result is the aggregated view of a run document.
type Result struct {
	Summary   Summary
	Scenarios []ScenarioView
}

// Aggregate walks a run document once and derives the summary and scenario views.
// Scenarios keep document order: feature-major, then scenario order.
func Aggregate(doc cucumber.RunDocument) Result {
	result := Result{Scenarios: make([]ScenarioView, 0, doc.ScenarioCount())}
	summary := &result.Summary
	for _, feature := range doc {
		for _, scenario := range feature.Elements {
			view := ScenarioView{
				Feature: feature.Name,
				Name:    scenario.Name,
				Status:  cucumber.ScenarioStatus(scenario.Steps),
				Steps:   make([]StepView, 0, len(scenario.Steps)),
			}
			for _, step := range scenario.Steps {
				stepView := newStepView(step)
				summary.TotalSteps++
				switch stepView.Status {
				case cucumber.StatusPassed:
					summary.PassedSteps++
				case cucumber.StatusFailed:
					summary.FailedSteps++
				case cucumber.StatusSkipped:
					summary.SkippedSteps++
				default:
					summary.OtherSteps++
				}
				view.DurationMs += stepView.DurationMs
				view.Steps = append(view.Steps, stepView)
			}

			summary.TotalScenarios++
			switch view.Status {
			case cucumber.StatusFailed:
				summary.FailedScenarios++
			case cucumber.StatusSkipped:
				summary.SkippedScenarios++
			default:
				summary.PassedScenarios++
			}
			summary.DurationMs += view.DurationMs
			result.Scenarios = append(result.Scenarios, view)
		}
	}
	if summary.TotalScenarios > 0 {
		summary.PassRate = float64(summary.PassedScenarios) / float64(summary.TotalScenarios)
	}
	return result
}

// newStepView converts a cucumber step into its report row.
func newStepView(step cucumber.Step) StepView {
	view := StepView{
		Keyword: step.Keyword,
		Name:    step.Name,
	}
	if step.Result == nil {
		return view
	}
	view.Status = cucumber.NormalizeStatus(step.Result.Status)
	view.DurationMs = step.Result.Duration / nsPerMillisecond
	view.ErrorMessage = step.Result.ErrorMessage
	return view
}
