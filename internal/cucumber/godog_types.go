package cucumber

// Step statuses emitted by cucumber-compatible runners.
const (
	StatusPassed    = "passed"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
	StatusPending   = "pending"
	StatusUndefined = "undefined"
	StatusAmbiguous = "ambiguous"
)

// RunDocument is the top-level cucumber JSON report: one entry per feature.
type RunDocument []Feature

// Feature matches a feature record in cucumber JSON output.
type Feature struct {
	URI      string     `json:"uri"`
	Name     string     `json:"name"`
	Elements []Scenario `json:"elements"`
}

// Scenario describes a scenario element from cucumber JSON.
type Scenario struct {
	Name    string `json:"name"`
	Keyword string `json:"keyword"`
	Line    int    `json:"line"`
	Steps   []Step `json:"steps"`
}

// Step captures a single executed step.
type Step struct {
	Keyword string  `json:"keyword"`
	Name    string  `json:"name"`
	Line    int     `json:"line"`
	Result  *Result `json:"result"`
}

// Result contains a step execution outcome. Duration is in nanoseconds.
type Result struct {
	Status       string  `json:"status"`
	Duration     float64 `json:"duration,omitempty"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

// ScenarioCount returns the number of scenarios across all features.
func (d RunDocument) ScenarioCount() int {
	count := 0
	for _, feature := range d {
		count += len(feature.Elements)
	}
	return count
}
