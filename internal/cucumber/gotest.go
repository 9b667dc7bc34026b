package cucumber

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// testEvent is one line of `go test -json` output.
type testEvent struct {
	Action  string  `json:"Action"`
	Package string  `json:"Package"`
	Test    string  `json:"Test"`
	Elapsed float64 `json:"Elapsed"`
	Output  string  `json:"Output"`
}

type testOutcome struct {
	status  string
	elapsed float64
	output  strings.Builder
}

// FromGoTestEvents converts a `go test -json` stream into a run document.
// Each package becomes a feature and each top-level test a scenario with a
// single step. Subtests are folded into their parent.
func FromGoTestEvents(r io.Reader) (RunDocument, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	packages := map[string]map[string]*testOutcome{}
	var order []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var event testEvent
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			continue
		}
		if event.Test == "" || strings.Contains(event.Test, "/") {
			continue
		}
		tests, ok := packages[event.Package]
		if !ok {
			tests = map[string]*testOutcome{}
			packages[event.Package] = tests
			order = append(order, event.Package)
		}
		outcome, ok := tests[event.Test]
		if !ok {
			outcome = &testOutcome{}
			tests[event.Test] = outcome
		}
		switch event.Action {
		case "output":
			outcome.output.WriteString(event.Output)
		case "pass":
			outcome.status, outcome.elapsed = StatusPassed, event.Elapsed
		case "fail":
			outcome.status, outcome.elapsed = StatusFailed, event.Elapsed
		case "skip":
			outcome.status, outcome.elapsed = StatusSkipped, event.Elapsed
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read test events: %w", err)
	}

	sort.Strings(order)
	doc := make(RunDocument, 0, len(order))
	for _, pkg := range order {
		tests := packages[pkg]
		names := make([]string, 0, len(tests))
		for name, outcome := range tests {
			if outcome.status != "" {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			continue
		}
		sort.Strings(names)
		feature := Feature{URI: pkg, Name: pkg, Elements: make([]Scenario, 0, len(names))}
		for _, name := range names {
			outcome := tests[name]
			result := &Result{Status: outcome.status, Duration: outcome.elapsed * 1e9}
			if outcome.status == StatusFailed {
				result.ErrorMessage = strings.TrimSpace(outcome.output.String())
			}
			feature.Elements = append(feature.Elements, Scenario{
				Keyword: "Test",
				Name:    name,
				Steps:   []Step{{Keyword: "Run ", Name: name, Result: result}},
			})
		}
		doc = append(doc, feature)
	}
	return doc, nil
}
