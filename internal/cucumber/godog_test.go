package cucumber

import (
	"strings"
	"testing"
)

// TestParseRunDocumentTrimsBOMAndWhitespace verifies a byte order mark and padding are accepted.
func TestParseRunDocumentTrimsBOMAndWhitespace(t *testing.T) {
	payload := "\xef\xbb\xbf\n  " + `[{"uri":"snake.feature","elements":[]}]` + "\n\n"
	doc, err := ParseRunDocument([]byte(payload))
	if err != nil {
		t.Fatalf("parse run document: %v", err)
	}
	if len(doc) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(doc))
	}
	if doc[0].URI != "snake.feature" {
		t.Fatalf("unexpected uri %q", doc[0].URI)
	}
}

// TestParseRunDocumentReadsStepFields verifies keyword, name and result fields.
func TestParseRunDocumentReadsStepFields(t *testing.T) {
	payload := `[{"uri":"snake.feature","name":"Snake","elements":[{"name":"Move","steps":[
		{"keyword":"Given ","name":"the game is open","result":{"status":"passed","duration":1500000}},
		{"keyword":"Then ","name":"the snake moves","result":{"status":"failed","error_message":"expected 2 got 1"}}
	]}]}]`
	doc, err := ParseRunDocument([]byte(payload))
	if err != nil {
		t.Fatalf("parse run document: %v", err)
	}
	steps := doc[0].Elements[0].Steps
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].Keyword != "Given " || steps[0].Name != "the game is open" {
		t.Fatalf("unexpected first step %+v", steps[0])
	}
	if steps[0].Result.Duration != 1500000 {
		t.Fatalf("unexpected duration %v", steps[0].Result.Duration)
	}
	if steps[1].Result.Duration != 0 {
		t.Fatalf("expected missing duration to be zero, got %v", steps[1].Result.Duration)
	}
	if steps[1].Result.ErrorMessage != "expected 2 got 1" {
		t.Fatalf("unexpected error message %q", steps[1].Result.ErrorMessage)
	}
	if doc.ScenarioCount() != 1 {
		t.Fatalf("expected 1 scenario, got %d", doc.ScenarioCount())
	}
}

// TestParseRunDocumentAllowsEmptySteps verifies scenarios may have no steps.
func TestParseRunDocumentAllowsEmptySteps(t *testing.T) {
	doc, err := ParseRunDocument([]byte(`[{"elements":[{"name":"Empty","steps":[]}]}]`))
	if err != nil {
		t.Fatalf("parse run document: %v", err)
	}
	if len(doc[0].Elements[0].Steps) != 0 {
		t.Fatalf("expected no steps")
	}
}

// TestParseRunDocumentRejectsBadShapes verifies malformed documents fail as a whole.
func TestParseRunDocumentRejectsBadShapes(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    string
	}{
		{name: "empty", payload: "   ", want: "empty"},
		{name: "null", payload: "null", want: "null"},
		{name: "leading junk", payload: "oops [] ", want: "invalid character"},
		{name: "runner warning prefix", payload: "Use of godog CLI is deprecated\n[]", want: "invalid character"},
		{name: "ansi prefix", payload: "\x1b[33m[]", want: "invalid character"},
		{name: "object", payload: `{"elements":[]}`, want: "cannot unmarshal"},
		{name: "truncated", payload: `[{"elements":[`, want: "unexpected end"},
		{name: "missing elements", payload: `[{"uri":"a.feature"}]`, want: "missing elements"},
		{name: "missing steps", payload: `[{"elements":[{"name":"S"}]}]`, want: "missing steps"},
		{name: "missing result", payload: `[{"elements":[{"name":"S","steps":[{"name":"x"}]}]}]`, want: "missing result"},
		{name: "negative duration", payload: `[{"elements":[{"name":"S","steps":[{"name":"x","result":{"status":"passed","duration":-1}}]}]}]`, want: "negative duration"},
		{name: "status type", payload: `[{"elements":[{"name":"S","steps":[{"name":"x","result":{"status":3}}]}]}]`, want: "cannot unmarshal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := ParseRunDocument([]byte(tc.payload))
			if err == nil {
				t.Fatalf("expected error, got %d features", len(doc))
			}
			if doc != nil {
				t.Fatalf("expected no partial document")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error to mention %q, got %v", tc.want, err)
			}
		})
	}
}

// TestScenarioStatusPriority verifies failed outranks skipped which outranks passed.
func TestScenarioStatusPriority(t *testing.T) {
	step := func(status string) Step {
		return Step{Result: &Result{Status: status}}
	}
	cases := []struct {
		name  string
		steps []Step
		want  string
	}{
		{name: "no steps", steps: nil, want: StatusPassed},
		{name: "all passed", steps: []Step{step("passed"), step("passed")}, want: StatusPassed},
		{name: "failed wins", steps: []Step{step("skipped"), step("failed"), step("passed")}, want: StatusFailed},
		{name: "skipped", steps: []Step{step("passed"), step("skipped")}, want: StatusSkipped},
		{name: "case insensitive", steps: []Step{step(" FAILED ")}, want: StatusFailed},
		{name: "pending counts as passed", steps: []Step{step("pending"), step("undefined")}, want: StatusPassed},
		{name: "pending with skipped", steps: []Step{step("pending"), step("skipped")}, want: StatusSkipped},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScenarioStatus(tc.steps); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
