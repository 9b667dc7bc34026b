package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"snaketest/internal/cucumber"
)

var fixedTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// TestRenderHTMLIncludesStatistics verifies counts, pass rate and scenario rows.
func TestRenderHTMLIncludesStatistics(t *testing.T) {
	html, err := RenderHTML(context.Background(), Aggregate(exampleDocument()), RenderOptions{GeneratedAt: fixedTime})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, token := range []string{
		"<!DOCTYPE html>",
		"<title>" + DefaultTitle + "</title>",
		"Generated on 2026-03-14 09:30:00 UTC",
		`<progress class="progress-bar" max="100" value="50.00">`,
		"50.00% Pass Rate",
		`<div class="scenario passed">`,
		`<div class="scenario failed">`,
		"Snake starts moving",
		"0.01s",
		`<span class="step-keyword">Given </span>`,
	} {
		if !strings.Contains(html, token) {
			t.Fatalf("expected report to include %q", token)
		}
	}
	if strings.Contains(html, "<link") || strings.Contains(html, "<script src") {
		t.Fatalf("expected a self-contained report")
	}
}

// TestRenderHTMLEscapesUserText verifies names and messages are rendered as text.
func TestRenderHTMLEscapesUserText(t *testing.T) {
	doc := cucumber.RunDocument{{
		Name: "Feature <i>",
		Elements: []cucumber.Scenario{{
			Name: "Score <b> & more",
			Steps: []cucumber.Step{
				step("Then ", "score shows <script>alert(1)</script>", "failed", 0),
			},
		}},
	}}
	doc[0].Elements[0].Steps[0].Result.ErrorMessage = "expected <10> & got </div>"

	html, err := RenderHTML(context.Background(), Aggregate(doc), RenderOptions{Title: "Run <1>", GeneratedAt: fixedTime})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, token := range []string{
		"Score &lt;b&gt; &amp; more",
		"score shows &lt;script&gt;alert(1)&lt;/script&gt;",
		"expected &lt;10&gt; &amp; got &lt;/div&gt;",
		"Feature &lt;i&gt;",
		"Run &lt;1&gt;",
	} {
		if !strings.Contains(html, token) {
			t.Fatalf("expected escaped text %q", token)
		}
	}
	for _, raw := range []string{"<b>", "<script>", "got </div>", "<i>"} {
		if strings.Contains(html, raw) {
			t.Fatalf("unexpected raw markup %q in report", raw)
		}
	}
}

// TestRenderHTMLUnknownStatusClass verifies unexpected statuses do not leak into attributes.
func TestRenderHTMLUnknownStatusClass(t *testing.T) {
	doc := cucumber.RunDocument{{Elements: []cucumber.Scenario{{
		Name:  "odd",
		Steps: []cucumber.Step{step("Given ", "x", `weird" onclick="x`, 0)},
	}}}}
	html, err := RenderHTML(context.Background(), Aggregate(doc), RenderOptions{GeneratedAt: fixedTime})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, `<div class="step unknown">`) {
		t.Fatalf("expected unknown step class")
	}
	if strings.Contains(html, `onclick="x`) {
		t.Fatalf("status leaked into markup")
	}
}

// TestRenderHTMLEmptyRun verifies an empty document renders a zero pass rate.
func TestRenderHTMLEmptyRun(t *testing.T) {
	html, err := RenderHTML(context.Background(), Aggregate(cucumber.RunDocument{}), RenderOptions{GeneratedAt: fixedTime})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "0.00% Pass Rate") {
		t.Fatalf("expected 0.00%% pass rate")
	}
	if strings.Contains(html, "NaN") {
		t.Fatalf("unexpected NaN in report")
	}
	if !strings.Contains(html, "No scenarios were recorded") {
		t.Fatalf("expected empty state message")
	}
}

// TestRenderHTMLDeterministic verifies only the timestamp differs between renders.
func TestRenderHTMLDeterministic(t *testing.T) {
	result := Aggregate(exampleDocument())
	first, err := RenderHTML(context.Background(), result, RenderOptions{GeneratedAt: fixedTime})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := RenderHTML(context.Background(), Aggregate(exampleDocument()), RenderOptions{GeneratedAt: fixedTime})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical output for identical input")
	}
	later, err := RenderHTML(context.Background(), result, RenderOptions{GeneratedAt: fixedTime.Add(time.Hour)})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	stamp := formatTimestamp(fixedTime)
	laterStamp := formatTimestamp(fixedTime.Add(time.Hour))
	if strings.ReplaceAll(later, laterStamp, stamp) != first {
		t.Fatalf("expected output to differ only by timestamp")
	}
}

// TestRenderHTMLBlankTitleUsesDefault verifies a blank title falls back to the default heading.
func TestRenderHTMLBlankTitleUsesDefault(t *testing.T) {
	html, err := RenderHTML(context.Background(), Aggregate(exampleDocument()), RenderOptions{Title: "   ", GeneratedAt: fixedTime})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "<h1>"+DefaultTitle+"</h1>") {
		t.Fatalf("expected default heading")
	}
}
