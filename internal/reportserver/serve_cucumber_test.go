//go:build cucumber

package reportserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestServeReportScenarios runs the report server feature scenarios.
func TestServeReportScenarios(t *testing.T) {
	featurePath := filepath.Join("..", "..", "spec", "features", "report-serve.feature")
	suite := godog.TestSuite{
		Name:                "report-serve",
		ScenarioInitializer: InitializeServeScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeServeScenario wires steps for report server feature scenarios.
func InitializeServeScenario(ctx *godog.ScenarioContext) {
	state := &serveScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a generated report containing "([^"]+)"$`, state.givenGeneratedReport)
	ctx.Step(`^a history database file$`, state.givenHistoryDatabase)
	ctx.Step(`^I start the report server$`, state.whenIStartTheReportServer)
	ctx.Step(`^I request "([^"]+)"$`, state.whenIRequest)
	ctx.Step(`^the response status is (\d+)$`, state.thenResponseStatus)
	ctx.Step(`^the response body contains "([^"]+)"$`, state.thenResponseBodyContains)
	ctx.Step(`^the response body equals the history file bytes$`, state.thenResponseBodyEqualsHistory)
}

// serveScenarioState holds scenario state for report server feature tests.
type serveScenarioState struct {
	dir             string
	reportPath      string
	historyPath     string
	historyContents []byte
	handler         http.Handler
	response        *httptest.ResponseRecorder
}

// reset clears scenario state.
func (s *serveScenarioState) reset() {
	s.dir = ""
	s.reportPath = ""
	s.historyPath = ""
	s.historyContents = nil
	s.handler = nil
	s.response = nil
}

// cleanup removes temporary files created by the scenario.
func (s *serveScenarioState) cleanup() {
	if s.dir != "" {
		_ = os.RemoveAll(s.dir)
	}
}

// workDir lazily creates the scenario temp dir.
func (s *serveScenarioState) workDir() (string, error) {
	if s.dir != "" {
		return s.dir, nil
	}
	dir, err := os.MkdirTemp("", "snaketest-serve-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	s.dir = dir
	return dir, nil
}

// givenGeneratedReport writes a report HTML file for the scenario.
func (s *serveScenarioState) givenGeneratedReport(text string) error {
	dir, err := s.workDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, "test-report.html")
	if err := os.WriteFile(path, []byte("<html><body>"+text+"</body></html>"), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	s.reportPath = path
	return nil
}

// givenHistoryDatabase writes a placeholder history file for the scenario.
func (s *serveScenarioState) givenHistoryDatabase() error {
	dir, err := s.workDir()
	if err != nil {
		return err
	}
	content := []byte("duckdb")
	path := filepath.Join(dir, "history.duckdb")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	s.historyPath = path
	s.historyContents = content
	return nil
}

// whenIStartTheReportServer builds the report handler with the scenario config.
func (s *serveScenarioState) whenIStartTheReportServer() error {
	if s.reportPath == "" {
		return fmt.Errorf("report path is not set")
	}
	handler, err := NewHandler(Config{
		ReportPath:    s.reportPath,
		HistoryDBPath: s.historyPath,
	})
	if err != nil {
		return err
	}
	s.handler = handler
	return nil
}

// whenIRequest sends a request to the report handler.
func (s *serveScenarioState) whenIRequest(path string) error {
	if s.handler == nil {
		return fmt.Errorf("handler not initialized")
	}
	req := httptest.NewRequest(http.MethodGet, "http://example.com"+path, nil)
	recorder := httptest.NewRecorder()
	s.handler.ServeHTTP(recorder, req)
	s.response = recorder
	return nil
}

// thenResponseStatus asserts the HTTP response status code.
func (s *serveScenarioState) thenResponseStatus(expected int) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	if s.response.Code != expected {
		return fmt.Errorf("expected status %d, got %d", expected, s.response.Code)
	}
	return nil
}

// thenResponseBodyContains asserts the response body includes the given substring.
func (s *serveScenarioState) thenResponseBodyContains(snippet string) error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	if !strings.Contains(s.response.Body.String(), snippet) {
		return fmt.Errorf("expected response to contain %q", snippet)
	}
	return nil
}

// thenResponseBodyEqualsHistory asserts the response body matches the history bytes.
func (s *serveScenarioState) thenResponseBodyEqualsHistory() error {
	if s.response == nil {
		return fmt.Errorf("response not recorded")
	}
	if s.historyContents == nil {
		return fmt.Errorf("history contents not set")
	}
	if got := s.response.Body.Bytes(); string(got) != string(s.historyContents) {
		return fmt.Errorf("response body did not match history bytes")
	}
	return nil
}
