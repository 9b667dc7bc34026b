//go:build cucumber

package cucumber

import (
	"bytes"
	"context"
	"os"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for the reporter CLI features.
type featureState struct {
	workDir    string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a run document:$`, state.aRunDocument)
	ctx.Step(`^no run document exists$`, state.noRunDocumentExists)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the output contains "([^"]*)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]*)"$`, state.theErrorOutputContains)
	ctx.Step(`^the report contains "([^"]*)"$`, state.theReportContains)
	ctx.Step(`^the report does not contain "([^"]*)"$`, state.theReportDoesNotContain)
	ctx.Step(`^no report is written$`, state.noReportIsWritten)
}

// reset creates a fresh working directory and enters it.
func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	dir, err := os.MkdirTemp("", "snaketest-feature-*")
	if err != nil {
		return err
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	s.workDir = dir
	s.previousWD = wd
	return os.Chdir(dir)
}

// cleanup restores the working directory and removes temporary files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}
