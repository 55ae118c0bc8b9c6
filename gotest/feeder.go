package gotest

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-report/caselink"
	"github.com/bitrise-steplib/steps-testrail-report/reporter"
)

// Result statuses of a reported test.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// ReportedResult is a test whose result made it to TestRail.
type ReportedResult struct {
	Test   string
	Status string
	CaseID int
	RunID  int
}

// Summary ...
type Summary struct {
	Reported []ReportedResult
	Passed   int
	Failed   int
	Skipped  int
	Unlinked []string

	RunIDs       []int
	ClosedRunIDs []int

	State reporter.State
}

// HasFailures reports whether any of the go tests failed, reported or not.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

func (s *Summary) addRun(runID int, closed bool) {
	if !slices.Contains(s.RunIDs, runID) {
		s.RunIDs = append(s.RunIDs, runID)
	}
	if closed && !slices.Contains(s.ClosedRunIDs, runID) {
		s.ClosedRunIDs = append(s.ClosedRunIDs, runID)
	}
}

// Feeder replays `go test -json` events into a reporter.Reporter.
type Feeder struct {
	reporter          reporter.Reporter
	links             caselink.Links
	failOnMissingLink bool
	logger            log.Logger
}

// NewFeeder ...
func NewFeeder(r reporter.Reporter, links caselink.Links, failOnMissingLink bool, logger log.Logger) Feeder {
	return Feeder{
		reporter:          r,
		links:             links,
		failOnMissingLink: failOnMissingLink,
		logger:            logger,
	}
}

// Feed walks the events in order and reports every finished test. Output is
// buffered per test until its terminal pass or fail event arrives. Skipped
// tests and package level events are not reported.
func (f Feeder) Feed(ctx context.Context, state reporter.State, events []Event) (Summary, error) {
	summary := Summary{State: state}
	outputs := map[string][]string{}

	for _, event := range events {
		if event.Test == "" {
			continue
		}

		switch event.Action {
		case ActionOutput:
			if isFramingLine(event.Output) {
				continue
			}
			outputs[event.Key()] = append(outputs[event.Key()], event.Output)
		case ActionSkip:
			summary.Skipped++
			delete(outputs, event.Key())
		case ActionPass, ActionFail:
			output := outputs[event.Key()]
			delete(outputs, event.Key())

			if event.Action == ActionPass {
				summary.Passed++
			} else {
				summary.Failed++
			}

			if err := f.report(ctx, &summary, event, output); err != nil {
				return summary, err
			}
		}
	}

	return summary, nil
}

func (f Feeder) report(ctx context.Context, summary *Summary, event Event, output []string) error {
	test := reporter.Test{
		Name:   event.Test,
		Params: ParseParams(output),
	}
	if test.Params == nil {
		test.Params = f.links.Params(event.Package, event.Test)
	}
	f.logger.Debugf("%s: %s (%s)", event.Test, event.Action, describeParams(test.Params))

	link, err := f.reporter.OnTestStart(ctx, summary.State, test)
	if err != nil {
		var linkErr *reporter.MissingLinkageError
		if errors.As(err, &linkErr) && !f.failOnMissingLink {
			f.logger.Warnf("Skipping %s: %s", event.Test, err)
			summary.Unlinked = append(summary.Unlinked, event.Test)
			return nil
		}
		return err
	}

	status := StatusPassed
	if event.Action == ActionPass {
		summary.State, link, err = f.reporter.OnTestPassed(ctx, summary.State, link, event.Duration())
	} else {
		status = StatusFailed
		summary.State, link, err = f.reporter.OnTestFailed(ctx, summary.State, link, event.Duration(), ParseFailure(output))
	}
	if err != nil {
		return fmt.Errorf("failed to report %s: %w", event.Test, err)
	}

	result := ReportedResult{Test: event.Test, Status: status, CaseID: link.Case.ID}
	if link.Run != nil {
		result.RunID = link.Run.ID
		summary.addRun(link.Run.ID, link.Closed)
	}
	summary.Reported = append(summary.Reported, result)
	f.logger.Printf("- %s -> C%d: %s", event.Test, link.Case.ID, status)

	return nil
}

// isFramingLine matches the lines go test prints around a test, they are not
// part of what the test itself logged.
func isFramingLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"=== RUN", "=== PAUSE", "=== CONT", "=== NAME", "--- PASS", "--- FAIL", "--- SKIP"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
