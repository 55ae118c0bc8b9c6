package reporter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-report/testrail"
)

// Metadata parameter names a test carries to link itself to TestRail.
const (
	SuiteIDParam = "testSuiteId"
	CaseIDParam  = "testCaseId"
)

const maxTraceLength = 512

// Run modes ...
const (
	StandaloneMode = "standalone"
	PlanMode       = "plan"
)

// Test is what the host runner knows about a test when it starts.
type Test struct {
	Name   string
	Params map[string][]string
}

// Failure ...
type Failure struct {
	Message string
	File    string
	Line    int
	Trace   string
}

// Linkage ties a test to its TestRail suite, case and run. It is returned by
// every lifecycle call and handed back on the next one.
type Linkage struct {
	Suite  testrail.Suite
	Case   testrail.TestCase
	Run    *testrail.Run
	Closed bool
}

// State carries what outlives a single test: the milestone and plan of a plan
// mode session and the runs already added to that plan.
type State struct {
	Milestone *testrail.Milestone
	Plan      *testrail.Plan
	PlanRuns  map[int]testrail.Run
}

func (s State) withPlanRun(run testrail.Run) State {
	runs := make(map[int]testrail.Run, len(s.PlanRuns)+1)
	for suiteID, r := range s.PlanRuns {
		runs[suiteID] = r
	}
	runs[run.SuiteID] = run
	s.PlanRuns = runs
	return s
}

// Reporter reacts to the lifecycle of a single test. Prepare is called once
// before the first test.
type Reporter interface {
	Prepare(ctx context.Context, label string) (State, error)
	OnTestStart(ctx context.Context, state State, test Test) (Linkage, error)
	OnTestPassed(ctx context.Context, state State, link Linkage, elapsed time.Duration) (State, Linkage, error)
	OnTestFailed(ctx context.Context, state State, link Linkage, elapsed time.Duration, failure Failure) (State, Linkage, error)
}

// Config ...
type Config struct {
	// Version labels every reported result, e.g. "Release/2.2".
	Version string
	RunMode string
}

type resultReporter struct {
	config Config
	api    testrail.API
	logger log.Logger
	clock  func() time.Time
}

// NewReporter ...
func NewReporter(config Config, api testrail.API, logger log.Logger) Reporter {
	if config.RunMode == "" {
		config.RunMode = StandaloneMode
	}
	return &resultReporter{
		config: config,
		api:    api,
		logger: logger,
		clock:  time.Now,
	}
}

// OnTestStart resolves the suite and the case the test is linked to.
func (r *resultReporter) OnTestStart(ctx context.Context, _ State, test Test) (Linkage, error) {
	caseID, ok := intParam(test.Params, CaseIDParam)
	if !ok {
		return Linkage{}, &MissingLinkageError{Test: test.Name}
	}

	tc, err := r.api.GetCase(ctx, caseID)
	if err != nil {
		return Linkage{}, fmt.Errorf("failed to get case C%d: %w", caseID, err)
	}

	suiteID, ok := intParam(test.Params, SuiteIDParam)
	if !ok {
		suiteID = tc.SuiteID
	}

	suite, err := r.api.GetSuite(ctx, suiteID)
	if err != nil {
		return Linkage{}, fmt.Errorf("failed to get suite S%d: %w", suiteID, err)
	}

	if tc.Title == "" {
		return Linkage{}, &MissingLinkageError{Test: test.Name, Suite: suite.Name}
	}

	r.logger.Debugf("%s -> S%d %s / C%d %s", test.Name, suite.ID, suite.Name, tc.ID, tc.Title)

	return Linkage{Suite: suite, Case: tc}, nil
}

func (r *resultReporter) OnTestPassed(ctx context.Context, state State, link Linkage, elapsed time.Duration) (State, Linkage, error) {
	return r.report(ctx, state, link, testrail.StatusPassed, "", elapsed)
}

func (r *resultReporter) OnTestFailed(ctx context.Context, state State, link Linkage, elapsed time.Duration, failure Failure) (State, Linkage, error) {
	return r.report(ctx, state, link, testrail.StatusFailed, failureComment(failure), elapsed)
}

func (r *resultReporter) report(ctx context.Context, state State, link Linkage, statusID int, comment string, elapsed time.Duration) (State, Linkage, error) {
	state, run, err := r.ensureRun(ctx, state, link.Suite)
	if err != nil {
		return state, link, err
	}
	link.Run = &run

	if _, err := r.api.AddResultForCase(ctx, run.ID, link.Case.ID, testrail.ResultInput{
		StatusID: statusID,
		Comment:  comment,
		Version:  r.config.Version,
		Elapsed:  FormatElapsed(ElapsedSeconds(elapsed)),
	}); err != nil {
		return state, link, fmt.Errorf("failed to add result for case C%d in run R%d: %w", link.Case.ID, run.ID, err)
	}

	if r.config.RunMode == PlanMode {
		return state, link, nil
	}

	closed, err := r.closeRunIfDone(ctx, run.ID, link.Suite.ID)
	if err != nil {
		return state, link, err
	}
	link.Closed = closed

	return state, link, nil
}

// ensureRun returns the run the result goes to, creating it when the suite has
// no open run yet.
func (r *resultReporter) ensureRun(ctx context.Context, state State, suite testrail.Suite) (State, testrail.Run, error) {
	if r.config.RunMode == PlanMode {
		return r.ensurePlanRun(ctx, state, suite)
	}

	runs, err := r.api.GetOpenRuns(ctx)
	if err != nil {
		return state, testrail.Run{}, fmt.Errorf("failed to list open runs: %w", err)
	}

	if run, ok := runs[suite.ID]; ok && !run.IsCompleted {
		return state, run, nil
	}

	r.logger.Printf("Creating run for suite: %s", suite.Name)
	run, err := r.api.AddRun(ctx, suite.ID, suite.Name, "")
	if err != nil {
		return state, testrail.Run{}, fmt.Errorf("failed to add run for suite S%d: %w", suite.ID, err)
	}
	r.logger.Donef("Run R%d created (%s)", run.ID, run.URL)

	return state, run, nil
}

// closeRunIfDone closes the run once its passed or failed count, or their sum,
// reaches the number of cases in the suite.
func (r *resultReporter) closeRunIfDone(ctx context.Context, runID, suiteID int) (bool, error) {
	run, err := r.api.GetRun(ctx, runID)
	if err != nil {
		return false, fmt.Errorf("failed to get run R%d: %w", runID, err)
	}

	cases, err := r.api.GetCases(ctx, suiteID)
	if err != nil {
		return false, fmt.Errorf("failed to list cases of suite S%d: %w", suiteID, err)
	}

	total := len(cases)
	if run.PassedCount != total && run.FailedCount != total && run.PassedCount+run.FailedCount != total {
		return false, nil
	}

	if _, err := r.api.CloseRun(ctx, runID); err != nil {
		return false, fmt.Errorf("failed to close run R%d: %w", runID, err)
	}
	r.logger.Donef("Run R%d closed: %d passed, %d failed of %d cases", runID, run.PassedCount, run.FailedCount, total)

	return true, nil
}

func failureComment(failure Failure) string {
	trace := []rune(failure.Trace)
	if len(trace) > maxTraceLength {
		trace = trace[:maxTraceLength]
	}
	if failure.File == "" {
		return fmt.Sprintf("%s\n%s", failure.Message, string(trace))
	}
	return fmt.Sprintf("%s\n%s: %d\n%s", failure.Message, failure.File, failure.Line, string(trace))
}

func intParam(p map[string][]string, key string) (int, bool) {
	values := p[key]
	if len(values) == 0 {
		return 0, false
	}
	id, err := strconv.Atoi(values[0])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
