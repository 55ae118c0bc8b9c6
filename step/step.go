package step

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-testrail-report/caselink"
	"github.com/bitrise-steplib/steps-testrail-report/gotest"
	"github.com/bitrise-steplib/steps-testrail-report/output"
	"github.com/bitrise-steplib/steps-testrail-report/reporter"
	"github.com/bitrise-steplib/steps-testrail-report/testrail"
)

// Input ...
type Input struct {
	// Run label, an empty value disables the step
	Version string `env:"version"`

	// TestRail
	TestRailURL string          `env:"testrail_url"`
	Username    string          `env:"username"`
	Password    stepconf.Secret `env:"password"`
	ProjectID   int             `env:"project_id"`

	RunMode   string `env:"run_mode,opt[standalone,plan]"`
	PlanLabel string `env:"plan_label"`

	// Test results
	TestResultsPath string `env:"test_results_path"`
	Packages        string `env:"packages"`
	GoTestFlags     string `env:"go_test_flags"`
	WorkingDir      string `env:"working_dir"`

	// Linking
	CaseLinksPath     string `env:"case_links_path"`
	FailOnMissingLink bool   `env:"fail_on_missing_link,opt[yes,no]"`

	// Debug
	Verbose bool `env:"verbose,opt[yes,no]"`

	// Output export
	DeployDir string `env:"BITRISE_DEPLOY_DIR"`
}

// Config ...
type Config struct {
	Enabled bool

	TestRail  testrail.Config
	Reporter  reporter.Config
	PlanLabel string

	TestResultsPath string
	Packages        []string
	GoTestFlags     string
	WorkingDir      string

	CaseLinks         caselink.Links
	FailOnMissingLink bool

	DeployDir   string
}

// Result ...
type Result struct {
	DeployDir   string
	// GoTestLog is only set when the step ran go test itself.
	GoTestLog   string
	TestsFailed bool
	Summary     gotest.Summary
}

// ConfigParser ...
type ConfigParser struct {
	inputParser    stepconf.InputParser
	logger         log.Logger
	versionChecker gotest.VersionChecker
	pathModifier   pathutil.PathModifier
}

// NewConfigParser ...
func NewConfigParser(inputParser stepconf.InputParser, logger log.Logger, versionChecker gotest.VersionChecker, pathModifier pathutil.PathModifier) ConfigParser {
	return ConfigParser{
		inputParser:    inputParser,
		logger:         logger,
		versionChecker: versionChecker,
		pathModifier:   pathModifier,
	}
}

// ProcessConfig ...
func (p ConfigParser) ProcessConfig() (Config, error) {
	var input Input
	if err := p.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	p.logger.Println()

	p.logger.EnableDebugLog(input.Verbose)

	if strings.TrimSpace(input.Version) == "" {
		return Config{}, nil
	}

	if err := validateTestRailInputs(input); err != nil {
		return Config{}, err
	}

	runMode := input.RunMode
	if runMode == "" {
		runMode = reporter.StandaloneMode
	}
	if runMode == reporter.PlanMode && input.PlanLabel == "" {
		return Config{}, errors.New("plan_label is required when run_mode is plan")
	}

	config := Config{
		Enabled: true,
		TestRail: testrail.Config{
			URL:       input.TestRailURL,
			Username:  input.Username,
			Password:  string(input.Password),
			ProjectID: input.ProjectID,
		},
		Reporter: reporter.Config{
			Version: input.Version,
			RunMode: runMode,
		},
		PlanLabel:         input.PlanLabel,
		GoTestFlags:       input.GoTestFlags,
		Packages:          strings.Fields(input.Packages),
		FailOnMissingLink: input.FailOnMissingLink,
		DeployDir:         input.DeployDir,
	}

	if input.TestResultsPath != "" {
		pth, err := p.pathModifier.AbsPath(input.TestResultsPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to expand test results path (%s): %w", input.TestResultsPath, err)
		}
		config.TestResultsPath = pth
	} else {
		if _, err := p.versionChecker.CheckVersion(); err != nil {
			return Config{}, err
		}

		if input.WorkingDir != "" {
			dir, err := p.pathModifier.AbsPath(input.WorkingDir)
			if err != nil {
				return Config{}, fmt.Errorf("failed to expand working dir (%s): %w", input.WorkingDir, err)
			}
			config.WorkingDir = dir
		}
	}

	links, err := caselink.Load(input.CaseLinksPath)
	if err != nil {
		return Config{}, err
	}
	if links.Len() > 0 {
		p.logger.Printf("%d test(s) linked by %s", links.Len(), input.CaseLinksPath)
	}
	config.CaseLinks = links

	return config, nil
}

func validateTestRailInputs(input Input) error {
	if input.TestRailURL == "" {
		return errors.New("testrail_url is required")
	}
	u, err := url.Parse(input.TestRailURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("testrail_url (%s) is not a valid http(s) URL", input.TestRailURL)
	}
	if input.Username == "" {
		return errors.New("username is required")
	}
	if input.Password == "" {
		return errors.New("password is required")
	}
	if input.ProjectID <= 0 {
		return fmt.Errorf("project_id must be a positive number, got: %d", input.ProjectID)
	}
	return nil
}

// APIFactory creates the TestRail client of a configured run.
type APIFactory func(config testrail.Config) testrail.API

// TestRailReporter ...
type TestRailReporter struct {
	logger         log.Logger
	goTestRunner   gotest.Runner
	apiFactory     APIFactory
	outputExporter output.Exporter
}

// NewTestRailReporter ...
func NewTestRailReporter(logger log.Logger, goTestRunner gotest.Runner, apiFactory APIFactory, outputExporter output.Exporter) TestRailReporter {
	return TestRailReporter{
		logger:         logger,
		goTestRunner:   goTestRunner,
		apiFactory:     apiFactory,
		outputExporter: outputExporter,
	}
}

// Run collects the go test events and reports them to TestRail.
func (s TestRailReporter) Run(ctx context.Context, config Config) (Result, error) {
	result := Result{DeployDir: config.DeployDir}

	if !config.Enabled {
		s.logger.Warnf("Version is not specified. TestRail integration is skipped")
		return result, nil
	}

	rawLog, testsFailed, err := s.collectEvents(config)
	if config.TestResultsPath == "" {
		result.GoTestLog = rawLog
	}
	result.TestsFailed = testsFailed
	if err != nil {
		return result, err
	}

	events, err := gotest.Decode(strings.NewReader(rawLog))
	if err != nil {
		return result, fmt.Errorf("failed to decode go test output: %w", err)
	}
	s.logger.Debugf("%d go test event(s) decoded", len(events))

	if testsFailed {
		printLastLinesOfGoTestOutput(s.logger, events)
	}

	r := reporter.NewReporter(config.Reporter, s.apiFactory(config.TestRail), s.logger)

	s.logger.Println()
	s.logger.Infof("Reporting results to TestRail")

	state, err := r.Prepare(ctx, config.PlanLabel)
	if err != nil {
		return result, fmt.Errorf("failed to prepare %s run: %w", config.Reporter.RunMode, err)
	}

	feeder := gotest.NewFeeder(r, config.CaseLinks, config.FailOnMissingLink, s.logger)
	summary, err := feeder.Feed(ctx, state, events)
	result.Summary = summary
	if err != nil {
		return result, err
	}

	s.logger.Println()
	s.logger.Donef("%d result(s) reported: %d passed, %d failed, %d skipped, %d not linked",
		len(summary.Reported), summary.Passed, summary.Failed, summary.Skipped, len(summary.Unlinked))
	for _, runID := range summary.ClosedRunIDs {
		s.logger.Printf("- run R%d is closed", runID)
	}

	return result, nil
}

func (s TestRailReporter) collectEvents(config Config) (string, bool, error) {
	if config.TestResultsPath != "" {
		s.logger.Println()
		s.logger.Infof("Reading go test results from %s", config.TestResultsPath)

		content, err := fileutil.ReadStringFromFile(config.TestResultsPath)
		if err != nil {
			return "", false, fmt.Errorf("failed to read test results: %w", err)
		}
		return content, false, nil
	}

	s.logger.Println()
	s.logger.Infof("Running go test")

	out, err := s.goTestRunner.Run(config.WorkingDir, config.Packages, config.GoTestFlags)
	if err != nil {
		return string(out.RawOut), false, err
	}
	return string(out.RawOut), out.TestsFailed(), nil
}

// Export ...
func (s TestRailReporter) Export(result Result, failed bool) error {
	s.outputExporter.ExportReportStatus(failed)
	s.outputExporter.ExportRunIDs(result.Summary.RunIDs)

	var errs []error
	if err := s.outputExporter.ExportReportedResults(result.Summary.Reported); err != nil {
		errs = append(errs, err)
	}

	if result.GoTestLog != "" && result.DeployDir != "" {
		if err := s.outputExporter.ExportGoTestLog(result.DeployDir, result.GoTestLog); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
