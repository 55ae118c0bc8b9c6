package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/errorutil"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-testrail-report/gotest"
	"github.com/bitrise-steplib/steps-testrail-report/output"
	"github.com/bitrise-steplib/steps-testrail-report/step"
	"github.com/bitrise-steplib/steps-testrail-report/testrail"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()
	envRepository := env.NewRepository()
	commandFactory := command.NewFactory(envRepository)

	configParser := createConfigParser(logger, envRepository, commandFactory)
	config, err := configParser.ProcessConfig()
	if err != nil {
		logger.Errorf("%s", errorutil.FormattedError(fmt.Errorf("Failed to process Step inputs: %w", err)))
		return 1
	}

	testRailReporter := createTestRailReporter(logger, envRepository, commandFactory)
	result, runErr := testRailReporter.Run(context.Background(), config)

	if !config.Enabled {
		return 0
	}

	if err := testRailReporter.Export(result, runErr != nil); err != nil {
		logger.Warnf("Failed to export outputs: %s", err)
	}

	if runErr != nil {
		logger.Errorf("%s", errorutil.FormattedError(fmt.Errorf("Failed to report test results: %w", runErr)))
		return 1
	}

	if result.TestsFailed {
		logger.Errorf("%s", errorutil.FormattedError(errors.New("Go tests failed, the results are reported to TestRail")))
		return 1
	}

	return 0
}

func createConfigParser(logger log.Logger, envRepository env.Repository, commandFactory command.Factory) step.ConfigParser {
	inputParser := stepconf.NewInputParser(envRepository)
	versionChecker := gotest.NewVersionChecker(logger, commandFactory)
	pathModifier := pathutil.NewPathModifier()

	return step.NewConfigParser(inputParser, logger, versionChecker, pathModifier)
}

func createTestRailReporter(logger log.Logger, envRepository env.Repository, commandFactory command.Factory) step.TestRailReporter {
	goTestRunner := gotest.NewRunner(logger, commandFactory)
	apiFactory := func(config testrail.Config) testrail.API {
		return testrail.NewClient(config, testrail.NewHTTPClient(logger), logger)
	}
	outputExporter := output.NewExporter(envRepository, logger, export.NewExporter(commandFactory, export.NewFileManager()), pathutil.NewPathProvider(), fileutil.NewFileManager())

	return step.NewTestRailReporter(logger, goTestRunner, apiFactory, outputExporter)
}
