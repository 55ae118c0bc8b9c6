package output

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-testrail-report/gotest"
)

// Output keys
const (
	ReportStatusKey    = "TESTRAIL_REPORT_STATUS"
	RunIDsKey          = "TESTRAIL_RUN_IDS"
	ReportedResultsKey = "TESTRAIL_REPORTED_RESULTS"
	GoTestLogPathKey   = "TESTRAIL_GO_TEST_LOG_PATH"

	reportedResultsSizeLimitInBytes = 1024
	goTestLogFileName               = "go_test.json.log"
)

// Exporter ...
type Exporter interface {
	ExportReportStatus(failed bool)
	ExportRunIDs(runIDs []int)
	ExportReportedResults(results []gotest.ReportedResult) error
	ExportGoTestLog(deployDir, rawLog string) error
}

type exporter struct {
	envRepository  env.Repository
	logger         log.Logger
	outputExporter export.Exporter
	pathProvider   pathutil.PathProvider
	fileManager    fileutil.FileManager
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, outputExporter export.Exporter, pathProvider pathutil.PathProvider, fileManager fileutil.FileManager) Exporter {
	return &exporter{
		envRepository:  envRepository,
		logger:         logger,
		outputExporter: outputExporter,
		pathProvider:   pathProvider,
		fileManager:    fileManager,
	}
}

func (e exporter) ExportReportStatus(failed bool) {
	status := "succeeded"
	if failed {
		status = "failed"
	}
	if err := e.envRepository.Set(ReportStatusKey, status); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", ReportStatusKey, err)
	}
}

func (e exporter) ExportRunIDs(runIDs []int) {
	ids := make([]string, 0, len(runIDs))
	for _, id := range runIDs {
		ids = append(ids, strconv.Itoa(id))
	}
	if err := e.envRepository.Set(RunIDsKey, strings.Join(ids, ",")); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", RunIDsKey, err)
	}
}

// ExportReportedResults exports one line per reported test. Test names come
// from the tested code, so the value is not expanded by envman.
func (e exporter) ExportReportedResults(results []gotest.ReportedResult) error {
	if len(results) == 0 {
		return nil
	}

	var message string
	for i, result := range results {
		line := fmt.Sprintf("- %s: C%d %s", result.Test, result.CaseID, result.Status)
		if result.RunID != 0 {
			line += fmt.Sprintf(" (R%d)", result.RunID)
		}
		line += "\n"

		if len(message)+len(line) > reportedResultsSizeLimitInBytes {
			e.logger.Warnf("%s env var size limit (%d characters) exceeded. Skipping %d results.", ReportedResultsKey, reportedResultsSizeLimitInBytes, len(results)-i)
			break
		}
		message += line
	}

	if err := e.outputExporter.ExportOutputNoExpand(ReportedResultsKey, message); err != nil {
		return fmt.Errorf("failed to export %s: %w", ReportedResultsKey, err)
	}
	return nil
}

// ExportGoTestLog saves the raw `go test -json` output and copies it into the
// deploy dir.
func (e exporter) ExportGoTestLog(deployDir, rawLog string) error {
	tmpDir, err := e.pathProvider.CreateTempDir("go-test-output")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}

	pth := filepath.Join(tmpDir, goTestLogFileName)
	if err := e.fileManager.Write(pth, rawLog, 0644); err != nil {
		return fmt.Errorf("failed to write go test output to file: %w", err)
	}

	deployPth := filepath.Join(deployDir, goTestLogFileName)
	if err := e.outputExporter.ExportOutputFile(GoTestLogPathKey, pth, deployPth); err != nil {
		return fmt.Errorf("failed to export go test log from (%s) to (%s): %w", pth, deployPth, err)
	}

	return nil
}
