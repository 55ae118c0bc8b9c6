package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bitrise-steplib/steps-testrail-report/caselink"
	"github.com/bitrise-steplib/steps-testrail-report/gotest"
	"github.com/bitrise-steplib/steps-testrail-report/reporter"
	"github.com/bitrise-steplib/steps-testrail-report/testrail"
	"github.com/spf13/cobra"
)

var (
	flagReportResults   string
	flagReportVersion   string
	flagReportMode      string
	flagReportPlanLabel string
	flagReportLinks     string
	flagReportStrict    bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report a saved `go test -json` log to TestRail",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateReportFlags(flagReportResults, flagReportVersion, flagReportMode, flagReportPlanLabel); err != nil {
			return err
		}

		f, err := os.Open(flagReportResults)
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil {
				logger.Warnf("Failed to close %s: %s", flagReportResults, err)
			}
		}()

		events, err := gotest.Decode(f)
		if err != nil {
			return err
		}

		links, err := caselink.Load(flagReportLinks)
		if err != nil {
			return err
		}

		return withAPI(func(ctx context.Context, api testrail.API) error {
			r := reporter.NewReporter(reporter.Config{Version: flagReportVersion, RunMode: flagReportMode}, api, logger)

			state, err := r.Prepare(ctx, flagReportPlanLabel)
			if err != nil {
				return err
			}

			summary, err := gotest.NewFeeder(r, links, flagReportStrict, logger).Feed(ctx, state, events)
			if err != nil {
				return err
			}

			printSummary(os.Stdout, summary)
			return nil
		})
	},
}

func validateReportFlags(results, version, mode, planLabel string) error {
	if results == "" {
		return errors.New("--results is required")
	}
	if version == "" {
		return errors.New("--version is required")
	}
	if mode != reporter.StandaloneMode && mode != reporter.PlanMode {
		return fmt.Errorf("--mode must be %s or %s", reporter.StandaloneMode, reporter.PlanMode)
	}
	if mode == reporter.PlanMode && planLabel == "" {
		return errors.New("--plan-label is required when --mode is plan")
	}
	return nil
}

func printSummary(w io.Writer, summary gotest.Summary) {
	table := newTable(w, "TEST", "CASE", "RUN", "STATUS")
	for _, result := range summary.Reported {
		status := colorDone(result.Status)
		if result.Status == gotest.StatusFailed {
			status = colorFailed(result.Status)
		}
		table.Append([]string{result.Test, "C" + itoa(result.CaseID), "R" + itoa(result.RunID), status})
	}
	for _, test := range summary.Unlinked {
		table.Append([]string{test, "", "", colorMuted("not linked")})
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&flagReportResults, "results", "", "Path of the `go test -json` output (required)")
	reportCmd.Flags().StringVar(&flagReportVersion, "version", "", "Run label stored with every result (required)")
	reportCmd.Flags().StringVar(&flagReportMode, "mode", reporter.StandaloneMode, "Run mode: standalone or plan")
	reportCmd.Flags().StringVar(&flagReportPlanLabel, "plan-label", "", "Label of the plan created in plan mode")
	reportCmd.Flags().StringVar(&flagReportLinks, "links", "", "Case link file for tests that are not linked in code")
	reportCmd.Flags().BoolVar(&flagReportStrict, "strict", false, "Fail on tests that are not linked to a case")
}
