package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bitrise-steplib/steps-testrail-report/testrail"
	"github.com/spf13/cobra"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Work with test runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the open run of every suite",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAPI(func(ctx context.Context, api testrail.API) error {
			bySuite, err := api.GetOpenRuns(ctx)
			if err != nil {
				return err
			}
			runs := make([]testrail.Run, 0, len(bySuite))
			for _, suiteID := range sortedIDs(bySuite) {
				runs = append(runs, bySuite[suiteID])
			}
			fmt.Fprintf(os.Stderr, "open runs: %d\n", len(runs))
			printRuns(os.Stdout, runs)
			return nil
		})
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Get or close a single run",
}

var runGetCmd = &cobra.Command{
	Use:   "get <run-id>",
	Short: "Show a run with its counters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args)
		if err != nil {
			return err
		}
		return withAPI(func(ctx context.Context, api testrail.API) error {
			run, err := api.GetRun(ctx, id)
			if err != nil {
				return err
			}
			printRuns(os.Stdout, []testrail.Run{run})
			return nil
		})
	},
}

var runCloseCmd = &cobra.Command{
	Use:   "close <run-id>",
	Short: "Close a run, it can not be edited afterwards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args)
		if err != nil {
			return err
		}
		return withAPI(func(ctx context.Context, api testrail.API) error {
			run, err := api.CloseRun(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(colorDone(fmt.Sprintf("Run R%d closed", run.ID)))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(runsCmd, runCmd)
	runsCmd.AddCommand(runsListCmd)
	runCmd.AddCommand(runGetCmd, runCloseCmd)
}
