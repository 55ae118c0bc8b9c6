package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bitrise-steplib/steps-testrail-report/testrail"
	"github.com/spf13/cobra"
)

var (
	flagSuiteName        string
	flagSuiteDescription string
)

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Get or add a test suite",
}

var suiteGetCmd = &cobra.Command{
	Use:   "get <suite-id>",
	Short: "Show a suite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args)
		if err != nil {
			return err
		}
		return withAPI(func(ctx context.Context, api testrail.API) error {
			suite, err := api.GetSuite(ctx, id)
			if err != nil {
				return err
			}
			printSuite(os.Stdout, suite)
			return nil
		})
	},
}

var suiteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a suite to the project",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagSuiteName == "" {
			return errors.New("--name is required")
		}
		return withAPI(func(ctx context.Context, api testrail.API) error {
			suite, err := api.AddSuite(ctx, flagSuiteName, flagSuiteDescription)
			if err != nil {
				return err
			}
			fmt.Println(colorDone(fmt.Sprintf("Suite S%d added (%s)", suite.ID, suite.URL)))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(suiteCmd)
	suiteCmd.AddCommand(suiteGetCmd, suiteAddCmd)

	suiteAddCmd.Flags().StringVar(&flagSuiteName, "name", "", "Suite name (required)")
	suiteAddCmd.Flags().StringVar(&flagSuiteDescription, "description", "", "Suite description")
}
