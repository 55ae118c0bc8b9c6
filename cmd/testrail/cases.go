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
	flagCasesSuite   int
	flagCaseSection  int
	flagCaseTitle    string
	flagCaseType     int
	flagCaseFilePath string
)

var caseCmd = &cobra.Command{
	Use:   "case",
	Short: "Get or add a single test case",
}

var caseGetCmd = &cobra.Command{
	Use:   "get <case-id>",
	Short: "Show a test case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := idArg(args)
		if err != nil {
			return err
		}
		return withAPI(func(ctx context.Context, api testrail.API) error {
			tc, err := api.GetCase(ctx, id)
			if err != nil {
				return err
			}
			printCases(os.Stdout, map[int]testrail.TestCase{tc.ID: tc})
			return nil
		})
	},
}

var caseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a test case to a section",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagCaseSection <= 0 {
			return errors.New("--section is required")
		}
		if flagCaseTitle == "" {
			return errors.New("--title is required")
		}
		return withAPI(func(ctx context.Context, api testrail.API) error {
			tc, err := api.AddCase(ctx, flagCaseSection, testrail.NewCase{
				Title:    flagCaseTitle,
				TypeID:   flagCaseType,
				FilePath: flagCaseFilePath,
			})
			if err != nil {
				return err
			}
			fmt.Println(colorDone(fmt.Sprintf("Case C%d added", tc.ID)))
			return nil
		})
	},
}

var casesCmd = &cobra.Command{
	Use:   "cases",
	Short: "Work with the test cases of a suite",
}

var casesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the test cases of a suite",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagCasesSuite <= 0 {
			return errors.New("--suite is required")
		}
		return withAPI(func(ctx context.Context, api testrail.API) error {
			cases, err := api.GetCases(ctx, flagCasesSuite)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "cases: %d\n", len(cases))
			printCases(os.Stdout, cases)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(caseCmd, casesCmd)
	caseCmd.AddCommand(caseGetCmd, caseAddCmd)
	casesCmd.AddCommand(casesListCmd)

	caseAddCmd.Flags().IntVar(&flagCaseSection, "section", 0, "Section id (required)")
	caseAddCmd.Flags().StringVar(&flagCaseTitle, "title", "", "Case title (required)")
	caseAddCmd.Flags().IntVar(&flagCaseType, "type", testrail.DefaultCaseTypeID, "Case type id")
	caseAddCmd.Flags().StringVar(&flagCaseFilePath, "file", "", "Source file of the automated test")

	casesListCmd.Flags().IntVar(&flagCasesSuite, "suite", 0, "Suite id (required)")
}
