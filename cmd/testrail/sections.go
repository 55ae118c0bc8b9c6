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
	flagSectionsSuite      int
	flagSectionSuite       int
	flagSectionName        string
	flagSectionDescription string
	flagSectionParent      int
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Work with the sections of a suite",
}

var sectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the sections of a suite",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagSectionsSuite <= 0 {
			return errors.New("--suite is required")
		}
		return withAPI(func(ctx context.Context, api testrail.API) error {
			sections, err := api.GetSections(ctx, flagSectionsSuite)
			if err != nil {
				return err
			}
			printSections(os.Stdout, sections)
			return nil
		})
	},
}

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Add a single section",
}

var sectionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a section to a suite, optionally under a parent section",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagSectionSuite <= 0 {
			return errors.New("--suite is required")
		}
		if flagSectionName == "" {
			return errors.New("--name is required")
		}
		return withAPI(func(ctx context.Context, api testrail.API) error {
			section, err := api.AddSection(ctx, flagSectionSuite, flagSectionName, flagSectionDescription, flagSectionParent)
			if err != nil {
				return err
			}
			fmt.Println(colorDone(fmt.Sprintf("Section %d added", section.ID)))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd, sectionCmd)
	sectionsCmd.AddCommand(sectionsListCmd)
	sectionCmd.AddCommand(sectionAddCmd)

	sectionsListCmd.Flags().IntVar(&flagSectionsSuite, "suite", 0, "Suite id (required)")

	sectionAddCmd.Flags().IntVar(&flagSectionSuite, "suite", 0, "Suite id (required)")
	sectionAddCmd.Flags().StringVar(&flagSectionName, "name", "", "Section name (required)")
	sectionAddCmd.Flags().StringVar(&flagSectionDescription, "description", "", "Section description")
	sectionAddCmd.Flags().IntVar(&flagSectionParent, "parent", 0, "Parent section id")
}
