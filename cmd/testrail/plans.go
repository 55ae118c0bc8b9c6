package main

import (
	"context"
	"os"

	"github.com/bitrise-steplib/steps-testrail-report/testrail"
	"github.com/spf13/cobra"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Work with test plans",
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the plans of the project",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAPI(func(ctx context.Context, api testrail.API) error {
			plans, err := api.GetPlans(ctx)
			if err != nil {
				return err
			}
			printPlans(os.Stdout, plans)
			return nil
		})
	},
}

var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "Work with milestones",
}

var milestonesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the milestones of the project",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAPI(func(ctx context.Context, api testrail.API) error {
			milestones, err := api.GetMilestones(ctx)
			if err != nil {
				return err
			}
			printMilestones(os.Stdout, milestones)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(plansCmd, milestonesCmd)
	plansCmd.AddCommand(plansListCmd)
	milestonesCmd.AddCommand(milestonesListCmd)
}
