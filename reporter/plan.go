package reporter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bitrise-steplib/steps-testrail-report/testrail"
)

const (
	milestonePrefix       = "[Auto] "
	milestoneDescription  = "Created automatically by extension"
	planPrefix            = "[Auto] Regression Plan "
	planDescriptionPrefix = "Automatically created "
	planRunPrefix         = "Run suite "
)

// Prepare sets up the milestone and plan results are grouped under in plan
// mode. Standalone runs need no preparation.
func (r *resultReporter) Prepare(ctx context.Context, label string) (State, error) {
	if r.config.RunMode != PlanMode {
		return State{}, nil
	}

	milestone, err := r.ensureMilestone(ctx)
	if err != nil {
		return State{}, err
	}

	plan, err := r.addPlan(ctx, label, milestone.ID)
	if err != nil {
		return State{}, err
	}

	return State{Milestone: &milestone, Plan: &plan}, nil
}

func (r *resultReporter) ensureMilestone(ctx context.Context) (testrail.Milestone, error) {
	name := milestonePrefix + r.config.Version

	milestones, err := r.api.GetMilestones(ctx)
	if err != nil {
		return testrail.Milestone{}, fmt.Errorf("failed to list milestones: %w", err)
	}
	for _, milestone := range milestones {
		if milestone.Name == name {
			r.logger.Printf("Using milestone: %s", name)
			return milestone, nil
		}
	}

	milestone, err := r.api.AddMilestone(ctx, name, milestoneDescription)
	if err != nil {
		return testrail.Milestone{}, fmt.Errorf("failed to add milestone %s: %w", name, err)
	}
	r.logger.Donef("Milestone created: %s", name)

	return milestone, nil
}

func (r *resultReporter) addPlan(ctx context.Context, label string, milestoneID int) (testrail.Plan, error) {
	plans, err := r.api.GetPlans(ctx)
	if err != nil {
		return testrail.Plan{}, fmt.Errorf("failed to list plans: %w", err)
	}

	prefix := planPrefix + "[" + label + "] " + r.config.Version
	name := fmt.Sprintf("%s, run #%d", prefix, nextPlanNumber(plans, prefix))
	description := planDescriptionPrefix + r.clock().Format("2006-01-02 15:04:05")

	plan, err := r.api.AddPlan(ctx, name, description, milestoneID)
	if err != nil {
		return testrail.Plan{}, fmt.Errorf("failed to add plan %s: %w", name, err)
	}
	r.logger.Donef("Plan created: %s (%s)", name, plan.URL)

	return plan, nil
}

func (r *resultReporter) ensurePlanRun(ctx context.Context, state State, suite testrail.Suite) (State, testrail.Run, error) {
	if run, ok := state.PlanRuns[suite.ID]; ok {
		return state, run, nil
	}
	if state.Plan == nil {
		return state, testrail.Run{}, fmt.Errorf("no plan prepared for suite %s", suite.Name)
	}

	var milestoneID int
	if state.Milestone != nil {
		milestoneID = state.Milestone.ID
	}

	run, err := r.api.AddPlanEntry(ctx, state.Plan.ID, testrail.PlanEntryInput{
		SuiteID:     suite.ID,
		Name:        planRunPrefix + suite.Name,
		MilestoneID: milestoneID,
	})
	if err != nil {
		return state, testrail.Run{}, fmt.Errorf("failed to add suite S%d to plan %d: %w", suite.ID, state.Plan.ID, err)
	}
	r.logger.Donef("Run R%d added to plan %d", run.ID, state.Plan.ID)

	return state.withPlanRun(run), run, nil
}

// nextPlanNumber is one more than the highest "#N" postfix among the plans
// whose name starts with prefix.
func nextPlanNumber(plans map[int]testrail.Plan, prefix string) int {
	highest := 0
	for _, plan := range plans {
		if !strings.HasPrefix(plan.Name, prefix) {
			continue
		}
		idx := strings.LastIndex(plan.Name, "#")
		if idx < 0 {
			continue
		}
		n, err := strconv.Atoi(plan.Name[idx+1:])
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1
}
