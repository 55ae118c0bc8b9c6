package reporter

import (
	"context"
	"testing"
	"time"

	"github.com/bitrise-steplib/steps-testrail-report/testrail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_GivenStandaloneMode_WhenPrepares_ThenNoAPICalls(t *testing.T) {
	// Given
	reporter, _ := createReporterAndMock(t, StandaloneMode)

	// When
	state, err := reporter.Prepare(context.Background(), "Android")

	// Then
	require.NoError(t, err)
	assert.Nil(t, state.Plan)
	assert.Nil(t, state.Milestone)
}

func Test_GivenExistingMilestone_WhenPrepares_ThenReusesItAndNumbersThePlan(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, PlanMode)
	milestone := testrail.Milestone{ID: 5, Name: "[Auto] " + testVersion}
	expectedName := "[Auto] Regression Plan [Android] " + testVersion + ", run #3"

	api.On("GetMilestones", mock.Anything).Return(map[int]testrail.Milestone{
		4: {ID: 4, Name: "[Auto] Release/2.1"},
		5: milestone,
	}, nil)
	api.On("GetPlans", mock.Anything).Return(map[int]testrail.Plan{
		1: {ID: 1, Name: "[Auto] Regression Plan [Android] " + testVersion + ", run #1"},
		2: {ID: 2, Name: "[Auto] Regression Plan [Android] " + testVersion + ", run #2"},
		3: {ID: 3, Name: "[Auto] Regression Plan [iOS] " + testVersion + ", run #7"},
	}, nil)
	api.On("AddPlan", mock.Anything, expectedName, "Automatically created 2026-10-18 09:30:00", 5).
		Return(testrail.Plan{ID: 30, Name: expectedName}, nil).Once()

	// When
	state, err := reporter.Prepare(context.Background(), "Android")

	// Then
	require.NoError(t, err)
	require.NotNil(t, state.Plan)
	assert.Equal(t, 30, state.Plan.ID)
	assert.Equal(t, 5, state.Milestone.ID)
	api.AssertNotCalled(t, "AddMilestone", mock.Anything, mock.Anything, mock.Anything)
}

func Test_GivenNoMilestone_WhenPrepares_ThenCreatesIt(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, PlanMode)

	api.On("GetMilestones", mock.Anything).Return(map[int]testrail.Milestone{}, nil)
	api.On("AddMilestone", mock.Anything, "[Auto] "+testVersion, "Created automatically by extension").
		Return(testrail.Milestone{ID: 8, Name: "[Auto] " + testVersion}, nil).Once()
	api.On("GetPlans", mock.Anything).Return(map[int]testrail.Plan{}, nil)
	api.On("AddPlan", mock.Anything, "[Auto] Regression Plan [Android] "+testVersion+", run #1", mock.Anything, 8).
		Return(testrail.Plan{ID: 31}, nil)

	// When
	state, err := reporter.Prepare(context.Background(), "Android")

	// Then
	require.NoError(t, err)
	assert.Equal(t, 8, state.Milestone.ID)
	assert.Equal(t, 31, state.Plan.ID)
}

func Test_GivenPlanMode_WhenTwoTestsOfSameSuitePass_ThenOnePlanEntryAndNoClose(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, PlanMode)
	plan := testrail.Plan{ID: 30}
	milestone := testrail.Milestone{ID: 5}
	run := testrail.Run{ID: 99, SuiteID: 12, Name: "Run suite Checkout"}

	api.On("AddPlanEntry", mock.Anything, 30, testrail.PlanEntryInput{
		SuiteID:     12,
		Name:        "Run suite Checkout",
		MilestoneID: 5,
	}).Return(run, nil).Once()
	api.On("AddResultForCase", mock.Anything, 99, 1042, mock.Anything).Return(testrail.Result{ID: 1}, nil).Twice()

	state := State{Plan: &plan, Milestone: &milestone}

	// When
	state, link, err := reporter.OnTestPassed(context.Background(), state, startedLink(), time.Second)
	require.NoError(t, err)
	_, _, err = reporter.OnTestPassed(context.Background(), state, startedLink(), time.Second)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 99, link.Run.ID)
	assert.False(t, link.Closed)
	assert.Equal(t, run, state.PlanRuns[12])
	api.AssertNumberOfCalls(t, "AddPlanEntry", 1)
	api.AssertNotCalled(t, "CloseRun", mock.Anything, mock.Anything)
	api.AssertNotCalled(t, "GetOpenRuns", mock.Anything)
}

func Test_GivenPlanModeWithoutPlan_WhenTestPasses_ThenFails(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, PlanMode)

	// When
	_, _, err := reporter.OnTestPassed(context.Background(), State{}, startedLink(), time.Second)

	// Then
	require.Error(t, err)
	api.AssertNotCalled(t, "AddResultForCase", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNextPlanNumber(t *testing.T) {
	prefix := "[Auto] Regression Plan [Android] 1.0"
	tests := []struct {
		name  string
		plans map[int]testrail.Plan
		want  int
	}{
		{name: "no plans", plans: nil, want: 1},
		{name: "other prefixes are ignored", plans: map[int]testrail.Plan{1: {Name: "Manual plan #9"}}, want: 1},
		{name: "highest number wins", plans: map[int]testrail.Plan{
			1: {Name: prefix + ", run #4"},
			2: {Name: prefix + ", run #11"},
			3: {Name: prefix + ", run #x"},
		}, want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextPlanNumber(tt.plans, prefix))
		})
	}
}
