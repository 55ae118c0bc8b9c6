package reporter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-report/reporter/mocks"
	"github.com/bitrise-steplib/steps-testrail-report/testrail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testVersion = "Release/2.2"

var (
	checkoutSuite = testrail.Suite{ID: 12, Name: "Checkout"}
	checkoutCase  = testrail.TestCase{ID: 1042, Title: "Checkout with saved card", SuiteID: 12}
)

func Test_GivenLinkedTest_WhenStarts_ThenResolvesSuiteAndCase(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, StandaloneMode)
	api.On("GetCase", mock.Anything, 1042).Return(checkoutCase, nil)
	api.On("GetSuite", mock.Anything, 12).Return(checkoutSuite, nil)

	// When
	link, err := reporter.OnTestStart(context.Background(), State{}, linkedTest())

	// Then
	require.NoError(t, err)
	assert.Equal(t, checkoutSuite, link.Suite)
	assert.Equal(t, checkoutCase, link.Case)
	assert.Nil(t, link.Run)
}

func Test_GivenTestWithoutCaseID_WhenStarts_ThenReturnsMissingLinkage(t *testing.T) {
	tests := []struct {
		name   string
		params map[string][]string
	}{
		{name: "no params", params: nil},
		{name: "empty case id list", params: map[string][]string{CaseIDParam: {}}},
		{name: "non numeric case id", params: map[string][]string{CaseIDParam: {"C12"}}},
		{name: "zero case id", params: map[string][]string{CaseIDParam: {"0"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			reporter, api := createReporterAndMock(t, StandaloneMode)

			// When
			_, err := reporter.OnTestStart(context.Background(), State{}, Test{Name: "TestCheckout", Params: tt.params})

			// Then
			var linkErr *MissingLinkageError
			require.True(t, errors.As(err, &linkErr))
			assert.Equal(t, "TestCheckout", linkErr.Test)
			api.AssertNotCalled(t, "GetCase", mock.Anything, mock.Anything)
		})
	}
}

func Test_GivenCaseWithoutTitle_WhenStarts_ThenMissingLinkageNamesTheSuite(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, StandaloneMode)
	api.On("GetCase", mock.Anything, 1042).Return(testrail.TestCase{ID: 1042, SuiteID: 12}, nil)
	api.On("GetSuite", mock.Anything, 12).Return(checkoutSuite, nil)

	// When
	_, err := reporter.OnTestStart(context.Background(), State{}, linkedTest())

	// Then
	var linkErr *MissingLinkageError
	require.True(t, errors.As(err, &linkErr))
	assert.Equal(t, "Checkout", linkErr.Suite)
	assert.Contains(t, err.Error(), "Checkout suite")
}

func Test_GivenNoSuiteParam_WhenStarts_ThenUsesTheCasesSuite(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, StandaloneMode)
	api.On("GetCase", mock.Anything, 1042).Return(checkoutCase, nil)
	api.On("GetSuite", mock.Anything, 12).Return(checkoutSuite, nil)

	// When
	link, err := reporter.OnTestStart(context.Background(), State{}, Test{
		Name:   "TestCheckout",
		Params: map[string][]string{CaseIDParam: {"1042"}},
	})

	// Then
	require.NoError(t, err)
	assert.Equal(t, 12, link.Suite.ID)
}

func Test_GivenNoOpenRunForSuite_WhenTestPasses_ThenCreatesExactlyOneRun(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, StandaloneMode)
	created := testrail.Run{ID: 81, SuiteID: 12, Name: "Checkout"}

	api.On("GetOpenRuns", mock.Anything).Return(map[int]testrail.Run{
		13: {ID: 70, SuiteID: 13, Name: "Search"},
	}, nil)
	api.On("AddRun", mock.Anything, 12, "Checkout", "").Return(created, nil).Once()
	api.On("AddResultForCase", mock.Anything, 81, 1042, mock.Anything).Return(testrail.Result{ID: 1}, nil)
	api.On("GetRun", mock.Anything, 81).Return(testrail.Run{ID: 81, SuiteID: 12, PassedCount: 1}, nil)
	api.On("GetCases", mock.Anything, 12).Return(casesOf(3), nil)

	// When
	_, link, err := reporter.OnTestPassed(context.Background(), State{}, startedLink(), time.Second)

	// Then
	require.NoError(t, err)
	require.NotNil(t, link.Run)
	assert.Equal(t, 81, link.Run.ID)
	assert.False(t, link.Closed)
	api.AssertNumberOfCalls(t, "AddRun", 1)
	api.AssertNotCalled(t, "CloseRun", mock.Anything, mock.Anything)
}

func Test_GivenOpenRunForSuite_WhenTestPasses_ThenReusesIt(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, StandaloneMode)
	open := testrail.Run{ID: 90, SuiteID: 12, Name: "Checkout"}

	api.On("GetOpenRuns", mock.Anything).Return(map[int]testrail.Run{12: open}, nil)
	api.On("AddResultForCase", mock.Anything, 90, 1042, mock.Anything).Return(testrail.Result{ID: 1}, nil)
	api.On("GetRun", mock.Anything, 90).Return(testrail.Run{ID: 90, SuiteID: 12, PassedCount: 1}, nil)
	api.On("GetCases", mock.Anything, 12).Return(casesOf(2), nil)

	// When
	_, link, err := reporter.OnTestPassed(context.Background(), State{}, startedLink(), time.Second)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 90, link.Run.ID)
	api.AssertNotCalled(t, "AddRun", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func Test_GivenRunCreatedByPreviousTest_WhenNextTestPasses_ThenNoDuplicateRun(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, StandaloneMode)
	created := testrail.Run{ID: 81, SuiteID: 12, Name: "Checkout"}

	api.On("GetOpenRuns", mock.Anything).Return(map[int]testrail.Run{}, nil).Once()
	api.On("GetOpenRuns", mock.Anything).Return(map[int]testrail.Run{12: created}, nil)
	api.On("AddRun", mock.Anything, 12, "Checkout", "").Return(created, nil).Once()
	api.On("AddResultForCase", mock.Anything, 81, mock.Anything, mock.Anything).Return(testrail.Result{ID: 1}, nil)
	api.On("GetRun", mock.Anything, 81).Return(testrail.Run{ID: 81, SuiteID: 12, PassedCount: 1}, nil)
	api.On("GetCases", mock.Anything, 12).Return(casesOf(5), nil)

	// When
	state, _, err := reporter.OnTestPassed(context.Background(), State{}, startedLink(), time.Second)
	require.NoError(t, err)
	_, _, err = reporter.OnTestPassed(context.Background(), state, startedLink(), time.Second)

	// Then
	require.NoError(t, err)
	api.AssertNumberOfCalls(t, "AddRun", 1)
}

func Test_GivenCompletedRunListed_WhenTestPasses_ThenCreatesFreshRun(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, StandaloneMode)
	completed := testrail.Run{ID: 60, SuiteID: 12, Name: "Checkout", IsCompleted: true}
	created := testrail.Run{ID: 81, SuiteID: 12, Name: "Checkout"}

	api.On("GetOpenRuns", mock.Anything).Return(map[int]testrail.Run{12: completed}, nil)
	api.On("AddRun", mock.Anything, 12, "Checkout", "").Return(created, nil).Once()
	api.On("AddResultForCase", mock.Anything, 81, 1042, mock.Anything).Return(testrail.Result{ID: 1}, nil)
	api.On("GetRun", mock.Anything, 81).Return(testrail.Run{ID: 81, PassedCount: 1}, nil)
	api.On("GetCases", mock.Anything, 12).Return(casesOf(4), nil)

	// When
	_, link, err := reporter.OnTestPassed(context.Background(), State{}, startedLink(), time.Second)

	// Then
	require.NoError(t, err)
	assert.Equal(t, 81, link.Run.ID)
	api.AssertNotCalled(t, "AddResultForCase", mock.Anything, 60, mock.Anything, mock.Anything)
}

func Test_GivenPassedPlusFailedEqualsTotal_WhenResultRecorded_ThenClosesRunOnce(t *testing.T) {
	tests := []struct {
		name     string
		run      testrail.Run
		total    int
		closeRun bool
	}{
		{name: "passed plus failed equals total", run: testrail.Run{PassedCount: 2, FailedCount: 1}, total: 3, closeRun: true},
		{name: "all passed", run: testrail.Run{PassedCount: 3}, total: 3, closeRun: true},
		{name: "all failed", run: testrail.Run{FailedCount: 3}, total: 3, closeRun: true},
		{name: "untested left", run: testrail.Run{PassedCount: 1, FailedCount: 1, UntestedCount: 1}, total: 3, closeRun: false},
		{name: "blocked left", run: testrail.Run{PassedCount: 2, BlockedCount: 1}, total: 3, closeRun: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			reporter, api := createReporterAndMock(t, StandaloneMode)
			open := testrail.Run{ID: 90, SuiteID: 12, Name: "Checkout"}
			refreshed := tt.run
			refreshed.ID = 90

			api.On("GetOpenRuns", mock.Anything).Return(map[int]testrail.Run{12: open}, nil)
			api.On("AddResultForCase", mock.Anything, 90, 1042, mock.Anything).Return(testrail.Result{ID: 1}, nil)
			api.On("GetRun", mock.Anything, 90).Return(refreshed, nil)
			api.On("GetCases", mock.Anything, 12).Return(casesOf(tt.total), nil)
			if tt.closeRun {
				api.On("CloseRun", mock.Anything, 90).Return(testrail.Run{ID: 90, IsCompleted: true}, nil).Once()
			}

			// When
			_, link, err := reporter.OnTestPassed(context.Background(), State{}, startedLink(), time.Second)

			// Then
			require.NoError(t, err)
			assert.Equal(t, tt.closeRun, link.Closed)
			if tt.closeRun {
				api.AssertNumberOfCalls(t, "CloseRun", 1)
			} else {
				api.AssertNotCalled(t, "CloseRun", mock.Anything, mock.Anything)
			}
		})
	}
}

func Test_GivenPassedTest_WhenReported_ThenSendsStatusPassedWithoutComment(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, StandaloneMode)
	expected := testrail.ResultInput{
		StatusID: testrail.StatusPassed,
		Comment:  "",
		Version:  testVersion,
		Elapsed:  "0h 0m 2s",
	}

	expectOpenRun(api)
	api.On("AddResultForCase", mock.Anything, 90, 1042, expected).Return(testrail.Result{ID: 1}, nil).Once()

	// When
	_, _, err := reporter.OnTestPassed(context.Background(), State{}, startedLink(), 1200*time.Millisecond)

	// Then
	require.NoError(t, err)
	api.AssertCalled(t, "AddResultForCase", mock.Anything, 90, 1042, expected)
}

func Test_GivenFailedTest_WhenReported_ThenSendsStatusFailedWithTruncatedTrace(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, StandaloneMode)
	failure := Failure{
		Message: "expected 200, got 500",
		File:    "checkout_test.go",
		Line:    42,
		Trace:   strings.Repeat("x", 2000),
	}

	var sent testrail.ResultInput
	expectOpenRun(api)
	api.On("AddResultForCase", mock.Anything, 90, 1042, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(3).(testrail.ResultInput) }).
		Return(testrail.Result{ID: 1}, nil).Once()

	// When
	_, _, err := reporter.OnTestFailed(context.Background(), State{}, startedLink(), 3661*time.Second, failure)

	// Then
	require.NoError(t, err)
	assert.Equal(t, testrail.StatusFailed, sent.StatusID)
	assert.Equal(t, "1h 1m 1s", sent.Elapsed)
	assert.True(t, strings.HasPrefix(sent.Comment, "expected 200, got 500\ncheckout_test.go: 42\n"))

	trace := strings.TrimPrefix(sent.Comment, "expected 200, got 500\ncheckout_test.go: 42\n")
	assert.Len(t, trace, maxTraceLength)
}

func Test_GivenFailureWithoutLocation_WhenReported_ThenCommentHasNoLocationLine(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, StandaloneMode)
	failure := Failure{
		Message: "test failed",
		Trace:   "panic: runtime error: index out of range [3] with length 3",
	}

	var sent testrail.ResultInput
	expectOpenRun(api)
	api.On("AddResultForCase", mock.Anything, 90, 1042, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(3).(testrail.ResultInput) }).
		Return(testrail.Result{ID: 1}, nil).Once()

	// When
	_, _, err := reporter.OnTestFailed(context.Background(), State{}, startedLink(), time.Second, failure)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "test failed\npanic: runtime error: index out of range [3] with length 3", sent.Comment)
}

func Test_GivenAPIFailure_WhenRecording_ThenErrorPropagates(t *testing.T) {
	// Given
	reporter, api := createReporterAndMock(t, StandaloneMode)
	apiErr := &testrail.TransportError{Method: "POST", URL: "add_result_for_case/90/1042", StatusCode: 500}

	api.On("GetOpenRuns", mock.Anything).Return(map[int]testrail.Run{12: {ID: 90, SuiteID: 12}}, nil)
	api.On("AddResultForCase", mock.Anything, 90, 1042, mock.Anything).Return(testrail.Result{}, apiErr)

	// When
	_, _, err := reporter.OnTestPassed(context.Background(), State{}, startedLink(), time.Second)

	// Then
	var transportErr *testrail.TransportError
	require.True(t, errors.As(err, &transportErr))
	api.AssertNotCalled(t, "GetRun", mock.Anything, mock.Anything)
}

// Helpers

func createReporterAndMock(t *testing.T, mode string) (*resultReporter, *mocks.API) {
	api := mocks.NewAPI(t)
	reporter := NewReporter(Config{Version: testVersion, RunMode: mode}, api, log.NewLogger()).(*resultReporter)
	reporter.clock = func() time.Time {
		return time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	}
	return reporter, api
}

func expectOpenRun(api *mocks.API) {
	api.On("GetOpenRuns", mock.Anything).Return(map[int]testrail.Run{12: {ID: 90, SuiteID: 12, Name: "Checkout"}}, nil)
	api.On("GetRun", mock.Anything, 90).Return(testrail.Run{ID: 90, PassedCount: 1}, nil)
	api.On("GetCases", mock.Anything, 12).Return(casesOf(10), nil)
}

func linkedTest() Test {
	return Test{
		Name: "TestCheckout",
		Params: map[string][]string{
			SuiteIDParam: {"12"},
			CaseIDParam:  {"1042"},
		},
	}
}

func startedLink() Linkage {
	return Linkage{Suite: checkoutSuite, Case: checkoutCase}
}

func casesOf(n int) map[int]testrail.TestCase {
	cases := make(map[int]testrail.TestCase, n)
	for i := 1; i <= n; i++ {
		cases[i] = testrail.TestCase{ID: i, SuiteID: 12}
	}
	return cases
}
