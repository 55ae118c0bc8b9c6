package gotest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-report/caselink"
	"github.com/bitrise-steplib/steps-testrail-report/gotest/mocks"
	"github.com/bitrise-steplib/steps-testrail-report/reporter"
	"github.com/bitrise-steplib/steps-testrail-report/testrail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const checkoutEvents = `{"Action":"start","Package":"shop/checkout"}
{"Action":"run","Package":"shop/checkout","Test":"TestCheckout"}
{"Action":"output","Package":"shop/checkout","Test":"TestCheckout","Output":"=== RUN   TestCheckout\n"}
{"Action":"output","Package":"shop/checkout","Test":"TestCheckout","Output":"    checkout_test.go:12: testrail: testSuiteId=12 testCaseId=1042\n"}
{"Action":"output","Package":"shop/checkout","Test":"TestCheckout","Output":"    checkout_test.go:42: expected 200, got 500\n"}
{"Action":"output","Package":"shop/checkout","Test":"TestCheckout","Output":"--- FAIL: TestCheckout (2.00s)\n"}
{"Action":"fail","Package":"shop/checkout","Test":"TestCheckout","Elapsed":2}
{"Action":"run","Package":"shop/checkout","Test":"TestRefund"}
{"Action":"output","Package":"shop/checkout","Test":"TestRefund","Output":"=== RUN   TestRefund\n"}
{"Action":"output","Package":"shop/checkout","Test":"TestRefund","Output":"--- PASS: TestRefund (1.00s)\n"}
{"Action":"pass","Package":"shop/checkout","Test":"TestRefund","Elapsed":1}
{"Action":"run","Package":"shop/checkout","Test":"TestLegacy"}
{"Action":"output","Package":"shop/checkout","Test":"TestLegacy","Output":"    legacy_test.go:9: not supported\n"}
{"Action":"skip","Package":"shop/checkout","Test":"TestLegacy","Elapsed":0}
{"Action":"output","Package":"shop/checkout","Output":"FAIL\n"}
{"Action":"fail","Package":"shop/checkout","Elapsed":3.1}
`

var (
	checkoutLink = reporter.Linkage{
		Suite: testrail.Suite{ID: 12, Name: "Checkout"},
		Case:  testrail.TestCase{ID: 1042, Title: "Checkout with saved card"},
	}
	refundLink = reporter.Linkage{
		Suite: testrail.Suite{ID: 12, Name: "Checkout"},
		Case:  testrail.TestCase{ID: 1050, Title: "Refund"},
	}
	checkoutRun = testrail.Run{ID: 81, SuiteID: 12}
)

func Test_GivenLinkedAndUnlinkedTests_WhenFeeding_ThenReportsFinishedTests(t *testing.T) {
	// Given
	rep := mocks.NewReporter(t)
	links, err := caselink.Parse([]byte("links:\n  - test: TestRefund\n    case_id: 1050\n"))
	require.NoError(t, err)

	feeder := NewFeeder(rep, links, false, log.NewLogger())

	rep.On("OnTestStart", mock.Anything, reporter.State{}, reporter.Test{
		Name:   "TestCheckout",
		Params: map[string][]string{reporter.SuiteIDParam: {"12"}, reporter.CaseIDParam: {"1042"}},
	}).Return(checkoutLink, nil).Once()
	rep.On("OnTestFailed", mock.Anything, reporter.State{}, checkoutLink, 2*time.Second, mock.MatchedBy(func(f reporter.Failure) bool {
		return f.Message == "expected 200, got 500" && f.File == "checkout_test.go" && f.Line == 42 && !strings.Contains(f.Trace, "--- FAIL")
	})).Return(reporter.State{}, withRun(checkoutLink, false), nil).Once()

	rep.On("OnTestStart", mock.Anything, reporter.State{}, reporter.Test{
		Name:   "TestRefund",
		Params: map[string][]string{reporter.CaseIDParam: {"1050"}},
	}).Return(refundLink, nil).Once()
	rep.On("OnTestPassed", mock.Anything, reporter.State{}, refundLink, time.Second).
		Return(reporter.State{}, withRun(refundLink, true), nil).Once()

	// When
	summary, err := feeder.Feed(context.Background(), reporter.State{}, decode(t, checkoutEvents))

	// Then
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
	assert.True(t, summary.HasFailures())
	assert.Equal(t, []ReportedResult{
		{Test: "TestCheckout", Status: StatusFailed, CaseID: 1042, RunID: 81},
		{Test: "TestRefund", Status: StatusPassed, CaseID: 1050, RunID: 81},
	}, summary.Reported)
	assert.Equal(t, []int{81}, summary.RunIDs)
	assert.Equal(t, []int{81}, summary.ClosedRunIDs)
}

func Test_GivenUnlinkedTest_WhenFeeding_ThenSkipsItWithWarning(t *testing.T) {
	// Given
	rep := mocks.NewReporter(t)
	feeder := NewFeeder(rep, caselink.Links{}, false, log.NewLogger())

	rep.On("OnTestStart", mock.Anything, mock.Anything, mock.Anything).
		Return(reporter.Linkage{}, &reporter.MissingLinkageError{Test: "TestRefund"})

	// When
	summary, err := feeder.Feed(context.Background(), reporter.State{}, decode(t, passingEvent("TestRefund")))

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"TestRefund"}, summary.Unlinked)
	assert.Empty(t, summary.Reported)
	rep.AssertNotCalled(t, "OnTestPassed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func Test_GivenStrictLinking_WhenTestIsUnlinked_ThenFails(t *testing.T) {
	// Given
	rep := mocks.NewReporter(t)
	feeder := NewFeeder(rep, caselink.Links{}, true, log.NewLogger())

	rep.On("OnTestStart", mock.Anything, mock.Anything, mock.Anything).
		Return(reporter.Linkage{}, &reporter.MissingLinkageError{Test: "TestRefund"})

	// When
	_, err := feeder.Feed(context.Background(), reporter.State{}, decode(t, passingEvent("TestRefund")))

	// Then
	var linkErr *reporter.MissingLinkageError
	assert.True(t, errors.As(err, &linkErr))
}

func Test_GivenPlanState_WhenFeeding_ThenThreadsStateBetweenTests(t *testing.T) {
	// Given
	rep := mocks.NewReporter(t)
	feeder := NewFeeder(rep, caselink.Links{}, false, log.NewLogger())

	plan := testrail.Plan{ID: 30}
	initial := reporter.State{Plan: &plan}
	afterFirst := reporter.State{Plan: &plan, PlanRuns: map[int]testrail.Run{12: checkoutRun}}

	rep.On("OnTestStart", mock.Anything, mock.Anything, mock.Anything).Return(refundLink, nil)
	rep.On("OnTestPassed", mock.Anything, initial, refundLink, mock.Anything).
		Return(afterFirst, withRun(refundLink, false), nil).Once()
	rep.On("OnTestPassed", mock.Anything, afterFirst, refundLink, mock.Anything).
		Return(afterFirst, withRun(refundLink, false), nil).Once()

	events := decode(t, passingEvent("TestRefund")+passingEvent("TestRefundAgain"))

	// When
	summary, err := feeder.Feed(context.Background(), initial, events)

	// Then
	require.NoError(t, err)
	assert.Equal(t, afterFirst, summary.State)
	assert.Len(t, summary.Reported, 2)
	assert.Empty(t, summary.ClosedRunIDs)
}

func Test_GivenAPIError_WhenFeeding_ThenStops(t *testing.T) {
	// Given
	rep := mocks.NewReporter(t)
	feeder := NewFeeder(rep, caselink.Links{}, false, log.NewLogger())
	apiErr := &testrail.TransportError{Method: "GET", URL: "get_runs/3", StatusCode: 401}

	rep.On("OnTestStart", mock.Anything, mock.Anything, mock.Anything).Return(refundLink, nil).Once()
	rep.On("OnTestPassed", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(reporter.State{}, refundLink, apiErr).Once()

	events := decode(t, passingEvent("TestRefund")+passingEvent("TestRefundAgain"))

	// When
	_, err := feeder.Feed(context.Background(), reporter.State{}, events)

	// Then
	var transportErr *testrail.TransportError
	require.True(t, errors.As(err, &transportErr))
	rep.AssertNumberOfCalls(t, "OnTestStart", 1)
}

// Helpers

func decode(t *testing.T, input string) []Event {
	events, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	return events
}

func passingEvent(test string) string {
	return `{"Action":"run","Package":"shop/checkout","Test":"` + test + `"}
{"Action":"pass","Package":"shop/checkout","Test":"` + test + `","Elapsed":0.01}
`
}

func withRun(link reporter.Linkage, closed bool) reporter.Linkage {
	run := checkoutRun
	link.Run = &run
	link.Closed = closed
	return link
}
