package gotest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/bitrise-steplib/steps-testrail-report/reporter"
)

const linkMarker = "testrail:"

var failureLinePattern = regexp.MustCompile(`^\s*([^\s:]+\.go):(\d+): (.*)$`)

// Link logs the TestRail suite and case the calling test belongs to. The line
// ends up in the `go test -json` output where the Feeder picks it up.
func Link(tb testing.TB, suiteID, caseID int) {
	tb.Helper()
	tb.Logf("%s %s=%d %s=%d", linkMarker, reporter.SuiteIDParam, suiteID, reporter.CaseIDParam, caseID)
}

// ParseParams collects the key=value pairs of every link line in output.
func ParseParams(output []string) map[string][]string {
	params := map[string][]string{}
	for _, line := range output {
		idx := strings.Index(line, linkMarker)
		if idx < 0 {
			continue
		}

		for _, field := range strings.Fields(line[idx+len(linkMarker):]) {
			key, value, ok := strings.Cut(field, "=")
			if !ok || key == "" {
				continue
			}
			params[key] = append(params[key], value)
		}
	}

	if len(params) == 0 {
		return nil
	}
	return params
}

// ParseFailure builds the failure of a test from its captured output: the
// first `file.go:line: message` line that is not a link line gives the
// location, the whole output is the trace.
func ParseFailure(output []string) reporter.Failure {
	failure := reporter.Failure{
		Message: "test failed",
		Trace:   strings.Join(output, ""),
	}

	for _, line := range output {
		line = strings.TrimRight(line, "\n")
		if strings.Contains(line, linkMarker) {
			continue
		}

		match := failureLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		lineNum, err := strconv.Atoi(match[2])
		if err != nil {
			continue
		}

		failure.File = match[1]
		failure.Line = lineNum
		failure.Message = match[3]
		break
	}

	return failure
}

func describeParams(params map[string][]string) string {
	if len(params) == 0 {
		return "no link"
	}
	return fmt.Sprintf("suite=%v case=%v", params[reporter.SuiteIDParam], params[reporter.CaseIDParam])
}
