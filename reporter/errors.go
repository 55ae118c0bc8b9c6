package reporter

import "fmt"

// MissingLinkageError means a test carries no usable TestRail case id. The
// caller decides whether that fails the report or only skips the test.
type MissingLinkageError struct {
	Test  string
	Suite string
}

func (e *MissingLinkageError) Error() string {
	if e.Suite != "" {
		return fmt.Sprintf("test %s is not linked to a TestRail case, please add a test case to the %s suite in TestRail", e.Test, e.Suite)
	}
	return fmt.Sprintf("test %s is not linked to a TestRail case, set the %s parameter", e.Test, CaseIDParam)
}
