package testrail

// Result statuses used when reporting.
const (
	StatusPassed = 1
	StatusFailed = 5
)

// DefaultCaseTypeID is the "Other" case type of a stock TestRail install.
const DefaultCaseTypeID = 9

// TestCase ...
type TestCase struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	SectionID        int     `json:"section_id"`
	TemplateID       int     `json:"template_id"`
	TypeID           int     `json:"type_id"`
	PriorityID       int     `json:"priority_id"`
	MilestoneID      *int    `json:"milestone_id"`
	CreatedBy        int     `json:"created_by"`
	CreatedOn        int64   `json:"created_on"`
	Estimate         *string `json:"estimate"`
	EstimateForecast *string `json:"estimate_forecast"`
	SuiteID          int     `json:"suite_id"`
}

// Run is a single execution pass over the cases of a suite.
type Run struct {
	ID            int    `json:"id"`
	SuiteID       int    `json:"suite_id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	MilestoneID   *int   `json:"milestone_id"`
	AssignedToID  *int   `json:"assignedto_id"`
	IncludeAll    bool   `json:"include_all"`
	IsCompleted   bool   `json:"is_completed"`
	CompletedOn   *int64 `json:"completed_on"`
	PassedCount   int    `json:"passed_count"`
	BlockedCount  int    `json:"blocked_count"`
	UntestedCount int    `json:"untested_count"`
	RetestCount   int    `json:"retest_count"`
	FailedCount   int    `json:"failed_count"`
	ProjectID     int    `json:"project_id"`
	PlanID        *int   `json:"plan_id"`
	CreatedOn     int64  `json:"created_on"`
	CreatedBy     int    `json:"created_by"`
	URL           string `json:"url"`
}

// Suite ...
type Suite struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ProjectID   int    `json:"project_id"`
	IsMaster    bool   `json:"is_master"`
	IsBaseline  bool   `json:"is_baseline"`
	IsCompleted bool   `json:"is_completed"`
	CompletedOn *int64 `json:"completed_on"`
	URL         string `json:"url"`
}

// PlanEntry groups the runs a plan created for one suite.
type PlanEntry struct {
	ID      string `json:"id"`
	SuiteID int    `json:"suite_id"`
	Name    string `json:"name"`
	Runs    []Run  `json:"runs"`
}

// Plan ...
type Plan struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	MilestoneID   *int        `json:"milestone_id"`
	AssignedToID  *int        `json:"assignedto_id"`
	IsCompleted   bool        `json:"is_completed"`
	CompletedOn   *int64      `json:"completed_on"`
	PassedCount   int         `json:"passed_count"`
	BlockedCount  int         `json:"blocked_count"`
	UntestedCount int         `json:"untested_count"`
	RetestCount   int         `json:"retest_count"`
	FailedCount   int         `json:"failed_count"`
	ProjectID     int         `json:"project_id"`
	CreatedOn     int64       `json:"created_on"`
	CreatedBy     int         `json:"created_by"`
	URL           string      `json:"url"`
	Entries       []PlanEntry `json:"entries,omitempty"`
}

// Milestone ...
type Milestone struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StartOn     *int64 `json:"start_on"`
	StartedOn   *int64 `json:"started_on"`
	IsStarted   bool   `json:"is_started"`
	DueOn       *int64 `json:"due_on"`
	IsCompleted bool   `json:"is_completed"`
	CompletedOn *int64 `json:"completed_on"`
	ProjectID   int    `json:"project_id"`
	ParentID    *int   `json:"parent_id"`
	URL         string `json:"url"`
}

// Section ...
type Section struct {
	ID          int    `json:"id"`
	SuiteID     int    `json:"suite_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *int   `json:"parent_id"`
}

// Result is what TestRail stores for one add_result_for_case call.
type Result struct {
	ID        int    `json:"id"`
	TestID    int    `json:"test_id"`
	StatusID  int    `json:"status_id"`
	Comment   string `json:"comment"`
	Version   string `json:"version"`
	Elapsed   string `json:"elapsed"`
	CreatedOn int64  `json:"created_on"`
	CreatedBy int    `json:"created_by"`
}

// ResultInput ...
type ResultInput struct {
	StatusID int
	Comment  string
	Version  string
	Elapsed  string
}

// NewCase ...
type NewCase struct {
	Title    string
	TypeID   int
	FilePath string
}

// PlanEntryInput ...
type PlanEntryInput struct {
	SuiteID     int
	Name        string
	Description string
	MilestoneID int
}
