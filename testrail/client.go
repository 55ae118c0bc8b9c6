package testrail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/retryhttp"
	"github.com/hashicorp/go-retryablehttp"
)

const apiPrefix = "/api/v2/"

// Config ...
type Config struct {
	URL       string
	Username  string
	Password  string
	ProjectID int
}

// API is the subset of the TestRail v2 API the reporter relies on.
type API interface {
	GetCase(ctx context.Context, caseID int) (TestCase, error)
	GetCases(ctx context.Context, suiteID int) (map[int]TestCase, error)
	AddCase(ctx context.Context, sectionID int, c NewCase) (TestCase, error)

	AddRun(ctx context.Context, suiteID int, name, description string) (Run, error)
	GetOpenRuns(ctx context.Context) (map[int]Run, error)
	GetRun(ctx context.Context, runID int) (Run, error)
	CloseRun(ctx context.Context, runID int) (Run, error)
	AddResultForCase(ctx context.Context, runID, caseID int, result ResultInput) (Result, error)

	GetSections(ctx context.Context, suiteID int) (map[int]Section, error)
	AddSection(ctx context.Context, suiteID int, name, description string, parentID int) (Section, error)

	GetPlans(ctx context.Context) (map[int]Plan, error)
	AddPlan(ctx context.Context, name, description string, milestoneID int) (Plan, error)
	AddPlanEntry(ctx context.Context, planID int, entry PlanEntryInput) (Run, error)

	GetMilestones(ctx context.Context) (map[int]Milestone, error)
	AddMilestone(ctx context.Context, name, description string) (Milestone, error)

	GetSuite(ctx context.Context, suiteID int) (Suite, error)
	AddSuite(ctx context.Context, name, description string) (Suite, error)
}

type params map[string]interface{}

type client struct {
	config     Config
	httpClient *retryablehttp.Client
	logger     log.Logger
}

// NewHTTPClient returns the transport used against TestRail. Failed requests
// are surfaced to the caller as they are, nothing is retried.
func NewHTTPClient(logger log.Logger) *retryablehttp.Client {
	httpClient := retryhttp.NewClient(logger)
	httpClient.RetryMax = 0
	httpClient.CheckRetry = func(ctx context.Context, _ *http.Response, _ error) (bool, error) {
		return false, ctx.Err()
	}
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return httpClient
}

// NewClient ...
func NewClient(config Config, httpClient *retryablehttp.Client, logger log.Logger) API {
	return &client{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *client) GetCase(ctx context.Context, caseID int) (TestCase, error) {
	var tc TestCase
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("get_case/%d", caseID), nil, &tc)
	return tc, err
}

func (c *client) GetCases(ctx context.Context, suiteID int) (map[int]TestCase, error) {
	var list []TestCase
	if err := c.doList(ctx, fmt.Sprintf("get_cases/%d", c.config.ProjectID), params{"suite_id": suiteID}, "cases", &list); err != nil {
		return nil, err
	}

	cases := make(map[int]TestCase, len(list))
	for _, tc := range list {
		cases[tc.ID] = tc
	}
	return cases, nil
}

func (c *client) AddCase(ctx context.Context, sectionID int, newCase NewCase) (TestCase, error) {
	typeID := newCase.TypeID
	if typeID == 0 {
		typeID = DefaultCaseTypeID
	}

	var tc TestCase
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("add_case/%d", sectionID), params{
		"title":            newCase.Title,
		"type_id":          typeID,
		"custom_file_path": newCase.FilePath,
	}, &tc)
	return tc, err
}

func (c *client) AddRun(ctx context.Context, suiteID int, name, description string) (Run, error) {
	var run Run
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("add_run/%d", c.config.ProjectID), params{
		"suite_id":    suiteID,
		"name":        name,
		"description": description,
		"include_all": true,
	}, &run)
	return run, err
}

// GetOpenRuns lists the not yet completed runs of the project keyed by suite
// id. When a suite has several open runs the first one listed is kept.
func (c *client) GetOpenRuns(ctx context.Context) (map[int]Run, error) {
	var list []Run
	if err := c.doList(ctx, fmt.Sprintf("get_runs/%d", c.config.ProjectID), params{"is_completed": 0}, "runs", &list); err != nil {
		return nil, err
	}

	runs := make(map[int]Run, len(list))
	for _, run := range list {
		if _, ok := runs[run.SuiteID]; ok {
			c.logger.Debugf("Suite %d has more than one open run, ignoring run %d (%s)", run.SuiteID, run.ID, run.Name)
			continue
		}
		runs[run.SuiteID] = run
	}
	return runs, nil
}

func (c *client) GetRun(ctx context.Context, runID int) (Run, error) {
	var run Run
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("get_run/%d", runID), nil, &run)
	return run, err
}

func (c *client) CloseRun(ctx context.Context, runID int) (Run, error) {
	var run Run
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("close_run/%d", runID), nil, &run)
	return run, err
}

func (c *client) AddResultForCase(ctx context.Context, runID, caseID int, result ResultInput) (Result, error) {
	var res Result
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("add_result_for_case/%d/%d", runID, caseID), params{
		"status_id": result.StatusID,
		"comment":   result.Comment,
		"version":   result.Version,
		"elapsed":   result.Elapsed,
	}, &res)
	return res, err
}

func (c *client) GetSections(ctx context.Context, suiteID int) (map[int]Section, error) {
	var list []Section
	if err := c.doList(ctx, fmt.Sprintf("get_sections/%d", c.config.ProjectID), params{"suite_id": suiteID}, "sections", &list); err != nil {
		return nil, err
	}

	sections := make(map[int]Section, len(list))
	for _, section := range list {
		sections[section.ID] = section
	}
	return sections, nil
}

func (c *client) AddSection(ctx context.Context, suiteID int, name, description string, parentID int) (Section, error) {
	p := params{
		"name":        name,
		"description": description,
		"suite_id":    suiteID,
	}
	if parentID != 0 {
		p["parent_id"] = parentID
	}

	var section Section
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("add_section/%d", c.config.ProjectID), p, &section)
	return section, err
}

func (c *client) GetPlans(ctx context.Context) (map[int]Plan, error) {
	var list []Plan
	if err := c.doList(ctx, fmt.Sprintf("get_plans/%d", c.config.ProjectID), nil, "plans", &list); err != nil {
		return nil, err
	}

	plans := make(map[int]Plan, len(list))
	for _, plan := range list {
		plans[plan.ID] = plan
	}
	return plans, nil
}

func (c *client) AddPlan(ctx context.Context, name, description string, milestoneID int) (Plan, error) {
	var plan Plan
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("add_plan/%d", c.config.ProjectID), params{
		"name":         name,
		"description":  description,
		"milestone_id": milestoneID,
	}, &plan)
	return plan, err
}

func (c *client) AddPlanEntry(ctx context.Context, planID int, entry PlanEntryInput) (Run, error) {
	var planEntry PlanEntry
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("add_plan_entry/%d", planID), params{
		"name":         entry.Name,
		"description":  entry.Description,
		"suite_id":     entry.SuiteID,
		"milestone_id": entry.MilestoneID,
	}, &planEntry); err != nil {
		return Run{}, err
	}

	if len(planEntry.Runs) == 0 {
		return Run{}, fmt.Errorf("plan entry %s of plan %d has no runs", planEntry.ID, planID)
	}
	return planEntry.Runs[0], nil
}

func (c *client) GetMilestones(ctx context.Context) (map[int]Milestone, error) {
	var list []Milestone
	if err := c.doList(ctx, fmt.Sprintf("get_milestones/%d", c.config.ProjectID), nil, "milestones", &list); err != nil {
		return nil, err
	}

	milestones := make(map[int]Milestone, len(list))
	for _, milestone := range list {
		milestones[milestone.ID] = milestone
	}
	return milestones, nil
}

func (c *client) AddMilestone(ctx context.Context, name, description string) (Milestone, error) {
	var milestone Milestone
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("add_milestone/%d", c.config.ProjectID), params{
		"name":        name,
		"description": description,
	}, &milestone)
	return milestone, err
}

func (c *client) GetSuite(ctx context.Context, suiteID int) (Suite, error) {
	var suite Suite
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("get_suite/%d", suiteID), nil, &suite)
	return suite, err
}

func (c *client) AddSuite(ctx context.Context, name, description string) (Suite, error) {
	var suite Suite
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("add_suite/%d", c.config.ProjectID), params{
		"name":        name,
		"description": description,
	}, &suite)
	return suite, err
}

type listLinks struct {
	Next *string `json:"next"`
}

// doList decodes list endpoints. Newer TestRail versions wrap the items in a
// paginated object ({"offset":0,"_links":{"next":...},"runs":[...]}) and the
// pages are followed until next is null, older ones return a bare array.
func (c *client) doList(ctx context.Context, endpoint string, p params, key string, out interface{}) error {
	var items []json.RawMessage
	for offset := 0; ; {
		pageParams := params{}
		for k, v := range p {
			pageParams[k] = v
		}
		if offset > 0 {
			pageParams["offset"] = offset
		}

		var raw json.RawMessage
		if err := c.do(ctx, http.MethodGet, endpoint, pageParams, &raw); err != nil {
			return err
		}

		if strings.HasPrefix(strings.TrimSpace(string(raw)), "[") {
			return json.Unmarshal(raw, out)
		}

		var page map[string]json.RawMessage
		if err := json.Unmarshal(raw, &page); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
		}
		field, ok := page[key]
		if !ok {
			return fmt.Errorf("%s response has no %q field", endpoint, key)
		}

		var pageItems []json.RawMessage
		if err := json.Unmarshal(field, &pageItems); err != nil {
			return fmt.Errorf("failed to decode %s of %s response: %w", key, endpoint, err)
		}
		items = append(items, pageItems...)

		var links listLinks
		if rawLinks, ok := page["_links"]; ok {
			if err := json.Unmarshal(rawLinks, &links); err != nil {
				return fmt.Errorf("failed to decode %s response links: %w", endpoint, err)
			}
		}
		if links.Next == nil || *links.Next == "" || len(pageItems) == 0 {
			break
		}
		offset += len(pageItems)
	}

	combined, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to collect %s: %w", key, err)
	}
	return json.Unmarshal(combined, out)
}

func (c *client) do(ctx context.Context, method, endpoint string, p params, out interface{}) error {
	if method != http.MethodGet && method != http.MethodPost {
		return &UnsupportedMethodError{Method: method}
	}

	if p == nil {
		p = params{}
	}
	p["project_id"] = c.config.ProjectID

	uri := strings.TrimRight(c.config.URL, "/") + apiPrefix + endpoint
	if strings.Contains(c.config.URL, "?") {
		uri = c.config.URL + apiPrefix + endpoint
	}

	var body interface{}
	switch method {
	case http.MethodGet:
		uri += querySeparator(uri) + encodeQuery(p)
	case http.MethodPost:
		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = b
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, uri, body)
	if err != nil {
		return &TransportError{Method: method, URL: uri, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.config.Username, c.config.Password)

	c.logger.Debugf("%s %s", method, uri)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}
		return &TransportError{Method: method, URL: uri, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Warnf("Failed to close response body: %s", err)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, URL: uri, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{
			Method:     method,
			URL:        uri,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(respBody),
		}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

// querySeparator keeps the index.php?/api/v2/... form working: there the
// query string is already open and parameters are appended with '&'.
func querySeparator(uri string) string {
	if strings.Contains(uri, "?") {
		return "&"
	}
	return "?"
}

func encodeQuery(p params) string {
	values := url.Values{}
	for k, v := range p {
		values.Set(k, fmt.Sprint(v))
	}
	return values.Encode()
}

func errorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}
