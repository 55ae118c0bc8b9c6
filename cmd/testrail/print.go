package main

import (
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/bitrise-steplib/steps-testrail-report/testrail"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	colorDone   = color.New(color.FgGreen).SprintFunc()
	colorFailed = color.New(color.FgRed).SprintFunc()
	colorMuted  = color.New(color.FgHiBlack).SprintFunc()
	colorError  = color.New(color.FgRed, color.Bold).SprintFunc()
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

func sortedIDs[V any](m map[int]V) []int {
	return slices.Sorted(maps.Keys(m))
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func optionalID(id *int) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(*id)
}

func completion(completed bool) string {
	if completed {
		return colorMuted("completed")
	}
	return colorDone("open")
}

func printCases(w io.Writer, cases map[int]testrail.TestCase) {
	table := newTable(w, "ID", "TITLE", "SECTION", "SUITE")
	for _, id := range sortedIDs(cases) {
		tc := cases[id]
		table.Append([]string{"C" + itoa(tc.ID), tc.Title, itoa(tc.SectionID), itoa(tc.SuiteID)})
	}
	table.Render()
}

func printRuns(w io.Writer, runs []testrail.Run) {
	table := newTable(w, "ID", "SUITE", "NAME", "PASSED", "FAILED", "UNTESTED", "STATUS", "URL")
	for _, run := range runs {
		table.Append([]string{
			"R" + itoa(run.ID),
			itoa(run.SuiteID),
			run.Name,
			colorDone(itoa(run.PassedCount)),
			colorFailed(itoa(run.FailedCount)),
			itoa(run.UntestedCount),
			completion(run.IsCompleted),
			run.URL,
		})
	}
	table.Render()
}

func printSections(w io.Writer, sections map[int]testrail.Section) {
	table := newTable(w, "ID", "NAME", "PARENT", "SUITE")
	for _, id := range sortedIDs(sections) {
		section := sections[id]
		table.Append([]string{itoa(section.ID), section.Name, optionalID(section.ParentID), itoa(section.SuiteID)})
	}
	table.Render()
}

func printPlans(w io.Writer, plans map[int]testrail.Plan) {
	table := newTable(w, "ID", "NAME", "PASSED", "FAILED", "STATUS", "URL")
	for _, id := range sortedIDs(plans) {
		plan := plans[id]
		table.Append([]string{
			itoa(plan.ID),
			plan.Name,
			colorDone(itoa(plan.PassedCount)),
			colorFailed(itoa(plan.FailedCount)),
			completion(plan.IsCompleted),
			plan.URL,
		})
	}
	table.Render()
}

func printMilestones(w io.Writer, milestones map[int]testrail.Milestone) {
	table := newTable(w, "ID", "NAME", "STATUS", "URL")
	for _, id := range sortedIDs(milestones) {
		milestone := milestones[id]
		table.Append([]string{itoa(milestone.ID), milestone.Name, completion(milestone.IsCompleted), milestone.URL})
	}
	table.Render()
}

func printSuite(w io.Writer, suite testrail.Suite) {
	table := newTable(w, "ID", "NAME", "DESCRIPTION", "STATUS", "URL")
	table.Append([]string{"S" + itoa(suite.ID), suite.Name, suite.Description, completion(suite.IsCompleted), suite.URL})
	table.Render()
}
