// Package caselink maps Go tests to TestRail cases for tests that do not link
// themselves with gotest.Link.
package caselink

import (
	"fmt"
	"strconv"

	"github.com/bitrise-io/go-utils/fileutil"
	"github.com/bitrise-steplib/steps-testrail-report/reporter"
	"gopkg.in/yaml.v3"
)

// Link ...
type Link struct {
	// Package is optional, a link without it matches the test in any package.
	Package string `yaml:"package"`
	Test    string `yaml:"test"`
	SuiteID int    `yaml:"suite_id"`
	CaseID  int    `yaml:"case_id"`
}

type file struct {
	Links []Link `yaml:"links"`
}

// Links is a lookup table built from a case-link file. The zero value
// matches nothing.
type Links struct {
	byPackage map[string]Link
	byTest    map[string]Link
}

// Load reads a case-link file. An empty path returns an empty table.
func Load(pth string) (Links, error) {
	if pth == "" {
		return Links{}, nil
	}

	content, err := fileutil.ReadBytesFromFile(pth)
	if err != nil {
		return Links{}, fmt.Errorf("failed to read case links from %s: %w", pth, err)
	}

	links, err := Parse(content)
	if err != nil {
		return Links{}, fmt.Errorf("invalid case link file %s: %w", pth, err)
	}
	return links, nil
}

// Parse ...
func Parse(content []byte) (Links, error) {
	var f file
	if err := yaml.Unmarshal(content, &f); err != nil {
		return Links{}, err
	}

	links := Links{
		byPackage: map[string]Link{},
		byTest:    map[string]Link{},
	}

	for i, link := range f.Links {
		if link.Test == "" {
			return Links{}, fmt.Errorf("link #%d: test is required", i+1)
		}
		if link.CaseID <= 0 {
			return Links{}, fmt.Errorf("link #%d (%s): case_id must be a positive number", i+1, link.Test)
		}
		if link.SuiteID < 0 {
			return Links{}, fmt.Errorf("link #%d (%s): suite_id must not be negative", i+1, link.Test)
		}

		table, key := links.byTest, link.Test
		if link.Package != "" {
			table, key = links.byPackage, link.Package+"/"+link.Test
		}
		if _, exists := table[key]; exists {
			return Links{}, fmt.Errorf("link #%d: %s is linked more than once", i+1, key)
		}
		table[key] = link
	}

	return links, nil
}

// Len ...
func (l Links) Len() int {
	return len(l.byPackage) + len(l.byTest)
}

// Params returns the metadata parameters of the test, preferring a link bound
// to the package over a bare test name. Nil means the test is not linked.
func (l Links) Params(pkg, test string) map[string][]string {
	link, ok := l.byPackage[pkg+"/"+test]
	if !ok {
		link, ok = l.byTest[test]
	}
	if !ok {
		return nil
	}

	params := map[string][]string{
		reporter.CaseIDParam: {strconv.Itoa(link.CaseID)},
	}
	if link.SuiteID > 0 {
		params[reporter.SuiteIDParam] = []string{strconv.Itoa(link.SuiteID)}
	}
	return params
}
