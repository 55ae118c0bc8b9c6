package gotest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Actions emitted by test2json.
const (
	ActionRun    = "run"
	ActionPause  = "pause"
	ActionCont   = "cont"
	ActionPass   = "pass"
	ActionBench  = "bench"
	ActionFail   = "fail"
	ActionOutput = "output"
	ActionSkip   = "skip"
	ActionStart  = "start"
)

const maxLineSize = 4 * 1024 * 1024

// Event is a single line of `go test -json` output.
type Event struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package"`
	Test    string    `json:"Test"`
	Elapsed float64   `json:"Elapsed"`
	Output  string    `json:"Output"`
}

// Key identifies a test across packages.
func (e Event) Key() string {
	return e.Package + "/" + e.Test
}

// Duration ...
func (e Event) Duration() time.Duration {
	return time.Duration(e.Elapsed * float64(time.Second))
}

// Decode reads newline delimited test2json events. Empty lines are skipped,
// any other line that is not a JSON event fails the decoding.
func Decode(r io.Reader) ([]Event, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var events []Event
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var event Event
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("line %d is not a test2json event: %w", lineNum, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read test events: %w", err)
	}

	return events, nil
}
