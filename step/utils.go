package step

import (
	"strings"

	"github.com/bitrise-io/go-utils/colorstring"
	"github.com/bitrise-io/go-utils/stringutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-report/gotest"
)

const lastLinesCount = 20

func printLastLinesOfGoTestOutput(logger log.Logger, events []gotest.Event) {
	var b strings.Builder
	for _, event := range events {
		if event.Action == gotest.ActionOutput {
			b.WriteString(event.Output)
		}
	}

	logger.Println()
	logger.Errorf("Last lines of the go test output:")
	logger.Printf("%s", stringutil.LastNLines(b.String(), lastLinesCount))

	logger.Warnf("If you can't find the reason of the failure in the log, please check the go_test.json.log.")
	logger.Infof("%s", colorstring.Magenta(`
The log file is stored in $BITRISE_DEPLOY_DIR, and its full path
is available in the $TESTRAIL_GO_TEST_LOG_PATH environment variable.`))
}
