// Command testrail talks to the TestRail API directly: it lists and edits the
// entities the step works with and can report a saved `go test -json` log.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-testrail-report/testrail"
	"github.com/spf13/cobra"
)

const requestTimeout = 2 * time.Minute

var (
	flagURL       string
	flagUsername  string
	flagPassword  string
	flagProjectID int
	flagVerbose   bool
)

var logger = log.NewLogger()

var rootCmd = &cobra.Command{
	Use:           "testrail",
	Short:         "Inspect and update TestRail cases, runs and plans",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.EnableDebugLog(flagVerbose)
	},
}

func init() {
	envRepository := env.NewRepository()
	projectID, _ := strconv.Atoi(envRepository.Get("TESTRAIL_PROJECT_ID"))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagURL, "url", envRepository.Get("TESTRAIL_URL"), "TestRail URL, e.g. https://acme.testrail.io/index.php? ($TESTRAIL_URL)")
	flags.StringVar(&flagUsername, "username", envRepository.Get("TESTRAIL_USERNAME"), "TestRail user ($TESTRAIL_USERNAME)")
	flags.StringVar(&flagPassword, "password", envRepository.Get("TESTRAIL_PASSWORD"), "TestRail password or API key ($TESTRAIL_PASSWORD)")
	flags.IntVar(&flagProjectID, "project", projectID, "TestRail project id ($TESTRAIL_PROJECT_ID)")
	flags.BoolVar(&flagVerbose, "verbose", false, "Print debug logs")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, colorError(err.Error()))
		os.Exit(1)
	}
}

func newAPI() (testrail.API, error) {
	if flagURL == "" {
		return nil, errors.New("--url is required")
	}
	if flagUsername == "" || flagPassword == "" {
		return nil, errors.New("--username and --password are required")
	}
	if flagProjectID <= 0 {
		return nil, errors.New("--project is required")
	}

	config := testrail.Config{
		URL:       flagURL,
		Username:  flagUsername,
		Password:  flagPassword,
		ProjectID: flagProjectID,
	}
	return testrail.NewClient(config, testrail.NewHTTPClient(logger), logger), nil
}

// withAPI runs fn with a configured client and a request timeout.
func withAPI(fn func(ctx context.Context, api testrail.API) error) error {
	api, err := newAPI()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	return fn(ctx, api)
}

func idArg(args []string) (int, error) {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", args[0])
	}
	return id, nil
}
