package gotest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/log"
	version "github.com/hashicorp/go-version"
	shellquote "github.com/kballard/go-shellquote"
)

const (
	goBinary = "go"
	// test2json output of `go test -json` exists since Go 1.10.
	minSupportedGoVersion = "1.10"
	testFailureExitCode   = 1
)

// Output ...
type Output struct {
	RawOut   []byte
	ExitCode int
}

// TestsFailed ...
func (o Output) TestsFailed() bool {
	return o.ExitCode == testFailureExitCode
}

// Runner runs go test with json output.
type Runner interface {
	Run(workDir string, packages []string, flags string) (Output, error)
}

type runner struct {
	logger         log.Logger
	commandFactory command.Factory
	stdout         io.Writer
}

// NewRunner ...
func NewRunner(logger log.Logger, commandFactory command.Factory) Runner {
	return &runner{
		logger:         logger,
		commandFactory: commandFactory,
		stdout:         os.Stdout,
	}
}

// Run executes `go test -json [flags] [packages]`. A non-zero exit code
// caused by failing tests is reported in Output and is not an error.
func (r *runner) Run(workDir string, packages []string, flags string) (Output, error) {
	args, err := TestArgs(packages, flags)
	if err != nil {
		return Output{}, err
	}

	var outBuffer bytes.Buffer
	cmd := r.commandFactory.Create(goBinary, args, &command.Opts{
		Stdout: io.MultiWriter(&outBuffer, r.stdout),
		Stderr: os.Stderr,
		Dir:    workDir,
	})

	r.logger.Donef("$ %s", cmd.PrintableCommandArgs())

	exitCode, err := cmd.RunAndReturnExitCode()
	output := Output{
		RawOut:   outBuffer.Bytes(),
		ExitCode: exitCode,
	}

	if err != nil {
		if exitCode == testFailureExitCode && outBuffer.Len() > 0 {
			r.logger.Warnf("Some of the tests failed")
			return output, nil
		}
		return output, fmt.Errorf("go test failed with exit code %d: %w", exitCode, err)
	}

	return output, nil
}

// TestArgs builds the go test arguments. Flags are split the way a shell
// would split them; -json is always added.
func TestArgs(packages []string, flags string) ([]string, error) {
	extraArgs, err := shellquote.Split(flags)
	if err != nil {
		return nil, fmt.Errorf("failed to parse go test flags (%s): %w", flags, err)
	}

	args := []string{"test", "-json"}
	for _, arg := range extraArgs {
		if arg == "-json" {
			continue
		}
		args = append(args, arg)
	}

	if len(packages) == 0 {
		packages = []string{"./..."}
	}
	return append(args, packages...), nil
}

// VersionChecker ...
type VersionChecker interface {
	CheckVersion() (*version.Version, error)
}

type versionChecker struct {
	logger         log.Logger
	commandFactory command.Factory
}

// NewVersionChecker ...
func NewVersionChecker(logger log.Logger, commandFactory command.Factory) VersionChecker {
	return &versionChecker{
		logger:         logger,
		commandFactory: commandFactory,
	}
}

// CheckVersion returns the version of the go toolchain on the PATH and fails
// when it is too old to produce json test output.
func (c *versionChecker) CheckVersion() (*version.Version, error) {
	c.logger.Println()
	c.logger.Infof("Checking Go version")

	versionCmd := c.commandFactory.Create(goBinary, []string{"env", "GOVERSION"}, nil)
	out, err := versionCmd.RunAndReturnTrimmedOutput()
	if err != nil {
		return nil, fmt.Errorf("failed to run go env command: %w", err)
	}

	goVersion, err := ParseGoVersion(out)
	if err != nil {
		return nil, err
	}

	minVersion := version.Must(version.NewVersion(minSupportedGoVersion))
	if goVersion.LessThan(minVersion) {
		return nil, fmt.Errorf("go %s is not supported, at least go %s is required", goVersion, minSupportedGoVersion)
	}
	c.logger.Printf("- go version: %s", goVersion)

	return goVersion, nil
}

// ParseGoVersion parses the output of `go env GOVERSION`, e.g. go1.22.3 or
// go1.23rc1. Devel toolchains report the release they are based on.
func ParseGoVersion(out string) (*version.Version, error) {
	raw := strings.TrimSpace(out)
	raw = strings.TrimPrefix(raw, "devel ")
	if fields := strings.Fields(raw); len(fields) > 0 {
		raw = fields[0]
	}
	raw = strings.TrimPrefix(raw, "go")
	if idx := strings.IndexAny(raw, "-+"); idx >= 0 {
		raw = raw[:idx]
	}
	for _, pre := range []string{"rc", "beta"} {
		if idx := strings.Index(raw, pre); idx > 0 {
			raw = raw[:idx] + "-" + raw[idx:]
		}
	}

	if raw == "" {
		return nil, fmt.Errorf("unable to determine go version from: %q", out)
	}

	v, err := version.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("unable to parse go version (%s): %w", out, err)
	}
	return v, nil
}
