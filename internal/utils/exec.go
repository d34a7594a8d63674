package utils

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Runner is the signature shared by everything that can execute an external
// command. The helm and kube clients accept a Runner so tests can substitute
// a fake without spawning processes.
type Runner func(name string, args ...string) (stdout string, stderr string, err error)

// execCommand is swapped out in tests.
var execCommand = exec.Command

// CommandError reports a subprocess that exited non-zero (or failed to
// start). It carries the full command line and the captured stderr so the
// operator sees exactly what was invoked and what the tool said.
type CommandError struct {
	CommandLine string
	Stderr      string
	Err         error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command '%s' failed: %v. Stderr: %s", e.CommandLine, e.Err, e.Stderr)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ParseError reports output from an otherwise-successful subprocess that
// could not be decoded as expected (e.g. malformed JSON).
type ParseError struct {
	CommandLine string
	Err         error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse output of '%s': %v", e.CommandLine, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RunCommand executes the named program with the given arguments and waits
// for it to finish, capturing stdout and stderr as text. A non-zero exit
// yields a *CommandError. There are no retries, timeouts, or partial-output
// semantics: the call either fails or returns the fully captured output.
func RunCommand(name string, args ...string) (string, string, error) {
	cmd := execCommand(name, args...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	runErr := cmd.Run()

	stdoutStr := stdoutBuf.String()
	stderrStr := stderrBuf.String()

	if runErr != nil {
		return stdoutStr, stderrStr, &CommandError{
			CommandLine: CommandLine(name, args...),
			Stderr:      stderrStr,
			Err:         runErr,
		}
	}
	return stdoutStr, stderrStr, nil
}

// CommandLine renders the invocation the way it would be typed in a shell,
// for error messages and debug logs.
func CommandLine(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}

// SplitLines splits subprocess stdout on newlines, trimming a single
// trailing newline first so a well-formed listing does not grow a spurious
// empty last element. An entirely empty output still yields one empty-string
// element, matching how the callers have always treated it.
func SplitLines(out string) []string {
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}
