package execx

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNotStarted marks a command that could not be launched at all, as opposed
// to one that ran and exited non-zero. Callers distinguish the two with
// errors.Is: a missing binary wraps ErrNotStarted, a failing one does not.
var ErrNotStarted = errors.New("command could not be started")

// CommandError reports a failed external command. It wraps the underlying
// exec error so callers can still inspect it via errors.Is/As.
type CommandError struct {
	Cmd string // the full command line that failed
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Cmd, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Runner abstracts subprocess execution so callers can inject fakes in tests.
// Every call is one independent process invocation; there is no shared state
// between calls and no batching.
type Runner interface {
	// Run executes the command and reports success purely by exit status.
	Run(name string, args ...string) error

	// Output executes the command and returns its captured stdout, trimmed
	// of surrounding whitespace. When the command runs but exits non-zero,
	// the captured stdout is returned alongside the error.
	Output(name string, args ...string) (string, error)
}

// System is the Runner backed by os/exec.
type System struct{}

func (System) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Run(); err != nil {
		return wrap(cmd, err)
	}
	return nil
}

func (System) Output(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	out, err := cmd.Output()
	if err != nil {
		return strings.TrimSpace(string(out)), wrap(cmd, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// wrap classifies a failure from os/exec: an *exec.ExitError means the
// process ran and exited non-zero, anything else means it never started.
func wrap(cmd *exec.Cmd, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{Cmd: strings.Join(cmd.Args, " "), Err: err}
	}
	return &CommandError{
		Cmd: strings.Join(cmd.Args, " "),
		Err: fmt.Errorf("%w: %v", ErrNotStarted, err),
	}
}
