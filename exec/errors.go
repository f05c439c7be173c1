package exec

import (
	"fmt"
	"strings"
)

// ExecError reports a run that could not start or exited non-zero.
type ExecError struct {
	// Command is the full argv, program name first.
	Command []string

	// ExitCode is -1 when the process never ran or was killed.
	ExitCode int

	Stdout string
	Stderr string

	Err error
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("%s: exit code %d", strings.Join(e.Command, " "), e.ExitCode)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Summary returns the last non-empty stderr line, which is where most CLIs
// print their final diagnostic.
func (e *ExecError) Summary() string {
	lines := strings.Split(strings.TrimSpace(e.Stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
