package exec

import (
	"bytes"
	"context"
	"os"
	osexec "os/exec"
	"sort"
)

// colorEnv disables ANSI output in most CLIs.
var colorEnv = map[string]string{
	"NO_COLOR":       "1",
	"TERM":           "dumb",
	"CLICOLOR":       "0",
	"CLICOLOR_FORCE": "0",
	"FORCE_COLOR":    "0",
}

// Command is the os/exec backed Executor. Its settings are fixed at
// construction, so a Command is safe for concurrent use.
type Command struct {
	name          string
	env           map[string]string
	inheritEnv    bool
	disableColors bool
}

// New returns a Command that runs the program name.
func New(name string, opts ...Option) *Command {
	cmd := &Command{
		name: name,
		env:  make(map[string]string),
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// Name returns the program the command runs.
func (c *Command) Name() string {
	return c.name
}

// Run invokes the program with args.
func (c *Command) Run(ctx context.Context, args ...string) (*Result, error) {
	argv := append([]string{c.name}, args...)

	if c.name == "" {
		return nil, &ExecError{Command: argv, ExitCode: -1, Err: osexec.ErrNotFound}
	}

	cmd := osexec.CommandContext(ctx, c.name, args...)
	cmd.Env = c.environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		return result, &ExecError{
			Command:  argv,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}

	return result, nil
}

// environ builds the process environment. A nil slice makes os/exec use
// the parent environment, so an empty one is returned when nothing is set
// and inheritance is off.
func (c *Command) environ() []string {
	env := []string{}
	if c.inheritEnv {
		env = append(env, os.Environ()...)
	}

	extra := make(map[string]string, len(c.env)+len(colorEnv))
	for k, v := range c.env {
		extra[k] = v
	}
	if c.disableColors {
		for k, v := range colorEnv {
			extra[k] = v
		}
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		env = append(env, k+"="+extra[k])
	}

	return env
}
