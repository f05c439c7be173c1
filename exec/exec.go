package exec

import (
	"context"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// Executor runs one external program with varying arguments.
type Executor interface {
	// Name returns the program the executor runs.
	Name() string

	// Run invokes the program with args. The process is killed when ctx is
	// done. A non-zero exit returns both the Result and an *ExecError.
	Run(ctx context.Context, args ...string) (*Result, error)
}

// Result holds the captured output of one run.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}
