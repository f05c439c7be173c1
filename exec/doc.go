// Package exec runs an external program behind a mockable interface.
//
// A Command is bound to one program, typically gh, and fixes its
// environment at construction:
//
//	gh := exec.New("gh", exec.WithInheritEnv(), exec.WithDisableColors())
//	result, err := gh.Run(ctx, "api", "user/watched", "--include")
//
// A failed run returns the captured Result together with an *ExecError that
// carries the exit code and both output streams.
//
// Tests substitute mocks.ExecutorMock for the real executor.
package exec
