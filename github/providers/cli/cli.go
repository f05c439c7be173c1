package cli

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmgilman/ghwatch/errors"
	"github.com/jmgilman/ghwatch/exec"
	github "github.com/jmgilman/ghwatch/github"
)

// httpStatusPattern matches the status gh appends to API failures,
// e.g. "gh: Not Found (HTTP 404)".
var httpStatusPattern = regexp.MustCompile(`\(HTTP (\d{3})\)`)

// Option configures the CLI provider.
type Option func(*CLIProvider) error

// CLIProvider implements github.Provider using "gh api".
type CLIProvider struct {
	gh       exec.Executor
	hostname string
}

// NewCLIProvider creates a provider using the gh CLI, authenticated by the
// gh login. Construction fails unless "gh auth status" succeeds.
//
// Example:
//
//	provider, err := cli.NewCLIProvider()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewCLIProvider(opts ...Option) (*CLIProvider, error) {
	provider := &CLIProvider{
		gh: exec.New("gh",
			exec.WithInheritEnv(),
			exec.WithDisableColors(),
			exec.WithEnv(map[string]string{
				"GH_PROMPT_DISABLED":    "1",
				"GH_NO_UPDATE_NOTIFIER": "1",
			}),
		),
	}

	for _, opt := range opts {
		if err := opt(provider); err != nil {
			return nil, err
		}
	}

	args := []string{"auth", "status"}
	if provider.hostname != "" {
		args = append(args, "--hostname", provider.hostname)
	}
	result, err := provider.gh.Run(context.Background(), args...)
	if err != nil {
		return nil, wrapAuthError(err, result)
	}

	return provider, nil
}

// WithExecutor replaces the gh executor, typically with a mock.
func WithExecutor(executor exec.Executor) Option {
	return func(p *CLIProvider) error {
		if executor == nil {
			err := errors.New(errors.CodeInvalidInput, "executor cannot be nil")
			return errors.WithContext(err, "field", "executor")
		}
		p.gh = executor
		return nil
	}
}

// WithHostname targets a GitHub Enterprise Server host instead of github.com.
func WithHostname(hostname string) Option {
	return func(p *CLIProvider) error {
		if strings.TrimSpace(hostname) == "" {
			err := errors.New(errors.CodeInvalidInput, "hostname cannot be empty")
			return errors.WithContext(err, "field", "hostname")
		}
		p.hostname = hostname
		return nil
	}
}

// Get issues a GET request.
func (c *CLIProvider) Get(ctx context.Context, path string, query url.Values) (*github.Response, error) {
	return c.api(ctx, http.MethodGet, path, query)
}

// Put issues a PUT request without a body.
func (c *CLIProvider) Put(ctx context.Context, path string, query url.Values) (*github.Response, error) {
	return c.api(ctx, http.MethodPut, path, query)
}

// Delete issues a DELETE request.
func (c *CLIProvider) Delete(ctx context.Context, path string, query url.Values) (*github.Response, error) {
	return c.api(ctx, http.MethodDelete, path, query)
}

// api runs "gh api" with --include so the status line is part of stdout.
func (c *CLIProvider) api(ctx context.Context, method, path string, query url.Values) (*github.Response, error) {
	endpoint := strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	args := []string{"api", endpoint, "--method", method, "--include"}
	if c.hostname != "" {
		args = append(args, "--hostname", c.hostname)
	}

	result, err := c.gh.Run(ctx, args...)
	if err != nil {
		return nil, c.wrapCLIError(err, result, method+" "+path+" failed")
	}

	status, body := splitInclude(result.Stdout)
	return &github.Response{
		StatusCode: status,
		Body:       []byte(body),
	}, nil
}

// splitInclude separates the status line and headers printed by --include
// from the body. Output without a status line is returned as the body.
func splitInclude(stdout string) (int, string) {
	if !strings.HasPrefix(stdout, "HTTP/") {
		return 0, stdout
	}

	normalized := strings.ReplaceAll(stdout, "\r\n", "\n")
	head, body, _ := strings.Cut(normalized, "\n\n")

	statusLine, _, _ := strings.Cut(head, "\n")
	fields := strings.Fields(statusLine)
	if len(fields) < 2 {
		return 0, body
	}
	status, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, body
	}
	return status, body
}

// statusFromResult recovers the HTTP status of a failed call, first from
// the --include header block and then from the stderr summary.
func statusFromResult(result *exec.Result) int {
	if status, _ := splitInclude(result.Stdout); status != 0 {
		return status
	}
	if m := httpStatusPattern.FindStringSubmatch(result.Stderr); m != nil {
		status, _ := strconv.Atoi(m[1])
		return status
	}
	return 0
}

// getErrorCodeFromResult determines the error code based on the result.
func (c *CLIProvider) getErrorCodeFromResult(result *exec.Result) errors.ErrorCode {
	if result.ExitCode == 4 {
		return errors.CodeUnauthorized
	}
	if code := github.ClassifyMessage(result.Stderr); code != errors.CodeInternal {
		return code
	}
	return errors.CodeExecutionFailed
}

// wrapCLIError wraps CLI execution errors with appropriate error types.
func (c *CLIProvider) wrapCLIError(err error, result *exec.Result, message string) error {
	if err == nil {
		return nil
	}

	if result == nil {
		return errors.Wrap(err, errors.CodeExecutionFailed, message)
	}

	var wrappedErr errors.PlatformError
	if status := statusFromResult(result); status != 0 {
		wrappedErr = errors.WithContext(github.WrapHTTPError(err, status, message), "exit_code", result.ExitCode)
	} else {
		wrappedErr = errors.Wrap(err, c.getErrorCodeFromResult(result), message)
		wrappedErr = errors.WithContext(wrappedErr, "exit_code", result.ExitCode)
	}

	var execErr *exec.ExecError
	if errors.As(err, &execErr) && execErr.Summary() != "" {
		wrappedErr = errors.WithContext(wrappedErr, "stderr", execErr.Summary())
	}

	return wrappedErr
}

// wrapAuthError wraps authentication errors from gh CLI.
func wrapAuthError(err error, result *exec.Result) error {
	authErr := errors.Wrap(err, errors.CodeUnauthorized, "gh CLI not authenticated")
	authErr = errors.WithContext(authErr, "hint", "Run 'gh auth login' to authenticate")
	if result != nil && result.Stderr != "" {
		authErr = errors.WithContext(authErr, "stderr", result.Stderr)
	}
	return authErr
}
