package cli

import (
	"context"
	"net/url"
	"testing"

	"github.com/jmgilman/ghwatch/errors"
	"github.com/jmgilman/ghwatch/exec"
	"github.com/jmgilman/ghwatch/exec/mocks"
	github "github.com/jmgilman/ghwatch/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockExecutor creates a mock gh executor backed by runFunc.
func setupMockExecutor(t *testing.T, runFunc func(args ...string) (*exec.Result, error)) *mocks.ExecutorMock {
	t.Helper()

	return &mocks.ExecutorMock{
		NameFunc: func() string { return "gh" },
		RunFunc: func(_ context.Context, args ...string) (*exec.Result, error) {
			return runFunc(args...)
		},
	}
}

// apiRunner answers "gh auth status" successfully and delegates "gh api"
// invocations to fn.
func apiRunner(fn func(args ...string) (*exec.Result, error)) func(args ...string) (*exec.Result, error) {
	return func(args ...string) (*exec.Result, error) {
		if len(args) >= 1 && args[0] == "auth" {
			return &exec.Result{Stdout: "Logged in to github.com"}, nil
		}
		return fn(args...)
	}
}

func apiFailure(stdout, stderr string) (*exec.Result, error) {
	result := &exec.Result{Stdout: stdout, Stderr: stderr, ExitCode: 1}
	return result, &exec.ExecError{Command: []string{"gh", "api"}, ExitCode: 1, Stdout: stdout, Stderr: stderr}
}

func TestNewCLIProvider(t *testing.T) {
	t.Run("success with custom executor", func(t *testing.T) {

		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			// Should call: gh auth status
			if len(args) >= 1 && args[0] == "auth" {
				return &exec.Result{
					Stdout:   "Logged in to github.com",
					Stderr:   "",
					ExitCode: 0,
				}, nil
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))

		require.NoError(t, err)
		assert.NotNil(t, provider)
		require.Len(t, mock.RunCalls(), 1)
		assert.Equal(t, []string{"auth", "status"}, mock.RunCalls()[0].Args)
	})

	t.Run("checks auth for the configured host", func(t *testing.T) {

		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			return &exec.Result{}, nil
		})

		_, err := NewCLIProvider(WithExecutor(mock), WithHostname("github.example.com"))

		require.NoError(t, err)
		assert.Equal(t, []string{"auth", "status", "--hostname", "github.example.com"}, mock.RunCalls()[0].Args)
	})

	t.Run("fails when auth status check fails", func(t *testing.T) {

		mock := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			if len(args) >= 1 && args[0] == "auth" {
				return &exec.Result{
					Stdout:   "",
					Stderr:   "You are not logged into any GitHub hosts",
					ExitCode: 1,
				}, errors.New(errors.CodeExecutionFailed, "exit status 1")
			}
			return &exec.Result{}, nil
		})

		provider, err := NewCLIProvider(WithExecutor(mock))

		assert.Error(t, err)
		assert.Nil(t, provider)
		assert.Equal(t, errors.CodeUnauthorized, errors.GetCode(err))
	})

	t.Run("fails with nil executor option", func(t *testing.T) {

		provider, err := NewCLIProvider(WithExecutor(nil))

		assert.Error(t, err)
		assert.Nil(t, provider)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})

	t.Run("fails with empty hostname", func(t *testing.T) {

		provider, err := NewCLIProvider(WithHostname(" "))

		assert.Error(t, err)
		assert.Nil(t, provider)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	})
}

func TestCLIProvider_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var apiArgs []string
		mock := setupMockExecutor(t, apiRunner(func(args ...string) (*exec.Result, error) {
			apiArgs = args
			return &exec.Result{
				Stdout: "HTTP/2.0 200 OK\r\nContent-Type: application/json; charset=utf-8\r\n\r\n[{\"login\":\"octocat\"}]",
			}, nil
		}))

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		resp, err := provider.Get(context.Background(), "/repos/octocat/hello-world/watchers", url.Values{"per_page": {"5"}})

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.JSONEq(t, `[{"login":"octocat"}]`, string(resp.Body))
		assert.Equal(t, []string{"api", "repos/octocat/hello-world/watchers?per_page=5", "--method", "GET", "--include"}, apiArgs)
		require.Len(t, mock.RunCalls(), 2)
		assert.Equal(t, "GET", mock.RunCalls()[1].Args[3])
	})

	t.Run("not found from stderr", func(t *testing.T) {
		mock := setupMockExecutor(t, apiRunner(func(args ...string) (*exec.Result, error) {
			return apiFailure(`{"message":"Not Found"}`, "gh: Not Found (HTTP 404)\n")
		}))

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		_, err = provider.Get(context.Background(), "/user/watched/octocat/hello-world", nil)

		require.Error(t, err)
		assert.True(t, github.IsNotFound(err))

		var platformErr errors.PlatformError
		require.True(t, errors.As(err, &platformErr))
		assert.Equal(t, 404, platformErr.Context()["status"])
		assert.Equal(t, "gh: Not Found (HTTP 404)", platformErr.Context()["stderr"])
	})

	t.Run("status from include header", func(t *testing.T) {
		mock := setupMockExecutor(t, apiRunner(func(args ...string) (*exec.Result, error) {
			return apiFailure("HTTP/2.0 403 Forbidden\nX-GitHub-Media-Type: github.v3\n\n{\"message\":\"Must have admin rights\"}", "gh: Must have admin rights")
		}))

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		_, err = provider.Get(context.Background(), "/user/watched", nil)

		require.Error(t, err)
		assert.Equal(t, errors.CodeForbidden, errors.GetCode(err))
	})

	t.Run("classifies stderr without status", func(t *testing.T) {
		mock := setupMockExecutor(t, apiRunner(func(args ...string) (*exec.Result, error) {
			return apiFailure("", "error connecting to api.github.com: connection refused")
		}))

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		_, err = provider.Get(context.Background(), "/user/watched", nil)

		require.Error(t, err)
		assert.Equal(t, errors.CodeNetwork, errors.GetCode(err))
	})

	t.Run("unclassified failure", func(t *testing.T) {
		mock := setupMockExecutor(t, apiRunner(func(args ...string) (*exec.Result, error) {
			return apiFailure("", "something unexpected")
		}))

		provider, err := NewCLIProvider(WithExecutor(mock))
		require.NoError(t, err)

		_, err = provider.Get(context.Background(), "/user/watched", nil)

		require.Error(t, err)
		assert.Equal(t, errors.CodeExecutionFailed, errors.GetCode(err))
	})
}

func TestCLIProvider_PutDelete(t *testing.T) {
	var calls [][]string
	mock := setupMockExecutor(t, apiRunner(func(args ...string) (*exec.Result, error) {
		calls = append(calls, args)
		if args[3] == "PUT" {
			return &exec.Result{Stdout: "HTTP/2.0 200 OK\n\n{\"subscribed\":true}"}, nil
		}
		return &exec.Result{Stdout: "HTTP/2.0 204 No Content\n\n"}, nil
	}))

	provider, err := NewCLIProvider(WithExecutor(mock), WithHostname("github.example.com"))
	require.NoError(t, err)

	resp, err := provider.Put(context.Background(), "/user/watched/octocat/hello-world", nil)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.JSONEq(t, `{"subscribed":true}`, string(resp.Body))

	resp, err = provider.Delete(context.Background(), "/user/watched/octocat/hello-world", nil)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	assert.True(t, resp.Empty())

	require.Len(t, calls, 2)
	assert.Equal(t, []string{"api", "user/watched/octocat/hello-world", "--method", "PUT", "--include", "--hostname", "github.example.com"}, calls[0])
	assert.Equal(t, "DELETE", calls[1][3])
}

func TestSplitInclude(t *testing.T) {
	tests := []struct {
		name       string
		stdout     string
		wantStatus int
		wantBody   string
	}{
		{name: "crlf headers", stdout: "HTTP/2.0 200 OK\r\nA: b\r\n\r\n[]", wantStatus: 200, wantBody: "[]"},
		{name: "lf headers", stdout: "HTTP/1.1 404 Not Found\nA: b\n\n{}", wantStatus: 404, wantBody: "{}"},
		{name: "no body", stdout: "HTTP/2.0 204 No Content\r\n\r\n", wantStatus: 204, wantBody: ""},
		{name: "plain body", stdout: `{"a":1}`, wantStatus: 0, wantBody: `{"a":1}`},
		{name: "garbled status", stdout: "HTTP/2.0 abc\n\nx", wantStatus: 0, wantBody: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := splitInclude(tt.stdout)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestCLIProvider_WithWatchingFacade(t *testing.T) {
	mock := setupMockExecutor(t, apiRunner(func(args ...string) (*exec.Result, error) {
		return apiFailure("", "gh: Not Found (HTTP 404)")
	}))

	provider, err := NewCLIProvider(WithExecutor(mock))
	require.NoError(t, err)

	ok, err := github.NewClient(provider).Watching().IsWatching(context.Background(), "octocat", "hello-world", nil)

	require.NoError(t, err)
	assert.False(t, ok)
}
