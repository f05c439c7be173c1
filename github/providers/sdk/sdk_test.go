package sdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-github/v67/github"
	"github.com/jmgilman/ghwatch/errors"
	gh "github.com/jmgilman/ghwatch/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupServer returns a provider whose client talks to a test server.
func setupServer(t *testing.T) (*SDKProvider, *http.ServeMux) {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(func() { server.Close() })

	client := github.NewClient(nil)
	baseURL, err := client.BaseURL.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	provider, err := NewSDKProvider(WithClient(client))
	require.NoError(t, err)

	return provider, mux
}

func TestNewSDKProvider(t *testing.T) {
	t.Parallel()

	t.Run("with token", func(t *testing.T) {
		t.Parallel()

		provider, err := NewSDKProvider(WithToken("test-token"))

		require.NoError(t, err)
		assert.NotNil(t, provider)
		assert.Equal(t, "https://api.github.com/", provider.Client().BaseURL.String())
	})

	t.Run("with base URL", func(t *testing.T) {
		t.Parallel()

		provider, err := NewSDKProvider(WithToken("test-token"), WithBaseURL("https://github.example.com/api/v3"))

		require.NoError(t, err)
		assert.Equal(t, "https://github.example.com/api/v3/", provider.Client().BaseURL.String())
	})

	tests := []struct {
		name      string
		setupOpts []Option
		wantCode  errors.ErrorCode
	}{
		{
			name:      "with empty token returns error",
			setupOpts: []Option{WithToken("")},
			wantCode:  errors.CodeInvalidInput,
		},
		{
			name:      "with nil client returns error",
			setupOpts: []Option{WithClient(nil)},
			wantCode:  errors.CodeInvalidInput,
		},
		{
			name:      "without token or client returns error",
			setupOpts: []Option{},
			wantCode:  errors.CodeInvalidInput,
		},
		{
			name:      "with relative base URL returns error",
			setupOpts: []Option{WithToken("t"), WithBaseURL("api/v3")},
			wantCode:  errors.CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewSDKProvider(tt.setupOpts...)

			require.Error(t, err)

			var platformErr errors.PlatformError
			require.True(t, errors.As(err, &platformErr))
			assert.Equal(t, tt.wantCode, platformErr.Code())
		})
	}
}

func TestSDKProvider_Get(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		provider, mux := setupServer(t)
		mux.HandleFunc("/repos/octocat/hello-world/watchers", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "10", r.URL.Query().Get("per_page"))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`[{"login":"octocat"},{"login":"hubot"}]`))
		})

		resp, err := provider.Get(context.Background(), "/repos/octocat/hello-world/watchers", url.Values{
			"page":     {"2"},
			"per_page": {"10"},
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `[{"login":"octocat"},{"login":"hubot"}]`, string(resp.Body))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		provider, mux := setupServer(t)
		mux.HandleFunc("/user/watched/octocat/hello-world", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "Not Found"}`))
		})

		_, err := provider.Get(context.Background(), "/user/watched/octocat/hello-world", nil)

		require.Error(t, err)
		assert.True(t, gh.IsNotFound(err))

		var ghErr *github.ErrorResponse
		assert.True(t, errors.As(err, &ghErr))
	})

	t.Run("unauthorized", func(t *testing.T) {
		t.Parallel()

		provider, mux := setupServer(t)
		mux.HandleFunc("/user/watched", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message": "Requires authentication"}`))
		})

		_, err := provider.Get(context.Background(), "/user/watched", nil)

		require.Error(t, err)
		assert.Equal(t, errors.CodeUnauthorized, errors.GetCode(err))
	})

	t.Run("server error is retryable", func(t *testing.T) {
		t.Parallel()

		provider, mux := setupServer(t)
		mux.HandleFunc("/user/watched", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := provider.Get(context.Background(), "/user/watched", nil)

		require.Error(t, err)
		assert.Equal(t, errors.CodeNetwork, errors.GetCode(err))
		assert.True(t, errors.IsRetryable(err))
	})

	t.Run("rate limited", func(t *testing.T) {
		t.Parallel()

		provider, mux := setupServer(t)
		mux.HandleFunc("/users/octocat/watched", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("X-RateLimit-Limit", "60")
			w.Header().Set("X-RateLimit-Remaining", "0")
			w.Header().Set("X-RateLimit-Reset", "4102444800")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message": "API rate limit exceeded for 127.0.0.1."}`))
		})

		_, err := provider.Get(context.Background(), "/users/octocat/watched", nil)

		require.Error(t, err)
		assert.Equal(t, errors.CodeRateLimit, errors.GetCode(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		provider, mux := setupServer(t)
		mux.HandleFunc("/user/watched", func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(50 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := provider.Get(ctx, "/user/watched", nil)

		require.Error(t, err)
		assert.Equal(t, errors.CodeTimeout, errors.GetCode(err))
	})
}

func TestSDKProvider_PutDelete(t *testing.T) {
	t.Parallel()

	t.Run("put returns body", func(t *testing.T) {
		t.Parallel()

		provider, mux := setupServer(t)
		mux.HandleFunc("/user/watched/octocat/hello-world", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"subscribed":true}`))
		})

		resp, err := provider.Put(context.Background(), "/user/watched/octocat/hello-world", nil)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"subscribed":true}`, string(resp.Body))
	})

	t.Run("delete no content", func(t *testing.T) {
		t.Parallel()

		provider, mux := setupServer(t)
		mux.HandleFunc("/user/watched/octocat/hello-world", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		})

		resp, err := provider.Delete(context.Background(), "/user/watched/octocat/hello-world", nil)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.True(t, resp.Empty())
	})
}

func TestSDKProvider_WithWatchingFacade(t *testing.T) {
	t.Parallel()

	provider, mux := setupServer(t)
	mux.HandleFunc("/user/watched/octocat/hello-world", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	})

	client := gh.NewClient(provider)
	ok, err := client.Watching().IsWatching(context.Background(), "octocat", "hello-world", nil)

	require.NoError(t, err)
	assert.False(t, ok)
}
