// Package sdk provides a GitHub provider implementation using the go-github SDK.
//
// This package implements the github.Provider interface on top of
// github.com/google/go-github/v67. Requests are built with Client.NewRequest
// and sent with Client.Do, so authentication, rate limit tracking and error
// decoding are handled by the SDK.
package sdk

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v67/github"
	"github.com/jmgilman/ghwatch/errors"
	gh "github.com/jmgilman/ghwatch/github"
)

// SDKProvider implements github.Provider using the go-github SDK.
type SDKProvider struct {
	client *github.Client
}

// NewSDKProvider creates a provider using the GitHub SDK.
//
// Example with token authentication:
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("ghp_..."))
//
// Example with custom client:
//
//	httpClient := &http.Client{Timeout: 30 * time.Second}
//	ghClient := github.NewClient(httpClient)
//	provider, err := sdk.NewSDKProvider(sdk.WithClient(ghClient))
//
// Example against GitHub Enterprise Server:
//
//	provider, err := sdk.NewSDKProvider(
//	    sdk.WithToken("ghp_..."),
//	    sdk.WithBaseURL("https://github.example.com/api/v3/"),
//	)
func NewSDKProvider(opts ...Option) (*SDKProvider, error) {
	cfg := &config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// If no client was provided, create a default one
	if cfg.client == nil {
		if cfg.token == "" {
			err := errors.New(errors.CodeInvalidInput, "either token or client must be provided")
			return nil, errors.WithContext(err, "field", "token or client")
		}
		cfg.client = github.NewClient(nil).WithAuthToken(cfg.token)
	}

	if cfg.baseURL != nil {
		cfg.client.BaseURL = cfg.baseURL
	}

	return &SDKProvider{
		client: cfg.client,
	}, nil
}

// config holds configuration for SDKProvider.
type config struct {
	client  *github.Client
	token   string
	baseURL *url.URL
}

// Option configures the SDK provider.
type Option func(*config) error

// WithToken sets the authentication token for the SDK provider.
func WithToken(token string) Option {
	return func(cfg *config) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		cfg.token = token
		return nil
	}
}

// WithClient sets a custom GitHub client for the SDK provider.
// This allows full control over the HTTP client configuration,
// authentication, and other advanced settings.
func WithClient(client *github.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "client cannot be nil")
			return errors.WithContext(err, "field", "client")
		}
		cfg.client = client
		return nil
	}
}

// WithBaseURL points the provider at another API root, such as a GitHub
// Enterprise Server. The URL is used as given; a trailing slash is added
// when missing.
func WithBaseURL(rawURL string) Option {
	return func(cfg *config) error {
		if !strings.HasSuffix(rawURL, "/") {
			rawURL += "/"
		}
		u, err := url.Parse(rawURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			err := errors.Newf(errors.CodeInvalidInput, "invalid base URL %q", rawURL)
			return errors.WithContext(err, "field", "base_url")
		}
		cfg.baseURL = u
		return nil
	}
}

// Client returns the underlying go-github client.
func (s *SDKProvider) Client() *github.Client {
	return s.client
}

// Get issues a GET request.
func (s *SDKProvider) Get(ctx context.Context, path string, query url.Values) (*gh.Response, error) {
	return s.do(ctx, http.MethodGet, path, query)
}

// Put issues a PUT request without a body.
func (s *SDKProvider) Put(ctx context.Context, path string, query url.Values) (*gh.Response, error) {
	return s.do(ctx, http.MethodPut, path, query)
}

// Delete issues a DELETE request.
func (s *SDKProvider) Delete(ctx context.Context, path string, query url.Values) (*gh.Response, error) {
	return s.do(ctx, http.MethodDelete, path, query)
}

func (s *SDKProvider) do(ctx context.Context, method, path string, query url.Values) (*gh.Response, error) {
	// BaseURL carries the API prefix, so the path must stay relative.
	urlStr := strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		urlStr += "?" + query.Encode()
	}

	req, err := s.client.NewRequest(method, urlStr, nil)
	if err != nil {
		err := errors.Wrap(err, errors.CodeInvalidInput, "failed to build request")
		return nil, errors.WithContextMap(err, map[string]interface{}{"method": method, "path": path})
	}

	var body bytes.Buffer
	resp, err := s.client.Do(ctx, req, &body)
	if err != nil {
		return nil, s.wrapError(err, resp, method+" "+path+" failed")
	}

	return &gh.Response{
		StatusCode: resp.StatusCode,
		Body:       body.Bytes(),
	}, nil
}

// wrapError wraps go-github errors with appropriate error codes.
func (s *SDKProvider) wrapError(err error, resp *github.Response, message string) error {
	if err == nil {
		return nil
	}

	// Rate limit errors are reported as 403 by GitHub
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &rateErr) || errors.As(err, &abuseErr) {
		return gh.WrapHTTPError(err, http.StatusTooManyRequests, message)
	}

	// Extract status code from response
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}

	// Try to get status code from ErrorResponse
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		statusCode = ghErr.Response.StatusCode
	}

	if statusCode != 0 {
		return gh.WrapHTTPError(err, statusCode, message)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errors.Wrap(err, errors.CodeTimeout, message)
	}

	// Fallback to network error for unknown errors
	return errors.Wrap(err, errors.CodeNetwork, message)
}
