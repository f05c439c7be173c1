// Package ghapi provides a GitHub provider implementation using the go-gh
// REST client.
//
// The go-gh client resolves the host and token the same way the gh CLI does
// (GH_TOKEN, GH_HOST, the gh config and keyring), without needing the gh
// binary on PATH.
package ghapi

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/jmgilman/ghwatch/errors"
	gh "github.com/jmgilman/ghwatch/github"
)

// restClient is the subset of *api.RESTClient the provider uses.
type restClient interface {
	RequestWithContext(ctx context.Context, method string, path string, body io.Reader) (*http.Response, error)
}

// GHProvider implements github.Provider using go-gh's api.RESTClient.
type GHProvider struct {
	client restClient
}

// config holds configuration for GHProvider.
type config struct {
	opts   api.ClientOptions
	client *api.RESTClient
}

// Option configures the go-gh provider.
type Option func(*config) error

// NewGHProvider creates a provider using the go-gh REST client.
//
// Example using ambient gh authentication:
//
//	provider, err := ghapi.NewGHProvider()
//
// Example against GitHub Enterprise Server:
//
//	provider, err := ghapi.NewGHProvider(ghapi.WithHost("github.example.com"))
func NewGHProvider(opts ...Option) (*GHProvider, error) {
	cfg := &config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.client != nil {
		return &GHProvider{client: cfg.client}, nil
	}

	client, err := api.NewRESTClient(cfg.opts)
	if err != nil {
		wrapped := errors.Wrap(err, errors.CodeUnauthorized, "failed to create REST client")
		return nil, errors.WithContext(wrapped, "hint", "Set GH_TOKEN or run 'gh auth login'")
	}

	return &GHProvider{client: client}, nil
}

// WithHost sets the GitHub host, e.g. "github.com" or an Enterprise host.
func WithHost(host string) Option {
	return func(cfg *config) error {
		if strings.TrimSpace(host) == "" {
			err := errors.New(errors.CodeInvalidInput, "host cannot be empty")
			return errors.WithContext(err, "field", "host")
		}
		cfg.opts.Host = host
		return nil
	}
}

// WithAuthToken sets the token instead of resolving it from the gh config.
func WithAuthToken(token string) Option {
	return func(cfg *config) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		cfg.opts.AuthToken = token
		return nil
	}
}

// WithTransport sets the HTTP round tripper used by the REST client.
func WithTransport(transport http.RoundTripper) Option {
	return func(cfg *config) error {
		if transport == nil {
			err := errors.New(errors.CodeInvalidInput, "transport cannot be nil")
			return errors.WithContext(err, "field", "transport")
		}
		cfg.opts.Transport = transport
		return nil
	}
}

// WithRESTClient uses an existing REST client; other options are ignored.
func WithRESTClient(client *api.RESTClient) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "client cannot be nil")
			return errors.WithContext(err, "field", "client")
		}
		cfg.client = client
		return nil
	}
}

// Get issues a GET request.
func (p *GHProvider) Get(ctx context.Context, path string, query url.Values) (*gh.Response, error) {
	return p.do(ctx, http.MethodGet, path, query)
}

// Put issues a PUT request without a body.
func (p *GHProvider) Put(ctx context.Context, path string, query url.Values) (*gh.Response, error) {
	return p.do(ctx, http.MethodPut, path, query)
}

// Delete issues a DELETE request.
func (p *GHProvider) Delete(ctx context.Context, path string, query url.Values) (*gh.Response, error) {
	return p.do(ctx, http.MethodDelete, path, query)
}

func (p *GHProvider) do(ctx context.Context, method, path string, query url.Values) (*gh.Response, error) {
	endpoint := strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	message := method + " " + path + " failed"

	resp, err := p.client.RequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, wrapError(err, message)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeNetwork, "failed to read response")
	}

	return &gh.Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// wrapError maps go-gh errors onto workspace error codes.
func wrapError(err error, message string) error {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		status := httpErr.StatusCode
		// Primary rate limits are reported as 403 with no quota left
		if status == http.StatusForbidden && httpErr.Headers.Get("X-RateLimit-Remaining") == "0" {
			status = http.StatusTooManyRequests
		}
		return gh.WrapHTTPError(err, status, message)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errors.Wrap(err, errors.CodeTimeout, message)
	}

	return errors.Wrap(err, errors.CodeNetwork, message)
}
