package github

import (
	"context"
	"net/url"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/provider.go -pkg mocks . Provider

// Provider is the transport the watching facade runs on.
// Implementations include SDKProvider (go-github), CLIProvider (gh api) and
// GHProvider (go-gh REST client).
//
// A provider performs exactly one authenticated HTTP call per method,
// decodes nothing, and reports failures as errors.PlatformError values whose
// code is derived from the HTTP status (see WrapHTTPError). A 404 must surface
// as ErrCodeNotFound; IsWatching depends on it.
//
// Paths are relative to the API root and start with a slash, for example
// "/user/watched/octocat/hello-world". query may be nil.
//
// Example using SDK provider:
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("ghp_..."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := provider.Get(ctx, "/user/watched", nil)
type Provider interface {
	// Get issues a GET request.
	Get(ctx context.Context, path string, query url.Values) (*Response, error)

	// Put issues a PUT request without a body.
	Put(ctx context.Context, path string, query url.Values) (*Response, error)

	// Delete issues a DELETE request.
	Delete(ctx context.Context, path string, query url.Values) (*Response, error)
}
