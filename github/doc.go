// Package github provides a clean, idiomatic wrapper around the GitHub
// repository watching endpoints.
//
// The library offers three pluggable transports: one using the official Go
// GitHub SDK (go-github), one running the gh CLI, and one using the go-gh
// REST client. The Provider abstraction lets callers pick the transport that
// fits their environment while the watching operations stay the same.
//
// # Core Types
//
// Client is the main entry point. It carries a Provider, a default Scope and
// a logger, and is immutable once built.
//
// Watching exposes the operations: listing a repository's watchers, listing
// the repositories a user watches, checking, starting and stopping a watch.
//
// Scope is the (user, repo) pair an operation falls back to when its own
// arguments are empty.
//
// Params carries free-form query options. Keys are normalized to lower
// snake_case before they reach the transport.
//
// # Providers
//
// The sdk provider uses google/go-github and authenticates with a token.
//
// The cli provider runs "gh api" and inherits the gh CLI login.
//
// The ghapi provider uses cli/go-gh and resolves credentials the same way
// the gh CLI does, without requiring the binary.
//
// # Usage
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("ghp_xxxxxxxxxxxx"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := github.NewClient(provider, github.WithDefaultUser("octocat"))
//	watching := client.Watching()
//
//	// Explicit arguments win over the default scope.
//	watchers, err := watching.ListWatchers(ctx, "", "hello-world", github.Params{"perPage": 50})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range watchers {
//	    fmt.Println(w.Login())
//	}
//
//	// Lazy iteration; the request is sent when the loop starts.
//	for repo, err := range watching.Watched(ctx, "", nil) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(repo.FullName())
//	}
//
//	ok, err := watching.IsWatching(ctx, "octocat", "hello-world", nil)
//
// # Error Handling
//
// All errors use the workspace errors library:
//
//   - ErrCodeInvalidInput: a required user or repo is missing; no request is sent
//   - ErrCodeNotFound: the API answered 404
//   - ErrCodeAuthenticationFailed: invalid or missing authentication
//   - ErrCodePermissionDenied: insufficient permissions
//   - ErrCodeRateLimited: API rate limit exceeded
//   - ErrCodeNetwork: network failures and 5xx answers
//
// Provider errors are returned unchanged. IsWatching is the only operation
// that interprets one: a not found answer means the caller is not watching.
//
//	if _, err := watching.StartWatching(ctx, "octocat", "hello-world", nil); err != nil {
//	    if errors.IsRetryable(err) {
//	        // back off and try again
//	    }
//	    return err
//	}
//
// # Testing
//
// The mocks sub-package holds a moq-generated ProviderMock:
//
//	mock := &mocks.ProviderMock{
//	    GetFunc: func(ctx context.Context, path string, query url.Values) (*github.Response, error) {
//	        return &github.Response{StatusCode: 200, Body: []byte(`[]`)}, nil
//	    },
//	}
//	client := github.NewClient(mock)
package github
