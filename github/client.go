package github

import (
	"log/slog"
)

// Client provides the watching operations on top of a Provider.
// It serves as the main entry point of the package.
//
// Example usage:
//
//	provider, err := sdk.NewSDKProvider(sdk.WithToken("ghp_..."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := github.NewClient(provider, github.WithDefaultUser("octocat"))
//	watchers, err := client.Watching().ListWatchers(ctx, "", "hello-world", nil)
//
// A Client is immutable and safe for concurrent use.
type Client struct {
	provider Provider
	scope    Scope
	logger   *slog.Logger
}

// NewClient creates a new client with the specified provider.
// Options set the default scope and logger.
func NewClient(provider Provider, opts ...ClientOption) *Client {
	c := &Client{
		provider: provider,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithScope returns a copy of the client whose default scope is scope.
// The receiver is not modified.
func (c *Client) WithScope(scope Scope) *Client {
	clone := *c
	clone.scope = scope
	return &clone
}

// Scope returns the client's default scope.
func (c *Client) Scope() Scope {
	return c.scope
}

// Watching returns the watching operations bound to this client.
func (c *Client) Watching() *Watching {
	return &Watching{client: c}
}

// Repository returns a Repository for the given name, owned by the client's
// default user. It performs no request.
func (c *Client) Repository(name string) *Repository {
	return &Repository{
		client: c,
		owner:  c.scope.User,
		name:   name,
	}
}

// User returns a User handle for login. It performs no request.
func (c *Client) User(login string) *User {
	return &User{
		client: c,
		login:  login,
	}
}

// Provider returns the underlying Provider.
// This is an escape hatch for endpoints the client does not wrap.
func (c *Client) Provider() Provider {
	return c.provider
}
