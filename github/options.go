package github

import "log/slog"

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDefaultUser sets the user operations fall back to when called with an
// empty user.
func WithDefaultUser(user string) ClientOption {
	return func(c *Client) {
		c.scope.User = user
	}
}

// WithDefaultRepo sets the repository operations fall back to when called
// with an empty repo.
func WithDefaultRepo(repo string) ClientOption {
	return func(c *Client) {
		c.scope.Repo = repo
	}
}

// WithDefaultScope sets both defaults at once.
func WithDefaultScope(scope Scope) ClientOption {
	return func(c *Client) {
		c.scope = scope
	}
}

// WithLogger sets the logger used for request tracing. Nil is ignored.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
