package github

import (
	"context"
	"iter"
	"net/http"
	"strings"
)

// Watching groups the repository watching operations of a Client.
//
// Watching instances are obtained through Client.Watching:
//
//	w := client.Watching()
//	ok, err := w.IsWatching(ctx, "octocat", "hello-world", nil)
//
// Empty user or repo arguments fall back to the client's default scope for
// the list operations. IsWatching, StartWatching and StopWatching always
// require both explicitly.
type Watching struct {
	client *Client
}

// ListWatchers returns the users watching user/repo, in response order.
// Returns ErrCodeInvalidInput if user or repo cannot be resolved.
func (w *Watching) ListWatchers(ctx context.Context, user, repo string, params Params) ([]Record, error) {
	resp, err := w.watchers(ctx, user, repo, params)
	if err != nil {
		return nil, err
	}
	return resp.Records()
}

// Watchers returns a lazy sequence over the watchers of user/repo.
// Each range issues a fresh request. A failure is yielded once as (nil, err).
func (w *Watching) Watchers(ctx context.Context, user, repo string, params Params) iter.Seq2[Record, error] {
	return w.sequence(func() ([]Record, error) {
		return w.ListWatchers(ctx, user, repo, params)
	})
}

// EachWatcher calls fn once per watcher of user/repo.
// Iteration stops at the first error returned by fn, which is returned as is.
func (w *Watching) EachWatcher(ctx context.Context, user, repo string, params Params, fn func(Record) error) error {
	records, err := w.ListWatchers(ctx, user, repo, params)
	if err != nil {
		return err
	}
	return each(records, fn)
}

// ListWatched returns the repositories watched by user. When user is empty
// and the client has no default user, the authenticated caller's watched
// repositories are listed instead.
func (w *Watching) ListWatched(ctx context.Context, user string, params Params) ([]Record, error) {
	scope := w.client.scope.Resolve(user, "")
	resp, err := w.do(ctx, http.MethodGet, watchedPath(scope.User), params)
	if err != nil {
		return nil, err
	}
	return resp.Records()
}

// Watched returns a lazy sequence over the repositories watched by user.
func (w *Watching) Watched(ctx context.Context, user string, params Params) iter.Seq2[Record, error] {
	return w.sequence(func() ([]Record, error) {
		return w.ListWatched(ctx, user, params)
	})
}

// EachWatched calls fn once per repository watched by user.
func (w *Watching) EachWatched(ctx context.Context, user string, params Params, fn func(Record) error) error {
	records, err := w.ListWatched(ctx, user, params)
	if err != nil {
		return err
	}
	return each(records, fn)
}

// IsWatching reports whether the authenticated caller watches user/repo.
// A not found answer from the API means false; other errors are returned.
func (w *Watching) IsWatching(ctx context.Context, user, repo string, params Params) (bool, error) {
	if err := requireUserRepo(user, repo); err != nil {
		return false, err
	}

	_, err := w.do(ctx, http.MethodGet, subscriptionPath(strings.TrimSpace(user), strings.TrimSpace(repo)), params)
	if err != nil {
		if IsNotFound(err) {
			w.client.logger.DebugContext(ctx, "repository not watched", "user", user, "repo", repo)
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// StartWatching watches user/repo as the authenticated caller and returns
// the transport's response unchanged.
func (w *Watching) StartWatching(ctx context.Context, user, repo string, params Params) (*Response, error) {
	if err := requireUserRepo(user, repo); err != nil {
		return nil, err
	}
	return w.do(ctx, http.MethodPut, subscriptionPath(strings.TrimSpace(user), strings.TrimSpace(repo)), params)
}

// StopWatching stops watching user/repo and returns the transport's
// response unchanged.
func (w *Watching) StopWatching(ctx context.Context, user, repo string, params Params) (*Response, error) {
	if err := requireUserRepo(user, repo); err != nil {
		return nil, err
	}
	return w.do(ctx, http.MethodDelete, subscriptionPath(strings.TrimSpace(user), strings.TrimSpace(repo)), params)
}

func (w *Watching) watchers(ctx context.Context, user, repo string, params Params) (*Response, error) {
	scope := w.client.scope.Resolve(user, repo)
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	return w.do(ctx, http.MethodGet, watchersPath(scope.User, scope.Repo), params)
}

// do sends one request through the provider. Provider errors are returned
// without further wrapping.
func (w *Watching) do(ctx context.Context, method, path string, params Params) (*Response, error) {
	query := params.Values()
	w.client.logger.DebugContext(ctx, "sending request", "method", method, "path", path, "query", query.Encode())

	var (
		resp *Response
		err  error
	)
	switch method {
	case http.MethodPut:
		resp, err = w.client.provider.Put(ctx, path, query)
	case http.MethodDelete:
		resp, err = w.client.provider.Delete(ctx, path, query)
	default:
		resp, err = w.client.provider.Get(ctx, path, query)
	}
	if err != nil {
		w.client.logger.DebugContext(ctx, "request failed", "method", method, "path", path, "error", err)
		return nil, err
	}
	return resp, nil
}

func (w *Watching) sequence(list func() ([]Record, error)) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		records, err := list()
		if err != nil {
			yield(nil, err)
			return
		}
		for _, r := range records {
			if !yield(r, nil) {
				return
			}
		}
	}
}

func each(records []Record, fn func(Record) error) error {
	for _, r := range records {
		if err := fn(r); err != nil {
			return err
		}
	}
	return nil
}
