package github

import (
	"context"
	"fmt"
)

// Repository represents a GitHub repository and provides repository-scoped
// watching operations.
//
// Repository instances are typically created through a Client:
//
//	client := github.NewClient(provider, github.WithDefaultUser("octocat"))
//	repo := client.Repository("hello-world")
//
//	if err := repo.Watch(ctx); err != nil {
//	    log.Fatal(err)
//	}
type Repository struct {
	client *Client
	owner  string
	name   string
}

// Owner returns the repository owner (organization or username).
func (r *Repository) Owner() string {
	return r.owner
}

// Name returns the repository name (without owner).
func (r *Repository) Name() string {
	return r.name
}

// FullName returns the full repository name (owner/name).
func (r *Repository) FullName() string {
	return fmt.Sprintf("%s/%s", r.owner, r.name)
}

// Watchers lists the users watching the repository.
func (r *Repository) Watchers(ctx context.Context, params Params) ([]Record, error) {
	return r.client.Watching().ListWatchers(ctx, r.owner, r.name, params)
}

// IsWatched reports whether the authenticated caller watches the repository.
func (r *Repository) IsWatched(ctx context.Context) (bool, error) {
	return r.client.Watching().IsWatching(ctx, r.owner, r.name, nil)
}

// Watch starts watching the repository.
func (r *Repository) Watch(ctx context.Context) error {
	_, err := r.client.Watching().StartWatching(ctx, r.owner, r.name, nil)
	return err
}

// Unwatch stops watching the repository.
func (r *Repository) Unwatch(ctx context.Context) error {
	_, err := r.client.Watching().StopWatching(ctx, r.owner, r.name, nil)
	return err
}

// User is a GitHub account whose watched repositories can be listed.
type User struct {
	client *Client
	login  string
}

// Login returns the account login.
func (u *User) Login() string {
	return u.login
}

// Watched lists the repositories the user watches.
// An empty login falls back to the client's default user, then to the
// authenticated caller.
func (u *User) Watched(ctx context.Context, params Params) ([]Record, error) {
	return u.client.Watching().ListWatched(ctx, u.login, params)
}
