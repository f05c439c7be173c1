package github

import (
	"fmt"
	"strings"
)

// Scope is the (user, repo) pair an operation targets when its explicit
// arguments are left empty. A Client carries one default Scope, fixed at
// construction; use Client.WithScope to derive a client with another.
type Scope struct {
	User string
	Repo string
}

// ParseScope parses "owner/repo" or a bare "owner".
func ParseScope(s string) (Scope, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Scope{}, nil
	}

	owner, repo, found := strings.Cut(s, "/")
	if !found {
		return Scope{User: owner}, nil
	}
	if owner == "" || repo == "" || strings.Contains(repo, "/") {
		return Scope{}, newInvalidInputError("repository", fmt.Sprintf("%q is not in owner/repo form", s))
	}
	return Scope{User: owner, Repo: repo}, nil
}

// Resolve returns the scope obtained by preferring the explicit user and repo
// over s. Blank arguments count as absent.
func (s Scope) Resolve(user, repo string) Scope {
	resolved := Scope{User: strings.TrimSpace(s.User), Repo: strings.TrimSpace(s.Repo)}
	if u := strings.TrimSpace(user); u != "" {
		resolved.User = u
	}
	if r := strings.TrimSpace(repo); r != "" {
		resolved.Repo = r
	}
	return resolved
}

// HasUser reports whether the scope names a user.
func (s Scope) HasUser() bool {
	return strings.TrimSpace(s.User) != ""
}

// HasRepo reports whether the scope names both a user and a repo.
func (s Scope) HasRepo() bool {
	return s.HasUser() && strings.TrimSpace(s.Repo) != ""
}

// Validate returns ErrCodeInvalidInput unless both user and repo are set.
func (s Scope) Validate() error {
	return requireUserRepo(s.User, s.Repo)
}

// String returns "user/repo", "user" or "".
func (s Scope) String() string {
	if s.Repo == "" {
		return s.User
	}
	return s.User + "/" + s.Repo
}

func requireUserRepo(user, repo string) error {
	if strings.TrimSpace(user) == "" {
		return newInvalidInputError("user", "must not be empty")
	}
	if strings.TrimSpace(repo) == "" {
		return newInvalidInputError("repo", "must not be empty")
	}
	return nil
}
