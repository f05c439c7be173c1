// Package github provides a clean, idiomatic wrapper around the GitHub
// repository watching endpoints.
package github

import (
	"net/url"
	"strings"
)

// watchersPath returns the path listing the watchers of user/repo.
func watchersPath(user, repo string) string {
	return joinPath("repos", user, repo, "watchers")
}

// watchedPath returns the path listing repositories watched by user, or by
// the authenticated caller when user is empty.
func watchedPath(user string) string {
	if user == "" {
		return joinPath("user", "watched")
	}
	return joinPath("users", user, "watched")
}

// subscriptionPath returns the path of the caller's watch on user/repo.
func subscriptionPath(user, repo string) string {
	return joinPath("user", "watched", user, repo)
}

func joinPath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(escaped, "/")
}
