package cli

import (
	"strings"

	"github.com/jmgilman/ghwatch/github"
)

// resolveRepo picks the repository a command targets. An "owner/name"
// argument wins; a bare argument names a repository of the default user.
// Whatever is still missing comes from the client's default scope and then
// from the repository of the working directory.
func (d deps) resolveRepo(client *github.Client, args []string) (github.Scope, error) {
	var explicit github.Scope
	if len(args) > 0 {
		arg := strings.TrimSpace(args[0])
		if strings.Contains(arg, "/") {
			parsed, err := github.ParseScope(arg)
			if err != nil {
				return github.Scope{}, err
			}
			explicit = parsed
		} else {
			explicit.Repo = arg
		}
	}

	scope := client.Scope().Resolve(explicit.User, explicit.Repo)
	if scope.HasRepo() {
		return scope, nil
	}

	// A default user without a repository is not completed from the
	// working directory, which may belong to someone else.
	if scope.HasUser() && scope.Repo == "" {
		return github.Scope{}, scope.Validate()
	}

	current, err := d.currentRepo()
	if err != nil {
		return github.Scope{}, err
	}

	return current.Resolve(scope.User, scope.Repo), nil
}
