package cli

import (
	"context"
	"strings"

	"github.com/cli/go-gh/v2/pkg/repository"

	"github.com/jmgilman/ghwatch/errors"
	"github.com/jmgilman/ghwatch/github"
	ghcli "github.com/jmgilman/ghwatch/github/providers/cli"
	"github.com/jmgilman/ghwatch/github/providers/ghapi"
	"github.com/jmgilman/ghwatch/github/providers/sdk"
	"github.com/jmgilman/ghwatch/internal/config"
	"github.com/jmgilman/ghwatch/internal/logging"
)

// deps are the outside-world hooks the commands depend on.
type deps struct {
	// newProvider builds the transport selected by cfg.
	newProvider func(ctx context.Context, cfg *config.Config) (github.Provider, error)

	// currentRepo detects the repository of the working directory.
	currentRepo func() (github.Scope, error)
}

func defaultDeps() deps {
	return deps{
		newProvider: buildProvider,
		currentRepo: detectRepo,
	}
}

// buildProvider creates the provider named by cfg.Provider.
func buildProvider(_ context.Context, cfg *config.Config) (github.Provider, error) {
	switch cfg.Provider {
	case config.ProviderCLI:
		var opts []ghcli.Option
		if cfg.Host != "" && cfg.Host != config.DefaultHost {
			opts = append(opts, ghcli.WithHostname(cfg.Host))
		}
		return ghcli.NewCLIProvider(opts...)

	case config.ProviderGH:
		var opts []ghapi.Option
		if cfg.Host != "" {
			opts = append(opts, ghapi.WithHost(cfg.Host))
		}
		if cfg.Token != "" {
			opts = append(opts, ghapi.WithAuthToken(cfg.Token))
		}
		return ghapi.NewGHProvider(opts...)

	default:
		token := cfg.ResolveToken()
		if token == "" {
			err := errors.New(errors.CodeUnauthorized, "no GitHub token found")
			return nil, errors.WithContext(err, "hint", "Pass --token, set GHWATCH_TOKEN or GH_TOKEN, or run 'gh auth login'")
		}

		opts := []sdk.Option{sdk.WithToken(token)}
		if baseURL := sdkBaseURL(cfg); baseURL != "" {
			opts = append(opts, sdk.WithBaseURL(baseURL))
		}
		return sdk.NewSDKProvider(opts...)
	}
}

// sdkBaseURL returns the API root for the sdk provider, deriving the
// Enterprise Server root from Host when no base URL is configured.
func sdkBaseURL(cfg *config.Config) string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	if cfg.Host == "" || cfg.Host == config.DefaultHost {
		return ""
	}
	return "https://" + strings.TrimSuffix(cfg.Host, "/") + "/api/v3/"
}

// detectRepo resolves the repository from GH_REPO or the git remotes of the
// working directory.
func detectRepo() (github.Scope, error) {
	repo, err := repository.Current()
	if err != nil {
		return github.Scope{}, errors.Wrap(err, errors.CodeNotFound, "failed to detect repository")
	}
	return github.Scope{User: repo.Owner, Repo: repo.Name}, nil
}

// newClient builds a watching client from the configuration stored in ctx.
func (d deps) newClient(ctx context.Context) (*github.Client, error) {
	cfg := config.FromContext(ctx)

	scope, err := cfg.Scope()
	if err != nil {
		return nil, err
	}

	provider, err := d.newProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return github.NewClient(provider,
		github.WithDefaultScope(scope),
		github.WithLogger(logging.FromContext(ctx)),
	), nil
}
