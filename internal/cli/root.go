// Package cli implements the cobra command tree for ghwatch.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmgilman/ghwatch/errors"
	"github.com/jmgilman/ghwatch/internal/config"
	"github.com/jmgilman/ghwatch/internal/logging"
)

// ExitError wraps an error with a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Execute builds the command tree, runs it, and returns the exit code.
func Execute() int {
	executed, err := NewRootCommand().ExecuteC()
	if err == nil {
		return 0
	}

	code := 1
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
		err = exitErr.Err
	}

	if err != nil {
		format := config.OutputText
		if executed != nil && executed.Context() != nil {
			format = config.FromContext(executed.Context()).Output
		}
		_ = reportError(os.Stderr, format, err)
	}

	return code
}

// NewRootCommand constructs the top-level cobra.Command with all
// subcommands attached.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultDeps())
}

func newRootCommand(d deps) *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "ghwatch",
		Short: "Manage GitHub repository watch subscriptions",
		Long: `ghwatch lists the watchers of a repository, lists the repositories
a user watches, and starts, stops or checks the authenticated user's watch
on a repository.

Requests go through one of three transports: the go-github SDK (sdk), the
gh CLI (cli) or the go-gh REST client (gh).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd, cfgFile)
			if err != nil {
				return &ExitError{Code: 2, Err: err}
			}

			logger := logging.SetupWithWriter(cfg, cmd.ErrOrStderr())

			ctx := cmd.Context()
			ctx = config.NewContext(ctx, cfg)
			ctx = logging.NewContext(ctx, logger)
			cmd.SetContext(ctx)

			logger.Debug("configuration loaded",
				slog.String("provider", cfg.Provider),
				slog.String("host", cfg.Host),
				slog.String("configFile", cfg.ConfigFile),
			)

			return nil
		},
	}

	// Global persistent flags.
	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: .ghwatch.yaml)")
	pf.String("provider", config.ProviderSDK, "transport: sdk, cli, gh")
	pf.String("token", "", "GitHub token (default: the token gh would use)")
	pf.String("host", config.DefaultHost, "GitHub host")
	pf.String("base-url", "", "API root for the sdk provider")
	pf.String("user", "", "default user or owner")
	pf.String("repo", "", "default repository (name or owner/name)")
	pf.StringP("output", "o", config.OutputText, "output format: text, json, yaml")
	pf.String("log-level", config.LogLevelInfo, "log level: debug, info, warn, error")
	pf.String("log-format", config.LogFormatText, "log format: text, json")

	// Flag parsing errors return exit code 2.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Err: err}
	})

	cmd.AddCommand(
		newWatchersCommand(d),
		newWatchedCommand(d),
		newStatusCommand(d),
		newWatchCommand(d),
		newUnwatchCommand(d),
		newVersionCommand(),
	)

	return cmd
}
