package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jmgilman/ghwatch/internal/config"
	"github.com/jmgilman/ghwatch/internal/logging"
)

func newWatchersCommand(d deps) *cobra.Command {
	var flags *requestFlags

	cmd := &cobra.Command{
		Use:   "watchers [owner/repo]",
		Short: "List the users watching a repository",
		Long: `List the users watching a repository.

Without an argument the configured --user/--repo are used, then the
repository of the current directory.`,
		Example: `  ghwatch watchers octocat/hello-world
  ghwatch watchers --per-page 100 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := d.newClient(ctx)
			if err != nil {
				return err
			}

			target, err := d.resolveRepo(client, args)
			if err != nil {
				return err
			}

			params, err := flags.Params()
			if err != nil {
				return err
			}

			records, err := client.Watching().ListWatchers(ctx, target.User, target.Repo, params)
			if err != nil {
				return err
			}

			logging.FromContext(ctx).Debug("listed watchers",
				slog.String("repository", target.String()),
				slog.Int("count", len(records)),
			)

			return writeRecords(cmd.OutOrStdout(), config.FromContext(ctx).Output, records, loginLabel)
		},
	}

	flags = addRequestFlags(cmd, true)

	return cmd
}

func newWatchedCommand(d deps) *cobra.Command {
	var flags *requestFlags

	cmd := &cobra.Command{
		Use:   "watched [user]",
		Short: "List the repositories a user watches",
		Long: `List the repositories a user watches.

Without an argument the configured --user is used. When no user is
configured either, the repositories watched by the authenticated user are
listed.`,
		Example: `  ghwatch watched octocat
  ghwatch watched -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := d.newClient(ctx)
			if err != nil {
				return err
			}

			params, err := flags.Params()
			if err != nil {
				return err
			}

			var user string
			if len(args) > 0 {
				user = args[0]
			}

			records, err := client.Watching().ListWatched(ctx, user, params)
			if err != nil {
				return err
			}

			return writeRecords(cmd.OutOrStdout(), config.FromContext(ctx).Output, records, fullNameLabel)
		},
	}

	flags = addRequestFlags(cmd, true)

	return cmd
}

func newStatusCommand(d deps) *cobra.Command {
	var (
		flags      *requestFlags
		exitStatus bool
	)

	cmd := &cobra.Command{
		Use:   "status [owner/repo]",
		Short: "Check whether you watch a repository",
		Example: `  ghwatch status octocat/hello-world
  ghwatch status --exit-status octocat/hello-world && echo watching`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := d.newClient(ctx)
			if err != nil {
				return err
			}

			target, err := d.resolveRepo(client, args)
			if err != nil {
				return err
			}

			params, err := flags.Params()
			if err != nil {
				return err
			}

			watching, err := client.Watching().IsWatching(ctx, target.User, target.Repo, params)
			if err != nil {
				return err
			}

			status := watchStatus{Repository: target.String(), Watching: watching}
			if err := writeStatus(cmd.OutOrStdout(), config.FromContext(ctx).Output, status); err != nil {
				return err
			}

			if exitStatus && !watching {
				return &ExitError{Code: 1}
			}

			return nil
		},
	}

	flags = addRequestFlags(cmd, false)
	cmd.Flags().BoolVar(&exitStatus, "exit-status", false, "exit with status 1 when not watching")

	return cmd
}

func newWatchCommand(d deps) *cobra.Command {
	var flags *requestFlags

	cmd := &cobra.Command{
		Use:     "watch [owner/repo]",
		Short:   "Start watching a repository",
		Example: `  ghwatch watch octocat/hello-world`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := d.newClient(ctx)
			if err != nil {
				return err
			}

			target, err := d.resolveRepo(client, args)
			if err != nil {
				return err
			}

			params, err := flags.Params()
			if err != nil {
				return err
			}

			resp, err := client.Watching().StartWatching(ctx, target.User, target.Repo, params)
			if err != nil {
				return err
			}

			logging.FromContext(ctx).Debug("started watching",
				slog.String("repository", target.String()),
				slog.Int("status", statusOf(resp)),
			)

			return writeStatus(cmd.OutOrStdout(), config.FromContext(ctx).Output,
				watchStatus{Repository: target.String(), Watching: true})
		},
	}

	flags = addRequestFlags(cmd, false)

	return cmd
}

func newUnwatchCommand(d deps) *cobra.Command {
	var flags *requestFlags

	cmd := &cobra.Command{
		Use:     "unwatch [owner/repo]",
		Short:   "Stop watching a repository",
		Example: `  ghwatch unwatch octocat/hello-world`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := d.newClient(ctx)
			if err != nil {
				return err
			}

			target, err := d.resolveRepo(client, args)
			if err != nil {
				return err
			}

			params, err := flags.Params()
			if err != nil {
				return err
			}

			resp, err := client.Watching().StopWatching(ctx, target.User, target.Repo, params)
			if err != nil {
				return err
			}

			logging.FromContext(ctx).Debug("stopped watching",
				slog.String("repository", target.String()),
				slog.Int("status", statusOf(resp)),
			)

			return writeStatus(cmd.OutOrStdout(), config.FromContext(ctx).Output,
				watchStatus{Repository: target.String(), Watching: false})
		},
	}

	flags = addRequestFlags(cmd, false)

	return cmd
}
