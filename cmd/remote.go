package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wasabi0522/musubi/internal/git"
	"github.com/wasabi0522/musubi/internal/repo"
	"github.com/wasabi0522/musubi/internal/ui"
)

// remoteArgs reads optional [remote] [branch] positionals.
func remoteArgs(args []string) (remote, branch string) {
	if len(args) > 0 {
		remote = args[0]
	}
	if len(args) > 1 {
		branch = args[1]
	}
	return remote, branch
}

func (a *App) fetchCmd(complete completionFunc) *cobra.Command {
	var prune bool
	cmd := &cobra.Command{
		Use:               "fetch [remote] [branch]",
		Short:             "Download objects and refs from a remote",
		Args:              cobra.MatchAll(cobra.MaximumNArgs(2), validateRefArgs),
		ValidArgsFunction: complete,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			remote, branch := remoteArgs(args)
			res := d.engine.Fetch(cmd.Context(), a.dir, git.FetchOptions{Remote: remote, Branch: branch, Prune: prune})
			return emit(a, cmd, res, done("Fetched"))
		},
	}
	cmd.Flags().BoolVar(&prune, "prune", false, "Remove remote-tracking refs that no longer exist")
	return cmd
}

func (a *App) pullCmd(complete completionFunc) *cobra.Command {
	var noRebase, noAutostash bool
	cmd := &cobra.Command{
		Use:               "pull [remote] [branch]",
		Short:             "Fetch and integrate remote changes",
		Args:              cobra.MatchAll(cobra.MaximumNArgs(2), validateRefArgs),
		ValidArgsFunction: complete,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			remote, branch := remoteArgs(args)
			res := d.engine.Pull(cmd.Context(), a.dir, git.PullOptions{
				Remote:    remote,
				Branch:    branch,
				Rebase:    !noRebase,
				Autostash: !noAutostash,
			})
			return emit(a, cmd, res, done("Pulled"))
		},
	}
	cmd.Flags().BoolVar(&noRebase, "no-rebase", false, "Merge instead of rebasing")
	cmd.Flags().BoolVar(&noAutostash, "no-autostash", false, "Do not stash local changes around the pull")
	return cmd
}

func (a *App) pushCmd(complete completionFunc) *cobra.Command {
	var setUpstream, forceWithLease bool
	cmd := &cobra.Command{
		Use:               "push [remote] [branch]",
		Short:             "Update the remote branch",
		Args:              cobra.MatchAll(cobra.MaximumNArgs(2), validateRefArgs),
		ValidArgsFunction: complete,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			remote, branch := remoteArgs(args)
			res := d.engine.Push(cmd.Context(), a.dir, git.PushOptions{
				Remote:         remote,
				Branch:         branch,
				SetUpstream:    setUpstream,
				ForceWithLease: forceWithLease,
			})
			return emit(a, cmd, res, done("Pushed"))
		},
	}
	cmd.Flags().BoolVarP(&setUpstream, "set-upstream", "u", false, "Record the pushed branch as upstream")
	cmd.Flags().BoolVar(&forceWithLease, "force-with-lease", false, "Overwrite the remote branch if it is where we last saw it")
	return cmd
}

func (a *App) upstreamCmd(complete completionFunc) *cobra.Command {
	return &cobra.Command{
		Use:               "upstream [remote] [branch]",
		Short:             "Set the upstream of the current branch",
		Args:              cobra.MatchAll(cobra.MaximumNArgs(2), validateRefArgs),
		ValidArgsFunction: complete,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			remote, branch := remoteArgs(args)
			res := d.engine.SetUpstream(cmd.Context(), a.dir, remote, branch)
			return emit(a, cmd, res, done("Upstream set"))
		},
	}
}

func (a *App) syncCmd(complete completionFunc) *cobra.Command {
	return &cobra.Command{
		Use:               "sync [remote] [branch]",
		Short:             "Fetch, pull with rebase and push",
		Args:              cobra.MatchAll(cobra.MaximumNArgs(2), validateRefArgs),
		ValidArgsFunction: complete,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			remote, branch := remoteArgs(args)
			res := d.engine.Sync(cmd.Context(), a.dir, remote, branch)
			return emit(a, cmd, res, func(w io.Writer, r *repo.SyncResult) {
				switch {
				case r.NeedsResolution:
					_, _ = fmt.Fprintln(w, ui.Yellow("Sync stopped: resolve conflicts, then run 'musubi continue' and sync again"))
					if r.Progress != nil {
						printConflicts(w, r.Progress.Conflicted)
					}
				case r.Pushed:
					_, _ = fmt.Fprintln(w, ui.Green("Synced"))
				default:
					_, _ = fmt.Fprintln(w, "Up to date")
				}
			})
		},
	}
}
