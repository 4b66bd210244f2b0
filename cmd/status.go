package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/wasabi0522/musubi/internal/repo"
	"github.com/wasabi0522/musubi/internal/status"
	"github.com/wasabi0522/musubi/internal/ui"
)

func (a *App) repoRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the repository root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			res := d.engine.GetRoot(cmd.Context(), a.dir)
			return emit(a, cmd, res, func(w io.Writer, root *string) {
				if root == nil {
					_, _ = fmt.Fprintln(w, ui.Yellow("Not a repository"))
					return
				}
				_, _ = fmt.Fprintln(w, *root)
			})
		},
	}
}

func (a *App) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show branch and changed files",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			return emit(a, cmd, d.engine.GetStatus(cmd.Context(), a.dir), func(w io.Writer, s *status.Snapshot) {
				if s == nil {
					_, _ = fmt.Fprintln(w, ui.Yellow("Not a repository"))
					return
				}
				printStatus(w, s)
			})
		},
	}
}

func (a *App) progressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show whether a merge or rebase is in progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			return emit(a, cmd, d.engine.GetProgressState(cmd.Context(), a.dir), func(w io.Writer, p *repo.ProgressState) {
				if p == nil {
					_, _ = fmt.Fprintln(w, ui.Yellow("Not a repository"))
					return
				}
				printProgress(w, p)
			})
		},
	}
}

func (a *App) conflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List conflicted files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			return emit(a, cmd, d.engine.GetConflictedFiles(cmd.Context(), a.dir), func(w io.Writer, paths []string) {
				for _, p := range paths {
					_, _ = fmt.Fprintln(w, p)
				}
			})
		},
	}
}

func (a *App) remoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remote",
		Short: "Show remotes and upstream tracking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			return emit(a, cmd, d.engine.GetRemoteInfo(cmd.Context(), a.dir), func(w io.Writer, info *repo.RemoteInfo) {
				if info == nil {
					_, _ = fmt.Fprintln(w, ui.Yellow("Not a repository"))
					return
				}
				_, _ = fmt.Fprintln(w, branchLine(info.CurrentBranch, info.TrackingBranch, info.Ahead, info.Behind))
				if len(info.Remotes) == 0 {
					return
				}
				tw := newTable(w, table.Row{"REMOTE", "URL"})
				for _, r := range info.Remotes {
					tw.AppendRow(table.Row{r.Name, r.FetchURL})
				}
				tw.Render()
			})
		},
	}
}
