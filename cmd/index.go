package cmd

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/wasabi0522/musubi/internal/git"
	"github.com/wasabi0522/musubi/internal/repo"
	"github.com/wasabi0522/musubi/internal/result"
)

func (a *App) addCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "add [paths...]",
		Short: "Stage files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("specify paths or --all")
			}
			d, err := a.deps()
			if err != nil {
				return err
			}
			var res result.Result[result.None]
			if all {
				res = d.engine.AddAll(cmd.Context(), a.dir)
			} else {
				res = d.engine.AddPaths(cmd.Context(), a.dir, a.files(args)...)
			}
			return emit(a, cmd, res, done("Staged"))
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "A", false, "Stage every change")
	return cmd
}

func (a *App) unstageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unstage <paths...>",
		Short: "Unstage files, keeping working tree changes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			return emit(a, cmd, d.engine.ResetPaths(cmd.Context(), a.dir, a.files(args)...), done("Unstaged"))
		},
	}
}

func printCommit(w io.Writer, c *git.Commit) {
	if c == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", c.ShortHash, c.Subject)
}

func (a *App) commitCmd() *cobra.Command {
	var message string
	var all bool
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record staged changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			res := d.engine.Commit(cmd.Context(), a.dir, message, repo.CommitOptions{AddAll: all})
			return emit(a, cmd, res, printCommit)
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Stage every change before committing")
	return cmd
}

func (a *App) discardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discard <file>",
		Short: "Throw away local changes to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			return emit(a, cmd, d.engine.DiscardFile(cmd.Context(), a.dir, a.file(args[0])), done("Discarded "+args[0]))
		},
	}
}

func (a *App) resetCmd(complete completionFunc) *cobra.Command {
	var hard bool
	cmd := &cobra.Command{
		Use:               "reset --hard [ref]",
		Short:             "Move the current branch and discard all changes",
		Args:              cobra.MatchAll(cobra.MaximumNArgs(1), validateRefArgs),
		ValidArgsFunction: complete,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !hard {
				return fmt.Errorf("reset discards changes; pass --hard to confirm")
			}
			d, err := a.deps()
			if err != nil {
				return err
			}
			ref := ""
			if len(args) > 0 {
				ref = args[0]
			}
			return emit(a, cmd, d.engine.ResetHard(cmd.Context(), a.dir, ref), done("Reset"))
		},
	}
	cmd.Flags().BoolVar(&hard, "hard", false, "Discard index and working tree changes")
	return cmd
}

func (a *App) revertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revert <commit>",
		Short: "Create a commit that undoes another",
		Args:  cobra.MatchAll(cobra.ExactArgs(1), validateRefArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			return emit(a, cmd, d.engine.RevertCommit(cmd.Context(), a.dir, args[0]), printCommit)
		},
	}
}

func (a *App) stashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stash",
		Short: "Save, list and restore stashed changes",
	}
	cmd.AddCommand(a.stashSaveCmd(), a.stashListCmd(), a.stashPopCmd())
	return cmd
}

func (a *App) stashSaveCmd() *cobra.Command {
	var message string
	var untracked bool
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Stash local changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			res := d.engine.StashSave(cmd.Context(), a.dir, repo.StashOptions{Message: message, IncludeUntracked: untracked})
			return emit(a, cmd, res, done("Stashed"))
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "Stash message")
	cmd.Flags().BoolVarP(&untracked, "include-untracked", "u", false, "Stash untracked files too")
	return cmd
}

func (a *App) stashListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stash entries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			return emit(a, cmd, d.engine.StashList(cmd.Context(), a.dir), func(w io.Writer, stashes []git.Stash) {
				if len(stashes) == 0 {
					return
				}
				tw := newTable(w, table.Row{"REF", "MESSAGE"})
				for _, s := range stashes {
					tw.AppendRow(table.Row{s.Ref, s.Message})
				}
				tw.Render()
			})
		},
	}
}

func (a *App) stashPopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pop [stash]",
		Short: "Apply and drop a stash entry",
		Args:  cobra.MatchAll(cobra.MaximumNArgs(1), validateRefArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			ref := ""
			if len(args) > 0 {
				ref = args[0]
			}
			return emit(a, cmd, d.engine.StashPop(cmd.Context(), a.dir, ref), done("Popped"))
		},
	}
}
