package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/wasabi0522/musubi/internal/git"
	"github.com/wasabi0522/musubi/internal/ui"
)

func (a *App) branchCmd(complete completionFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "List, create and delete branches",
		Args:  cobra.NoArgs,
		RunE:  a.runBranchList,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List local and remote-tracking branches",
			Args:    cobra.NoArgs,
			RunE:    a.runBranchList,
		},
		a.branchCreateCmd(complete),
		a.branchDeleteCmd(complete),
	)
	return cmd
}

func (a *App) runBranchList(cmd *cobra.Command, args []string) error {
	d, err := a.deps()
	if err != nil {
		return err
	}
	return emit(a, cmd, d.engine.Branches(cmd.Context(), a.dir), printBranches)
}

func printBranches(w io.Writer, branches []git.Branch) {
	tw := newTable(w, table.Row{"", "BRANCH", "COMMIT", "UPSTREAM"})
	for _, b := range branches {
		marker := " "
		if b.Current {
			marker = ui.Green("*")
		}
		name := b.Name
		if b.Remote {
			name = ui.Cyan(name)
		}
		upstream := b.Upstream
		if b.Track != "" {
			upstream += " " + ui.Yellow("["+b.Track+"]")
		}
		commit := b.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		tw.AppendRow(table.Row{marker, name, commit, strings.TrimSpace(upstream)})
	}
	tw.Render()
}

func (a *App) branchCreateCmd(complete completionFunc) *cobra.Command {
	return &cobra.Command{
		Use:               "create <name> [start-point]",
		Short:             "Create a branch without switching to it",
		Args:              cobra.MatchAll(cobra.RangeArgs(1, 2), validateRefArgs),
		ValidArgsFunction: complete,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			start := ""
			if len(args) > 1 {
				start = args[1]
			}
			return emit(a, cmd, d.engine.CreateBranch(cmd.Context(), a.dir, args[0], start), done("Created branch "+args[0]))
		},
	}
}

func (a *App) branchDeleteCmd(complete completionFunc) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:               "delete <name>",
		Short:             "Delete a local branch",
		Args:              cobra.MatchAll(cobra.ExactArgs(1), validateRefArgs),
		ValidArgsFunction: complete,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			return emit(a, cmd, d.engine.DeleteBranch(cmd.Context(), a.dir, args[0], force), done("Deleted branch "+args[0]))
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "D", false, "Delete even if not merged")
	return cmd
}

func (a *App) checkoutCmd(complete completionFunc) *cobra.Command {
	return &cobra.Command{
		Use:               "checkout <ref>",
		Aliases:           []string{"co"},
		Short:             "Switch to a branch or commit",
		Args:              cobra.MatchAll(cobra.ExactArgs(1), validateRefArgs),
		ValidArgsFunction: complete,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			return emit(a, cmd, d.engine.Checkout(cmd.Context(), a.dir, args[0]), done("Switched to "+args[0]))
		},
	}
}

func (a *App) logCmd() *cobra.Command {
	var opts git.LogOptions
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show commit history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRefArgs(cmd, nonEmpty(opts.From, opts.To)); err != nil {
				return err
			}
			d, err := a.deps()
			if err != nil {
				return err
			}
			return emit(a, cmd, d.engine.Log(cmd.Context(), a.dir, opts), func(w io.Writer, commits []git.Commit) {
				tw := newTable(w, table.Row{"COMMIT", "DATE", "AUTHOR", "SUBJECT"})
				for _, c := range commits {
					tw.AppendRow(table.Row{ui.Yellow(c.ShortHash), c.Date.Format("2006-01-02 15:04"), c.Author, c.Subject})
				}
				tw.Render()
			})
		},
	}
	cmd.Flags().IntVarP(&opts.MaxCount, "max-count", "n", 20, "Limit the number of commits")
	cmd.Flags().StringVar(&opts.From, "from", "", "Exclude commits reachable from this ref")
	cmd.Flags().StringVar(&opts.To, "to", "", "Show commits reachable from this ref (default HEAD)")
	return cmd
}

func (a *App) diffCmd() *cobra.Command {
	var opts git.DiffOptions
	var nameOnly bool
	cmd := &cobra.Command{
		Use:   "diff [file]",
		Short: "Show changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRefArgs(cmd, nonEmpty(opts.From, opts.To)); err != nil {
				return err
			}
			file := ""
			if len(args) > 0 {
				file = a.file(args[0])
			}
			if !nameOnly && file == "" {
				return fmt.Errorf("specify a file or --name-only")
			}
			d, err := a.deps()
			if err != nil {
				return err
			}
			if nameOnly {
				opts.Path = file
				return emit(a, cmd, d.engine.DiffNameOnly(cmd.Context(), a.dir, opts), func(w io.Writer, names []string) {
					for _, n := range names {
						_, _ = fmt.Fprintln(w, n)
					}
				})
			}
			return emit(a, cmd, d.engine.DiffFile(cmd.Context(), a.dir, file, opts), func(w io.Writer, diff string) {
				_, _ = io.WriteString(w, diff)
			})
		},
	}
	cmd.Flags().BoolVar(&nameOnly, "name-only", false, "Show only the names of changed files")
	cmd.Flags().BoolVar(&opts.Staged, "staged", false, "Compare the index with HEAD")
	cmd.Flags().StringVar(&opts.From, "from", "", "Compare from this ref")
	cmd.Flags().StringVar(&opts.To, "to", "", "Compare to this ref")
	return cmd
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
