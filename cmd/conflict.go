package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wasabi0522/musubi/internal/repo"
	"github.com/wasabi0522/musubi/internal/result"
	"github.com/wasabi0522/musubi/internal/ui"
)

// sequenceFlags are the --continue/--abort switches shared by merge and rebase.
type sequenceFlags struct {
	cont    bool
	abort   bool
	message string
}

func (f *sequenceFlags) register(cmd *cobra.Command, withMessage bool) {
	cmd.Flags().BoolVar(&f.cont, "continue", false, "Conclude after conflicts are resolved")
	cmd.Flags().BoolVar(&f.abort, "abort", false, "Abandon and restore the previous state")
	cmd.MarkFlagsMutuallyExclusive("continue", "abort")
	if withMessage {
		cmd.Flags().StringVarP(&f.message, "message", "m", "", "Merge commit message (with --continue)")
	}
}

// check validates positionals against the chosen mode.
func (f *sequenceFlags) check(args []string, what string) error {
	if f.cont || f.abort {
		if len(args) > 0 {
			return fmt.Errorf("--continue and --abort take no arguments")
		}
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("specify the %s", what)
	}
	return nil
}

func printMergeResult(started string) func(io.Writer, *repo.MergeResult) {
	return func(w io.Writer, r *repo.MergeResult) {
		if !r.NeedsResolution {
			_, _ = fmt.Fprintln(w, ui.Green(started))
			return
		}
		_, _ = fmt.Fprintln(w, ui.Yellow("Stopped on conflicts: resolve them, then run 'musubi continue'"))
		if r.Progress != nil {
			printConflicts(w, r.Progress.Conflicted)
		}
	}
}

func (a *App) mergeCmd(complete completionFunc) *cobra.Command {
	var f sequenceFlags
	cmd := &cobra.Command{
		Use:               "merge <ref> | --continue | --abort",
		Short:             "Merge a branch into the current one",
		Args:              cobra.MatchAll(cobra.MaximumNArgs(1), validateRefArgs),
		ValidArgsFunction: complete,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.check(args, "ref to merge"); err != nil {
				return err
			}
			d, err := a.deps()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			switch {
			case f.cont:
				return emit(a, cmd, d.engine.MergeContinue(ctx, a.dir, f.message), done("Merge concluded"))
			case f.abort:
				return emit(a, cmd, d.engine.MergeAbort(ctx, a.dir), done("Merge aborted"))
			}
			return emit(a, cmd, d.engine.Merge(ctx, a.dir, args[0]), printMergeResult("Merged "+args[0]))
		},
	}
	f.register(cmd, true)
	return cmd
}

func (a *App) rebaseCmd(complete completionFunc) *cobra.Command {
	var f sequenceFlags
	cmd := &cobra.Command{
		Use:               "rebase <upstream> | --continue | --abort",
		Short:             "Replay the current branch onto another",
		Args:              cobra.MatchAll(cobra.MaximumNArgs(1), validateRefArgs),
		ValidArgsFunction: complete,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.check(args, "upstream to rebase onto"); err != nil {
				return err
			}
			d, err := a.deps()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			switch {
			case f.cont:
				return emit(a, cmd, d.engine.RebaseContinue(ctx, a.dir), done("Rebase concluded"))
			case f.abort:
				return emit(a, cmd, d.engine.RebaseAbort(ctx, a.dir), done("Rebase aborted"))
			}
			return emit(a, cmd, d.engine.RebaseStart(ctx, a.dir, args[0]), printMergeResult("Rebased onto "+args[0]))
		},
	}
	f.register(cmd, false)
	return cmd
}

func (a *App) continueCmd() *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "continue",
		Short: "Continue whichever merge or rebase is in progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			return emit(a, cmd, d.engine.ContinueAny(cmd.Context(), a.dir, message), done("Continued"))
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "Merge commit message")
	return cmd
}

type resolveFunc func(ctx context.Context, path, file string) result.Result[*repo.ProgressState]

// resolveAction is one `musubi resolve` subcommand.
type resolveAction struct {
	use   string
	short string
	run   func(e *repo.Engine) resolveFunc
}

func (a *App) resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a conflicted file",
	}
	actions := []resolveAction{
		{"ours <file>", "Take the version from HEAD", func(e *repo.Engine) resolveFunc {
			return e.ChooseOurs
		}},
		{"theirs <file>", "Take the incoming version", func(e *repo.Engine) resolveFunc {
			return e.ChooseTheirs
		}},
		{"mark <file>", "Mark the working tree content as resolved", func(e *repo.Engine) resolveFunc {
			return e.MarkResolved
		}},
		{"undo <file>", "Restore the file to its conflicted state", func(e *repo.Engine) resolveFunc {
			return e.RevertResolution
		}},
	}
	for _, act := range actions {
		cmd.AddCommand(a.resolveActionCmd(act))
	}
	return cmd
}

func (a *App) resolveActionCmd(act resolveAction) *cobra.Command {
	return &cobra.Command{
		Use:   act.use,
		Short: act.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			res := act.run(d.engine)(cmd.Context(), a.dir, a.file(args[0]))
			return emit(a, cmd, res, printRemaining)
		},
	}
}

func printRemaining(w io.Writer, p *repo.ProgressState) {
	if len(p.Conflicted) == 0 {
		_, _ = fmt.Fprintln(w, ui.Green("All conflicts resolved; run 'musubi continue'"))
		return
	}
	printConflicts(w, p.Conflicted)
}

func (a *App) mergetoolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mergetool [file]",
		Short: "Open the configured merge tool",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			file := ""
			if len(args) > 0 {
				file = a.file(args[0])
			}
			return emit(a, cmd, d.engine.OpenMergetool(cmd.Context(), a.dir, file), printRemaining)
		},
	}
}
