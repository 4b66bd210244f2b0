package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wasabi0522/musubi/internal/ui"
	"github.com/wasabi0522/musubi/internal/watch"
)

func (a *App) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print a line whenever the repository state changes",
		Long: "Polls status and merge/rebase progress, and prints a line each time " +
			"the branch, ahead/behind counts, file count or conflicts change. " +
			"With --json each line is one JSON object. Stops on interrupt.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.deps()
			if err != nil {
				return err
			}
			opts := []watch.Option{
				watch.WithInterval(d.cfg.Watch.Interval),
				watch.WithDebounce(d.cfg.Watch.Debounce),
				watch.WithIgnore(d.cfg.Watch.Ignore),
			}
			if l := a.logger(); l != nil {
				opts = append(opts, watch.WithLogger(l))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := cmd.OutOrStdout()
			enc := json.NewEncoder(w)
			return watch.New(d.engine, a.dir, opts...).Run(ctx, func(u watch.Update) {
				if a.jsonOutput {
					// best-effort: stdout write failure is non-actionable
					_ = enc.Encode(u)
					return
				}
				printUpdate(w, u)
			})
		},
	}
}

func printUpdate(w io.Writer, u watch.Update) {
	var b strings.Builder
	b.WriteString(u.At.Format("15:04:05"))
	b.WriteString(" ")
	if u.Status != nil {
		b.WriteString(ui.Cyan(u.Status.CurrentBranch))
		fmt.Fprintf(&b, " ahead %d behind %d, %d changed", u.Status.Ahead, u.Status.Behind, len(u.Status.Files))
	}
	if p := u.Progress; p != nil {
		switch {
		case p.InRebase:
			b.WriteString(ui.Yellow(" [rebase]"))
		case p.InMerge:
			b.WriteString(ui.Yellow(" [merge]"))
		}
		if len(p.Conflicted) > 0 {
			b.WriteString(ui.Red(fmt.Sprintf(" %d conflicted", len(p.Conflicted))))
		}
	}
	_, _ = fmt.Fprintln(w, b.String())
}
