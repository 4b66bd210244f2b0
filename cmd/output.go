package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/wasabi0522/musubi/internal/repo"
	"github.com/wasabi0522/musubi/internal/result"
	"github.com/wasabi0522/musubi/internal/status"
	"github.com/wasabi0522/musubi/internal/ui"
	"golang.org/x/term"
)

// errReported marks a failure whose envelope has already been printed.
var errReported = errors.New("failure reported")

// emit prints res as a JSON envelope with --json, otherwise hands the data
// to human. A failed result becomes the command's error.
func emit[T any](a *App, cmd *cobra.Command, res result.Result[T], human func(w io.Writer, data T)) error {
	w := cmd.OutOrStdout()
	if a.jsonOutput {
		if err := printJSON(w, res); err != nil {
			return err
		}
		if !res.OK {
			return errReported
		}
		return nil
	}
	if !res.OK {
		return res.Err()
	}
	if human != nil {
		human(w, res.Data)
	}
	return nil
}

// done prints msg for operations that return no data.
func done(msg string) func(io.Writer, result.None) {
	return func(w io.Writer, _ result.None) {
		// best-effort: stdout write failure is non-actionable
		_, _ = fmt.Fprintln(w, msg)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var musubiTableStyle = table.Style{
	Name: "musubi",
	Box: table.BoxStyle{
		PaddingLeft:  "",
		PaddingRight: "  ",
	},
	Options: table.Options{
		DrawBorder:      false,
		SeparateHeader:  false,
		SeparateRows:    false,
		SeparateColumns: false,
	},
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

func newTable(w io.Writer, header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(header)
	tw.SetStyle(musubiTableStyle)
	if width := terminalWidth(w); width > 0 {
		tw.SetAllowedRowLength(width)
	}
	return tw
}

func branchLine(branch, tracking string, ahead, behind int) string {
	var b strings.Builder
	b.WriteString("On branch ")
	b.WriteString(ui.Cyan(branch))
	if tracking != "" {
		fmt.Fprintf(&b, " [%s", tracking)
		if ahead > 0 {
			fmt.Fprintf(&b, " ahead %d", ahead)
		}
		if behind > 0 {
			fmt.Fprintf(&b, " behind %d", behind)
		}
		b.WriteString("]")
	}
	return b.String()
}

func printStatus(w io.Writer, s *status.Snapshot) {
	branch := s.CurrentBranch
	if s.Detached {
		branch = "(detached)"
	}
	_, _ = fmt.Fprintln(w, branchLine(branch, s.TrackingBranch, s.Ahead, s.Behind))
	if s.Clean {
		_, _ = fmt.Fprintln(w, ui.Green("Working tree clean"))
		return
	}

	tw := newTable(w, table.Row{"", "CATEGORY", "PATH"})
	for _, f := range s.Files {
		codes := f.Index.String() + f.Worktree.String()
		category := f.Category().String()
		switch f.Category() {
		case status.Conflicted:
			category = ui.Red(category)
		case status.Untracked:
			category = ui.Yellow(category)
		}
		path := f.Path
		if f.OrigPath != "" {
			path = f.OrigPath + " -> " + f.Path
		}
		tw.AppendRow(table.Row{codes, category, path})
	}
	tw.Render()
}

func printProgress(w io.Writer, p *repo.ProgressState) {
	switch {
	case p.InRebase:
		_, _ = fmt.Fprintln(w, ui.Yellow("Rebase in progress"))
	case p.CherryPick:
		_, _ = fmt.Fprintln(w, ui.Yellow("Cherry-pick in progress"))
	case p.InMerge:
		_, _ = fmt.Fprintln(w, ui.Yellow("Merge in progress"))
	default:
		_, _ = fmt.Fprintln(w, "No merge or rebase in progress")
	}
	printConflicts(w, p.Conflicted)
}

func printConflicts(w io.Writer, paths []string) {
	if len(paths) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "Conflicted files (%d):\n", len(paths))
	for _, p := range paths {
		_, _ = fmt.Fprintln(w, "  "+ui.Red(p))
	}
}
