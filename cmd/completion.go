package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wasabi0522/musubi/internal/repo"
)

// completionFunc is the type for cobra shell completion functions.
type completionFunc = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)

func completionCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:       "completion <bash|zsh|fish>",
		Short:     "Generate shell completion scripts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}

// completeBranches lists local and remote-tracking branch names.
func (a *App) completeBranches(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	d, err := a.deps()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return branchNames(ctx, d.engine, a.dir), cobra.ShellCompDirectiveNoFileComp
}

func branchNames(ctx context.Context, e *repo.Engine, dir string) []string {
	res := e.Branches(ctx, dir)
	if !res.OK {
		return nil
	}
	names := make([]string, 0, len(res.Data))
	for _, b := range res.Data {
		names = append(names, b.Name)
	}
	return names
}
