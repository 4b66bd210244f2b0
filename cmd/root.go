package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wasabi0522/musubi/internal/ui"
)

var version = "dev"

// BuildRootCmd builds the complete CLI command tree.
func (a *App) BuildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "musubi",
		Short: "Serialized git operations with merge and rebase conflict handling",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("musubi version %s\n", version))

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.BoolVar(&a.jsonOutput, "json", false, "Print the result envelope as JSON")
	pf.StringVar(&a.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/musubi/config.yaml)")
	pf.StringVarP(&a.dir, "dir", "C", ".", "Run as if started in this directory")

	complete := a.completeBranches

	rootCmd.AddCommand(
		// queries
		a.repoRootCmd(),
		a.statusCmd(),
		a.progressCmd(),
		a.conflictsCmd(),
		a.remoteCmd(),
		a.branchCmd(complete),
		a.logCmd(),
		a.diffCmd(),
		a.watchCmd(),

		// index and commits
		a.addCmd(),
		a.unstageCmd(),
		a.commitCmd(),
		a.discardCmd(),
		a.resetCmd(complete),
		a.revertCmd(),
		a.stashCmd(),
		a.checkoutCmd(complete),

		// remotes
		a.fetchCmd(complete),
		a.pullCmd(complete),
		a.pushCmd(complete),
		a.upstreamCmd(complete),
		a.syncCmd(complete),

		// merge and rebase
		a.mergeCmd(complete),
		a.rebaseCmd(complete),
		a.continueCmd(),
		a.resolveCmd(),
		a.mergetoolCmd(),

		a.initCmd(),
		completionCmd(rootCmd),
	)

	return rootCmd
}

// Execute creates an App and runs the CLI.
func Execute() {
	app := NewApp()
	cmd := app.BuildRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			_, _ = fmt.Fprintln(os.Stderr, ui.Red("Error:"), err)
		}
		os.Exit(1)
	}
}
