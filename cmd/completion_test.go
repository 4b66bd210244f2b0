package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasabi0522/musubi/testutil"
)

func TestCompletionCommand(t *testing.T) {
	app := NewApp()
	rootCmd := app.BuildRootCmd()
	// Find the completion subcommand
	var compCmd *cobra.Command
	for _, c := range rootCmd.Commands() {
		if c.Use == "completion <bash|zsh|fish>" {
			compCmd = c
			break
		}
	}
	require.NotNil(t, compCmd, "completion command not found")

	t.Run("bash", func(t *testing.T) {
		var buf bytes.Buffer
		compCmd.SetOut(&buf)
		err := compCmd.RunE(compCmd, []string{"bash"})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "bash")
	})

	t.Run("zsh", func(t *testing.T) {
		var buf bytes.Buffer
		compCmd.SetOut(&buf)
		err := compCmd.RunE(compCmd, []string{"zsh"})
		require.NoError(t, err)
		assert.NotEmpty(t, buf.String())
	})

	t.Run("fish", func(t *testing.T) {
		var buf bytes.Buffer
		compCmd.SetOut(&buf)
		err := compCmd.RunE(compCmd, []string{"fish"})
		require.NoError(t, err)
		assert.NotEmpty(t, buf.String())
	})

	t.Run("unsupported shell", func(t *testing.T) {
		err := compCmd.RunE(compCmd, []string{"powershell"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported shell")
	})
}

func TestCompleteBranches(t *testing.T) {
	dir := testutil.GitRepoWithBranch(t, "feature")
	app := testApp(t)
	app.dir = dir

	names, directive := app.completeBranches(&cobra.Command{}, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.ElementsMatch(t, []string{"main", "feature"}, names)
}

func TestCompleteBranches_NotARepository(t *testing.T) {
	app := testApp(t)
	app.dir = testutil.TempDir(t)

	names, directive := app.completeBranches(&cobra.Command{}, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Empty(t, names)
}
