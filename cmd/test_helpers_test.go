package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wasabi0522/musubi/internal/config"
	musubiexec "github.com/wasabi0522/musubi/internal/exec"
	"github.com/wasabi0522/musubi/internal/ui"
)

func TestMain(m *testing.M) {
	ui.SetNoColor(true)
	os.Exit(m.Run())
}

// testApp creates an App backed by real git and default config.
func testApp(t *testing.T) *App {
	t.Helper()
	cfg, err := config.LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)
	return appWithConfig(cfg)
}

func appWithConfig(cfg *config.Config) *App {
	return &App{
		resolveDeps: func(opts resolveOpts) (*deps, error) {
			return buildDeps(musubiexec.NewDefaultExecutor(musubiexec.WithEnv(gitEnv...)), cfg, opts.logger)
		},
	}
}

// appWithDepsError creates an App whose resolveDeps returns an error.
func appWithDepsError(err error) *App {
	return &App{
		resolveDeps: func(resolveOpts) (*deps, error) { return nil, err },
	}
}

// executeCommand runs the CLI command tree with the given args and returns the output.
func executeCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := app.BuildRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// run executes args in dir and fails the test on error.
func run(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := executeCommand(t, testApp(t), append([]string{"-C", dir}, args...)...)
	require.NoError(t, err, out)
	return out
}
