package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasabi0522/musubi/internal/config"
	musubiexec "github.com/wasabi0522/musubi/internal/exec"
)

func TestBuildDeps(t *testing.T) {
	t.Run("git not found", func(t *testing.T) {
		cfg, err := config.LoadFromReader(strings.NewReader("git_bin: /opt/git\n"))
		require.NoError(t, err)
		e := &musubiexec.ExecutorMock{
			LookPathFunc: func(name string) error {
				return fmt.Errorf("not found: %s", name)
			},
		}
		_, err = buildDeps(e, cfg, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/opt/git")
	})

	t.Run("config flows into engine", func(t *testing.T) {
		cfg, err := config.LoadFromReader(strings.NewReader("remote: upstream\n"))
		require.NoError(t, err)
		e := &musubiexec.ExecutorMock{
			LookPathFunc: func(name string) error { return nil },
		}
		d, err := buildDeps(e, cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, "upstream", d.engine.Remote())
		assert.Same(t, cfg, d.cfg)
	})
}

func TestDefaultResolveDeps(t *testing.T) {
	t.Run("invalid config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("timeout: -1s\n"), 0644))

		_, err := defaultResolveDeps(resolveOpts{configPath: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout")
	})

	t.Run("missing config file uses defaults", func(t *testing.T) {
		d, err := defaultResolveDeps(resolveOpts{configPath: filepath.Join(t.TempDir(), "none.yaml")})
		require.NoError(t, err)
		assert.Equal(t, "origin", d.engine.Remote())
	})
}

func TestDepsErrorPropagates(t *testing.T) {
	_, err := executeCommand(t, appWithDepsError(fmt.Errorf("boom")), "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestAppFiles(t *testing.T) {
	dir := t.TempDir()
	a := &App{dir: dir}
	abs := filepath.Join(dir, "x", "abs.txt")

	got := a.files([]string{"a.txt", abs, filepath.Join("sub", "b.txt")})
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		abs,
		filepath.Join(dir, "sub", "b.txt"),
	}, got)
	assert.Empty(t, a.file(""))
}

func TestAppLogger(t *testing.T) {
	assert.Nil(t, (&App{}).logger())
	assert.NotNil(t, (&App{verbose: true}).logger())
}
