package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasabi0522/musubi/internal/config"
)

func TestRunInit(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "musubi", "config.yaml")
		app := &App{configPath: path}

		var buf bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&buf)
		require.NoError(t, app.runInit(cmd, nil))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "remote: origin")
		assert.Contains(t, buf.String(), "Created")
	})

	t.Run("template is a valid config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		app := &App{configPath: path}
		require.NoError(t, app.runInit(&cobra.Command{}, nil))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "origin", cfg.Remote)
		assert.Empty(t, cfg.Setup)
	})

	t.Run("errors when config already exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0644))

		app := &App{configPath: path}
		err := app.runInit(&cobra.Command{}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "existing", string(content))
	})

	t.Run("default path", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())
		want, err := config.DefaultPath()
		require.NoError(t, err)

		out, err := executeCommand(t, &App{}, "init")
		require.NoError(t, err)
		assert.Contains(t, out, want)
		assert.FileExists(t, want)
	})
}
