package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults when no file", func(t *testing.T) {
		cfg, err := Load("/nonexistent/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, "git", cfg.GitBin)
		assert.Equal(t, "origin", cfg.Remote)
		assert.Equal(t, 2*time.Minute, cfg.Timeout)
		assert.Equal(t, 2*time.Second, cfg.Watch.Interval)
		assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
		assert.Contains(t, cfg.Watch.Ignore, ".git/objects/**")
		assert.Empty(t, cfg.Setup)
	})

	t.Run("from yaml file", func(t *testing.T) {
		path := writeConfig(t, strings.Join([]string{
			"remote: upstream",
			"timeout: 30s",
			"mergetool: vimdiff",
			"setup:",
			"  pull.rebase: true",
			"  rerere.enabled: \"1\"",
			"watch:",
			"  interval: 5s",
			"  ignore:",
			"    - node_modules/**",
			"",
		}, "\n"))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "upstream", cfg.Remote)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, "vimdiff", cfg.Mergetool)
		assert.Equal(t, map[string]string{"pull.rebase": "true", "rerere.enabled": "1"}, cfg.Setup)
		assert.Equal(t, 5*time.Second, cfg.Watch.Interval)
		assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
		assert.Equal(t, []string{"node_modules/**"}, cfg.Watch.Ignore)
	})

	t.Run("env var overrides file", func(t *testing.T) {
		path := writeConfig(t, "remote: from_file\n")
		t.Setenv("MUSUBI_REMOTE", "from_env")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from_env", cfg.Remote)
	})

	t.Run("nested env var", func(t *testing.T) {
		t.Setenv("MUSUBI_WATCH__INTERVAL", "10s")
		t.Setenv("MUSUBI_TIMEOUT", "0s")

		cfg, err := Load("/nonexistent/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, cfg.Watch.Interval)
		assert.Zero(t, cfg.Timeout)
	})

	t.Run("negative timeout rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, "timeout: -1s\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout must not be negative")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "invalid: [yaml: broken"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading config")
	})
}

func TestLoadFromReader(t *testing.T) {
	t.Run("reads valid yaml", func(t *testing.T) {
		cfg, err := LoadFromReader(strings.NewReader("git_bin: /usr/local/bin/git\nwatch:\n  debounce: 50ms\n"))
		require.NoError(t, err)
		assert.Equal(t, "/usr/local/bin/git", cfg.GitBin)
		assert.Equal(t, 50*time.Millisecond, cfg.Watch.Debounce)
	})

	t.Run("uses defaults", func(t *testing.T) {
		cfg, err := LoadFromReader(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, "origin", cfg.Remote)
	})

	t.Run("nested setup keys", func(t *testing.T) {
		cfg, err := LoadFromReader(strings.NewReader("setup:\n  branch:\n    autoSetupRebase: always\n"))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"branch.autoSetupRebase": "always"}, cfg.Setup)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := LoadFromReader(strings.NewReader("invalid: [yaml: broken"))
		require.Error(t, err)
	})

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"zero interval", "watch:\n  interval: 0s\n", "watch.interval must be positive"},
		{"negative debounce", "watch:\n  debounce: -5ms\n", "watch.debounce must be positive"},
		{"bad pattern", "watch:\n  ignore:\n    - \"[oops\"\n", "invalid pattern"},
		{"empty remote", "remote: \"\"\n", "remote must not be empty"},
		{"empty git_bin", "git_bin: \"\"\n", "git_bin must not be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(path))
	assert.Equal(t, "musubi", filepath.Base(filepath.Dir(path)))
}
