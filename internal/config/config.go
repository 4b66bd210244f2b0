package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "MUSUBI_"

// Config represents the musubi configuration.
type Config struct {
	GitBin    string        `koanf:"git_bin"`
	Remote    string        `koanf:"remote"`
	Timeout   time.Duration `koanf:"timeout"`
	Mergetool string        `koanf:"mergetool"`
	Watch     Watch         `koanf:"watch"`

	// Setup holds git config entries applied to a repository before its
	// first mutating operation, keyed by the dotted git config name.
	Setup map[string]string `koanf:"-"`
}

// Watch configures the change watcher.
type Watch struct {
	Interval time.Duration `koanf:"interval"`
	Debounce time.Duration `koanf:"debounce"`
	Ignore   []string      `koanf:"ignore"`
}

func defaults() map[string]any {
	return map[string]any{
		"git_bin":        "git",
		"remote":         "origin",
		"timeout":        "2m",
		"watch.interval": "2s",
		"watch.debounce": "200ms",
		"watch.ignore":   []string{".git/objects/**", ".git/logs/**", "**/*.lock"},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "musubi", "config.yaml"), nil
}

// Load reads configuration from the given YAML file path and environment variables.
// Missing file is not an error; defaults are used.
// Priority: environment variables > file > defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	// confmap.Provider wraps an in-memory map and never fails.
	_ = k.Load(confmap.Provider(defaults(), "."), nil)

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	// MUSUBI_WATCH__INTERVAL sets watch.interval.
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env config: %w", err)
	}

	return unmarshal(k)
}

// LoadFromReader reads configuration from an io.Reader containing YAML.
// Environment variables are not applied. Useful for testing.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults(), "."), nil)
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// koanf splits keys on "." so git names like pull.rebase arrive nested;
	// flattening the subtree restores them.
	setup := k.Cut("setup").All()
	cfg.Setup = make(map[string]string, len(setup))
	for key, v := range setup {
		if v == nil {
			continue
		}
		cfg.Setup[key] = fmt.Sprint(v)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.GitBin == "" {
		return fmt.Errorf("git_bin must not be empty")
	}
	if c.Remote == "" {
		return fmt.Errorf("remote must not be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %s", c.Timeout)
	}
	if c.Watch.Interval <= 0 {
		return fmt.Errorf("watch.interval must be positive: %s", c.Watch.Interval)
	}
	if c.Watch.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be positive: %s", c.Watch.Debounce)
	}
	for _, p := range c.Watch.Ignore {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return fmt.Errorf("watch.ignore: invalid pattern %q", p)
		}
	}
	return nil
}
