package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wasabi0522/musubi/internal/config"
	musubiexec "github.com/wasabi0522/musubi/internal/exec"
	"github.com/wasabi0522/musubi/internal/git"
	"github.com/wasabi0522/musubi/internal/repo"
)

// gitEnv keeps git output parseable and never waits on a credential prompt.
var gitEnv = []string{"GIT_TERMINAL_PROMPT=0", "LC_ALL=C"}

// App holds the dependency resolution function and builds the CLI command tree.
type App struct {
	resolveDeps func(opts resolveOpts) (*deps, error)

	verbose    bool
	jsonOutput bool
	configPath string
	dir        string
}

// NewApp creates an App with the default dependency resolver.
func NewApp() *App {
	return &App{resolveDeps: defaultResolveDeps}
}

type deps struct {
	cfg    *config.Config
	engine *repo.Engine
}

// resolveOpts controls how dependencies are resolved.
type resolveOpts struct {
	configPath string
	logger     *slog.Logger
}

func defaultResolveDeps(opts resolveOpts) (*deps, error) {
	path := opts.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	e := musubiexec.NewDefaultExecutor(
		musubiexec.WithTimeout(cfg.Timeout),
		musubiexec.WithEnv(gitEnv...),
	)
	return buildDeps(e, cfg, opts.logger)
}

func buildDeps(e musubiexec.Executor, cfg *config.Config, logger *slog.Logger) (*deps, error) {
	if err := e.LookPath(cfg.GitBin); err != nil {
		return nil, fmt.Errorf("required command '%s' not found", cfg.GitBin)
	}
	opts := []repo.Option{
		repo.WithRemote(cfg.Remote),
		repo.WithMergetool(cfg.Mergetool),
		repo.WithSetup(cfg.Setup),
	}
	if logger != nil {
		opts = append(opts, repo.WithLogger(logger))
	}
	g := git.NewClient(e, git.WithBinary(cfg.GitBin))
	return &deps{cfg: cfg, engine: repo.New(g, opts...)}, nil
}

// deps resolves dependencies with the global flags applied.
func (a *App) deps() (*deps, error) {
	return a.resolveDeps(resolveOpts{configPath: a.configPath, logger: a.logger()})
}

func (a *App) logger() *slog.Logger {
	if !a.verbose {
		return nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// files makes file arguments absolute against -C so they are read
// relative to where the user is, not to the repository root.
func (a *App) files(args []string) []string {
	base, err := filepath.Abs(a.dir)
	if err != nil {
		return args
	}
	out := make([]string, len(args))
	for i, f := range args {
		if filepath.IsAbs(f) {
			out[i] = f
			continue
		}
		out[i] = filepath.Join(base, f)
	}
	return out
}

func (a *App) file(arg string) string {
	if arg == "" {
		return ""
	}
	return a.files([]string{arg})[0]
}
