// Package repo is the repository operations engine. Every public operation
// resolves its path to a repository root and returns a result.Result.
// Operations that change refs, the index or the working tree run one at a
// time per root, in call order.
package repo

import (
	"context"
	"errors"
	"maps"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/wasabi0522/musubi/internal/git"
	"github.com/wasabi0522/musubi/internal/repolock"
	"github.com/wasabi0522/musubi/internal/result"
)

// DefaultRemote is used when an operation needs a remote and none was given.
const DefaultRemote = "origin"

// Logger receives debug traces and best-effort failure warnings.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for traces and best-effort warnings.
func WithLogger(l Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRemote sets the remote used when a caller passes none.
func WithRemote(name string) Option {
	return func(e *Engine) {
		if name != "" {
			e.remote = name
		}
	}
}

// WithMergetool sets the tool passed to `git mergetool --tool`.
func WithMergetool(tool string) Option {
	return func(e *Engine) { e.mergetool = tool }
}

// WithSetup sets git config entries applied once per root before the first
// mutating operation.
func WithSetup(entries map[string]string) Option {
	return func(e *Engine) { e.setup = entries }
}

// WithLocker shares a serializer between engines.
func WithLocker(l *repolock.Locker) Option {
	return func(e *Engine) { e.locks = l }
}

// Engine runs repository operations through a git Client.
type Engine struct {
	git       git.Client
	locks     *repolock.Locker
	logger    Logger
	remote    string
	mergetool string
	setup     map[string]string

	// configured marks roots whose one-time setup has been applied.
	configured *cache.Cache
	// resolutions keeps worktree content of conflicted files captured before
	// a per-file resolution, so RevertResolution can restore it exactly.
	resolutions *cache.Cache
}

// New creates an Engine.
func New(g git.Client, opts ...Option) *Engine {
	e := &Engine{
		git:         g,
		logger:      nopLogger{},
		remote:      DefaultRemote,
		configured:  cache.New(cache.NoExpiration, 0),
		resolutions: cache.New(24*time.Hour, time.Hour),
	}
	for _, o := range opts {
		o(e)
	}
	if e.locks == nil {
		e.locks = repolock.New(repolock.WithLogger(e.logger))
	}
	return e
}

// Remote returns the remote used when a caller passes none.
func (e *Engine) Remote() string {
	return e.remote
}

// query runs a read-only operation. A path outside any repository is not a
// failure for reads: the result is a success carrying the zero value.
func query[T any](ctx context.Context, e *Engine, path string, fn func(ctx context.Context, root string) (T, error)) result.Result[T] {
	return result.Guard(func() result.Result[T] {
		root, err := e.resolveRoot(ctx, path)
		if errors.Is(err, ErrNotRepository) {
			var zero T
			return result.Success(zero)
		}
		if err != nil {
			return result.Failure[T](err)
		}
		return result.From(fn(ctx, root))
	})
}

// mutate runs fn while holding the root's serializer slot.
func mutate[T any](ctx context.Context, e *Engine, path, op string, fn func(ctx context.Context, root string) (T, error)) result.Result[T] {
	return result.Guard(func() result.Result[T] {
		root, err := e.resolveRoot(ctx, path)
		if err != nil {
			return result.Failure[T](err)
		}
		v, err := repolock.Run(ctx, e.locks, root, func(ctx context.Context) (T, error) {
			e.logger.Debug("running operation", "op", op, "root", root)
			e.ensureSetup(ctx, root)
			return fn(ctx, root)
		})
		return result.From(v, err)
	})
}

// step adapts an error-only operation to mutate.
func step(fn func(ctx context.Context, root string) error) func(context.Context, string) (result.None, error) {
	return func(ctx context.Context, root string) (result.None, error) {
		return result.None{}, fn(ctx, root)
	}
}

// ensureSetup applies the configured git config entries the first time a
// root is mutated. Failures are logged and retried on the next operation.
func (e *Engine) ensureSetup(ctx context.Context, root string) {
	if len(e.setup) == 0 {
		return
	}
	if err := e.configured.Add(root, struct{}{}, cache.NoExpiration); err != nil {
		return
	}
	for _, key := range slices.Sorted(maps.Keys(e.setup)) {
		if err := e.git.SetConfig(ctx, root, key, e.setup[key]); err != nil {
			e.logger.Warn("one-time repository setup failed", "root", root, "key", key, "error", err)
			e.configured.Delete(root)
			return
		}
	}
	e.logger.Debug("applied one-time repository setup", "root", root, "entries", len(e.setup))
}

// Configured reports whether one-time setup has been applied to root.
func (e *Engine) Configured(root string) bool {
	_, ok := e.configured.Get(root)
	return ok
}
