// Package watch polls a repository's status and progress and reports when
// they change. Polls happen on an interval and shortly after filesystem
// activity in the working tree or git directory.
package watch

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/wasabi0522/musubi/internal/repo"
	"github.com/wasabi0522/musubi/internal/result"
	"github.com/wasabi0522/musubi/internal/status"
)

// Defaults used when options are not given.
const (
	DefaultInterval = 2 * time.Second
	DefaultDebounce = 200 * time.Millisecond
)

// DefaultIgnore skips git internals that change on every object write.
var DefaultIgnore = []string{
	".git/objects/**",
	".git/logs/**",
	"**/*.lock",
}

// ErrNotRepository is returned by Run when the watched path is not inside a repository.
var ErrNotRepository = errors.New("not a repository")

// Source provides the queries a Watcher polls. *repo.Engine satisfies it.
type Source interface {
	GetRoot(ctx context.Context, path string) result.Result[*string]
	GetStatus(ctx context.Context, path string) result.Result[*status.Snapshot]
	GetProgressState(ctx context.Context, path string) result.Result[*repo.ProgressState]
}

// Logger receives debug traces and warnings.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Option configures a Watcher.
type Option func(*Watcher)

// WithInterval sets how often the repository is polled without filesystem activity.
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithDebounce sets how long filesystem events are collected before a poll.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithIgnore sets doublestar patterns, relative to the root, whose events
// do not trigger a poll.
func WithIgnore(patterns []string) Option {
	return func(w *Watcher) { w.ignore = patterns }
}

// WithLogger sets the logger.
func WithLogger(l Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// Update is one observed state of the repository.
type Update struct {
	Root      string              `json:"root"`
	Signature string              `json:"signature"`
	Status    *status.Snapshot    `json:"status"`
	Progress  *repo.ProgressState `json:"progress"`
	At        time.Time           `json:"at"`
}

// Watcher reports repository changes.
type Watcher struct {
	src      Source
	path     string
	interval time.Duration
	debounce time.Duration
	ignore   []string
	logger   Logger
}

// New creates a Watcher for the repository containing path.
func New(src Source, path string, opts ...Option) *Watcher {
	w := &Watcher{
		src:      src,
		path:     path,
		interval: DefaultInterval,
		debounce: DefaultDebounce,
		ignore:   DefaultIgnore,
		logger:   nopLogger{},
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// ValidatePatterns reports the first invalid doublestar pattern.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return fmt.Errorf("invalid ignore pattern %q", p)
		}
	}
	return nil
}

// Run polls until ctx ends, calling onChange with the first state and then
// whenever the signature differs from the last reported one. It returns
// nil when ctx ends.
func (w *Watcher) Run(ctx context.Context, onChange func(Update)) error {
	if err := ValidatePatterns(w.ignore); err != nil {
		return err
	}
	rootRes := w.src.GetRoot(ctx, w.path)
	if !rootRes.OK {
		return rootRes.Err()
	}
	if rootRes.Data == nil {
		return fmt.Errorf("%s: %w", w.path, ErrNotRepository)
	}
	root := *rootRes.Data

	var events <-chan fsnotify.Event
	var errs <-chan error
	fsw, err := w.startNotify(root)
	if err != nil {
		w.logger.Warn("filesystem notifications unavailable, polling only", "root", root, "error", err)
	} else {
		defer fsw.Close()
		events, errs = fsw.Events, fsw.Errors
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	debounce := time.NewTimer(w.debounce)
	debounce.Stop()
	defer debounce.Stop()

	last := ""
	poll := func() {
		u, ok := w.poll(ctx, root)
		if !ok || u.Signature == last {
			return
		}
		last = u.Signature
		onChange(u)
	}

	poll()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			poll()
		case <-debounce.C:
			poll()
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if w.ignored(root, ev.Name, false) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				w.addTree(fsw, root, ev.Name)
			}
			debounce.Reset(w.debounce)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			w.logger.Warn("filesystem notification error", "root", root, "error", err)
		}
	}
}

func (w *Watcher) poll(ctx context.Context, root string) (Update, bool) {
	st := w.src.GetStatus(ctx, root)
	if !st.OK || st.Data == nil {
		if ctx.Err() == nil {
			w.logger.Warn("status poll failed", "root", root, "error", st.Error)
		}
		return Update{}, false
	}
	ps := w.src.GetProgressState(ctx, root)
	if !ps.OK || ps.Data == nil {
		if ctx.Err() == nil {
			w.logger.Warn("progress poll failed", "root", root, "error", ps.Error)
		}
		return Update{}, false
	}
	return Update{
		Root:      root,
		Signature: Signature(st.Data, ps.Data),
		Status:    st.Data,
		Progress:  ps.Data,
		At:        time.Now(),
	}, true
}

func (w *Watcher) startNotify(root string) (*fsnotify.Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w.addTree(fsw, root, root)
	return fsw, nil
}

// addTree watches dir and its subdirectories. fsnotify is not recursive.
func (w *Watcher) addTree(fsw *fsnotify.Watcher, root, dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != root && w.ignored(root, path, true) {
			return fs.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			w.logger.Debug("cannot watch directory", "dir", path, "error", err)
		}
		return nil
	})
}

// ignored reports whether path matches an ignore pattern. A directory also
// matches "dir/**" style patterns so it is not descended into.
func (w *Watcher) ignored(root, path string, dir bool) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, p := range w.ignore {
		p = filepath.ToSlash(p)
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if dir && strings.HasSuffix(p, "/**") {
			if ok, _ := doublestar.Match(strings.TrimSuffix(p, "/**"), rel); ok {
				return true
			}
		}
	}
	return false
}

// Signature summarizes the parts of a repository state a consumer redraws
// for: branch, ahead/behind, file count, progress flags and conflicts.
func Signature(st *status.Snapshot, ps *repo.ProgressState) string {
	h := fnv.New64a()
	write := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	if st != nil {
		write(st.CurrentBranch)
		write(st.TrackingBranch)
		write(strconv.Itoa(st.Ahead))
		write(strconv.Itoa(st.Behind))
		write(strconv.Itoa(len(st.Files)))
	}
	if ps != nil {
		write(strconv.FormatBool(ps.InMerge))
		write(strconv.FormatBool(ps.InRebase))
		for _, c := range ps.Conflicted {
			write(c)
		}
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
