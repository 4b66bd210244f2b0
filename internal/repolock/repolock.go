// Package repolock serializes work per key. Holders of the same key run one at
// a time in arrival order; different keys never block each other.
package repolock

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger receives queue lifecycle messages.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Locker.
type Option func(*Locker)

// WithLogger sets the logger used for queue lifecycle messages.
func WithLogger(l Logger) Option {
	return func(lk *Locker) { lk.logger = l }
}

// Locker is a set of FIFO mutexes keyed by string.
// The zero value is not usable; call New.
type Locker struct {
	mu     sync.Mutex
	queues map[string]*queue
	logger Logger
}

// queue exists while its key is held. waiters are handed ownership in order.
type queue struct {
	waiters []chan struct{}
}

func (q *queue) remove(w chan struct{}) bool {
	i := slices.Index(q.waiters, w)
	if i < 0 {
		return false
	}
	q.waiters = slices.Delete(q.waiters, i, i+1)
	return true
}

// New creates an empty Locker.
func New(opts ...Option) *Locker {
	l := &Locker{
		queues: make(map[string]*queue),
		logger: nopLogger{},
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Lock blocks until the caller owns key or ctx ends. The returned release
// func must be called exactly once; extra calls are ignored.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	q, held := l.queues[key]
	if !held {
		l.queues[key] = &queue{}
		l.mu.Unlock()
		return l.releaser(key), nil
	}
	ready := make(chan struct{})
	q.waiters = append(q.waiters, ready)
	l.mu.Unlock()

	select {
	case <-ready:
		return l.releaser(key), nil
	case <-ctx.Done():
		l.mu.Lock()
		removed := q.remove(ready)
		l.mu.Unlock()
		if !removed {
			// Ownership arrived while we were giving up; hand it on.
			l.unlock(key)
		}
		return nil, ctx.Err()
	}
}

func (l *Locker) releaser(key string) func() {
	var once sync.Once
	return func() { once.Do(func() { l.unlock(key) }) }
}

func (l *Locker) unlock(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	q, ok := l.queues[key]
	if !ok {
		return
	}
	if len(q.waiters) == 0 {
		delete(l.queues, key)
		return
	}
	next := q.waiters[0]
	q.waiters = q.waiters[1:]
	close(next)
}

// Waiting returns how many callers are queued behind the current holder of key.
func (l *Locker) Waiting(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if q, ok := l.queues[key]; ok {
		return len(q.waiters)
	}
	return 0
}

// Held reports whether key currently has an owner.
func (l *Locker) Held(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.queues[key]
	return ok
}

// Len returns the number of keys with an owner. Idle keys are dropped.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queues)
}

// Do runs fn while holding key. The key is released when fn returns or panics.
func (l *Locker) Do(ctx context.Context, key string, fn func(context.Context) error) error {
	_, err := Run(ctx, l, key, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// Run runs fn while holding key and returns its result.
func Run[T any](ctx context.Context, l *Locker, key string, fn func(context.Context) (T, error)) (T, error) {
	id := uuid.NewString()
	queuedAt := time.Now()
	l.logger.Debug("operation queued", "op", id, "key", key, "waiting", l.Waiting(key))

	release, err := l.Lock(ctx, key)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("waiting for %s: %w", key, err)
	}
	defer release()

	l.logger.Debug("operation started", "op", id, "key", key, "queued_for", time.Since(queuedAt))
	startedAt := time.Now()
	v, err := fn(ctx)
	l.logger.Debug("operation finished", "op", id, "key", key, "took", time.Since(startedAt), "error", err)
	return v, err
}
