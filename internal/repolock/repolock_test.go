package repolock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// waitFor polls cond until it holds or the test deadline passes.
func waitFor(t testing.TB, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met before deadline")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestLock_Uncontended(t *testing.T) {
	l := New()
	release, err := l.Lock(context.Background(), "/repo")
	require.NoError(t, err)
	assert.True(t, l.Held("/repo"))
	assert.Equal(t, 1, l.Len())

	release()
	release()
	assert.False(t, l.Held("/repo"))
	assert.Equal(t, 0, l.Len(), "idle keys are dropped")
}

func TestRun_SameKeyRunsInSubmissionOrder(t *testing.T) {
	l := New()
	ctx := context.Background()

	hold, err := l.Lock(ctx, "/repo")
	require.NoError(t, err)

	const n = 8
	var (
		mu      sync.Mutex
		order   []int
		running atomic.Int32
		overlap atomic.Bool
		wg      sync.WaitGroup
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.Do(ctx, "/repo", func(context.Context) error {
				if running.Add(1) > 1 {
					overlap.Store(true)
				}
				defer running.Add(-1)
				time.Sleep(2 * time.Millisecond)
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				if i%2 == 0 {
					return errors.New("odd failure")
				}
				return nil
			})
		}()
		// Enqueue strictly one after another so arrival order is known.
		waitFor(t, func() bool { return l.Waiting("/repo") == i+1 })
	}

	hold()
	wg.Wait()

	assert.False(t, overlap.Load(), "operations on the same key overlapped")
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, order)
	assert.Equal(t, 0, l.Len())
}

func TestRun_DifferentKeysRunConcurrently(t *testing.T) {
	l := New()
	ctx := context.Background()

	var entered sync.WaitGroup
	entered.Add(2)
	both := make(chan struct{})

	run := func(key string) error {
		return l.Do(ctx, key, func(context.Context) error {
			entered.Done()
			select {
			case <-both:
				return nil
			case <-time.After(5 * time.Second):
				return fmt.Errorf("%s never observed its peer", key)
			}
		})
	}

	errs := make(chan error, 2)
	go func() { errs <- run("/repo-a") }()
	go func() { errs <- run("/repo-b") }()

	entered.Wait()
	close(both)
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)
}

func TestRun_FailureReleases(t *testing.T) {
	l := New()
	ctx := context.Background()

	_, err := Run(ctx, l, "/repo", func(context.Context) (int, error) {
		return 0, errors.New("exit status 128")
	})
	require.EqualError(t, err, "exit status 128")

	v, err := Run(ctx, l, "/repo", func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestRun_PanicReleases(t *testing.T) {
	l := New()
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = l.Do(ctx, "/repo", func(context.Context) error { panic("boom") })
	})
	assert.False(t, l.Held("/repo"))
}

func TestLock_CanceledWaiterLeavesQueue(t *testing.T) {
	l := New()
	hold, err := l.Lock(context.Background(), "/repo")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := l.Lock(ctx, "/repo")
		errc <- err
	}()
	waitFor(t, func() bool { return l.Waiting("/repo") == 1 })

	var ranAfter atomic.Bool
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = l.Do(context.Background(), "/repo", func(context.Context) error {
			ranAfter.Store(true)
			return nil
		})
	}()
	waitFor(t, func() bool { return l.Waiting("/repo") == 2 })

	cancel()
	require.ErrorIs(t, <-errc, context.Canceled)
	assert.Equal(t, 1, l.Waiting("/repo"))

	hold()
	<-done
	assert.True(t, ranAfter.Load())
	assert.Equal(t, 0, l.Len())
}

func TestRun_WaitTimeout(t *testing.T) {
	l := New()
	hold, err := l.Lock(context.Background(), "/repo")
	require.NoError(t, err)
	defer hold()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err = l.Do(ctx, "/repo", func(context.Context) error { return nil })
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "waiting for /repo")
}

type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recordingLogger) Debug(msg string, _ ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func TestRun_Logs(t *testing.T) {
	rec := &recordingLogger{}
	l := New(WithLogger(rec))
	require.NoError(t, l.Do(context.Background(), "/repo", func(context.Context) error { return nil }))
	assert.Equal(t, []string{"operation queued", "operation started", "operation finished"}, rec.msgs)
}

func TestRun_OrderProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		l := New()
		ctx := context.Background()
		keys := rapid.SliceOfN(rapid.SampledFrom([]string{"/a", "/b", "/c"}), 1, 12).Draw(rt, "keys")
		fails := rapid.SliceOfN(rapid.Bool(), len(keys), len(keys)).Draw(rt, "fails")

		holds := map[string]func(){}
		for _, k := range []string{"/a", "/b", "/c"} {
			release, err := l.Lock(ctx, k)
			if err != nil {
				rt.Fatalf("lock %s: %v", k, err)
			}
			holds[k] = release
		}

		var mu sync.Mutex
		got := map[string][]int{}
		want := map[string][]int{}
		var wg sync.WaitGroup
		for i, k := range keys {
			want[k] = append(want[k], i)
			queued := l.Waiting(k)
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = l.Do(ctx, k, func(context.Context) error {
					mu.Lock()
					got[k] = append(got[k], i)
					mu.Unlock()
					if fails[i] {
						return errors.New("fail")
					}
					return nil
				})
			}()
			waitFor(t, func() bool { return l.Waiting(k) == queued+1 })
		}
		for _, release := range holds {
			release()
		}
		wg.Wait()

		for k, w := range want {
			if fmt.Sprint(got[k]) != fmt.Sprint(w) {
				rt.Fatalf("key %s ran %v, want %v", k, got[k], w)
			}
		}
		if l.Len() != 0 {
			rt.Fatalf("%d keys still held", l.Len())
		}
	})
}
