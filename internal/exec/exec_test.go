package exec

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultExecutor(t *testing.T) {
	e := NewDefaultExecutor()
	assert.NotNil(t, e)
	assert.Zero(t, e.Timeout())

	e = NewDefaultExecutor(WithTimeout(time.Second))
	assert.Equal(t, time.Second, e.Timeout())
}

func TestLookPath(t *testing.T) {
	e := NewDefaultExecutor()

	t.Run("existing command", func(t *testing.T) {
		err := e.LookPath("git")
		require.NoError(t, err)
	})

	t.Run("missing command", func(t *testing.T) {
		err := e.LookPath("nonexistent-command-xyz-12345")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "command not found")
	})
}

func TestOutput(t *testing.T) {
	e := NewDefaultExecutor()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		out, err := e.Output(ctx, "", "echo", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("error with stderr", func(t *testing.T) {
		_, err := e.Output(ctx, "", "sh", "-c", "echo fail >&2; exit 1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "fail")
	})

	t.Run("error without stderr", func(t *testing.T) {
		_, err := e.Output(ctx, "", "sh", "-c", "exit 1")
		assert.Error(t, err)
	})

	t.Run("runs in specified directory", func(t *testing.T) {
		dir := t.TempDir()
		out, err := e.Output(ctx, dir, "pwd")
		require.NoError(t, err)
		assert.Contains(t, out, filepath.Base(dir))
	})

	t.Run("keeps NUL separated output", func(t *testing.T) {
		out, err := e.Output(ctx, "", "printf", `a\0b\0`)
		require.NoError(t, err)
		assert.Equal(t, "a\x00b\x00", out)
	})
}

func TestRun(t *testing.T) {
	e := NewDefaultExecutor()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		err := e.Run(ctx, "", "true")
		require.NoError(t, err)
	})

	t.Run("error with stderr", func(t *testing.T) {
		err := e.Run(ctx, "", "sh", "-c", "echo errmsg >&2; exit 1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "errmsg")
	})

	t.Run("error reported on stdout", func(t *testing.T) {
		err := e.Run(ctx, "", "sh", "-c", "echo CONFLICT in a.txt; exit 1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "CONFLICT in a.txt")
	})

	t.Run("error without output", func(t *testing.T) {
		err := e.Run(ctx, "", "false")
		assert.Error(t, err)
	})
}

func TestTimeout(t *testing.T) {
	e := NewDefaultExecutor(WithTimeout(100 * time.Millisecond))

	start := time.Now()
	err := e.Run(context.Background(), "", "sleep", "5")
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.Contains(t, err.Error(), "sleep 5 timed out")
	assert.Less(t, time.Since(start), 4*time.Second)

	_, err = e.Output(context.Background(), "", "sleep", "5")
	require.Error(t, err)
	assert.True(t, IsTimeout(err))

	require.NoError(t, e.Run(context.Background(), "", "true"), "fast calls are unaffected")
}

func TestCanceledContextIsNotTimeout(t *testing.T) {
	e := NewDefaultExecutor(WithTimeout(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Run(ctx, "", "sleep", "5")
	require.Error(t, err)
	assert.False(t, IsTimeout(err))
}

func TestWithEnv(t *testing.T) {
	e := NewDefaultExecutor(WithEnv("MUSUBI_TEST_VALUE=hello"))
	out, err := e.Output(context.Background(), "", "sh", "-c", "echo $MUSUBI_TEST_VALUE")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestIsExitCode(t *testing.T) {
	ctx := context.Background()

	t.Run("matching exit code", func(t *testing.T) {
		e := NewDefaultExecutor()
		err := e.Run(ctx, "", "sh", "-c", "exit 2")
		require.Error(t, err)
		assert.True(t, IsExitCode(err, 2))
	})

	t.Run("non-matching exit code", func(t *testing.T) {
		e := NewDefaultExecutor()
		err := e.Run(ctx, "", "sh", "-c", "exit 3")
		require.Error(t, err)
		assert.False(t, IsExitCode(err, 1))
	})

	t.Run("non-exit error", func(t *testing.T) {
		assert.False(t, IsExitCode(fmt.Errorf("plain error"), 1))
	})

	t.Run("nil error", func(t *testing.T) {
		assert.False(t, IsExitCode(nil, 0))
	})
}

func TestRunInteractive(t *testing.T) {
	e := NewDefaultExecutor()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		err := e.RunInteractive(ctx, "", "true")
		require.NoError(t, err)
	})

	t.Run("failure", func(t *testing.T) {
		err := e.RunInteractive(ctx, "", "false")
		assert.Error(t, err)
	})

	t.Run("runs in specified directory", func(t *testing.T) {
		dir := t.TempDir()
		err := e.RunInteractive(ctx, dir, "sh", "-c", "touch marker")
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, "marker"))
		require.NoError(t, err)
	})
}
