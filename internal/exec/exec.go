package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	osexec "os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Wait blocks on inherited pipes after the process is killed.
const waitDelay = 2 * time.Second

// IsExitCode reports whether err wraps an *exec.ExitError with the given exit code.
func IsExitCode(err error, code int) bool {
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode() == code
	}
	return false
}

// IsTimeout reports whether err was caused by the per-call timeout expiring.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

//go:generate moq -out exec_mock.go . Executor

// Executor abstracts command execution for testing.
// An empty dir runs the command in the current working directory.
type Executor interface {
	LookPath(name string) error
	Output(ctx context.Context, dir, name string, args ...string) (string, error)
	Run(ctx context.Context, dir, name string, args ...string) error
	RunInteractive(ctx context.Context, dir, name string, args ...string) error
}

var _ Executor = (*DefaultExecutor)(nil)

// Option configures a DefaultExecutor.
type Option func(*DefaultExecutor)

// WithTimeout bounds every non-interactive call. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(e *DefaultExecutor) { e.timeout = d }
}

// WithEnv appends KEY=VALUE pairs to the inherited environment.
func WithEnv(kv ...string) Option {
	return func(e *DefaultExecutor) { e.env = append(e.env, kv...) }
}

// DefaultExecutor implements Executor using os/exec.
type DefaultExecutor struct {
	timeout time.Duration
	env     []string
}

func NewDefaultExecutor(opts ...Option) *DefaultExecutor {
	e := &DefaultExecutor{}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Timeout returns the configured per-call timeout.
func (e *DefaultExecutor) Timeout() time.Duration {
	return e.timeout
}

func (e *DefaultExecutor) LookPath(name string) error {
	_, err := osexec.LookPath(name)
	if err != nil {
		return fmt.Errorf("command not found: %s", name)
	}
	return nil
}

func wrapExecError(err error, stderr string) error {
	errMsg := strings.TrimSpace(stderr)
	if errMsg != "" {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	return err
}

func (e *DefaultExecutor) command(ctx context.Context, dir, name string, args []string) *osexec.Cmd {
	cmd := osexec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	if len(e.env) > 0 {
		cmd.Env = append(os.Environ(), e.env...)
	}
	return cmd
}

func (e *DefaultExecutor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.timeout)
}

// timeoutError replaces the "signal: killed" error produced by an expired deadline.
func (e *DefaultExecutor) timeoutError(ctx context.Context, name string, args []string, err error) error {
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return err
	}
	sub := name
	if len(args) > 0 {
		sub = name + " " + args[0]
	}
	return fmt.Errorf("%s timed out after %s: %w", sub, e.timeout, context.DeadlineExceeded)
}

func (e *DefaultExecutor) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	cmd := e.command(ctx, dir, name, args)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", e.timeoutError(ctx, name, args, wrapExecError(err, stderr.String()))
	}
	return strings.TrimRight(stdout.String(), "\n"), nil
}

func (e *DefaultExecutor) Run(ctx context.Context, dir, name string, args ...string) error {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	cmd := e.command(ctx, dir, name, args)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		// git reports some failures (merge conflicts, rejected pushes) on stdout.
		msg := stderr.String()
		if strings.TrimSpace(msg) == "" {
			msg = stdout.String()
		}
		return e.timeoutError(ctx, name, args, wrapExecError(err, msg))
	}
	return nil
}

// RunInteractive attaches the terminal. The per-call timeout does not apply.
func (e *DefaultExecutor) RunInteractive(ctx context.Context, dir, name string, args ...string) error {
	cmd := e.command(ctx, dir, name, args)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
