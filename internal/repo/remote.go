package repo

import (
	"context"

	"github.com/wasabi0522/musubi/internal/git"
	"github.com/wasabi0522/musubi/internal/result"
	"github.com/wasabi0522/musubi/internal/status"
)

// Fetch downloads refs. An empty remote fetches every remote.
func (e *Engine) Fetch(ctx context.Context, path string, opts git.FetchOptions) result.Result[result.None] {
	return mutate(ctx, e, path, "fetch", step(func(ctx context.Context, root string) error {
		return e.git.Fetch(ctx, root, opts)
	}))
}

// Pull integrates the upstream (or remote/branch when given) into the
// current branch.
func (e *Engine) Pull(ctx context.Context, path string, opts git.PullOptions) result.Result[result.None] {
	return mutate(ctx, e, path, "pull", step(func(ctx context.Context, root string) error {
		return e.git.Pull(ctx, root, opts)
	}))
}

// Push uploads the current branch.
func (e *Engine) Push(ctx context.Context, path string, opts git.PushOptions) result.Result[result.None] {
	return mutate(ctx, e, path, "push", step(func(ctx context.Context, root string) error {
		return e.git.Push(ctx, root, opts)
	}))
}

// SetUpstream pushes branch to remote and records it as the upstream.
// Empty arguments default to the engine remote and the current branch.
func (e *Engine) SetUpstream(ctx context.Context, path, remote, branch string) result.Result[result.None] {
	return mutate(ctx, e, path, "set-upstream", step(func(ctx context.Context, root string) error {
		remote, branch, err := e.target(ctx, root, remote, branch)
		if err != nil {
			return err
		}
		return e.git.Push(ctx, root, git.PushOptions{Remote: remote, Branch: branch, SetUpstream: true})
	}))
}

// target fills in the default remote and the current branch.
func (e *Engine) target(ctx context.Context, root, remote, branch string) (string, string, error) {
	if remote == "" {
		remote = e.remote
	}
	if branch != "" {
		return remote, branch, nil
	}
	snap, err := e.git.Status(ctx, root)
	if err != nil {
		return "", "", err
	}
	if snap.Detached || snap.CurrentBranch == "" {
		return "", "", &MissingArgumentError{Name: "branch (HEAD is detached)"}
	}
	return remote, snap.CurrentBranch, nil
}

// SyncResult is the outcome of Sync. When NeedsResolution is set nothing was
// pushed and Status and Progress describe the conflict.
type SyncResult struct {
	NeedsResolution bool             `json:"needsResolution"`
	Pushed          bool             `json:"pushed"`
	Status          *status.Snapshot `json:"status,omitempty"`
	Progress        *ProgressState   `json:"progress,omitempty"`
}

// Sync fetches, pulls with rebase and autostash, and pushes unless the pull
// left the repository conflicted. The whole sequence holds the root's slot.
func (e *Engine) Sync(ctx context.Context, path, remote, branch string) result.Result[*SyncResult] {
	return mutate(ctx, e, path, "sync", func(ctx context.Context, root string) (*SyncResult, error) {
		remote, branch, err := e.target(ctx, root, remote, branch)
		if err != nil {
			return nil, err
		}

		// The whole remote is fetched so that a branch without a remote
		// counterpart yet is not a failure.
		if err := e.git.Fetch(ctx, root, git.FetchOptions{Remote: remote}); err != nil {
			return nil, err
		}

		// Pull failures are ignored; the state below is the source of truth.
		if err := e.git.Pull(ctx, root, git.PullOptions{Remote: remote, Branch: branch, Rebase: true, Autostash: true}); err != nil {
			e.logger.Warn("pull during sync failed", "root", root, "remote", remote, "branch", branch, "error", err)
		}

		p, err := e.inspect(ctx, root)
		if err != nil {
			return nil, err
		}
		if p.snapshot.HasUnmerged() || p.HasConflicts() || !p.Idle() {
			return &SyncResult{NeedsResolution: true, Status: p.snapshot, Progress: &p.ProgressState}, nil
		}

		push := git.PushOptions{}
		if !p.snapshot.HasTracking() {
			push = git.PushOptions{Remote: remote, Branch: branch, SetUpstream: true}
		}
		if err := e.git.Push(ctx, root, push); err != nil {
			return nil, err
		}
		return &SyncResult{Pushed: true}, nil
	})
}
