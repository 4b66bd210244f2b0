package repo

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/wasabi0522/musubi/internal/git"
	"github.com/wasabi0522/musubi/internal/result"
	"github.com/wasabi0522/musubi/internal/status"
)

// Marker files git keeps in the git directory while a sequence is stopped.
const (
	markerMerge       = "MERGE_HEAD"
	markerCherryPick  = "CHERRY_PICK_HEAD"
	markerRebaseMerge = "rebase-merge"
	markerRebaseApply = "rebase-apply"
)

// ProgressState reports an in-progress merge or rebase and the paths that
// still conflict. InMerge also covers a stopped cherry-pick, which CherryPick
// singles out. Both flags are reported as found; they are not assumed to be
// exclusive.
type ProgressState struct {
	InMerge    bool     `json:"inMerge"`
	InRebase   bool     `json:"inRebase"`
	CherryPick bool     `json:"cherryPick,omitempty"`
	Conflicted []string `json:"conflicted"`
}

// Idle reports whether neither a merge nor a rebase is in progress.
func (p *ProgressState) Idle() bool {
	return !p.InMerge && !p.InRebase
}

// HasConflicts reports whether any path is still conflicted.
func (p *ProgressState) HasConflicts() bool {
	return len(p.Conflicted) > 0
}

// progress is a ProgressState plus the details continue/abort dispatch on.
type progress struct {
	ProgressState
	mergeHead bool
	snapshot  *status.Snapshot
}

// inspect reads marker files and computes the conflicted set as the union
// of git's unmerged list and the status entries classified as conflicted.
func (e *Engine) inspect(ctx context.Context, root string) (*progress, error) {
	gitDir, err := e.git.GitDir(ctx, root)
	if err != nil {
		return nil, err
	}
	unmerged, err := e.git.UnmergedPaths(ctx, root)
	if err != nil {
		return nil, err
	}
	snap, err := e.git.Status(ctx, root)
	if err != nil {
		return nil, err
	}

	p := &progress{snapshot: snap}
	p.mergeHead = e.markerExists(gitDir, markerMerge)
	p.CherryPick = e.markerExists(gitDir, markerCherryPick)
	p.InMerge = p.mergeHead || p.CherryPick
	p.InRebase = e.markerExists(gitDir, markerRebaseMerge) || e.markerExists(gitDir, markerRebaseApply)
	p.Conflicted = unionPaths(unmerged, snap.Conflicted())
	return p, nil
}

func (e *Engine) markerExists(gitDir, name string) bool {
	_, err := os.Stat(filepath.Join(filepath.FromSlash(gitDir), name))
	if err == nil {
		return true
	}
	if !errors.Is(err, fs.ErrNotExist) {
		e.logger.Warn("cannot stat progress marker", "marker", name, "error", err)
	}
	return false
}

// unionPaths merges path lists into a sorted, de-duplicated, slash-separated
// list. The result is never nil.
func unionPaths(lists ...[]string) []string {
	out := []string{}
	for _, l := range lists {
		for _, p := range l {
			out = append(out, path.Clean(filepath.ToSlash(p)))
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// GetStatus returns the normalized status of the repository containing path,
// or nil when path is not inside a repository.
func (e *Engine) GetStatus(ctx context.Context, path string) result.Result[*status.Snapshot] {
	return query(ctx, e, path, func(ctx context.Context, root string) (*status.Snapshot, error) {
		return e.git.Status(ctx, root)
	})
}

// GetProgressState returns merge/rebase progress, or nil when path is not
// inside a repository.
func (e *Engine) GetProgressState(ctx context.Context, path string) result.Result[*ProgressState] {
	return query(ctx, e, path, func(ctx context.Context, root string) (*ProgressState, error) {
		p, err := e.inspect(ctx, root)
		if err != nil {
			return nil, err
		}
		return &p.ProgressState, nil
	})
}

// GetConflictedFiles returns the conflicted paths relative to the root.
func (e *Engine) GetConflictedFiles(ctx context.Context, path string) result.Result[[]string] {
	return query(ctx, e, path, func(ctx context.Context, root string) ([]string, error) {
		p, err := e.inspect(ctx, root)
		if err != nil {
			return nil, err
		}
		return p.Conflicted, nil
	})
}

// RemoteInfo describes the configured remotes and the current branch's
// relation to its upstream.
type RemoteInfo struct {
	Remotes        []git.Remote `json:"remotes"`
	CurrentBranch  string       `json:"currentBranch"`
	TrackingBranch string       `json:"trackingBranch,omitempty"`
	Ahead          int          `json:"ahead"`
	Behind         int          `json:"behind"`
}

// GetRemoteInfo returns remotes and upstream tracking for the current branch.
func (e *Engine) GetRemoteInfo(ctx context.Context, path string) result.Result[*RemoteInfo] {
	return query(ctx, e, path, func(ctx context.Context, root string) (*RemoteInfo, error) {
		remotes, err := e.git.Remotes(ctx, root)
		if err != nil {
			return nil, err
		}
		snap, err := e.git.Status(ctx, root)
		if err != nil {
			return nil, err
		}
		if remotes == nil {
			remotes = []git.Remote{}
		}
		return &RemoteInfo{
			Remotes:        remotes,
			CurrentBranch:  snap.CurrentBranch,
			TrackingBranch: snap.TrackingBranch,
			Ahead:          snap.Ahead,
			Behind:         snap.Behind,
		}, nil
	})
}
