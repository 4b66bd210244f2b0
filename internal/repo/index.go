package repo

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/wasabi0522/musubi/internal/git"
	"github.com/wasabi0522/musubi/internal/result"
	"github.com/wasabi0522/musubi/internal/status"
)

// AddAll stages every change in the working tree, including deletions.
func (e *Engine) AddAll(ctx context.Context, path string) result.Result[result.None] {
	return mutate(ctx, e, path, "add-all", step(func(ctx context.Context, root string) error {
		return e.git.AddAll(ctx, root)
	}))
}

// AddPaths stages the given files.
func (e *Engine) AddPaths(ctx context.Context, path string, files ...string) result.Result[result.None] {
	return mutate(ctx, e, path, "add", step(func(ctx context.Context, root string) error {
		rels, err := repoPaths(root, files)
		if err != nil {
			return err
		}
		if len(rels) == 0 {
			return &MissingArgumentError{Name: "file path"}
		}
		return e.git.Add(ctx, root, rels...)
	}))
}

// ResetPaths unstages the given files, keeping working tree content.
func (e *Engine) ResetPaths(ctx context.Context, path string, files ...string) result.Result[result.None] {
	return mutate(ctx, e, path, "unstage", step(func(ctx context.Context, root string) error {
		rels, err := repoPaths(root, files)
		if err != nil {
			return err
		}
		if len(rels) == 0 {
			return &MissingArgumentError{Name: "file path"}
		}
		return e.unstage(ctx, root, rels...)
	}))
}

// unstage resets index entries to HEAD. Before the first commit there is no
// HEAD, so the entries are dropped from the index instead.
func (e *Engine) unstage(ctx context.Context, root string, rels ...string) error {
	if _, err := e.git.RevParse(ctx, root, "HEAD"); err != nil {
		return e.git.Remove(ctx, root, git.RemoveOptions{Cached: true, Force: true}, rels...)
	}
	return e.git.Unstage(ctx, root, rels...)
}

// CommitOptions configures Commit.
type CommitOptions struct {
	// AddAll stages every change before committing.
	AddAll bool
}

// Commit records the index as a new commit and returns it.
func (e *Engine) Commit(ctx context.Context, path, message string, opts CommitOptions) result.Result[*git.Commit] {
	return mutate(ctx, e, path, "commit", func(ctx context.Context, root string) (*git.Commit, error) {
		if strings.TrimSpace(message) == "" {
			return nil, ErrEmptyMessage
		}
		if opts.AddAll {
			if err := e.git.AddAll(ctx, root); err != nil {
				return nil, err
			}
		}
		if err := e.git.Commit(ctx, root, message); err != nil {
			return nil, err
		}
		return e.head(ctx, root)
	})
}

func (e *Engine) head(ctx context.Context, root string) (*git.Commit, error) {
	commits, err := e.git.Log(ctx, root, git.LogOptions{MaxCount: 1})
	if err != nil || len(commits) == 0 {
		return nil, err
	}
	return &commits[0], nil
}

// DiscardFile throws away local changes to one file. Untracked files are
// deleted, newly added files are removed from the index and disk, and
// everything else is restored to its committed content.
func (e *Engine) DiscardFile(ctx context.Context, path, file string) result.Result[result.None] {
	return mutate(ctx, e, path, "discard", step(func(ctx context.Context, root string) error {
		rel, abs, err := repoPath(root, file)
		if err != nil {
			return err
		}
		// No pathspec: git only pairs a rename when it sees both sides.
		snap, err := e.git.Status(ctx, root)
		if err != nil {
			return err
		}
		entry := snap.Lookup(rel)
		if entry == nil {
			e.logger.Debug("nothing to discard", "root", root, "file", rel)
			return nil
		}
		return e.discard(ctx, root, abs, entry)
	}))
}

func (e *Engine) discard(ctx context.Context, root, abs string, entry *status.FileEntry) error {
	switch entry.Category() {
	case status.Untracked:
		if err := os.Remove(abs); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	case status.Renamed:
		if err := e.git.Remove(ctx, root, git.RemoveOptions{Force: true}, entry.Path); err != nil {
			return err
		}
		return e.git.CheckoutPaths(ctx, root, "HEAD", entry.OrigPath)
	case status.Added:
		return e.git.Remove(ctx, root, git.RemoveOptions{Force: true}, entry.Path)
	}
	return e.git.CheckoutPaths(ctx, root, "HEAD", entry.Path)
}

// ResetHard moves the current branch to ref, discarding index and working
// tree changes. An empty ref means HEAD.
func (e *Engine) ResetHard(ctx context.Context, path, ref string) result.Result[result.None] {
	return mutate(ctx, e, path, "reset-hard", step(func(ctx context.Context, root string) error {
		return e.git.ResetHard(ctx, root, ref)
	}))
}

// RevertCommit creates a commit undoing hash.
func (e *Engine) RevertCommit(ctx context.Context, path, hash string) result.Result[*git.Commit] {
	return mutate(ctx, e, path, "revert", func(ctx context.Context, root string) (*git.Commit, error) {
		if hash == "" {
			return nil, &MissingArgumentError{Name: "commit"}
		}
		if err := e.git.Revert(ctx, root, hash); err != nil {
			return nil, err
		}
		return e.head(ctx, root)
	})
}

// StashOptions configures StashSave.
type StashOptions struct {
	Message          string
	IncludeUntracked bool
}

// StashSave stashes local changes.
func (e *Engine) StashSave(ctx context.Context, path string, opts StashOptions) result.Result[result.None] {
	return mutate(ctx, e, path, "stash-save", step(func(ctx context.Context, root string) error {
		return e.git.StashPush(ctx, root, opts.Message, opts.IncludeUntracked)
	}))
}

// StashList returns the stash entries, newest first.
func (e *Engine) StashList(ctx context.Context, path string) result.Result[[]git.Stash] {
	return query(ctx, e, path, func(ctx context.Context, root string) ([]git.Stash, error) {
		stashes, err := e.git.StashList(ctx, root)
		if stashes == nil && err == nil {
			stashes = []git.Stash{}
		}
		return stashes, err
	})
}

// StashPop applies and drops a stash entry. An empty ref pops the newest.
func (e *Engine) StashPop(ctx context.Context, path, ref string) result.Result[result.None] {
	return mutate(ctx, e, path, "stash-pop", step(func(ctx context.Context, root string) error {
		return e.git.StashPop(ctx, root, ref)
	}))
}
