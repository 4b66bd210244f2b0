package repo

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	musubiexec "github.com/wasabi0522/musubi/internal/exec"
	"github.com/wasabi0522/musubi/internal/git"
	"github.com/wasabi0522/musubi/internal/result"
	"github.com/wasabi0522/musubi/internal/status"
)

// MergeResult is the outcome of starting a merge or rebase. A stop on
// conflicts is not a failure: NeedsResolution is set and Progress lists the
// conflicted paths.
type MergeResult struct {
	NeedsResolution bool           `json:"needsResolution"`
	Progress        *ProgressState `json:"progress,omitempty"`
}

// Merge merges ref into the current branch.
func (e *Engine) Merge(ctx context.Context, path, ref string) result.Result[*MergeResult] {
	return mutate(ctx, e, path, "merge", func(ctx context.Context, root string) (*MergeResult, error) {
		if ref == "" {
			return nil, &MissingArgumentError{Name: "ref"}
		}
		return e.start(ctx, root, e.git.Merge(ctx, root, ref))
	})
}

// RebaseStart rebases the current branch onto upstream.
func (e *Engine) RebaseStart(ctx context.Context, path, upstream string) result.Result[*MergeResult] {
	return mutate(ctx, e, path, "rebase", func(ctx context.Context, root string) (*MergeResult, error) {
		if upstream == "" {
			return nil, &MissingArgumentError{Name: "upstream"}
		}
		return e.start(ctx, root, e.git.RebaseStart(ctx, root, upstream))
	})
}

// start turns the error of a merge or rebase into a MergeResult when git
// stopped on conflicts, and passes any other failure through.
func (e *Engine) start(ctx context.Context, root string, runErr error) (*MergeResult, error) {
	if runErr == nil {
		return &MergeResult{}, nil
	}
	// git exits 1 when it stops on conflicts; anything else is a real failure.
	if !musubiexec.IsExitCode(runErr, 1) {
		return nil, runErr
	}
	p, err := e.inspect(ctx, root)
	if err != nil || p.Idle() || !p.HasConflicts() {
		return nil, runErr
	}
	return &MergeResult{NeedsResolution: true, Progress: &p.ProgressState}, nil
}

// MergeAbort abandons the merge (or cherry-pick) in progress.
func (e *Engine) MergeAbort(ctx context.Context, path string) result.Result[result.None] {
	return mutate(ctx, e, path, "merge-abort", step(func(ctx context.Context, root string) error {
		p, err := e.inspect(ctx, root)
		if err != nil {
			return err
		}
		if p.CherryPick && !p.mergeHead {
			return e.settled(root, e.git.CherryPickAbort(ctx, root))
		}
		return e.settled(root, e.git.MergeAbort(ctx, root))
	}))
}

// MergeContinue concludes the merge (or cherry-pick) in progress. message
// replaces the prepared merge message when not empty.
func (e *Engine) MergeContinue(ctx context.Context, path, message string) result.Result[result.None] {
	return mutate(ctx, e, path, "merge-continue", step(func(ctx context.Context, root string) error {
		p, err := e.inspect(ctx, root)
		if err != nil {
			return err
		}
		if !p.InMerge {
			return ErrNothingInProgress
		}
		return e.continueMerge(ctx, root, p, message)
	}))
}

func (e *Engine) continueMerge(ctx context.Context, root string, p *progress, message string) error {
	if p.HasConflicts() {
		return ErrUnmergedFiles
	}
	if p.CherryPick && !p.mergeHead {
		return e.settled(root, e.git.CherryPickContinue(ctx, root))
	}
	return e.settled(root, e.git.CommitNoEdit(ctx, root, message))
}

// RebaseContinue resumes the rebase in progress.
func (e *Engine) RebaseContinue(ctx context.Context, path string) result.Result[result.None] {
	return mutate(ctx, e, path, "rebase-continue", step(func(ctx context.Context, root string) error {
		p, err := e.inspect(ctx, root)
		if err != nil {
			return err
		}
		if !p.InRebase {
			return ErrNothingInProgress
		}
		return e.continueRebase(ctx, root, p)
	}))
}

func (e *Engine) continueRebase(ctx context.Context, root string, p *progress) error {
	if p.HasConflicts() {
		return ErrUnmergedFiles
	}
	return e.settled(root, e.git.RebaseContinue(ctx, root))
}

// RebaseAbort abandons the rebase in progress.
func (e *Engine) RebaseAbort(ctx context.Context, path string) result.Result[result.None] {
	return mutate(ctx, e, path, "rebase-abort", step(func(ctx context.Context, root string) error {
		return e.settled(root, e.git.RebaseAbort(ctx, root))
	}))
}

// ContinueAny continues whichever of rebase, merge or cherry-pick is in
// progress. It fails without side effects when idle or when conflicts remain.
func (e *Engine) ContinueAny(ctx context.Context, path, message string) result.Result[result.None] {
	return mutate(ctx, e, path, "continue", step(func(ctx context.Context, root string) error {
		p, err := e.inspect(ctx, root)
		if err != nil {
			return err
		}
		switch {
		case p.Idle():
			return ErrNothingInProgress
		case p.InRebase:
			return e.continueRebase(ctx, root, p)
		default:
			return e.continueMerge(ctx, root, p, message)
		}
	}))
}

// ChooseOurs resolves file with the version from HEAD. During a rebase
// this is the branch being rebased onto, as in git.
func (e *Engine) ChooseOurs(ctx context.Context, path, file string) result.Result[*ProgressState] {
	return mutate(ctx, e, path, "choose-ours", func(ctx context.Context, root string) (*ProgressState, error) {
		return e.chooseSide(ctx, root, file, git.Ours)
	})
}

// ChooseTheirs resolves file with the incoming version.
func (e *Engine) ChooseTheirs(ctx context.Context, path, file string) result.Result[*ProgressState] {
	return mutate(ctx, e, path, "choose-theirs", func(ctx context.Context, root string) (*ProgressState, error) {
		return e.chooseSide(ctx, root, file, git.Theirs)
	})
}

func (e *Engine) chooseSide(ctx context.Context, root, file string, side git.Side) (*ProgressState, error) {
	rel, abs, err := repoPath(root, file)
	if err != nil {
		return nil, err
	}
	entry, err := e.conflictedEntry(ctx, root, rel)
	if err != nil {
		return nil, err
	}
	e.capture(root, rel, abs)

	if sideMissing(entry, side) {
		err = e.git.Remove(ctx, root, git.RemoveOptions{Force: true}, rel)
	} else if err = e.git.CheckoutSide(ctx, root, side, rel); err == nil {
		err = e.git.Add(ctx, root, rel)
	}
	if err != nil {
		return nil, err
	}
	return e.progressState(ctx, root)
}

// conflictedEntry returns the status entry of a conflicted path. A path this
// engine already resolved is put back into conflict first, so a side can be
// chosen again.
func (e *Engine) conflictedEntry(ctx context.Context, root, rel string) (*status.FileEntry, error) {
	snap, err := e.git.Status(ctx, root, rel)
	if err != nil {
		return nil, err
	}
	entry := snap.Find(rel)
	if entry != nil && entry.Category() == status.Conflicted {
		return entry, nil
	}
	if _, ok := e.resolutions.Get(resolutionKey(root, rel)); !ok {
		return nil, &NotConflictedError{Path: rel}
	}
	if err := e.git.CheckoutConflict(ctx, root, rel); err != nil {
		return nil, err
	}
	if snap, err = e.git.Status(ctx, root, rel); err != nil {
		return nil, err
	}
	if entry = snap.Find(rel); entry == nil || entry.Category() != status.Conflicted {
		return nil, &NotConflictedError{Path: rel}
	}
	return entry, nil
}

// sideMissing reports whether the chosen side deleted (or never had) the file.
func sideMissing(f *status.FileEntry, side git.Side) bool {
	switch side {
	case git.Ours:
		// DD, DU (deleted by us), UA (added by them).
		return f.Index == 'D' || (f.Index == 'U' && f.Worktree == 'A')
	default:
		// DD, UD (deleted by them), AU (added by us).
		return f.Worktree == 'D' || (f.Index == 'A' && f.Worktree == 'U')
	}
}

// MarkResolved stages file as resolved with its current working tree content.
func (e *Engine) MarkResolved(ctx context.Context, path, file string) result.Result[*ProgressState] {
	return mutate(ctx, e, path, "mark-resolved", func(ctx context.Context, root string) (*ProgressState, error) {
		rel, abs, err := repoPath(root, file)
		if err != nil {
			return nil, err
		}
		snap, err := e.git.Status(ctx, root, rel)
		if err != nil {
			return nil, err
		}
		if entry := snap.Find(rel); entry != nil && entry.Category() == status.Conflicted {
			e.capture(root, rel, abs)
		}
		if _, statErr := os.Lstat(abs); errors.Is(statErr, fs.ErrNotExist) {
			err = e.git.Remove(ctx, root, git.RemoveOptions{}, rel)
		} else {
			err = e.git.Add(ctx, root, rel)
		}
		if err != nil {
			return nil, err
		}
		return e.progressState(ctx, root)
	})
}

// RevertResolution undoes a per-file resolution. While the merge or rebase
// is still in progress the conflict is recreated from git's resolve-undo
// record, and working tree content captured before the resolution is put
// back. Otherwise the file is restored to HEAD and unstaged.
func (e *Engine) RevertResolution(ctx context.Context, path, file string) result.Result[*ProgressState] {
	return mutate(ctx, e, path, "revert-resolution", func(ctx context.Context, root string) (*ProgressState, error) {
		rel, abs, err := repoPath(root, file)
		if err != nil {
			return nil, err
		}
		if cerr := e.git.CheckoutConflict(ctx, root, rel); cerr != nil {
			e.logger.Debug("cannot recreate conflict, restoring HEAD", "file", rel, "error", cerr)
			e.resolutions.Delete(resolutionKey(root, rel))
			if err := e.unstage(ctx, root, rel); err != nil {
				return nil, err
			}
			if err := e.git.CheckoutPaths(ctx, root, "HEAD", rel); err != nil {
				return nil, err
			}
		} else if err := e.restore(root, rel, abs); err != nil {
			return nil, err
		}
		return e.progressState(ctx, root)
	})
}

// OpenMergetool runs the configured merge tool on file, or on every
// conflicted file when file is empty. The tool owns the terminal.
func (e *Engine) OpenMergetool(ctx context.Context, path, file string) result.Result[*ProgressState] {
	return mutate(ctx, e, path, "mergetool", func(ctx context.Context, root string) (*ProgressState, error) {
		rel := ""
		if file != "" {
			var err error
			if rel, _, err = repoPath(root, file); err != nil {
				return nil, err
			}
		}
		if err := e.git.Mergetool(ctx, root, e.mergetool, rel); err != nil {
			return nil, err
		}
		return e.progressState(ctx, root)
	})
}

func (e *Engine) progressState(ctx context.Context, root string) (*ProgressState, error) {
	p, err := e.inspect(ctx, root)
	if err != nil {
		return nil, err
	}
	return &p.ProgressState, nil
}

// capturedFile is working tree content saved before a resolution.
type capturedFile struct {
	content []byte
	mode    fs.FileMode
	exists  bool
}

func resolutionKey(root, rel string) string {
	return root + "\x00" + rel
}

// capture saves the current content of a conflicted file. The first capture
// wins so repeated resolutions still revert to the conflicted content.
func (e *Engine) capture(root, rel, abs string) {
	key := resolutionKey(root, rel)
	if _, ok := e.resolutions.Get(key); ok {
		return
	}
	info, err := os.Lstat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		e.resolutions.SetDefault(key, capturedFile{})
		return
	case err != nil:
		e.logger.Warn("cannot capture conflicted file", "file", rel, "error", err)
		return
	case !info.Mode().IsRegular():
		return
	}
	content, err := os.ReadFile(abs)
	if err != nil {
		e.logger.Warn("cannot capture conflicted file", "file", rel, "error", err)
		return
	}
	e.resolutions.SetDefault(key, capturedFile{content: content, mode: info.Mode().Perm(), exists: true})
}

// restore writes back content saved by capture, if any.
func (e *Engine) restore(root, rel, abs string) error {
	key := resolutionKey(root, rel)
	v, ok := e.resolutions.Get(key)
	if !ok {
		return nil
	}
	e.resolutions.Delete(key)
	c := v.(capturedFile)
	if !c.exists {
		if err := os.Remove(abs); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	return os.WriteFile(abs, c.content, c.mode)
}

// settled forgets captured content for root once a continue or abort
// succeeded, and returns err unchanged.
func (e *Engine) settled(root string, err error) error {
	if err == nil {
		e.forgetResolutions(root)
	}
	return err
}

func (e *Engine) forgetResolutions(root string) {
	prefix := root + "\x00"
	for key := range e.resolutions.Items() {
		if strings.HasPrefix(key, prefix) {
			e.resolutions.Delete(key)
		}
	}
}
