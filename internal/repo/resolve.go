package repo

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/wasabi0522/musubi/internal/exec"
	"github.com/wasabi0522/musubi/internal/result"
)

// resolveRoot maps path to its repository root. A path outside any
// repository yields ErrNotRepository; only cancellation and timeouts are
// reported as other errors.
func (e *Engine) resolveRoot(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ErrNotRepository
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", ErrNotRepository
	}
	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	top, err := e.git.TopLevel(ctx, dir)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if exec.IsTimeout(err) {
			return "", err
		}
		e.logger.Debug("path is not inside a repository", "path", path, "error", err)
		return "", ErrNotRepository
	}
	if top == "" {
		return "", ErrNotRepository
	}
	return filepath.Clean(filepath.FromSlash(top)), nil
}

// IsRepository reports whether path is inside a repository work tree.
func (e *Engine) IsRepository(ctx context.Context, path string) result.Result[bool] {
	return query(ctx, e, path, func(context.Context, string) (bool, error) {
		return true, nil
	})
}

// GetRoot returns the repository root containing path, or nil when path is
// not inside a repository.
func (e *Engine) GetRoot(ctx context.Context, path string) result.Result[*string] {
	return query(ctx, e, path, func(_ context.Context, root string) (*string, error) {
		return &root, nil
	})
}

// repoPath resolves file against root. Relative paths are taken relative to
// root. It returns the slash-separated path relative to root and the absolute
// path, and rejects paths that leave the root.
func repoPath(root, file string) (rel, abs string, err error) {
	if file == "" {
		return "", "", &MissingArgumentError{Name: "file path"}
	}
	abs = filepath.FromSlash(file)
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, abs)
	}
	abs = filepath.Clean(abs)

	rel, ok := within(root, abs)
	if !ok {
		// The caller may have passed a path through a symlinked parent
		// (e.g. /var vs /private/var); git reports the resolved root.
		if dir, err := filepath.EvalSymlinks(filepath.Dir(abs)); err == nil {
			abs = filepath.Join(dir, filepath.Base(abs))
			rel, ok = within(root, abs)
		}
	}
	if !ok {
		return "", "", &PathOutsideRepoError{Path: file, Root: root}
	}
	return filepath.ToSlash(rel), abs, nil
}

func within(root, abs string) (string, bool) {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

// repoPaths resolves every entry of files with repoPath.
func repoPaths(root string, files []string) ([]string, error) {
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, _, err := repoPath(root, f)
		if err != nil {
			return nil, err
		}
		out = append(out, rel)
	}
	return out, nil
}
