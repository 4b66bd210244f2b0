package repo

import (
	"context"

	"github.com/wasabi0522/musubi/internal/git"
	"github.com/wasabi0522/musubi/internal/result"
)

// Branches lists local and remote-tracking branches.
func (e *Engine) Branches(ctx context.Context, path string) result.Result[[]git.Branch] {
	return query(ctx, e, path, func(ctx context.Context, root string) ([]git.Branch, error) {
		branches, err := e.git.Branches(ctx, root)
		if branches == nil && err == nil {
			branches = []git.Branch{}
		}
		return branches, err
	})
}

// CreateBranch creates name at startPoint (HEAD when empty) without
// switching to it.
func (e *Engine) CreateBranch(ctx context.Context, path, name, startPoint string) result.Result[result.None] {
	return mutate(ctx, e, path, "create-branch", step(func(ctx context.Context, root string) error {
		if name == "" {
			return &MissingArgumentError{Name: "branch name"}
		}
		return e.git.CreateBranch(ctx, root, name, startPoint)
	}))
}

// Checkout switches the working tree to ref.
func (e *Engine) Checkout(ctx context.Context, path, ref string) result.Result[result.None] {
	return mutate(ctx, e, path, "checkout", step(func(ctx context.Context, root string) error {
		if ref == "" {
			return &MissingArgumentError{Name: "ref"}
		}
		return e.git.Checkout(ctx, root, ref)
	}))
}

// DeleteBranch deletes a local branch. Unmerged branches need force.
func (e *Engine) DeleteBranch(ctx context.Context, path, name string, force bool) result.Result[result.None] {
	return mutate(ctx, e, path, "delete-branch", step(func(ctx context.Context, root string) error {
		if name == "" {
			return &MissingArgumentError{Name: "branch name"}
		}
		return e.git.DeleteBranch(ctx, root, name, force)
	}))
}

// Log returns history reachable from opts.To (HEAD when empty), newest first.
func (e *Engine) Log(ctx context.Context, path string, opts git.LogOptions) result.Result[[]git.Commit] {
	return query(ctx, e, path, func(ctx context.Context, root string) ([]git.Commit, error) {
		commits, err := e.git.Log(ctx, root, opts)
		if commits == nil && err == nil {
			commits = []git.Commit{}
		}
		return commits, err
	})
}

// DiffNameOnly returns the paths that differ between the compared trees.
func (e *Engine) DiffNameOnly(ctx context.Context, path string, opts git.DiffOptions) result.Result[[]string] {
	return query(ctx, e, path, func(ctx context.Context, root string) ([]string, error) {
		if opts.Path != "" {
			rel, _, err := repoPath(root, opts.Path)
			if err != nil {
				return nil, err
			}
			opts.Path = rel
		}
		names, err := e.git.DiffNameOnly(ctx, root, opts)
		if names == nil && err == nil {
			names = []string{}
		}
		return names, err
	})
}

// DiffFile returns the unified diff of one file.
func (e *Engine) DiffFile(ctx context.Context, path, file string, opts git.DiffOptions) result.Result[string] {
	return query(ctx, e, path, func(ctx context.Context, root string) (string, error) {
		rel, _, err := repoPath(root, file)
		if err != nil {
			return "", err
		}
		opts.Path = rel
		return e.git.Diff(ctx, root, opts)
	})
}
