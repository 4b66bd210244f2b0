package git

import (
	"context"
	"strconv"
	"strings"

	"github.com/wasabi0522/musubi/internal/exec"
	"github.com/wasabi0522/musubi/internal/status"
)

var _ Client = (*client)(nil)

// noEditor keeps continue/commit steps from opening an editor.
var noEditor = []string{"-c", "core.editor=true"}

type client struct {
	exec exec.Executor
	bin  string
}

// Option configures a Client.
type Option func(*client)

// WithBinary overrides the git executable name or path.
func WithBinary(bin string) Option {
	return func(c *client) {
		if bin != "" {
			c.bin = bin
		}
	}
}

// NewClient creates a git Client backed by the given Executor.
func NewClient(exec exec.Executor, opts ...Option) Client {
	c := &client{exec: exec, bin: "git"}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *client) output(ctx context.Context, dir string, args ...string) (string, error) {
	return c.exec.Output(ctx, dir, c.bin, args...)
}

func (c *client) run(ctx context.Context, dir string, args ...string) error {
	return c.exec.Run(ctx, dir, c.bin, args...)
}

func withPaths(args []string, paths ...string) []string {
	if len(paths) == 0 {
		return args
	}
	return append(append(args, "--"), paths...)
}

// Queries

func (c *client) TopLevel(ctx context.Context, dir string) (string, error) {
	return c.output(ctx, dir, "rev-parse", "--show-toplevel")
}

func (c *client) GitDir(ctx context.Context, dir string) (string, error) {
	return c.output(ctx, dir, "rev-parse", "--absolute-git-dir")
}

func (c *client) Status(ctx context.Context, dir string, pathspec ...string) (*status.Snapshot, error) {
	args := withPaths([]string{"status", "--porcelain=v2", "--branch", "-z", "--untracked-files=all"}, pathspec...)
	out, err := c.output(ctx, dir, args...)
	if err != nil {
		return nil, err
	}
	return status.ParsePorcelainV2(out), nil
}

func (c *client) UnmergedPaths(ctx context.Context, dir string) ([]string, error) {
	out, err := c.output(ctx, dir, "diff", "--name-only", "--diff-filter=U", "-z")
	if err != nil {
		return nil, err
	}
	return splitNUL(out), nil
}

func (c *client) Remotes(ctx context.Context, dir string) ([]Remote, error) {
	out, err := c.output(ctx, dir, "remote", "-v")
	if err != nil {
		return nil, err
	}
	return parseRemotes(out), nil
}

func (c *client) RevParse(ctx context.Context, dir, rev string) (string, error) {
	return c.output(ctx, dir, "rev-parse", "--verify", "--end-of-options", rev)
}

const branchFormat = "%(HEAD)%00%(refname)%00%(refname:short)%00%(upstream:short)%00%(objectname:short)%00%(upstream:track,nobracket)"

func (c *client) Branches(ctx context.Context, dir string) ([]Branch, error) {
	out, err := c.output(ctx, dir, "for-each-ref", "--format="+branchFormat, "refs/heads", "refs/remotes")
	if err != nil {
		return nil, err
	}
	return parseBranches(out), nil
}

const logFormat = "%H%x00%h%x00%an%x00%ae%x00%aI%x00%s%x1e"

func (c *client) Log(ctx context.Context, dir string, opts LogOptions) ([]Commit, error) {
	args := []string{"log", "--format=" + logFormat}
	if opts.MaxCount > 0 {
		args = append(args, "-n", strconv.Itoa(opts.MaxCount))
	}
	if rng := logRange(opts); rng != "" {
		args = append(args, "--end-of-options", rng)
	}
	out, err := c.output(ctx, dir, args...)
	if err != nil {
		if strings.Contains(err.Error(), "does not have any commits yet") {
			return nil, nil
		}
		return nil, err
	}
	return parseLog(out), nil
}

func logRange(opts LogOptions) string {
	switch {
	case opts.From != "" && opts.To != "":
		return opts.From + ".." + opts.To
	case opts.From != "":
		return opts.From + "..HEAD"
	default:
		return opts.To
	}
}

func diffArgs(base []string, opts DiffOptions) []string {
	args := base
	if opts.Staged {
		args = append(args, "--cached")
	}
	if opts.From != "" {
		args = append(args, opts.From)
	}
	if opts.To != "" {
		args = append(args, opts.To)
	}
	if opts.Path != "" {
		args = append(args, "--", opts.Path)
	}
	return args
}

func (c *client) DiffNameOnly(ctx context.Context, dir string, opts DiffOptions) ([]string, error) {
	out, err := c.output(ctx, dir, diffArgs([]string{"diff", "--name-only", "-z"}, opts)...)
	if err != nil {
		return nil, err
	}
	return splitNUL(out), nil
}

func (c *client) Diff(ctx context.Context, dir string, opts DiffOptions) (string, error) {
	return c.output(ctx, dir, diffArgs([]string{"diff"}, opts)...)
}

func (c *client) StashList(ctx context.Context, dir string) ([]Stash, error) {
	out, err := c.output(ctx, dir, "stash", "list", "--format=%gd%x00%H%x00%gs")
	if err != nil {
		return nil, err
	}
	return parseStashList(out), nil
}

// Index and working tree

func (c *client) Add(ctx context.Context, dir string, paths ...string) error {
	return c.run(ctx, dir, withPaths([]string{"add"}, paths...)...)
}

func (c *client) AddAll(ctx context.Context, dir string) error {
	return c.run(ctx, dir, "add", "--all")
}

func (c *client) Unstage(ctx context.Context, dir string, paths ...string) error {
	return c.run(ctx, dir, withPaths([]string{"reset", "-q", "HEAD"}, paths...)...)
}

func (c *client) Commit(ctx context.Context, dir, message string) error {
	return c.run(ctx, dir, "commit", "-m", message)
}

func (c *client) CommitNoEdit(ctx context.Context, dir, message string) error {
	if message != "" {
		return c.run(ctx, dir, "commit", "-m", message)
	}
	return c.run(ctx, dir, append(noEditor, "commit", "--no-edit")...)
}

func (c *client) CheckoutPaths(ctx context.Context, dir, source string, paths ...string) error {
	args := []string{"checkout"}
	if source != "" {
		args = append(args, source)
	}
	return c.run(ctx, dir, withPaths(args, paths...)...)
}

func (c *client) CheckoutSide(ctx context.Context, dir string, side Side, path string) error {
	return c.run(ctx, dir, "checkout", "--"+string(side), "--", path)
}

func (c *client) CheckoutConflict(ctx context.Context, dir, path string) error {
	return c.run(ctx, dir, "checkout", "-m", "--", path)
}

func (c *client) Remove(ctx context.Context, dir string, opts RemoveOptions, paths ...string) error {
	args := []string{"rm", "-q"}
	if opts.Force {
		args = append(args, "-f")
	}
	if opts.Cached {
		args = append(args, "--cached")
	}
	return c.run(ctx, dir, withPaths(args, paths...)...)
}

func (c *client) ResetHard(ctx context.Context, dir, ref string) error {
	if ref == "" {
		ref = "HEAD"
	}
	return c.run(ctx, dir, "reset", "--hard", ref)
}

func (c *client) Revert(ctx context.Context, dir, commit string) error {
	return c.run(ctx, dir, "revert", "--no-edit", commit)
}

func (c *client) StashPush(ctx context.Context, dir, message string, includeUntracked bool) error {
	args := []string{"stash", "push"}
	if includeUntracked {
		args = append(args, "--include-untracked")
	}
	if message != "" {
		args = append(args, "-m", message)
	}
	return c.run(ctx, dir, args...)
}

func (c *client) StashPop(ctx context.Context, dir, ref string) error {
	args := []string{"stash", "pop"}
	if ref != "" {
		args = append(args, ref)
	}
	return c.run(ctx, dir, args...)
}

func (c *client) SetConfig(ctx context.Context, dir, key, value string) error {
	return c.run(ctx, dir, "config", "--local", key, value)
}

// Branches

func (c *client) CreateBranch(ctx context.Context, dir, name, startPoint string) error {
	args := []string{"branch", "--", name}
	if startPoint != "" {
		args = append(args, startPoint)
	}
	return c.run(ctx, dir, args...)
}

func (c *client) Checkout(ctx context.Context, dir, ref string) error {
	return c.run(ctx, dir, "checkout", ref, "--")
}

func (c *client) DeleteBranch(ctx context.Context, dir, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	return c.run(ctx, dir, "branch", flag, "--", name)
}

// Remotes

func remoteArgs(args []string, remote, branch string) []string {
	if remote == "" {
		return args
	}
	args = append(args, remote)
	if branch != "" {
		args = append(args, branch)
	}
	return args
}

func (c *client) Fetch(ctx context.Context, dir string, opts FetchOptions) error {
	args := []string{"fetch"}
	if opts.Prune {
		args = append(args, "--prune")
	}
	if opts.Remote == "" {
		return c.run(ctx, dir, append(args, "--all")...)
	}
	return c.run(ctx, dir, remoteArgs(args, opts.Remote, opts.Branch)...)
}

func (c *client) Pull(ctx context.Context, dir string, opts PullOptions) error {
	args := []string{"pull", "--no-edit"}
	if opts.Rebase {
		args = append(args, "--rebase")
	} else {
		args = append(args, "--no-rebase")
	}
	if opts.Autostash {
		args = append(args, "--autostash")
	}
	return c.run(ctx, dir, remoteArgs(args, opts.Remote, opts.Branch)...)
}

func (c *client) Push(ctx context.Context, dir string, opts PushOptions) error {
	args := []string{"push"}
	if opts.SetUpstream {
		args = append(args, "-u")
	}
	if opts.ForceWithLease {
		args = append(args, "--force-with-lease")
	}
	return c.run(ctx, dir, remoteArgs(args, opts.Remote, opts.Branch)...)
}

// Merge, rebase, cherry-pick

func (c *client) Merge(ctx context.Context, dir, ref string) error {
	return c.run(ctx, dir, "merge", "--no-edit", ref)
}

func (c *client) MergeAbort(ctx context.Context, dir string) error {
	return c.run(ctx, dir, "merge", "--abort")
}

func (c *client) CherryPickContinue(ctx context.Context, dir string) error {
	return c.run(ctx, dir, append(noEditor, "cherry-pick", "--continue")...)
}

func (c *client) CherryPickAbort(ctx context.Context, dir string) error {
	return c.run(ctx, dir, "cherry-pick", "--abort")
}

func (c *client) RebaseStart(ctx context.Context, dir, upstream string) error {
	return c.run(ctx, dir, "rebase", upstream)
}

func (c *client) RebaseContinue(ctx context.Context, dir string) error {
	return c.run(ctx, dir, append(noEditor, "rebase", "--continue")...)
}

func (c *client) RebaseAbort(ctx context.Context, dir string) error {
	return c.run(ctx, dir, "rebase", "--abort")
}

func (c *client) Mergetool(ctx context.Context, dir, tool, path string) error {
	args := []string{"mergetool", "--no-prompt"}
	if tool != "" {
		args = append(args, "--tool="+tool)
	}
	if path != "" {
		args = append(args, "--", path)
	}
	return c.exec.RunInteractive(ctx, dir, c.bin, args...)
}
