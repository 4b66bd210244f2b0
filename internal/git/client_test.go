package git

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wasabi0522/musubi/internal/exec"
	"github.com/wasabi0522/musubi/internal/status"
)

// recordRun returns a mock whose Run records its arguments into *got.
func recordRun(t *testing.T, got *[]string) *exec.ExecutorMock {
	t.Helper()
	return &exec.ExecutorMock{
		RunFunc: func(_ context.Context, dir, name string, args ...string) error {
			assert.Equal(t, "/repo", dir)
			assert.Equal(t, "git", name)
			*got = args
			return nil
		},
	}
}

// stubOutput returns a mock whose Output returns out after checking args.
func stubOutput(t *testing.T, want []string, out string) *exec.ExecutorMock {
	t.Helper()
	return &exec.ExecutorMock{
		OutputFunc: func(_ context.Context, dir, name string, args ...string) (string, error) {
			assert.Equal(t, "/repo", dir)
			assert.Equal(t, "git", name)
			if want != nil {
				assert.Equal(t, want, args)
			}
			return out, nil
		},
	}
}

func TestNewClient_WithBinary(t *testing.T) {
	e := &exec.ExecutorMock{
		OutputFunc: func(_ context.Context, _, name string, _ ...string) (string, error) {
			assert.Equal(t, "/usr/local/bin/git", name)
			return "/repo", nil
		},
	}
	c := NewClient(e, WithBinary("/usr/local/bin/git"))
	_, err := c.TopLevel(context.Background(), "/repo")
	require.NoError(t, err)
	require.Len(t, e.OutputCalls(), 1)
}

func TestNewClient_EmptyBinaryKeepsDefault(t *testing.T) {
	e := stubOutput(t, nil, "/repo")
	c := NewClient(e, WithBinary(""))
	_, err := c.TopLevel(context.Background(), "/repo")
	require.NoError(t, err)
}

func TestClientTopLevel(t *testing.T) {
	e := stubOutput(t, []string{"rev-parse", "--show-toplevel"}, "/repo")
	out, err := NewClient(e).TopLevel(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Equal(t, "/repo", out)
}

func TestClientGitDir(t *testing.T) {
	e := stubOutput(t, []string{"rev-parse", "--absolute-git-dir"}, "/repo/.git")
	out, err := NewClient(e).GitDir(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Equal(t, "/repo/.git", out)
}

func TestClientStatus(t *testing.T) {
	out := "# branch.oid abc\x00# branch.head main\x00# branch.upstream origin/main\x00# branch.ab +1 -2\x00" +
		"1 .M N... 100644 100644 100644 abc abc a.go\x00? new.txt\x00"
	e := stubOutput(t, []string{"status", "--porcelain=v2", "--branch", "-z", "--untracked-files=all"}, out)

	s, err := NewClient(e).Status(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Equal(t, "main", s.CurrentBranch)
	assert.Equal(t, "origin/main", s.TrackingBranch)
	assert.Equal(t, 1, s.Ahead)
	assert.Equal(t, 2, s.Behind)
	require.Len(t, s.Files, 2)
	assert.Equal(t, status.Modified, s.Files[0].Category())
	assert.Equal(t, status.Untracked, s.Files[1].Category())
}

func TestClientStatus_Pathspec(t *testing.T) {
	e := stubOutput(t, []string{"status", "--porcelain=v2", "--branch", "-z", "--untracked-files=all", "--", "a.go"}, "")
	_, err := NewClient(e).Status(context.Background(), "/repo", "a.go")
	require.NoError(t, err)
}

func TestClientStatus_Error(t *testing.T) {
	e := &exec.ExecutorMock{
		OutputFunc: func(context.Context, string, string, ...string) (string, error) {
			return "", errors.New("fatal: not a git repository")
		},
	}
	_, err := NewClient(e).Status(context.Background(), "/repo")
	assert.EqualError(t, err, "fatal: not a git repository")
}

func TestClientUnmergedPaths(t *testing.T) {
	e := stubOutput(t, []string{"diff", "--name-only", "--diff-filter=U", "-z"}, "a.txt\x00dir/b c.txt\x00")
	paths, err := NewClient(e).UnmergedPaths(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "dir/b c.txt"}, paths)
}

func TestClientUnmergedPaths_Empty(t *testing.T) {
	e := stubOutput(t, nil, "")
	paths, err := NewClient(e).UnmergedPaths(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestClientRemotes(t *testing.T) {
	out := "origin\tgit@github.com:org/repo.git (fetch)\n" +
		"origin\tgit@github.com:org/repo.git (push)\n" +
		"upstream\thttps://example.com/up.git (fetch)\n" +
		"upstream\tno_push (push)"
	e := stubOutput(t, []string{"remote", "-v"}, out)
	remotes, err := NewClient(e).Remotes(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Equal(t, []Remote{
		{Name: "origin", FetchURL: "git@github.com:org/repo.git", PushURL: "git@github.com:org/repo.git"},
		{Name: "upstream", FetchURL: "https://example.com/up.git", PushURL: "no_push"},
	}, remotes)
}

func TestClientRemotes_None(t *testing.T) {
	e := stubOutput(t, nil, "")
	remotes, err := NewClient(e).Remotes(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Empty(t, remotes)
}

func TestClientBranches(t *testing.T) {
	out := "*\x00refs/heads/main\x00main\x00origin/main\x00abc1234\x00ahead 1\n" +
		" \x00refs/heads/feature\x00feature\x00\x00def5678\x00\n" +
		" \x00refs/remotes/origin/HEAD\x00origin\x00\x00abc1234\x00\n" +
		" \x00refs/remotes/origin/main\x00origin/main\x00\x00abc1234\x00"
	e := stubOutput(t, nil, out)
	branches, err := NewClient(e).Branches(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Equal(t, []Branch{
		{Name: "main", Current: true, Upstream: "origin/main", Commit: "abc1234", Track: "ahead 1"},
		{Name: "feature", Commit: "def5678"},
		{Name: "origin/main", Remote: true, Commit: "abc1234"},
	}, branches)
	args := e.OutputCalls()[0].Args
	assert.Equal(t, "for-each-ref", args[0])
	assert.Equal(t, []string{"refs/heads", "refs/remotes"}, args[2:])
}

func TestClientLog(t *testing.T) {
	out := "aaaa\x00aa\x00Alice\x00alice@example.com\x002026-01-02T03:04:05+09:00\x00first commit\x1e\n" +
		"bbbb\x00bb\x00Bob\x00bob@example.com\x002026-01-01T00:00:00Z\x00subject with \x00 nul\x1e"
	e := stubOutput(t, nil, out)
	commits, err := NewClient(e).Log(context.Background(), "/repo", LogOptions{MaxCount: 2, From: "v1", To: "main"})
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "aaaa", commits[0].Hash)
	assert.Equal(t, "aa", commits[0].ShortHash)
	assert.Equal(t, "Alice", commits[0].Author)
	assert.Equal(t, "first commit", commits[0].Subject)
	assert.True(t, commits[0].Date.Equal(time.Date(2026, 1, 1, 18, 4, 5, 0, time.UTC)))
	assert.Equal(t, "subject with \x00 nul", commits[1].Subject)

	args := e.OutputCalls()[0].Args
	assert.Equal(t, []string{"-n", "2", "--end-of-options", "v1..main"}, args[2:])
}

func TestClientLog_EmptyRepository(t *testing.T) {
	e := &exec.ExecutorMock{
		OutputFunc: func(context.Context, string, string, ...string) (string, error) {
			return "", errors.New("fatal: your current branch 'main' does not have any commits yet")
		},
	}
	commits, err := NewClient(e).Log(context.Background(), "/repo", LogOptions{})
	require.NoError(t, err)
	assert.Empty(t, commits)
}

func TestLogRange(t *testing.T) {
	tests := []struct {
		name string
		opts LogOptions
		want string
	}{
		{"none", LogOptions{}, ""},
		{"both", LogOptions{From: "a", To: "b"}, "a..b"},
		{"from only", LogOptions{From: "a"}, "a..HEAD"},
		{"to only", LogOptions{To: "b"}, "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logRange(tt.opts))
		})
	}
}

func TestClientDiffNameOnly(t *testing.T) {
	e := stubOutput(t, []string{"diff", "--name-only", "-z", "--cached", "HEAD~1", "--", "dir"}, "dir/a\x00dir/b\x00")
	names, err := NewClient(e).DiffNameOnly(context.Background(), "/repo", DiffOptions{From: "HEAD~1", Staged: true, Path: "dir"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dir/a", "dir/b"}, names)
}

func TestClientDiff(t *testing.T) {
	e := stubOutput(t, []string{"diff", "a", "b", "--", "f.txt"}, "diff --git a/f.txt b/f.txt")
	out, err := NewClient(e).Diff(context.Background(), "/repo", DiffOptions{From: "a", To: "b", Path: "f.txt"})
	require.NoError(t, err)
	assert.Equal(t, "diff --git a/f.txt b/f.txt", out)
}

func TestClientStashList(t *testing.T) {
	out := "stash@{0}\x00abc\x00On main: wip\nstash@{1}\x00def\x00WIP on main: 123 msg"
	e := stubOutput(t, nil, out)
	stashes, err := NewClient(e).StashList(context.Background(), "/repo")
	require.NoError(t, err)
	assert.Equal(t, []Stash{
		{Ref: "stash@{0}", Hash: "abc", Message: "On main: wip"},
		{Ref: "stash@{1}", Hash: "def", Message: "WIP on main: 123 msg"},
	}, stashes)
}

func TestClientWriteCommands(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		call func(Client) error
		want []string
	}{
		{"add", func(c Client) error { return c.Add(ctx, "/repo", "a", "b") }, []string{"add", "--", "a", "b"}},
		{"add all", func(c Client) error { return c.AddAll(ctx, "/repo") }, []string{"add", "--all"}},
		{"unstage", func(c Client) error { return c.Unstage(ctx, "/repo", "a") }, []string{"reset", "-q", "HEAD", "--", "a"}},
		{"commit", func(c Client) error { return c.Commit(ctx, "/repo", "msg") }, []string{"commit", "-m", "msg"}},
		{"commit no edit", func(c Client) error { return c.CommitNoEdit(ctx, "/repo", "") }, []string{"-c", "core.editor=true", "commit", "--no-edit"}},
		{"commit no edit with message", func(c Client) error { return c.CommitNoEdit(ctx, "/repo", "m") }, []string{"commit", "-m", "m"}},
		{"checkout paths", func(c Client) error { return c.CheckoutPaths(ctx, "/repo", "HEAD", "a") }, []string{"checkout", "HEAD", "--", "a"}},
		{"checkout paths no source", func(c Client) error { return c.CheckoutPaths(ctx, "/repo", "", "a") }, []string{"checkout", "--", "a"}},
		{"checkout ours", func(c Client) error { return c.CheckoutSide(ctx, "/repo", Ours, "a") }, []string{"checkout", "--ours", "--", "a"}},
		{"checkout theirs", func(c Client) error { return c.CheckoutSide(ctx, "/repo", Theirs, "a") }, []string{"checkout", "--theirs", "--", "a"}},
		{"checkout conflict", func(c Client) error { return c.CheckoutConflict(ctx, "/repo", "a") }, []string{"checkout", "-m", "--", "a"}},
		{"remove", func(c Client) error { return c.Remove(ctx, "/repo", RemoveOptions{Force: true, Cached: true}, "a") }, []string{"rm", "-q", "-f", "--cached", "--", "a"}},
		{"reset hard default", func(c Client) error { return c.ResetHard(ctx, "/repo", "") }, []string{"reset", "--hard", "HEAD"}},
		{"reset hard ref", func(c Client) error { return c.ResetHard(ctx, "/repo", "origin/main") }, []string{"reset", "--hard", "origin/main"}},
		{"revert", func(c Client) error { return c.Revert(ctx, "/repo", "abc") }, []string{"revert", "--no-edit", "abc"}},
		{"stash push", func(c Client) error { return c.StashPush(ctx, "/repo", "wip", true) }, []string{"stash", "push", "--include-untracked", "-m", "wip"}},
		{"stash push bare", func(c Client) error { return c.StashPush(ctx, "/repo", "", false) }, []string{"stash", "push"}},
		{"stash pop", func(c Client) error { return c.StashPop(ctx, "/repo", "stash@{1}") }, []string{"stash", "pop", "stash@{1}"}},
		{"set config", func(c Client) error { return c.SetConfig(ctx, "/repo", "pull.rebase", "true") }, []string{"config", "--local", "pull.rebase", "true"}},
		{"create branch", func(c Client) error { return c.CreateBranch(ctx, "/repo", "feat", "main") }, []string{"branch", "--", "feat", "main"}},
		{"checkout", func(c Client) error { return c.Checkout(ctx, "/repo", "feat") }, []string{"checkout", "feat", "--"}},
		{"delete branch", func(c Client) error { return c.DeleteBranch(ctx, "/repo", "feat", false) }, []string{"branch", "-d", "--", "feat"}},
		{"force delete branch", func(c Client) error { return c.DeleteBranch(ctx, "/repo", "feat", true) }, []string{"branch", "-D", "--", "feat"}},
		{"fetch all", func(c Client) error { return c.Fetch(ctx, "/repo", FetchOptions{}) }, []string{"fetch", "--all"}},
		{"fetch remote branch", func(c Client) error {
			return c.Fetch(ctx, "/repo", FetchOptions{Remote: "origin", Branch: "main", Prune: true})
		}, []string{"fetch", "--prune", "origin", "main"}},
		{"pull rebase", func(c Client) error {
			return c.Pull(ctx, "/repo", PullOptions{Remote: "origin", Branch: "main", Rebase: true, Autostash: true})
		}, []string{"pull", "--no-edit", "--rebase", "--autostash", "origin", "main"}},
		{"pull merge", func(c Client) error { return c.Pull(ctx, "/repo", PullOptions{}) }, []string{"pull", "--no-edit", "--no-rebase"}},
		{"push upstream", func(c Client) error {
			return c.Push(ctx, "/repo", PushOptions{Remote: "origin", Branch: "main", SetUpstream: true})
		}, []string{"push", "-u", "origin", "main"}},
		{"push lease", func(c Client) error { return c.Push(ctx, "/repo", PushOptions{ForceWithLease: true}) }, []string{"push", "--force-with-lease"}},
		{"merge", func(c Client) error { return c.Merge(ctx, "/repo", "feat") }, []string{"merge", "--no-edit", "feat"}},
		{"merge abort", func(c Client) error { return c.MergeAbort(ctx, "/repo") }, []string{"merge", "--abort"}},
		{"cherry-pick continue", func(c Client) error { return c.CherryPickContinue(ctx, "/repo") }, []string{"-c", "core.editor=true", "cherry-pick", "--continue"}},
		{"cherry-pick abort", func(c Client) error { return c.CherryPickAbort(ctx, "/repo") }, []string{"cherry-pick", "--abort"}},
		{"rebase", func(c Client) error { return c.RebaseStart(ctx, "/repo", "origin/main") }, []string{"rebase", "origin/main"}},
		{"rebase continue", func(c Client) error { return c.RebaseContinue(ctx, "/repo") }, []string{"-c", "core.editor=true", "rebase", "--continue"}},
		{"rebase abort", func(c Client) error { return c.RebaseAbort(ctx, "/repo") }, []string{"rebase", "--abort"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			require.NoError(t, tt.call(NewClient(recordRun(t, &got))))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientRun_Error(t *testing.T) {
	e := &exec.ExecutorMock{
		RunFunc: func(context.Context, string, string, ...string) error {
			return errors.New("error: failed to push some refs")
		},
	}
	err := NewClient(e).Push(context.Background(), "/repo", PushOptions{})
	assert.EqualError(t, err, "error: failed to push some refs")
}

func TestClientMergetool(t *testing.T) {
	var got []string
	e := &exec.ExecutorMock{
		RunInteractiveFunc: func(_ context.Context, dir, name string, args ...string) error {
			assert.Equal(t, "/repo", dir)
			got = args
			return nil
		},
	}
	c := NewClient(e)
	require.NoError(t, c.Mergetool(context.Background(), "/repo", "vimdiff", "a.txt"))
	assert.Equal(t, []string{"mergetool", "--no-prompt", "--tool=vimdiff", "--", "a.txt"}, got)

	require.NoError(t, c.Mergetool(context.Background(), "/repo", "", ""))
	assert.Equal(t, []string{"mergetool", "--no-prompt"}, got)
}

func TestSplitNUL(t *testing.T) {
	assert.Nil(t, splitNUL(""))
	assert.Equal(t, []string{"a", "b"}, splitNUL("a\x00\x00b\x00"))
}
