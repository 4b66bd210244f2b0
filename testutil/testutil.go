package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// RepoBuilder constructs temporary git repositories for testing.
type RepoBuilder struct {
	t          *testing.T
	remote     string
	bareRemote bool
	branches   []string
	files      []file
}

type file struct {
	path    string
	content string
}

// NewRepo creates a RepoBuilder for the given test.
func NewRepo(t *testing.T) *RepoBuilder {
	t.Helper()
	return &RepoBuilder{t: t}
}

// WithRemote sets the origin remote URL.
func (b *RepoBuilder) WithRemote(url string) *RepoBuilder {
	b.remote = url
	return b
}

// WithBareRemote creates a bare repository as origin and pushes main to it
// with upstream tracking.
func (b *RepoBuilder) WithBareRemote() *RepoBuilder {
	b.bareRemote = true
	return b
}

// WithBranch adds a branch to be created at the initial commit.
func (b *RepoBuilder) WithBranch(name string) *RepoBuilder {
	b.branches = append(b.branches, name)
	return b
}

// WithFile adds a file to the initial commit.
func (b *RepoBuilder) WithFile(path, content string) *RepoBuilder {
	b.files = append(b.files, file{path: path, content: content})
	return b
}

// Build creates the repository and returns the root directory path.
// The path has symlinks resolved so it compares equal to what git reports.
func (b *RepoBuilder) Build() string {
	b.t.Helper()

	dir := TempDir(b.t)
	Git(b.t, dir, "init", "-b", "main")
	Configure(b.t, dir)

	WriteFile(b.t, dir, "README.md", "# test\n")
	for _, f := range b.files {
		WriteFile(b.t, dir, f.path, f.content)
	}
	Git(b.t, dir, "add", ".")
	Git(b.t, dir, "commit", "-m", "initial commit")

	switch {
	case b.bareRemote:
		bare := BareRepo(b.t)
		Git(b.t, dir, "remote", "add", "origin", bare)
		Git(b.t, dir, "push", "-u", "origin", "main")
	case b.remote != "":
		Git(b.t, dir, "remote", "add", "origin", b.remote)
	}

	created := make(map[string]bool)
	for _, branch := range b.branches {
		if !created[branch] {
			Git(b.t, dir, "branch", branch)
			created[branch] = true
		}
	}

	return dir
}

// GitRepo creates a temporary git repository with an initial commit.
// The directory is cleaned up when the test finishes.
func GitRepo(t *testing.T) string {
	t.Helper()
	return NewRepo(t).Build()
}

// GitRepoWithRemote creates a temporary git repository with a configured remote URL.
func GitRepoWithRemote(t *testing.T, remoteURL string) string {
	t.Helper()
	return NewRepo(t).WithRemote(remoteURL).Build()
}

// GitRepoWithBranch creates a temporary git repository with an additional branch.
func GitRepoWithBranch(t *testing.T, branch string) string {
	t.Helper()
	return NewRepo(t).WithBranch(branch).Build()
}

// BareRepo creates an empty bare repository whose default branch is main.
func BareRepo(t *testing.T) string {
	t.Helper()
	dir := TempDir(t)
	Git(t, dir, "init", "--bare", "-b", "main")
	return dir
}

// Clone clones url into a new temporary directory and configures an identity.
func Clone(t *testing.T, url string) string {
	t.Helper()
	dir := TempDir(t)
	Git(t, dir, "clone", "--quiet", url, ".")
	Configure(t, dir)
	return dir
}

// ConflictedMerge returns a repository that is in the middle of a merge with
// path conflicted. main wrote ours, branch "feature" wrote theirs.
func ConflictedMerge(t *testing.T, path, ours, theirs string) string {
	t.Helper()
	dir := NewRepo(t).WithFile(path, "base\n").WithBranch("feature").Build()

	Git(t, dir, "checkout", "-q", "feature")
	CommitFile(t, dir, path, theirs, "theirs")
	Git(t, dir, "checkout", "-q", "main")
	CommitFile(t, dir, path, ours, "ours")

	if err := TryGit(dir, "merge", "--no-edit", "feature"); err == nil {
		t.Fatalf("merge of %s unexpectedly succeeded", path)
	}
	return dir
}

// Configure sets a commit identity and disables signing and hooks that a
// developer's global config might enable.
func Configure(t *testing.T, dir string) {
	t.Helper()
	Git(t, dir, "config", "user.email", "test@example.com")
	Git(t, dir, "config", "user.name", "Test")
	Git(t, dir, "config", "commit.gpgsign", "false")
	Git(t, dir, "config", "core.autocrlf", "false")
}

// CommitFile writes path and commits it with msg.
func CommitFile(t *testing.T, dir, path, content, msg string) {
	t.Helper()
	WriteFile(t, dir, path, content)
	Git(t, dir, "add", "--", path)
	Git(t, dir, "commit", "-q", "-m", msg)
}

// WriteFile writes content to dir/path, creating parent directories.
func WriteFile(t *testing.T, dir, path, content string) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// ReadFile returns the content of dir/path.
func ReadFile(t *testing.T, dir, path string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(path)))
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

// TempDir returns a test temp dir with symlinks resolved.
func TempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

// Git runs git in dir and returns its trimmed combined output.
// The test fails if git exits non-zero.
func Git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := git(dir, args...)
	if err != nil {
		t.Fatalf("git %v: %s: %v", args, out, err)
	}
	return out
}

// TryGit runs git in dir and returns its error, if any.
func TryGit(dir string, args ...string) error {
	_, err := git(dir, args...)
	return err
}

func git(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0", "GIT_EDITOR=true", "LC_ALL=C")
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}
