package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGitRepo(t *testing.T) {
	dir := GitRepo(t)
	assert.DirExists(t, filepath.Join(dir, ".git"))
	assert.Equal(t, "initial commit", Git(t, dir, "log", "-1", "--format=%s"))
}

func TestGitRepoWithRemote(t *testing.T) {
	dir := GitRepoWithRemote(t, "https://github.com/test/repo.git")
	assert.Equal(t, "https://github.com/test/repo.git", Git(t, dir, "remote", "get-url", "origin"))
}

func TestGitRepoWithBranch(t *testing.T) {
	dir := GitRepoWithBranch(t, "feature")
	assert.NoError(t, TryGit(dir, "rev-parse", "--verify", "feature"))
}

func TestRepoBuilder(t *testing.T) {
	dir := NewRepo(t).
		WithBranch("feat-a").
		WithBranch("feat-a"). // duplicate branch is deduplicated
		WithFile("dir/a.txt", "a\n").
		Build()
	assert.NoError(t, TryGit(dir, "rev-parse", "--verify", "feat-a"))
	assert.Equal(t, "a\n", ReadFile(t, dir, "dir/a.txt"))
	assert.Empty(t, Git(t, dir, "status", "--porcelain"))
}

func TestRepoBuilder_BareRemote(t *testing.T) {
	dir := NewRepo(t).WithBareRemote().Build()
	assert.Equal(t, "origin/main", Git(t, dir, "rev-parse", "--abbrev-ref", "main@{upstream}"))

	clone := Clone(t, Git(t, dir, "remote", "get-url", "origin"))
	assert.FileExists(t, filepath.Join(clone, "README.md"))
}

func TestConflictedMerge(t *testing.T) {
	dir := ConflictedMerge(t, "a.txt", "ours\n", "theirs\n")
	assert.FileExists(t, filepath.Join(dir, ".git", "MERGE_HEAD"))
	assert.Equal(t, "UU a.txt", Git(t, dir, "status", "--porcelain"))
	assert.Contains(t, ReadFile(t, dir, "a.txt"), "<<<<<<<")
}
