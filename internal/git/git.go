package git

//go:generate moq -out git_mock.go . Client

import (
	"context"
	"time"

	"github.com/wasabi0522/musubi/internal/status"
)

// Querier abstracts read-only repository queries.
type Querier interface {
	TopLevel(ctx context.Context, dir string) (string, error)
	GitDir(ctx context.Context, dir string) (string, error)
	Status(ctx context.Context, dir string, pathspec ...string) (*status.Snapshot, error)
	UnmergedPaths(ctx context.Context, dir string) ([]string, error)
	Remotes(ctx context.Context, dir string) ([]Remote, error)
	RevParse(ctx context.Context, dir, rev string) (string, error)
	Branches(ctx context.Context, dir string) ([]Branch, error)
	Log(ctx context.Context, dir string, opts LogOptions) ([]Commit, error)
	DiffNameOnly(ctx context.Context, dir string, opts DiffOptions) ([]string, error)
	Diff(ctx context.Context, dir string, opts DiffOptions) (string, error)
	StashList(ctx context.Context, dir string) ([]Stash, error)
}

// IndexWriter abstracts staging, committing, and working tree restores.
type IndexWriter interface {
	Add(ctx context.Context, dir string, paths ...string) error
	AddAll(ctx context.Context, dir string) error
	Unstage(ctx context.Context, dir string, paths ...string) error
	Commit(ctx context.Context, dir, message string) error
	CommitNoEdit(ctx context.Context, dir, message string) error
	CheckoutPaths(ctx context.Context, dir, source string, paths ...string) error
	CheckoutSide(ctx context.Context, dir string, side Side, path string) error
	CheckoutConflict(ctx context.Context, dir, path string) error
	Remove(ctx context.Context, dir string, opts RemoveOptions, paths ...string) error
	ResetHard(ctx context.Context, dir, ref string) error
	Revert(ctx context.Context, dir, commit string) error
	StashPush(ctx context.Context, dir, message string, includeUntracked bool) error
	StashPop(ctx context.Context, dir, ref string) error
	SetConfig(ctx context.Context, dir, key, value string) error
}

// BranchWriter abstracts branch operations.
type BranchWriter interface {
	CreateBranch(ctx context.Context, dir, name, startPoint string) error
	Checkout(ctx context.Context, dir, ref string) error
	DeleteBranch(ctx context.Context, dir, name string, force bool) error
}

// RemoteWriter abstracts operations that talk to remotes.
type RemoteWriter interface {
	Fetch(ctx context.Context, dir string, opts FetchOptions) error
	Pull(ctx context.Context, dir string, opts PullOptions) error
	Push(ctx context.Context, dir string, opts PushOptions) error
}

// MergeWriter abstracts merge, rebase, and cherry-pick sequencing.
type MergeWriter interface {
	Merge(ctx context.Context, dir, ref string) error
	MergeAbort(ctx context.Context, dir string) error
	CherryPickContinue(ctx context.Context, dir string) error
	CherryPickAbort(ctx context.Context, dir string) error
	RebaseStart(ctx context.Context, dir, upstream string) error
	RebaseContinue(ctx context.Context, dir string) error
	RebaseAbort(ctx context.Context, dir string) error
	Mergetool(ctx context.Context, dir, tool, path string) error
}

// Client abstracts git operations for testing.
type Client interface {
	Querier
	IndexWriter
	BranchWriter
	RemoteWriter
	MergeWriter
}

// Side selects one version of a conflicted file.
type Side string

const (
	Ours   Side = "ours"
	Theirs Side = "theirs"
)

// Remote is a configured remote with its fetch and push URLs.
type Remote struct {
	Name     string `json:"name"`
	FetchURL string `json:"fetchUrl"`
	PushURL  string `json:"pushUrl,omitempty"`
}

// Branch is a local or remote-tracking branch.
type Branch struct {
	Name     string `json:"name"`
	Remote   bool   `json:"remote,omitempty"`
	Current  bool   `json:"current,omitempty"`
	Upstream string `json:"upstream,omitempty"`
	Commit   string `json:"commit"`
	// Track is git's upstream summary, e.g. "ahead 1, behind 2" or "gone".
	Track string `json:"track,omitempty"`
}

// Commit is one entry of the history.
type Commit struct {
	Hash      string    `json:"hash"`
	ShortHash string    `json:"shortHash"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	Date      time.Time `json:"date"`
	Subject   string    `json:"subject"`
}

// Stash is one entry of the stash list.
type Stash struct {
	Ref     string `json:"ref"`
	Hash    string `json:"hash"`
	Message string `json:"message"`
}

// LogOptions bounds a history query. From..To when both are set.
type LogOptions struct {
	MaxCount int
	From     string
	To       string
}

// DiffOptions selects what a diff compares.
// With no refs the working tree is compared to the index (or the index to
// HEAD when Staged is set).
type DiffOptions struct {
	From   string
	To     string
	Staged bool
	Path   string
}

// FetchOptions configures a fetch.
type FetchOptions struct {
	Remote string
	Branch string
	Prune  bool
}

// PullOptions configures a pull.
type PullOptions struct {
	Remote    string
	Branch    string
	Rebase    bool
	Autostash bool
}

// PushOptions configures a push.
type PushOptions struct {
	Remote         string
	Branch         string
	SetUpstream    bool
	ForceWithLease bool
}

// RemoveOptions configures `git rm`.
type RemoveOptions struct {
	Force  bool
	Cached bool
}
