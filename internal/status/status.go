// Package status classifies two-letter porcelain codes and parses
// `git status --porcelain=v2` output into a typed snapshot.
package status

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is the derived kind of change for a file.
type Category int

const (
	Unknown Category = iota
	Ignored
	Untracked
	Conflicted
	Renamed
	Added
	Deleted
	Modified
)

var categoryStrings = [...]string{
	Unknown:    "unknown",
	Ignored:    "ignored",
	Untracked:  "untracked",
	Conflicted: "conflicted",
	Renamed:    "renamed",
	Added:      "added",
	Deleted:    "deleted",
	Modified:   "modified",
}

// String returns the string representation of the Category.
func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryStrings) {
		return categoryStrings[c]
	}
	return "unknown"
}

// MarshalJSON returns the JSON encoding of the Category.
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string into a Category.
func (c *Category) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	for i, v := range categoryStrings {
		if v == str {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown category: %s", str)
}

// conflictPairs are the unmerged index/worktree combinations git reports.
var conflictPairs = map[[2]byte]struct{}{
	{'D', 'D'}: {},
	{'A', 'U'}: {},
	{'U', 'D'}: {},
	{'U', 'A'}: {},
	{'D', 'U'}: {},
	{'A', 'A'}: {},
	{'U', 'U'}: {},
}

// Normalize maps an index code and a worktree code to a Category.
// Rules are evaluated in order; conflict pairs such as AA and DD must win
// over the single-letter added/deleted rules.
func Normalize(index, worktree byte) Category {
	has := func(c byte) bool { return index == c || worktree == c }

	switch {
	case has('!'):
		return Ignored
	case has('?'):
		return Untracked
	case has('U') || isConflictPair(index, worktree):
		return Conflicted
	case has('R'):
		return Renamed
	case has('A'):
		return Added
	case has('D'):
		return Deleted
	case has('M'):
		return Modified
	default:
		return Unknown
	}
}

func isConflictPair(index, worktree byte) bool {
	_, ok := conflictPairs[[2]byte{index, worktree}]
	return ok
}

// Code renders a porcelain code for JSON; blank codes become a space.
type Code byte

// String returns the single-character form of the code.
func (c Code) String() string {
	if c == 0 {
		return " "
	}
	return string(rune(c))
}

// MarshalJSON returns the code as a one-character JSON string.
func (c Code) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// FileEntry is one changed path in the working tree.
// Category is always derived from the two codes.
type FileEntry struct {
	Path     string `json:"path"`
	OrigPath string `json:"origPath,omitempty"`
	Index    Code   `json:"index"`
	Worktree Code   `json:"worktree"`
}

// NewFileEntry builds an entry, mapping porcelain v2's '.' to blank.
func NewFileEntry(path string, index, worktree byte) FileEntry {
	return FileEntry{Path: path, Index: Code(blank(index)), Worktree: Code(blank(worktree))}
}

func blank(c byte) byte {
	if c == '.' || c == 0 {
		return ' '
	}
	return c
}

// Category returns the derived category of the entry.
func (f FileEntry) Category() Category {
	return Normalize(byte(f.Index), byte(f.Worktree))
}

// MarshalJSON adds the derived category to the encoded entry.
func (f FileEntry) MarshalJSON() ([]byte, error) {
	type plain FileEntry
	return json.Marshal(struct {
		plain
		Category Category `json:"category"`
	}{plain(f), f.Category()})
}

// Snapshot is the status of one repository at a point in time.
type Snapshot struct {
	CurrentBranch  string      `json:"currentBranch"`
	TrackingBranch string      `json:"trackingBranch,omitempty"`
	Ahead          int         `json:"ahead"`
	Behind         int         `json:"behind"`
	Detached       bool        `json:"detached,omitempty"`
	Files          []FileEntry `json:"files"`
	Clean          bool        `json:"clean"`
}

// HasTracking reports whether the current branch has an upstream.
func (s *Snapshot) HasTracking() bool {
	return s.TrackingBranch != ""
}

// Conflicted returns the paths whose category is Conflicted.
func (s *Snapshot) Conflicted() []string {
	var out []string
	for _, f := range s.Files {
		if f.Category() == Conflicted {
			out = append(out, f.Path)
		}
	}
	return out
}

// HasUnmerged reports whether any entry is conflicted.
func (s *Snapshot) HasUnmerged() bool {
	for _, f := range s.Files {
		if f.Category() == Conflicted {
			return true
		}
	}
	return false
}

// Find returns the entry for path, or nil.
func (s *Snapshot) Find(path string) *FileEntry {
	for i := range s.Files {
		if s.Files[i].Path == path {
			return &s.Files[i]
		}
	}
	return nil
}

// Lookup is Find that also matches the source path of a rename.
func (s *Snapshot) Lookup(path string) *FileEntry {
	if f := s.Find(path); f != nil {
		return f
	}
	for i := range s.Files {
		if s.Files[i].OrigPath == path {
			return &s.Files[i]
		}
	}
	return nil
}
