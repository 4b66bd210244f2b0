package status

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		index    byte
		worktree byte
		want     Category
	}{
		{"ignored", '!', '!', Ignored},
		{"untracked both", '?', '?', Untracked},
		{"untracked worktree only", ' ', '?', Untracked},
		{"untracked index only", '?', ' ', Untracked},
		{"both deleted", 'D', 'D', Conflicted},
		{"added by us", 'A', 'U', Conflicted},
		{"deleted by them", 'U', 'D', Conflicted},
		{"added by them", 'U', 'A', Conflicted},
		{"deleted by us", 'D', 'U', Conflicted},
		{"both added", 'A', 'A', Conflicted},
		{"both modified", 'U', 'U', Conflicted},
		{"renamed in index", 'R', ' ', Renamed},
		{"renamed and modified", 'R', 'M', Renamed},
		{"added", 'A', ' ', Added},
		{"added then modified", 'A', 'M', Added},
		{"added then deleted", 'A', 'D', Added},
		{"deleted in index", 'D', ' ', Deleted},
		{"deleted in worktree", ' ', 'D', Deleted},
		{"modified in index", 'M', ' ', Modified},
		{"modified in worktree", ' ', 'M', Modified},
		{"type changed", 'T', ' ', Unknown},
		{"copied", 'C', ' ', Unknown},
		{"blank", ' ', ' ', Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.index, tt.worktree))
		})
	}
}

var codeAlphabet = []byte{' ', 'M', 'T', 'A', 'D', 'R', 'C', 'U', '?', '!'}

func TestNormalize_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.SampledFrom(codeAlphabet).Draw(t, "index")
		y := rapid.SampledFrom(codeAlphabet).Draw(t, "worktree")
		got := Normalize(x, y)

		if got != Normalize(x, y) {
			t.Fatalf("Normalize(%q,%q) is not deterministic", x, y)
		}

		has := func(c byte) bool { return x == c || y == c }
		switch {
		case has('!'):
			if got != Ignored {
				t.Fatalf("Normalize(%q,%q) = %s, want ignored", x, y, got)
			}
		case has('?'):
			if got != Untracked {
				t.Fatalf("Normalize(%q,%q) = %s, want untracked", x, y, got)
			}
		case has('U') || isConflictPair(x, y):
			if got != Conflicted {
				t.Fatalf("Normalize(%q,%q) = %s, want conflicted", x, y, got)
			}
		default:
			if got == Conflicted || got == Ignored || got == Untracked {
				t.Fatalf("Normalize(%q,%q) = %s for a non-conflict pair", x, y, got)
			}
		}
	})
}

func TestFileEntry_CategoryFollowsCodes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.SampledFrom(append(codeAlphabet, '.')).Draw(t, "index")
		y := rapid.SampledFrom(append(codeAlphabet, '.')).Draw(t, "worktree")
		e := NewFileEntry("a.txt", x, y)
		if e.Category() != Normalize(byte(e.Index), byte(e.Worktree)) {
			t.Fatalf("entry category %s inconsistent with codes %q%q", e.Category(), e.Index, e.Worktree)
		}
	})
}

func TestCategoryJSON(t *testing.T) {
	for i := range categoryStrings {
		c := Category(i)
		data, err := json.Marshal(c)
		require.NoError(t, err)

		var got Category
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, c, got)
	}

	var c Category
	assert.Error(t, json.Unmarshal([]byte(`"bogus"`), &c))
	assert.Equal(t, "unknown", Category(99).String())
}

func TestFileEntryJSON(t *testing.T) {
	data, err := json.Marshal(NewFileEntry("docs/a.md", '.', 'M'))
	require.NoError(t, err)
	assert.JSONEq(t, `{"path":"docs/a.md","index":" ","worktree":"M","category":"modified"}`, string(data))
}

func TestParsePorcelainV2(t *testing.T) {
	t.Run("empty output", func(t *testing.T) {
		s := ParsePorcelainV2("")
		assert.True(t, s.Clean)
		assert.NotNil(t, s.Files)
		assert.Empty(t, s.Files)
	})

	t.Run("branch headers", func(t *testing.T) {
		out := strings.Join([]string{
			"# branch.oid 1234567890abcdef",
			"# branch.head main",
			"# branch.upstream origin/main",
			"# branch.ab +2 -3",
			"",
		}, "\x00")
		s := ParsePorcelainV2(out)
		assert.Equal(t, "main", s.CurrentBranch)
		assert.Equal(t, "origin/main", s.TrackingBranch)
		assert.True(t, s.HasTracking())
		assert.Equal(t, 2, s.Ahead)
		assert.Equal(t, 3, s.Behind)
		assert.True(t, s.Clean)
	})

	t.Run("detached head", func(t *testing.T) {
		s := ParsePorcelainV2("# branch.oid abc\x00# branch.head (detached)\x00")
		assert.Equal(t, DetachedHead, s.CurrentBranch)
		assert.True(t, s.Detached)
		assert.False(t, s.HasTracking())
	})

	t.Run("all record kinds", func(t *testing.T) {
		out := strings.Join([]string{
			"# branch.head feature",
			"1 .M N... 100644 100644 100644 aaa aaa src/main.go",
			"1 A. N... 000000 100644 100644 000 bbb new file.txt",
			"2 R. N... 100644 100644 100644 ccc ccc R100 renamed.go",
			"old.go",
			"u UU N... 100644 100644 100644 100644 d1 d2 d3 conflict.txt",
			"u AA N... 000000 100644 100644 100644 d1 d2 d3 both-added.txt",
			"? untracked dir/file.txt",
			"! ignored.log",
			"",
		}, "\x00")
		s := ParsePorcelainV2(out)
		require.Len(t, s.Files, 7)
		assert.False(t, s.Clean)

		assert.Equal(t, "src/main.go", s.Files[0].Path)
		assert.Equal(t, Modified, s.Files[0].Category())
		assert.Equal(t, Code(' '), s.Files[0].Index)

		assert.Equal(t, "new file.txt", s.Files[1].Path)
		assert.Equal(t, Added, s.Files[1].Category())

		assert.Equal(t, "renamed.go", s.Files[2].Path)
		assert.Equal(t, "old.go", s.Files[2].OrigPath)
		assert.Equal(t, Renamed, s.Files[2].Category())

		assert.Equal(t, Conflicted, s.Files[3].Category())
		assert.Equal(t, Conflicted, s.Files[4].Category())
		assert.Equal(t, "untracked dir/file.txt", s.Files[5].Path)
		assert.Equal(t, Untracked, s.Files[5].Category())
		assert.Equal(t, Ignored, s.Files[6].Category())

		assert.Equal(t, []string{"conflict.txt", "both-added.txt"}, s.Conflicted())
		assert.True(t, s.HasUnmerged())
		assert.Nil(t, s.Find("old.go"))
		assert.Equal(t, "renamed.go", s.Find("renamed.go").Path)
		assert.Equal(t, "renamed.go", s.Lookup("old.go").Path)
		assert.Equal(t, "renamed.go", s.Lookup("renamed.go").Path)
		assert.Nil(t, s.Lookup("missing.go"))
	})

	t.Run("malformed records are skipped", func(t *testing.T) {
		s := ParsePorcelainV2("1 M\x00u UU short\x00x\x00")
		assert.Empty(t, s.Files)
		assert.True(t, s.Clean)
	})
}

func TestParseAheadBehind(t *testing.T) {
	ahead, behind := ParseAheadBehind("+5 -0")
	assert.Equal(t, 5, ahead)
	assert.Equal(t, 0, behind)

	ahead, behind = ParseAheadBehind("garbage")
	assert.Zero(t, ahead)
	assert.Zero(t, behind)
}
