package git

import (
	"strings"
	"time"
)

// splitNUL splits -z output into its non-empty records.
func splitNUL(output string) []string {
	var out []string
	for rec := range strings.SplitSeq(output, "\x00") {
		rec = strings.TrimPrefix(rec, "\n")
		if rec != "" {
			out = append(out, rec)
		}
	}
	return out
}

// parseRemotes parses `git remote -v`:
//
//	origin	git@github.com:org/repo.git (fetch)
//	origin	git@github.com:org/repo.git (push)
//
// Remotes keep the order in which git lists them.
func parseRemotes(output string) []Remote {
	var remotes []Remote
	index := map[string]int{}
	for line := range strings.SplitSeq(output, "\n") {
		name, rest, ok := strings.Cut(strings.TrimSpace(line), "\t")
		if !ok {
			continue
		}
		url, kind, _ := strings.Cut(rest, " ")
		i, seen := index[name]
		if !seen {
			i = len(remotes)
			index[name] = i
			remotes = append(remotes, Remote{Name: name})
		}
		switch kind {
		case "(push)":
			remotes[i].PushURL = url
		default:
			remotes[i].FetchURL = url
		}
	}
	return remotes
}

// parseBranches parses for-each-ref output produced with branchFormat.
// Symbolic remote HEADs (origin/HEAD) are skipped.
func parseBranches(output string) []Branch {
	var branches []Branch
	for line := range strings.SplitSeq(output, "\n") {
		f := strings.Split(line, "\x00")
		if len(f) < 6 {
			continue
		}
		ref, short := f[1], f[2]
		remote := strings.HasPrefix(ref, "refs/remotes/")
		if remote && strings.HasSuffix(ref, "/HEAD") {
			continue
		}
		branches = append(branches, Branch{
			Name:     short,
			Remote:   remote,
			Current:  f[0] == "*",
			Upstream: f[3],
			Commit:   f[4],
			Track:    f[5],
		})
	}
	return branches
}

// parseLog parses log output produced with logFormat. Records end with 0x1e
// and fields are NUL separated.
func parseLog(output string) []Commit {
	var commits []Commit
	for rec := range strings.SplitSeq(output, "\x1e") {
		rec = strings.TrimLeft(rec, "\n")
		if rec == "" {
			continue
		}
		f := strings.SplitN(rec, "\x00", 6)
		if len(f) < 6 {
			continue
		}
		date, _ := time.Parse(time.RFC3339, f[4])
		commits = append(commits, Commit{
			Hash:      f[0],
			ShortHash: f[1],
			Author:    f[2],
			Email:     f[3],
			Date:      date,
			Subject:   f[5],
		})
	}
	return commits
}

// parseStashList parses `git stash list --format=%gd%x00%H%x00%gs`.
func parseStashList(output string) []Stash {
	var stashes []Stash
	for line := range strings.SplitSeq(output, "\n") {
		f := strings.SplitN(line, "\x00", 3)
		if len(f) < 3 {
			continue
		}
		stashes = append(stashes, Stash{Ref: f[0], Hash: f[1], Message: f[2]})
	}
	return stashes
}
