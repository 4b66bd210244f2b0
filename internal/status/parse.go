package status

import (
	"strconv"
	"strings"
)

// DetachedHead is reported as the current branch when HEAD is detached.
const DetachedHead = "HEAD"

// ParsePorcelainV2 parses the NUL-separated output of:
//
//	git status --porcelain=v2 --branch -z
//
// Clean is derived from the number of parsed file entries.
func ParsePorcelainV2(output string) *Snapshot {
	snap := &Snapshot{Files: []FileEntry{}}
	records := strings.Split(output, "\x00")

	for i := 0; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 2 {
			continue
		}
		switch rec[0] {
		case '#':
			parseBranchHeader(snap, rec)
		case '1':
			parts := strings.SplitN(rec, " ", 9)
			if len(parts) == 9 && len(parts[1]) == 2 {
				snap.Files = append(snap.Files, NewFileEntry(parts[8], parts[1][0], parts[1][1]))
			}
		case '2':
			parts := strings.SplitN(rec, " ", 10)
			if len(parts) == 10 && len(parts[1]) == 2 {
				entry := NewFileEntry(parts[9], parts[1][0], parts[1][1])
				// The original path follows as its own NUL-terminated record.
				if i+1 < len(records) {
					i++
					entry.OrigPath = records[i]
				}
				snap.Files = append(snap.Files, entry)
			}
		case 'u':
			parts := strings.SplitN(rec, " ", 11)
			if len(parts) == 11 && len(parts[1]) == 2 {
				snap.Files = append(snap.Files, NewFileEntry(parts[10], parts[1][0], parts[1][1]))
			}
		case '?':
			snap.Files = append(snap.Files, NewFileEntry(strings.TrimPrefix(rec, "? "), '?', '?'))
		case '!':
			snap.Files = append(snap.Files, NewFileEntry(strings.TrimPrefix(rec, "! "), '!', '!'))
		}
	}

	snap.Clean = len(snap.Files) == 0
	return snap
}

func parseBranchHeader(snap *Snapshot, rec string) {
	key, value, ok := strings.Cut(strings.TrimPrefix(rec, "# "), " ")
	if !ok {
		return
	}
	switch key {
	case "branch.head":
		if value == "(detached)" {
			snap.CurrentBranch = DetachedHead
			snap.Detached = true
			return
		}
		snap.CurrentBranch = value
	case "branch.upstream":
		snap.TrackingBranch = value
	case "branch.ab":
		snap.Ahead, snap.Behind = ParseAheadBehind(value)
	}
}

// ParseAheadBehind parses the "+A -B" value of a branch.ab header.
func ParseAheadBehind(value string) (int, int) {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return 0, 0
	}
	ahead, _ := strconv.Atoi(strings.TrimPrefix(fields[0], "+"))
	behind, _ := strconv.Atoi(strings.TrimPrefix(fields[1], "-"))
	return ahead, behind
}
