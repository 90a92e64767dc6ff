package git

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ── Log parsing ─────────────────────────────────────────────────────────────

const (
	logFormat    = "%H%x00%h%x00%an%x00%ae%x00%at%x00%ar%x00%s%x00%b%x00%P"
	logSeparator = "%x01"
)

// logFormatFlag returns the --format flag for git log.
func logFormatFlag() string {
	return fmt.Sprintf("--format=%s%s", logFormat, logSeparator)
}

// ParseLog parses git log output produced with logFormatFlag. Entries are
// \x01-separated and fields \x00-separated, so subjects and bodies may
// contain anything short of a control byte.
func ParseLog(out string) []Commit {
	if len(out) == 0 {
		return nil
	}
	var commits []Commit
	for len(out) > 0 {
		idx := strings.IndexByte(out, '\x01')
		var entry string
		if idx < 0 {
			entry = out
			out = ""
		} else {
			entry = out[:idx]
			out = out[idx+1:]
		}
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if c, ok := parseCommitEntry(entry); ok {
			commits = append(commits, c)
		}
	}
	return commits
}

func parseCommitEntry(entry string) (Commit, bool) {
	parts := strings.SplitN(entry, "\x00", 9)
	if len(parts) < 9 {
		return Commit{}, false
	}
	ts, _ := strconv.ParseInt(strings.TrimSpace(parts[4]), 10, 64)
	c := Commit{
		Hash:        strings.TrimSpace(parts[0]),
		ShortHash:   strings.TrimSpace(parts[1]),
		Author:      strings.TrimSpace(parts[2]),
		AuthorEmail: strings.TrimSpace(parts[3]),
		Date:        time.Unix(ts, 0),
		RelDate:     strings.TrimSpace(parts[5]),
		Subject:     strings.TrimSpace(parts[6]),
		Body:        strings.TrimSpace(parts[7]),
	}
	if p := strings.TrimSpace(parts[8]); p != "" {
		c.Parents = strings.Fields(p)
	}
	return c, true
}

// ── Status parsing ──────────────────────────────────────────────────────────

// ParseStatus parses `git status --porcelain=v1 -z`. NUL-delimited
// scanning keeps rename entries (which carry a second NUL-separated path)
// unambiguous and avoids splitting on filenames with spaces.
func ParseStatus(out string) *StatusResult {
	result := &StatusResult{}
	for len(out) > 0 {
		nul := strings.IndexByte(out, '\x00')
		var entry string
		if nul < 0 {
			entry = out
			out = ""
		} else {
			entry = out[:nul]
			out = out[nul+1:]
		}
		if len(entry) < 4 {
			continue
		}

		staging := StatusCode(entry[0])
		worktree := StatusCode(entry[1])
		fs := FileStatus{Staging: staging, Worktree: worktree, Path: entry[3:]}

		// Renames/copies are followed by the original path.
		if staging == StatusRenamed || staging == StatusCopied ||
			worktree == StatusRenamed || worktree == StatusCopied {
			nul2 := strings.IndexByte(out, '\x00')
			if nul2 < 0 {
				fs.OrigPath = out
				out = ""
			} else {
				fs.OrigPath = out[:nul2]
				out = out[nul2+1:]
			}
		}

		switch {
		case staging == StatusUntracked && worktree == StatusUntracked:
			result.Untracked = append(result.Untracked, fs)

		case staging == StatusUnmerged || worktree == StatusUnmerged ||
			(staging == StatusAdded && worktree == StatusAdded) ||
			(staging == StatusDeleted && worktree == StatusDeleted):
			result.Conflicts = append(result.Conflicts, fs)

		default:
			if staging != StatusUnmodified && staging != StatusUntracked {
				staged := fs
				staged.IsStaged = true
				result.Staged = append(result.Staged, staged)
			}
			if worktree != StatusUnmodified && worktree != StatusUntracked {
				result.Unstaged = append(result.Unstaged, fs)
			}
		}
	}
	return result
}

// ── Branch parsing ──────────────────────────────────────────────────────────

// ParseBranches parses `git branch -a --format=...` with branchFormat.
func ParseBranches(out string) []Branch {
	if len(out) == 0 {
		return nil
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	branches := make([]Branch, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, "\x00", 6)
		if len(parts) < 6 {
			continue
		}
		b := Branch{
			IsCurrent: strings.TrimSpace(parts[0]) == "*",
			Name:      strings.TrimSpace(parts[1]),
			Hash:      strings.TrimSpace(parts[2]),
			Upstream:  strings.TrimSpace(parts[3]),
			Subject:   strings.TrimSpace(parts[5]),
		}
		if track := strings.TrimSpace(parts[4]); track != "" && track != "[gone]" {
			b.Ahead, b.Behind = parseTrack(track)
		}
		if strings.HasPrefix(b.Name, "remotes/") {
			b.IsRemote = true
			b.Name = strings.TrimPrefix(b.Name, "remotes/")
		}
		branches = append(branches, b)
	}
	return branches
}

// parseTrack parses "[ahead 2, behind 1]", "[ahead 2]" or "[behind 3]".
func parseTrack(track string) (ahead, behind int) {
	track = strings.Trim(track, "[]")
	for _, part := range strings.Split(track, ",") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) != 2 {
			continue
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		switch fields[0] {
		case "ahead":
			ahead = n
		case "behind":
			behind = n
		}
	}
	return ahead, behind
}

// ── Tag parsing ─────────────────────────────────────────────────────────────

// ParseTags parses `git tag --list --format=...` with tagFormat. Annotated
// tags point at a tag object whose peeled hash is the target commit;
// lightweight tags point at the commit directly.
func ParseTags(out string) []Tag {
	if len(out) == 0 {
		return nil
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	tags := make([]Tag, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, "\x00", 5)
		if len(parts) < 5 {
			continue
		}
		t := Tag{
			Name:      strings.TrimSpace(parts[0]),
			Annotated: strings.TrimSpace(parts[1]) == "tag",
		}
		if t.Annotated {
			t.Hash = strings.TrimSpace(parts[3])
			t.Message = strings.TrimSpace(parts[4])
		} else {
			t.Hash = strings.TrimSpace(parts[2])
		}
		if t.Name == "" {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}

// ── Remote parsing ──────────────────────────────────────────────────────────

// ParseRemotes parses `git remote -v`, merging the fetch and push lines
// of each remote while preserving first-seen order.
func ParseRemotes(out string) []Remote {
	if len(out) == 0 {
		return nil
	}
	seen := map[string]*Remote{}
	var order []string
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		name, url, kind := fields[0], fields[1], strings.Trim(fields[2], "()")
		r, ok := seen[name]
		if !ok {
			r = &Remote{Name: name}
			seen[name] = r
			order = append(order, name)
		}
		switch kind {
		case "fetch":
			r.FetchURL = url
		case "push":
			r.PushURL = url
		}
	}
	remotes := make([]Remote, 0, len(order))
	for _, name := range order {
		remotes = append(remotes, *seen[name])
	}
	return remotes
}
