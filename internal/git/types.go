package git

import "time"

// StatusCode represents a single-character Git status indicator.
type StatusCode byte

// Git status codes as single-byte indicators.
const (
	StatusUnmodified StatusCode = ' '
	StatusModified   StatusCode = 'M'
	StatusAdded      StatusCode = 'A'
	StatusDeleted    StatusCode = 'D'
	StatusRenamed    StatusCode = 'R'
	StatusCopied     StatusCode = 'C'
	StatusUnmerged   StatusCode = 'U'
	StatusUntracked  StatusCode = '?'
	StatusIgnored    StatusCode = '!'
)

// String returns the single-character representation.
func (s StatusCode) String() string { return string(s) }

// Label returns a human-readable description of the status.
func (s StatusCode) Label() string {
	switch s {
	case StatusModified:
		return "Modified"
	case StatusAdded:
		return "Added"
	case StatusDeleted:
		return "Deleted"
	case StatusRenamed:
		return "Renamed"
	case StatusCopied:
		return "Copied"
	case StatusUnmerged:
		return "Conflicted"
	case StatusUntracked:
		return "Untracked"
	case StatusIgnored:
		return "Ignored"
	default:
		return ""
	}
}

// FileStatus is the state of a single file in the index or working tree.
type FileStatus struct {
	Staging  StatusCode
	Worktree StatusCode
	Path     string
	OrigPath string // set for renames/copies
	IsStaged bool
}

// StatusResult holds the categorized status of the entire working tree.
// It is recomputed on every refresh and never persisted.
type StatusResult struct {
	Staged    []FileStatus
	Unstaged  []FileStatus
	Untracked []FileStatus
	Conflicts []FileStatus
}

// TotalCount returns the number of files across all categories.
func (sr *StatusResult) TotalCount() int {
	return len(sr.Staged) + len(sr.Unstaged) + len(sr.Untracked) + len(sr.Conflicts)
}

// IsClean reports whether there is nothing to stage, commit, or resolve.
func (sr *StatusResult) IsClean() bool { return sr.TotalCount() == 0 }

// Commit is a read-only record sourced from git log.
type Commit struct {
	Hash        string
	ShortHash   string
	Author      string
	AuthorEmail string
	Date        time.Time
	RelDate     string
	Subject     string
	Body        string
	Parents     []string
}

// IsMerge reports whether the commit has more than one parent.
func (c Commit) IsMerge() bool { return len(c.Parents) > 1 }

// Branch represents a local or remote-tracking branch.
type Branch struct {
	Name      string
	IsCurrent bool
	IsRemote  bool
	Upstream  string
	Hash      string
	Subject   string
	Ahead     int
	Behind    int
}

// Tag represents a lightweight or annotated tag.
type Tag struct {
	Name      string
	Hash      string // target commit (short)
	Annotated bool
	Message   string // annotation subject, empty for lightweight tags
}

// Remote represents a configured Git remote.
type Remote struct {
	Name     string
	FetchURL string
	PushURL  string
}
