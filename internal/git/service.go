package git

// Service is the contract for all repository operations. Every view
// depends on this interface, never on exec.Command directly, which keeps
// the UI testable with fake implementations. Each call is synchronous and
// either succeeds or fails with a categorized *OpError; no retries.
type Service interface {
	// ── Repository info ──────────────────────────────────────────────
	RepoRoot() string
	GitDir() string
	Head() (string, error)
	AheadBehind() (ahead, behind int, err error)
	Upstream() string
	IsMerging() bool

	// ── Status & staging ─────────────────────────────────────────────
	Status() (*StatusResult, error)
	Stage(paths ...string) error
	StageAll() error
	Unstage(paths ...string) error
	UnstageAll() error
	Discard(paths ...string) error

	// ── Commits ──────────────────────────────────────────────────────
	Commit(message string) error
	Log(limit int) ([]Commit, error)
	Diff(staged bool, path string) (string, error)

	// ── Branches ─────────────────────────────────────────────────────
	Branches() ([]Branch, error)
	CreateBranch(name string) error
	SwitchBranch(name string) error
	DeleteBranch(name string, force bool) error
	RenameBranch(oldName, newName string) error
	MergeBranch(name string) error

	// ── Tags ─────────────────────────────────────────────────────────
	Tags() ([]Tag, error)
	CreateTag(name, message string) error
	DeleteTag(name string) error

	// ── Remotes ──────────────────────────────────────────────────────
	Remotes() ([]Remote, error)
	AddRemote(name, url string) error
	RemoveRemote(name string) error
	Fetch(remote string) error
	Pull(remote, branch string) error
	Push(remote, branch string, force bool) error

	// ── Repo-local git config ────────────────────────────────────────
	ConfigGet(key string) (string, error)
	ConfigSet(key, value string) error
}
