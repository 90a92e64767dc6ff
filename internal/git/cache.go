package git

import (
	"sync"
	"time"
)

// CachedService wraps a Service with a TTL cache for the read operations
// that several views and the status bar all request within one refresh
// cycle (Status, Head, Branches, ...). Write operations invalidate the
// whole cache so the next read is fresh. Without this, a single refresh
// event spawns a dozen git subprocesses; with it, roughly five.
type CachedService struct {
	inner Service
	ttl   time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	val    any
	err    error
	expiry time.Time
}

// Compile-time check.
var _ Service = (*CachedService)(nil)

// NewCachedService wraps inner with a TTL cache. A 1-2 second TTL is
// enough to deduplicate calls within a refresh cycle without the UI ever
// showing stale data the user would notice.
func NewCachedService(inner Service, ttl time.Duration) *CachedService {
	return &CachedService{
		inner: inner,
		ttl:   ttl,
		cache: make(map[string]cacheEntry, 8),
	}
}

// Invalidate clears all cached entries.
func (c *CachedService) Invalidate() {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry, 8)
	c.mu.Unlock()
}

func (c *CachedService) get(key string) (val any, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.cache[key]
	if !found || time.Now().After(e.expiry) {
		return nil, false, nil
	}
	return e.val, true, e.err
}

func (c *CachedService) set(key string, val any, err error) {
	c.mu.Lock()
	c.cache[key] = cacheEntry{val: val, err: err, expiry: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// cached runs fetch through the cache under the given key.
func cached[T any](c *CachedService, key string, fetch func() (T, error)) (T, error) {
	if v, ok, err := c.get(key); ok {
		return v.(T), err
	}
	v, err := fetch()
	c.set(key, v, err)
	return v, err
}

// write invalidates the cache when a mutating operation succeeds.
func (c *CachedService) write(err error) error {
	if err == nil {
		c.Invalidate()
	}
	return err
}

// ── Repository info ─────────────────────────────────────────────────────────

// RepoRoot delegates to the inner service.
func (c *CachedService) RepoRoot() string { return c.inner.RepoRoot() }

// GitDir delegates to the inner service.
func (c *CachedService) GitDir() string { return c.inner.GitDir() }

// Head returns the current branch (cached).
func (c *CachedService) Head() (string, error) {
	return cached(c, "head", c.inner.Head)
}

// AheadBehind returns the upstream divergence (cached).
func (c *CachedService) AheadBehind() (int, int, error) {
	type ab struct{ a, b int }
	v, err := cached(c, "aheadbehind", func() (ab, error) {
		a, b, err := c.inner.AheadBehind()
		return ab{a, b}, err
	})
	return v.a, v.b, err
}

// Upstream returns the tracking branch (cached).
func (c *CachedService) Upstream() string {
	v, _ := cached(c, "upstream", func() (string, error) { return c.inner.Upstream(), nil })
	return v
}

// IsMerging reports merge-in-progress (cached).
func (c *CachedService) IsMerging() bool {
	v, _ := cached(c, "ismerging", func() (bool, error) { return c.inner.IsMerging(), nil })
	return v
}

// ── Status & staging ────────────────────────────────────────────────────────

// Status returns the working tree status (cached).
func (c *CachedService) Status() (*StatusResult, error) {
	return cached(c, "status", c.inner.Status)
}

// Stage stages paths and invalidates the cache.
func (c *CachedService) Stage(paths ...string) error { return c.write(c.inner.Stage(paths...)) }

// StageAll stages everything and invalidates the cache.
func (c *CachedService) StageAll() error { return c.write(c.inner.StageAll()) }

// Unstage unstages paths and invalidates the cache.
func (c *CachedService) Unstage(paths ...string) error { return c.write(c.inner.Unstage(paths...)) }

// UnstageAll clears the index and invalidates the cache.
func (c *CachedService) UnstageAll() error { return c.write(c.inner.UnstageAll()) }

// Discard drops worktree changes and invalidates the cache.
func (c *CachedService) Discard(paths ...string) error { return c.write(c.inner.Discard(paths...)) }

// ── Commits ─────────────────────────────────────────────────────────────────

// Commit records staged changes and invalidates the cache.
func (c *CachedService) Commit(message string) error { return c.write(c.inner.Commit(message)) }

// Log delegates to the inner service (bounded by limit, not cached).
func (c *CachedService) Log(limit int) ([]Commit, error) { return c.inner.Log(limit) }

// Diff delegates to the inner service (content is large, not cached).
func (c *CachedService) Diff(staged bool, path string) (string, error) {
	return c.inner.Diff(staged, path)
}

// ── Branches ────────────────────────────────────────────────────────────────

// Branches returns all branches (cached).
func (c *CachedService) Branches() ([]Branch, error) {
	return cached(c, "branches", c.inner.Branches)
}

// CreateBranch creates a branch and invalidates the cache.
func (c *CachedService) CreateBranch(name string) error { return c.write(c.inner.CreateBranch(name)) }

// SwitchBranch switches branches and invalidates the cache.
func (c *CachedService) SwitchBranch(name string) error { return c.write(c.inner.SwitchBranch(name)) }

// DeleteBranch deletes a branch and invalidates the cache.
func (c *CachedService) DeleteBranch(name string, force bool) error {
	return c.write(c.inner.DeleteBranch(name, force))
}

// RenameBranch renames a branch and invalidates the cache.
func (c *CachedService) RenameBranch(oldName, newName string) error {
	return c.write(c.inner.RenameBranch(oldName, newName))
}

// MergeBranch merges a branch and invalidates the cache.
func (c *CachedService) MergeBranch(name string) error { return c.write(c.inner.MergeBranch(name)) }

// ── Tags ────────────────────────────────────────────────────────────────────

// Tags returns all tags (cached).
func (c *CachedService) Tags() ([]Tag, error) {
	return cached(c, "tags", c.inner.Tags)
}

// CreateTag creates a tag and invalidates the cache.
func (c *CachedService) CreateTag(name, message string) error {
	return c.write(c.inner.CreateTag(name, message))
}

// DeleteTag deletes a tag and invalidates the cache.
func (c *CachedService) DeleteTag(name string) error { return c.write(c.inner.DeleteTag(name)) }

// ── Remotes ─────────────────────────────────────────────────────────────────

// Remotes returns configured remotes (cached).
func (c *CachedService) Remotes() ([]Remote, error) {
	return cached(c, "remotes", c.inner.Remotes)
}

// AddRemote adds a remote and invalidates the cache.
func (c *CachedService) AddRemote(name, url string) error {
	return c.write(c.inner.AddRemote(name, url))
}

// RemoveRemote removes a remote and invalidates the cache.
func (c *CachedService) RemoveRemote(name string) error {
	return c.write(c.inner.RemoveRemote(name))
}

// Fetch fetches and invalidates the cache.
func (c *CachedService) Fetch(remote string) error { return c.write(c.inner.Fetch(remote)) }

// Pull pulls and invalidates the cache.
func (c *CachedService) Pull(remote, branch string) error {
	return c.write(c.inner.Pull(remote, branch))
}

// Push pushes and invalidates the cache.
func (c *CachedService) Push(remote, branch string, force bool) error {
	return c.write(c.inner.Push(remote, branch, force))
}

// ── Repo-local git config ───────────────────────────────────────────────────

// ConfigGet delegates to the inner service (not cached).
func (c *CachedService) ConfigGet(key string) (string, error) { return c.inner.ConfigGet(key) }

// ConfigSet writes config and invalidates the cache.
func (c *CachedService) ConfigSet(key, value string) error {
	return c.write(c.inner.ConfigSet(key, value))
}
