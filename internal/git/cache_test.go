package git

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingService records how often each Service method is hit.
type countingService struct {
	statusCalls   int
	headCalls     int
	branchCalls   int
	tagCalls      int
	remoteCalls   int
	stageCalls    int
	stageErr      error
	statusResult  *StatusResult
	branchesValue []Branch
}

func (f *countingService) RepoRoot() string { return "/tmp/repo" }
func (f *countingService) GitDir() string   { return "/tmp/repo/.git" }
func (f *countingService) Head() (string, error) {
	f.headCalls++
	return "main", nil
}
func (f *countingService) AheadBehind() (int, int, error) { return 1, 2, nil }
func (f *countingService) Upstream() string               { return "origin/main" }
func (f *countingService) IsMerging() bool                { return false }

func (f *countingService) Status() (*StatusResult, error) {
	f.statusCalls++
	if f.statusResult != nil {
		return f.statusResult, nil
	}
	return &StatusResult{}, nil
}
func (f *countingService) Stage(paths ...string) error {
	f.stageCalls++
	return f.stageErr
}
func (f *countingService) StageAll() error               { return nil }
func (f *countingService) Unstage(paths ...string) error { return nil }
func (f *countingService) UnstageAll() error             { return nil }
func (f *countingService) Discard(paths ...string) error { return nil }

func (f *countingService) Commit(message string) error                   { return nil }
func (f *countingService) Log(limit int) ([]Commit, error)               { return nil, nil }
func (f *countingService) Diff(staged bool, path string) (string, error) { return "", nil }

func (f *countingService) Branches() ([]Branch, error) {
	f.branchCalls++
	return f.branchesValue, nil
}
func (f *countingService) CreateBranch(name string) error             { return nil }
func (f *countingService) SwitchBranch(name string) error             { return nil }
func (f *countingService) DeleteBranch(name string, force bool) error { return nil }
func (f *countingService) RenameBranch(oldName, newName string) error { return nil }
func (f *countingService) MergeBranch(name string) error              { return nil }

func (f *countingService) Tags() ([]Tag, error) {
	f.tagCalls++
	return nil, nil
}
func (f *countingService) CreateTag(name, message string) error { return nil }
func (f *countingService) DeleteTag(name string) error          { return nil }

func (f *countingService) Remotes() ([]Remote, error) {
	f.remoteCalls++
	return nil, nil
}
func (f *countingService) AddRemote(name, url string) error             { return nil }
func (f *countingService) RemoveRemote(name string) error               { return nil }
func (f *countingService) Fetch(remote string) error                    { return nil }
func (f *countingService) Pull(remote, branch string) error             { return nil }
func (f *countingService) Push(remote, branch string, force bool) error { return nil }

func (f *countingService) ConfigGet(key string) (string, error) { return "", nil }
func (f *countingService) ConfigSet(key, value string) error    { return nil }

func TestCachedServiceDeduplicatesReads(t *testing.T) {
	inner := &countingService{}
	svc := NewCachedService(inner, time.Minute)

	for range 5 {
		_, err := svc.Status()
		require.NoError(t, err)
	}
	assert.Equal(t, 1, inner.statusCalls)

	for range 3 {
		_, err := svc.Head()
		require.NoError(t, err)
		_, err = svc.Branches()
		require.NoError(t, err)
	}
	assert.Equal(t, 1, inner.headCalls)
	assert.Equal(t, 1, inner.branchCalls)
}

func TestCachedServiceTTLExpiry(t *testing.T) {
	inner := &countingService{}
	svc := NewCachedService(inner, 10*time.Millisecond)

	_, _ = svc.Status()
	time.Sleep(20 * time.Millisecond)
	_, _ = svc.Status()

	assert.Equal(t, 2, inner.statusCalls)
}

func TestCachedServiceWriteInvalidates(t *testing.T) {
	inner := &countingService{}
	svc := NewCachedService(inner, time.Minute)

	_, _ = svc.Status()
	_, _ = svc.Branches()

	require.NoError(t, svc.Stage("file.go"))

	_, _ = svc.Status()
	_, _ = svc.Branches()

	assert.Equal(t, 2, inner.statusCalls)
	assert.Equal(t, 2, inner.branchCalls)
}

func TestCachedServiceFailedWriteKeepsCache(t *testing.T) {
	inner := &countingService{stageErr: errors.New("boom")}
	svc := NewCachedService(inner, time.Minute)

	_, _ = svc.Status()
	require.Error(t, svc.Stage("file.go"))
	_, _ = svc.Status()

	// The write failed, so nothing changed and the cache stays warm.
	assert.Equal(t, 1, inner.statusCalls)
}

func TestCachedServiceInvalidate(t *testing.T) {
	inner := &countingService{}
	svc := NewCachedService(inner, time.Minute)

	_, _ = svc.Status()
	svc.Invalidate()
	_, _ = svc.Status()

	assert.Equal(t, 2, inner.statusCalls)
}

func TestCachedServiceDelegatesUncached(t *testing.T) {
	inner := &countingService{}
	svc := NewCachedService(inner, time.Minute)

	assert.Equal(t, "/tmp/repo", svc.RepoRoot())
	assert.Equal(t, "/tmp/repo/.git", svc.GitDir())

	// Log and Diff bypass the cache entirely.
	_, err := svc.Log(10)
	require.NoError(t, err)
	_, err = svc.Diff(false, "file.go")
	require.NoError(t, err)
}
