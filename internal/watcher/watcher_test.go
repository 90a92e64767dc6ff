package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldIgnore(t *testing.T) {
	ignored := []string{
		"/repo/.git/index.lock",
		"/repo/.git/refs/heads/main.lock",
		"/repo/.git/COMMIT_EDITMSG",
		"/repo/.git/COMMIT_EDITMSG.swp",
		"/repo/.git/config~",
		"/repo/.git/.#HEAD",
		"/repo/.git/gc.log",
		"/repo/.git/fsmonitor--daemon.ipc",
	}
	for _, p := range ignored {
		assert.True(t, shouldIgnore(p), p)
	}

	relevant := []string{
		"/repo/.git/HEAD",
		"/repo/.git/index",
		"/repo/.git/MERGE_HEAD",
		"/repo/.git/FETCH_HEAD",
		"/repo/.git/refs/heads/main",
		"/repo/.git/refs/tags/v1.0.0",
	}
	for _, p := range relevant {
		assert.False(t, shouldIgnore(p), p)
	}
}

func TestWatchCoalescesBurst(t *testing.T) {
	gitDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0o755))

	ch, stop, err := Watch(gitDir, 20*time.Millisecond)
	require.NoError(t, err)
	defer stop()

	// A burst of writes, as a commit produces.
	for _, name := range []string{"HEAD", "index", "ORIG_HEAD"} {
		require.NoError(t, os.WriteFile(filepath.Join(gitDir, name), []byte("x\n"), 0o644))
	}

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no event after git state change")
	}

	// The burst collapses into one event; the channel goes quiet after.
	select {
	case <-ch:
		t.Fatal("burst produced a second event")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchZeroDebounce(t *testing.T) {
	gitDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0o755))

	ch, stop, err := Watch(gitDir, 0)
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte("ref: refs/heads/main\n"), 0o644))

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no event with zero debounce")
	}
}

func TestWatchIgnoresLockFiles(t *testing.T) {
	gitDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0o755))

	ch, stop, err := Watch(gitDir, 20*time.Millisecond)
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(gitDir, "index.lock"), []byte(""), 0o644))

	select {
	case <-ch:
		t.Fatal("lock file triggered an event")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestStopClosesChannel(t *testing.T) {
	gitDir := t.TempDir()
	ch, stop, err := Watch(gitDir, 10*time.Millisecond)
	require.NoError(t, err)

	stop()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after stop")
	}
}
