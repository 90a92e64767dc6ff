// Package watcher monitors Git-internal state files and notifies the UI
// to refresh. Only the handful of paths inside .git that change on
// meaningful operations are watched, never the working tree itself, so
// the watcher stays cheap even on very large checkouts.
//
// Watched paths:
//   - .git/index        → staging changes
//   - .git/HEAD         → branch switches, commits
//   - .git/refs/heads   → local branch updates
//   - .git/refs/tags    → tag creation/deletion
//   - .git/refs/remotes → fetch/pull updates
//   - .git/MERGE_HEAD   → merge starts/ends
//   - .git/FETCH_HEAD   → fetch completions
//
// Working-tree edits are picked up on the next manual refresh or on the
// index change that follows a git add.
package watcher

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is sent when the watcher sees a relevant Git state change.
type Event struct{}

// Watch monitors gitDir for state changes and sends Event values on the
// returned channel. Bursts are coalesced into a single event by the
// debounce window. Call stop to tear the watcher down.
func Watch(gitDir string, debounce time.Duration) (<-chan Event, func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	targets := []string{
		gitDir, // HEAD, index, MERGE_HEAD, FETCH_HEAD
		filepath.Join(gitDir, "refs"),
		filepath.Join(gitDir, "refs/heads"),
		filepath.Join(gitDir, "refs/tags"),
	}

	remotesDir := filepath.Join(gitDir, "refs/remotes")
	if info, err := os.Stat(remotesDir); err == nil && info.IsDir() {
		targets = append(targets, remotesDir)
		if entries, err := os.ReadDir(remotesDir); err == nil {
			for _, e := range entries {
				if e.IsDir() {
					targets = append(targets, filepath.Join(remotesDir, e.Name()))
				}
			}
		}
	}

	for _, t := range targets {
		if info, statErr := os.Stat(t); statErr == nil && info.IsDir() {
			// Non-fatal: some refs dirs may not exist yet.
			_ = w.Add(t)
		}
	}

	ch := make(chan Event, 1)
	done := make(chan struct{})

	// Jitter spreads the refresh when several instances watch the same
	// .git directory, so their git subprocesses don't all fire at once.
	jitterRange := debounce / 2

	go func() {
		defer close(ch)
		var timer *time.Timer

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if shouldIgnore(ev.Name) {
					continue
				}
				d := debounce
				if jitterRange > 0 {
					d += time.Duration(rand.Int64N(int64(jitterRange)))
				}
				if timer == nil {
					timer = time.NewTimer(d)
				} else {
					timer.Reset(d)
				}
			case <-timerChan(timer):
				timer = nil
				select {
				case ch <- Event{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		close(done)
		_ = w.Close()
	}

	return ch, stop, nil
}

func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

// shouldIgnore filters events that must not trigger a refresh.
func shouldIgnore(path string) bool {
	base := filepath.Base(path)

	// Lock files mean git is mid-operation; re-invoking git while it
	// holds a lock would fail or stall.
	if strings.HasSuffix(base, ".lock") {
		return true
	}

	// Editor temp files that end up inside .git.
	if strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, "~") ||
		strings.HasPrefix(base, ".#") {
		return true
	}

	// Fires while a commit message is being typed in an editor.
	if base == "COMMIT_EDITMSG" {
		return true
	}

	if base == "gc.log" || strings.HasPrefix(base, "fsmonitor") {
		return true
	}

	return false
}
