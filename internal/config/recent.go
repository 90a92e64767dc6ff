package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// maxRecent caps the recent-repository list.
const maxRecent = 10

const recentFile = "recent_repos.json"

// Recent returns the recent-repository list, most recent first. A missing
// file yields an empty list.
func Recent() ([]string, error) {
	data, err := os.ReadFile(filepath.Join(Dir(), recentFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading recent repositories: %w", err)
	}
	var repos []string
	if err := json.Unmarshal(data, &repos); err != nil {
		return nil, fmt.Errorf("parsing recent repositories: %w", err)
	}
	return repos, nil
}

// AddRecent moves path to the front of the list, de-duplicating and
// truncating to the cap, then saves.
func AddRecent(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	repos, err := Recent()
	if err != nil {
		return err
	}
	out := make([]string, 0, len(repos)+1)
	out = append(out, abs)
	for _, r := range repos {
		if r != abs {
			out = append(out, r)
		}
	}
	if len(out) > maxRecent {
		out = out[:maxRecent]
	}
	return saveRecent(out)
}

// RemoveRecent drops path from the list, e.g. after the repo was deleted.
func RemoveRecent(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	repos, err := Recent()
	if err != nil {
		return err
	}
	out := repos[:0]
	for _, r := range repos {
		if r != abs {
			out = append(out, r)
		}
	}
	return saveRecent(out)
}

// PruneRecent drops entries whose directory no longer exists and returns
// the surviving list, most recent first. The pruned list is persisted only
// when something was dropped.
func PruneRecent() ([]string, error) {
	repos, err := Recent()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(repos))
	for _, r := range repos {
		if info, err := os.Stat(r); err == nil && info.IsDir() {
			out = append(out, r)
		}
	}
	if len(out) != len(repos) {
		if err := saveRecent(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func saveRecent(repos []string) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(repos, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(filepath.Join(dir, recentFile), data, 0o644)
}
