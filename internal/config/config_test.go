package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := loadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 200, cfg.MaxLogEntries)
	assert.True(t, cfg.ConfirmDestructive)
	assert.Empty(t, cfg.Git.DefaultAuthorName)
	assert.Empty(t, cfg.Git.DefaultAuthorEmail)
	assert.False(t, cfg.Git.AutoFetch)
	assert.Equal(t, 300, cfg.Git.AutoFetchInterval)
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "theme: light\ngit:\n  default_author_name: Alice\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := loadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "Alice", cfg.Git.DefaultAuthorName)
	// Untouched keys keep their defaults.
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 200, cfg.MaxLogEntries)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o644))

	_, err := loadFrom(dir)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Theme = "light"
	cfg.Language = "ja"
	cfg.MaxLogEntries = 50
	cfg.ConfirmDestructive = false
	cfg.Git.DefaultAuthorName = "Alice"
	cfg.Git.DefaultAuthorEmail = "alice@example.com"
	cfg.Git.AutoFetch = true
	cfg.Git.AutoFetchInterval = 60
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.Theme)
	assert.Equal(t, "ja", loaded.Language)
	assert.Equal(t, 50, loaded.MaxLogEntries)
	assert.False(t, loaded.ConfirmDestructive)
	assert.Equal(t, "Alice", loaded.Git.DefaultAuthorName)
	assert.Equal(t, "alice@example.com", loaded.Git.DefaultAuthorEmail)
	assert.True(t, loaded.Git.AutoFetch)
	assert.Equal(t, 60, loaded.Git.AutoFetchInterval)
}

func TestDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	assert.Equal(t, filepath.Join("/tmp/xdg-test", "bakagit"), Dir())
}

func TestRecentEmpty(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	repos, err := Recent()
	require.NoError(t, err)
	assert.Empty(t, repos)
}

func TestAddRecentOrdering(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, AddRecent("/repos/a"))
	require.NoError(t, AddRecent("/repos/b"))
	require.NoError(t, AddRecent("/repos/c"))

	repos, err := Recent()
	require.NoError(t, err)
	assert.Equal(t, []string{"/repos/c", "/repos/b", "/repos/a"}, repos)

	// Re-adding an existing entry moves it to the front without duplicating.
	require.NoError(t, AddRecent("/repos/a"))
	repos, err = Recent()
	require.NoError(t, err)
	assert.Equal(t, []string{"/repos/a", "/repos/c", "/repos/b"}, repos)
}

func TestAddRecentCap(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	for i := 0; i < maxRecent+5; i++ {
		require.NoError(t, AddRecent(fmt.Sprintf("/repos/r%02d", i)))
	}

	repos, err := Recent()
	require.NoError(t, err)
	require.Len(t, repos, maxRecent)
	assert.Equal(t, fmt.Sprintf("/repos/r%02d", maxRecent+4), repos[0])
}

func TestPruneRecent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	existing := t.TempDir()
	require.NoError(t, AddRecent("/repos/gone"))
	require.NoError(t, AddRecent(existing))

	repos, err := PruneRecent()
	require.NoError(t, err)
	assert.Equal(t, []string{existing}, repos)

	// The pruned list was persisted.
	repos, err = Recent()
	require.NoError(t, err)
	assert.Equal(t, []string{existing}, repos)
}

func TestRemoveRecent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, AddRecent("/repos/a"))
	require.NoError(t, AddRecent("/repos/b"))
	require.NoError(t, RemoveRecent("/repos/a"))

	repos, err := Recent()
	require.NoError(t, err)
	assert.Equal(t, []string{"/repos/b"}, repos)

	// Removing something absent is a no-op.
	require.NoError(t, RemoveRecent("/repos/zzz"))
	repos, err = Recent()
	require.NoError(t, err)
	assert.Equal(t, []string{"/repos/b"}, repos)
}
