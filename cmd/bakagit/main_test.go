package main

import (
	"testing"

	"github.com/bakagit/bakagit/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestPrefGetCoversEveryKey(t *testing.T) {
	cfg := testConfig(t)

	for _, key := range prefKeys {
		_, ok := prefGet(cfg, key)
		assert.True(t, ok, key)
	}

	_, ok := prefGet(cfg, "user.name")
	assert.False(t, ok, "git keys are not bakagit settings")
}

func TestPrefSetRoundTrips(t *testing.T) {
	cfg := testConfig(t)

	cases := map[string]string{
		"theme":                    "light",
		"language":                 "ja",
		"max_log_entries":          "50",
		"confirm_destructive":      "false",
		"git.default_author_name":  "Alice",
		"git.default_author_email": "alice@example.com",
		"git.auto_fetch":           "true",
		"git.auto_fetch_interval":  "60",
	}
	for key, value := range cases {
		handled, err := prefSet(cfg, key, value)
		require.NoError(t, err, key)
		assert.True(t, handled, key)

		got, ok := prefGet(cfg, key)
		require.True(t, ok, key)
		assert.Equal(t, value, got, key)
	}
}

func TestPrefSetValidates(t *testing.T) {
	cfg := testConfig(t)

	bad := map[string]string{
		"theme":                   "solarized",
		"language":                "fr",
		"max_log_entries":         "zero",
		"confirm_destructive":     "maybe",
		"git.auto_fetch":          "yes please",
		"git.auto_fetch_interval": "-5",
	}
	for key, value := range bad {
		handled, err := prefSet(cfg, key, value)
		assert.True(t, handled, key)
		assert.Error(t, err, key)
	}
}

func TestPrefSetUnknownKeyFallsThrough(t *testing.T) {
	cfg := testConfig(t)

	handled, err := prefSet(cfg, "user.email", "alice@example.com")
	require.NoError(t, err)
	assert.False(t, handled, "unknown keys go to git config")
}
