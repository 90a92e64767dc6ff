// Package config persists user preferences and the recent-repository
// list. Preferences live in a single YAML document loaded on start and
// saved on change; missing keys fall back to defaults, which is the only
// migration logic there is.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// GitConfig holds the git-facing preferences.
type GitConfig struct {
	// DefaultAuthorName overrides git's user.name on commits when set.
	DefaultAuthorName string `mapstructure:"default_author_name"`
	// DefaultAuthorEmail overrides git's user.email on commits when set.
	DefaultAuthorEmail string `mapstructure:"default_author_email"`
	// AutoFetch enables periodic background fetching of the first remote.
	AutoFetch bool `mapstructure:"auto_fetch"`
	// AutoFetchInterval is the fetch period in seconds.
	AutoFetchInterval int `mapstructure:"auto_fetch_interval"`
}

// Config holds the resolved application configuration.
type Config struct {
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`
	// Language is a locale code for UI strings ("en", "ja", "zh-CN").
	Language string `mapstructure:"language"`
	// MaxLogEntries is the number of commits loaded into the history tab.
	MaxLogEntries int `mapstructure:"max_log_entries"`
	// ConfirmDestructive prompts before discard, force delete, etc.
	ConfirmDestructive bool `mapstructure:"confirm_destructive"`
	// Git holds git-facing preferences.
	Git GitConfig `mapstructure:"git"`

	v *viper.Viper
}

// Load reads configuration from the config directory, applying defaults
// for anything missing. A missing file is not an error.
func Load() (*Config, error) {
	return loadFrom(Dir())
}

// loadFrom reads configuration rooted at the given directory.
func loadFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	setDefaults(v)

	v.SetEnvPrefix("BAKAGIT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{v: v}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the current configuration back to disk.
func (c *Config) Save() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	c.v.Set("theme", c.Theme)
	c.v.Set("language", c.Language)
	c.v.Set("max_log_entries", c.MaxLogEntries)
	c.v.Set("confirm_destructive", c.ConfirmDestructive)
	c.v.Set("git.default_author_name", c.Git.DefaultAuthorName)
	c.v.Set("git.default_author_email", c.Git.DefaultAuthorEmail)
	c.v.Set("git.auto_fetch", c.Git.AutoFetch)
	c.v.Set("git.auto_fetch_interval", c.Git.AutoFetchInterval)
	return c.v.WriteConfigAs(filepath.Join(dir, "config.yaml"))
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("theme", "dark")
	v.SetDefault("language", "en")
	v.SetDefault("max_log_entries", 200)
	v.SetDefault("confirm_destructive", true)
	v.SetDefault("git.default_author_name", "")
	v.SetDefault("git.default_author_email", "")
	v.SetDefault("git.auto_fetch", false)
	v.SetDefault("git.auto_fetch_interval", 300)
}

// Dir returns the configuration directory, honouring XDG_CONFIG_HOME.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bakagit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bakagit")
}
