package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	GitHub GitHubConfig
	UI     UIConfig
	Log    LogConfig
}

// GitHubConfig holds API settings.
type GitHubConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	TokenEnv string `mapstructure:"token_env"`
	Token    string
	PerPage  int `mapstructure:"per_page"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale string
}

// LogConfig holds the debug log location. The TUI owns the terminal, so
// logs always go to a file.
type LogConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix GHBROWSE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("github.base_url", "https://api.github.com/")
	v.SetDefault("github.token_env", "GITHUB_TOKEN")
	v.SetDefault("github.token", "")
	v.SetDefault("github.per_page", 30)
	v.SetDefault("ui.locale", "und")
	v.SetDefault("log.path", filepath.Join(os.TempDir(), "ghbrowse.log"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GHBROWSE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ghbrowse"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GHBROWSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Path returns the config file Load reads and Save writes.
func Path() string {
	if p := os.Getenv("GHBROWSE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "ghbrowse", "config.toml")
}

// Save writes the provided config to disk, creating the config directory if needed.
// The token is stored in plain text; prefer the env var or the secret store.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("github.base_url", cfg.GitHub.BaseURL)
	v.Set("github.token_env", cfg.GitHub.TokenEnv)
	v.Set("github.token", cfg.GitHub.Token)
	v.Set("github.per_page", cfg.GitHub.PerPage)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
