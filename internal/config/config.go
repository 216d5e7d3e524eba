// Package config handles the configuration directory, the TOML settings file
// and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"tasklist/internal/logging"
)

const (
	// AppName is the application directory name.
	AppName = "tasklist"

	// SettingsFile is the TOML settings filename.
	SettingsFile = "config.toml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// LogFile receives logs from the terminal UI.
	LogFile = "tasklist.log"

	// DataDir holds the task slot.
	DataDir = "data"
)

// Backend names.
const (
	BackendFile        = "file"
	BackendGoogleTasks = "googletasks"
)

// Settings are the values read from config.toml and the environment.
type Settings struct {
	Backend    string `toml:"backend"`
	DeleteMode string `toml:"delete_mode"`
	LogLevel   string `toml:"log_level"`
	LogFormat  string `toml:"log_format"`
	GoogleList string `toml:"google_list"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Backend:    BackendFile,
		DeleteMode: "id",
		LogLevel:   "info",
		LogFormat:  "text",
		GoogleList: "@default",
	}
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Settings holds file and environment settings.
	Settings Settings

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Logger is set by the dispatcher once settings are known.
	Logger *log.Logger
}

// Log returns the configured logger, or one that discards everything.
func (c *Config) Log() *log.Logger {
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	return c.Logger
}

// New creates a Config with the default or specified config directory and
// built-in settings. It does not read any file.
// If configDir is empty, uses XDG_CONFIG_HOME/tasklist or $HOME/.config/tasklist.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, Settings: DefaultSettings()}, nil
}

// Load is New followed by reading config.toml (if present) and applying
// environment overrides.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.loadSettingsFile(); err != nil {
		return nil, err
	}
	loadFromEnv(&cfg.Settings)
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func (c *Config) loadSettingsFile() error {
	path := c.SettingsPath()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	md, err := toml.DecodeFile(path, &c.Settings)
	if err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config file %s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

// SettingsPath returns the path to config.toml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// DataPath returns the directory holding the task slot.
func (c *Config) DataPath() string {
	return filepath.Join(c.Dir, DataDir)
}

// LogPath returns the path of the terminal UI log file.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
