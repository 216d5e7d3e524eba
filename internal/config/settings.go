package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"tasklist/internal/logging"
	"tasklist/internal/store"
)

// Environment variables overriding config.toml.
const (
	EnvBackend    = "TASKLIST_BACKEND"
	EnvDeleteMode = "TASKLIST_DELETE_MODE"
	EnvLogLevel   = "TASKLIST_LOG_LEVEL"
	EnvLogFormat  = "TASKLIST_LOG_FORMAT"
	EnvGoogleList = "TASKLIST_GOOGLE_LIST"
)

// loadFromEnv overrides settings from environment variables.
func loadFromEnv(s *Settings) {
	if v := os.Getenv(EnvBackend); v != "" {
		s.Backend = v
	}
	if v := os.Getenv(EnvDeleteMode); v != "" {
		s.DeleteMode = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		s.LogFormat = v
	}
	if v := os.Getenv(EnvGoogleList); v != "" {
		s.GoogleList = v
	}
}

// Validate checks every setting.
func (s Settings) Validate() error {
	switch s.Backend {
	case BackendFile, BackendGoogleTasks:
	default:
		return fmt.Errorf("invalid backend %q, must be one of: %s, %s", s.Backend, BackendFile, BackendGoogleTasks)
	}
	if _, err := store.ParseMode(s.DeleteMode); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormatter(s.LogFormat); err != nil {
		return err
	}
	if s.Backend == BackendGoogleTasks && s.GoogleList == "" {
		return fmt.Errorf("google_list must not be empty")
	}
	return nil
}

// Mode returns the parsed delete mode.
func (c *Config) Mode() store.Mode {
	mode, err := store.ParseMode(c.Settings.DeleteMode)
	if err != nil {
		return store.ModeID
	}
	return mode
}

// LogOptions returns logger options for the settings, with Debug forcing
// the debug level.
func (c *Config) LogOptions() logging.Options {
	opts := logging.DefaultOptions()
	if level, err := logging.ParseLevel(c.Settings.LogLevel); err == nil {
		opts.Level = level
	}
	if f, err := logging.ParseFormatter(c.Settings.LogFormat); err == nil {
		opts.Formatter = f
	}
	if c.Debug {
		opts.Level = log.DebugLevel
	}
	return opts
}
