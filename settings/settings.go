package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for the traversal testers and the tools running them.
type Settings struct {
	Traversal struct {
		// CrawlExtended enables the crouch vault variants and crouching water exits.
		CrawlExtended bool
		// MonkeyAutoJump enables jumping up to a monkey swing ceiling from a standstill.
		MonkeyAutoJump bool
	}
	Log struct {
		// Level is one of debug, info, warn or error.
		Level string
	}
	Sentry struct {
		// DSN is the sentry project to report crashes to. Crash reporting is disabled when it is empty.
		DSN         string
		Environment string
	}
	Stats struct {
		// Enabled starts a runtime statistics dashboard while soak runs are in progress.
		Enabled bool
		Addr    string
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	settings := Settings{}
	settings.Traversal.CrawlExtended = true
	settings.Traversal.MonkeyAutoJump = false
	settings.Log.Level = "info"
	settings.Sentry.Environment = "development"
	settings.Stats.Addr = "localhost:18066"
	return settings
}

// LogLevel parses the configured log level, falling back to info.
func (s Settings) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %w", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %w", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	return settings, nil
}
