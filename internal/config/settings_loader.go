package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// SettingsFileName is the name of the user settings file.
	SettingsFileName = "settings.yaml"
	// EnvPrefix namespaces environment overrides, e.g. PAWGRESS_LOGGING_MAX_SIZE_MB.
	EnvPrefix = "PAWGRESS"
)

// SettingsLoader handles loading and saving of user settings.
type SettingsLoader struct {
	path string
}

// NewSettingsLoader creates a new SettingsLoader.
// It resolves the settings path from PAWGRESS_HOME or the default location.
func NewSettingsLoader() (*SettingsLoader, error) {
	home, err := PawgressHome()
	if err != nil {
		return nil, fmt.Errorf("failed to determine pawgress home: %w", err)
	}
	return &SettingsLoader{
		path: filepath.Join(home, SettingsFileName),
	}, nil
}

// Path returns the full path to the settings file.
func (l *SettingsLoader) Path() string {
	return l.path
}

// Exists checks if the settings file exists.
// Returns false for "file not found", returns false for other errors (permission denied, etc.).
func (l *SettingsLoader) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// Load reads and parses the settings file, layering defaults, file
// values and PAWGRESS_ environment overrides, in increasing priority.
// A missing file is not an error; defaults and environment still apply.
func (l *SettingsLoader) Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(l.path)
	v.SetConfigType("yaml")

	// Set defaults from DefaultSettings. Every key needs a default so
	// environment-only overrides are visible to Unmarshal.
	defaults := DefaultSettings()
	v.SetDefault("logging.file_enabled", defaults.Logging.IsFileEnabled())
	v.SetDefault("logging.max_size_mb", defaults.Logging.GetMaxSizeMB())
	v.SetDefault("logging.max_age_days", defaults.Logging.GetMaxAgeDays())
	v.SetDefault("logging.max_backups", defaults.Logging.GetMaxBackups())
	v.SetDefault("logging.compress", defaults.Logging.IsCompressEnabled())
	v.SetDefault("display.no_color", defaults.Display.NoColor)
	v.SetDefault("display.width", defaults.Display.Width)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if l.Exists() {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return &settings, nil
}

// Save writes the settings to the file.
// Creates the parent directory if it doesn't exist.
func (l *SettingsLoader) Save(s *Settings) error {
	if err := EnsureDir(filepath.Dir(l.path)); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return withFileLock(l.path, func() error {
		return atomicWriteFile(l.path, data, 0o644)
	})
}

// EnsureExists creates the settings file with the commented default
// template if it doesn't exist.
// Returns true if the file was created, false if it already existed.
func (l *SettingsLoader) EnsureExists() (bool, error) {
	return WriteDefault(l.path, false)
}
