package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoggingConfigDefaults(t *testing.T) {
	cfg := &LoggingConfig{}

	if !cfg.IsFileEnabled() {
		t.Error("IsFileEnabled should default to true when nil")
	}
	if !cfg.IsCompressEnabled() {
		t.Error("IsCompressEnabled should default to true when nil")
	}
	if cfg.GetMaxSizeMB() != 50 {
		t.Errorf("GetMaxSizeMB should default to 50, got %d", cfg.GetMaxSizeMB())
	}
	if cfg.GetMaxAgeDays() != 7 {
		t.Errorf("GetMaxAgeDays should default to 7, got %d", cfg.GetMaxAgeDays())
	}
	if cfg.GetMaxBackups() != 3 {
		t.Errorf("GetMaxBackups should default to 3, got %d", cfg.GetMaxBackups())
	}
}

func TestLoggingConfigExplicitValues(t *testing.T) {
	falseVal := false
	cfg := &LoggingConfig{
		FileEnabled: &falseVal,
		MaxSizeMB:   20,
		MaxAgeDays:  14,
		MaxBackups:  5,
		Compress:    &falseVal,
	}

	if cfg.IsFileEnabled() {
		t.Error("IsFileEnabled should return false when explicitly set")
	}
	if cfg.IsCompressEnabled() {
		t.Error("IsCompressEnabled should return false when explicitly set")
	}
	if cfg.GetMaxSizeMB() != 20 {
		t.Errorf("GetMaxSizeMB = %d, want 20", cfg.GetMaxSizeMB())
	}
	if cfg.GetMaxAgeDays() != 14 {
		t.Errorf("GetMaxAgeDays = %d, want 14", cfg.GetMaxAgeDays())
	}
	if cfg.GetMaxBackups() != 5 {
		t.Errorf("GetMaxBackups = %d, want 5", cfg.GetMaxBackups())
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if !s.Logging.IsFileEnabled() {
		t.Error("default settings should enable file logging")
	}
	if s.Logging.GetMaxSizeMB() != 50 {
		t.Errorf("default max_size_mb = %d, want 50", s.Logging.GetMaxSizeMB())
	}
	if s.Display.NoColor {
		t.Error("default settings should not disable color")
	}
	if s.Display.Width != 0 {
		t.Errorf("default width = %d, want 0 (probe)", s.Display.Width)
	}
}

// The commented template and DefaultSettings must agree, otherwise
// 'config init' would scaffold different behavior than an absent file.
func TestDefaultSettingsYAMLMatchesDefaults(t *testing.T) {
	var fromTemplate Settings
	if err := yaml.Unmarshal([]byte(DefaultSettingsYAML), &fromTemplate); err != nil {
		t.Fatalf("DefaultSettingsYAML does not parse: %v", err)
	}

	defaults := DefaultSettings()

	if fromTemplate.Logging.IsFileEnabled() != defaults.Logging.IsFileEnabled() {
		t.Error("template file_enabled disagrees with DefaultSettings")
	}
	if fromTemplate.Logging.GetMaxSizeMB() != defaults.Logging.GetMaxSizeMB() {
		t.Error("template max_size_mb disagrees with DefaultSettings")
	}
	if fromTemplate.Logging.GetMaxAgeDays() != defaults.Logging.GetMaxAgeDays() {
		t.Error("template max_age_days disagrees with DefaultSettings")
	}
	if fromTemplate.Logging.GetMaxBackups() != defaults.Logging.GetMaxBackups() {
		t.Error("template max_backups disagrees with DefaultSettings")
	}
	if fromTemplate.Logging.IsCompressEnabled() != defaults.Logging.IsCompressEnabled() {
		t.Error("template compress disagrees with DefaultSettings")
	}
	if fromTemplate.Display.NoColor != defaults.Display.NoColor {
		t.Error("template no_color disagrees with DefaultSettings")
	}
	if fromTemplate.Display.Width != defaults.Display.Width {
		t.Error("template width disagrees with DefaultSettings")
	}
}
