package config

// DefaultSettings returns a Settings with every default applied.
func DefaultSettings() *Settings {
	enabled := true
	compress := true
	return &Settings{
		Logging: LoggingConfig{
			FileEnabled: &enabled,
			MaxSizeMB:   50,
			MaxAgeDays:  7,
			MaxBackups:  3,
			Compress:    &compress,
		},
		Display: DisplayConfig{
			NoColor: false,
			Width:   0,
		},
	}
}

// DefaultSettingsYAML is the commented settings template scaffolded by
// 'pawgress config init'.
const DefaultSettingsYAML = `# Pawgress Settings
# Documentation: https://github.com/schmitthub/pawgress
#
# Every value below can also be overridden with a PAWGRESS_ environment
# variable, e.g. PAWGRESS_LOGGING_MAX_SIZE_MB=100

logging:
  # Write diagnostic logs to $PAWGRESS_HOME/logs/pawgress.log
  file_enabled: true
  # Max size in MB before rotation
  max_size_mb: 50
  # Days to retain rotated logs
  max_age_days: 7
  # Number of rotated files to keep
  max_backups: 3
  # Gzip rotated logs (the active log stays plain text)
  compress: true

display:
  # Disable ANSI colors even on capable terminals
  no_color: false
  # Fixed status line width in columns (0 = probe the terminal)
  width: 0
`
