package config

import (
	"os"
	"path/filepath"
)

const (
	// PawgressHomeEnv is the environment variable for the pawgress home directory
	PawgressHomeEnv = "PAWGRESS_HOME"
	// DefaultPawgressDir is the default directory name under user home
	DefaultPawgressDir = ".pawgress"
	// LogsSubdir is the subdirectory for diagnostic log files
	LogsSubdir = "logs"
)

// PawgressHome returns the pawgress home directory.
// It checks the PAWGRESS_HOME environment variable first, then defaults to ~/.pawgress
func PawgressHome() (string, error) {
	if home := os.Getenv(PawgressHomeEnv); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultPawgressDir), nil
}

// LogsDir returns the diagnostic logs directory (~/.pawgress/logs)
func LogsDir() (string, error) {
	home, err := PawgressHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LogsSubdir), nil
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
