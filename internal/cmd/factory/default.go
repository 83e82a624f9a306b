package factory

import (
	"os"
	"sync"

	"github.com/schmitthub/pawgress/internal/cmdutil"
	"github.com/schmitthub/pawgress/internal/config"
	"github.com/schmitthub/pawgress/internal/term"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/pawgress/cmd.go).
// Tests should NOT import this package — construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	ios := cmdutil.NewIOStreams()

	// Auto-detect color support
	if ios.IsOutputTTY() {
		ios.DetectTerminalTheme()
		// Respect NO_COLOR environment variable
		if os.Getenv("NO_COLOR") != "" {
			ios.SetColorEnabled(false)
		}
	} else {
		ios.SetColorEnabled(false)
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		IOStreams: ios,
	}

	// --- Lazy dependency closures ---

	// Terminal probe for the status line, which renders on stderr
	var (
		termOnce sync.Once
		terminal *term.Term
	)
	f.Term = func() *term.Term {
		termOnce.Do(func() {
			terminal = term.FromEnv()
		})
		return terminal
	}

	// Settings
	var (
		settingsOnce   sync.Once
		settingsLoader *config.SettingsLoader
		settingsData   *config.Settings
		settingsErr    error
	)
	f.SettingsLoader = func() (*config.SettingsLoader, error) {
		settingsOnce.Do(func() {
			settingsLoader, settingsErr = config.NewSettingsLoader()
		})
		return settingsLoader, settingsErr
	}
	f.Settings = func() (*config.Settings, error) {
		if settingsData != nil || settingsErr != nil {
			return settingsData, settingsErr
		}
		loader, err := f.SettingsLoader()
		if err != nil {
			settingsErr = err
			return nil, err
		}
		settingsData, settingsErr = loader.Load()
		return settingsData, settingsErr
	}
	f.InvalidateSettingsCache = func() {
		settingsData = nil
		settingsErr = nil
	}

	return f
}
