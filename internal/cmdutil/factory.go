package cmdutil

import (
	"github.com/schmitthub/pawgress/internal/config"
	"github.com/schmitthub/pawgress/internal/term"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist (the contract), while internal/cmd/factory
// wires the real implementations.
//
// Closure fields are set by the factory constructor and use lazy
// initialization internally. Commands extract only the fields they
// need into per-command Options structs.
type Factory struct {
	// Configuration from flags (set before command execution)
	Debug bool

	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	// IO streams for input/output (for testability)
	IOStreams *IOStreams

	// Term probes the terminal attached to stderr, where the live
	// status line renders.
	Term func() *term.Term

	// Dependency providers (closures wired by factory constructor)
	SettingsLoader          func() (*config.SettingsLoader, error)
	Settings                func() (*config.Settings, error)
	InvalidateSettingsCache func()
}
