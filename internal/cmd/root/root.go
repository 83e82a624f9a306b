// Package root assembles the pawgress command tree.
package root

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	configcmd "github.com/schmitthub/pawgress/internal/cmd/config"
	democmd "github.com/schmitthub/pawgress/internal/cmd/demo"
	listcmd "github.com/schmitthub/pawgress/internal/cmd/list"
	tailcmd "github.com/schmitthub/pawgress/internal/cmd/tail"
	versioncmd "github.com/schmitthub/pawgress/internal/cmd/version"
	"github.com/schmitthub/pawgress/internal/cmdutil"
	internalconfig "github.com/schmitthub/pawgress/internal/config"
	"github.com/schmitthub/pawgress/internal/logger"
)

// NewCmdRoot creates the root command for the pawgress CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) (*cobra.Command, error) {
	var debug bool

	cmd := &cobra.Command{
		Use:   "pawgress",
		Short: "Render live activity as a status line at the bottom of the terminal",
		Long: `Pawgress folds concurrent activities (builds, downloads, copies,
verifications) into one status line repainted in place on stderr,
with ordinary log lines scrolling above it.

Quick start:
  pawgress demo          # Watch a simulated build on the status line
  pawgress list          # See the available demo scenarios
  pawgress tail f.log    # Follow a growing log file on the status line
  pawgress config init   # Scaffold user settings (~/.pawgress/settings.yaml)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations: map[string]string{
			"versionInfo": versioncmd.Format(version, buildDate),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize logger with file logging if possible
			initializeLogger(debug)

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("pawgress starting")

			return nil
		},
		Version: f.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate))

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return cmdutil.FlagErrorWrap(err)
	})

	cmd.AddCommand(democmd.NewCmdDemo(f, nil))
	cmd.AddCommand(listcmd.NewCmdList(f, nil))
	cmd.AddCommand(tailcmd.NewCmdTail(f, nil))
	cmd.AddCommand(configcmd.NewCmdConfig(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd, nil
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to console-only logging on any errors.
func initializeLogger(debug bool) {
	loader, err := internalconfig.NewSettingsLoader()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to create settings loader")
		return
	}

	settings, err := loader.Load()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	logsDir, err := internalconfig.LogsDir()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	logCfg := &logger.LoggingConfig{
		FileEnabled: settings.Logging.FileEnabled,
		MaxSizeMB:   settings.Logging.MaxSizeMB,
		MaxAgeDays:  settings.Logging.MaxAgeDays,
		MaxBackups:  settings.Logging.MaxBackups,
		Compress:    settings.Logging.Compress,
	}

	if err := logger.InitWithFile(debug, logsDir, logCfg); err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
