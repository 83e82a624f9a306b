// Package init provides the config init command.
package init

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/pawgress/internal/cmdutil"
	"github.com/schmitthub/pawgress/internal/config"
	"github.com/schmitthub/pawgress/internal/logger"
)

// InitOptions contains the options for the config init command.
type InitOptions struct {
	IOStreams      *cmdutil.IOStreams
	SettingsLoader func() (*config.SettingsLoader, error)

	Force bool
}

// NewCmdInit creates the config init command.
func NewCmdInit(f *cmdutil.Factory, runF func(context.Context, *InitOptions) error) *cobra.Command {
	opts := &InitOptions{
		IOStreams:      f.IOStreams,
		SettingsLoader: f.SettingsLoader,
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Long: `Creates the settings file with documented defaults at
$PAWGRESS_HOME/settings.yaml (~/.pawgress by default).

An existing file is left untouched unless --force is given.`,
		Example: `  # Scaffold the settings file
  pawgress config init

  # Replace it with fresh defaults
  pawgress config init --force`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return initRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing settings file")

	return cmd
}

func initRun(_ context.Context, opts *InitOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	loader, err := opts.SettingsLoader()
	if err != nil {
		return err
	}

	wrote, err := config.WriteDefault(loader.Path(), opts.Force)
	if err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	if !wrote {
		fmt.Fprintf(ios.ErrOut, "%s Settings already exist: %s (use --force to overwrite)\n", cs.WarningIcon(), loader.Path())
		return nil
	}

	logger.Info().Str("file", loader.Path()).Msg("wrote default settings")
	fmt.Fprintf(ios.ErrOut, "%s Created: %s\n", cs.SuccessIcon(), loader.Path())
	return nil
}
