// Package path provides the config path command.
package path

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schmitthub/pawgress/internal/cmdutil"
	"github.com/schmitthub/pawgress/internal/config"
)

// PathOptions contains the options for the config path command.
type PathOptions struct {
	IOStreams      *cmdutil.IOStreams
	SettingsLoader func() (*config.SettingsLoader, error)
}

// NewCmdPath creates the config path command.
func NewCmdPath(f *cmdutil.Factory, runF func(context.Context, *PathOptions) error) *cobra.Command {
	opts := &PathOptions{
		IOStreams:      f.IOStreams,
		SettingsLoader: f.SettingsLoader,
	}

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Long: `Prints the full path of the settings file, whether or not it
exists yet. Respects PAWGRESS_HOME.`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return pathRun(cmd.Context(), opts)
		},
	}

	return cmd
}

func pathRun(_ context.Context, opts *PathOptions) error {
	loader, err := opts.SettingsLoader()
	if err != nil {
		return err
	}

	fmt.Fprintln(opts.IOStreams.Out, loader.Path())
	return nil
}
