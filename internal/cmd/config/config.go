// Package config provides the config parent command.
package config

import (
	"github.com/spf13/cobra"

	initcmd "github.com/schmitthub/pawgress/internal/cmd/config/init"
	"github.com/schmitthub/pawgress/internal/cmd/config/path"
	"github.com/schmitthub/pawgress/internal/cmdutil"
)

// NewCmdConfig creates the config command.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long:  `Commands for creating and locating the pawgress settings file.`,
	}

	cmd.AddCommand(initcmd.NewCmdInit(f, nil))
	cmd.AddCommand(path.NewCmdPath(f, nil))

	return cmd
}
