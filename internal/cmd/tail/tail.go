// Package tail provides the tail command, which follows log files on
// the status line.
package tail

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/schmitthub/pawgress/internal/cmdutil"
	"github.com/schmitthub/pawgress/internal/logger"
	internaltail "github.com/schmitthub/pawgress/internal/tail"
	"github.com/schmitthub/pawgress/pkg/actlog"
	"github.com/schmitthub/pawgress/pkg/progress"
)

// TailOptions holds options for the tail command.
type TailOptions struct {
	IOStreams *cmdutil.IOStreams

	Paths   []string
	Plain   bool
	NoColor bool
}

// NewCmdTail creates the tail command.
func NewCmdTail(f *cmdutil.Factory, runF func(context.Context, *TailOptions) error) *cobra.Command {
	opts := &TailOptions{
		IOStreams: f.IOStreams,
	}

	cmd := &cobra.Command{
		Use:   "tail FILE [FILE...]",
		Short: "Follow log files on the status line",
		Long: `Follows one or more files the way the status line follows builds:
each file is an activity whose newest line shows as its label, with
the read offset published as byte progress.

Files that do not exist yet are picked up when they appear, and a
truncated file is replayed from the top. Interrupt with Ctrl-C.`,
		Example: `  # Follow a build log
  pawgress tail /tmp/build.log

  # Follow several logs at once
  pawgress tail web.log worker.log

  # Print each line instead of the live status
  pawgress tail --plain web.log`,
		Args: cmdutil.RequiresMinArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args

			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return tailRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Print lines instead of the live status line")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable color on the status line")

	return cmd
}

func tailRun(ctx context.Context, opts *TailOptions) error {
	if !opts.Plain {
		var barOpts []progress.Option
		if opts.NoColor {
			barOpts = append(barOpts, progress.WithColor(false))
		}
		if restore, active := progress.Activate(barOpts...); active {
			defer restore()
			logger.SetInteractiveMode(true)
			defer logger.SetInteractiveMode(false)
			return internaltail.Follow(ctx, opts.Paths)
		}
	}

	plain := actlog.NewPlainLogger(opts.IOStreams.Out).WithDiagnostics(logger.Log)
	prev := actlog.SetCurrent(plain)
	defer actlog.SetCurrent(prev)
	return internaltail.Follow(ctx, opts.Paths)
}
