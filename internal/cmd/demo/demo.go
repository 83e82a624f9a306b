// Package demo provides the demo command, which drives the live
// status line with a simulated workload.
package demo

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/schmitthub/pawgress/internal/cmdutil"
	"github.com/schmitthub/pawgress/internal/logger"
	"github.com/schmitthub/pawgress/internal/scenario"
	"github.com/schmitthub/pawgress/pkg/actlog"
	"github.com/schmitthub/pawgress/pkg/progress"
)

// DemoOptions holds options for the demo command.
type DemoOptions struct {
	IOStreams *cmdutil.IOStreams

	Scenario string
	Speed    time.Duration
	Seed     uint64
	Width    int
	NoColor  bool
	Plain    bool
}

// NewCmdDemo creates the demo command.
func NewCmdDemo(f *cmdutil.Factory, runF func(context.Context, *DemoOptions) error) *cobra.Command {
	opts := &DemoOptions{
		IOStreams: f.IOStreams,
		Scenario:  "build",
	}

	cmd := &cobra.Command{
		Use:   "demo [SCENARIO]",
		Short: "Drive the status line with a simulated workload",
		Long: `Runs a canned scenario and renders its activity as a live status
line on stderr, the same rendering any program embedding this module
gets for real work.

When stderr is not a terminal (or with --plain) the scenario's log
lines are printed to stdout instead, one per line.`,
		Example: `  # Watch a simulated package build
  pawgress demo

  # Downloads and path copies, reproducible jitter
  pawgress demo fetch --seed 7

  # Slow the whole thing down to follow individual events
  pawgress demo mixed --speed 250ms

  # Plain log lines, no live status
  pawgress demo build --plain`,
		Args: cmdutil.RequiresMaxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Scenario = args[0]
			}
			if _, ok := scenario.Lookup(opts.Scenario); !ok {
				return cmdutil.FlagErrorf("unknown scenario %q (run 'pawgress list' to see them)", opts.Scenario)
			}

			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return demoRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().DurationVar(&opts.Speed, "speed", 40*time.Millisecond, "Duration of one simulated work step")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Seed for workload jitter (0 picks one at random)")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Force the status line width (0 probes the terminal)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable color on the status line")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Print log lines instead of the live status line")

	return cmd
}

func demoRun(ctx context.Context, opts *DemoOptions) error {
	s, ok := scenario.Lookup(opts.Scenario)
	if !ok {
		return cmdutil.FlagErrorf("unknown scenario %q (run 'pawgress list' to see them)", opts.Scenario)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	pace := &scenario.Pace{Unit: opts.Speed}

	// The first UUID segment is enough to correlate one run's log lines.
	runID := uuid.NewString()[:8]
	logger.SetContext(s.Name, runID)
	defer logger.ClearContext()
	logger.Debug().Uint64("seed", seed).Dur("speed", opts.Speed).Msg("demo starting")

	if !opts.Plain {
		var barOpts []progress.Option
		if opts.Width > 0 {
			barOpts = append(barOpts, progress.WithWidth(opts.Width))
		}
		if opts.NoColor {
			barOpts = append(barOpts, progress.WithColor(false))
		}
		if restore, active := progress.Activate(barOpts...); active {
			defer restore()
			logger.SetInteractiveMode(true)
			defer logger.SetInteractiveMode(false)
			return s.Run(ctx, pace, rng)
		}
	}

	plain := actlog.NewPlainLogger(opts.IOStreams.Out).WithDiagnostics(logger.Log)
	prev := actlog.SetCurrent(plain)
	defer actlog.SetCurrent(prev)
	return s.Run(ctx, pace, rng)
}
