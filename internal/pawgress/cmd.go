// Package pawgress wires the CLI entry point.
package pawgress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schmitthub/pawgress/internal/cmd/factory"
	"github.com/schmitthub/pawgress/internal/cmd/root"
	"github.com/schmitthub/pawgress/internal/cmdutil"
	"github.com/schmitthub/pawgress/internal/logger"
	"github.com/schmitthub/pawgress/internal/signals"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = ""
)

const (
	exitOK    = 0
	exitError = 1
)

// Main is the entry point for the pawgress CLI.
// It builds the Factory, creates the root command and runs it under a
// signal-aware context, mapping error types to exit codes.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	f := factory.New(Version, Commit)

	rootCmd, err := root.NewCmdRoot(f, Version, BuildDate)
	if err != nil {
		fmt.Fprintf(f.IOStreams.ErrOut, "failed to create root command: %v\n", err)
		return exitError
	}

	ctx, cancel := signals.SetupSignalContext(context.Background())
	defer cancel()

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return exitOK
	}

	if errors.Is(err, cmdutil.SilentError) || errors.Is(err, context.Canceled) {
		return exitError
	}

	var exitErr *cmdutil.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	printError(f.IOStreams.ErrOut, err, cmd)
	return exitError
}

// printError renders an execution error. Flag and argument mistakes
// get the command's usage string; everything else prints on one line.
func printError(out io.Writer, err error, cmd *cobra.Command) {
	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) || strings.HasPrefix(err.Error(), "unknown command ") {
		fmt.Fprintln(out, err)
		fmt.Fprintln(out)
		fmt.Fprint(out, cmd.UsageString())
		return
	}

	fmt.Fprintf(out, "Error: %v\n", err)
}
