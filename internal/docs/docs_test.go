package docs

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// Test command tree for all format tests
// This simulates a pawgress-like command hierarchy

func newTestRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pawgress",
		Short: "Watch activity on a terminal status line",
		Long:  "Pawgress aggregates activity from concurrent work and renders it as a single status line.",
	}

	// Add config command with subcommands
	configCmd := newTestConfigCmd()
	rootCmd.AddCommand(configCmd)

	// Add leaf commands
	rootCmd.AddCommand(newTestDemoCmd())
	rootCmd.AddCommand(newTestTailCmd())

	// Add hidden command (should be skipped in docs)
	hiddenCmd := &cobra.Command{
		Use:    "selftest",
		Short:  "Exercise the renderer against the local terminal",
		Hidden: true,
	}
	rootCmd.AddCommand(hiddenCmd)

	// Add global flags
	rootCmd.PersistentFlags().BoolP("debug", "D", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Write diagnostic logs to this file")

	return rootCmd
}

func newTestConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Manage user settings",
		Long:    "Manage pawgress user settings including creating, locating, and editing the settings file.",
	}

	// config init
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default settings file",
		Long:  "Write a commented settings file with every option at its default value.",
		Example: `  # Create the settings file
  pawgress config init

  # Overwrite an existing file
  pawgress config init --force`,
	}
	initCmd.Flags().BoolP("force", "f", false, "Overwrite the settings file if it exists")
	initCmd.Flags().BoolP("quiet", "q", false, "Suppress the confirmation message")
	configCmd.AddCommand(initCmd)

	// config path
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Long:  "Print the absolute path of the settings file.",
	}
	configCmd.AddCommand(pathCmd)

	// config edit
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the settings file in an editor",
		Long:  "Open the settings file in the editor named by $EDITOR.",
	}
	editCmd.Flags().String("editor", "", "Editor command to use instead of $EDITOR")
	configCmd.AddCommand(editCmd)

	return configCmd
}

func newTestDemoCmd() *cobra.Command {
	demoCmd := &cobra.Command{
		Use:   "demo [SCENARIO]",
		Short: "Play a built-in demo scenario",
		Long:  "Play a scripted scenario through the status line renderer.",
		Example: `  # Play the default build scenario
  pawgress demo

  # Play the mixed scenario at double speed
  pawgress demo mixed --speed 20ms`,
	}
	demoCmd.Flags().Duration("speed", 0, "Base delay between scenario events")
	demoCmd.Flags().Uint64("seed", 0, "Seed for randomized timing")
	return demoCmd
}

func newTestTailCmd() *cobra.Command {
	tailCmd := &cobra.Command{
		Use:   "tail FILE [FILE...]",
		Short: "Follow log files on the status line",
		Long:  "Follow one or more growing log files, one activity row per file.",
	}
	tailCmd.Flags().Bool("plain", false, "Print lines instead of rendering the status line")
	return tailCmd
}

// checkStringContains verifies that got contains expected substring
func checkStringContains(t *testing.T, got, expected string) {
	t.Helper()
	if !strings.Contains(got, expected) {
		t.Errorf("expected output to contain %q, got:\n%s", expected, got)
	}
}

// checkStringOmits verifies that got does not contain unexpected substring
func checkStringOmits(t *testing.T, got, unexpected string) {
	t.Helper()
	if strings.Contains(got, unexpected) {
		t.Errorf("expected output to not contain %q, got:\n%s", unexpected, got)
	}
}
