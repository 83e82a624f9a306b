// Package list provides the list command, which prints the available
// demo scenarios.
package list

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schmitthub/pawgress/internal/cmdutil"
	"github.com/schmitthub/pawgress/internal/scenario"
)

// Valid filter keys for scenario list.
var listValidFilterKeys = []string{"name"}

// ListOptions holds options for the list command.
type ListOptions struct {
	IOStreams *cmdutil.IOStreams

	Format *cmdutil.FormatFlags
	Filter *cmdutil.FilterFlags
}

// NewCmdList creates the list command.
func NewCmdList(f *cmdutil.Factory, runF func(context.Context, *ListOptions) error) *cobra.Command {
	opts := &ListOptions{
		IOStreams: f.IOStreams,
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List demo scenarios",
		Long:    `Lists the scenarios the demo command can run.`,
		Example: `  # List all scenarios
  pawgress list

  # Scenario names only
  pawgress list -q

  # Output as JSON
  pawgress list --json

  # Custom Go template
  pawgress list --format '{{.Name}}: {{.Description}}'

  # Filter by name
  pawgress list --filter 'name=b*'`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return listRun(cmd.Context(), opts)
		},
	}

	opts.Format = cmdutil.AddFormatFlags(cmd)
	opts.Filter = cmdutil.AddFilterFlags(cmd)

	return cmd
}

// scenarioRow is the data structure exposed to --format templates and --json output.
type scenarioRow struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func listRun(_ context.Context, opts *ListOptions) error {
	ios := opts.IOStreams

	filters, err := opts.Filter.Parse()
	if err != nil {
		return err
	}
	if err := cmdutil.ValidateFilterKeys(filters, listValidFilterKeys); err != nil {
		return err
	}

	var rows []scenarioRow
	for _, s := range scenario.All() {
		if !matchesFilters(s, filters) {
			continue
		}
		rows = append(rows, scenarioRow{Name: s.Name, Description: s.Description})
	}

	if len(rows) == 0 {
		fmt.Fprintln(ios.ErrOut, "No scenarios match.")
		return nil
	}

	switch {
	case opts.Format.Quiet:
		for _, r := range rows {
			fmt.Fprintln(ios.Out, r.Name)
		}
		return nil

	case opts.Format.IsJSON():
		return cmdutil.WriteJSON(ios.Out, rows)

	case opts.Format.IsTemplate():
		return cmdutil.ExecuteTemplate(ios.Out, opts.Format.Template(), cmdutil.ToAny(rows))

	default:
		tp := ios.NewTablePrinter("NAME", "DESCRIPTION")
		for _, r := range rows {
			tp.AddRow(r.Name, r.Description)
		}
		return tp.Render()
	}
}

func matchesFilters(s scenario.Scenario, filters []cmdutil.Filter) bool {
	for _, f := range filters {
		switch f.Key {
		case "name":
			if !matchGlob(s.Name, f.Value) {
				return false
			}
		}
	}
	return true
}

// matchGlob does simple glob matching with trailing * only.
func matchGlob(s, pattern string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(s, prefix)
	}
	return s == pattern
}
