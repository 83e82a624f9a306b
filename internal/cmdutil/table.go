package cmdutil

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/schmitthub/pawgress/internal/text"
)

// TablePrinter renders tabular data to IOStreams.Out.
// When the output is a TTY with colors enabled, it renders styled headers
// and a divider. When piped or in non-TTY mode, it uses plain tabwriter
// for machine-friendly output.
type TablePrinter struct {
	ios     *IOStreams
	headers []string
	rows    [][]string
}

var (
	tableHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	tableDividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// NewTablePrinter creates a new table printer with the given column headers.
// The table writes to ios.Out when Render() is called.
func (s *IOStreams) NewTablePrinter(headers ...string) *TablePrinter {
	return &TablePrinter{
		ios:     s,
		headers: headers,
	}
}

// AddRow adds a data row to the table. If fewer columns are provided than
// headers, missing columns are treated as empty strings.
func (tp *TablePrinter) AddRow(cols ...string) {
	tp.rows = append(tp.rows, cols)
}

// Len returns the number of data rows (not including headers).
func (tp *TablePrinter) Len() int {
	return len(tp.rows)
}

// Render writes the table to the IOStreams output.
// Returns an error if writing fails.
func (tp *TablePrinter) Render() error {
	if len(tp.headers) == 0 {
		return nil
	}

	if tp.ios.IsOutputTTY() && tp.ios.ColorEnabled() {
		return tp.renderStyled()
	}
	return tp.renderPlain()
}

// renderPlain writes a tab-separated table using tabwriter.
func (tp *TablePrinter) renderPlain() error {
	w := tabwriter.NewWriter(tp.ios.Out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(tp.headers, "\t"))

	for _, row := range tp.rows {
		fmt.Fprintln(w, strings.Join(tp.normalizeRow(row), "\t"))
	}

	return w.Flush()
}

// renderStyled writes a styled table with lipgloss formatting. Columns
// share the terminal width evenly.
func (tp *TablePrinter) renderStyled() error {
	width := tp.ios.TerminalWidth()
	numCols := len(tp.headers)

	gap := 2
	available := width - gap*(numCols-1)
	if available < numCols {
		available = numCols
	}
	colWidth := available / numCols
	spacing := strings.Repeat(" ", gap)

	var headerParts []string
	for _, h := range tp.headers {
		headerParts = append(headerParts, tableHeaderStyle.Width(colWidth).Render(text.Truncate(h, colWidth)))
	}
	if _, err := fmt.Fprintln(tp.ios.Out, strings.Join(headerParts, spacing)); err != nil {
		return err
	}

	var dividerParts []string
	for range tp.headers {
		dividerParts = append(dividerParts, strings.Repeat("─", colWidth))
	}
	divider := tableDividerStyle.Render(strings.Join(dividerParts, spacing))
	if _, err := fmt.Fprintln(tp.ios.Out, divider); err != nil {
		return err
	}

	cellStyle := lipgloss.NewStyle().Width(colWidth)
	for _, row := range tp.rows {
		var parts []string
		for _, col := range tp.normalizeRow(row) {
			parts = append(parts, cellStyle.Render(text.Truncate(col, colWidth)))
		}
		if _, err := fmt.Fprintln(tp.ios.Out, strings.Join(parts, spacing)); err != nil {
			return err
		}
	}

	return nil
}

// normalizeRow pads or truncates the row to match the header count.
func (tp *TablePrinter) normalizeRow(cols []string) []string {
	n := len(tp.headers)
	if len(cols) >= n {
		return cols[:n]
	}
	row := make([]string, n)
	copy(row, cols)
	return row
}
