package cmdutil

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ColorScheme provides themed text styling for command output.
// When disabled, every method returns its input unchanged so callers
// never need to branch on color support.
type ColorScheme struct {
	enabled bool
	theme   string

	red     lipgloss.Style
	green   lipgloss.Style
	yellow  lipgloss.Style
	blue    lipgloss.Style
	cyan    lipgloss.Style
	magenta lipgloss.Style
	bold    lipgloss.Style
	muted   lipgloss.Style
}

// NewColorScheme creates a ColorScheme. theme is "light" or "dark";
// empty defaults to dark.
func NewColorScheme(enabled bool, theme string) *ColorScheme {
	if theme == "" {
		theme = "dark"
	}

	mutedColor := lipgloss.Color("245")
	if theme == "light" {
		mutedColor = lipgloss.Color("240")
	}

	return &ColorScheme{
		enabled: enabled,
		theme:   theme,
		red:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		green:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		yellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		blue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		cyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		magenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		bold:    lipgloss.NewStyle().Bold(true),
		muted:   lipgloss.NewStyle().Foreground(mutedColor),
	}
}

// Enabled reports whether styling is applied.
func (cs *ColorScheme) Enabled() bool { return cs.enabled }

// Theme returns the active theme name.
func (cs *ColorScheme) Theme() string { return cs.theme }

func (cs *ColorScheme) render(style lipgloss.Style, s string) string {
	if !cs.enabled {
		return s
	}
	return style.Render(s)
}

func (cs *ColorScheme) Red(s string) string     { return cs.render(cs.red, s) }
func (cs *ColorScheme) Green(s string) string   { return cs.render(cs.green, s) }
func (cs *ColorScheme) Yellow(s string) string  { return cs.render(cs.yellow, s) }
func (cs *ColorScheme) Blue(s string) string    { return cs.render(cs.blue, s) }
func (cs *ColorScheme) Cyan(s string) string    { return cs.render(cs.cyan, s) }
func (cs *ColorScheme) Magenta(s string) string { return cs.render(cs.magenta, s) }
func (cs *ColorScheme) Bold(s string) string    { return cs.render(cs.bold, s) }
func (cs *ColorScheme) Muted(s string) string   { return cs.render(cs.muted, s) }

func (cs *ColorScheme) Redf(format string, args ...any) string {
	return cs.Red(fmt.Sprintf(format, args...))
}

func (cs *ColorScheme) Greenf(format string, args ...any) string {
	return cs.Green(fmt.Sprintf(format, args...))
}

func (cs *ColorScheme) Yellowf(format string, args ...any) string {
	return cs.Yellow(fmt.Sprintf(format, args...))
}

func (cs *ColorScheme) Bluef(format string, args ...any) string {
	return cs.Blue(fmt.Sprintf(format, args...))
}

func (cs *ColorScheme) Cyanf(format string, args ...any) string {
	return cs.Cyan(fmt.Sprintf(format, args...))
}

func (cs *ColorScheme) Magentaf(format string, args ...any) string {
	return cs.Magenta(fmt.Sprintf(format, args...))
}

func (cs *ColorScheme) Boldf(format string, args ...any) string {
	return cs.Bold(fmt.Sprintf(format, args...))
}

func (cs *ColorScheme) Mutedf(format string, args ...any) string {
	return cs.Muted(fmt.Sprintf(format, args...))
}

// SuccessIcon returns a green check mark, or "[ok]" without color.
func (cs *ColorScheme) SuccessIcon() string {
	if !cs.enabled {
		return "[ok]"
	}
	return cs.Green("✓")
}

// WarningIcon returns a yellow exclamation mark, or "[warn]" without color.
func (cs *ColorScheme) WarningIcon() string {
	if !cs.enabled {
		return "[warn]"
	}
	return cs.Yellow("!")
}

// FailureIcon returns a red cross, or "[error]" without color.
func (cs *ColorScheme) FailureIcon() string {
	if !cs.enabled {
		return "[error]"
	}
	return cs.Red("✗")
}

// InfoIcon returns a cyan info sign, or "[info]" without color.
func (cs *ColorScheme) InfoIcon() string {
	if !cs.enabled {
		return "[info]"
	}
	return cs.Cyan("ℹ")
}

func (cs *ColorScheme) SuccessIconWithColor(text string) string {
	return cs.SuccessIcon() + " " + text
}

func (cs *ColorScheme) WarningIconWithColor(text string) string {
	return cs.WarningIcon() + " " + text
}

func (cs *ColorScheme) FailureIconWithColor(text string) string {
	return cs.FailureIcon() + " " + text
}

func (cs *ColorScheme) InfoIconWithColor(text string) string {
	return cs.InfoIcon() + " " + text
}
