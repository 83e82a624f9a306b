// Package text provides pure string helpers that are ANSI-aware:
// widths count visible characters, not escape bytes. This is a leaf
// package with zero internal imports.
package text

import (
	"regexp"
	"unicode/utf8"
)

// ansiPattern matches ANSI escape sequences for stripping.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Truncate shortens a string to width visible characters, adding "..."
// when it had to cut. When truncation occurs, ANSI codes are stripped
// from the result (reinserting codes at the cut is not supported).
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	if CountVisibleWidth(s) <= width {
		return s
	}

	runes := []rune(StripANSI(s))
	if width <= 3 {
		return string(runes[:min(width, len(runes))])
	}
	return string(runes[:width-3]) + "..."
}

// CountVisibleWidth returns the visible width of a string, excluding ANSI codes.
func CountVisibleWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// StripANSI removes all ANSI escape sequences from a string.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
