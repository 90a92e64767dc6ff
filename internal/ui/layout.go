// Package ui provides shared TUI styling, layout helpers, and themes.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PlaceCentre centres content within the given dimensions.
func PlaceCentre(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Truncate truncates s to maxLen runes, appending an ellipsis if cut.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
