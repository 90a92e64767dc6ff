package components

import (
	"strings"

	"github.com/bakagit/bakagit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// TabInfo describes a single tab for rendering.
type TabInfo struct {
	Name     string
	Icon     string
	Shortcut string
	Active   bool
}

// iconWidth returns a conservative width estimate for a tab icon. Many
// terminals render non-ASCII glyphs double-width even when runewidth says
// otherwise, so assume 2 cells for anything outside ASCII.
func iconWidth(icon string) int {
	w := 0
	for _, r := range icon {
		if r < 128 {
			w++
		} else {
			w += 2
		}
	}
	return w
}

// tabWidth is the rendered cell width of one tab (padding + icon + name).
func tabWidth(t TabInfo, iconsOnly bool) int {
	if iconsOnly {
		return 2 + iconWidth(t.Icon)
	}
	return 2 + iconWidth(t.Icon) + 1 + len([]rune(t.Name)) + 2
}

// barWidth is the total width of the bar in the given mode.
func barWidth(tabs []TabInfo, iconsOnly bool) int {
	w := 2 // bar padding
	for _, t := range tabs {
		w += tabWidth(t, iconsOnly)
	}
	return w
}

// RenderTabs renders the single-row tab bar. When the full labels do not
// fit the terminal width, tabs collapse to icons only.
func RenderTabs(styles ui.Styles, tabs []TabInfo, width int) string {
	iconsOnly := barWidth(tabs, false) > width

	var cells []string
	for _, t := range tabs {
		label := t.Icon
		if !iconsOnly {
			label = t.Icon + " " + t.Name
		}
		if t.Active {
			cells = append(cells, styles.TabActive.Render(label))
		} else {
			cells = append(cells, styles.TabItem.Render(label))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Bottom, cells...)
	if gap := width - lipgloss.Width(row); gap > 0 {
		row += styles.TabBar.Render(strings.Repeat(" ", gap))
	}
	return row
}

// TabAt maps a click X coordinate on the bar to a tab index, or -1.
func TabAt(tabs []TabInfo, width, x int) int {
	iconsOnly := barWidth(tabs, false) > width
	col := 0
	for i, t := range tabs {
		tw := tabWidth(t, iconsOnly)
		if x >= col && x < col+tw {
			return i
		}
		col += tw
	}
	return -1
}
