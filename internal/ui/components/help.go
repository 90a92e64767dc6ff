package components

import (
	"slices"
	"strings"

	"github.com/bakagit/bakagit/internal/i18n"
	"github.com/bakagit/bakagit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// HelpEntry is a single key-description pair for the help overlay.
type HelpEntry struct {
	Key  string
	Desc string
}

// helpOrder fixes the section order in the overlay. Sections are keyed by
// their localized names, so the order is resolved at render time.
func helpOrder() []string {
	return []string{
		i18n.T("help.nav"),
		i18n.T("help.tabs"),
		i18n.T("tab.status"),
		i18n.T("tab.history"),
		i18n.T("tab.branches"),
		i18n.T("tab.tags"),
		i18n.T("tab.remotes"),
		i18n.T("help.general"),
	}
}

// RenderHelp renders a full-screen help overlay.
func RenderHelp(styles ui.Styles, title string, sections map[string][]HelpEntry, width, height int) string {
	t := styles.Theme

	titleStr := lipgloss.NewStyle().
		Foreground(t.Primary).Bold(true).
		Align(lipgloss.Center).
		Width(width - 4).
		Render(title)

	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Width(14).Align(lipgloss.Right)
	descStyle := lipgloss.NewStyle().Foreground(t.Text)

	// Known sections first, then anything else.
	known := helpOrder()
	order := make([]string, 0, len(sections))
	for _, s := range known {
		if len(sections[s]) > 0 {
			order = append(order, s)
		}
	}
	var extra []string
	for s := range sections {
		if !slices.Contains(known, s) && len(sections[s]) > 0 {
			extra = append(extra, s)
		}
	}
	slices.Sort(extra)
	order = append(order, extra...)

	var body strings.Builder
	body.WriteString(titleStr + "\n\n")
	for _, section := range order {
		body.WriteString(sectionStyle.Render(section) + "\n")
		for _, e := range sections[section] {
			body.WriteString("  " + keyStyle.Render(e.Key) + "  " + descStyle.Render(e.Desc) + "\n")
		}
		body.WriteString("\n")
	}

	overlay := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Width(min(70, width-4)).
		MaxHeight(height - 2).
		Render(body.String())

	return ui.PlaceCentre(width, height, overlay)
}

// GlobalHelpEntries returns the help entries for global keybindings, keyed
// by localized section name.
func GlobalHelpEntries() map[string][]HelpEntry {
	return map[string][]HelpEntry{
		i18n.T("help.nav"): {
			{Key: "j / ↓", Desc: i18n.T("help.down")},
			{Key: "k / ↑", Desc: i18n.T("help.up")},
			{Key: "g / Home", Desc: i18n.T("help.top")},
			{Key: "G / End", Desc: i18n.T("help.bottom")},
			{Key: "enter", Desc: i18n.T("help.confirm")},
			{Key: "esc", Desc: i18n.T("help.back")},
		},
		i18n.T("help.tabs"): {
			{Key: "tab", Desc: i18n.T("help.nexttab")},
			{Key: "shift+tab", Desc: i18n.T("help.prevtab")},
			{Key: "alt+s", Desc: i18n.T("tab.status")},
			{Key: "alt+h", Desc: i18n.T("tab.history")},
			{Key: "alt+b", Desc: i18n.T("tab.branches")},
			{Key: "alt+t", Desc: i18n.T("tab.tags")},
			{Key: "alt+m", Desc: i18n.T("tab.remotes")},
		},
		i18n.T("help.general"): {
			{Key: "r", Desc: i18n.T("help.refresh")},
			{Key: "?", Desc: i18n.T("help.toggle")},
			{Key: "q / ctrl+c", Desc: i18n.T("help.quit")},
		},
	}
}
