package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bakagit/bakagit/internal/i18n"
	"github.com/bakagit/bakagit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	Branch   string
	Ahead    int
	Behind   int
	Clean    bool
	Merging  bool
	Message  string // transient info/error message
	IsError  bool
	RepoRoot string
}

// RenderStatusBar renders the bottom status bar: branch, upstream sync
// counts, worktree state on the left; transient message or repo name on
// the right.
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme

	sep := lipgloss.NewStyle().Foreground(t.Border).Faint(true).Render(" │ ")

	branch := " " + lipgloss.NewStyle().Foreground(t.Primary).Bold(true).
		Render(" "+data.Branch)

	var sync string
	if width >= 40 && (data.Ahead > 0 || data.Behind > 0) {
		var parts []string
		if data.Ahead > 0 {
			parts = append(parts, fmt.Sprintf("↑%d", data.Ahead))
		}
		if data.Behind > 0 {
			parts = append(parts, fmt.Sprintf("↓%d", data.Behind))
		}
		sync = sep + lipgloss.NewStyle().Foreground(t.Warning).Render(strings.Join(parts, " "))
	}

	var state string
	switch {
	case data.Merging:
		state = sep + lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Warning).
			Bold(true).Padding(0, 1).Render(i18n.T("bar.merging"))
	case data.Clean:
		state = sep + lipgloss.NewStyle().Foreground(t.Success).Render("✓ "+i18n.T("bar.clean"))
	default:
		state = sep + lipgloss.NewStyle().Foreground(t.Modified).Render("● "+i18n.T("bar.modified"))
	}

	left := branch + sync + state

	var right string
	if data.Message != "" {
		fg := t.Info
		if data.IsError {
			fg = t.Error
		}
		right = lipgloss.NewStyle().Foreground(fg).Render(data.Message) + " "
	} else if width >= 60 && data.RepoRoot != "" {
		right = lipgloss.NewStyle().Foreground(t.TextSubtle).
			Render(filepath.Base(data.RepoRoot)) + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 1
		right = ""
	}
	return styles.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
