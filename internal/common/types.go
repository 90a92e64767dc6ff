package common

import (
	"github.com/bakagit/bakagit/internal/i18n"
	"github.com/bakagit/bakagit/internal/ui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// ── Tab identifiers ─────────────────────────────────────────────────────────

// TabID identifies which panel is active.
type TabID int

const (
	TabStatus TabID = iota
	TabHistory
	TabBranches
	TabTags
	TabRemotes
)

// TabMeta describes a tab for display purposes.
type TabMeta struct {
	ID       TabID
	NameKey  string // i18n key for the display name
	Icon     string // plain-unicode icon, works in any terminal
	Shortcut string // mnemonic shown in the tab bar
}

// AllTabs is the ordered list of panels. Tab/Shift+Tab cycles through
// them, or alt+shortcut jumps directly.
var AllTabs = []TabMeta{
	{TabStatus, "tab.status", "●", "s"},
	{TabHistory, "tab.history", "◆", "h"},
	{TabBranches, "tab.branches", "⑂", "b"},
	{TabTags, "tab.tags", "◈", "t"},
	{TabRemotes, "tab.remotes", "⇄", "m"},
}

// Name returns the localized display name.
func (t TabMeta) Name() string { return i18n.T(t.NameKey) }

// ── Messages ────────────────────────────────────────────────────────────────

// RefreshMsg signals views to reload data from the repository.
type RefreshMsg struct{}

// ErrMsg carries an error to be displayed in the status bar.
type ErrMsg struct{ Err error }

// InfoMsg carries a transient informational message.
type InfoMsg struct{ Text string }

// SwitchTabMsg requests a tab switch.
type SwitchTabMsg struct{ Tab TabID }

// CmdRefresh returns a RefreshMsg (use as return from a tea.Cmd).
func CmdRefresh() tea.Msg { return RefreshMsg{} }

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}

// ── View interface ──────────────────────────────────────────────────────────

// View is the interface every tab panel implements.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
	ShortHelp() []components.HelpEntry

	// InputCapture reports whether the view is in a text-input mode
	// (commit message, branch name, ...) and wants all keys forwarded
	// instead of the app intercepting them for tab switching.
	InputCapture() bool
}
