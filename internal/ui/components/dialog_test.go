package components

import (
	"testing"

	"github.com/bakagit/bakagit/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// dismiss runs the command the dialog produced and routes the resulting
// message back through the host, as bubbletea would.
func dismiss(t *testing.T, h *DialogHost, cmd tea.Cmd) DialogResult {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, DialogResult{}, msg)
	res, done, _ := h.RouteDialog(msg)
	require.True(t, done)
	return res
}

func TestConfirmDialogEnter(t *testing.T) {
	styles := ui.NewStyles(ui.ThemeByName("dark"))
	var h DialogHost
	h.ShowConfirm(styles, "Delete branch", "Delete feature?", "branch.delete")
	require.True(t, h.DialogActive())

	_, done, cmd := h.RouteDialog(key("enter"))
	assert.False(t, done)

	res := dismiss(t, &h, cmd)
	assert.True(t, res.Confirmed)
	assert.Equal(t, "branch.delete", res.Tag)
	assert.False(t, h.DialogActive())
}

func TestConfirmDialogToggleAndDecline(t *testing.T) {
	styles := ui.NewStyles(ui.ThemeByName("dark"))
	var h DialogHost
	h.ShowConfirm(styles, "Discard", "Discard changes?", "discard")

	_, _, cmd := h.RouteDialog(key("tab"))
	assert.Nil(t, cmd)
	_, _, cmd = h.RouteDialog(key("enter"))

	res := dismiss(t, &h, cmd)
	assert.False(t, res.Confirmed)
}

func TestConfirmDialogShortcutKeys(t *testing.T) {
	styles := ui.NewStyles(ui.ThemeByName("dark"))

	var h DialogHost
	h.ShowConfirm(styles, "Merge", "Merge feature?", "merge")
	_, _, cmd := h.RouteDialog(key("y"))
	assert.True(t, dismiss(t, &h, cmd).Confirmed)

	h.ShowConfirm(styles, "Merge", "Merge feature?", "merge")
	_, _, cmd = h.RouteDialog(key("n"))
	assert.False(t, dismiss(t, &h, cmd).Confirmed)
}

func TestConfirmDialogEscape(t *testing.T) {
	styles := ui.NewStyles(ui.ThemeByName("dark"))
	var h DialogHost
	h.ShowConfirm(styles, "Delete tag", "Delete v1.0.0?", "tag.delete")

	_, _, cmd := h.RouteDialog(key("esc"))
	res := dismiss(t, &h, cmd)
	assert.False(t, res.Confirmed)
	assert.Equal(t, "tag.delete", res.Tag)
}

func TestInputDialogCollectsValue(t *testing.T) {
	styles := ui.NewStyles(ui.ThemeByName("dark"))
	var h DialogHost
	h.ShowInput(styles, "New branch", "name", "branch.create")

	for _, r := range "my-branch" {
		h.RouteDialog(key(string(r)))
	}
	_, done, cmd := h.RouteDialog(key("enter"))
	assert.False(t, done)

	res := dismiss(t, &h, cmd)
	assert.True(t, res.Confirmed)
	assert.Equal(t, "my-branch", res.Value)
	assert.Equal(t, "branch.create", res.Tag)
}

func TestInputDialogEscapeDropsValue(t *testing.T) {
	styles := ui.NewStyles(ui.ThemeByName("dark"))
	var h DialogHost
	h.ShowInput(styles, "New tag", "v1.0.0", "tag.create")

	h.RouteDialog(key("v"))
	_, _, cmd := h.RouteDialog(key("esc"))

	res := dismiss(t, &h, cmd)
	assert.False(t, res.Confirmed)
	assert.Empty(t, res.Value)
}

func TestRouteDialogIdleIsNoOp(t *testing.T) {
	var h DialogHost
	_, done, cmd := h.RouteDialog(key("enter"))
	assert.False(t, done)
	assert.Nil(t, cmd)
	assert.False(t, h.DialogActive())
	assert.Empty(t, h.DialogView())
}
