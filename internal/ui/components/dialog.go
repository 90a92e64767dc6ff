package components

import (
	"github.com/bakagit/bakagit/internal/i18n"
	"github.com/bakagit/bakagit/internal/ui"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DialogResult is delivered through RouteDialog exactly once, when the
// user dismisses a dialog. Tag is the string the dialog was opened with,
// so a view with several prompts can tell them apart.
type DialogResult struct {
	Confirmed bool
	Value     string
	Tag       string
}

type dialogKind int

const (
	dialogConfirm dialogKind = iota
	dialogInput
)

type dialog struct {
	kind    dialogKind
	title   string
	message string
	tag     string
	input   textinput.Model
	onNo    bool
	open    bool
	styles  ui.Styles
}

// DialogHost carries the modal prompt a view may have open. Views embed
// it, open prompts with ShowConfirm or ShowInput, and pass every incoming
// message through RouteDialog before their own handling. While a dialog is
// open it has exclusive keyboard focus.
type DialogHost struct {
	d *dialog
}

// ShowConfirm opens a Yes/No prompt.
func (h *DialogHost) ShowConfirm(styles ui.Styles, title, message, tag string) {
	h.d = &dialog{
		kind:    dialogConfirm,
		title:   title,
		message: message,
		tag:     tag,
		open:    true,
		styles:  styles,
	}
}

// ShowInput opens a single-line text prompt.
func (h *DialogHost) ShowInput(styles ui.Styles, title, placeholder, tag string) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50
	h.d = &dialog{
		kind:   dialogInput,
		title:  title,
		tag:    tag,
		input:  ti,
		open:   true,
		styles: styles,
	}
}

// DialogActive reports whether a dialog holds focus. It stays true from
// ShowConfirm/ShowInput until the DialogResult has been routed, so no
// keystroke leaks to the view in between.
func (h *DialogHost) DialogActive() bool { return h.d != nil }

// RouteDialog feeds msg to the open dialog, if any. When the dialog has
// been dismissed it returns the result with done set; the host is then
// empty again. Otherwise done is false, and the returned command must be
// run when a dialog is active.
func (h *DialogHost) RouteDialog(msg tea.Msg) (res DialogResult, done bool, cmd tea.Cmd) {
	if res, ok := msg.(DialogResult); ok {
		h.d = nil
		return res, true, nil
	}
	if h.d == nil {
		return DialogResult{}, false, nil
	}
	return DialogResult{}, false, h.d.update(msg)
}

// DialogView renders the open dialog, or nothing.
func (h *DialogHost) DialogView() string {
	if h.d == nil || !h.d.open {
		return ""
	}
	return h.d.render()
}

func (d *dialog) update(msg tea.Msg) tea.Cmd {
	if !d.open {
		// Dismissed; the result is still in flight.
		return nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return d.dismiss(false)

		case "enter":
			if d.kind == dialogInput {
				return d.dismiss(true)
			}
			return d.dismiss(!d.onNo)

		case "y", "Y":
			if d.kind == dialogConfirm {
				return d.dismiss(true)
			}

		case "n", "N":
			if d.kind == dialogConfirm {
				return d.dismiss(false)
			}

		case "tab", "left", "right", "h", "l":
			if d.kind == dialogConfirm {
				d.onNo = !d.onNo
			}
		}
	}

	if d.kind == dialogInput {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return cmd
	}
	return nil
}

func (d *dialog) dismiss(confirmed bool) tea.Cmd {
	d.open = false
	res := DialogResult{Confirmed: confirmed, Tag: d.tag}
	if d.kind == dialogInput && confirmed {
		res.Value = d.input.Value()
	}
	return func() tea.Msg { return res }
}

func (d *dialog) render() string {
	t := d.styles.Theme

	title := lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(d.title)
	var content string

	if d.kind == dialogConfirm {
		message := lipgloss.NewStyle().Foreground(t.TextMuted).Render(d.message)
		yes := "  " + i18n.T("dialog.yes") + "  "
		no := "  " + i18n.T("dialog.no") + "  "
		active := lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Primary).Bold(true)
		inactive := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		if d.onNo {
			yes, no = inactive.Render(yes), active.Render(no)
		} else {
			yes, no = active.Render(yes), inactive.Render(no)
		}
		buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no)
		content = title + "\n\n" + message + "\n\n" + buttons
	} else {
		content = title + "\n\n" + d.input.View()
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Width(56).
		Render(content)
}
