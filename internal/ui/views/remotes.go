package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bakagit/bakagit/internal/common"
	"github.com/bakagit/bakagit/internal/config"
	"github.com/bakagit/bakagit/internal/git"
	"github.com/bakagit/bakagit/internal/i18n"
	"github.com/bakagit/bakagit/internal/ui"
	"github.com/bakagit/bakagit/internal/ui/components"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RemoteView lists remotes and runs fetch/pull/push against them.
type RemoteView struct {
	svc    git.Service
	cfg    *config.Config
	styles ui.Styles
	width  int
	height int

	remotes []git.Remote
	cursor  int
	working bool

	components.DialogHost
	removeSrc string
}

type (
	remotesLoadedMsg struct{ remotes []git.Remote }
	remoteOpDoneMsg  struct{ info string }
)

const (
	remoteDlgAdd    = "remote.add"
	remoteDlgRemove = "remote.remove"
)

// NewRemoteView creates the remotes panel.
func NewRemoteView(svc git.Service, cfg *config.Config, styles ui.Styles) *RemoteView {
	return &RemoteView{svc: svc, cfg: cfg, styles: styles}
}

func (v *RemoteView) Init() tea.Cmd { return v.refresh() }

func (v *RemoteView) SetSize(w, h int) { v.width = w; v.height = h }

func (v *RemoteView) refresh() tea.Cmd {
	return func() tea.Msg {
		remotes, err := v.svc.Remotes()
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return remotesLoadedMsg{remotes: remotes}
	}
}

func (v *RemoteView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	if v.DialogActive() {
		res, done, cmd := v.RouteDialog(msg)
		if done {
			return v.handleDialogResult(res)
		}
		return v, cmd
	}

	switch msg := msg.(type) {
	case remotesLoadedMsg:
		v.remotes = msg.remotes
		v.working = false
		if v.cursor >= len(v.remotes) && len(v.remotes) > 0 {
			v.cursor = len(v.remotes) - 1
		}
		return v, nil

	case remoteOpDoneMsg:
		v.working = false
		return v, tea.Batch(common.CmdInfo(msg.info), common.CmdRefresh)

	case common.ErrMsg:
		v.working = false
		return v, nil

	case common.RefreshMsg:
		return v, v.refresh()

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if v.cursor > 0 {
				v.cursor--
			}
		case tea.MouseButtonWheelDown:
			if v.cursor < len(v.remotes)-1 {
				v.cursor++
			}
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress {
				idx := (msg.Y - 2) / 4 // each remote renders as 3 lines + spacer
				if idx >= 0 && idx < len(v.remotes) {
					v.cursor = idx
				}
			}
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *RemoteView) handleKey(msg tea.KeyMsg) (common.View, tea.Cmd) {
	if v.working {
		return v, nil
	}
	switch msg.String() {
	case "j", "down":
		if v.cursor < len(v.remotes)-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "a":
		v.ShowInput(v.styles, i18n.T("remote.add"), "origin https://...", remoteDlgAdd)
	case "D":
		if r, ok := v.current(); ok {
			if !v.cfg.ConfirmDestructive {
				name := r.Name
				return v, v.removeRemote(name)
			}
			v.removeSrc = r.Name
			v.ShowConfirm(v.styles, i18n.T("tab.remotes"),
				fmt.Sprintf(i18n.T("confirm.delete.remote"), r.Name), remoteDlgRemove)
		}
	case "f":
		if r, ok := v.current(); ok {
			v.working = true
			return v, v.fetch(r.Name)
		}
	case "F":
		if len(v.remotes) > 0 {
			v.working = true
			return v, v.fetchAll()
		}
	case "p":
		if r, ok := v.current(); ok {
			v.working = true
			head, _ := v.svc.Head()
			return v, v.pull(r.Name, head)
		}
	case "P":
		if r, ok := v.current(); ok {
			v.working = true
			head, _ := v.svc.Head()
			return v, v.push(r.Name, head)
		}
	}
	return v, nil
}

func (v *RemoteView) handleDialogResult(res components.DialogResult) (common.View, tea.Cmd) {
	if !res.Confirmed {
		return v, nil
	}
	switch res.Tag {
	case remoteDlgAdd:
		// Input is "name url", matching the placeholder.
		fields := strings.Fields(res.Value)
		if len(fields) != 2 {
			return v, common.CmdErr(errors.New(i18n.T("remote.format")))
		}
		name, url := fields[0], fields[1]
		return v, func() tea.Msg {
			if err := v.svc.AddRemote(name, url); err != nil {
				return common.ErrMsg{Err: err}
			}
			return common.CmdRefresh()
		}
	case remoteDlgRemove:
		name := v.removeSrc
		v.removeSrc = ""
		return v, v.removeRemote(name)
	}
	return v, nil
}

func (v *RemoteView) removeRemote(name string) tea.Cmd {
	return func() tea.Msg {
		if err := v.svc.RemoveRemote(name); err != nil {
			return common.ErrMsg{Err: err}
		}
		return common.CmdRefresh()
	}
}

func (v *RemoteView) fetch(remote string) tea.Cmd {
	return func() tea.Msg {
		if err := v.svc.Fetch(remote); err != nil {
			return common.ErrMsg{Err: err}
		}
		return remoteOpDoneMsg{info: fmt.Sprintf(i18n.T("op.fetched"), remote)}
	}
}

func (v *RemoteView) fetchAll() tea.Cmd {
	remotes := v.remotes
	return func() tea.Msg {
		for _, r := range remotes {
			if err := v.svc.Fetch(r.Name); err != nil {
				return common.ErrMsg{Err: err}
			}
		}
		return remoteOpDoneMsg{info: i18n.T("op.fetchedall")}
	}
}

func (v *RemoteView) pull(remote, branch string) tea.Cmd {
	return func() tea.Msg {
		if err := v.svc.Pull(remote, branch); err != nil {
			return common.ErrMsg{Err: err}
		}
		return remoteOpDoneMsg{info: fmt.Sprintf(i18n.T("op.pulled"), branch, remote)}
	}
}

func (v *RemoteView) push(remote, branch string) tea.Cmd {
	return func() tea.Msg {
		if err := v.svc.Push(remote, branch, false); err != nil {
			return common.ErrMsg{Err: err}
		}
		return remoteOpDoneMsg{info: fmt.Sprintf(i18n.T("op.pushed"), branch, remote)}
	}
}

func (v *RemoteView) View() string {
	t := v.styles.Theme
	if v.DialogActive() {
		return ui.PlaceCentre(v.width, v.height, v.DialogView())
	}
	if len(v.remotes) == 0 {
		return ui.PlaceCentre(v.width, v.height,
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(i18n.T("empty.remotes")))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.Primary).Bold(true).
		Render(fmt.Sprintf("  %s (%d)", i18n.T("tab.remotes"), len(v.remotes))) + "\n\n")

	for i, r := range v.remotes {
		name := v.styles.RemoteName.Render(r.Name)
		fetch := v.styles.Muted.Render("fetch " + r.FetchURL)
		push := v.styles.Muted.Render("push  " + r.PushURL)
		block := name + "\n      " + fetch + "\n      " + push
		if i == v.cursor {
			b.WriteString(v.styles.ListSelected.Render("▸ "+block) + "\n\n")
		} else {
			b.WriteString("  " + block + "\n\n")
		}
	}

	if v.working {
		b.WriteString(lipgloss.NewStyle().Foreground(t.Warning).Render("  "+i18n.T("working")) + "\n")
	}
	b.WriteString(v.styles.Muted.Render(i18n.T("hint.remotes")))
	return b.String()
}

func (v *RemoteView) current() (git.Remote, bool) {
	if v.cursor < 0 || v.cursor >= len(v.remotes) {
		return git.Remote{}, false
	}
	return v.remotes[v.cursor], true
}

func (v *RemoteView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "a", Desc: i18n.T("help.addremote")},
		{Key: "D", Desc: i18n.T("help.removeremote")},
		{Key: "f / F", Desc: i18n.T("help.fetch")},
		{Key: "p", Desc: i18n.T("help.pull")},
		{Key: "P", Desc: i18n.T("help.push")},
	}
}

func (v *RemoteView) InputCapture() bool { return v.DialogActive() }
