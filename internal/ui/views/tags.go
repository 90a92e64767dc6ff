package views

import (
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

// TagView lists tags and handles create/delete. Creating a tag asks for
// the name first, then an optional annotation message; leaving the message
// blank creates a lightweight tag.
type TagView struct {
	svc    git.Service
	cfg    *config.Config
	styles ui.Styles
	width  int
	height int

	tags   []git.Tag
	cursor int

	components.DialogHost
	pendingTag string // name captured while asking for the message
	deleteSrc  string
}

type tagsLoadedMsg struct{ tags []git.Tag }

const (
	tagDlgName    = "tag.name"
	tagDlgMessage = "tag.message"
	tagDlgDelete  = "tag.delete"
)

// NewTagView creates the tags panel.
func NewTagView(svc git.Service, cfg *config.Config, styles ui.Styles) *TagView {
	return &TagView{svc: svc, cfg: cfg, styles: styles}
}

func (v *TagView) Init() tea.Cmd { return v.refresh() }

func (v *TagView) SetSize(w, h int) { v.width = w; v.height = h }

func (v *TagView) refresh() tea.Cmd {
	return func() tea.Msg {
		tags, err := v.svc.Tags()
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return tagsLoadedMsg{tags: tags}
	}
}

func (v *TagView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	if v.DialogActive() {
		res, done, cmd := v.RouteDialog(msg)
		if done {
			return v.handleDialogResult(res)
		}
		return v, cmd
	}

	switch msg := msg.(type) {
	case tagsLoadedMsg:
		v.tags = msg.tags
		if v.cursor >= len(v.tags) && len(v.tags) > 0 {
			v.cursor = len(v.tags) - 1
		}
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
			if v.cursor < len(v.tags)-1 {
				v.cursor++
			}
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress {
				idx := msg.Y - 2
				if idx >= 0 && idx < len(v.tags) {
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

func (v *TagView) handleKey(msg tea.KeyMsg) (common.View, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if v.cursor < len(v.tags)-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g", "home":
		v.cursor = 0
	case "G", "end":
		if len(v.tags) > 0 {
			v.cursor = len(v.tags) - 1
		}
	case "n":
		v.ShowInput(v.styles, i18n.T("tag.new"), "v1.0.0", tagDlgName)
	case "D":
		if tg, ok := v.current(); ok {
			if !v.cfg.ConfirmDestructive {
				name := tg.Name
				return v, v.runOp(func() error { return v.svc.DeleteTag(name) }, "")
			}
			v.deleteSrc = tg.Name
			v.ShowConfirm(v.styles, i18n.T("tab.tags"),
				fmt.Sprintf(i18n.T("confirm.delete.tag"), tg.Name), tagDlgDelete)
		}
	}
	return v, nil
}

func (v *TagView) handleDialogResult(res components.DialogResult) (common.View, tea.Cmd) {
	if !res.Confirmed {
		v.pendingTag = ""
		return v, nil
	}
	switch res.Tag {
	case tagDlgName:
		name := strings.TrimSpace(res.Value)
		if name == "" {
			return v, nil
		}
		if err := git.ValidateRefName(name); err != nil {
			return v, common.CmdErr(err)
		}
		v.pendingTag = name
		v.ShowInput(v.styles, fmt.Sprintf(i18n.T("tag.annotation"), name), "", tagDlgMessage)
		return v, nil
	case tagDlgMessage:
		name := v.pendingTag
		v.pendingTag = ""
		if name == "" {
			return v, nil
		}
		message := strings.TrimSpace(res.Value)
		return v, v.runOp(func() error { return v.svc.CreateTag(name, message) }, fmt.Sprintf(i18n.T("op.tag.created"), name))
	case tagDlgDelete:
		name := v.deleteSrc
		v.deleteSrc = ""
		return v, v.runOp(func() error { return v.svc.DeleteTag(name) }, "")
	}
	return v, nil
}

func (v *TagView) runOp(op func() error, info string) tea.Cmd {
	return func() tea.Msg {
		if err := op(); err != nil {
			return common.ErrMsg{Err: err}
		}
		if info != "" {
			return tea.BatchMsg{common.CmdInfo(info), common.CmdRefresh}
		}
		return common.CmdRefresh()
	}
}

func (v *TagView) View() string {
	t := v.styles.Theme
	if v.DialogActive() {
		return ui.PlaceCentre(v.width, v.height, v.DialogView())
	}
	if len(v.tags) == 0 {
		return ui.PlaceCentre(v.width, v.height,
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(i18n.T("empty.tags")))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.Primary).Bold(true).
		Render(fmt.Sprintf("  %s (%d)", i18n.T("tab.tags"), len(v.tags))) + "\n\n")

	for i, tg := range v.tags {
		line := v.renderTagLine(tg)
		if i == v.cursor {
			b.WriteString(v.styles.ListSelected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n" + v.styles.Muted.Render(i18n.T("hint.tags")))
	return b.String()
}

func (v *TagView) renderTagLine(tg git.Tag) string {
	parts := []string{v.styles.TagName.Render(tg.Name), v.styles.CommitHash.Render(tg.Hash)}
	if tg.Annotated {
		parts = append(parts, v.styles.Muted.Render(i18n.T("tag.annotated")))
		if tg.Message != "" {
			parts = append(parts, v.styles.Muted.Render(ui.Truncate(tg.Message, 48)))
		}
	}
	return strings.Join(parts, "  ")
}

func (v *TagView) current() (git.Tag, bool) {
	if v.cursor < 0 || v.cursor >= len(v.tags) {
		return git.Tag{}, false
	}
	return v.tags[v.cursor], true
}

func (v *TagView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "n", Desc: i18n.T("help.newtag")},
		{Key: "D", Desc: i18n.T("help.deletetag")},
	}
}

func (v *TagView) InputCapture() bool { return v.DialogActive() }
