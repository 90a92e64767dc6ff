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

// BranchView lists branches and handles create/switch/rename/delete/merge.
// All name input goes through a modal dialog; names are validated locally
// before git is invoked.
type BranchView struct {
	svc    git.Service
	cfg    *config.Config
	styles ui.Styles
	width  int
	height int

	branches []git.Branch
	cursor   int

	components.DialogHost
	renameSrc string
	deleteSrc string
	mergeSrc  string
}

type branchesLoadedMsg struct{ branches []git.Branch }

const (
	branchDlgCreate = "branch.create"
	branchDlgRename = "branch.rename"
	branchDlgDelete = "branch.delete"
	branchDlgMerge  = "branch.merge"
)

// NewBranchView creates the branches panel.
func NewBranchView(svc git.Service, cfg *config.Config, styles ui.Styles) *BranchView {
	return &BranchView{svc: svc, cfg: cfg, styles: styles}
}

func (v *BranchView) Init() tea.Cmd { return v.refresh() }

func (v *BranchView) SetSize(w, h int) { v.width = w; v.height = h }

func (v *BranchView) refresh() tea.Cmd {
	return func() tea.Msg {
		branches, err := v.svc.Branches()
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return branchesLoadedMsg{branches: branches}
	}
}

func (v *BranchView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	if v.DialogActive() {
		res, done, cmd := v.RouteDialog(msg)
		if done {
			return v.handleDialogResult(res)
		}
		return v, cmd
	}

	switch msg := msg.(type) {
	case branchesLoadedMsg:
		v.branches = msg.branches
		if v.cursor >= len(v.branches) && len(v.branches) > 0 {
			v.cursor = len(v.branches) - 1
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
			if v.cursor < len(v.branches)-1 {
				v.cursor++
			}
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress {
				idx := msg.Y - 2
				if idx >= 0 && idx < len(v.branches) {
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

func (v *BranchView) handleKey(msg tea.KeyMsg) (common.View, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if v.cursor < len(v.branches)-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g", "home":
		v.cursor = 0
	case "G", "end":
		if len(v.branches) > 0 {
			v.cursor = len(v.branches) - 1
		}
	case "enter":
		if b, ok := v.current(); ok && !b.IsCurrent && !b.IsRemote {
			name := b.Name
			return v, v.runOp(func() error { return v.svc.SwitchBranch(name) }, "")
		}
	case "n":
		v.ShowInput(v.styles, i18n.T("branch.new"), "feature/...", branchDlgCreate)
	case "R":
		if b, ok := v.current(); ok && !b.IsRemote {
			v.renameSrc = b.Name
			v.ShowInput(v.styles, fmt.Sprintf(i18n.T("branch.rename"), b.Name), b.Name, branchDlgRename)
		}
	case "D":
		if b, ok := v.current(); ok && !b.IsCurrent && !b.IsRemote {
			if !v.cfg.ConfirmDestructive {
				name := b.Name
				return v, v.runOp(func() error { return v.svc.DeleteBranch(name, false) }, "")
			}
			v.deleteSrc = b.Name
			v.ShowConfirm(v.styles, i18n.T("tab.branches"),
				fmt.Sprintf(i18n.T("confirm.delete.branch"), b.Name), branchDlgDelete)
		}
	case "m":
		if b, ok := v.current(); ok && !b.IsCurrent {
			v.mergeSrc = b.Name
			v.ShowConfirm(v.styles, i18n.T("tab.branches"),
				fmt.Sprintf(i18n.T("confirm.merge"), b.Name), branchDlgMerge)
		}
	}
	return v, nil
}

func (v *BranchView) handleDialogResult(res components.DialogResult) (common.View, tea.Cmd) {
	if !res.Confirmed {
		return v, nil
	}
	switch res.Tag {
	case branchDlgCreate:
		name := strings.TrimSpace(res.Value)
		if name == "" {
			return v, nil
		}
		if err := git.ValidateRefName(name); err != nil {
			return v, common.CmdErr(err)
		}
		return v, v.runOp(func() error { return v.svc.CreateBranch(name) }, fmt.Sprintf(i18n.T("op.branch.created"), name))
	case branchDlgRename:
		newName := strings.TrimSpace(res.Value)
		old := v.renameSrc
		v.renameSrc = ""
		if newName == "" || newName == old {
			return v, nil
		}
		if err := git.ValidateRefName(newName); err != nil {
			return v, common.CmdErr(err)
		}
		return v, v.runOp(func() error { return v.svc.RenameBranch(old, newName) }, "")
	case branchDlgDelete:
		name := v.deleteSrc
		v.deleteSrc = ""
		return v, v.runOp(func() error { return v.svc.DeleteBranch(name, false) }, "")
	case branchDlgMerge:
		name := v.mergeSrc
		v.mergeSrc = ""
		return v, v.runOp(func() error { return v.svc.MergeBranch(name) }, fmt.Sprintf(i18n.T("op.merged"), name))
	}
	return v, nil
}

func (v *BranchView) runOp(op func() error, info string) tea.Cmd {
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

func (v *BranchView) View() string {
	t := v.styles.Theme
	if v.DialogActive() {
		return ui.PlaceCentre(v.width, v.height, v.DialogView())
	}
	if len(v.branches) == 0 {
		return ui.PlaceCentre(v.width, v.height,
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(i18n.T("empty.branches")))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.Primary).Bold(true).
		Render(fmt.Sprintf("  %s (%d)", i18n.T("tab.branches"), len(v.branches))) + "\n\n")

	for i, br := range v.branches {
		line := v.renderBranchLine(br)
		if i == v.cursor {
			b.WriteString(v.styles.ListSelected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n" + v.styles.Muted.Render(i18n.T("hint.branches")))
	return b.String()
}

func (v *BranchView) renderBranchLine(br git.Branch) string {
	t := v.styles.Theme
	var parts []string

	switch {
	case br.IsCurrent:
		parts = append(parts, lipgloss.NewStyle().Foreground(t.Success).Bold(true).Render("* "+br.Name))
	case br.IsRemote:
		parts = append(parts, v.styles.RemoteName.Render(br.Name))
	default:
		parts = append(parts, v.styles.BranchName.Render(br.Name))
	}

	parts = append(parts, v.styles.CommitHash.Render(br.Hash))

	if br.Upstream != "" {
		track := br.Upstream
		if br.Ahead > 0 || br.Behind > 0 {
			track += fmt.Sprintf(" ↑%d ↓%d", br.Ahead, br.Behind)
		}
		parts = append(parts, v.styles.Muted.Render(track))
	}
	if br.Subject != "" {
		parts = append(parts, v.styles.Muted.Render(ui.Truncate(br.Subject, 40)))
	}
	return strings.Join(parts, "  ")
}

func (v *BranchView) current() (git.Branch, bool) {
	if v.cursor < 0 || v.cursor >= len(v.branches) {
		return git.Branch{}, false
	}
	return v.branches[v.cursor], true
}

func (v *BranchView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "enter", Desc: i18n.T("help.switch")},
		{Key: "n", Desc: i18n.T("help.newbranch")},
		{Key: "R", Desc: i18n.T("help.renamebranch")},
		{Key: "D", Desc: i18n.T("help.deletebranch")},
		{Key: "m", Desc: i18n.T("help.merge")},
	}
}

func (v *BranchView) InputCapture() bool { return v.DialogActive() }
