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
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HistoryView shows the commit log with a detail pane for the selected
// commit. The number of commits loaded is bounded by max_log_entries.
type HistoryView struct {
	svc    git.Service
	cfg    *config.Config
	styles ui.Styles
	width  int
	height int

	commits []git.Commit
	cursor  int
	loaded  bool

	showDetail bool
	detailVP   viewport.Model
}

type historyLoadedMsg struct{ commits []git.Commit }

// NewHistoryView creates the history panel.
func NewHistoryView(svc git.Service, cfg *config.Config, styles ui.Styles) *HistoryView {
	return &HistoryView{svc: svc, cfg: cfg, styles: styles}
}

func (v *HistoryView) Init() tea.Cmd { return v.refresh() }

func (v *HistoryView) SetSize(w, h int) {
	v.width = w
	v.height = h
	v.detailVP.Width = w/2 - 2
	v.detailVP.Height = h - 2
}

func (v *HistoryView) refresh() tea.Cmd {
	limit := v.cfg.MaxLogEntries
	return func() tea.Msg {
		commits, err := v.svc.Log(limit)
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return historyLoadedMsg{commits: commits}
	}
}

func (v *HistoryView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		v.commits = msg.commits
		v.loaded = true
		if v.cursor >= len(v.commits) && len(v.commits) > 0 {
			v.cursor = len(v.commits) - 1
		}
		if v.showDetail {
			v.updateDetail()
		}
		return v, nil

	case common.RefreshMsg:
		return v, v.refresh()

	case tea.MouseMsg:
		return v.handleMouse(msg)

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *HistoryView) handleMouse(msg tea.MouseMsg) (common.View, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if v.showDetail {
			v.detailVP.ScrollUp(3)
		} else if v.cursor > 0 {
			v.cursor--
		}
	case tea.MouseButtonWheelDown:
		if v.showDetail {
			v.detailVP.ScrollDown(3)
		} else if v.cursor < len(v.commits)-1 {
			v.cursor++
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			break
		}
		idx := msg.Y - 2 + v.listStart() // title + blank line
		if idx >= 0 && idx < len(v.commits) {
			v.cursor = idx
			if v.showDetail {
				v.updateDetail()
			}
		}
	}
	return v, nil
}

func (v *HistoryView) handleKey(msg tea.KeyMsg) (common.View, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if v.cursor < len(v.commits)-1 {
			v.cursor++
			if v.showDetail {
				v.updateDetail()
			}
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
			if v.showDetail {
				v.updateDetail()
			}
		}
	case "g", "home":
		v.cursor = 0
		if v.showDetail {
			v.updateDetail()
		}
	case "G", "end":
		if len(v.commits) > 0 {
			v.cursor = len(v.commits) - 1
			if v.showDetail {
				v.updateDetail()
			}
		}
	case "enter", "d":
		if len(v.commits) > 0 {
			v.showDetail = true
			v.detailVP = viewport.New(v.width/2-2, v.height-2)
			v.updateDetail()
		}
	case "y":
		if v.cursor < len(v.commits) {
			return v, common.CmdInfo(fmt.Sprintf(i18n.T("op.copied"), v.commits[v.cursor].ShortHash))
		}
	case "esc":
		v.showDetail = false
	case "ctrl+d", "pgdown":
		if v.showDetail {
			v.detailVP.HalfPageDown()
		}
	case "ctrl+u", "pgup":
		if v.showDetail {
			v.detailVP.HalfPageUp()
		}
	}
	return v, nil
}

func (v *HistoryView) updateDetail() {
	if v.cursor < 0 || v.cursor >= len(v.commits) {
		return
	}
	v.detailVP.SetContent(v.renderDetail(v.commits[v.cursor]))
	v.detailVP.GotoTop()
}

func (v *HistoryView) View() string {
	t := v.styles.Theme
	if v.loaded && len(v.commits) == 0 {
		return ui.PlaceCentre(v.width, v.height,
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(i18n.T("empty.commits")))
	}

	list := v.renderList()
	if !v.showDetail {
		return list
	}

	detail := lipgloss.NewStyle().
		Width(v.width / 2).Height(v.height - 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderLeft(true).BorderTop(false).BorderRight(false).BorderBottom(false).
		BorderForeground(t.Border).
		Render(v.detailVP.View())

	listPane := lipgloss.NewStyle().Width(v.width - v.width/2).MaxWidth(v.width - v.width/2).Render(list)
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detail)
}

func (v *HistoryView) renderList() string {
	t := v.styles.Theme
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(t.Primary).Bold(true).
		Render(fmt.Sprintf("  %s (%d)", i18n.T("history.commits"), len(v.commits))) + "\n\n")

	// Window the list around the cursor.
	start := v.listStart()
	end := start + v.listVisible()
	if end > len(v.commits) {
		end = len(v.commits)
	}

	subjWidth := v.width - 40
	if v.showDetail {
		subjWidth = v.width/2 - 30
	}
	if subjWidth < 16 {
		subjWidth = 16
	}

	for i := start; i < end; i++ {
		b.WriteString(v.renderCommitLine(v.commits[i], i == v.cursor, subjWidth) + "\n")
	}

	b.WriteString("\n" + v.styles.Muted.Render(i18n.T("hint.history")))
	return b.String()
}

// listVisible is how many commit rows fit between the title and the hint.
func (v *HistoryView) listVisible() int {
	visible := v.height - 4
	if visible < 1 {
		visible = 1
	}
	return visible
}

// listStart is the first visible row index, keeping the cursor in view.
func (v *HistoryView) listStart() int {
	if visible := v.listVisible(); v.cursor >= visible {
		return v.cursor - visible + 1
	}
	return 0
}

func (v *HistoryView) renderCommitLine(c git.Commit, selected bool, subjWidth int) string {
	t := v.styles.Theme
	hash := v.styles.CommitHash.Render(c.ShortHash)
	subj := ui.Truncate(c.Subject, subjWidth)
	if c.IsMerge() {
		subj = "⑃ " + subj
	}
	author := v.styles.Author.Render(c.Author)
	date := v.styles.Date.Render(c.RelDate)

	line := fmt.Sprintf(" %s %s  %s %s", hash, ui.PadRight(subj, subjWidth), author, date)
	if selected {
		return lipgloss.NewStyle().Background(t.SurfaceHover).Bold(true).Render("▸" + line)
	}
	return " " + line
}

func (v *HistoryView) renderDetail(c git.Commit) string {
	t := v.styles.Theme
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(i18n.T("commit.title")) + "\n\n")
	b.WriteString(v.styles.Muted.Render(ui.PadRight(i18n.T("history.hash"), 9)) + v.styles.CommitHash.Render(c.Hash) + "\n")
	b.WriteString(v.styles.Muted.Render(ui.PadRight(i18n.T("history.author"), 9)) + v.styles.Author.Render(c.Author+" <"+c.AuthorEmail+">") + "\n")
	b.WriteString(v.styles.Muted.Render(ui.PadRight(i18n.T("history.date"), 9)) + v.styles.Date.Render(c.Date.Format("2006-01-02 15:04:05")) + "\n")
	if len(c.Parents) > 0 {
		b.WriteString(v.styles.Muted.Render(ui.PadRight(i18n.T("history.parents"), 9)) + v.styles.CommitHash.Render(strings.Join(c.Parents, " ")) + "\n")
	}

	b.WriteString("\n" + v.styles.Title.Render(c.Subject) + "\n")
	if c.Body != "" {
		b.WriteString("\n" + c.Body + "\n")
	}
	return b.String()
}

func (v *HistoryView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "j/k", Desc: i18n.T("help.navcommits")},
		{Key: "enter / d", Desc: i18n.T("help.detail")},
		{Key: "y", Desc: i18n.T("help.copyhash")},
		{Key: "esc", Desc: i18n.T("help.closedetail")},
	}
}

func (v *HistoryView) InputCapture() bool { return false }
