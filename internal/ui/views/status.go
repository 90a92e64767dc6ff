package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bakagit/bakagit/internal/common"
	"github.com/bakagit/bakagit/internal/config"
	"github.com/bakagit/bakagit/internal/git"
	"github.com/bakagit/bakagit/internal/i18n"
	"github.com/bakagit/bakagit/internal/ui"
	"github.com/bakagit/bakagit/internal/ui/components"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type statusSection int

const (
	sectionStaged statusSection = iota
	sectionUnstaged
	sectionUntracked
	sectionConflicts
)

type statusPane int

const (
	paneFiles statusPane = iota
	paneDiff
)

// StatusView is the working-tree panel: a file list on the left, a diff
// preview on the right, and an inline commit editor.
type StatusView struct {
	svc    git.Service
	cfg    *config.Config
	styles ui.Styles
	width  int
	height int

	status *git.StatusResult
	items  []statusItem
	cursor int
	focus  statusPane

	commitTA   textarea.Model
	commitMode bool
	commitErr  string

	diffVP     viewport.Model
	diffText   string
	diffPath   string
	diffStaged bool

	components.DialogHost
	discardPath string
}

type statusItem struct {
	file    git.FileStatus
	section statusSection
}

type (
	statusLoadedMsg struct{ status *git.StatusResult }
	diffLoadedMsg   struct{ diff string }
)

// NewStatusView creates the status panel.
func NewStatusView(svc git.Service, cfg *config.Config, styles ui.Styles) *StatusView {
	ta := textarea.New()
	ta.Placeholder = i18n.T("commit.prompt")
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(4)

	return &StatusView{
		svc:      svc,
		cfg:      cfg,
		styles:   styles,
		status:   &git.StatusResult{},
		commitTA: ta,
		diffVP:   viewport.New(0, 0),
	}
}

func (v *StatusView) Init() tea.Cmd { return v.refresh() }

func (v *StatusView) SetSize(w, h int) {
	v.width = w
	v.height = h
	v.commitTA.SetWidth(w - 6)
	v.diffVP.Width = v.diffWidth() - 2
	v.diffVP.Height = h - 4
}

func (v *StatusView) filesWidth() int {
	if v.width < 70 {
		return v.width
	}
	return v.width * 2 / 5
}

func (v *StatusView) diffWidth() int {
	if v.width < 70 {
		return 0
	}
	return v.width - v.filesWidth()
}

func (v *StatusView) refresh() tea.Cmd {
	return func() tea.Msg {
		status, err := v.svc.Status()
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return statusLoadedMsg{status: status}
	}
}

func (v *StatusView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	if v.DialogActive() {
		res, done, cmd := v.RouteDialog(msg)
		if done {
			return v.handleDialogResult(res)
		}
		return v, cmd
	}

	switch msg := msg.(type) {
	case statusLoadedMsg:
		v.status = msg.status
		v.rebuildItems()
		if v.cursor >= len(v.items) && len(v.items) > 0 {
			v.cursor = len(v.items) - 1
		}
		return v, v.loadDiff(false)

	case diffLoadedMsg:
		v.diffText = msg.diff
		v.diffVP.SetContent(renderDiffColored(v.styles, msg.diff))
		v.diffVP.GotoTop()
		return v, nil

	case common.RefreshMsg:
		return v, v.refresh()

	case tea.MouseMsg:
		return v.handleMouse(msg)

	case tea.KeyMsg:
		if v.commitMode {
			return v.updateCommit(msg)
		}
		return v.updateNormal(msg)
	}

	if v.commitMode {
		var cmd tea.Cmd
		v.commitTA, cmd = v.commitTA.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *StatusView) handleDialogResult(res components.DialogResult) (common.View, tea.Cmd) {
	if res.Tag == "discard" && res.Confirmed && v.discardPath != "" {
		path := v.discardPath
		v.discardPath = ""
		return v, v.runOp(func() error { return v.svc.Discard(path) }, "")
	}
	v.discardPath = ""
	return v, nil
}

func (v *StatusView) handleMouse(msg tea.MouseMsg) (common.View, tea.Cmd) {
	fw := v.filesWidth()
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if msg.X < fw {
			if v.cursor > 0 {
				v.cursor--
				return v, v.loadDiff(false)
			}
		} else {
			v.diffVP.ScrollUp(3)
		}
	case tea.MouseButtonWheelDown:
		if msg.X < fw {
			if v.cursor < len(v.items)-1 {
				v.cursor++
				return v, v.loadDiff(false)
			}
		} else {
			v.diffVP.ScrollDown(3)
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || v.commitMode {
			break
		}
		if msg.X < fw {
			v.focus = paneFiles
			if idx := v.itemAtRow(msg.Y); idx >= 0 {
				v.cursor = idx
				return v, v.loadDiff(true)
			}
		} else {
			v.focus = paneDiff
		}
	}
	return v, nil
}

func (v *StatusView) updateNormal(msg tea.KeyMsg) (common.View, tea.Cmd) {
	if v.focus == paneDiff {
		switch msg.String() {
		case "j", "down":
			v.diffVP.ScrollDown(1)
			return v, nil
		case "k", "up":
			v.diffVP.ScrollUp(1)
			return v, nil
		case "ctrl+d", "pgdown":
			v.diffVP.HalfPageDown()
			return v, nil
		case "ctrl+u", "pgup":
			v.diffVP.HalfPageUp()
			return v, nil
		case "g", "home":
			v.diffVP.GotoTop()
			return v, nil
		case "G", "end":
			v.diffVP.GotoBottom()
			return v, nil
		case "d", "esc":
			v.focus = paneFiles
			return v, nil
		}
	}

	switch msg.String() {
	case "j", "down":
		if v.cursor < len(v.items)-1 {
			v.cursor++
			return v, v.loadDiff(false)
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
			return v, v.loadDiff(false)
		}
	case "g", "home":
		v.cursor = 0
		return v, v.loadDiff(false)
	case "G", "end":
		if len(v.items) > 0 {
			v.cursor = len(v.items) - 1
			return v, v.loadDiff(false)
		}
	case "d":
		if v.diffWidth() > 0 {
			v.focus = paneDiff
		}
	case "s":
		if it, ok := v.current(); ok {
			path := it.file.Path
			return v, v.runOp(func() error { return v.svc.Stage(path) }, "")
		}
	case "S":
		return v, v.runOp(v.svc.StageAll, "")
	case "u":
		if it, ok := v.current(); ok {
			path := it.file.Path
			return v, v.runOp(func() error { return v.svc.Unstage(path) }, "")
		}
	case "U":
		return v, v.runOp(v.svc.UnstageAll, "")
	case "x":
		if it, ok := v.current(); ok {
			if !v.cfg.ConfirmDestructive {
				path := it.file.Path
				return v, v.runOp(func() error { return v.svc.Discard(path) }, "")
			}
			v.discardPath = it.file.Path
			v.ShowConfirm(v.styles, i18n.T("tab.status"),
				fmt.Sprintf(i18n.T("confirm.discard"), it.file.Path), "discard")
		}
	case "c":
		v.commitMode = true
		v.commitErr = ""
		v.commitTA.Reset()
		return v, v.commitTA.Focus()
	}
	return v, nil
}

func (v *StatusView) updateCommit(msg tea.KeyMsg) (common.View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.commitMode = false
		v.commitTA.Blur()
		return v, nil
	case "ctrl+s":
		message := strings.TrimSpace(v.commitTA.Value())
		if message == "" {
			// Rejected locally; git is never invoked for a blank message.
			v.commitErr = i18n.T("commit.empty")
			return v, nil
		}
		v.commitMode = false
		v.commitTA.Blur()
		return v, v.runOp(func() error { return v.svc.Commit(message) }, i18n.T("op.committed"))
	}
	var cmd tea.Cmd
	v.commitTA, cmd = v.commitTA.Update(msg)
	return v, cmd
}

// runOp executes a git operation in the background and triggers a refresh.
func (v *StatusView) runOp(op func() error, info string) tea.Cmd {
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

// loadDiff fetches the diff for the selected file. When force is false the
// fetch is skipped if the preview already shows this file.
func (v *StatusView) loadDiff(force bool) tea.Cmd {
	it, ok := v.current()
	if !ok {
		return nil
	}
	staged := it.section == sectionStaged
	if !force && it.file.Path == v.diffPath && staged == v.diffStaged {
		return nil
	}
	v.diffPath = it.file.Path
	v.diffStaged = staged
	path := it.file.Path
	return func() tea.Msg {
		diff, err := v.svc.Diff(staged, path)
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		if diff == "" {
			diff = i18n.T("status.nodiff")
		}
		return diffLoadedMsg{diff: diff}
	}
}

// ── Rendering ───────────────────────────────────────────────────────────────

func (v *StatusView) View() string {
	if v.DialogActive() {
		return ui.PlaceCentre(v.width, v.height, v.DialogView())
	}
	if v.commitMode {
		return v.viewCommit()
	}

	hint := v.renderHint()
	contentH := v.height - lipgloss.Height(hint)

	files := v.renderFiles(contentH)
	var body string
	if dw := v.diffWidth(); dw > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, files, v.renderDiff(contentH, dw))
	} else {
		body = files
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, hint)
}

func (v *StatusView) sections() []struct {
	titleKey string
	files    []git.FileStatus
	sec      statusSection
	color    lipgloss.Color
} {
	t := v.styles.Theme
	return []struct {
		titleKey string
		files    []git.FileStatus
		sec      statusSection
		color    lipgloss.Color
	}{
		{"status.conflicts", v.status.Conflicts, sectionConflicts, t.Conflict},
		{"status.staged", v.status.Staged, sectionStaged, t.Added},
		{"status.changes", v.status.Unstaged, sectionUnstaged, t.Modified},
		{"status.untracked", v.status.Untracked, sectionUntracked, t.Untracked},
	}
}

func (v *StatusView) renderFiles(height int) string {
	t := v.styles.Theme
	fw := v.filesWidth()

	if v.status.IsClean() {
		return lipgloss.NewStyle().
			Foreground(t.Success).
			Width(fw).Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("✓ " + i18n.T("status.clean"))
	}

	maxPath := fw - 8
	if maxPath < 10 {
		maxPath = 10
	}

	var b strings.Builder
	idx := 0
	for _, sec := range v.sections() {
		if len(sec.files) == 0 {
			continue
		}
		header := lipgloss.NewStyle().Foreground(sec.color).Bold(true).
			Render(fmt.Sprintf(" %s (%d)", i18n.T(sec.titleKey), len(sec.files)))
		b.WriteString(header + "\n")
		for _, f := range sec.files {
			b.WriteString(v.renderFileLine(f, idx == v.cursor, maxPath) + "\n")
			idx++
		}
	}

	return lipgloss.NewStyle().Width(fw).Height(height).MaxHeight(height).Render(b.String())
}

func (v *StatusView) renderFileLine(f git.FileStatus, selected bool, maxPath int) string {
	t := v.styles.Theme

	code := f.Worktree
	if f.IsStaged {
		code = f.Staging
	}
	marker := lipgloss.NewStyle().Foreground(v.codeColor(code)).Bold(true).Render(code.String())

	path := f.Path
	if f.OrigPath != "" {
		path = f.Path + " ← " + filepath.Base(f.OrigPath)
	}
	path = ui.Truncate(path, maxPath)

	if selected {
		cursor := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render("▸")
		return lipgloss.NewStyle().Background(t.SurfaceHover).
			Render(fmt.Sprintf(" %s %s %s", cursor, marker, path))
	}
	return fmt.Sprintf("   %s %s", marker, path)
}

func (v *StatusView) codeColor(code git.StatusCode) lipgloss.Color {
	t := v.styles.Theme
	switch code {
	case git.StatusAdded:
		return t.Added
	case git.StatusDeleted:
		return t.Deleted
	case git.StatusUnmerged:
		return t.Conflict
	case git.StatusUntracked:
		return t.Untracked
	default:
		return t.Modified
	}
}

func (v *StatusView) renderDiff(height, width int) string {
	t := v.styles.Theme

	title := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(i18n.T("diff.title"))
	if v.diffPath != "" {
		title += " " + v.styles.Muted.Render(filepath.Base(v.diffPath))
	}
	if v.focus == paneDiff {
		title += " " + lipgloss.NewStyle().Foreground(t.Primary).Render("●")
	}

	innerW := width - 2
	innerH := height - 2
	if innerH < 2 {
		innerH = 2
	}
	v.diffVP.Width = innerW
	v.diffVP.Height = innerH

	var content string
	if v.diffText == "" {
		content = lipgloss.NewStyle().Foreground(t.TextSubtle).
			Width(innerW).Height(innerH).
			Align(lipgloss.Center, lipgloss.Center).
			Render(i18n.T("status.select"))
	} else {
		content = v.diffVP.View()
	}

	pane := lipgloss.JoinVertical(lipgloss.Left, " "+title, content)
	return lipgloss.NewStyle().
		Width(width).Height(height).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderLeft(true).BorderTop(false).BorderRight(false).BorderBottom(false).
		BorderForeground(t.Border).
		Render(pane)
}

func (v *StatusView) renderHint() string {
	entries := []string{
		v.styles.KeyBind.Render("s/S") + v.styles.KeyDesc.Render(" "+i18n.T("hint.stage")),
		v.styles.KeyBind.Render("u/U") + v.styles.KeyDesc.Render(" "+i18n.T("hint.unstage")),
		v.styles.KeyBind.Render("x") + v.styles.KeyDesc.Render(" "+i18n.T("hint.discard")),
		v.styles.KeyBind.Render("c") + v.styles.KeyDesc.Render(" "+i18n.T("hint.commit")),
	}
	if v.diffWidth() > 0 {
		entries = append(entries, v.styles.KeyBind.Render("d")+v.styles.KeyDesc.Render(" "+i18n.T("hint.diff")))
	}
	pos := ""
	if len(v.items) > 0 {
		pos = v.styles.Muted.Render(fmt.Sprintf("%d/%d", v.cursor+1, len(v.items)))
	}
	line := " " + strings.Join(entries, "  ")
	gap := v.width - lipgloss.Width(line) - lipgloss.Width(pos) - 1
	if gap < 1 {
		gap = 1
	}
	return line + strings.Repeat(" ", gap) + pos
}

func (v *StatusView) viewCommit() string {
	t := v.styles.Theme
	title := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(" " + i18n.T("commit.title"))
	info := v.styles.Muted.Render(" " + fmt.Sprintf(i18n.T("status.stagedcount"), len(v.status.Staged)))

	parts := []string{title, "", info, "", " " + v.commitTA.View()}
	if v.commitErr != "" {
		parts = append(parts, "", " "+lipgloss.NewStyle().Foreground(t.Error).Render(v.commitErr))
	}
	hint := " " + v.styles.KeyBind.Render("ctrl+s") + v.styles.KeyDesc.Render(" "+i18n.T("hint.commit")) +
		"  " + v.styles.KeyBind.Render("esc") + v.styles.KeyDesc.Render(" "+i18n.T("hint.cancel"))
	parts = append(parts, "", hint)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ── Data helpers ────────────────────────────────────────────────────────────

func (v *StatusView) rebuildItems() {
	v.items = v.items[:0]
	for _, sec := range v.sections() {
		for _, f := range sec.files {
			v.items = append(v.items, statusItem{file: f, section: sec.sec})
		}
	}
}

func (v *StatusView) current() (statusItem, bool) {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return statusItem{}, false
	}
	return v.items[v.cursor], true
}

// itemAtRow maps a content-area row to an item index, skipping headers.
func (v *StatusView) itemAtRow(row int) int {
	line := 0
	idx := 0
	for _, sec := range v.sections() {
		if len(sec.files) == 0 {
			continue
		}
		if line == row {
			return -1 // section header
		}
		line++
		for range sec.files {
			if line == row {
				return idx
			}
			line++
			idx++
		}
	}
	return -1
}

func (v *StatusView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "s / S", Desc: i18n.T("help.stage")},
		{Key: "u / U", Desc: i18n.T("help.unstage")},
		{Key: "x", Desc: i18n.T("help.discard")},
		{Key: "c", Desc: i18n.T("help.commit")},
		{Key: "d", Desc: i18n.T("help.diffpane")},
	}
}

func (v *StatusView) InputCapture() bool {
	return v.commitMode || v.DialogActive()
}
