package app

import (
	"time"

	"github.com/bakagit/bakagit/internal/common"
	"github.com/bakagit/bakagit/internal/config"
	"github.com/bakagit/bakagit/internal/git"
	"github.com/bakagit/bakagit/internal/i18n"
	"github.com/bakagit/bakagit/internal/ui"
	"github.com/bakagit/bakagit/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the top-level Bubbletea model orchestrating the tab panels.
type Model struct {
	git       git.Service
	cfg       *config.Config
	styles    ui.Styles
	keys      KeyMap
	width     int
	height    int
	activeTab common.TabID
	views     map[common.TabID]common.View
	showHelp  bool

	statusMsg string
	statusErr bool
	statusExp time.Time

	// Status bar data is refreshed via tea.Cmd; View() never runs git.
	barData components.StatusBarData

	// viewStale marks inactive views that must reload on next switch.
	viewStale map[common.TabID]bool
}

type statusBarMsg struct{ data components.StatusBarData }

// autoFetchMsg fires on the background fetch timer.
type autoFetchMsg struct{}

// New creates the application model.
func New(gitSvc git.Service, cfg *config.Config, styles ui.Styles, views map[common.TabID]common.View) Model {
	// Every view starts stale so it loads on first activation.
	stale := make(map[common.TabID]bool, len(views))
	for id := range views {
		stale[id] = true
	}
	return Model{
		git:       gitSvc,
		cfg:       cfg,
		styles:    styles,
		keys:      DefaultKeyMap(),
		activeTab: common.TabStatus,
		views:     views,
		barData:   components.StatusBarData{RepoRoot: gitSvc.RepoRoot()},
		viewStale: stale,
	}
}

// Init loads the initial view and starts the background timers.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.refreshStatusBar()}
	if v, ok := m.views[m.activeTab]; ok {
		delete(m.viewStale, m.activeTab)
		if cmd := v.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if cmd := m.scheduleAutoFetch(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m Model) scheduleAutoFetch() tea.Cmd {
	if !m.cfg.Git.AutoFetch {
		return nil
	}
	interval := time.Duration(m.cfg.Git.AutoFetchInterval) * time.Second
	if interval < 30*time.Second {
		interval = 30 * time.Second
	}
	return tea.Tick(interval, func(time.Time) tea.Msg { return autoFetchMsg{} })
}

// refreshStatusBar queries git in the background and posts a statusBarMsg.
func (m Model) refreshStatusBar() tea.Cmd {
	svc := m.git
	return func() tea.Msg {
		data := components.StatusBarData{RepoRoot: svc.RepoRoot()}
		if head, err := svc.Head(); err == nil {
			data.Branch = head
		}
		data.Ahead, data.Behind, _ = svc.AheadBehind()
		if status, err := svc.Status(); err == nil {
			data.Clean = status.IsClean()
		}
		data.Merging = svc.IsMerging()
		return statusBarMsg{data: data}
	}
}

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentH := m.contentHeight()
		for _, v := range m.views {
			v.SetSize(m.width, contentH)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		// A view in text-input mode gets every key; don't steal letters
		// for tab switching while the user is typing.
		if v, ok := m.views[m.activeTab]; ok && v.InputCapture() {
			updated, cmd := v.Update(msg)
			m.views[m.activeTab] = updated
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.triggerRefresh()
		case key.Matches(msg, m.keys.NextTab):
			return m, m.switchTo(m.nextTab(1))
		case key.Matches(msg, m.keys.PrevTab):
			return m, m.switchTo(m.nextTab(-1))

		case key.Matches(msg, m.keys.TabStatus):
			return m, m.switchTo(common.TabStatus)
		case key.Matches(msg, m.keys.TabHistory):
			return m, m.switchTo(common.TabHistory)
		case key.Matches(msg, m.keys.TabBranches):
			return m, m.switchTo(common.TabBranches)
		case key.Matches(msg, m.keys.TabTags):
			return m, m.switchTo(common.TabTags)
		case key.Matches(msg, m.keys.TabRemotes):
			return m, m.switchTo(common.TabRemotes)

		case key.Matches(msg, m.keys.Back):
			if m.showHelp {
				m.showHelp = false
				return m, nil
			}
		}
		// Anything else falls through to the active view below.

	case statusBarMsg:
		m.barData = msg.data
		return m, nil

	case autoFetchMsg:
		return m, tea.Batch(m.backgroundFetch(), m.scheduleAutoFetch())

	case common.RefreshMsg:
		// Only the active view reloads now; the rest reload lazily on
		// switch. Keeps one filesystem event from fanning out into a
		// git call per view.
		if v, ok := m.views[m.activeTab]; ok {
			updated, cmd := v.Update(msg)
			m.views[m.activeTab] = updated
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		for id := range m.views {
			if id != m.activeTab {
				m.viewStale[id] = true
			}
		}
		cmds = append(cmds, m.refreshStatusBar())
		return m, tea.Batch(cmds...)

	case common.ErrMsg:
		m.statusMsg = msg.Err.Error()
		m.statusErr = true
		m.statusExp = time.Now().Add(5 * time.Second)
		// Views may need to clear transient state (spinners) on failure.
		if v, ok := m.views[m.activeTab]; ok {
			updated, cmd := v.Update(msg)
			m.views[m.activeTab] = updated
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case common.InfoMsg:
		m.statusMsg = msg.Text
		m.statusErr = false
		m.statusExp = time.Now().Add(3 * time.Second)
		return m, nil

	case common.SwitchTabMsg:
		return m, m.switchTo(msg.Tab)
	}

	if v, ok := m.views[m.activeTab]; ok {
		updated, cmd := v.Update(msg)
		m.views[m.activeTab] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// backgroundFetch fetches every remote; failures are silent because an
// unreachable network during a timed fetch is not actionable.
func (m Model) backgroundFetch() tea.Cmd {
	svc := m.git
	return func() tea.Msg {
		remotes, err := svc.Remotes()
		if err != nil {
			return nil
		}
		for _, r := range remotes {
			if err := svc.Fetch(r.Name); err != nil {
				return nil
			}
		}
		return common.RefreshMsg{}
	}
}

// View renders the whole screen. Pure function, no I/O.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showHelp {
		sections := components.GlobalHelpEntries()
		for _, t := range common.AllTabs {
			if t.ID == m.activeTab {
				if v, ok := m.views[m.activeTab]; ok {
					sections[t.Name()] = v.ShortHelp()
				}
				break
			}
		}
		return components.RenderHelp(m.styles, i18n.T("help.title"), sections, m.width, m.height)
	}

	tabBar := components.RenderTabs(m.styles, m.buildTabInfos(), m.width)

	content := ""
	if v, ok := m.views[m.activeTab]; ok {
		content = v.View()
	}
	content = lipgloss.NewStyle().Width(m.width).Height(m.contentHeight()).Render(content)

	barData := m.barData
	if m.statusMsg != "" && time.Now().Before(m.statusExp) {
		barData.Message = m.statusMsg
		barData.IsError = m.statusErr
	}
	statusBar := components.RenderStatusBar(m.styles, barData, m.width)

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) contentHeight() int {
	h := m.height - 2 // tab bar + status bar
	if h < 1 {
		h = 1
	}
	return h
}

// nextTab returns the tab delta steps away from the active one.
func (m Model) nextTab(delta int) common.TabID {
	n := len(common.AllTabs)
	next := (m.tabIndex() + delta + n) % n
	return common.AllTabs[next].ID
}

func (m Model) tabIndex() int {
	for i, t := range common.AllTabs {
		if t.ID == m.activeTab {
			return i
		}
	}
	return 0
}

// switchTo activates a tab, reloading it only when something changed
// since it was last shown.
func (m *Model) switchTo(tab common.TabID) tea.Cmd {
	m.activeTab = tab
	if !m.viewStale[tab] {
		return nil
	}
	delete(m.viewStale, tab)
	if v, ok := m.views[tab]; ok {
		return v.Init()
	}
	return nil
}

func (m Model) triggerRefresh() tea.Cmd {
	var cmds []tea.Cmd
	if v, ok := m.views[m.activeTab]; ok {
		updated, cmd := v.Update(common.RefreshMsg{})
		m.views[m.activeTab] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	cmds = append(cmds, m.refreshStatusBar())
	return tea.Batch(cmds...)
}

// handleMouse routes clicks: tab bar on row 0, everything else to the view.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y == 0 {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m, m.switchTo(m.nextTab(-1))
		case tea.MouseButtonWheelDown:
			return m, m.switchTo(m.nextTab(1))
		case tea.MouseButtonLeft:
			if msg.Action != tea.MouseActionPress {
				return m, nil
			}
			if idx := components.TabAt(m.buildTabInfos(), m.width, msg.X); idx >= 0 {
				return m, m.switchTo(common.AllTabs[idx].ID)
			}
		}
		return m, nil
	}

	// Make Y relative to the content area.
	msg.Y--
	var cmd tea.Cmd
	if v, ok := m.views[m.activeTab]; ok {
		updated, c := v.Update(msg)
		m.views[m.activeTab] = updated
		cmd = c
	}
	return m, cmd
}

func (m Model) buildTabInfos() []components.TabInfo {
	infos := make([]components.TabInfo, len(common.AllTabs))
	for i, t := range common.AllTabs {
		infos[i] = components.TabInfo{
			Name:     t.Name(),
			Icon:     t.Icon,
			Shortcut: t.Shortcut,
			Active:   t.ID == m.activeTab,
		}
	}
	return infos
}
