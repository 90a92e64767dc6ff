package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings. Direct tab shortcuts use Alt+key
// so they never collide with view-level keys like 's' (stage).
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Refresh key.Binding
	Back    key.Binding

	TabStatus   key.Binding
	TabHistory  key.Binding
	TabBranches key.Binding
	TabTags     key.Binding
	TabRemotes  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		Refresh: key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),

		TabStatus:   key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "status")),
		TabHistory:  key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "history")),
		TabBranches: key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "branches")),
		TabTags:     key.NewBinding(key.WithKeys("alt+t"), key.WithHelp("alt+t", "tags")),
		TabRemotes:  key.NewBinding(key.WithKeys("alt+m"), key.WithHelp("alt+m", "remotes")),
	}
}
