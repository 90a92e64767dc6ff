package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds the colour palette for the application.
type Theme struct {
	Bg           lipgloss.Color
	Surface      lipgloss.Color
	SurfaceHover lipgloss.Color
	Border       lipgloss.Color

	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	TextSubtle  lipgloss.Color
	TextInverse lipgloss.Color

	Primary lipgloss.Color
	Accent  lipgloss.Color

	Added     lipgloss.Color
	Modified  lipgloss.Color
	Deleted   lipgloss.Color
	Conflict  lipgloss.Color
	Untracked lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	CommitHash lipgloss.Color
	Branch     lipgloss.Color
	Tag        lipgloss.Color
	Remote     lipgloss.Color
}

// DarkTheme is the default palette.
func DarkTheme() Theme {
	return Theme{
		Bg:           lipgloss.Color("#1e1e2e"),
		Surface:      lipgloss.Color("#282840"),
		SurfaceHover: lipgloss.Color("#313152"),
		Border:       lipgloss.Color("#3b3b5c"),

		Text:        lipgloss.Color("#cdd6f4"),
		TextMuted:   lipgloss.Color("#9399b2"),
		TextSubtle:  lipgloss.Color("#6c7086"),
		TextInverse: lipgloss.Color("#1e1e2e"),

		Primary: lipgloss.Color("#89b4fa"),
		Accent:  lipgloss.Color("#f5c2e7"),

		Added:     lipgloss.Color("#a6e3a1"),
		Modified:  lipgloss.Color("#f9e2af"),
		Deleted:   lipgloss.Color("#f38ba8"),
		Conflict:  lipgloss.Color("#fab387"),
		Untracked: lipgloss.Color("#9399b2"),

		Success: lipgloss.Color("#a6e3a1"),
		Warning: lipgloss.Color("#f9e2af"),
		Error:   lipgloss.Color("#f38ba8"),
		Info:    lipgloss.Color("#89b4fa"),

		CommitHash: lipgloss.Color("#f9e2af"),
		Branch:     lipgloss.Color("#a6e3a1"),
		Tag:        lipgloss.Color("#f5c2e7"),
		Remote:     lipgloss.Color("#f38ba8"),
	}
}

// LightTheme is the palette selected by theme: light.
func LightTheme() Theme {
	return Theme{
		Bg:           lipgloss.Color("#eff1f5"),
		Surface:      lipgloss.Color("#e6e9ef"),
		SurfaceHover: lipgloss.Color("#dce0e8"),
		Border:       lipgloss.Color("#bcc0cc"),

		Text:        lipgloss.Color("#4c4f69"),
		TextMuted:   lipgloss.Color("#6c6f85"),
		TextSubtle:  lipgloss.Color("#8c8fa1"),
		TextInverse: lipgloss.Color("#eff1f5"),

		Primary: lipgloss.Color("#1e66f5"),
		Accent:  lipgloss.Color("#ea76cb"),

		Added:     lipgloss.Color("#40a02b"),
		Modified:  lipgloss.Color("#df8e1d"),
		Deleted:   lipgloss.Color("#d20f39"),
		Conflict:  lipgloss.Color("#fe640b"),
		Untracked: lipgloss.Color("#6c6f85"),

		Success: lipgloss.Color("#40a02b"),
		Warning: lipgloss.Color("#df8e1d"),
		Error:   lipgloss.Color("#d20f39"),
		Info:    lipgloss.Color("#1e66f5"),

		CommitHash: lipgloss.Color("#df8e1d"),
		Branch:     lipgloss.Color("#40a02b"),
		Tag:        lipgloss.Color("#ea76cb"),
		Remote:     lipgloss.Color("#d20f39"),
	}
}

// ThemeByName resolves the "theme" config value; unknown names get dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds pre-computed lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	TabBar    lipgloss.Style
	TabActive lipgloss.Style
	TabItem   lipgloss.Style
	StatusBar lipgloss.Style

	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	Title   lipgloss.Style
	Muted   lipgloss.Style
	KeyBind lipgloss.Style
	KeyDesc lipgloss.Style

	FileAdded     lipgloss.Style
	FileModified  lipgloss.Style
	FileDeleted   lipgloss.Style
	FileConflict  lipgloss.Style
	FileUntracked lipgloss.Style

	DiffAdded   lipgloss.Style
	DiffRemoved lipgloss.Style
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffContext lipgloss.Style

	CommitHash lipgloss.Style
	Author     lipgloss.Style
	Date       lipgloss.Style
	BranchName lipgloss.Style
	TagName    lipgloss.Style
	RemoteName lipgloss.Style
}

// NewStyles builds all styles from the given theme.
func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.TabBar = lipgloss.NewStyle().Padding(0, 1).Background(t.Surface)
	s.TabActive = lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Padding(0, 2).
		Background(t.Bg).BorderBottom(true).BorderStyle(lipgloss.ThickBorder()).
		BorderBottomForeground(t.Primary)
	s.TabItem = lipgloss.NewStyle().Foreground(t.TextMuted).Padding(0, 2)
	s.StatusBar = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)

	s.ListItem = lipgloss.NewStyle().Foreground(t.Text).PaddingLeft(2)
	s.ListSelected = lipgloss.NewStyle().Foreground(t.Text).Background(t.SurfaceHover).
		Bold(true).PaddingLeft(1)

	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.KeyBind = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.KeyDesc = lipgloss.NewStyle().Foreground(t.TextMuted)

	s.FileAdded = lipgloss.NewStyle().Foreground(t.Added)
	s.FileModified = lipgloss.NewStyle().Foreground(t.Modified)
	s.FileDeleted = lipgloss.NewStyle().Foreground(t.Deleted).Strikethrough(true)
	s.FileConflict = lipgloss.NewStyle().Foreground(t.Conflict).Bold(true)
	s.FileUntracked = lipgloss.NewStyle().Foreground(t.Untracked)

	s.DiffAdded = lipgloss.NewStyle().Foreground(t.Added)
	s.DiffRemoved = lipgloss.NewStyle().Foreground(t.Deleted)
	s.DiffHeader = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.DiffHunk = lipgloss.NewStyle().Foreground(t.Accent).Italic(true)
	s.DiffContext = lipgloss.NewStyle().Foreground(t.TextMuted)

	s.CommitHash = lipgloss.NewStyle().Foreground(t.CommitHash)
	s.Author = lipgloss.NewStyle().Foreground(t.Primary)
	s.Date = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.BranchName = lipgloss.NewStyle().Foreground(t.Branch).Bold(true)
	s.TagName = lipgloss.NewStyle().Foreground(t.Tag).Bold(true)
	s.RemoteName = lipgloss.NewStyle().Foreground(t.Remote)

	return s
}

// DefaultStyles returns styles using the dark theme.
func DefaultStyles() Styles { return NewStyles(DarkTheme()) }
