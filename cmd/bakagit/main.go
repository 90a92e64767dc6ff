package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/bakagit/bakagit/internal/app"
	"github.com/bakagit/bakagit/internal/common"
	"github.com/bakagit/bakagit/internal/config"
	"github.com/bakagit/bakagit/internal/git"
	"github.com/bakagit/bakagit/internal/i18n"
	"github.com/bakagit/bakagit/internal/ui"
	"github.com/bakagit/bakagit/internal/ui/views"
	"github.com/bakagit/bakagit/internal/watcher"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bakagit:", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bakagit",
		Short: "A beginner-friendly graphical Git client",
		Long: `bakagit is a friendly, terminal-based Git client for people who are
still learning Git. It shows your repository in plain panels: status,
history, branches, tags, and remotes. It turns everyday operations
into single keystrokes with confirmation prompts before anything
destructive.

All operations shell out to your installed git, so anything bakagit
does is exactly what the command line would have done.`,
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"bakagit %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.AddCommand(buildCloneCmd())
	rootCmd.AddCommand(buildInitCmd())
	rootCmd.AddCommand(buildRecentCmd())
	rootCmd.AddCommand(buildConfigCmd())
	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())

	rootCmd.Flags().StringP("path", "p", ".", "Path to the git repository")

	return rootCmd
}

// buildCloneCmd creates `bakagit clone <url> [dir]`: clone then open the TUI.
func buildCloneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clone <url> [dir]",
		Short: "Clone a repository and open it",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			url := args[0]
			dir := ""
			if len(args) == 2 {
				dir = args[1]
			} else {
				dir = git.DefaultCloneDir(url)
			}
			fmt.Printf("Cloning %s into %s...\n", url, dir)
			svc, err := git.Clone(url, dir)
			if err != nil {
				return err
			}
			return openTUI(svc)
		},
	}
}

// buildInitCmd creates `bakagit init [dir]`: initialize a repo and open it.
func buildInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Initialize a new repository and open it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			svc, err := git.Init(dir)
			if err != nil {
				return err
			}
			return openTUI(svc)
		},
	}
}

// buildRecentCmd creates `bakagit recent [n]`: list recently opened
// repositories, or open the n-th one. Entries whose directory is gone are
// dropped from the list before printing.
func buildRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent [n]",
		Short: "List recently opened repositories, or open one by number",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			repos, err := config.PruneRecent()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				if len(repos) == 0 {
					fmt.Println("No recent repositories.")
					return nil
				}
				for i, r := range repos {
					fmt.Printf("%2d  %s\n", i+1, r)
				}
				return nil
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > len(repos) {
				return fmt.Errorf("pick a number between 1 and %d", len(repos))
			}
			svc, err := git.Open(repos[n-1])
			if err != nil {
				return err
			}
			return openTUI(svc)
		},
	}
}

// buildConfigCmd creates `bakagit config get|set|list`. Keys bakagit owns
// live in its own config file; anything else is passed through to git
// config, so users can fix their user.name without leaving bakagit.
func buildConfigCmd() *cobra.Command {
	var repoPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and write bakagit settings and git configuration",
	}
	cmd.PersistentFlags().StringVarP(&repoPath, "path", "p", ".", "Path to the git repository for git keys")

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print a bakagit setting or a git config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if val, ok := prefGet(cfg, args[0]); ok {
				fmt.Println(val)
				return nil
			}
			svc, err := git.Open(repoPath)
			if err != nil {
				return err
			}
			val, err := svc.ConfigGet(args[0])
			if err != nil {
				return err
			}
			fmt.Println(val)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a bakagit setting or a git config value",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			handled, err := prefSet(cfg, args[0], args[1])
			if err != nil {
				return err
			}
			if handled {
				return cfg.Save()
			}
			svc, err := git.Open(repoPath)
			if err != nil {
				return err
			}
			return svc.ConfigSet(args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print all bakagit settings",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			for _, key := range prefKeys {
				val, _ := prefGet(cfg, key)
				fmt.Printf("%s = %s\n", key, val)
			}
			return nil
		},
	})

	return cmd
}

// prefKeys are the settings bakagit stores itself; every other key is
// treated as a git config key.
var prefKeys = []string{
	"theme",
	"language",
	"max_log_entries",
	"confirm_destructive",
	"git.default_author_name",
	"git.default_author_email",
	"git.auto_fetch",
	"git.auto_fetch_interval",
}

func prefGet(cfg *config.Config, key string) (string, bool) {
	switch key {
	case "theme":
		return cfg.Theme, true
	case "language":
		return cfg.Language, true
	case "max_log_entries":
		return strconv.Itoa(cfg.MaxLogEntries), true
	case "confirm_destructive":
		return strconv.FormatBool(cfg.ConfirmDestructive), true
	case "git.default_author_name":
		return cfg.Git.DefaultAuthorName, true
	case "git.default_author_email":
		return cfg.Git.DefaultAuthorEmail, true
	case "git.auto_fetch":
		return strconv.FormatBool(cfg.Git.AutoFetch), true
	case "git.auto_fetch_interval":
		return strconv.Itoa(cfg.Git.AutoFetchInterval), true
	}
	return "", false
}

// prefSet validates and applies value to the bakagit setting named by key.
// It reports whether the key was one of bakagit's own; the caller falls
// back to git config when it was not.
func prefSet(cfg *config.Config, key, value string) (bool, error) {
	switch key {
	case "theme":
		if value != "light" && value != "dark" {
			return true, fmt.Errorf("theme must be light or dark, got %q", value)
		}
		cfg.Theme = value
	case "language":
		if !slices.Contains(i18n.Locales(), value) {
			return true, fmt.Errorf("language must be one of %v", i18n.Locales())
		}
		cfg.Language = value
	case "max_log_entries":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return true, fmt.Errorf("max_log_entries must be a positive integer, got %q", value)
		}
		cfg.MaxLogEntries = n
	case "confirm_destructive":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return true, fmt.Errorf("confirm_destructive must be true or false, got %q", value)
		}
		cfg.ConfirmDestructive = b
	case "git.default_author_name":
		cfg.Git.DefaultAuthorName = value
	case "git.default_author_email":
		cfg.Git.DefaultAuthorEmail = value
	case "git.auto_fetch":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return true, fmt.Errorf("git.auto_fetch must be true or false, got %q", value)
		}
		cfg.Git.AutoFetch = b
	case "git.auto_fetch_interval":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return true, fmt.Errorf("git.auto_fetch_interval must be a positive integer, got %q", value)
		}
		cfg.Git.AutoFetchInterval = n
	default:
		return false, nil
	}
	return true, nil
}

func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(_ *cobra.Command, _ []string) error {
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			if gitVer, err := git.Version(); err == nil {
				info["git"] = gitVer
			}
			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Printf("bakagit %s\n", version)
			fmt.Printf("  commit:  %s\n", commit)
			fmt.Printf("  built:   %s\n", date)
			fmt.Printf("  go:      %s\n", runtime.Version())
			if gitVer, ok := info["git"]; ok {
				fmt.Printf("  git:     %s\n", gitVer)
			}
			fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

func buildCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}

func runApp(cmd *cobra.Command, _ []string) error {
	repoPath, _ := cmd.Flags().GetString("path")

	if !git.Installed() {
		return fmt.Errorf("git was not found on PATH; install git and try again")
	}

	svc, err := git.Open(repoPath)
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}
	return openTUI(svc)
}

func openTUI(cliSvc *git.CLIService) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	i18n.SetLocale(cfg.Language)

	// Author override from config; blank fields defer to git's own config.
	cliSvc.SetAuthor(git.Author{
		Name:  cfg.Git.DefaultAuthorName,
		Email: cfg.Git.DefaultAuthorEmail,
	})

	// Remember the repo for the next session. Best effort.
	_ = config.AddRecent(cliSvc.RepoRoot())

	// The cache deduplicates git calls within one refresh cycle: a single
	// filesystem event otherwise triggers the same status query from the
	// status bar and the active view.
	gitSvc := git.NewCachedService(cliSvc, 2*time.Second)

	styles := ui.NewStyles(ui.ThemeByName(cfg.Theme))

	viewMap := map[common.TabID]common.View{
		common.TabStatus:   views.NewStatusView(gitSvc, cfg, styles),
		common.TabHistory:  views.NewHistoryView(gitSvc, cfg, styles),
		common.TabBranches: views.NewBranchView(gitSvc, cfg, styles),
		common.TabTags:     views.NewTagView(gitSvc, cfg, styles),
		common.TabRemotes:  views.NewRemoteView(gitSvc, cfg, styles),
	}

	model := app.New(gitSvc, cfg, styles, viewMap)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Watch .git internals so external git commands refresh the UI.
	if watchCh, stop, watchErr := watcher.Watch(cliSvc.GitDir(), 500*time.Millisecond); watchErr == nil {
		defer stop()
		go func() {
			for range watchCh {
				p.Send(common.RefreshMsg{})
			}
		}()
	}

	_, err = p.Run()
	return err
}
