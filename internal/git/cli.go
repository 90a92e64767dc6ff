package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// cmdTimeout is the maximum duration any single git command may run.
// Prevents hangs on huge repos or dead remotes.
const cmdTimeout = 60 * time.Second

// Installed reports whether the git binary is available on PATH.
func Installed() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Version returns the installed git version, e.g. "2.43.0".
func Version() (string, error) {
	if !Installed() {
		return "", ErrToolMissing
	}
	out, err := runGit("", nil, "--version")
	if err != nil {
		return "", err
	}
	// "git version 2.43.0"
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) >= 3 {
		return fields[2], nil
	}
	return strings.TrimSpace(out), nil
}

// DefaultCloneDir derives a checkout directory name from a repository
// URL the way git itself does: last path segment, ".git" stripped.
func DefaultCloneDir(url string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(url), "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")
	if i := strings.LastIndexAny(trimmed, "/:"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	if trimmed == "" {
		return "repository"
	}
	return trimmed
}

// Clone clones url into dir and returns a service for the new repository.
func Clone(url, dir string) (*CLIService, error) {
	if strings.TrimSpace(url) == "" {
		return nil, invalidArg("clone", "repository URL is empty")
	}
	if _, err := runGit("", nil, "clone", "--", url, dir); err != nil {
		return nil, err
	}
	return Open(dir)
}

// Init initializes a new repository at dir and returns a service for it.
func Init(dir string) (*CLIService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	if _, err := runGit(dir, nil, "init"); err != nil {
		return nil, err
	}
	return Open(dir)
}

// Author overrides the committer identity on commits. Zero value means
// use git's own configuration.
type Author struct {
	Name  string
	Email string
}

// CLIService implements Service by shelling out to the git CLI.
// Read commands run with GIT_OPTIONAL_LOCKS=0 so status queries never
// contend with a write the user has running elsewhere, and every command
// carries a context timeout. Stdout and stderr are kept separate so
// progress noise never corrupts parsed output.
type CLIService struct {
	root   string // absolute path to the repo root
	gitDir string // path to the .git directory
	author Author
}

// Compile-time check that CLIService implements Service.
var _ Service = (*CLIService)(nil)

// Open opens the Git repository containing path.
func Open(path string) (*CLIService, error) {
	if !Installed() {
		return nil, ErrToolMissing
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	topLevel, err := runGit(abs, nil, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, ErrNotARepo
	}
	gitDir, err := runGit(abs, nil, "rev-parse", "--git-dir")
	if err != nil {
		return nil, fmt.Errorf("finding .git directory: %w", err)
	}
	gd := strings.TrimSpace(gitDir)
	if !filepath.IsAbs(gd) {
		gd = filepath.Join(strings.TrimSpace(topLevel), gd)
	}
	return &CLIService{
		root:   strings.TrimSpace(topLevel),
		gitDir: gd,
	}, nil
}

// SetAuthor sets the identity applied to subsequent commits.
func (s *CLIService) SetAuthor(a Author) { s.author = a }

// RepoRoot returns the repository root path.
func (s *CLIService) RepoRoot() string { return s.root }

// GitDir returns the path to the .git directory.
func (s *CLIService) GitDir() string { return s.gitDir }

// ── helpers ─────────────────────────────────────────────────────────────────

// readEnv is the environment set on all read-only git commands.
var readEnv = []string{"GIT_OPTIONAL_LOCKS=0"}

// run executes a read-only git command at the repo root.
func (s *CLIService) run(args ...string) (string, error) {
	return runGit(s.root, readEnv, args...)
}

// runWrite executes a mutating git command (no optional-locks override).
func (s *CLIService) runWrite(args ...string) (string, error) {
	return runGit(s.root, nil, args...)
}

// runGit executes a git command with a context timeout and classifies
// failures into the package error taxonomy.
func runGit(dir string, extraEnv []string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		return "", &OpError{
			Op:      strings.Join(args, " "),
			Kind:    classify(msg),
			Message: msg,
			Err:     err,
		}
	}
	return stdout.String(), nil
}

// ── Repository info ─────────────────────────────────────────────────────────

// Head returns the current branch name, or a short hash when detached.
func (s *CLIService) Head() (string, error) {
	ref, err := s.run("symbolic-ref", "--short", "HEAD")
	if err != nil {
		hash, hashErr := s.run("rev-parse", "--short", "HEAD")
		if hashErr != nil {
			return "", fmt.Errorf("getting HEAD: %w", err)
		}
		return strings.TrimSpace(hash), nil
	}
	return strings.TrimSpace(ref), nil
}

// AheadBehind returns how many commits HEAD is ahead of and behind its
// upstream. A branch with no upstream reports 0/0.
func (s *CLIService) AheadBehind() (int, int, error) {
	out, err := s.run("rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if err != nil {
		return 0, 0, nil //nolint:nilerr // no upstream is not an error
	}
	parts := strings.Fields(strings.TrimSpace(out))
	if len(parts) != 2 {
		return 0, 0, nil
	}
	var ahead, behind int
	_, _ = fmt.Sscan(parts[0], &ahead)
	_, _ = fmt.Sscan(parts[1], &behind)
	return ahead, behind, nil
}

// Upstream returns the upstream tracking branch name, or "".
func (s *CLIService) Upstream() string {
	out, err := s.run("rev-parse", "--abbrev-ref", "@{upstream}")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// IsMerging reports whether a merge is in progress.
func (s *CLIService) IsMerging() bool {
	_, err := os.Stat(filepath.Join(s.gitDir, "MERGE_HEAD"))
	return err == nil
}

// ── Status & staging ────────────────────────────────────────────────────────

// Status returns the current working tree status.
func (s *CLIService) Status() (*StatusResult, error) {
	// --porcelain=v1 -z: machine-parseable, NUL-delimited, rename-safe.
	out, err := s.run("--no-optional-locks", "status", "--porcelain=v1", "-z",
		"--untracked-files=normal")
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}
	return ParseStatus(out), nil
}

// Stage adds the given paths to the index. Staging an already staged
// path is a no-op, mirroring git add.
func (s *CLIService) Stage(paths ...string) error {
	if len(paths) == 0 {
		return invalidArg("add", "no paths to stage")
	}
	_, err := s.runWrite(append([]string{"add", "--"}, paths...)...)
	return err
}

// StageAll stages all changes including untracked files.
func (s *CLIService) StageAll() error { _, err := s.runWrite("add", "-A"); return err }

// Unstage removes the given paths from the index, keeping worktree changes.
func (s *CLIService) Unstage(paths ...string) error {
	if len(paths) == 0 {
		return invalidArg("reset", "no paths to unstage")
	}
	_, err := s.runWrite(append([]string{"reset", "HEAD", "--"}, paths...)...)
	return err
}

// UnstageAll clears the index back to HEAD.
func (s *CLIService) UnstageAll() error { _, err := s.runWrite("reset", "HEAD"); return err }

// Discard throws away worktree changes for the given paths.
func (s *CLIService) Discard(paths ...string) error {
	if len(paths) == 0 {
		return invalidArg("checkout", "no paths to discard")
	}
	_, err := s.runWrite(append([]string{"checkout", "--"}, paths...)...)
	return err
}

// ── Commits ─────────────────────────────────────────────────────────────────

// Commit records the staged changes. A blank message is rejected before
// git is ever invoked.
func (s *CLIService) Commit(message string) error {
	if strings.TrimSpace(message) == "" {
		return invalidArg("commit", "commit message is empty")
	}
	args := []string{"commit", "-m", message}
	if s.author.Name != "" && s.author.Email != "" {
		args = append(args, "--author",
			fmt.Sprintf("%s <%s>", s.author.Name, s.author.Email))
	}
	_, err := s.runWrite(args...)
	return err
}

// Log returns up to limit commits reachable from HEAD, newest first.
func (s *CLIService) Log(limit int) ([]Commit, error) {
	out, err := s.run("--no-optional-locks", "log", fmt.Sprintf("--max-count=%d", limit),
		logFormatFlag())
	if err != nil {
		return nil, fmt.Errorf("getting log: %w", err)
	}
	return ParseLog(out), nil
}

// Diff returns the unified diff for a path (index when staged is true).
func (s *CLIService) Diff(staged bool, path string) (string, error) {
	args := []string{"--no-optional-locks", "diff", "--color=never", "--no-ext-diff"}
	if staged {
		args = append(args, "--cached")
	}
	if path != "" {
		args = append(args, "--", path)
	}
	return s.run(args...)
}

// ── Branches ────────────────────────────────────────────────────────────────

const branchFormat = "%(HEAD)%00%(refname:short)%00%(objectname:short)%00%(upstream:short)%00%(upstream:track)%00%(subject)"

// Branches returns all local and remote-tracking branches, most recently
// active first.
func (s *CLIService) Branches() ([]Branch, error) {
	out, err := s.run("branch", "-a", "--format="+branchFormat, "--sort=-committerdate")
	if err != nil {
		return nil, err
	}
	return ParseBranches(out), nil
}

// CreateBranch creates a new branch at HEAD without switching to it.
// The name is validated locally first; a collision with an existing
// branch surfaces as invalid-argument and leaves the repo untouched.
func (s *CLIService) CreateBranch(name string) error {
	if err := ValidateRefName(name); err != nil {
		return err
	}
	_, err := s.runWrite("branch", name)
	return err
}

// SwitchBranch checks out the given branch.
func (s *CLIService) SwitchBranch(name string) error {
	_, err := s.runWrite("switch", name)
	return err
}

// DeleteBranch deletes a branch; force deletes even if unmerged.
func (s *CLIService) DeleteBranch(name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	_, err := s.runWrite("branch", flag, name)
	return err
}

// RenameBranch renames oldName to newName.
func (s *CLIService) RenameBranch(oldName, newName string) error {
	if err := ValidateRefName(newName); err != nil {
		return err
	}
	_, err := s.runWrite("branch", "-m", oldName, newName)
	return err
}

// MergeBranch merges the given branch into the current one. Conflicts
// surface as merge-conflict with git's own message.
func (s *CLIService) MergeBranch(name string) error {
	_, err := s.runWrite("merge", name)
	return err
}

// ── Tags ────────────────────────────────────────────────────────────────────

const tagFormat = "%(refname:short)%00%(objecttype)%00%(objectname:short)%00%(*objectname:short)%00%(subject)"

// Tags returns all tags, newest creation first.
func (s *CLIService) Tags() ([]Tag, error) {
	out, err := s.run("tag", "--list", "--format="+tagFormat, "--sort=-creatordate")
	if err != nil {
		return nil, err
	}
	return ParseTags(out), nil
}

// CreateTag creates a tag at HEAD: annotated when message is non-empty,
// lightweight otherwise.
func (s *CLIService) CreateTag(name, message string) error {
	if err := ValidateRefName(name); err != nil {
		return err
	}
	args := []string{"tag"}
	if strings.TrimSpace(message) != "" {
		args = append(args, "-a", "-m", message)
	}
	args = append(args, name)
	_, err := s.runWrite(args...)
	return err
}

// DeleteTag deletes a local tag.
func (s *CLIService) DeleteTag(name string) error {
	_, err := s.runWrite("tag", "-d", name)
	return err
}

// ── Remotes ─────────────────────────────────────────────────────────────────

// Remotes returns all configured remotes.
func (s *CLIService) Remotes() ([]Remote, error) {
	out, err := s.run("remote", "-v")
	if err != nil {
		return nil, err
	}
	return ParseRemotes(out), nil
}

// AddRemote registers a new remote.
func (s *CLIService) AddRemote(name, url string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(url) == "" {
		return invalidArg("remote add", "remote name and URL are required")
	}
	_, err := s.runWrite("remote", "add", name, url)
	return err
}

// RemoveRemote deletes a remote and its tracking refs.
func (s *CLIService) RemoveRemote(name string) error {
	_, err := s.runWrite("remote", "remove", name)
	return err
}

// Fetch updates tracking refs from the given remote.
func (s *CLIService) Fetch(remote string) error {
	_, err := s.runWrite("fetch", remote)
	return err
}

// Pull fetches and merges the given branch from the remote.
func (s *CLIService) Pull(remote, branch string) error {
	_, err := s.runWrite("pull", remote, branch)
	return err
}

// Push pushes the branch to the remote. force uses --force-with-lease so
// a stale view of the remote never silently discards other people's work.
func (s *CLIService) Push(remote, branch string, force bool) error {
	args := []string{"push", remote, branch}
	if force {
		args = append(args, "--force-with-lease")
	}
	_, err := s.runWrite(args...)
	return err
}

// ── Repo-local git config ───────────────────────────────────────────────────

// ConfigGet reads a repo-local git configuration value, e.g. "user.name".
func (s *CLIService) ConfigGet(key string) (string, error) {
	out, err := s.run("config", "--get", key)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ConfigSet writes a repo-local git configuration value.
func (s *CLIService) ConfigSet(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return invalidArg("config", "config key is empty")
	}
	_, err := s.runWrite("config", key, value)
	return err
}

// ── Ref name validation ─────────────────────────────────────────────────────

// ValidateRefName applies git's check-ref-format rules locally so obviously
// bad branch/tag names are rejected without spawning a subprocess.
func ValidateRefName(name string) error {
	n := strings.TrimSpace(name)
	switch {
	case n == "":
		return invalidArg("check-ref-format", "name is empty")
	case n == "@":
		return invalidArg("check-ref-format", "'@' is not a valid name")
	case strings.HasPrefix(n, "-"), strings.HasPrefix(n, "."), strings.HasPrefix(n, "/"):
		return invalidArg("check-ref-format", fmt.Sprintf("%q starts with an invalid character", n))
	case strings.HasSuffix(n, "."), strings.HasSuffix(n, "/"), strings.HasSuffix(n, ".lock"):
		return invalidArg("check-ref-format", fmt.Sprintf("%q ends with an invalid sequence", n))
	case strings.Contains(n, ".."), strings.Contains(n, "//"), strings.Contains(n, "@{"):
		return invalidArg("check-ref-format", fmt.Sprintf("%q contains an invalid sequence", n))
	case strings.ContainsAny(n, " ~^:?*[\\\t\n"):
		return invalidArg("check-ref-format", fmt.Sprintf("%q contains an invalid character", n))
	}
	return nil
}
