package git

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo initializes a throwaway repository with a known identity
// and no interference from the developer's own git configuration.
func newTestRepo(t *testing.T) *CLIService {
	t.Helper()
	if !Installed() {
		t.Skip("git not installed")
	}

	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_SYSTEM", os.DevNull)
	t.Setenv("GIT_AUTHOR_NAME", "Test User")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test User")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
	// Never fall through to a credential helper or an ssh prompt.
	t.Setenv("GIT_TERMINAL_PROMPT", "0")
	t.Setenv("GIT_ASKPASS", "true")

	svc, err := Init(t.TempDir())
	require.NoError(t, err)
	return svc
}

func writeFile(t *testing.T, svc *CLIService, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(svc.RepoRoot(), name), []byte(content), 0o644))
}

func commitAll(t *testing.T, svc *CLIService, message string) {
	t.Helper()
	require.NoError(t, svc.StageAll())
	require.NoError(t, svc.Commit(message))
}

func TestOpenPopulatesRepoState(t *testing.T) {
	svc := newTestRepo(t)
	writeFile(t, svc, "readme.md", "hello\n")
	commitAll(t, svc, "initial commit")

	reopened, err := Open(svc.RepoRoot())
	require.NoError(t, err)
	assert.Equal(t, svc.RepoRoot(), reopened.RepoRoot())
	assert.DirExists(t, reopened.GitDir())

	head, err := reopened.Head()
	require.NoError(t, err)
	assert.NotEmpty(t, head)

	status, err := reopened.Status()
	require.NoError(t, err)
	assert.True(t, status.IsClean())

	log, err := reopened.Log(10)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "initial commit", log[0].Subject)
	assert.Equal(t, "Test User", log[0].Author)
}

func TestOpenNotARepo(t *testing.T) {
	if !Installed() {
		t.Skip("git not installed")
	}
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)

	_, err := Open(t.TempDir())
	assert.ErrorIs(t, err, ErrNotARepo)
}

func TestStatusCategorizes(t *testing.T) {
	svc := newTestRepo(t)
	writeFile(t, svc, "committed.txt", "v1\n")
	commitAll(t, svc, "base")

	writeFile(t, svc, "committed.txt", "v2\n")
	writeFile(t, svc, "untracked.txt", "new\n")
	writeFile(t, svc, "staged.txt", "staged\n")
	require.NoError(t, svc.Stage("staged.txt"))

	status, err := svc.Status()
	require.NoError(t, err)
	require.Len(t, status.Staged, 1)
	assert.Equal(t, "staged.txt", status.Staged[0].Path)
	require.Len(t, status.Unstaged, 1)
	assert.Equal(t, "committed.txt", status.Unstaged[0].Path)
	require.Len(t, status.Untracked, 1)
	assert.Equal(t, "untracked.txt", status.Untracked[0].Path)
}

func TestStageIsIdempotent(t *testing.T) {
	svc := newTestRepo(t)
	writeFile(t, svc, "file.txt", "content\n")

	require.NoError(t, svc.Stage("file.txt"))
	first, err := svc.Status()
	require.NoError(t, err)

	// Staging the same file again must not change anything.
	require.NoError(t, svc.Stage("file.txt"))
	second, err := svc.Status()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, second.Staged, 1)
}

func TestCommitRejectsEmptyMessage(t *testing.T) {
	svc := newTestRepo(t)
	writeFile(t, svc, "file.txt", "content\n")
	require.NoError(t, svc.Stage("file.txt"))

	for _, message := range []string{"", "   ", "\n\t"} {
		err := svc.Commit(message)
		assert.ErrorIs(t, err, ErrInvalidArgument, "message %q", message)
	}

	// The rejection happened locally: the staged file is still uncommitted.
	status, err := svc.Status()
	require.NoError(t, err)
	assert.Len(t, status.Staged, 1)
	_, err = svc.Log(1)
	assert.Error(t, err, "repo should still have no commits")
}

func TestCommitWithAuthorOverride(t *testing.T) {
	svc := newTestRepo(t)
	svc.SetAuthor(Author{Name: "Config Author", Email: "config@example.com"})
	writeFile(t, svc, "file.txt", "content\n")
	commitAll(t, svc, "authored commit")

	log, err := svc.Log(1)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "Config Author", log[0].Author)
	assert.Equal(t, "config@example.com", log[0].AuthorEmail)
}

func TestCreateBranchCollision(t *testing.T) {
	svc := newTestRepo(t)
	writeFile(t, svc, "file.txt", "content\n")
	commitAll(t, svc, "base")

	require.NoError(t, svc.CreateBranch("feature"))

	err := svc.CreateBranch("feature")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// Still exactly one branch named feature.
	branches, err := svc.Branches()
	require.NoError(t, err)
	count := 0
	for _, b := range branches {
		if b.Name == "feature" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCreateBranchBadName(t *testing.T) {
	svc := newTestRepo(t)
	writeFile(t, svc, "file.txt", "content\n")
	commitAll(t, svc, "base")

	err := svc.CreateBranch("bad..name")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBranchLifecycle(t *testing.T) {
	svc := newTestRepo(t)
	writeFile(t, svc, "file.txt", "content\n")
	commitAll(t, svc, "base")

	require.NoError(t, svc.CreateBranch("feature"))
	require.NoError(t, svc.SwitchBranch("feature"))

	head, err := svc.Head()
	require.NoError(t, err)
	assert.Equal(t, "feature", head)

	require.NoError(t, svc.RenameBranch("feature", "feature-renamed"))
	head, err = svc.Head()
	require.NoError(t, err)
	assert.Equal(t, "feature-renamed", head)

	require.NoError(t, svc.SwitchBranch(defaultBranch(t, svc)))
	require.NoError(t, svc.DeleteBranch("feature-renamed", false))

	branches, err := svc.Branches()
	require.NoError(t, err)
	for _, b := range branches {
		assert.NotEqual(t, "feature-renamed", b.Name)
	}
}

// defaultBranch returns the name git init chose (master or main).
func defaultBranch(t *testing.T, svc *CLIService) string {
	t.Helper()
	branches, err := svc.Branches()
	require.NoError(t, err)
	for _, b := range branches {
		if b.Name == "main" || b.Name == "master" {
			return b.Name
		}
	}
	t.Fatal("no default branch found")
	return ""
}

func TestMergeConflict(t *testing.T) {
	svc := newTestRepo(t)
	writeFile(t, svc, "file.txt", "base\n")
	commitAll(t, svc, "base")
	base := defaultBranch(t, svc)

	require.NoError(t, svc.CreateBranch("other"))
	writeFile(t, svc, "file.txt", "ours\n")
	commitAll(t, svc, "ours")

	require.NoError(t, svc.SwitchBranch("other"))
	writeFile(t, svc, "file.txt", "theirs\n")
	commitAll(t, svc, "theirs")

	require.NoError(t, svc.SwitchBranch(base))
	err := svc.MergeBranch("other")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMergeConflict)
	assert.True(t, svc.IsMerging())

	status, statusErr := svc.Status()
	require.NoError(t, statusErr)
	assert.NotEmpty(t, status.Conflicts)
}

func TestTagLifecycle(t *testing.T) {
	svc := newTestRepo(t)
	writeFile(t, svc, "file.txt", "content\n")
	commitAll(t, svc, "base")

	require.NoError(t, svc.CreateTag("v1.0.0", ""))
	require.NoError(t, svc.CreateTag("v1.1.0", "first real release"))

	tags, err := svc.Tags()
	require.NoError(t, err)
	require.Len(t, tags, 2)

	byName := map[string]Tag{}
	for _, tg := range tags {
		byName[tg.Name] = tg
	}
	assert.False(t, byName["v1.0.0"].Annotated)
	annotated := byName["v1.1.0"]
	assert.True(t, annotated.Annotated)
	assert.Equal(t, "first real release", annotated.Message)

	// Both tag flavours must resolve to the same target commit.
	assert.Equal(t, byName["v1.0.0"].Hash, annotated.Hash)

	require.NoError(t, svc.DeleteTag("v1.0.0"))
	tags, err = svc.Tags()
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "v1.1.0", tags[0].Name)
}

func TestRemoteLifecycle(t *testing.T) {
	svc := newTestRepo(t)

	require.NoError(t, svc.AddRemote("origin", "https://example.com/repo.git"))
	remotes, err := svc.Remotes()
	require.NoError(t, err)
	require.Len(t, remotes, 1)
	assert.Equal(t, "origin", remotes[0].Name)
	assert.Equal(t, "https://example.com/repo.git", remotes[0].FetchURL)

	err = svc.AddRemote("", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	require.NoError(t, svc.RemoveRemote("origin"))
	remotes, err = svc.Remotes()
	require.NoError(t, err)
	assert.Empty(t, remotes)
}

func TestPushUnreachableHost(t *testing.T) {
	svc := newTestRepo(t)
	writeFile(t, svc, "file.txt", "content\n")
	commitAll(t, svc, "base")
	branch := defaultBranch(t, svc)

	// RFC 2606 reserves .invalid; resolution always fails, no network needed.
	require.NoError(t, svc.AddRemote("origin", "https://host.invalid/repo.git"))

	err := svc.Push("origin", branch, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestPullFromLocalRemote(t *testing.T) {
	svc := newTestRepo(t)
	writeFile(t, svc, "file.txt", "content\n")
	commitAll(t, svc, "base")
	branch := defaultBranch(t, svc)

	// A bare clone on disk stands in for the server.
	bare := filepath.Join(t.TempDir(), "bare.git")
	out, err := exec.Command("git", "clone", "--bare", svc.RepoRoot(), bare).CombinedOutput()
	require.NoError(t, err, string(out))

	require.NoError(t, svc.AddRemote("origin", bare))
	require.NoError(t, svc.Fetch("origin"))
	require.NoError(t, svc.Pull("origin", branch))

	writeFile(t, svc, "file.txt", "updated\n")
	commitAll(t, svc, "update")
	require.NoError(t, svc.Push("origin", branch, false))
}

func TestConfigGetSet(t *testing.T) {
	svc := newTestRepo(t)

	require.NoError(t, svc.ConfigSet("user.name", "Repo Local"))
	val, err := svc.ConfigGet("user.name")
	require.NoError(t, err)
	assert.Equal(t, "Repo Local", val)

	err = svc.ConfigSet("", "x")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDiscardRestoresFile(t *testing.T) {
	svc := newTestRepo(t)
	writeFile(t, svc, "file.txt", "original\n")
	commitAll(t, svc, "base")

	writeFile(t, svc, "file.txt", "modified\n")
	status, err := svc.Status()
	require.NoError(t, err)
	require.Len(t, status.Unstaged, 1)

	require.NoError(t, svc.Discard("file.txt"))
	data, err := os.ReadFile(filepath.Join(svc.RepoRoot(), "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "original\n", string(data))
}

func TestDefaultCloneDir(t *testing.T) {
	tests := map[string]string{
		"https://example.com/owner/repo.git": "repo",
		"https://example.com/owner/repo":     "repo",
		"git@example.com:owner/repo.git":     "repo",
		"repo.git":                           "repo",
		"":                                   "repository",
	}
	for url, want := range tests {
		assert.Equal(t, want, DefaultCloneDir(url), url)
	}
}

func TestUnwrapExposesExecError(t *testing.T) {
	svc := newTestRepo(t)

	err := svc.SwitchBranch("does-not-exist")
	require.Error(t, err)

	var opErr *OpError
	require.True(t, errors.As(err, &opErr))
	assert.NotEmpty(t, opErr.Message)
}
