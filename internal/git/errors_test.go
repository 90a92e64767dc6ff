package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    error
	}{
		{"not a repo", "fatal: not a git repository (or any of the parent directories): .git", ErrNotARepo},
		{"dns failure", "fatal: unable to access 'https://example.com/': Could not resolve host: example.com", ErrNetwork},
		{"remote hung up", "fatal: Could not read from remote repository.", ErrNetwork},
		{"timeout", "fatal: unable to access 'https://example.com/': Connection timed out", ErrNetwork},
		{"http auth", "remote: Invalid username or password.\nfatal: Authentication failed for 'https://example.com/'", ErrAuth},
		{"ssh key", "git@example.com: Permission denied (publickey).", ErrAuth},
		{"prompt disabled", "fatal: could not read Username for 'https://example.com': terminal prompts disabled", ErrAuth},
		{"fs permission", "error: insufficient permission for adding an object to repository database .git/objects", ErrPermission},
		{"merge conflict", "CONFLICT (content): Merge conflict in main.go\nAutomatic merge failed; fix conflicts and then commit the result.", ErrMergeConflict},
		{"unmerged paths", "error: you have unmerged paths", ErrMergeConflict},
		{"branch exists", "fatal: a branch named 'main' already exists", ErrInvalidArgument},
		{"bad branch name", "fatal: 'bad..name' is not a valid branch name", ErrInvalidArgument},
		{"bad pathspec", "error: pathspec 'nope.txt' did not match any file(s) known to git", ErrInvalidArgument},
		{"unknown remote", "error: No such remote: 'upstream'", ErrInvalidArgument},
		{"unclassified", "fatal: the remote end hung up unexpectedly somewhere strange", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.message))
		})
	}
}

func TestOpErrorIs(t *testing.T) {
	err := &OpError{Op: "push origin main", Kind: ErrNetwork, Message: "could not resolve host"}

	assert.True(t, errors.Is(err, ErrNetwork))
	assert.False(t, errors.Is(err, ErrAuth))
	assert.False(t, errors.Is(err, ErrInvalidArgument))
}

func TestOpErrorMessage(t *testing.T) {
	withMsg := &OpError{Op: "commit", Message: "nothing to commit"}
	assert.Equal(t, "git commit: nothing to commit", withMsg.Error())

	withErr := &OpError{Op: "fetch origin", Err: errors.New("exit status 1")}
	assert.Equal(t, "git fetch origin: exit status 1", withErr.Error())

	bare := &OpError{Op: "status"}
	assert.Equal(t, "git status failed", bare.Error())
}

func TestInvalidArg(t *testing.T) {
	err := invalidArg("commit", "commit message is empty")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "commit message is empty")
}

func TestValidateRefName(t *testing.T) {
	valid := []string{"main", "feature/login", "v1.0.0", "fix-123", "wip.stuff"}
	for _, name := range valid {
		assert.NoError(t, ValidateRefName(name), name)
	}

	invalid := []string{
		"",
		"  ",
		"@",
		"-leading-dash",
		".hidden",
		"/leading-slash",
		"trailing.",
		"trailing/",
		"name.lock",
		"double..dot",
		"double//slash",
		"at@{brace",
		"has space",
		"has~tilde",
		"has^caret",
		"has:colon",
		"has?question",
		"has*star",
		"has[bracket",
		"has\\backslash",
	}
	for _, name := range invalid {
		err := ValidateRefName(name)
		assert.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrInvalidArgument), name)
	}
}
