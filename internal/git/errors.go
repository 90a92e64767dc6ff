package git

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure categories surfaced to the UI.
// Check them with errors.Is; the underlying git message is preserved
// verbatim inside the wrapping OpError.
var (
	// ErrToolMissing indicates the git binary could not be found on PATH.
	ErrToolMissing = errors.New("git executable not found")

	// ErrNotARepo is returned when the path is not inside a Git repository.
	ErrNotARepo = errors.New("not a git repository")

	// ErrPermission indicates the operation was denied by the filesystem
	// or the remote.
	ErrPermission = errors.New("permission denied")

	// ErrMergeConflict indicates a merge or pull stopped on conflicts.
	ErrMergeConflict = errors.New("merge conflict")

	// ErrAuth indicates the remote rejected the provided credentials.
	ErrAuth = errors.New("authentication failed")

	// ErrNetwork indicates the remote could not be reached.
	ErrNetwork = errors.New("network unreachable")

	// ErrInvalidArgument indicates bad user input (empty commit message,
	// malformed or colliding branch name, unknown remote, ...). The
	// repository is left untouched.
	ErrInvalidArgument = errors.New("invalid argument")
)

// OpError wraps a failed git operation with its category and the tool's
// own message. Failures are never retried; the message is shown to the
// user exactly as git produced it.
type OpError struct {
	Op      string // e.g. "commit", "push origin main"
	Kind    error  // one of the sentinels above, or nil if uncategorized
	Message string // verbatim stderr (or stdout fallback) from git
	Err     error  // underlying exec error, may be nil
}

func (e *OpError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("git %s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("git %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("git %s failed", e.Op)
}

// Is reports whether the error belongs to the given category sentinel.
func (e *OpError) Is(target error) bool { return e.Kind != nil && e.Kind == target }

// Unwrap returns the underlying exec error.
func (e *OpError) Unwrap() error { return e.Err }

// invalidArg builds an invalid-argument OpError without touching git.
func invalidArg(op, message string) *OpError {
	return &OpError{Op: op, Kind: ErrInvalidArgument, Message: message}
}

// classify maps git's stderr text onto a failure category. Git has no
// machine-readable error channel, so this matches the stable phrases the
// porcelain commands print. Unrecognized failures stay uncategorized and
// still carry the verbatim message.
func classify(message string) error {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "not a git repository"):
		return ErrNotARepo

	case strings.Contains(m, "could not resolve host"),
		strings.Contains(m, "could not read from remote repository"),
		strings.Contains(m, "unable to access"),
		strings.Contains(m, "connection timed out"),
		strings.Contains(m, "connection refused"),
		strings.Contains(m, "network is unreachable"):
		return ErrNetwork

	case strings.Contains(m, "authentication failed"),
		strings.Contains(m, "invalid username or password"),
		strings.Contains(m, "permission denied (publickey"),
		strings.Contains(m, "could not read username"),
		strings.Contains(m, "terminal prompts disabled"):
		return ErrAuth

	case strings.Contains(m, "permission denied"),
		strings.Contains(m, "insufficient permission"),
		strings.Contains(m, "unable to create file"):
		return ErrPermission

	case strings.Contains(m, "merge conflict"),
		strings.Contains(m, "conflict (content)"),
		strings.Contains(m, "automatic merge failed"),
		strings.Contains(m, "needs merge"),
		strings.Contains(m, "you have unmerged paths"):
		return ErrMergeConflict

	case strings.Contains(m, "already exists"),
		strings.Contains(m, "is not a valid branch name"),
		strings.Contains(m, "is not a valid tag name"),
		strings.Contains(m, "not a valid ref"),
		strings.Contains(m, "not a valid object name"),
		strings.Contains(m, "no such remote"),
		strings.Contains(m, "did not match any file"),
		strings.Contains(m, "pathspec"),
		strings.Contains(m, "nothing to commit"):
		return ErrInvalidArgument
	}
	return nil
}
