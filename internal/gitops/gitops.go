// Package gitops snapshots the data directory with git. The vault file is
// encrypted before it ever reaches a commit, so history is safe to push.
package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const defaultAuthorName = "fdkeep"
const defaultAuthorEmail = "fdkeep@localhost"

// Init initializes a new git repository at dir.
func Init(dir string) error {
	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}

// CommitAll stages all files and creates a commit. Returns the short commit hash.
func CommitAll(dir, message, authorName, authorEmail string) (string, error) {
	if authorName == "" {
		authorName = defaultAuthorName
	}
	if authorEmail == "" {
		authorEmail = defaultAuthorEmail
	}
	author := fmt.Sprintf("%s <%s>", authorName, authorEmail)

	add := exec.Command("git", "add", "-A")
	add.Dir = dir
	if out, err := add.CombinedOutput(); err != nil {
		return "", fmt.Errorf("git add: %s: %w", out, err)
	}

	// -c sets the committer too; --author alone leaves git demanding a
	// global identity on machines that never configured one.
	commit := exec.Command("git",
		"-c", "user.name="+authorName,
		"-c", "user.email="+authorEmail,
		"commit", "-m", message, "--author", author)
	commit.Dir = dir
	if out, err := commit.CombinedOutput(); err != nil {
		return "", fmt.Errorf("git commit: %s: %w", out, err)
	}

	rev := exec.Command("git", "rev-parse", "--short", "HEAD")
	rev.Dir = dir
	out, err := rev.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// IsRepo reports whether dir is inside a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// Snapshot commits the current state of dir if it is a git repository.
// A data dir that was never git-initialized is not an error; the snapshot
// is simply skipped and an empty hash returned. A commit with nothing
// staged is also skipped.
func Snapshot(dir, message, authorName, authorEmail string) (string, error) {
	if !IsRepo(dir) {
		return "", nil
	}
	hash, err := CommitAll(dir, message, authorName, authorEmail)
	if err != nil && strings.Contains(err.Error(), "nothing to commit") {
		return "", nil
	}
	return hash, err
}
