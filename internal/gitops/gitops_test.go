package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	err := Init(dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")
}

func TestIsRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")
}

func TestCommitAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	// Create a file to commit.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vault.fdk"), []byte("sealed"), 0o600))

	hash, err := CommitAll(dir, "fdkeep: import 3 records", "Ram Sharma", "ram@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify commit message.
	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "fdkeep: import 3 records")

	// Verify author.
	authorLog := exec.Command("git", "log", "--format=%an <%ae>", "-1")
	authorLog.Dir = dir
	out, err = authorLog.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Ram Sharma <ram@example.com>")
}

func TestCommitAll_NoGlobalIdentity(t *testing.T) {
	// Commits must work on machines that never ran git config --global.
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_SYSTEM", os.DevNull)

	dir := t.TempDir()
	require.NoError(t, Init(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vault.fdk"), []byte("sealed"), 0o600))

	hash, err := CommitAll(dir, "fdkeep: add record", "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	authorLog := exec.Command("git", "log", "--format=%an <%ae>%n%cn <%ce>", "-1")
	authorLog.Dir = dir
	out, err := authorLog.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "fdkeep <fdkeep@localhost>")
}

func TestSnapshotOutsideRepo(t *testing.T) {
	hash, err := Snapshot(t.TempDir(), "fdkeep: add record", "", "")
	require.NoError(t, err)
	assert.Empty(t, hash)
}

func TestSnapshotCommits(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vault.fdk"), []byte("sealed"), 0o600))

	hash, err := Snapshot(dir, "fdkeep: add record", "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}
