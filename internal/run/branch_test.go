package run

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepoWithCommit(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("demo\n"), 0o600))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

func TestDetectBranch(t *testing.T) {
	t.Parallel()
	dir := initRepoWithCommit(t)

	branch, err := detectBranch(dir)
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestDetectBranchFromSubdirectory(t *testing.T) {
	t.Parallel()
	dir := initRepoWithCommit(t)
	sub := filepath.Join(dir, "services", "api")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	branch, err := detectBranch(sub)
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestDetectBranchOutsideRepository(t *testing.T) {
	t.Parallel()
	_, err := detectBranch(t.TempDir())
	require.Error(t, err)
}

func TestDetectBranchEmptyRepository(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	// No commits yet, so HEAD cannot be resolved.
	_, err = detectBranch(dir)
	require.Error(t, err)
}
