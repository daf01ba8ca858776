package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// initTestRepo creates a repository with the given commit messages, oldest first.
func initTestRepo(t *testing.T, messages ...string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	for i, message := range messages {
		name := filepath.Join(dir, "file.txt")
		require.NoError(t, os.WriteFile(name, []byte(message), 0o644))
		_, err = wt.Add("file.txt")
		require.NoError(t, err)

		_, err = wt.Commit(message, &gogit.CommitOptions{
			Author: &object.Signature{
				Name:  "Test Author",
				Email: "test@example.com",
				When:  time.Date(2026, 1, 1, 12, 0, i, 0, time.UTC),
			},
		})
		require.NoError(t, err)
	}

	return dir
}

func TestHeadCommit(t *testing.T) {
	dir := initTestRepo(t, "PAY-101 STATUS:In Progress\n\nLonger body here.")

	commit, err := HeadCommit(dir)
	require.NoError(t, err)

	assert.Equal(t, "PAY-101 STATUS:In Progress", commit.Message)
	assert.Contains(t, commit.FullMessage, "Longer body here.")
	assert.Equal(t, "Test Author", commit.Author)
	assert.Len(t, commit.Hash, 7)
}

func TestHeadCommitNotARepo(t *testing.T) {
	_, err := HeadCommit(t.TempDir())
	require.Error(t, err)
}

func TestRecentCommits(t *testing.T) {
	dir := initTestRepo(t, "PAY-1 first", "PAY-2 second", "PAY-3 third")

	commits, err := RecentCommits(dir, 10)
	require.NoError(t, err)
	require.Len(t, commits, 3)

	// Newest first
	assert.Equal(t, "PAY-3 third", commits[0].Message)
	assert.Equal(t, "PAY-2 second", commits[1].Message)
	assert.Equal(t, "PAY-1 first", commits[2].Message)
}

func TestRecentCommitsLimit(t *testing.T) {
	dir := initTestRepo(t, "PAY-1 first", "PAY-2 second", "PAY-3 third")

	commits, err := RecentCommits(dir, 2)
	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "PAY-3 third", commits[0].Message)
}

func TestFindRepoRootFromSubdir(t *testing.T) {
	dir := initTestRepo(t, "PAY-1 initial")
	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	require.NoError(t, os.Chdir(sub))

	root, err := FindRepoRoot()
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)
}
