package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/sidekick/internal/config"
)

// newGitWorkspace initializes a real repository with one commit.
func newGitWorkspace(t *testing.T) (*Workspace, *git.Repository) {
	t.Helper()
	root := t.TempDir()

	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("one\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("a.txt")
	require.NoError(t, err)
	_, err = wt.Commit("add a.txt", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "t@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	w, err := New(root, config.DefaultConfig())
	require.NoError(t, err)
	return w, repo
}

func TestGitStatus_Clean(t *testing.T) {
	w, _ := newGitWorkspace(t)

	got, err := w.gitStatus(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "working tree clean", got)
}

func TestGitStatus_UntrackedFile(t *testing.T) {
	w, _ := newGitWorkspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(w.Root(), "new.txt"), []byte("x"), 0o644))

	got, err := w.gitStatus(context.Background(), nil)

	require.NoError(t, err)
	lines := got.([]string)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "new.txt")
}

func TestGitStatus_LinesSorted(t *testing.T) {
	w, _ := newGitWorkspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(w.Root(), "zz.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(w.Root(), "aa.txt"), []byte("x"), 0o644))

	got, err := w.gitStatus(context.Background(), nil)

	require.NoError(t, err)
	lines := got.([]string)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "aa.txt")
	assert.Contains(t, lines[1], "zz.txt")
}

func TestGitStatus_NotARepo(t *testing.T) {
	w := newTestWorkspace(t, nil)

	_, err := w.gitStatus(context.Background(), nil)

	assert.Error(t, err)
}

func TestGitLog(t *testing.T) {
	w, repo := newGitWorkspace(t)

	// Second commit so ordering is observable.
	require.NoError(t, os.WriteFile(filepath.Join(w.Root(), "b.txt"), []byte("two\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("b.txt")
	require.NoError(t, err)
	_, err = wt.Commit("add b.txt\n\nbody text", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "t@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	got, err := w.gitLog(context.Background(), map[string]string{"limit": "1"})

	require.NoError(t, err)
	entries, ok := got.([]gitLogEntry)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "add b.txt", entries[0].Subject)
	assert.Equal(t, "tester", entries[0].Author)
}

func TestGitDiff_LastCommit(t *testing.T) {
	w, repo := newGitWorkspace(t)

	require.NoError(t, os.WriteFile(filepath.Join(w.Root(), "a.txt"), []byte("one\ntwo\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("a.txt")
	require.NoError(t, err)
	_, err = wt.Commit("append two", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "t@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	got, err := w.gitDiff(context.Background(), nil)

	require.NoError(t, err)
	diff := got.(string)
	assert.Contains(t, diff, "a.txt")
	assert.Contains(t, diff, "+two")
}

func TestGitDiff_RootCommit(t *testing.T) {
	w, _ := newGitWorkspace(t)

	got, err := w.gitDiff(context.Background(), nil)

	require.NoError(t, err)
	assert.Contains(t, got.(string), "no parent")
}
