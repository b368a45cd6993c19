package workspace

import (
	"context"
	"fmt"
	"sort"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

type gitLogRequest struct {
	Limit int `mapstructure:"limit"`
}

// gitLogEntry is one commit in git_log output.
type gitLogEntry struct {
	Hash    string `json:"hash"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Subject string `json:"subject"`
}

// gitStatus returns the worktree status as "XY path" lines, X the staging
// code and Y the worktree code, matching git's short format.
func (w *Workspace) gitStatus(ctx context.Context, params map[string]string) (any, error) {
	repo, err := git.PlainOpen(w.root)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	status, err := wt.Status()
	if err != nil {
		return nil, err
	}

	if status.IsClean() {
		return "working tree clean", nil
	}

	lines := make([]string, 0, len(status))
	for path, st := range status {
		lines = append(lines, fmt.Sprintf("%c%c %s", st.Staging, st.Worktree, path))
	}
	// Map iteration order is random; keep the output stable.
	sort.Strings(lines)
	return lines, nil
}

// gitLog returns the most recent commits from HEAD.
func (w *Workspace) gitLog(ctx context.Context, params map[string]string) (any, error) {
	var req gitLogRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit <= 0 {
		limit = w.cfg.Tools.DefaultGitLogLimit
	}

	repo, err := git.PlainOpen(w.root)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	head, err := repo.Head()
	if err != nil {
		return nil, err
	}
	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var entries []gitLogEntry
	err = iter.ForEach(func(c *object.Commit) error {
		entries = append(entries, gitLogEntry{
			Hash:    c.Hash.String()[:8],
			Author:  c.Author.Name,
			Date:    c.Author.When.Format("2006-01-02 15:04"),
			Subject: firstLine(c.Message),
		})
		if len(entries) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// gitDiff returns the unified diff of the HEAD commit against its parent.
// Uncommitted changes show up in gitStatus, not here.
func (w *Workspace) gitDiff(ctx context.Context, params map[string]string) (any, error) {
	repo, err := git.PlainOpen(w.root)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	head, err := repo.Head()
	if err != nil {
		return nil, err
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, err
	}

	parent, err := commit.Parents().Next()
	if err != nil {
		// Root commit: nothing to diff against.
		return fmt.Sprintf("commit %s has no parent", commit.Hash.String()[:8]), nil
	}

	patch, err := parent.PatchContext(ctx, commit)
	if err != nil {
		return nil, err
	}
	return patch.String(), nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
