package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// ignoreMatcher wraps go-git's gitignore matcher. A nil matcher ignores
// nothing.
type ignoreMatcher struct {
	matcher gitignore.Matcher
}

// loadIgnoreMatcher reads .gitignore from the workspace root. Missing or
// unreadable files yield a matcher that never ignores.
func loadIgnoreMatcher(root string) *ignoreMatcher {
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return &ignoreMatcher{}
	}

	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	if len(patterns) == 0 {
		return &ignoreMatcher{}
	}

	return &ignoreMatcher{matcher: gitignore.NewMatcher(patterns)}
}

// Ignored reports whether the workspace-relative path is gitignored.
// The .git directory itself is always treated as ignored.
func (m *ignoreMatcher) Ignored(rel string, isDir bool) bool {
	if rel == "" {
		return false
	}
	parts := strings.Split(rel, "/")
	if parts[0] == ".git" {
		return true
	}
	if m.matcher == nil {
		return false
	}
	return m.matcher.Match(parts, isDir)
}
