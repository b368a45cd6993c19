package workspace

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

type listDirectoryRequest struct {
	Path  string `mapstructure:"path"`
	Limit int    `mapstructure:"limit"`
}

type findFileRequest struct {
	Pattern string `mapstructure:"pattern"`
	Limit   int    `mapstructure:"limit"`
}

// listDirectory returns the sorted, gitignore-filtered entries of one
// directory. Directories are suffixed with a slash.
func (w *Workspace) listDirectory(ctx context.Context, params map[string]string) (any, error) {
	var req listDirectoryRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	if req.Path == "" {
		req.Path = "."
	}
	limit := clampLimit(req.Limit, w.cfg.Tools.DefaultListLimit, w.cfg.Tools.MaxListLimit)

	abs, err := w.abs(req.Path)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		rel := w.rel(filepath.Join(abs, entry.Name()))
		if w.ignore.Ignored(rel, entry.IsDir()) {
			continue
		}
		name := entry.Name()
		if entry.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// findFile walks the workspace matching base names against a glob pattern.
func (w *Workspace) findFile(ctx context.Context, params map[string]string) (any, error) {
	var req findFileRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	if _, err := filepath.Match(req.Pattern, ""); err != nil {
		return nil, err
	}
	limit := clampLimit(req.Limit, w.cfg.Tools.DefaultListLimit, w.cfg.Tools.MaxListLimit)

	var matches []string
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Skip unreadable entries.
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel := w.rel(path)
		if w.ignore.Ignored(rel, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		if ok, _ := filepath.Match(req.Pattern, d.Name()); ok {
			matches = append(matches, rel)
			if len(matches) >= limit {
				return filepath.SkipAll
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
