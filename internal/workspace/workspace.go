// Package workspace implements the local capabilities the model may invoke
// through the tool registry: file I/O, directory listing, content search,
// git inspection, and diagnostics, all confined to a single workspace root.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/Cyclone1070/sidekick/internal/config"
)

// Workspace provides path-confined access to one directory tree.
// All tool operations resolve paths through it.
type Workspace struct {
	root   string
	cfg    *config.Config
	ignore *ignoreMatcher
}

// New canonicalises root (absolute, symlinks resolved, must be a
// directory) and loads .gitignore patterns if present.
func New(root string, cfg *config.Config) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &WorkspaceRootError{Root: root, Cause: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, &WorkspaceRootError{Root: abs, Cause: err}
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, &WorkspaceRootError{Root: resolved, Cause: err}
	}
	if !info.IsDir() {
		return nil, &WorkspaceRootError{Root: resolved, Cause: errors.New("not a directory")}
	}

	return &Workspace{
		root:   resolved,
		cfg:    cfg,
		ignore: loadIgnoreMatcher(resolved),
	}, nil
}

// Root returns the canonical workspace root.
func (w *Workspace) Root() string { return w.root }

// abs resolves path (absolute or workspace-relative) and validates it does
// not escape the workspace root.
func (w *Workspace) abs(path string) (string, error) {
	var abs string
	if filepath.IsAbs(path) {
		abs = filepath.Clean(path)
	} else {
		abs = filepath.Clean(filepath.Join(w.root, path))
	}

	if abs != w.root && !strings.HasPrefix(abs, w.root+string(filepath.Separator)) {
		return "", &OutsideWorkspaceError{Path: path}
	}
	return abs, nil
}

// rel returns the slash-separated workspace-relative form of abs.
func (w *Workspace) rel(abs string) string {
	rel, err := filepath.Rel(w.root, abs)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

// decodeParams decodes a wire parameter map into a typed request struct.
// Wire values are always strings; weak typing coerces them to the numeric
// and boolean fields tools declare.
func decodeParams(params map[string]string, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

// clampLimit applies the default when limit is unset and the hard maximum
// otherwise.
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
