package workspace

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type searchContentRequest struct {
	Query string `mapstructure:"query"`
	Limit int    `mapstructure:"limit"`
}

// searchMatch is one content hit.
type searchMatch struct {
	Path string `json:"path"`
	Line int    `json:"line"`
	Text string `json:"text"`
}

// searchContent scans text files under the workspace root for a literal
// substring, case-sensitively, honoring gitignore. Overlong lines are
// truncated to the configured maximum.
func (w *Workspace) searchContent(ctx context.Context, params map[string]string) (any, error) {
	var req searchContentRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}
	if req.Query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}
	limit := clampLimit(req.Limit, w.cfg.Tools.DefaultSearchLimit, w.cfg.Tools.MaxSearchLimit)

	var matches []searchMatch
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
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
		if info, err := d.Info(); err != nil || info.Size() > w.cfg.Tools.MaxFileSize {
			return nil
		}

		found, err := w.searchFile(path, rel, req.Query, limit-len(matches))
		if err != nil {
			return nil // Unreadable or binary, skip.
		}
		matches = append(matches, found...)
		if len(matches) >= limit {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// searchFile scans one file for up to remaining matches.
func (w *Workspace) searchFile(abs, rel, query string, remaining int) ([]searchMatch, error) {
	f, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Sniff the head for binary content before scanning lines.
	head := make([]byte, 512)
	n, _ := f.Read(head)
	if isBinary(head[:n]) {
		return nil, &BinaryFileError{Path: rel}
	}
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}

	var matches []searchMatch
	maxLine := w.cfg.Tools.MaxLineLength

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !strings.Contains(line, query) {
			continue
		}
		if len(line) > maxLine {
			line = line[:maxLine]
		}
		matches = append(matches, searchMatch{Path: rel, Line: lineNo, Text: line})
		if len(matches) >= remaining {
			break
		}
	}
	// Scanner errors (token too long) end the file early; partial matches
	// are still useful.
	return matches, nil
}
