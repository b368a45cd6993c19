package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// binarySampleSize is how many leading bytes are checked for NUL when
// deciding whether content is binary.
const binarySampleSize = 8192

type readFileRequest struct {
	Path   string `mapstructure:"path"`
	Offset int    `mapstructure:"offset"`
	Limit  int    `mapstructure:"limit"`
}

type writeFileRequest struct {
	Path    string `mapstructure:"path"`
	Content string `mapstructure:"content"`
}

type editFileRequest struct {
	Path    string `mapstructure:"path"`
	OldText string `mapstructure:"old_text"`
	NewText string `mapstructure:"new_text"`
}

// readFile returns file content, size-capped and rejected for binary
// files. Offset and limit select a line range of the decoded text.
func (w *Workspace) readFile(ctx context.Context, params map[string]string) (any, error) {
	var req readFileRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}

	abs, err := w.abs(req.Path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%q is a directory", req.Path)
	}
	if info.Size() > w.cfg.Tools.MaxFileSize {
		return nil, &TooLargeError{Path: req.Path, Size: info.Size(), Limit: w.cfg.Tools.MaxFileSize}
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	if isBinary(data) {
		return nil, &BinaryFileError{Path: req.Path}
	}

	// Offset and limit are model-supplied; negatives mean "unset".
	content := string(data)
	if req.Offset > 0 || req.Limit > 0 {
		lines := strings.Split(content, "\n")
		start := req.Offset
		if start < 0 {
			start = 0
		}
		if start > len(lines) {
			start = len(lines)
		}
		end := len(lines)
		if req.Limit > 0 && start+req.Limit < end {
			end = start + req.Limit
		}
		content = strings.Join(lines[start:end], "\n")
	}

	return content, nil
}

// writeFile creates or overwrites a file, creating parent directories.
func (w *Workspace) writeFile(ctx context.Context, params map[string]string) (any, error) {
	var req writeFileRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}

	abs, err := w.abs(req.Path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(abs, []byte(req.Content), 0o644); err != nil {
		return nil, err
	}

	return fmt.Sprintf("wrote %d bytes to %s", len(req.Content), req.Path), nil
}

// editFile replaces old_text with new_text; old_text must match exactly
// once so the model cannot silently edit the wrong spot.
func (w *Workspace) editFile(ctx context.Context, params map[string]string) (any, error) {
	var req editFileRequest
	if err := decodeParams(params, &req); err != nil {
		return nil, err
	}

	abs, err := w.abs(req.Path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	if isBinary(data) {
		return nil, &BinaryFileError{Path: req.Path}
	}

	content := string(data)
	matches := strings.Count(content, req.OldText)
	if matches != 1 {
		return nil, &EditMatchError{Path: req.Path, Matches: matches}
	}

	content = strings.Replace(content, req.OldText, req.NewText, 1)
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return nil, err
	}

	return fmt.Sprintf("edited %s", req.Path), nil
}

// isBinary checks for NUL bytes in the leading sample, treating UTF-16 and
// UTF-32 BOMs as text.
func isBinary(content []byte) bool {
	if len(content) >= 2 {
		if (content[0] == 0xFF && content[1] == 0xFE) ||
			(content[0] == 0xFE && content[1] == 0xFF) {
			return false
		}
	}

	sample := content
	if len(sample) > binarySampleSize {
		sample = sample[:binarySampleSize]
	}
	for _, b := range sample {
		if b == 0 {
			return true
		}
	}
	return false
}
