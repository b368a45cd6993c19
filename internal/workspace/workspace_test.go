package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/sidekick/internal/config"
)

// newTestWorkspace builds a workspace over a temp dir with the given files.
func newTestWorkspace(t *testing.T, files map[string]string) *Workspace {
	t.Helper()
	root := t.TempDir()
	for path, content := range files {
		abs := filepath.Join(root, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	w, err := New(root, config.DefaultConfig())
	require.NoError(t, err)
	return w
}

func TestNew_RejectsMissingRoot(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"), config.DefaultConfig())

	var rootErr *WorkspaceRootError
	assert.ErrorAs(t, err, &rootErr)
}

func TestNew_RejectsFileRoot(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := New(file, config.DefaultConfig())

	assert.Error(t, err)
}

func TestAbs_RejectsEscape(t *testing.T) {
	w := newTestWorkspace(t, nil)

	_, err := w.abs("../outside.txt")

	var outside *OutsideWorkspaceError
	assert.ErrorAs(t, err, &outside)
}

func TestAbs_AllowsRootItself(t *testing.T) {
	w := newTestWorkspace(t, nil)

	abs, err := w.abs(".")

	require.NoError(t, err)
	assert.Equal(t, w.Root(), abs)
}

func TestReadFile(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{"main.go": "package main\n"})

	got, err := w.readFile(context.Background(), map[string]string{"path": "main.go"})

	require.NoError(t, err)
	assert.Equal(t, "package main\n", got)
}

func TestReadFile_LineRange(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{"f.txt": "a\nb\nc\nd"})

	got, err := w.readFile(context.Background(), map[string]string{
		"path": "f.txt", "offset": "1", "limit": "2",
	})

	require.NoError(t, err)
	assert.Equal(t, "b\nc", got)
}

func TestReadFile_NegativeOffsetClamped(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{"f.txt": "a\nb\nc\nd"})

	got, err := w.readFile(context.Background(), map[string]string{
		"path": "f.txt", "offset": "-1", "limit": "2",
	})

	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestReadFile_NegativeLimitIgnored(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{"f.txt": "a\nb\nc"})

	got, err := w.readFile(context.Background(), map[string]string{
		"path": "f.txt", "offset": "1", "limit": "-5",
	})

	require.NoError(t, err)
	assert.Equal(t, "b\nc", got)
}

func TestReadFile_MissingFile(t *testing.T) {
	w := newTestWorkspace(t, nil)

	_, err := w.readFile(context.Background(), map[string]string{"path": "nope.txt"})

	assert.Error(t, err)
}

func TestReadFile_RejectsBinary(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{"blob": "ab\x00cd"})

	_, err := w.readFile(context.Background(), map[string]string{"path": "blob"})

	var binErr *BinaryFileError
	assert.ErrorAs(t, err, &binErr)
}

func TestReadFile_RejectsEscape(t *testing.T) {
	w := newTestWorkspace(t, nil)

	_, err := w.readFile(context.Background(), map[string]string{"path": "../../etc/passwd"})

	var outside *OutsideWorkspaceError
	assert.ErrorAs(t, err, &outside)
}

func TestWriteFile_CreatesParents(t *testing.T) {
	w := newTestWorkspace(t, nil)

	_, err := w.writeFile(context.Background(), map[string]string{
		"path": "deep/nested/f.txt", "content": "hello",
	})

	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(w.Root(), "deep/nested/f.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestEditFile_UniqueMatch(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{"f.go": "var x = 1\nvar y = 2\n"})

	_, err := w.editFile(context.Background(), map[string]string{
		"path": "f.go", "old_text": "var y = 2", "new_text": "var y = 3",
	})

	require.NoError(t, err)
	data, _ := os.ReadFile(filepath.Join(w.Root(), "f.go"))
	assert.Equal(t, "var x = 1\nvar y = 3\n", string(data))
}

func TestEditFile_AmbiguousMatch(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{"f.go": "x\nx\n"})

	_, err := w.editFile(context.Background(), map[string]string{
		"path": "f.go", "old_text": "x", "new_text": "y",
	})

	var matchErr *EditMatchError
	require.ErrorAs(t, err, &matchErr)
	assert.Equal(t, 2, matchErr.Matches)
}

func TestEditFile_NoMatch(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{"f.go": "abc"})

	_, err := w.editFile(context.Background(), map[string]string{
		"path": "f.go", "old_text": "zzz", "new_text": "y",
	})

	var matchErr *EditMatchError
	require.ErrorAs(t, err, &matchErr)
	assert.Equal(t, 0, matchErr.Matches)
}

func TestListDirectory(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{
		"b.txt":     "b",
		"a.txt":     "a",
		"sub/c.txt": "c",
	})

	got, err := w.listDirectory(context.Background(), map[string]string{})

	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "sub/"}, got)
}

func TestListDirectory_GitignoreFiltered(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{
		".gitignore":     "ignored.txt\nbuild/\n",
		"ignored.txt":    "x",
		"kept.txt":       "x",
		"build/out.bin":  "x",
		"src/kept.go":    "x",
		".git/HEAD":      "ref: refs/heads/main",
	})

	got, err := w.listDirectory(context.Background(), map[string]string{})

	require.NoError(t, err)
	assert.Equal(t, []string{".gitignore", "kept.txt", "src/"}, got)
}

func TestFindFile(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{
		"main.go":        "x",
		"sub/helper.go":  "x",
		"sub/notes.txt":  "x",
		"deep/a/util.go": "x",
	})

	got, err := w.findFile(context.Background(), map[string]string{"pattern": "*.go"})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"main.go", "sub/helper.go", "deep/a/util.go"}, got)
}

func TestFindFile_BadPattern(t *testing.T) {
	w := newTestWorkspace(t, nil)

	_, err := w.findFile(context.Background(), map[string]string{"pattern": "[unclosed"})

	assert.Error(t, err)
}

func TestSearchContent(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{
		"a.go": "package main\nfunc Hello() {}\n",
		"b.go": "package main\n// Hello caller\n",
	})

	got, err := w.searchContent(context.Background(), map[string]string{"query": "Hello"})

	require.NoError(t, err)
	matches := got.([]searchMatch)
	require.Len(t, matches, 2)
	assert.ElementsMatch(t, []string{"a.go", "b.go"}, []string{matches[0].Path, matches[1].Path})
}

func TestSearchContent_HonorsLimit(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{
		"f.txt": "hit\nhit\nhit\nhit\n",
	})

	got, err := w.searchContent(context.Background(), map[string]string{
		"query": "hit", "limit": "2",
	})

	require.NoError(t, err)
	assert.Len(t, got.([]searchMatch), 2)
}

func TestSearchContent_SkipsIgnored(t *testing.T) {
	w := newTestWorkspace(t, map[string]string{
		".gitignore": "vendor/\n",
		"vendor/x.go": "secret needle",
		"main.go":     "needle here",
	})

	got, err := w.searchContent(context.Background(), map[string]string{"query": "needle"})

	require.NoError(t, err)
	matches := got.([]searchMatch)
	require.Len(t, matches, 1)
	assert.Equal(t, "main.go", matches[0].Path)
}

func TestSearchContent_EmptyQuery(t *testing.T) {
	w := newTestWorkspace(t, nil)

	_, err := w.searchContent(context.Background(), map[string]string{"query": ""})

	assert.Error(t, err)
}

func TestDecodeParams_WeakTyping(t *testing.T) {
	var req readFileRequest

	err := decodeParams(map[string]string{"path": "f", "offset": "3", "limit": "7"}, &req)

	require.NoError(t, err)
	assert.Equal(t, readFileRequest{Path: "f", Offset: 3, Limit: 7}, req)
}

func TestDecodeParams_BadNumber(t *testing.T) {
	var req readFileRequest

	err := decodeParams(map[string]string{"path": "f", "offset": "lots"}, &req)

	assert.Error(t, err)
}

func TestTools_CatalogComplete(t *testing.T) {
	w := newTestWorkspace(t, nil)

	defs := w.Tools(nil)

	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{
		"read_file", "write_file", "edit_file", "list_directory",
		"find_file", "search_content", "git_status", "git_log",
		"git_diff", "diagnostics",
	}, names)
}

func TestTools_EditorHostAddsSelectionTools(t *testing.T) {
	w := newTestWorkspace(t, nil)

	defs := w.Tools(stubHost{})

	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.Name)
	}
	assert.Contains(t, names, "get_selection")
	assert.Contains(t, names, "set_selection")
}

type stubHost struct{}

func (stubHost) Selection() (string, string, error)  { return "f.go", "text", nil }
func (stubHost) Select(string, int, int) error       { return nil }
