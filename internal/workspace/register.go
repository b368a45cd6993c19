package workspace

import (
	"github.com/Cyclone1070/sidekick/internal/registry"
)

// Tools returns the registry definitions for every workspace capability.
// Pass a nil host to omit the editor selection tools.
func (w *Workspace) Tools(host EditorHost) []registry.ToolDefinition {
	defs := []registry.ToolDefinition{
		{
			Name:        "read_file",
			Description: "Read a text file from the workspace. Optionally a line range.",
			Params: []registry.ParamSpec{
				{Name: "path", Type: registry.ParamString, Description: "Workspace-relative file path.", Required: true},
				{Name: "offset", Type: registry.ParamNumber, Description: "First line to read (0-based)."},
				{Name: "limit", Type: registry.ParamNumber, Description: "Maximum number of lines."},
			},
			Execute: w.readFile,
		},
		{
			Name:        "write_file",
			Description: "Create or overwrite a file with the given content.",
			Params: []registry.ParamSpec{
				{Name: "path", Type: registry.ParamString, Description: "Workspace-relative file path.", Required: true},
				{Name: "content", Type: registry.ParamString, Description: "Full file content.", Required: true},
			},
			Execute: w.writeFile,
		},
		{
			Name:        "edit_file",
			Description: "Replace text in a file. old_text must occur exactly once.",
			Params: []registry.ParamSpec{
				{Name: "path", Type: registry.ParamString, Description: "Workspace-relative file path.", Required: true},
				{Name: "old_text", Type: registry.ParamString, Description: "Exact text to replace.", Required: true},
				{Name: "new_text", Type: registry.ParamString, Description: "Replacement text.", Required: true},
			},
			Execute: w.editFile,
		},
		{
			Name:        "list_directory",
			Description: "List a directory's entries, gitignored files excluded.",
			Params: []registry.ParamSpec{
				{Name: "path", Type: registry.ParamString, Description: "Directory to list, default workspace root."},
				{Name: "limit", Type: registry.ParamNumber, Description: "Maximum entries to return."},
			},
			Execute: w.listDirectory,
		},
		{
			Name:        "find_file",
			Description: "Find files whose name matches a glob pattern.",
			Params: []registry.ParamSpec{
				{Name: "pattern", Type: registry.ParamString, Description: "Glob pattern, e.g. *.go.", Required: true},
				{Name: "limit", Type: registry.ParamNumber, Description: "Maximum matches to return."},
			},
			Execute: w.findFile,
		},
		{
			Name:        "search_content",
			Description: "Search file contents for a literal string.",
			Params: []registry.ParamSpec{
				{Name: "query", Type: registry.ParamString, Description: "Text to search for.", Required: true},
				{Name: "limit", Type: registry.ParamNumber, Description: "Maximum matches to return."},
			},
			Execute: w.searchContent,
		},
		{
			Name:        "git_status",
			Description: "Show the git working tree status.",
			Execute:     w.gitStatus,
		},
		{
			Name:        "git_log",
			Description: "Show recent commits.",
			Params: []registry.ParamSpec{
				{Name: "limit", Type: registry.ParamNumber, Description: "Number of commits to show."},
			},
			Execute: w.gitLog,
		},
		{
			Name:        "git_diff",
			Description: "Show the diff of the most recent commit.",
			Execute:     w.gitDiff,
		},
		{
			Name:        "diagnostics",
			Description: "Run the project's diagnostics command and report findings.",
			Execute:     w.diagnostics,
		},
	}

	if host != nil {
		defs = append(defs, editorTools(host)...)
	}
	return defs
}

// RegisterAll registers every workspace tool on the given registry.
func (w *Workspace) RegisterAll(reg *registry.Registry, host EditorHost) {
	for _, def := range w.Tools(host) {
		reg.Register(def)
	}
}
