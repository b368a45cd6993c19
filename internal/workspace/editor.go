package workspace

import (
	"context"
	"fmt"

	"github.com/Cyclone1070/sidekick/internal/registry"
)

// EditorHost is implemented by an embedding editor that exposes its
// current selection to the agent. The terminal front-end has no editor, so
// the selection tools are only registered when a host is provided.
type EditorHost interface {
	// Selection returns the path of the active file and the selected text.
	Selection() (path, text string, err error)
	// Select sets the selection in the given file to the byte range
	// [start, end).
	Select(path string, start, end int) error
}

type setSelectionRequest struct {
	Path  string `mapstructure:"path"`
	Start int    `mapstructure:"start"`
	End   int    `mapstructure:"end"`
}

// editorTools builds the selection tool definitions over a host.
func editorTools(host EditorHost) []registry.ToolDefinition {
	return []registry.ToolDefinition{
		{
			Name:        "get_selection",
			Description: "Get the file path and text currently selected in the editor.",
			Execute: func(ctx context.Context, params map[string]string) (any, error) {
				path, text, err := host.Selection()
				if err != nil {
					return nil, err
				}
				return map[string]any{"path": path, "text": text}, nil
			},
		},
		{
			Name:        "set_selection",
			Description: "Select a byte range in a file in the editor.",
			Params: []registry.ParamSpec{
				{Name: "path", Type: registry.ParamString, Description: "File to select in.", Required: true},
				{Name: "start", Type: registry.ParamNumber, Description: "Selection start byte offset.", Required: true},
				{Name: "end", Type: registry.ParamNumber, Description: "Selection end byte offset.", Required: true},
			},
			Execute: func(ctx context.Context, params map[string]string) (any, error) {
				var req setSelectionRequest
				if err := decodeParams(params, &req); err != nil {
					return nil, err
				}
				if req.End < req.Start {
					return nil, fmt.Errorf("end must be >= start")
				}
				if err := host.Select(req.Path, req.Start, req.End); err != nil {
					return nil, err
				}
				return fmt.Sprintf("selected %s [%d:%d]", req.Path, req.Start, req.End), nil
			},
		},
	}
}
