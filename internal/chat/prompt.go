package chat

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Cyclone1070/sidekick/internal/registry"
)

// defaultSystemInstructions is the base system prompt. The tool protocol
// section is appended only when tool usage is enabled.
const defaultSystemInstructions = `You are Sidekick, a coding assistant embedded in the user's editor.
You answer questions about the user's workspace and help with code changes.
Be concise. Prefer showing code over describing it.`

const toolProtocolInstructions = `To run a tool, emit a block in exactly this form inside your response:

<tool>
<name>TOOL_NAME</name>
<parameters>
<param name="PARAM_NAME">PARAM_VALUE</param>
</parameters>
</tool>

Each block runs one tool. Results replace the block before the user sees
your response. All parameter values are plain text.`

// composeSystem builds the system instructions, appending the serialized
// tool catalog when tool usage is enabled.
func composeSystem(base string, catalog []registry.CatalogEntry, toolsEnabled bool) string {
	if !toolsEnabled {
		return base
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("\n\n")
	b.WriteString(toolProtocolInstructions)
	b.WriteString("\n\nAvailable tools:\n")

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		// Catalog entries are plain data; this cannot realistically fail.
		data = []byte("[]")
	}
	b.Write(data)

	return b.String()
}

// composePrompt serializes the optional context bundle ahead of the user
// text for one turn.
func composePrompt(text string, bundle *ContextBundle) string {
	if bundle == nil {
		return text
	}

	var b strings.Builder

	if bundle.CurrentFile != nil {
		fmt.Fprintf(&b, "Current file: %s\n", bundle.CurrentFile.Path)
		if bundle.CurrentFile.Selection != "" {
			fmt.Fprintf(&b, "Selected text:\n%s\n", bundle.CurrentFile.Selection)
		}
		if bundle.CurrentFile.Content != "" {
			fmt.Fprintf(&b, "File content:\n%s\n", bundle.CurrentFile.Content)
		}
		b.WriteString("\n")
	}

	if len(bundle.RelatedFiles) > 0 {
		b.WriteString("Related files:\n")
		for _, f := range bundle.RelatedFiles {
			fmt.Fprintf(&b, "- %s\n", f.Path)
		}
		b.WriteString("\n")
	}

	if bundle.ProjectInfo != nil {
		fmt.Fprintf(&b, "Project: %s\n", bundle.ProjectInfo.Name)
		if bundle.ProjectInfo.Manifest != "" {
			fmt.Fprintf(&b, "Manifest:\n%s\n", bundle.ProjectInfo.Manifest)
		}
		b.WriteString("\n")
	}

	b.WriteString(text)
	return b.String()
}
