package chat

// ContextBundle is a read-only snapshot of editor/workspace state assembled
// by the host and handed in alongside a user message. The core only
// serializes it into prompt text.
type ContextBundle struct {
	CurrentFile  *FileContext
	RelatedFiles []FileRef
	ProjectInfo  *ProjectInfo
}

// FileContext describes the file open in the editor.
type FileContext struct {
	Path      string
	Content   string
	Selection string
}

// FileRef points at a related workspace file.
type FileRef struct {
	Path string
}

// ProjectInfo carries project metadata for the prompt.
type ProjectInfo struct {
	Name     string
	Manifest string
}
