package workspace

import "fmt"

// OutsideWorkspaceError is returned when a path escapes the workspace root.
type OutsideWorkspaceError struct {
	Path string
}

func (e *OutsideWorkspaceError) Error() string {
	return fmt.Sprintf("path %q is outside the workspace", e.Path)
}

// BinaryFileError is returned when a text operation hits binary content.
type BinaryFileError struct {
	Path string
}

func (e *BinaryFileError) Error() string {
	return fmt.Sprintf("file %q appears to be binary", e.Path)
}

// TooLargeError is returned when a file exceeds the configured size limit.
type TooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file %q is %d bytes, exceeds limit of %d", e.Path, e.Size, e.Limit)
}

// EditMatchError is returned when edit_file's old text does not match
// exactly once.
type EditMatchError struct {
	Path    string
	Matches int
}

func (e *EditMatchError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("old_text not found in %q", e.Path)
	}
	return fmt.Sprintf("old_text matches %d times in %q, must match exactly once", e.Matches, e.Path)
}

// WorkspaceRootError is returned when the workspace root cannot be used.
type WorkspaceRootError struct {
	Root  string
	Cause error
}

func (e *WorkspaceRootError) Error() string {
	return fmt.Sprintf("invalid workspace root %q: %v", e.Root, e.Cause)
}

func (e *WorkspaceRootError) Unwrap() error { return e.Cause }
