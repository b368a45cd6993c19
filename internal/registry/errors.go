package registry

import (
	"fmt"
	"strings"
)

// ToolNotFoundError is returned when an invocation names an unregistered tool.
type ToolNotFoundError struct {
	Name string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool %q not found", e.Name)
}

// MissingParameterError is returned when one or more required parameters are
// absent. Missing lists every absent parameter, not just the first.
type MissingParameterError struct {
	Tool    string
	Missing []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("tool %q missing required parameters: %s", e.Tool, strings.Join(e.Missing, ", "))
}

// ToolExecutionError wraps a failure from the tool's own function. Its
// message is the underlying failure text verbatim; that text is what gets
// substituted into the response, prefixed with "Error: ".
type ToolExecutionError struct {
	Tool  string
	Cause error
}

func (e *ToolExecutionError) Error() string {
	return e.Cause.Error()
}

func (e *ToolExecutionError) Unwrap() error { return e.Cause }
