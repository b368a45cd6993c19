package registry

// ErrKind classifies invocation failures so callers can branch without
// inspecting error types.
type ErrKind string

const (
	ErrKindNone             ErrKind = ""
	ErrKindToolNotFound     ErrKind = "tool_not_found"
	ErrKindMissingParameter ErrKind = "missing_parameter"
	ErrKindToolExecution    ErrKind = "tool_execution"
)

// Result is the tagged outcome of an invocation: Ok carries a value, Err
// carries a kind and message. Invoke never panics or returns a bare error;
// failures travel as values so dispatch handling is a plain branch.
type Result struct {
	Value   any
	Kind    ErrKind
	Message string
}

// Ok wraps a successful tool value.
func Ok(value any) Result {
	return Result{Value: value}
}

// Err wraps a failure kind and message.
func Err(kind ErrKind, message string) Result {
	return Result{Kind: kind, Message: message}
}

// OK reports whether the invocation succeeded.
func (r Result) OK() bool { return r.Kind == ErrKindNone }
