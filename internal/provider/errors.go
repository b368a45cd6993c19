package provider

import (
	"errors"
	"fmt"
)

// Sentinel errors for common backend failures.
var (
	ErrContentBlocked = errors.New("content blocked by safety filters")
	ErrRateLimit      = errors.New("rate limit exceeded")
	ErrAuthentication = errors.New("authentication failed")
	ErrEmptyResponse  = errors.New("model returned no candidates")
)

// BackendError wraps a model backend failure. A backend failure aborts the
// turn before any dispatch occurs; the orchestrator surfaces it to the
// caller instead of producing partial text.
type BackendError struct {
	Cause error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("model backend: %v", e.Cause)
}

func (e *BackendError) Unwrap() error { return e.Cause }
