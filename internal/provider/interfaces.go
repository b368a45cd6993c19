// Package provider defines the model backend contract the chat core
// depends on. Implementations live in subpackages (gemini).
package provider

import (
	"context"

	"github.com/Cyclone1070/sidekick/internal/history"
)

// Provider represents the interface to the language model backend.
type Provider interface {
	// SendTurn sends one composed turn and the bounded history to the
	// model and returns its raw text. The call is network-bound and may
	// block until ctx is cancelled; retries are the caller's concern.
	SendTurn(ctx context.Context, system string, hist []history.Turn, prompt string) (string, error)
}
