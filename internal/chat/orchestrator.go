// Package chat drives one request/response cycle against the model
// backend: prompt composition, tool dispatch over the response text, and
// conversation state updates.
package chat

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/Cyclone1070/sidekick/internal/dispatch"
	"github.com/Cyclone1070/sidekick/internal/history"
	"github.com/Cyclone1070/sidekick/internal/protocol"
	"github.com/Cyclone1070/sidekick/internal/provider"
	"github.com/Cyclone1070/sidekick/internal/registry"
)

// ErrSuperseded is returned for a turn whose backend reply arrived after a
// newer user message started. The stale reply is discarded; nothing beyond
// the turn's own user append is committed.
var ErrSuperseded = errors.New("turn superseded by a newer message")

// StatusFunc receives ephemeral phase updates ("thinking", "executing").
type StatusFunc func(phase, message string)

// Reply is the outcome of one chat turn.
type Reply struct {
	// Text is the processed response with tool calls substituted.
	Text string
	// OriginalText is the model's raw response, tool-call markup intact.
	OriginalText string
	// ToolResults lists every tool invocation of the turn, in order.
	ToolResults []registry.ExecutionRecord
	// Err is set when the turn failed before dispatch (backend errors).
	Err error
}

// Options configures an Orchestrator.
type Options struct {
	// SystemInstructions overrides the built-in system prompt.
	SystemInstructions string
	// EnableTools controls whether the tool catalog and protocol
	// instructions are injected into the system prompt.
	EnableTools bool
	// HistoryLimit caps the conversation log (default history.DefaultLimit).
	HistoryLimit int
	// Status receives phase updates; nil discards them.
	Status StatusFunc
	// Logf receives parser diagnostics; nil discards them.
	Logf func(format string, args ...any)
}

// Orchestrator processes one user message at a time to completion. It is
// not safe for overlapping turns against the same instance; each session
// owns its own Orchestrator, Registry, and Log.
type Orchestrator struct {
	provider   provider.Provider
	registry   *registry.Registry
	parser     *protocol.Parser
	dispatcher *dispatch.Dispatcher
	log        *history.Log

	system      string
	enableTools bool
	status      StatusFunc

	// seq numbers turns so a stale backend reply can be detected after a
	// newer message has started while this one was awaiting the model.
	seq atomic.Uint64
}

// New creates an Orchestrator owning its registry and conversation log.
func New(p provider.Provider, reg *registry.Registry, opts Options) *Orchestrator {
	system := opts.SystemInstructions
	if system == "" {
		system = defaultSystemInstructions
	}
	status := opts.Status
	if status == nil {
		status = func(string, string) {}
	}

	return &Orchestrator{
		provider:    p,
		registry:    reg,
		parser:      protocol.NewParser(opts.Logf),
		dispatcher:  dispatch.New(reg),
		log:         history.NewLog(opts.HistoryLimit),
		system:      system,
		enableTools: opts.EnableTools,
		status:      status,
	}
}

// HandleUserMessage runs one full turn: compose, send, dispatch, update.
// The returned Reply carries either the processed text and tool results or
// a terminal error; the orchestrator is always ready for the next message
// afterward.
func (o *Orchestrator) HandleUserMessage(ctx context.Context, text string, bundle *ContextBundle) Reply {
	turn := o.seq.Add(1)

	// Composing
	system := composeSystem(o.system, o.registry.List(), o.enableTools)
	prompt := composePrompt(text, bundle)
	hist := o.log.Current()

	// The user turn is committed up front and is not rolled back on
	// failure: it reflects what was actually asked.
	o.log.Append(history.RoleUser, text)

	// AwaitingModel
	o.status("thinking", "Waiting for model...")
	raw, err := o.provider.SendTurn(ctx, system, hist, prompt)

	if o.seq.Load() != turn {
		// A newer message started while this one was in flight. Discard
		// the reply rather than committing a stale model turn.
		return Reply{Err: ErrSuperseded}
	}

	if err != nil {
		// Keep the chat log coherent: record the failure as a model turn.
		o.log.Append(history.RoleModel, fmt.Sprintf("Error: %v", err))
		return Reply{Err: err}
	}

	// Dispatching: history keeps the raw text so the model sees its own
	// literal tool-call syntax in later turns.
	o.log.Append(history.RoleModel, raw)

	calls := o.parser.Parse(raw)
	if len(calls) > 0 {
		o.status("executing", fmt.Sprintf("Running %d tool call(s)...", len(calls)))
	}
	processed, records := o.dispatcher.Run(ctx, raw, calls)

	// Updating: an additional processed turn lets later turns see resolved
	// tool output. Additive, the raw turn above stays.
	if len(records) > 0 {
		o.log.Append(history.RoleModel, processed)
	}

	return Reply{
		Text:         processed,
		OriginalText: raw,
		ToolResults:  records,
	}
}

// AvailableTools returns the registered tool catalog.
func (o *Orchestrator) AvailableTools() []registry.CatalogEntry {
	return o.registry.List()
}

// RegisterTool adds or replaces a tool definition.
func (o *Orchestrator) RegisterTool(def registry.ToolDefinition) {
	o.registry.Register(def)
}

// ClearHistory empties the conversation log.
func (o *Orchestrator) ClearHistory() {
	o.log.Clear()
}

// History returns a snapshot of the retained conversation turns.
func (o *Orchestrator) History() []history.Turn {
	return o.log.Current()
}
