// Package dispatch executes parsed tool calls against the registry and
// substitutes result or error markup back into the model's text.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Cyclone1070/sidekick/internal/protocol"
	"github.com/Cyclone1070/sidekick/internal/registry"
)

// Dispatcher rewrites model text by running each tool call in source order.
type Dispatcher struct {
	registry *registry.Registry
}

// New creates a Dispatcher over the given registry.
func New(reg *registry.Registry) *Dispatcher {
	return &Dispatcher{registry: reg}
}

// Run processes calls strictly left to right, sequentially: later calls may
// depend on earlier side effects, and replacement order matters. Every
// parsed call yields exactly one substitution and one record, success or
// failure. Substitution replaces the first remaining occurrence of the
// call's source span; when two calls share byte-identical span text only
// the first remaining occurrence is touched per call (known limitation of
// the span-replacement scheme, kept as-is).
func (d *Dispatcher) Run(ctx context.Context, text string, calls []protocol.ToolCall) (string, []registry.ExecutionRecord) {
	records := make([]registry.ExecutionRecord, 0, len(calls))

	for _, call := range calls {
		res := d.registry.Invoke(ctx, call.Name, call.Parameters)

		record := registry.ExecutionRecord{
			Name:       call.Name,
			Parameters: call.Parameters,
			Timestamp:  time.Now(),
		}

		var block string
		if res.OK() {
			record.Value = res.Value
			block = protocol.ResultBlock(call.Name, Serialize(res.Value))
		} else {
			record.Err = res.Message
			block = protocol.ErrorBlock(call.Name, res.Message)
		}

		records = append(records, record)
		text = strings.Replace(text, call.SourceSpan, block, 1)
	}

	return text, records
}

// Serialize renders a tool value for the result block: strings pass
// through verbatim, anything structured is pretty-printed as indented JSON.
func Serialize(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
