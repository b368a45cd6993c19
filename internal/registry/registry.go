// Package registry holds the named tool definitions the model may invoke:
// registration, catalog listing for the prompt, and validated dispatch.
package registry

import (
	"context"
	"fmt"
	"time"
)

// ParamType is the primitive type tag of a tool parameter. Values arrive
// from the wire as strings; coercion to number/boolean is the tool's job.
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamNumber  ParamType = "number"
	ParamBoolean ParamType = "boolean"
)

// ParamSpec describes one tool parameter.
type ParamSpec struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
}

// ExecuteFunc runs a tool against the workspace. The returned value is
// tool-specific: a string, a map, or a slice.
type ExecuteFunc func(ctx context.Context, params map[string]string) (any, error)

// ToolDefinition is an immutable tool entry. Created at registration time;
// the registry never mutates it afterward.
type ToolDefinition struct {
	Name        string
	Description string
	Params      []ParamSpec
	Execute     ExecuteFunc
}

// CatalogEntry is one tool's schema as serialized into the model prompt.
type CatalogEntry struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Parameters  map[string]ParamInfo `json:"parameters"`
	Required    []string             `json:"required"`
}

// ParamInfo is the catalog form of a parameter.
type ParamInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ExecutionRecord captures one completed tool invocation.
type ExecutionRecord struct {
	Name       string
	Parameters map[string]string
	Value      any
	Err        string
	Timestamp  time.Time
}

// Registry manages tool registration and dispatch. It is not safe for
// concurrent use; each chat session owns its own instance.
type Registry struct {
	defs  map[string]ToolDefinition
	order []string
	last  map[string]ExecutionRecord
}

// New creates an empty Registry and registers the given tools in order.
func New(tools ...ToolDefinition) *Registry {
	r := &Registry{
		defs: make(map[string]ToolDefinition),
		last: make(map[string]ExecutionRecord),
	}
	for _, def := range tools {
		r.Register(def)
	}
	return r
}

// Register adds or replaces the entry for def.Name. Re-registering a name
// replaces the definition but keeps its original catalog position; no
// uniqueness error is raised, last registration wins.
func (r *Registry) Register(def ToolDefinition) {
	if _, exists := r.defs[def.Name]; !exists {
		r.order = append(r.order, def.Name)
	}
	r.defs[def.Name] = def
}

// List returns the catalog of registered tools in insertion order.
func (r *Registry) List() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(r.order))
	for _, name := range r.order {
		def := r.defs[name]
		params := make(map[string]ParamInfo, len(def.Params))
		required := make([]string, 0)
		for _, p := range def.Params {
			params[p.Name] = ParamInfo{Type: string(p.Type), Description: p.Description}
			if p.Required {
				required = append(required, p.Name)
			}
		}
		entries = append(entries, CatalogEntry{
			Name:        def.Name,
			Description: def.Description,
			Parameters:  params,
			Required:    required,
		})
	}
	return entries
}

// Invoke validates params against the tool's schema and runs it. Failures
// come back as tagged Err results, never as panics:
//   - unknown name: ErrKindToolNotFound
//   - absent required parameters: ErrKindMissingParameter, listing all of them
//   - the tool's own failure: ErrKindToolExecution with the underlying message
//
// When the tool function actually ran, the outcome is also cached per tool
// name (newer overwrites older) for follow-up reference via LastResult.
func (r *Registry) Invoke(ctx context.Context, name string, params map[string]string) Result {
	def, ok := r.defs[name]
	if !ok {
		return Err(ErrKindToolNotFound, (&ToolNotFoundError{Name: name}).Error())
	}

	var missing []string
	for _, p := range def.Params {
		if !p.Required {
			continue
		}
		if _, present := params[p.Name]; !present {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		return Err(ErrKindMissingParameter, (&MissingParameterError{Tool: name, Missing: missing}).Error())
	}

	value, err := runTool(ctx, def, params)
	record := ExecutionRecord{
		Name:       name,
		Parameters: params,
		Value:      value,
		Timestamp:  time.Now(),
	}
	if err != nil {
		execErr := &ToolExecutionError{Tool: name, Cause: err}
		record.Value = nil
		record.Err = execErr.Error()
		r.last[name] = record
		return Err(ErrKindToolExecution, execErr.Error())
	}

	r.last[name] = record
	return Ok(value)
}

// runTool executes def.Execute, converting a panic into an error so one
// misbehaving tool cannot abort the dispatch pass.
func runTool(ctx context.Context, def ToolDefinition, params map[string]string) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return def.Execute(ctx, params)
}

// LastResult returns the most recent execution record for a tool name.
func (r *Registry) LastResult(name string) (ExecutionRecord, bool) {
	rec, ok := r.last[name]
	return rec, ok
}
