// Package tools holds the process-wide registry of executable tools and
// dispatches normalized tool calls to their handlers. Builtin tools are
// declaration-only (the provider executes them) and are rejected here.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/AuriMyth/aury-ai-model/core/callname"
	"github.com/AuriMyth/aury-ai-model/core/schema"
	"github.com/AuriMyth/aury-ai-model/core/toolspec"
)

// Handler is the function signature for tool implementations.
// Handlers receive the request context and JSON-encoded arguments from the LLM.
type Handler func(ctx context.Context, args json.RawMessage) (Result, error)

// Result is the tool execution output that feeds back into the next LLM turn.
// CallID correlates the result with the originating call; when the provider
// omitted the call id a fresh one is assigned during dispatch.
// IsError signals to the LLM that the tool invocation failed.
type Result struct {
	CallID  string
	Content string
	IsError bool
}

type entry struct {
	spec    toolspec.ToolSpec
	handler Handler
}

type registry struct {
	entries map[string]entry
	order   []string
	mu      sync.RWMutex
}

var register = &registry{
	entries: make(map[string]entry),
}

// dispatchName derives the registry key for a spec: the bare name for
// function tools and the encoded synthetic name for remote tools, matching
// how each is declared to a provider without native MCP support.
func dispatchName(spec toolspec.ToolSpec) (string, error) {
	switch spec.Kind() {
	case toolspec.KindFunction:
		fn, ok := spec.Function()
		if !ok {
			return "", ErrInvalidSpec
		}
		return fn.Name, nil
	case toolspec.KindMCP:
		mcp, ok := spec.MCP()
		if !ok {
			return "", ErrInvalidSpec
		}
		return callname.Encode(mcp.ServerID, mcp.Name), nil
	case toolspec.KindBuiltin:
		return "", ErrNotDispatchable
	}
	return "", ErrInvalidSpec
}

// Register adds a new tool to the global registry.
// Returns ErrAlreadyExists if a tool with the same name is already registered.
// Use Replace to update an existing tool's handler.
// Thread-safe for concurrent registration.
func Register(spec toolspec.ToolSpec, handler Handler) error {
	name, err := dispatchName(spec)
	if err != nil {
		return err
	}
	if name == "" {
		return ErrEmptyName
	}

	register.mu.Lock()
	defer register.mu.Unlock()

	if _, exists := register.entries[name]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, name)
	}

	register.entries[name] = entry{spec: spec, handler: handler}
	register.order = append(register.order, name)
	return nil
}

// Replace updates an existing tool's spec and handler.
// Returns ErrNotFound if no tool with the same dispatch name is registered.
// Thread-safe for concurrent access.
func Replace(spec toolspec.ToolSpec, handler Handler) error {
	name, err := dispatchName(spec)
	if err != nil {
		return err
	}
	if name == "" {
		return ErrEmptyName
	}

	register.mu.Lock()
	defer register.mu.Unlock()

	if _, exists := register.entries[name]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	register.entries[name] = entry{spec: spec, handler: handler}
	return nil
}

// Get retrieves a handler by dispatch name.
// Returns the handler and true if found, nil and false otherwise.
// Thread-safe for concurrent access.
func Get(name string) (Handler, bool) {
	register.mu.RLock()
	defer register.mu.RUnlock()

	e, exists := register.entries[name]
	if !exists {
		return nil, false
	}
	return e.handler, true
}

// List returns the specs of all registered tools in registration order,
// ready to hand to the provider mapper.
// Thread-safe for concurrent access.
func List() []toolspec.ToolSpec {
	register.mu.RLock()
	defer register.mu.RUnlock()

	specs := make([]toolspec.ToolSpec, 0, len(register.entries))
	for _, name := range register.order {
		if e, ok := register.entries[name]; ok {
			specs = append(specs, e.spec)
		}
	}
	return specs
}

// Execute dispatches a normalized tool call to the registered handler.
// Remote calls are routed by re-encoding the server id into the dispatch
// name. Strict function tools get their arguments validated against the
// declared schema before the handler runs; violations return ErrArguments
// without invoking the handler.
//
// The returned Result always carries a call id: the inbound one, or a
// generated UUIDv7 when the provider omitted it.
// Thread-safe for concurrent execution.
func Execute(ctx context.Context, call toolspec.ToolCall) (Result, error) {
	name := call.Name
	if call.IsMCP() {
		name = callname.Encode(call.MCPServerID, call.Name)
	}

	register.mu.RLock()
	e, exists := register.entries[name]
	register.mu.RUnlock()

	if !exists {
		return Result{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	if fn, ok := e.spec.Function(); ok && fn.Strict {
		if err := schema.ValidateArguments(fn.Parameters, []byte(call.ArgumentsJSON)); err != nil {
			return Result{}, fmt.Errorf("%w: %s: %v", ErrArguments, name, err)
		}
	}

	result, err := e.handler(ctx, json.RawMessage(call.ArgumentsJSON))
	if err != nil {
		return Result{}, fmt.Errorf("tool %s execution failed: %w", name, err)
	}

	result.CallID = call.ID
	if result.CallID == "" {
		result.CallID = uuid.Must(uuid.NewV7()).String()
	}
	return result, nil
}
