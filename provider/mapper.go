package provider

import (
	"context"
	"time"

	"github.com/AuriMyth/aury-ai-model/core/toolspec"
	"github.com/AuriMyth/aury-ai-model/observability"
)

// Mapper event types emitted while building a declaration list.
const (
	EventToolSkipped observability.EventType = "provider.tool.skipped"
	EventMapComplete observability.EventType = "provider.map.complete"
)

// Mapper wraps ToProviderTools with observability. The mapping stays pure;
// the observer only hears about skipped malformed specs and the final
// declaration count. A nil observer is replaced with the no-op observer.
type Mapper struct {
	caps     Capabilities
	observer observability.Observer
}

// NewMapper creates a Mapper for the given capabilities.
func NewMapper(caps Capabilities, observer observability.Observer) *Mapper {
	if observer == nil {
		observer = observability.NoOpObserver{}
	}
	return &Mapper{caps: caps, observer: observer}
}

// Map builds the declaration list for the named provider, emitting a
// warning event for every spec the mapping skipped.
func (m *Mapper) Map(ctx context.Context, providerName string, tools []toolspec.ToolSpec) []Declaration {
	mcpNative := m.caps.MCPNativeFor(providerName)

	out := make([]Declaration, 0, len(tools))
	for i, t := range tools {
		decl, ok := declare(t, mcpNative)
		if !ok {
			m.observer.OnEvent(ctx, observability.Event{
				Type:      EventToolSkipped,
				Level:     observability.LevelWarning,
				Timestamp: time.Now(),
				Source:    "provider.mapper",
				Data: map[string]any{
					"index": i,
					"kind":  string(t.Kind()),
				},
			})
			continue
		}
		out = append(out, decl)
	}

	m.observer.OnEvent(ctx, observability.Event{
		Type:      EventMapComplete,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "provider.mapper",
		Data: map[string]any{
			"provider":     providerName,
			"tools":        len(tools),
			"declarations": len(out),
			"mcp_native":   mcpNative,
		},
	})

	return out
}
