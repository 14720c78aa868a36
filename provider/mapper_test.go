package provider_test

import (
	"context"
	"sync"
	"testing"

	"github.com/AuriMyth/aury-ai-model/core/toolspec"
	"github.com/AuriMyth/aury-ai-model/observability"
	"github.com/AuriMyth/aury-ai-model/provider"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []observability.Event
}

func (r *recordingObserver) OnEvent(_ context.Context, event observability.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) byType(typ observability.EventType) []observability.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []observability.Event
	for _, e := range r.events {
		if e.Type == typ {
			matched = append(matched, e)
		}
	}
	return matched
}

func TestMapper_MatchesPureFunction(t *testing.T) {
	tools := []toolspec.ToolSpec{
		toolspec.NewFunctionTool("search", "Searches"),
		toolspec.MCP(toolspec.MCPTool{ServerID: "srv1", Name: "lookup"}),
	}

	mapper := provider.NewMapper(provider.DefaultCapabilities(), nil)
	got := mapper.Map(context.Background(), "openai", tools)
	want := provider.ToProviderTools(tools, false)

	if len(got) != len(want) {
		t.Fatalf("got %d declarations, want %d", len(got), len(want))
	}
}

func TestMapper_EmitsSkipEvents(t *testing.T) {
	obs := &recordingObserver{}
	mapper := provider.NewMapper(provider.DefaultCapabilities(), obs)

	tools := []toolspec.ToolSpec{
		toolspec.NewFunctionTool("ok", ""),
		{},
	}

	decls := mapper.Map(context.Background(), "openai", tools)
	if len(decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(decls))
	}

	skips := obs.byType(provider.EventToolSkipped)
	if len(skips) != 1 {
		t.Fatalf("got %d skip events, want 1", len(skips))
	}
	if skips[0].Level != observability.LevelWarning {
		t.Errorf("got level %v, want warning", skips[0].Level)
	}
	if skips[0].Data["index"] != 1 {
		t.Errorf("got index %v, want 1", skips[0].Data["index"])
	}
}

func TestMapper_EmitsCompleteEvent(t *testing.T) {
	obs := &recordingObserver{}
	caps := provider.Capabilities{Overrides: map[string]bool{"native": true}}
	mapper := provider.NewMapper(caps, obs)

	mapper.Map(context.Background(), "native", []toolspec.ToolSpec{
		toolspec.MCP(toolspec.MCPTool{ServerID: "srv1", Name: "lookup"}),
	})

	completes := obs.byType(provider.EventMapComplete)
	if len(completes) != 1 {
		t.Fatalf("got %d complete events, want 1", len(completes))
	}

	data := completes[0].Data
	if data["provider"] != "native" {
		t.Errorf("got provider %v, want native", data["provider"])
	}
	if data["mcp_native"] != true {
		t.Errorf("got mcp_native %v, want true", data["mcp_native"])
	}
	if data["declarations"] != 1 {
		t.Errorf("got declarations %v, want 1", data["declarations"])
	}
}

func TestMapper_CapabilityOverrideSelectsNativePath(t *testing.T) {
	caps := provider.Capabilities{Overrides: map[string]bool{"native": true}}
	mapper := provider.NewMapper(caps, nil)

	tools := []toolspec.ToolSpec{
		toolspec.MCP(toolspec.MCPTool{ServerID: "srv1", Name: "lookup"}),
	}

	native := mapper.Map(context.Background(), "native", tools)
	if native[0]["type"] != "mcp" {
		t.Errorf("native provider: got type %v, want mcp", native[0]["type"])
	}

	encoded := mapper.Map(context.Background(), "other", tools)
	if encoded[0]["type"] != "function" {
		t.Errorf("other provider: got type %v, want function", encoded[0]["type"])
	}
}
