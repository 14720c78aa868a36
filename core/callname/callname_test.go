package callname_test

import (
	"encoding/json"
	"testing"

	"github.com/AuriMyth/aury-ai-model/core/callname"
)

func TestEncode(t *testing.T) {
	got := callname.Encode("srv1", "lookup")
	want := "mcp::srv1::lookup"

	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantServer string
		wantTool   string
		wantOK     bool
	}{
		{"encoded name", "mcp::srv1::lookup", "srv1", "lookup", true},
		{"plain name passthrough", "plain_name", "", "plain_name", false},
		{"missing tool segment", "mcp::srv1::", "", "mcp::srv1::", false},
		{"empty string", "", "", "", false},
		{"prefix only", "mcp::", "", "mcp::", false},
		{"tool name containing delimiter", "mcp::srv1::ns::op", "srv1", "ns::op", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, tool, ok := callname.Decode(tt.input)
			if server != tt.wantServer || tool != tt.wantTool || ok != tt.wantOK {
				t.Errorf("Decode(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.input, server, tool, ok, tt.wantServer, tt.wantTool, tt.wantOK)
			}
		})
	}
}

// The first segment is matched non-greedily, so a server id containing the
// delimiter splits at the first boundary. Documented limitation: do not
// change without changing which names decode.
func TestDecode_NonGreedyFirstSegment(t *testing.T) {
	server, tool, ok := callname.Decode("mcp::a::b::c")
	if !ok {
		t.Fatal("expected a match")
	}
	if server != "a" || tool != "b::c" {
		t.Errorf("got (%q, %q), want (%q, %q)", server, tool, "a", "b::c")
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	pairs := []struct{ server, tool string }{
		{"srv1", "lookup"},
		{"filesystem", "read_file"},
		{"a-b.c", "tool:with:colons"},
	}

	for _, p := range pairs {
		server, tool, ok := callname.Decode(callname.Encode(p.server, p.tool))
		if !ok || server != p.server || tool != p.tool {
			t.Errorf("round trip (%q, %q) = (%q, %q, %v)", p.server, p.tool, server, tool, ok)
		}
	}
}

func TestNormalizeCall_EncodedName(t *testing.T) {
	call := callname.NormalizeCall(callname.RawCall{
		ID:        "c1",
		Name:      "mcp::srv1::lookup",
		Arguments: `{"q":1}`,
	})

	if call.ID != "c1" {
		t.Errorf("got id %q, want %q", call.ID, "c1")
	}
	if call.Name != "lookup" {
		t.Errorf("got name %q, want %q", call.Name, "lookup")
	}
	if call.MCPServerID != "srv1" {
		t.Errorf("got server %q, want %q", call.MCPServerID, "srv1")
	}
	if call.ArgumentsJSON != `{"q":1}` {
		t.Errorf("got arguments %q, want %q", call.ArgumentsJSON, `{"q":1}`)
	}
}

func TestNormalizeCall_PlainNameDefaults(t *testing.T) {
	call := callname.NormalizeCall(callname.RawCall{Name: "search"})

	if call.ID != "" {
		t.Errorf("got id %q, want empty", call.ID)
	}
	if call.Name != "search" {
		t.Errorf("got name %q, want %q", call.Name, "search")
	}
	if call.MCPServerID != "" {
		t.Errorf("got server %q, want empty", call.MCPServerID)
	}
	if call.ArgumentsJSON != "{}" {
		t.Errorf("got arguments %q, want %q", call.ArgumentsJSON, "{}")
	}
}

func TestRawCall_UnmarshalJSON_FlatFormat(t *testing.T) {
	data := `{"id":"c1","name":"search","arguments":"{\"q\":\"x\"}"}`

	var raw callname.RawCall
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if raw.ID != "c1" || raw.Name != "search" || raw.Arguments != `{"q":"x"}` {
		t.Errorf("unexpected record: %+v", raw)
	}
}

func TestRawCall_UnmarshalJSON_NestedFormat(t *testing.T) {
	data := `{
		"id": "call_123",
		"type": "function",
		"function": {
			"name": "mcp::srv1::lookup",
			"arguments": "{\"q\":1}"
		}
	}`

	var raw callname.RawCall
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if raw.ID != "call_123" {
		t.Errorf("got id %q, want %q", raw.ID, "call_123")
	}
	if raw.Name != "mcp::srv1::lookup" {
		t.Errorf("got name %q, want %q", raw.Name, "mcp::srv1::lookup")
	}
	if raw.Arguments != `{"q":1}` {
		t.Errorf("got arguments %q, want %q", raw.Arguments, `{"q":1}`)
	}
}
