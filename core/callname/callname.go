// Package callname carries MCP server identity through provider APIs that
// only understand a flat function namespace. Remote tools are declared under
// a synthetic name of the form "mcp::<server_id>::<tool_name>"; inbound
// calls are decoded back into server id and bare tool name.
package callname

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/AuriMyth/aury-ai-model/core/toolspec"
)

// The first segment is matched non-greedily, so a server id containing "::"
// is split at the first delimiter. Known limitation, kept deliberately:
// changing it would change which existing names decode.
var encodedName = regexp.MustCompile(`^mcp::(.+?)::(.+)$`)

// Encode builds the synthetic flat name for a remote tool.
func Encode(serverID, name string) string {
	return fmt.Sprintf("mcp::%s::%s", serverID, name)
}

// Decode splits an encoded name back into server id and tool name. A name
// that does not match the encoding is not an error: ok is false and the
// name is returned verbatim.
func Decode(name string) (serverID, toolName string, ok bool) {
	m := encodedName.FindStringSubmatch(name)
	if m == nil {
		return "", name, false
	}
	return m[1], m[2], true
}

// RawCall is the inbound tool-call record as providers send it.
// UnmarshalJSON accepts both the flat form ({id, name, arguments}) and the
// nested function-calling form ({id, function: {name, arguments}}).
type RawCall struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Arguments string `json:"arguments,omitempty"`
}

func (r *RawCall) UnmarshalJSON(data []byte) error {
	var nested struct {
		ID       string `json:"id"`
		Function struct {
			Name      string `json:"name"`
			Arguments string `json:"arguments"`
		} `json:"function"`
	}
	if err := json.Unmarshal(data, &nested); err != nil {
		return err
	}

	if nested.Function.Name != "" {
		r.ID = nested.ID
		r.Name = nested.Function.Name
		r.Arguments = nested.Function.Arguments
		return nil
	}

	type plain RawCall
	return json.Unmarshal(data, (*plain)(r))
}

// NormalizeCall builds the canonical invocation record from a raw inbound
// call. A name carrying the mcp encoding is decoded, with the server id
// surfaced on the record; any other name passes through untouched. Missing
// id defaults to the empty string and missing arguments to "{}".
func NormalizeCall(raw RawCall) toolspec.ToolCall {
	call := toolspec.ToolCall{
		ID:            raw.ID,
		Name:          raw.Name,
		ArgumentsJSON: raw.Arguments,
	}
	if call.ArgumentsJSON == "" {
		call.ArgumentsJSON = "{}"
	}

	if serverID, toolName, ok := Decode(raw.Name); ok {
		call.Name = toolName
		call.MCPServerID = serverID
	}
	return call
}
