package toolspec

// ToolCall is the normalized tool invocation record consumed by dispatchers.
// Name always carries the bare tool name: any server encoding present on the
// wire has been stripped, with the recovered server identity in MCPServerID.
// An empty MCPServerID means the call does not target a remote tool.
//
// ArgumentsJSON is the raw serialized arguments payload. It is opaque at
// this layer and defaults to "{}" when the provider omitted it.
type ToolCall struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ArgumentsJSON string `json:"arguments_json"`
	MCPServerID   string `json:"mcp_server_id,omitempty"`
}

// IsMCP reports whether the call was decoded from an encoded remote-tool name.
func (c ToolCall) IsMCP() bool {
	return c.MCPServerID != ""
}
