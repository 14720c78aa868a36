// Package response parses provider API responses for the tool-calling
// protocol and converts the embedded call records into the canonical
// invocation shape.
package response

import (
	"encoding/json"
	"fmt"

	"github.com/AuriMyth/aury-ai-model/core/callname"
	"github.com/AuriMyth/aury-ai-model/core/toolspec"
)

// TokenUsage reports the token accounting a provider attaches to a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ToolsResponse represents the response from a tools (function calling)
// protocol request. Contains the call records requested by the model along
// with metadata and token usage.
type ToolsResponse struct {
	ID      string `json:"id,omitempty"`
	Object  string `json:"object,omitempty"`
	Created int64  `json:"created,omitempty"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role      string             `json:"role"`
			Content   string             `json:"content"`
			ToolCalls []callname.RawCall `json:"tool_calls,omitempty"`
		} `json:"message"`
		FinishReason string `json:"finish_reason,omitempty"`
	} `json:"choices"`
	Usage *TokenUsage `json:"usage,omitempty"`
}

// ParseTools parses a tools response from JSON bytes.
// Returns the parsed ToolsResponse or an error if parsing fails.
func ParseTools(body []byte) (*ToolsResponse, error) {
	var response ToolsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse tools response: %w", err)
	}
	return &response, nil
}

// Calls returns the first choice's tool calls in canonical form: encoded
// remote-tool names are decoded so each record carries the bare tool name
// and, when present, the owning MCP server id. Returns nil when the
// response holds no choices.
func (r *ToolsResponse) Calls() []toolspec.ToolCall {
	if len(r.Choices) == 0 {
		return nil
	}

	raw := r.Choices[0].Message.ToolCalls
	if len(raw) == 0 {
		return nil
	}

	calls := make([]toolspec.ToolCall, len(raw))
	for i, rc := range raw {
		calls[i] = callname.NormalizeCall(rc)
	}
	return calls
}
