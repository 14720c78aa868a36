// Package provider maps provider-agnostic tool specifications into the
// call-declaration list a model-serving API expects. The mapping itself is a
// pure function; Mapper wraps it with observability for callers that want
// skip reporting.
package provider

import (
	"github.com/AuriMyth/aury-ai-model/core/callname"
	"github.com/AuriMyth/aury-ai-model/core/schema"
	"github.com/AuriMyth/aury-ai-model/core/toolspec"
)

// Declaration is a single provider call declaration. Shapes vary by tool
// kind ({type: "function", function: {...}}, {type: "mcp", ...}, or a
// builtin's own {type: ..., config fields}), so the declaration stays a
// generic mapping.
type Declaration map[string]any

// ToProviderTools converts tool specs into the provider's declaration list.
// Input order is preserved; some APIs use it for tool-choice priority.
//
// Function tools become function declarations with normalized parameters.
// Remote tools become native mcp declarations when mcpNative is true;
// otherwise they are declared as functions under the encoded
// "mcp::<server>::<name>" synthetic name, with the owning server appended
// to the description. Builtin tools declare their type with the config
// shallow-merged on top.
//
// Specs whose variant payload is missing are skipped, so the result never
// has more entries than the input. Pure: no side effects, inputs unmodified.
func ToProviderTools(tools []toolspec.ToolSpec, mcpNative bool) []Declaration {
	out := make([]Declaration, 0, len(tools))
	for _, t := range tools {
		if decl, ok := declare(t, mcpNative); ok {
			out = append(out, decl)
		}
	}
	return out
}

func declare(t toolspec.ToolSpec, mcpNative bool) (Declaration, bool) {
	switch t.Kind() {
	case toolspec.KindFunction:
		fn, ok := t.Function()
		if !ok {
			return nil, false
		}
		return functionDeclaration(fn.Name, fn.Description, fn.Parameters), true

	case toolspec.KindMCP:
		mcp, ok := t.MCP()
		if !ok {
			return nil, false
		}
		if mcpNative {
			return Declaration{
				"type":       "mcp",
				"server":     mcp.ServerID,
				"name":       mcp.Name,
				"parameters": schema.Normalize(mcp.InputSchema),
			}, true
		}
		name := callname.Encode(mcp.ServerID, mcp.Name)
		desc := mcp.Description + " [MCP server=" + mcp.ServerID + "]"
		return functionDeclaration(name, desc, mcp.InputSchema), true

	case toolspec.KindBuiltin:
		builtin, ok := t.Builtin()
		if !ok {
			return nil, false
		}
		decl := Declaration{"type": builtin.Type}
		for k, v := range builtin.Config {
			decl[k] = v
		}
		return decl, true
	}
	return nil, false
}

func functionDeclaration(name, description string, parameters map[string]any) Declaration {
	return Declaration{
		"type": "function",
		"function": map[string]any{
			"name":        name,
			"description": description,
			"parameters":  schema.Normalize(parameters),
		},
	}
}
