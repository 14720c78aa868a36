package toolspec

// FunctionTool describes a plain callable function. Parameters uses JSON
// Schema format to describe the function's input; Strict signals that the
// provider must treat the schema as exhaustive rather than permissive.
type FunctionTool struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters"`
	Strict      bool           `json:"strict"`
}

// MCPTool describes a tool whose implementation lives on a remote MCP
// server. Name is unique only within the owning server, so ServerID is
// required to address the tool.
type MCPTool struct {
	ServerID     string         `json:"server_id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	InputSchema  map[string]any `json:"input_schema"`
	ResultSchema map[string]any `json:"result_schema,omitempty"`
}

// BuiltinTool describes a provider-native tool. Type is the provider's
// built-in identifier (e.g. a hosted search tool); Config carries opaque
// provider-specific settings merged into the declaration.
type BuiltinTool struct {
	Type   string         `json:"type"`
	Config map[string]any `json:"config"`
}

// ToolSpec is the tagged union over the three tool variants. Exactly one
// variant is populated and it always matches the kind tag: values are only
// constructible through Function, MCP, and Builtin, which makes a
// kind/payload mismatch unrepresentable. The zero value carries no variant
// and is treated as malformed by consumers.
type ToolSpec struct {
	kind     Kind
	function *FunctionTool
	mcp      *MCPTool
	builtin  *BuiltinTool
}

// Function creates a function tool spec. A nil Parameters map is replaced
// with an empty one. Strict is taken as given; use NewFunctionTool for the
// default strict handling.
func Function(tool FunctionTool) ToolSpec {
	if tool.Parameters == nil {
		tool.Parameters = map[string]any{}
	}
	return ToolSpec{kind: KindFunction, function: &tool}
}

// NewFunctionTool creates a function tool spec with the common defaults:
// empty parameters and strict schema handling.
func NewFunctionTool(name, description string) ToolSpec {
	return Function(FunctionTool{
		Name:        name,
		Description: description,
		Strict:      true,
	})
}

// MCP creates a remote tool spec. A nil InputSchema is replaced with an
// empty one.
func MCP(tool MCPTool) ToolSpec {
	if tool.InputSchema == nil {
		tool.InputSchema = map[string]any{}
	}
	return ToolSpec{kind: KindMCP, mcp: &tool}
}

// Builtin creates a provider-native tool spec. A nil Config is replaced
// with an empty one.
func Builtin(tool BuiltinTool) ToolSpec {
	if tool.Config == nil {
		tool.Config = map[string]any{}
	}
	return ToolSpec{kind: KindBuiltin, builtin: &tool}
}

// Kind returns the variant tag. The zero ToolSpec returns the empty string.
func (s ToolSpec) Kind() Kind {
	return s.kind
}

// Function returns the function variant and true when the spec holds one.
func (s ToolSpec) Function() (FunctionTool, bool) {
	if s.kind != KindFunction || s.function == nil {
		return FunctionTool{}, false
	}
	return *s.function, true
}

// MCP returns the remote variant and true when the spec holds one.
func (s ToolSpec) MCP() (MCPTool, bool) {
	if s.kind != KindMCP || s.mcp == nil {
		return MCPTool{}, false
	}
	return *s.mcp, true
}

// Builtin returns the builtin variant and true when the spec holds one.
func (s ToolSpec) Builtin() (BuiltinTool, bool) {
	if s.kind != KindBuiltin || s.builtin == nil {
		return BuiltinTool{}, false
	}
	return *s.builtin, true
}
