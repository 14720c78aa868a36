package toolspec

import "encoding/json"

// wireSpec is the JSON form of a ToolSpec: a kind tag plus at most one
// variant payload. Strict is a pointer so an absent field defaults to true.
type wireSpec struct {
	Kind     Kind          `json:"kind"`
	Function *wireFunction `json:"function,omitempty"`
	MCP      *MCPTool      `json:"mcp,omitempty"`
	Builtin  *BuiltinTool  `json:"builtin,omitempty"`
}

type wireFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	Strict      *bool          `json:"strict,omitempty"`
}

// MarshalJSON serializes the spec as {kind, <variant>}.
func (s ToolSpec) MarshalJSON() ([]byte, error) {
	w := wireSpec{Kind: s.kind}
	if s.function != nil {
		w.Function = &wireFunction{
			Name:        s.function.Name,
			Description: s.function.Description,
			Parameters:  s.function.Parameters,
			Strict:      &s.function.Strict,
		}
	}
	w.MCP = s.mcp
	w.Builtin = s.builtin
	return json.Marshal(w)
}

// UnmarshalJSON decodes the {kind, <variant>} form. A record whose payload
// does not match its kind decodes to a spec with the kind tag set but no
// variant; consumers detect this through the accessors and skip it rather
// than failing the whole document.
func (s *ToolSpec) UnmarshalJSON(data []byte) error {
	var w wireSpec
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*s = ToolSpec{kind: w.Kind}

	switch w.Kind {
	case KindFunction:
		if w.Function == nil {
			return nil
		}
		strict := true
		if w.Function.Strict != nil {
			strict = *w.Function.Strict
		}
		parsed := Function(FunctionTool{
			Name:        w.Function.Name,
			Description: w.Function.Description,
			Parameters:  w.Function.Parameters,
			Strict:      strict,
		})
		*s = parsed
	case KindMCP:
		if w.MCP == nil {
			return nil
		}
		*s = MCP(*w.MCP)
	case KindBuiltin:
		if w.Builtin == nil {
			return nil
		}
		*s = Builtin(*w.Builtin)
	}
	return nil
}
