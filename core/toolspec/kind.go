// Package toolspec defines the provider-agnostic tool model: the closed set
// of tool kinds, the immutable per-kind specifications, and the normalized
// tool invocation record. Values are constructed once and never mutated, so
// they are safe to share across concurrent request paths.
package toolspec

import "strings"

// Kind identifies the variant of a tool specification.
type Kind string

const (
	// KindFunction is a plain callable function described by a JSON Schema.
	KindFunction Kind = "function"
	// KindMCP is a remote tool owned by an MCP server.
	KindMCP Kind = "mcp"
	// KindBuiltin is a provider-native tool configured rather than
	// schema-described.
	KindBuiltin Kind = "builtin"
)

// ValidKinds returns all supported tool kinds in declaration order.
func ValidKinds() []Kind {
	return []Kind{KindFunction, KindMCP, KindBuiltin}
}

// IsValid reports whether the string names a supported tool kind.
func IsValid(kind string) bool {
	switch Kind(kind) {
	case KindFunction, KindMCP, KindBuiltin:
		return true
	default:
		return false
	}
}

// KindStrings returns a comma-separated list of valid kinds for error messages.
func KindStrings() string {
	kinds := ValidKinds()
	strs := make([]string, len(kinds))
	for i, k := range kinds {
		strs[i] = string(k)
	}
	return strings.Join(strs, ", ")
}
