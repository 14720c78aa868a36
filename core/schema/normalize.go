// Package schema coerces JSON-Schema-like fragments into the strict shape
// provider APIs accept. The normalizer is a pure tree transform: it never
// fails, never mutates its input, and applying it twice gives the same
// result as applying it once.
package schema

// The seven type names JSON Schema 2020-12 recognizes. Anything else is
// coerced to "string".
var validTypes = map[string]bool{
	"string":  true,
	"number":  true,
	"integer": true,
	"boolean": true,
	"object":  true,
	"array":   true,
	"null":    true,
}

// Normalize returns a copy of schema coerced into a provider-acceptable
// shape:
//
//   - every node gets a "type", inferred from "properties",
//     "additionalProperties" or "items" when absent, defaulting to
//     "string" (nodes with "enum" keep their implicit type)
//   - unrecognized type names are coerced to "string"
//   - object nodes always carry "properties" and "required"
//   - nested property, item and additionalProperties schemas are
//     normalized recursively
//
// Unrelated fields pass through unchanged. A nil schema is treated as the
// empty mapping. The input is never modified; concurrent callers may share
// it freely.
func Normalize(schema map[string]any) map[string]any {
	result := make(map[string]any, len(schema)+2)
	for k, v := range schema {
		result[k] = v
	}

	if _, ok := result["type"]; !ok {
		_, hasProps := result["properties"]
		_, hasAdditional := result["additionalProperties"]
		_, hasItems := result["items"]
		_, hasEnum := result["enum"]

		switch {
		case hasProps || hasAdditional:
			result["type"] = "object"
		case hasItems:
			result["type"] = "array"
		case hasEnum:
			// enum values carry their own implicit type
		default:
			result["type"] = "string"
		}
	} else if typ, ok := result["type"].(string); !ok || !validTypes[typ] {
		result["type"] = "string"
	}

	if result["type"] == "object" {
		if _, ok := result["properties"]; !ok {
			result["properties"] = map[string]any{}
		}
		if _, ok := result["required"]; !ok {
			result["required"] = []string{}
		}
		// A malformed non-mapping "properties" value passes through.
		if props, ok := result["properties"].(map[string]any); ok {
			normalized := make(map[string]any, len(props))
			for name, prop := range props {
				normalized[name] = NormalizeValue(prop)
			}
			result["properties"] = normalized
		}
	}

	if result["type"] == "array" {
		if items, ok := result["items"]; ok {
			result["items"] = NormalizeValue(items)
		}
	}

	// additionalProperties may be a boolean or a schema; only the schema
	// form recurses.
	if additional, ok := result["additionalProperties"].(map[string]any); ok {
		result["additionalProperties"] = Normalize(additional)
	}

	return result
}

// NormalizeValue normalizes v when it is a schema mapping and returns it
// unchanged otherwise. Nested schema positions can legally hold booleans or
// other scalars, so non-mapping input is a no-op rather than an error.
func NormalizeValue(v any) any {
	if m, ok := v.(map[string]any); ok {
		return Normalize(m)
	}
	return v
}
