package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateArguments checks a serialized arguments payload against a tool's
// parameter schema. The schema is normalized first so fragments that would
// be rejected by a strict validator (missing type, unknown type names) are
// coerced the same way they are when declared to the provider.
//
// Returns nil when the payload conforms; otherwise an error listing every
// violation.
func ValidateArguments(schema map[string]any, argsJSON []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(Normalize(schema))
	documentLoader := gojsonschema.NewBytesLoader(argsJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			violations = append(violations, verr.String())
		}
		return fmt.Errorf("arguments do not match schema: %s", strings.Join(violations, "; "))
	}
	return nil
}
