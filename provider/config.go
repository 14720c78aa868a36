package provider

import (
	"encoding/json"
	"fmt"
	"os"
)

// Capabilities describes what the target provider API understands.
// MCPNative selects the native remote-tool declaration path; providers that
// lack it get remote tools declared under encoded function names instead.
// Overrides adjusts the flag per provider name for deployments that route
// one tool list to several backends.
type Capabilities struct {
	MCPNative bool            `json:"mcp_native"`
	Overrides map[string]bool `json:"overrides,omitempty"`
}

// DefaultCapabilities returns the conservative default: no native remote
// tool support, so every provider works.
func DefaultCapabilities() Capabilities {
	return Capabilities{}
}

// Merge applies non-zero values from source into c.
func (c *Capabilities) Merge(source *Capabilities) {
	if source.MCPNative {
		c.MCPNative = true
	}
	if len(source.Overrides) > 0 {
		c.Overrides = source.Overrides
	}
}

// MCPNativeFor resolves the effective flag for a named provider, falling
// back to the global default when no override exists.
func (c Capabilities) MCPNativeFor(providerName string) bool {
	if v, ok := c.Overrides[providerName]; ok {
		return v
	}
	return c.MCPNative
}

// LoadCapabilities reads a JSON capabilities file, merges it with defaults,
// and returns the resulting Capabilities.
func LoadCapabilities(filename string) (*Capabilities, error) {
	caps := DefaultCapabilities()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read capabilities file: %w", err)
	}

	var loaded Capabilities
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse capabilities file: %w", err)
	}

	caps.Merge(&loaded)
	return &caps, nil
}
