// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how results are written.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Default operands used when no flag, environment variable, or config file
// supplies them.
const (
	DefaultX = 10
	DefaultY = 5
)

// DemoConfig holds settings for a demo run.
type DemoConfig struct {
	Operands `yaml:",inline"`

	// Format selects the output format: text, json, or yaml (default text).
	Format OutputFormat `json:"format" yaml:"format"`
}

// DefaultDemoConfig returns the configuration used when nothing overrides it.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Operands: Operands{X: DefaultX, Y: DefaultY},
		Format:   FormatText,
	}
}
