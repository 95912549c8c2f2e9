// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how query results are rendered.
type OutputFormat string

const (
	OutputText  OutputFormat = "text"
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// QueryConfig holds settings for date normalization and result output.
type QueryConfig struct {
	// CurrentYear bounds the "modern year" shortcut of the date normalizer.
	// Zero means the clock is read once at startup.
	CurrentYear int `json:"current_year" yaml:"current_year" mapstructure:"current_year"`

	// Format selects the output format: text, table, json or yaml.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Development switches to a human-oriented console encoder.
	Development bool `json:"development" yaml:"development" mapstructure:"development"`
}

// Config groups all settings for a deathrange run.
type Config struct {
	// Source is the default GEDCOM file used when --file is not given.
	Source string `json:"source" yaml:"source" mapstructure:"source"`

	Query QueryConfig `json:"query" yaml:"query" mapstructure:"query"`
	Log   LogConfig   `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Query: QueryConfig{Format: OutputText},
		Log:   LogConfig{Level: "warn", Development: true},
	}
}
