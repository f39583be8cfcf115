// Package config defines core configuration types for gocut.
// These types are pure data structures with no dependency on config loaders.
package config

import "fmt"

// DefaultDelimiter is the field delimiter used when none is configured.
const DefaultDelimiter = "\t"

// Config is the root configuration structure for gocut.
type Config struct {
	// Delimiter is the single-byte field delimiter for field mode.
	Delimiter string `yaml:"delimiter"`

	// Jobs is the number of parallel file workers (0 = auto).
	Jobs int `yaml:"jobs"`

	// Stats enables the run summary after output.
	Stats bool `yaml:"stats"`

	// CLI-level options (not persisted to config files).

	// Fields, Bytes, and Chars hold the raw selection specs from the
	// mutually exclusive selection flags. At most one is non-empty.
	Fields string `yaml:"-"`
	Bytes  string `yaml:"-"`
	Chars  string `yaml:"-"`

	// Color is the color mode for styled output: auto, always, never.
	Color string `yaml:"-"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Delimiter: DefaultDelimiter,
		Color:     "auto",
	}
}

// DelimiterByte validates the configured delimiter and returns it as a
// single byte. Multi-byte delimiters (including multi-byte UTF-8 characters)
// are rejected.
func (c *Config) DelimiterByte() (byte, error) {
	if len(c.Delimiter) != 1 {
		return 0, fmt.Errorf("--delim %q must be a single byte", c.Delimiter)
	}
	return c.Delimiter[0], nil
}
