package config

import "fmt"

// LoggingConfig defines use-case logging.
type LoggingConfig struct {
	// Enabled turns on the log-backed use-case observer.
	Enabled bool `json:"enabled"`
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`
	// Format selects "console" or "json" output.
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
}

// Validate checks the level and format.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %s", c.Level)
	}
	if c.Format != "console" && c.Format != "json" {
		return fmt.Errorf("unknown format %s", c.Format)
	}
	return nil
}
