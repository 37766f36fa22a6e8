package fluxreg

import (
	"fmt"
	"time"

	"github.com/viant/fluxreg/internal/logger"
)

// Config is a serialisable representation of the registry configuration. It
// can be populated from JSON, YAML or viper (file, FLUXREG_* env, flags).
type Config struct {
	// Definitions lists directories or files scanned for *.workflows.yaml and
	// *.workflow_groups.yaml
	Definitions []string `json:"definitions" yaml:"definitions" mapstructure:"definitions"`

	// Strict rejects the whole reload when any definition is invalid
	Strict bool `json:"strict" yaml:"strict" mapstructure:"strict"`

	Cache   CacheConfig   `json:"cache" yaml:"cache" mapstructure:"cache"`
	Log     LogConfig     `json:"log" yaml:"log" mapstructure:"log"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing" mapstructure:"tracing"`
	Events  EventsConfig  `json:"events" yaml:"events" mapstructure:"events"`
}

type CacheConfig struct {
	// TTL of a loaded definition set, 0 keeps it until the next reload
	TTL time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

type TracingConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	// Output is a trace file path, stdout when empty
	Output string `json:"output" yaml:"output" mapstructure:"output"`
}

type EventsConfig struct {
	// Buffer is the reload notification queue capacity
	Buffer int `json:"buffer" yaml:"buffer" mapstructure:"buffer"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Log:    LogConfig{Level: "INFO"},
		Events: EventsConfig{Buffer: 16},
	}
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be >= 0")
	}
	if c.Events.Buffer <= 0 {
		return fmt.Errorf("events.buffer must be > 0")
	}
	if _, err := logger.Level(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	for i, location := range c.Definitions {
		if location == "" {
			return fmt.Errorf("definitions[%d] was empty", i)
		}
	}
	return nil
}
