// Package config holds the Veldt compiler's language constants and the
// per-project pipeline configuration loaded from veldt.yaml.
package config

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the top-level veldt.yaml configuration.
type Config struct {
	// Resolver configures the name-resolution phase.
	Resolver ResolverConfig `yaml:"resolver"`
}

// ResolverConfig configures the name-resolution phase.
type ResolverConfig struct {
	// Parallel enables per-namespace concurrent traversal. The resolved
	// program and the error multiset do not depend on this switch.
	Parallel bool `yaml:"parallel,omitempty"`

	// Color controls diagnostic rendering: "auto" (default), "always",
	// or "never".
	Color string `yaml:"color,omitempty"`
}

// ColorModes are the accepted values of ResolverConfig.Color.
var ColorModes = []string{"auto", "always", "never"}

// Default returns the configuration used when no veldt.yaml is present.
func Default() *Config {
	return &Config{
		Resolver: ResolverConfig{Color: "auto"},
	}
}

// ParseConfig parses and validates a veldt.yaml document. Unknown fields
// are rejected so typos surface instead of silently configuring nothing.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if err == io.EOF {
			return cfg, nil
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate(path string) error {
	if c.Resolver.Color == "" {
		c.Resolver.Color = "auto"
	}
	for _, m := range ColorModes {
		if c.Resolver.Color == m {
			return nil
		}
	}
	return fmt.Errorf("%s: resolver.color must be one of auto, always, never; got %q", path, c.Resolver.Color)
}
