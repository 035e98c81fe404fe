// Package config holds the render-time settings shared by every diagram
// type. A Config is created once per build (defaults plus any document
// overrides) and handed to the diagram store at construction, so two builds
// never observe each other's settings.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Security levels, from most to least restrictive. The level decides how much
// markup survives text sanitization.
const (
	SecurityStrict     = "strict"
	SecurityAntiscript = "antiscript"
	SecurityLoose      = "loose"
)

// Looks select the visual style family a renderer applies.
const (
	LookClassic   = "classic"
	LookHandDrawn = "handDrawn"
)

// UseCaseConfig carries the settings specific to use-case diagrams.
type UseCaseConfig struct {
	UseMaxWidth bool `yaml:"useMaxWidth" json:"useMaxWidth"`
	Padding     int  `yaml:"padding" json:"padding"`
}

// Config is the full settings object. Fields are exported for serialization;
// treat a Config as read-only once a diagram store holds it.
type Config struct {
	SecurityLevel string `yaml:"securityLevel" json:"securityLevel"`
	Look          string `yaml:"look" json:"look"`
	Theme         string `yaml:"theme" json:"theme"`
	FontSize      int    `yaml:"fontSize" json:"fontSize"`

	UseCase UseCaseConfig `yaml:"usecase" json:"usecase"`
}

// Default returns the settings used when a document overrides nothing.
func Default() *Config {
	return &Config{
		SecurityLevel: SecurityStrict,
		Look:          LookClassic,
		Theme:         "default",
		FontSize:      16,
		UseCase: UseCaseConfig{
			UseMaxWidth: true,
			Padding:     8,
		},
	}
}

// Apply merges YAML overrides into c. Only keys present in the source are
// touched, so callers can layer overrides over Default.
func (c *Config) Apply(overrides []byte) error {
	if err := yaml.Unmarshal(overrides, c); err != nil {
		return fmt.Errorf("applying config overrides: %w", err)
	}
	return nil
}

// Validate reports the first setting that no renderer would accept.
func (c *Config) Validate() error {
	switch c.SecurityLevel {
	case SecurityStrict, SecurityAntiscript, SecurityLoose:
	default:
		return fmt.Errorf("unknown securityLevel %q", c.SecurityLevel)
	}
	switch c.Look {
	case LookClassic, LookHandDrawn:
	default:
		return fmt.Errorf("unknown look %q", c.Look)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("fontSize must be positive, got %d", c.FontSize)
	}
	if c.UseCase.Padding < 0 {
		return fmt.Errorf("usecase.padding must not be negative, got %d", c.UseCase.Padding)
	}
	return nil
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}
