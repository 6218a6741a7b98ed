package bgmodels

import (
	"fmt"

	"github.com/AnatomicMaps/BG-models/service/runner"
)

// Config is a serialisable representation of the toolkit configuration. It
// can be populated from JSON or YAML. The zero-value is useful – all nested
// fields inherit their package defaults.

type Config struct {
	Annotator AnnotatorConfig `json:"annotator" yaml:"annotator"`
	Runner    RunnerConfig    `json:"runner" yaml:"runner"`
}

// AnnotatorConfig controls RDF annotation generation.
type AnnotatorConfig struct {
	// Profile is an optional URL of a YAML annotation profile overlaying
	// the built-in cavity vocabulary.
	Profile string `json:"profile,omitempty" yaml:"profile,omitempty"`

	// AnnotateFlows also annotates flow-rate quantities, which the default
	// generation skips.
	AnnotateFlows bool `json:"annotateFlows,omitempty" yaml:"annotateFlows,omitempty"`
}

// RunnerConfig controls external simulation execution.
type RunnerConfig struct {
	Executor  string `json:"executor,omitempty" yaml:"executor,omitempty"`
	TimeoutMs int    `json:"timeoutMs,omitempty" yaml:"timeoutMs,omitempty"`
}

// DefaultConfig returns a Config populated with the package defaults.
// Callers may modify the returned struct before passing it to New.
func DefaultConfig() *Config {
	return &Config{
		Runner: RunnerConfig{
			Executor:  runner.DefaultExecutor,
			TimeoutMs: 60000,
		},
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Runner.TimeoutMs < 0 {
		return fmt.Errorf("runner.timeoutMs must be >= 0")
	}
	return nil
}
